package http

import (
	"log/slog"
	"os"

	"github.com/glowmark/retailops-backend-go/internal/handler/http/middleware"
	"github.com/glowmark/retailops-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth     AuthHandler
	User     UserHandler
	Order    OrderHandler
	Return   ReturnHandler
	Shift    ShiftHandler
	Payout   PayoutHandler
	Vacation VacationHandler
	Master   MasterHandler
	Report   ReportHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, corsOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "retailops"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/me", h.User.Me)

			// Admin only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.User.List)
				r.Post("/", h.User.Create)
				r.Get("/{id}", h.User.Get)
				r.Put("/{id}", h.User.Update)
				r.Put("/{id}/status", h.User.SetActive)
				r.Put("/{id}/password", h.User.ChangePassword)
			})

			// Manager or admin
			r.Group(func(r chi.Router) {
				r.Use(middleware.ManagerOrAdmin)

				r.Route("/orders", func(r chi.Router) {
					r.Post("/", h.Order.Create)
					r.Post("/check-duplicates", h.Order.CheckDuplicates)
					r.Get("/{id}", h.Order.Get)
					r.Put("/{id}", h.Order.Update)
					r.Delete("/{id}", h.Order.Delete)
				})

				r.Route("/returns", func(r chi.Router) {
					r.Get("/", h.Return.List)
					r.Post("/", h.Return.Create)
					r.Put("/{id}", h.Return.Update)
					r.Delete("/{id}", h.Return.Delete)
				})

				r.Route("/shifts", func(r chi.Router) {
					r.Post("/", h.Shift.Create)
					r.Get("/{id}", h.Shift.Get)
					r.Delete("/{id}", h.Shift.Delete)
					r.Post("/{id}/assignments", h.Shift.AddAssignment)
					r.Put("/{id}/assignments/{assignmentID}", h.Shift.UpdateAssignment)
					r.Delete("/{id}/assignments/{assignmentID}", h.Shift.RemoveAssignment)
				})

				r.Route("/reports", func(r chi.Router) {
					r.Get("/periods", h.Report.PeriodReport)
					r.Get("/range", h.Report.RangeReport)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/payouts", func(r chi.Router) {
					r.Get("/", h.Payout.List)
					r.Post("/", h.Payout.Create)
					r.Delete("/{id}", h.Payout.Delete)
				})

				r.Route("/vacations", func(r chi.Router) {
					r.Get("/", h.Vacation.List)
					r.Post("/", h.Vacation.Create)
					r.Delete("/{id}", h.Vacation.Delete)
				})

				r.Route("/branches", func(r chi.Router) {
					r.Get("/", h.Master.ListBranches)
					r.Post("/", h.Master.CreateBranch)
					r.Put("/{id}", h.Master.UpdateBranch)
					r.Get("/{id}/assignments", h.Master.ListBranchAssignments)
					r.Put("/{id}/assignments", h.Master.UpsertBranchAssignment)
					r.Put("/{id}/order-types", h.Master.SetBranchOrderType)
				})

				r.Route("/order-types", func(r chi.Router) {
					r.Get("/", h.Master.ListOrderTypes)
					r.Post("/", h.Master.CreateOrderType)
					r.Put("/{id}", h.Master.UpdateOrderType)
					r.Put("/{id}/user-settings", h.Master.UpsertUserTypeSetting)
				})

				r.Get("/user-type-settings", h.Master.ListUserTypeSettings)
			})
		})
	})

	return r
}
