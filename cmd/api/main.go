package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/glowmark/retailops-backend-go/internal/config"
	"github.com/glowmark/retailops-backend-go/internal/fixtures"
	appHTTP "github.com/glowmark/retailops-backend-go/internal/handler/http"
	"github.com/glowmark/retailops-backend-go/internal/pkg/database"
	"github.com/glowmark/retailops-backend-go/internal/pkg/jwt"
	"github.com/glowmark/retailops-backend-go/internal/repository/postgresql"
	authService "github.com/glowmark/retailops-backend-go/internal/service/auth"
	masterService "github.com/glowmark/retailops-backend-go/internal/service/master"
	orderService "github.com/glowmark/retailops-backend-go/internal/service/order"
	payoutService "github.com/glowmark/retailops-backend-go/internal/service/payout"
	reportService "github.com/glowmark/retailops-backend-go/internal/service/report"
	returnService "github.com/glowmark/retailops-backend-go/internal/service/returns"
	shiftService "github.com/glowmark/retailops-backend-go/internal/service/shift"
	userService "github.com/glowmark/retailops-backend-go/internal/service/user"
	vacationService "github.com/glowmark/retailops-backend-go/internal/service/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	orderTypeRepo := postgresql.NewOrderTypeRepository(db)
	orderRepo := postgresql.NewOrderRepository(db)
	returnRepo := postgresql.NewReturnRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	payoutRepo := postgresql.NewPayoutRepository(db)
	vacationRepo := postgresql.NewVacationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	auth := authService.NewAuthService(db, userRepo, jwtService)
	users := userService.NewUserService(db, userRepo)
	orders := orderService.NewOrderService(db, orderRepo, orderTypeRepo)
	rets := returnService.NewReturnService(db, returnRepo, orderRepo)
	shifts := shiftService.NewShiftService(db, shiftRepo, userRepo)
	payouts := payoutService.NewPayoutService(db, payoutRepo, userRepo)
	vacations := vacationService.NewVacationService(db, vacationRepo, userRepo)
	master := masterService.NewMasterService(db, branchRepo, orderTypeRepo)
	reports := reportService.NewReportService(db, userRepo, orderRepo, returnRepo, shiftRepo, payoutRepo, vacationRepo, orderTypeRepo, branchRepo)

	if err := fixtures.Seed(db, userRepo, orderTypeRepo, branchRepo); err != nil {
		log.Fatal("Failed to seed defaults: ", err)
	}

	handlers := appHTTP.Handlers{
		Auth:     appHTTP.NewAuthHandler(jwtService, auth),
		User:     appHTTP.NewUserHandler(users),
		Order:    appHTTP.NewOrderHandler(orders),
		Return:   appHTTP.NewReturnHandler(rets),
		Shift:    appHTTP.NewShiftHandler(shifts),
		Payout:   appHTTP.NewPayoutHandler(payouts),
		Vacation: appHTTP.NewVacationHandler(vacations),
		Master:   appHTTP.NewMasterHandler(master),
		Report:   appHTTP.NewReportHandler(reports, users),
	}

	router := appHTTP.NewRouter(jwtService, handlers, cfg.App.CORSOrigins)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}
