package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/glowmark/retailops-backend-go/internal/domain/report"
	"github.com/glowmark/retailops-backend-go/internal/domain/user"
	"github.com/glowmark/retailops-backend-go/internal/handler/http/middleware"
	"github.com/glowmark/retailops-backend-go/internal/handler/http/response"
	userService "github.com/glowmark/retailops-backend-go/internal/service/user"
)

type ReportHandler interface {
	PeriodReport(w http.ResponseWriter, r *http.Request)
	RangeReport(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
	userService   userService.UserService
}

func NewReportHandler(reportService report.ReportService, userService userService.UserService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
		userService:   userService,
	}
}

// viewer loads the authenticated user; the report engine filters rows by the
// viewer's role.
func (h *ReportHandlerImpl) viewer(w http.ResponseWriter, r *http.Request) (user.User, bool) {
	userID, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return user.User{}, false
	}

	u, err := h.userService.Get(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return user.User{}, false
	}

	return u, true
}

// PeriodReport implements ReportHandler. Query params: month, year,
// period_mode (old|new|custom), custom_start/custom_end for custom mode, and
// an optional branch_id filter.
func (h *ReportHandlerImpl) PeriodReport(w http.ResponseWriter, r *http.Request) {
	viewer, ok := h.viewer(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()

	req := report.PeriodReportRequest{
		PeriodMode: report.PeriodMode(query.Get("period_mode")),
	}
	req.Month, _ = strconv.Atoi(query.Get("month"))
	req.Year, _ = strconv.Atoi(query.Get("year"))
	if v := query.Get("custom_start"); v != "" {
		req.CustomStart = &v
	}
	if v := query.Get("custom_end"); v != "" {
		req.CustomEnd = &v
	}
	if v := query.Get("branch_id"); v != "" {
		req.BranchID = &v
	}

	periods, err := h.reportService.PeriodReport(r.Context(), req, viewer)
	if err != nil {
		slog.Error("PeriodReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, periods)
}

// RangeReport implements ReportHandler. Query params: start_date, end_date
// and an optional branch_id filter.
func (h *ReportHandlerImpl) RangeReport(w http.ResponseWriter, r *http.Request) {
	viewer, ok := h.viewer(w, r)
	if !ok {
		return
	}

	start, end, err := parseDateRange(r)
	if err != nil {
		response.BadRequest(w, "Invalid date range, expected start_date and end_date as YYYY-MM-DD", nil)
		return
	}

	var branchID *string
	if v := r.URL.Query().Get("branch_id"); v != "" {
		branchID = &v
	}

	summary, err := h.reportService.RangeReport(r.Context(), start, end, branchID, viewer)
	if err != nil {
		slog.Error("RangeReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
