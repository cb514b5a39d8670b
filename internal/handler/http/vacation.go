package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/glowmark/retailops-backend-go/internal/domain/vacation"
	"github.com/glowmark/retailops-backend-go/internal/handler/http/response"
	vacationService "github.com/glowmark/retailops-backend-go/internal/service/vacation"
	"github.com/go-chi/chi/v5"
)

type VacationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type VacationHandlerImpl struct {
	vacationService vacationService.VacationService
}

func NewVacationHandler(service vacationService.VacationService) VacationHandler {
	return &VacationHandlerImpl{vacationService: service}
}

func toVacationResponse(v vacation.Vacation) vacation.VacationResponse {
	return vacation.VacationResponse{
		ID:        v.ID,
		UserID:    v.UserID,
		StartDate: v.StartDate.Format("2006-01-02"),
		EndDate:   v.EndDate.Format("2006-01-02"),
		Amount:    v.Amount,
	}
}

// Create implements VacationHandler.
func (h *VacationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req vacation.CreateVacationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateVacation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.vacationService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateVacation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Vacation recorded", toVacationResponse(created))
}

// Delete implements VacationHandler.
func (h *VacationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.vacationService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteVacation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation deleted", nil)
}

// List implements VacationHandler.
func (h *VacationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseDateRange(r)
	if err != nil {
		response.BadRequest(w, "Invalid date range, expected start_date and end_date as YYYY-MM-DD", nil)
		return
	}

	vacations, err := h.vacationService.List(r.Context(), start, end)
	if err != nil {
		slog.Error("ListVacations service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := make([]vacation.VacationResponse, 0, len(vacations))
	for _, v := range vacations {
		resp = append(resp, toVacationResponse(v))
	}

	response.Success(w, resp)
}
