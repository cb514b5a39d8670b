package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/glowmark/retailops-backend-go/internal/domain/returns"
	"github.com/glowmark/retailops-backend-go/internal/handler/http/middleware"
	"github.com/glowmark/retailops-backend-go/internal/handler/http/response"
	returnService "github.com/glowmark/retailops-backend-go/internal/service/returns"
	"github.com/go-chi/chi/v5"
)

type ReturnHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type ReturnHandlerImpl struct {
	returnService returnService.ReturnService
}

func NewReturnHandler(service returnService.ReturnService) ReturnHandler {
	return &ReturnHandlerImpl{returnService: service}
}

func toReturnResponse(ret returns.Return) returns.ReturnResponse {
	return returns.ReturnResponse{
		ID:                  ret.ID,
		Date:                ret.Date.Format("2006-01-02"),
		Amount:              ret.Amount,
		Reason:              ret.Reason,
		OrderID:             ret.OrderID,
		PenaltyAmount:       ret.PenaltyAmount,
		PenaltyDistribution: ret.PenaltyDistribution,
	}
}

// Create implements ReturnHandler.
func (h *ReturnHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req returns.CreateReturnRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateReturn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	userID, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	created, err := h.returnService.Create(r.Context(), req, userID)
	if err != nil {
		slog.Error("CreateReturn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Return created", toReturnResponse(created))
}

// Update implements ReturnHandler.
func (h *ReturnHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req returns.CreateReturnRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateReturn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.returnService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("UpdateReturn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Return updated", toReturnResponse(updated))
}

// Delete implements ReturnHandler.
func (h *ReturnHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.returnService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteReturn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Return deleted", nil)
}

// List implements ReturnHandler.
func (h *ReturnHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseDateRange(r)
	if err != nil {
		response.BadRequest(w, "Invalid date range, expected start_date and end_date as YYYY-MM-DD", nil)
		return
	}

	rets, err := h.returnService.List(r.Context(), start, end)
	if err != nil {
		slog.Error("ListReturns service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := make([]returns.ReturnResponse, 0, len(rets))
	for _, ret := range rets {
		resp = append(resp, toReturnResponse(ret))
	}

	response.Success(w, resp)
}

// parseDateRange reads the start_date/end_date query params shared by the
// list endpoints.
func parseDateRange(r *http.Request) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", r.URL.Query().Get("start_date"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse("2006-01-02", r.URL.Query().Get("end_date"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
