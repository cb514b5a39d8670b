package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/glowmark/retailops-backend-go/internal/domain/payout"
	"github.com/glowmark/retailops-backend-go/internal/domain/shift"
	"github.com/glowmark/retailops-backend-go/internal/handler/http/response"
	payoutService "github.com/glowmark/retailops-backend-go/internal/service/payout"
	"github.com/go-chi/chi/v5"
)

type PayoutHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type PayoutHandlerImpl struct {
	payoutService payoutService.PayoutService
}

func NewPayoutHandler(service payoutService.PayoutService) PayoutHandler {
	return &PayoutHandlerImpl{payoutService: service}
}

func toPayoutResponse(p payout.Payout) payout.PayoutResponse {
	return payout.PayoutResponse{
		ID:       p.ID,
		UserID:   p.UserID,
		Date:     p.Date.Format("2006-01-02"),
		Location: string(p.Location),
		RoleType: string(p.RoleType),
		Amount:   p.Amount,
		IsManual: p.IsManual,
	}
}

// Create implements PayoutHandler.
func (h *PayoutHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payout.CreatePayoutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePayout decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.payoutService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreatePayout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payout recorded", toPayoutResponse(created))
}

// Delete implements PayoutHandler.
func (h *PayoutHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.payoutService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeletePayout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payout deleted", nil)
}

// List implements PayoutHandler.
func (h *PayoutHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseDateRange(r)
	if err != nil {
		response.BadRequest(w, "Invalid date range, expected start_date and end_date as YYYY-MM-DD", nil)
		return
	}

	location := shift.Location(r.URL.Query().Get("location"))
	if location == "" {
		location = shift.LocationTikTok
	}

	payouts, err := h.payoutService.List(r.Context(), start, end, location)
	if err != nil {
		slog.Error("ListPayouts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := make([]payout.PayoutResponse, 0, len(payouts))
	for _, p := range payouts {
		resp = append(resp, toPayoutResponse(p))
	}

	response.Success(w, resp)
}
