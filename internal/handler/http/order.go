package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/glowmark/retailops-backend-go/internal/domain/order"
	"github.com/glowmark/retailops-backend-go/internal/handler/http/middleware"
	"github.com/glowmark/retailops-backend-go/internal/handler/http/response"
	orderService "github.com/glowmark/retailops-backend-go/internal/service/order"
	"github.com/go-chi/chi/v5"
)

type OrderHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	CheckDuplicates(w http.ResponseWriter, r *http.Request)
}

type OrderHandlerImpl struct {
	orderService orderService.OrderService
}

func NewOrderHandler(service orderService.OrderService) OrderHandler {
	return &OrderHandlerImpl{orderService: service}
}

func toOrderResponse(o order.Order) order.OrderResponse {
	splits := make([]order.TypeSplitResponse, 0, len(o.Splits))
	for _, s := range o.Splits {
		splits = append(splits, order.TypeSplitResponse{
			OrderTypeID: s.OrderTypeID,
			Amount:      s.Amount,
		})
	}
	return order.OrderResponse{
		ID:          o.ID,
		Date:        o.Date.Format("2006-01-02"),
		PhoneNumber: o.PhoneNumber,
		Amount:      o.Amount,
		BranchID:    o.BranchID,
		CreatedBy:   o.CreatedBy,
		Splits:      splits,
	}
}

// Create implements OrderHandler.
func (h *OrderHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req order.CreateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateOrder decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	userID, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	created, err := h.orderService.Create(r.Context(), req, userID)
	if err != nil {
		slog.Error("CreateOrder service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Order created", toOrderResponse(created))
}

// Update implements OrderHandler.
func (h *OrderHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req order.UpdateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateOrder decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.orderService.Update(r.Context(), req)
	if err != nil {
		slog.Error("UpdateOrder service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Order updated", toOrderResponse(updated))
}

// Delete implements OrderHandler.
func (h *OrderHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.orderService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteOrder service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Order deleted", nil)
}

// Get implements OrderHandler.
func (h *OrderHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	o, err := h.orderService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toOrderResponse(o))
}

// CheckDuplicates implements OrderHandler. Called from the create form before
// submitting, so exact duplicates surface as a warning, not an error.
func (h *OrderHandlerImpl) CheckDuplicates(w http.ResponseWriter, r *http.Request) {
	var req struct {
		order.CreateOrderRequest
		ExcludeID *string `json:"exclude_id,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckDuplicates decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.orderService.CheckDuplicates(r.Context(), req.CreateOrderRequest, req.ExcludeID)
	if err != nil {
		slog.Error("CheckDuplicates service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
