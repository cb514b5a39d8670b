package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/glowmark/retailops-backend-go/internal/domain/branch"
	"github.com/glowmark/retailops-backend-go/internal/domain/ordertype"
	"github.com/glowmark/retailops-backend-go/internal/handler/http/response"
	masterService "github.com/glowmark/retailops-backend-go/internal/service/master"
	"github.com/go-chi/chi/v5"
)

type MasterHandler interface {
	// Branches
	CreateBranch(w http.ResponseWriter, r *http.Request)
	UpdateBranch(w http.ResponseWriter, r *http.Request)
	ListBranches(w http.ResponseWriter, r *http.Request)
	UpsertBranchAssignment(w http.ResponseWriter, r *http.Request)
	ListBranchAssignments(w http.ResponseWriter, r *http.Request)
	SetBranchOrderType(w http.ResponseWriter, r *http.Request)

	// Order types
	CreateOrderType(w http.ResponseWriter, r *http.Request)
	UpdateOrderType(w http.ResponseWriter, r *http.Request)
	ListOrderTypes(w http.ResponseWriter, r *http.Request)
	UpsertUserTypeSetting(w http.ResponseWriter, r *http.Request)
	ListUserTypeSettings(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService masterService.MasterService
}

func NewMasterHandler(service masterService.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: service}
}

// ========== BRANCHES ==========

// CreateBranch implements MasterHandler.
func (h *MasterHandlerImpl) CreateBranch(w http.ResponseWriter, r *http.Request) {
	var req branch.CreateBranchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateBranch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateBranch(r.Context(), req)
	if err != nil {
		slog.Error("CreateBranch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Branch created", branch.ToBranchResponse(created))
}

// UpdateBranch implements MasterHandler.
func (h *MasterHandlerImpl) UpdateBranch(w http.ResponseWriter, r *http.Request) {
	var req branch.UpdateBranchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateBranch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.masterService.UpdateBranch(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("UpdateBranch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Branch updated", branch.ToBranchResponse(updated))
}

// ListBranches implements MasterHandler.
func (h *MasterHandlerImpl) ListBranches(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	branches, err := h.masterService.ListBranches(r.Context(), activeOnly)
	if err != nil {
		slog.Error("ListBranches service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := make([]branch.BranchResponse, 0, len(branches))
	for _, b := range branches {
		resp = append(resp, branch.ToBranchResponse(b))
	}

	response.Success(w, resp)
}

// UpsertBranchAssignment implements MasterHandler.
func (h *MasterHandlerImpl) UpsertBranchAssignment(w http.ResponseWriter, r *http.Request) {
	var req branch.UpsertAssignmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertBranchAssignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.BranchID = chi.URLParam(r, "id")

	saved, err := h.masterService.UpsertBranchAssignment(r.Context(), req)
	if err != nil {
		slog.Error("UpsertBranchAssignment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment saved", branch.ToAssignmentResponse(saved))
}

// ListBranchAssignments implements MasterHandler.
func (h *MasterHandlerImpl) ListBranchAssignments(w http.ResponseWriter, r *http.Request) {
	branchID := chi.URLParam(r, "id")

	assignments, err := h.masterService.ListBranchAssignments(r.Context(), &branchID)
	if err != nil {
		slog.Error("ListBranchAssignments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := make([]branch.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		resp = append(resp, branch.ToAssignmentResponse(a))
	}

	response.Success(w, resp)
}

// SetBranchOrderType implements MasterHandler.
func (h *MasterHandlerImpl) SetBranchOrderType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderTypeID string `json:"order_type_id"`
		IsAllowed   bool   `json:"is_allowed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	err := h.masterService.SetBranchOrderType(r.Context(), req.OrderTypeID, chi.URLParam(r, "id"), req.IsAllowed)
	if err != nil {
		slog.Error("SetBranchOrderType service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Branch order type updated", nil)
}

// ========== ORDER TYPES ==========

// CreateOrderType implements MasterHandler.
func (h *MasterHandlerImpl) CreateOrderType(w http.ResponseWriter, r *http.Request) {
	var req ordertype.CreateOrderTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateOrderType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateOrderType(r.Context(), req)
	if err != nil {
		slog.Error("CreateOrderType service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Order type created", ordertype.ToOrderTypeResponse(created))
}

// UpdateOrderType implements MasterHandler.
func (h *MasterHandlerImpl) UpdateOrderType(w http.ResponseWriter, r *http.Request) {
	var req ordertype.UpdateOrderTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateOrderType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.masterService.UpdateOrderType(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("UpdateOrderType service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Order type updated", ordertype.ToOrderTypeResponse(updated))
}

// ListOrderTypes implements MasterHandler.
func (h *MasterHandlerImpl) ListOrderTypes(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	types, err := h.masterService.ListOrderTypes(r.Context(), activeOnly)
	if err != nil {
		slog.Error("ListOrderTypes service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := make([]ordertype.OrderTypeResponse, 0, len(types))
	for _, t := range types {
		resp = append(resp, ordertype.ToOrderTypeResponse(t))
	}

	response.Success(w, resp)
}

// UpsertUserTypeSetting implements MasterHandler.
func (h *MasterHandlerImpl) UpsertUserTypeSetting(w http.ResponseWriter, r *http.Request) {
	var req ordertype.UpsertUserSettingRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertUserTypeSetting decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.OrderTypeID = chi.URLParam(r, "id")

	saved, err := h.masterService.UpsertUserTypeSetting(r.Context(), req)
	if err != nil {
		slog.Error("UpsertUserTypeSetting service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User type setting saved", saved)
}

// ListUserTypeSettings implements MasterHandler.
func (h *MasterHandlerImpl) ListUserTypeSettings(w http.ResponseWriter, r *http.Request) {
	var userID *string
	if v := r.URL.Query().Get("user_id"); v != "" {
		userID = &v
	}

	settings, err := h.masterService.ListUserTypeSettings(r.Context(), userID)
	if err != nil {
		slog.Error("ListUserTypeSettings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings)
}
