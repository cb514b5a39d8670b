package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/glowmark/retailops-backend-go/internal/domain/shift"
	"github.com/glowmark/retailops-backend-go/internal/handler/http/middleware"
	"github.com/glowmark/retailops-backend-go/internal/handler/http/response"
	shiftService "github.com/glowmark/retailops-backend-go/internal/service/shift"
	"github.com/go-chi/chi/v5"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AddAssignment(w http.ResponseWriter, r *http.Request)
	UpdateAssignment(w http.ResponseWriter, r *http.Request)
	RemoveAssignment(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shiftService.ShiftService
}

func NewShiftHandler(service shiftService.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: service}
}

func toAssignmentResponse(a shift.Assignment) shift.AssignmentResponse {
	return shift.AssignmentResponse{
		ID:        a.ID,
		ShiftID:   a.ShiftID,
		UserID:    a.UserID,
		StartTime: a.StartTime.Format("15:04"),
		EndTime:   a.EndTime.Format("15:04"),
		Salary:    a.Salary,
	}
}

func toShiftResponse(s shift.Shift) shift.ShiftResponse {
	assignments := make([]shift.AssignmentResponse, 0, len(s.Assignments))
	for _, a := range s.Assignments {
		assignments = append(assignments, toAssignmentResponse(a))
	}
	return shift.ShiftResponse{
		ID:          s.ID,
		Date:        s.Date.Format("2006-01-02"),
		Location:    string(s.Location),
		BranchID:    s.BranchID,
		Assignments: assignments,
	}
}

// Create implements ShiftHandler.
func (h *ShiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	userID, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	created, err := h.shiftService.Create(r.Context(), req, userID)
	if err != nil {
		slog.Error("CreateShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created", toShiftResponse(created))
}

// Get implements ShiftHandler.
func (h *ShiftHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.shiftService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toShiftResponse(s))
}

// Delete implements ShiftHandler.
func (h *ShiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted", nil)
}

// AddAssignment implements ShiftHandler.
func (h *ShiftHandlerImpl) AddAssignment(w http.ResponseWriter, r *http.Request) {
	var req shift.AddAssignmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddAssignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ShiftID = chi.URLParam(r, "id")

	userID, ok := middleware.CurrentUserID(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	created, err := h.shiftService.AddAssignment(r.Context(), req, userID)
	if err != nil {
		slog.Error("AddAssignment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Assignment added", toAssignmentResponse(created))
}

// UpdateAssignment implements ShiftHandler.
func (h *ShiftHandlerImpl) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateAssignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.shiftService.UpdateAssignmentTimes(r.Context(),
		chi.URLParam(r, "assignmentID"), chi.URLParam(r, "id"),
		req.StartTime, req.EndTime)
	if err != nil {
		slog.Error("UpdateAssignment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment updated", toAssignmentResponse(updated))
}

// RemoveAssignment implements ShiftHandler.
func (h *ShiftHandlerImpl) RemoveAssignment(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.RemoveAssignment(r.Context(), chi.URLParam(r, "assignmentID")); err != nil {
		slog.Error("RemoveAssignment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment removed", nil)
}
