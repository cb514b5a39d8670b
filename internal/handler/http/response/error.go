package response

import (
	"errors"
	"net/http"

	"github.com/glowmark/retailops-backend-go/internal/domain/auth"
	"github.com/glowmark/retailops-backend-go/internal/domain/branch"
	"github.com/glowmark/retailops-backend-go/internal/domain/order"
	"github.com/glowmark/retailops-backend-go/internal/domain/ordertype"
	"github.com/glowmark/retailops-backend-go/internal/domain/payout"
	"github.com/glowmark/retailops-backend-go/internal/domain/report"
	"github.com/glowmark/retailops-backend-go/internal/domain/returns"
	"github.com/glowmark/retailops-backend-go/internal/domain/shift"
	"github.com/glowmark/retailops-backend-go/internal/domain/user"
	"github.com/glowmark/retailops-backend-go/internal/domain/vacation"
	"github.com/glowmark/retailops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "Account is deactivated")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrSelfDeactivate):
		BadRequest(w, "Cannot deactivate own account", nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrManagerPrivilegeRequired):
		Forbidden(w, "Manager privilege required")

	// Order domain errors
	case errors.Is(err, order.ErrOrderNotFound):
		NotFound(w, "Order not found")
	case errors.Is(err, order.ErrSplitSumMismatch):
		BadRequest(w, "Split amounts do not sum to order amount", nil)
	case errors.Is(err, order.ErrDuplicateSplitType):
		BadRequest(w, "Order type appears more than once in splits", nil)
	case errors.Is(err, order.ErrInvalidOrderTypes):
		BadRequest(w, "Some order types are invalid or inactive", nil)
	case errors.Is(err, order.ErrExactDuplicate):
		Conflict(w, "An identical order already exists")

	// Return domain errors
	case errors.Is(err, returns.ErrReturnNotFound):
		NotFound(w, "Return not found")
	case errors.Is(err, returns.ErrOrderNotFound):
		NotFound(w, "Linked order not found")
	case errors.Is(err, returns.ErrPenaltyMismatch):
		BadRequest(w, "Penalty distribution does not sum to penalty amount", nil)

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftExists):
		Conflict(w, "A shift already exists for this date and branch")
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, shift.ErrUserNotFound):
		NotFound(w, "Assigned user not found")
	case errors.Is(err, shift.ErrInvalidLocation):
		BadRequest(w, "Invalid shift location", nil)

	// Payout domain errors
	case errors.Is(err, payout.ErrPayoutNotFound):
		NotFound(w, "Payout not found")
	case errors.Is(err, payout.ErrUserNotFound):
		NotFound(w, "Payout user not found")

	// Vacation domain errors
	case errors.Is(err, vacation.ErrVacationNotFound):
		NotFound(w, "Vacation not found")
	case errors.Is(err, vacation.ErrUserNotFound):
		NotFound(w, "Vacation user not found")

	// Master data errors
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")
	case errors.Is(err, branch.ErrBranchNameExists):
		Conflict(w, "Branch name already exists")
	case errors.Is(err, ordertype.ErrOrderTypeNotFound):
		NotFound(w, "Order type not found")
	case errors.Is(err, ordertype.ErrOrderTypeNameExists):
		Conflict(w, "Order type name already exists")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range", nil)
	case errors.Is(err, report.ErrInvalidPeriodMode):
		BadRequest(w, "Invalid period mode", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
