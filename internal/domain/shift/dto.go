package shift

import (
	"github.com/glowmark/retailops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateShiftRequest struct {
	Date     string  `json:"date"`
	Location string  `json:"location"`
	BranchID *string `json:"branch_id,omitempty"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "invalid date, expected YYYY-MM-DD",
		})
	}

	valid := false
	for _, loc := range ValidLocations {
		if r.Location == string(loc) {
			valid = true
			break
		}
	}
	if !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "invalid location",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AddAssignmentRequest - assignment times default to the user's standard
// shift bounds when omitted.
type AddAssignmentRequest struct {
	ShiftID   string  `json:"shift_id"`
	UserID    string  `json:"user_id"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}

func (r *AddAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift id is required",
		})
	}
	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user id is required",
		})
	}
	if r.StartTime != nil && !validator.IsValidTimeOfDay(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "invalid time, expected HH:MM",
		})
	}
	if r.EndTime != nil && !validator.IsValidTimeOfDay(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "invalid time, expected HH:MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignmentResponse struct {
	ID        string          `json:"id"`
	ShiftID   string          `json:"shift_id"`
	UserID    string          `json:"user_id"`
	StartTime string          `json:"start_time"`
	EndTime   string          `json:"end_time"`
	Salary    decimal.Decimal `json:"salary"`
}

type ShiftResponse struct {
	ID          string               `json:"id"`
	Date        string               `json:"date"`
	Location    string               `json:"location"`
	BranchID    *string              `json:"branch_id,omitempty"`
	Assignments []AssignmentResponse `json:"assignments"`
}
