package branch

import (
	"github.com/glowmark/retailops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateBranchRequest struct {
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
}

func (r *CreateBranchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateBranchRequest struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateBranchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpsertAssignmentRequest struct {
	UserID        string           `json:"user_id"`
	BranchID      string           `json:"branch_id"`
	CustomPercent *decimal.Decimal `json:"custom_percent,omitempty"`
	IsPrimary     bool             `json:"is_primary"`
	IsAllowed     bool             `json:"is_allowed"`
}

func (r *UpsertAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user id is required",
		})
	}
	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "branch_id",
			Message: "branch id is required",
		})
	}
	if r.CustomPercent != nil && !validator.IsValidPercent(*r.CustomPercent) {
		errs = append(errs, validator.ValidationError{
			Field:   "custom_percent",
			Message: "percent must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BranchResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsActive  bool   `json:"is_active"`
	IsDefault bool   `json:"is_default"`
}

func ToBranchResponse(b Branch) BranchResponse {
	return BranchResponse{
		ID:        b.ID,
		Name:      b.Name,
		IsActive:  b.IsActive,
		IsDefault: b.IsDefault,
	}
}

type AssignmentResponse struct {
	ID            string           `json:"id"`
	UserID        string           `json:"user_id"`
	BranchID      string           `json:"branch_id"`
	CustomPercent *decimal.Decimal `json:"custom_percent,omitempty"`
	IsPrimary     bool             `json:"is_primary"`
	IsAllowed     bool             `json:"is_allowed"`
}

func ToAssignmentResponse(a UserBranchAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:            a.ID,
		UserID:        a.UserID,
		BranchID:      a.BranchID,
		CustomPercent: a.CustomPercent,
		IsPrimary:     a.IsPrimary,
		IsAllowed:     a.IsAllowed,
	}
}
