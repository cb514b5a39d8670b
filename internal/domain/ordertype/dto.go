package ordertype

import (
	"github.com/glowmark/retailops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateOrderTypeRequest struct {
	Name                    string           `json:"name"`
	CommissionPercent       decimal.Decimal  `json:"commission_percent"`
	DefaultEmployeePercent  *decimal.Decimal `json:"default_employee_percent,omitempty"`
	IncludeInEmployeeSalary *bool            `json:"include_in_employee_salary,omitempty"`
}

func (r *CreateOrderTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsValidPercent(r.CommissionPercent) {
		errs = append(errs, validator.ValidationError{
			Field:   "commission_percent",
			Message: "percent must be between 0 and 100",
		})
	}
	if r.DefaultEmployeePercent != nil && !validator.IsValidPercent(*r.DefaultEmployeePercent) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_employee_percent",
			Message: "percent must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateOrderTypeRequest struct {
	Name                    *string          `json:"name,omitempty"`
	CommissionPercent       *decimal.Decimal `json:"commission_percent,omitempty"`
	DefaultEmployeePercent  *decimal.Decimal `json:"default_employee_percent,omitempty"`
	IncludeInEmployeeSalary *bool            `json:"include_in_employee_salary,omitempty"`
	IsActive                *bool            `json:"is_active,omitempty"`
}

func (r *UpdateOrderTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be empty",
		})
	}
	if r.CommissionPercent != nil && !validator.IsValidPercent(*r.CommissionPercent) {
		errs = append(errs, validator.ValidationError{
			Field:   "commission_percent",
			Message: "percent must be between 0 and 100",
		})
	}
	if r.DefaultEmployeePercent != nil && !validator.IsValidPercent(*r.DefaultEmployeePercent) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_employee_percent",
			Message: "percent must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpsertUserSettingRequest struct {
	UserID        string           `json:"user_id"`
	OrderTypeID   string           `json:"order_type_id"`
	CustomPercent *decimal.Decimal `json:"custom_percent,omitempty"`
	IsAllowed     bool             `json:"is_allowed"`
}

func (r *UpsertUserSettingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user id is required",
		})
	}
	if validator.IsEmpty(r.OrderTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "order_type_id",
			Message: "order type id is required",
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

type OrderTypeResponse struct {
	ID                      string           `json:"id"`
	Name                    string           `json:"name"`
	CommissionPercent       decimal.Decimal  `json:"commission_percent"`
	DefaultEmployeePercent  *decimal.Decimal `json:"default_employee_percent,omitempty"`
	IncludeInEmployeeSalary bool             `json:"include_in_employee_salary"`
	IsActive                bool             `json:"is_active"`
}

func ToOrderTypeResponse(t OrderType) OrderTypeResponse {
	return OrderTypeResponse{
		ID:                      t.ID,
		Name:                    t.Name,
		CommissionPercent:       t.CommissionPercent,
		DefaultEmployeePercent:  t.DefaultEmployeePercent,
		IncludeInEmployeeSalary: t.IncludeInEmployeeSalary,
		IsActive:                t.IsActive,
	}
}
