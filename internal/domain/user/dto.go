package user

import (
	"github.com/glowmark/retailops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	DefaultRate    string `json:"default_rate"`
	DefaultPercent string `json:"default_percent"`
	ShiftStart     string `json:"shift_start"`
	ShiftEnd       string `json:"shift_end"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at"`
}

// CreateUserRequest represents request to create a new user
type CreateUserRequest struct {
	Email          string           `json:"email"`
	Name           string           `json:"name"`
	Password       string           `json:"password"`
	Role           string           `json:"role"`
	DefaultRate    *decimal.Decimal `json:"default_rate,omitempty"`
	DefaultPercent *decimal.Decimal `json:"default_percent,omitempty"`
	ShiftStart     *string          `json:"shift_start,omitempty"`
	ShiftEnd       *string          `json:"shift_end,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	} else {
		valid := false
		for _, role := range ValidRoles {
			if r.Role == string(role) {
				valid = true
				break
			}
		}
		if !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "invalid role",
			})
		}
	}

	if r.DefaultPercent != nil && !validator.IsValidPercent(*r.DefaultPercent) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_percent",
			Message: "percent must be between 0 and 100",
		})
	}

	if r.ShiftStart != nil && !validator.IsValidTimeOfDay(*r.ShiftStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_start",
			Message: "invalid time, expected HH:MM",
		})
	}
	if r.ShiftEnd != nil && !validator.IsValidTimeOfDay(*r.ShiftEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_end",
			Message: "invalid time, expected HH:MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateUserRequest represents request to update user
type UpdateUserRequest struct {
	ID             string           `json:"id"`
	Email          *string          `json:"email,omitempty"`
	Name           *string          `json:"name,omitempty"`
	Role           *string          `json:"role,omitempty"`
	DefaultRate    *decimal.Decimal `json:"default_rate,omitempty"`
	DefaultPercent *decimal.Decimal `json:"default_percent,omitempty"`
	ShiftStart     *string          `json:"shift_start,omitempty"`
	ShiftEnd       *string          `json:"shift_end,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.Role != nil {
		valid := false
		for _, role := range ValidRoles {
			if *r.Role == string(role) {
				valid = true
				break
			}
		}
		if !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "invalid role",
			})
		}
	}

	if r.DefaultPercent != nil && !validator.IsValidPercent(*r.DefaultPercent) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_percent",
			Message: "percent must be between 0 and 100",
		})
	}

	if r.ShiftStart != nil && !validator.IsValidTimeOfDay(*r.ShiftStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_start",
			Message: "invalid time, expected HH:MM",
		})
	}
	if r.ShiftEnd != nil && !validator.IsValidTimeOfDay(*r.ShiftEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_end",
			Message: "invalid time, expected HH:MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
