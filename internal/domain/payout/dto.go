package payout

import (
	"github.com/glowmark/retailops-backend-go/internal/domain/shift"
	"github.com/glowmark/retailops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePayoutRequest struct {
	UserID   string          `json:"user_id"`
	Date     string          `json:"date"`
	Location string          `json:"location"`
	Amount   decimal.Decimal `json:"amount"`
}

func (r *CreatePayoutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "invalid date, expected YYYY-MM-DD",
		})
	}

	valid := false
	for _, loc := range shift.ValidLocations {
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

	if !validator.IsValidAmount(r.Amount) || r.Amount.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayoutResponse struct {
	ID       string          `json:"id"`
	UserID   string          `json:"user_id"`
	Date     string          `json:"date"`
	Location string          `json:"location"`
	RoleType string          `json:"role_type"`
	Amount   decimal.Decimal `json:"amount"`
	IsManual bool            `json:"is_manual"`
}
