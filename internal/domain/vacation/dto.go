package vacation

import (
	"github.com/glowmark/retailops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateVacationRequest struct {
	UserID    string          `json:"user_id"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Amount    decimal.Decimal `json:"amount"`
}

func (r *CreateVacationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "invalid date, expected YYYY-MM-DD",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "invalid date, expected YYYY-MM-DD",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end date must not precede start date",
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

type VacationResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Amount    decimal.Decimal `json:"amount"`
}
