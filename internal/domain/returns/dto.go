package returns

import (
	"github.com/glowmark/retailops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateReturnRequest struct {
	Date                string                     `json:"date"`
	Amount              decimal.Decimal            `json:"amount"`
	Reason              *string                    `json:"reason,omitempty"`
	OrderID             *string                    `json:"order_id,omitempty"`
	PenaltyAmount       decimal.Decimal            `json:"penalty_amount"`
	PenaltyDistribution map[string]decimal.Decimal `json:"penalty_distribution,omitempty"`
}

func (r *CreateReturnRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "invalid date, expected YYYY-MM-DD",
		})
	}

	if !validator.IsValidAmount(r.Amount) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be negative",
		})
	}

	if !validator.IsValidAmount(r.PenaltyAmount) {
		errs = append(errs, validator.ValidationError{
			Field:   "penalty_amount",
			Message: "penalty amount must not be negative",
		})
	}

	distSum := decimal.Zero
	for userID, amount := range r.PenaltyDistribution {
		if validator.IsEmpty(userID) {
			errs = append(errs, validator.ValidationError{
				Field:   "penalty_distribution",
				Message: "user id is required for every penalty entry",
			})
		}
		if !validator.IsValidAmount(amount) {
			errs = append(errs, validator.ValidationError{
				Field:   "penalty_distribution",
				Message: "penalty entries must not be negative",
			})
		}
		distSum = distSum.Add(amount)
	}
	if len(r.PenaltyDistribution) > 0 && !distSum.Equal(r.PenaltyAmount) {
		errs = append(errs, validator.ValidationError{
			Field:   "penalty_distribution",
			Message: "penalty entries must sum to the penalty amount",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReturnResponse struct {
	ID                  string                     `json:"id"`
	Date                string                     `json:"date"`
	Amount              decimal.Decimal            `json:"amount"`
	Reason              *string                    `json:"reason,omitempty"`
	OrderID             *string                    `json:"order_id,omitempty"`
	PenaltyAmount       decimal.Decimal            `json:"penalty_amount"`
	PenaltyDistribution map[string]decimal.Decimal `json:"penalty_distribution,omitempty"`
}
