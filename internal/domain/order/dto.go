package order

import (
	"github.com/glowmark/retailops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// splitTolerance allows for sub-cent noise when comparing the split sum
// against the order amount.
var splitTolerance = decimal.NewFromFloat(0.01)

type TypeSplitRequest struct {
	OrderTypeID string          `json:"order_type_id"`
	Amount      decimal.Decimal `json:"amount"`
}

type CreateOrderRequest struct {
	Date        string             `json:"date"`
	PhoneNumber string             `json:"phone_number"`
	Amount      decimal.Decimal    `json:"amount"`
	BranchID    *string            `json:"branch_id,omitempty"`
	Splits      []TypeSplitRequest `json:"order_types"`
}

func (r *CreateOrderRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "invalid date, expected YYYY-MM-DD",
		})
	}

	if validator.IsEmpty(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone number is required",
		})
	} else if !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "invalid phone number",
		})
	}

	if !validator.IsValidAmount(r.Amount) || r.Amount.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be positive",
		})
	}

	if len(r.Splits) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "order_types",
			Message: "at least one order type is required",
		})
	} else {
		seen := make(map[string]bool, len(r.Splits))
		sum := decimal.Zero
		for _, s := range r.Splits {
			if validator.IsEmpty(s.OrderTypeID) {
				errs = append(errs, validator.ValidationError{
					Field:   "order_types",
					Message: "order type id is required for every split",
				})
				continue
			}
			if seen[s.OrderTypeID] {
				errs = append(errs, validator.ValidationError{
					Field:   "order_types",
					Message: "order type appears more than once",
				})
			}
			seen[s.OrderTypeID] = true
			if !validator.IsValidAmount(s.Amount) {
				errs = append(errs, validator.ValidationError{
					Field:   "order_types",
					Message: "split amounts must not be negative",
				})
			}
			sum = sum.Add(s.Amount)
		}
		if sum.Sub(r.Amount).Abs().GreaterThan(splitTolerance) {
			errs = append(errs, validator.ValidationError{
				Field:   "order_types",
				Message: "split amounts must sum to the order amount",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateOrderRequest struct {
	ID          string             `json:"id"`
	Date        string             `json:"date"`
	PhoneNumber string             `json:"phone_number"`
	Amount      decimal.Decimal    `json:"amount"`
	BranchID    *string            `json:"branch_id,omitempty"`
	Splits      []TypeSplitRequest `json:"order_types"`
}

func (r *UpdateOrderRequest) Validate() error {
	if validator.IsEmpty(r.ID) {
		return validator.ValidationErrors{{Field: "id", Message: "id is required"}}
	}
	create := CreateOrderRequest{
		Date:        r.Date,
		PhoneNumber: r.PhoneNumber,
		Amount:      r.Amount,
		BranchID:    r.BranchID,
		Splits:      r.Splits,
	}
	return create.Validate()
}

type OrderResponse struct {
	ID          string              `json:"id"`
	Date        string              `json:"date"`
	PhoneNumber string              `json:"phone_number"`
	Amount      decimal.Decimal     `json:"amount"`
	BranchID    *string             `json:"branch_id,omitempty"`
	CreatedBy   string              `json:"created_by"`
	Splits      []TypeSplitResponse `json:"order_types"`
}

type TypeSplitResponse struct {
	OrderTypeID   string          `json:"order_type_id"`
	OrderTypeName string          `json:"order_type_name,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
}

// DuplicateCheckResult mirrors the create-form duplicate warning: an exact
// duplicate shares phone, date, amount and the same split set; similar orders
// share everything but the splits.
type DuplicateCheckResult struct {
	ExactDuplicate *Order  `json:"exact_duplicate,omitempty"`
	SimilarOrders  []Order `json:"similar_orders"`
}
