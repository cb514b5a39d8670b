package returns

import (
	"time"

	"github.com/shopspring/decimal"
)

// Return - a refund/adjustment against the cashbox for a date. OrderID, when
// set, attributes the return to that order's creator; otherwise the amount is
// split per capita across the day's managers at report time. The penalty
// fields are independent of the cashbox effect: a return can carry zero
// amount and nonzero penalties, or the reverse.
type Return struct {
	ID        string
	Date      time.Time
	Amount    decimal.Decimal
	Reason    *string
	OrderID   *string
	CreatedBy string
	CreatedAt time.Time

	PenaltyAmount       decimal.Decimal
	PenaltyDistribution map[string]decimal.Decimal // user id -> penalty amount
}
