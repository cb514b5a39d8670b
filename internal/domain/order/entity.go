package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// TypeSplit - one (order type, amount) slice of an order. Every order is
// normalized into a split list at ingestion; a legacy single-type order
// becomes a one-element list covering the full amount.
type TypeSplit struct {
	OrderTypeID string
	Amount      decimal.Decimal
}

// Order - a single sale
type Order struct {
	ID          string
	Date        time.Time
	PhoneNumber string
	Amount      decimal.Decimal
	BranchID    *string
	CreatedBy   string
	CreatedAt   time.Time

	Splits []TypeSplit
}

// SplitSum returns the sum of the per-type split amounts. Past the write
// boundary it always equals Amount.
func (o *Order) SplitSum() decimal.Decimal {
	sum := decimal.Zero
	for _, s := range o.Splits {
		sum = sum.Add(s.Amount)
	}
	return sum
}
