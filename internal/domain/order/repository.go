package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	Create(ctx context.Context, o Order) (Order, error)
	GetByID(ctx context.Context, id string) (Order, error)
	Update(ctx context.Context, o Order) error
	Delete(ctx context.Context, id string) error

	// GetByDateRange returns all orders in [start, end] with splits loaded,
	// optionally filtered by branch. Legacy rows come back normalized into
	// one-element split lists.
	GetByDateRange(ctx context.Context, start, end time.Time, branchID *string) ([]Order, error)

	// FindMatching returns orders with the same phone, date and amount,
	// excluding excludeID when non-nil. Used for duplicate detection.
	FindMatching(ctx context.Context, phone string, date time.Time, amount decimal.Decimal, excludeID *string) ([]Order, error)
}
