package payout

import (
	"context"
	"time"

	"github.com/glowmark/retailops-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
)

type PayoutRepository interface {
	Create(ctx context.Context, p Payout) (Payout, error)
	GetByID(ctx context.Context, id string) (Payout, error)
	Delete(ctx context.Context, id string) error
	GetByDateRange(ctx context.Context, start, end time.Time, location shift.Location) ([]Payout, error)

	// SumByUser returns user id -> total paid for the range and location.
	// When excludeAdmins is set, payouts to admin users are dropped before
	// the map is built (manager viewers never see them).
	SumByUser(ctx context.Context, start, end time.Time, location shift.Location, excludeAdmins bool) (map[string]decimal.Decimal, error)
}
