package returns

import (
	"context"
	"time"
)

type ReturnRepository interface {
	Create(ctx context.Context, r Return) (Return, error)
	GetByID(ctx context.Context, id string) (Return, error)
	Update(ctx context.Context, r Return) error
	Delete(ctx context.Context, id string) error

	// GetByDateRange returns all returns in [start, end] with their linked
	// order creator resolved where an order link exists.
	GetByDateRange(ctx context.Context, start, end time.Time) ([]Return, error)
}
