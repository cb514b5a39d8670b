package vacation

import (
	"context"
	"time"
)

type VacationRepository interface {
	Create(ctx context.Context, v Vacation) (Vacation, error)
	GetByID(ctx context.Context, id string) (Vacation, error)
	Delete(ctx context.Context, id string) error

	// GetOverlapping returns every vacation whose date stretch intersects
	// [start, end].
	GetOverlapping(ctx context.Context, start, end time.Time) ([]Vacation, error)
}
