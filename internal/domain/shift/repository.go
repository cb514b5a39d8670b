package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	GetByDateAndBranch(ctx context.Context, date time.Time, branchID *string) (Shift, error)
	Delete(ctx context.Context, id string) error

	// GetByDateRange returns all shifts in [start, end] with assignments
	// loaded, optionally filtered by branch.
	GetByDateRange(ctx context.Context, start, end time.Time, branchID *string) ([]Shift, error)

	// Assignments
	AddAssignment(ctx context.Context, a Assignment) (Assignment, error)
	UpdateAssignment(ctx context.Context, a Assignment) error
	RemoveAssignment(ctx context.Context, id string) error
}
