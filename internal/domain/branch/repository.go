package branch

import "context"

type BranchRepository interface {
	Create(ctx context.Context, b Branch) (Branch, error)
	GetByID(ctx context.Context, id string) (Branch, error)
	GetAll(ctx context.Context, activeOnly bool) ([]Branch, error)
	GetDefault(ctx context.Context) (Branch, error)
	Update(ctx context.Context, b Branch) error

	// User assignments
	UpsertUserAssignment(ctx context.Context, a UserBranchAssignment) (UserBranchAssignment, error)
	GetUserAssignments(ctx context.Context, branchID *string) ([]UserBranchAssignment, error)

	// Order type allow list
	SetOrderTypeAllowed(ctx context.Context, orderTypeID, branchID string, allowed bool) error
	GetAllowedOrderTypes(ctx context.Context, branchID string) ([]string, error)
}
