package branch

import (
	"time"

	"github.com/shopspring/decimal"
)

// Branch - a TikTok live-sales point
type Branch struct {
	ID        string
	Name      string
	IsActive  bool
	IsDefault bool // legacy orders without a branch belong here
	CreatedAt time.Time
}

// UserBranchAssignment - per-user settings on one branch.
// A nil CustomPercent means "fall through to the user's default percent".
type UserBranchAssignment struct {
	ID            string
	UserID        string
	BranchID      string
	CustomPercent *decimal.Decimal
	IsPrimary     bool
	IsAllowed     bool
}

// OrderTypeBranch - which order types a branch may sell
type OrderTypeBranch struct {
	ID          string
	OrderTypeID string
	BranchID    string
	IsAllowed   bool
}
