package payout

import (
	"time"

	"github.com/glowmark/retailops-backend-go/internal/domain/shift"
	"github.com/glowmark/retailops-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

// Payout - a manually recorded cash disbursement. Payouts are authoritative
// ledger entries: never inferred, only recorded by an operator and summed per
// user per period to derive the remaining balance.
type Payout struct {
	ID        string
	UserID    string
	Date      time.Time
	Location  shift.Location
	RoleType  user.Role
	Amount    decimal.Decimal
	IsManual  bool
	PaidAt    time.Time
	CreatedAt time.Time
}
