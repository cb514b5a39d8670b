package ordertype

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderType - a sale category ("Perfume", "Amazon", ...).
// CommissionPercent is the fraction of the type's sale amount that counts as
// profit subject to a manager's percent cut. DefaultEmployeePercent, when set,
// overrides user.DefaultPercent for this type. Types with
// IncludeInEmployeeSalary=false are excluded from the employee cashbox base
// but still count toward the manager commission and gross totals.
type OrderType struct {
	ID                      string
	Name                    string
	CommissionPercent       decimal.Decimal
	DefaultEmployeePercent  *decimal.Decimal
	IncludeInEmployeeSalary bool
	IsActive                bool
	CreatedAt               time.Time
}

// UserTypeSetting - per-user overrides for one order type.
// A nil CustomPercent falls through to the type default, then the user default.
type UserTypeSetting struct {
	ID            string
	UserID        string
	OrderTypeID   string
	CustomPercent *decimal.Decimal
	IsAllowed     bool
}
