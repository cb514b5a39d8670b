package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin           Role = "admin"            // Full access, sees every row in reports
	RoleManager         Role = "manager"          // Creates orders, earns commission-based percent
	RoleEmployee        Role = "employee"         // Works TikTok/store shifts
	RoleStoreWorker     Role = "store_worker"     // Physical store staff, fixed pay only
	RoleWarehouseWorker Role = "warehouse_worker" // Warehouse staff, fixed pay only
)

// ValidRoles lists every role accepted at the write boundary.
var ValidRoles = []Role{RoleAdmin, RoleManager, RoleEmployee, RoleStoreWorker, RoleWarehouseWorker}

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role

	// Compensation profile. DefaultPercent is a percentage value (0-100),
	// never a fraction; percent math divides by 100 exactly once.
	DefaultRate    decimal.Decimal
	DefaultPercent decimal.Decimal

	// Standard shift bounds, the denominator for time-proportional pay.
	ShiftStart time.Time
	ShiftEnd   time.Time

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin checks if user has full access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManagerOrAdmin checks if user earns the order-creator commission cut
func (u *User) IsManagerOrAdmin() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// WorksShifts checks if user is paid through shift assignments
func (u *User) WorksShifts() bool {
	switch u.Role {
	case RoleEmployee, RoleStoreWorker, RoleWarehouseWorker:
		return true
	default:
		return false
	}
}
