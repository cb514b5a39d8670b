package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

// Location - where a shift or payout belongs. TikTok shifts pay a percent of
// the cashbox on top of the fixed wage; every other location pays fixed only.
type Location string

const (
	LocationTikTok Location = "TikTok"
	LocationStore  Location = "Store"
	LocationOther  Location = "Other"
)

// ValidLocations lists every location accepted at the write boundary.
var ValidLocations = []Location{LocationTikTok, LocationStore, LocationOther}

// Shift - one day's staffing record for a branch. At most one shift exists
// per (date, branch) pair.
type Shift struct {
	ID        string
	Date      time.Time
	Location  Location
	BranchID  *string
	CreatedBy string
	CreatedAt time.Time

	Assignments []Assignment
}

// Assignment - one employee's participation in a shift. Salary is computed
// from the time-proportional formula when the assignment is created or edited
// and treated as ground truth afterwards; the report engine reads it back
// without recomputing.
type Assignment struct {
	ID        string
	ShiftID   string
	UserID    string
	StartTime time.Time
	EndTime   time.Time
	Salary    decimal.Decimal
	CreatedBy string
	CreatedAt time.Time
}
