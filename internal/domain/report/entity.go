package report

import (
	"time"

	"github.com/glowmark/retailops-backend-go/internal/domain/branch"
	"github.com/glowmark/retailops-backend-go/internal/domain/order"
	"github.com/glowmark/retailops-backend-go/internal/domain/ordertype"
	"github.com/glowmark/retailops-backend-go/internal/domain/returns"
	"github.com/glowmark/retailops-backend-go/internal/domain/shift"
	"github.com/glowmark/retailops-backend-go/internal/domain/user"
	"github.com/glowmark/retailops-backend-go/internal/domain/vacation"
	"github.com/shopspring/decimal"
)

// Snapshot holds every collection the engine reads for one report request.
// It is assembled by a small number of bulk reads before the engine runs; the
// engine itself never touches the database and never mutates the snapshot.
type Snapshot struct {
	Users      map[string]user.User
	OrderTypes map[string]ordertype.OrderType

	Orders    []order.Order
	Returns   []returns.Return
	Shifts    []shift.Shift
	Vacations []vacation.Vacation

	TypeSettings      []ordertype.UserTypeSetting
	BranchAssignments []branch.UserBranchAssignment

	// Payouts is user id -> total paid for the period, already filtered by
	// viewer role by the data access layer.
	Payouts map[string]decimal.Decimal
}

// AssignmentDetail - raw employee assignment data echoed into a day record.
type AssignmentDetail struct {
	UserID    string          `json:"user_id"`
	StartTime string          `json:"start_time"`
	EndTime   string          `json:"end_time"`
	Salary    decimal.Decimal `json:"salary"`
}

// TypeStat - per-order-type aggregate. A multi-type order counts once toward
// Count for each type it touches.
type TypeStat struct {
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// CreatorStat - per-creator aggregate, including returns attributed to the
// creator's orders.
type CreatorStat struct {
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	Count   int             `json:"count"`
	Returns decimal.Decimal `json:"returns"`
}

// DayRecord - the engine's per-day output.
type DayRecord struct {
	Date    time.Time       `json:"date"`
	Orders  decimal.Decimal `json:"orders"`
	Returns decimal.Decimal `json:"returns"`
	Cashbox decimal.Decimal `json:"cashbox"`

	SalaryByUser    map[string]decimal.Decimal `json:"salary_by_user"`
	FixedByUser     map[string]decimal.Decimal `json:"salary_fixed_by_user"`
	PercentByUser   map[string]decimal.Decimal `json:"salary_percent_by_user"`
	PenaltiesByUser map[string]decimal.Decimal `json:"penalties_by_user"`

	Employees []AssignmentDetail `json:"employees"`
	Creators  []string           `json:"creators"`
	ShiftID   *string            `json:"shift_id,omitempty"`

	// Admin-only day stats; empty for manager viewers.
	OrdersByType    map[string]TypeStat    `json:"orders_by_type"`
	OrdersByCreator map[string]CreatorStat `json:"orders_by_creator"`
}

// VacationEntry - a vacation overlapping the period, echoed alongside the
// salary table. The accrued share is already inside the daily fixed sums.
type VacationEntry struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Amount    decimal.Decimal `json:"amount"`
}

// UserSalary - one row of the period salary table.
type UserSalary struct {
	UserID    string          `json:"user_id"`
	Name      string          `json:"name"`
	Fixed     decimal.Decimal `json:"fixed"`
	Percent   decimal.Decimal `json:"percent"`
	Penalties decimal.Decimal `json:"penalties"`
	Total     decimal.Decimal `json:"total"`
	Paid      decimal.Decimal `json:"paid"`
	Remaining decimal.Decimal `json:"remaining"`
}

type PeriodTotals struct {
	Orders  decimal.Decimal `json:"orders"`
	Returns decimal.Decimal `json:"returns"`
	Cashbox decimal.Decimal `json:"cashbox"`
}

type TypeBreakdownEntry struct {
	TypeName string          `json:"type_name"`
	Amount   decimal.Decimal `json:"amount"`
	Count    int             `json:"count"`
}

type CreatorBreakdownEntry struct {
	UserID  string          `json:"user_id"`
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	Count   int             `json:"count"`
	Returns decimal.Decimal `json:"returns"`
}

// PeriodSummary - the folded report for one [start, end] range.
type PeriodSummary struct {
	Days              []DayRecord             `json:"days"`
	Totals            PeriodTotals            `json:"totals"`
	Salaries          []UserSalary            `json:"salaries"`
	Vacations         []VacationEntry         `json:"vacations"`
	TypesBreakdown    []TypeBreakdownEntry    `json:"types_breakdown"`
	CreatorsBreakdown []CreatorBreakdownEntry `json:"creators_breakdown"`
}
