package report

import (
	"time"

	"github.com/glowmark/retailops-backend-go/internal/domain/report"
	"github.com/glowmark/retailops-backend-go/internal/domain/shift"
	"github.com/glowmark/retailops-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

// Engine runs the payroll computation over one snapshot. It is built per
// report request, holds only its own accumulators and never mutates the
// snapshot, so concurrent report generation needs no locking.
type Engine struct {
	snap     report.Snapshot
	branchID *string
	viewer   user.User

	res          *PercentResolver
	cash         *cashboxAggregate
	rets         *returnsAggregate
	shiftsByDate map[string][]shift.Shift
}

func NewEngine(snap report.Snapshot, branchID *string, viewer user.User) *Engine {
	e := &Engine{
		snap:         snap,
		branchID:     branchID,
		viewer:       viewer,
		res:          NewPercentResolver(snap.OrderTypes, snap.TypeSettings, snap.BranchAssignments),
		shiftsByDate: make(map[string][]shift.Shift),
	}
	e.cash = newCashboxAggregate(snap.Orders, e.res)
	e.rets = newReturnsAggregate(snap.Returns, snap.Orders)
	for _, s := range snap.Shifts {
		day := dateKey(s.Date)
		e.shiftsByDate[day] = append(e.shiftsByDate[day], s)
	}
	return e
}

// BuildDays walks [start, end] one calendar day at a time and emits a record
// per day. The only error is a reversed range; everything inside the loop is
// total arithmetic with documented fallbacks.
func (e *Engine) BuildDays(start, end time.Time) ([]report.DayRecord, error) {
	if start.After(end) {
		return nil, report.ErrInvalidDateRange
	}

	var days []report.DayRecord
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		days = append(days, e.buildDay(current))
	}
	return days, nil
}

func (e *Engine) buildDay(date time.Time) report.DayRecord {
	day := dateKey(date)

	shifts := e.shiftsByDate[day]
	dayOrders := e.cash.byCreator[day]
	returnsTotal := e.rets.totalByDate[day]
	gross := e.cash.grossByDate[day]
	cashbox := gross.Sub(returnsTotal)
	employeeCashbox := e.cash.employeeBase[day].Sub(returnsTotal)

	fixed := make(map[string]decimal.Decimal)
	percent := make(map[string]decimal.Decimal)
	var details []report.AssignmentDetail
	var shiftID *string
	if len(shifts) > 0 {
		id := shifts[0].ID
		shiftID = &id
	}

	// Employee assignments. TikTok shifts pay a percent of the employee
	// cashbox split by headcount on top of the stored fixed wage; every
	// other location pays the stored wage only. The headcount split is
	// deliberate even though wages themselves are hour-proportional.
	tiktokCount := 0
	for _, s := range shifts {
		if s.Location != shift.LocationTikTok {
			continue
		}
		for _, a := range s.Assignments {
			if u, ok := e.snap.Users[a.UserID]; ok && u.Role == user.RoleEmployee {
				tiktokCount++
			}
		}
	}

	for _, s := range shifts {
		for _, a := range s.Assignments {
			u, ok := e.snap.Users[a.UserID]
			if !ok || !u.WorksShifts() {
				continue
			}
			if s.Location == shift.LocationTikTok && u.Role != user.RoleEmployee {
				continue
			}

			fixed[a.UserID] = fixed[a.UserID].Add(a.Salary)
			details = append(details, report.AssignmentDetail{
				UserID:    a.UserID,
				StartTime: a.StartTime.Format("15:04"),
				EndTime:   a.EndTime.Format("15:04"),
				Salary:    a.Salary,
			})

			if s.Location == shift.LocationTikTok && tiktokCount > 0 {
				perHead := employeeCashbox.Div(decimal.NewFromInt(int64(tiktokCount)))
				rate := e.res.Resolve(u, nil, e.branchID)
				percent[a.UserID] = percent[a.UserID].Add(perHead.Mul(rate).Div(decimalHundred).Round(0))
			}
		}
	}

	// Managers/admins earn their daily rate plus a percent of the
	// commission-weighted revenue of the orders they authored, net of their
	// returns share. The split sum and the returns deduction each round to
	// whole units once, so daily totals fold exactly into period totals.
	managerCount := 0
	for uid := range dayOrders {
		if u, ok := e.snap.Users[uid]; ok && u.IsManagerOrAdmin() {
			managerCount++
		}
	}

	for uid, co := range dayOrders {
		u, ok := e.snap.Users[uid]
		if !ok || !u.IsManagerOrAdmin() {
			continue
		}

		fixed[uid] = fixed[uid].Add(u.DefaultRate)

		earned := decimal.Zero
		for _, o := range co.orders {
			for _, split := range orderSplits(o) {
				typeID := split.OrderTypeID
				rate := e.res.Resolve(u, &typeID, e.branchID)
				commissioned := split.Amount.Mul(e.res.Commission(typeID)).Div(decimalHundred)
				earned = earned.Add(rate.Mul(commissioned).Div(decimalHundred))
			}
		}
		percent[uid] = percent[uid].Add(earned.Round(0))

		share := e.rets.managerShare(day, uid, managerCount)
		if !share.IsZero() {
			baseRate := e.res.Resolve(u, nil, e.branchID)
			percent[uid] = percent[uid].Sub(baseRate.Mul(share).Div(decimalHundred).Round(0))
		}
	}

	// Vacation pay accrues day by day at the amount divided by the stretch
	// length, rounded per accrual like wages, so a period covering part of
	// a vacation pays only the covered days.
	for _, v := range e.snap.Vacations {
		if date.Before(v.StartDate) || date.After(v.EndDate) {
			continue
		}
		perDay := v.Amount.Div(decimal.NewFromInt(v.TotalDays())).Round(2)
		fixed[v.UserID] = fixed[v.UserID].Add(perDay)
	}

	// Final sums net of penalties. Presence in any accumulator keeps the
	// row, zero total or not; admin rows are dropped for manager viewers.
	dayPenalties := e.rets.penalties[day]

	salaryByUser := make(map[string]decimal.Decimal)
	fixedByUser := make(map[string]decimal.Decimal)
	percentByUser := make(map[string]decimal.Decimal)
	penaltiesByUser := make(map[string]decimal.Decimal)

	for uid := range unionKeys(fixed, percent, dayPenalties) {
		if e.hideFromViewer(uid) {
			continue
		}
		penalty := dayPenalties[uid]
		salaryByUser[uid] = fixed[uid].Add(percent[uid]).Sub(penalty)
		fixedByUser[uid] = fixed[uid]
		percentByUser[uid] = percent[uid]
		penaltiesByUser[uid] = penalty
	}

	creators := make([]string, 0, len(dayOrders))
	for uid := range dayOrders {
		creators = append(creators, uid)
	}

	rec := report.DayRecord{
		Date:            date,
		Orders:          gross,
		Returns:         returnsTotal,
		Cashbox:         cashbox,
		SalaryByUser:    salaryByUser,
		FixedByUser:     fixedByUser,
		PercentByUser:   percentByUser,
		PenaltiesByUser: penaltiesByUser,
		Employees:       details,
		Creators:        creators,
		ShiftID:         shiftID,
		OrdersByType:    map[string]report.TypeStat{},
		OrdersByCreator: map[string]report.CreatorStat{},
	}

	// Day stats stay admin-only.
	if e.viewer.Role != user.RoleManager {
		rec.OrdersByType = e.cash.byType[day]
		if rec.OrdersByType == nil {
			rec.OrdersByType = map[string]report.TypeStat{}
		}
		for uid, co := range dayOrders {
			u, ok := e.snap.Users[uid]
			if !ok {
				continue
			}
			rec.OrdersByCreator[uid] = report.CreatorStat{
				Name:    u.Name,
				Amount:  co.amount,
				Count:   len(co.orders),
				Returns: e.rets.byManager[day][uid],
			}
		}
	}

	return rec
}

// hideFromViewer drops admin rows from reports built for a manager.
func (e *Engine) hideFromViewer(userID string) bool {
	if e.viewer.Role != user.RoleManager {
		return false
	}
	u, ok := e.snap.Users[userID]
	return ok && u.Role == user.RoleAdmin
}

func unionKeys(maps ...map[string]decimal.Decimal) map[string]struct{} {
	keys := make(map[string]struct{})
	for _, m := range maps {
		for k := range m {
			keys[k] = struct{}{}
		}
	}
	return keys
}
