package report

import (
	"sort"

	"github.com/glowmark/retailops-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
)

// Summarize folds daily records plus the snapshot's payouts map into the
// period report. Accrued salary is the fold of the daily fixed/percent/
// penalty maps, which by construction equals the sum of daily totals; no
// second rounding path exists.
func (e *Engine) Summarize(days []report.DayRecord) report.PeriodSummary {
	totalOrders := decimal.Zero
	totalReturns := decimal.Zero

	type salaryParts struct {
		fixed     decimal.Decimal
		percent   decimal.Decimal
		penalties decimal.Decimal
	}
	salaryAcc := make(map[string]*salaryParts)
	acc := func(uid string) *salaryParts {
		p := salaryAcc[uid]
		if p == nil {
			p = &salaryParts{}
			salaryAcc[uid] = p
		}
		return p
	}

	typesAcc := make(map[string]report.TypeStat)
	creatorsAcc := make(map[string]report.CreatorStat)

	for _, day := range days {
		totalOrders = totalOrders.Add(day.Orders)
		totalReturns = totalReturns.Add(day.Returns)

		for uid, amount := range day.FixedByUser {
			acc(uid).fixed = acc(uid).fixed.Add(amount)
		}
		for uid, amount := range day.PercentByUser {
			acc(uid).percent = acc(uid).percent.Add(amount)
		}
		for uid, amount := range day.PenaltiesByUser {
			acc(uid).penalties = acc(uid).penalties.Add(amount)
		}

		for name, stat := range day.OrdersByType {
			agg := typesAcc[name]
			agg.Amount = agg.Amount.Add(stat.Amount)
			agg.Count += stat.Count
			typesAcc[name] = agg
		}
		for uid, stat := range day.OrdersByCreator {
			agg := creatorsAcc[uid]
			agg.Name = stat.Name
			agg.Amount = agg.Amount.Add(stat.Amount)
			agg.Count += stat.Count
			agg.Returns = agg.Returns.Add(stat.Returns)
			creatorsAcc[uid] = agg
		}
	}

	salaries := make([]report.UserSalary, 0, len(salaryAcc))
	for uid, parts := range salaryAcc {
		total := parts.fixed.Add(parts.percent).Sub(parts.penalties)
		paid := e.snap.Payouts[uid]
		name := ""
		if u, ok := e.snap.Users[uid]; ok {
			name = u.Name
		}
		salaries = append(salaries, report.UserSalary{
			UserID:    uid,
			Name:      name,
			Fixed:     parts.fixed,
			Percent:   parts.percent,
			Penalties: parts.penalties,
			Total:     total,
			Paid:      paid,
			Remaining: total.Sub(paid),
		})
	}
	sort.Slice(salaries, func(i, j int) bool {
		if !salaries[i].Total.Equal(salaries[j].Total) {
			return salaries[i].Total.GreaterThan(salaries[j].Total)
		}
		return salaries[i].UserID < salaries[j].UserID
	})

	typesBreakdown := make([]report.TypeBreakdownEntry, 0, len(typesAcc))
	for name, stat := range typesAcc {
		typesBreakdown = append(typesBreakdown, report.TypeBreakdownEntry{
			TypeName: name,
			Amount:   stat.Amount,
			Count:    stat.Count,
		})
	}
	sort.Slice(typesBreakdown, func(i, j int) bool {
		if !typesBreakdown[i].Amount.Equal(typesBreakdown[j].Amount) {
			return typesBreakdown[i].Amount.GreaterThan(typesBreakdown[j].Amount)
		}
		return typesBreakdown[i].TypeName < typesBreakdown[j].TypeName
	})

	creatorsBreakdown := make([]report.CreatorBreakdownEntry, 0, len(creatorsAcc))
	for uid, stat := range creatorsAcc {
		creatorsBreakdown = append(creatorsBreakdown, report.CreatorBreakdownEntry{
			UserID:  uid,
			Name:    stat.Name,
			Amount:  stat.Amount,
			Count:   stat.Count,
			Returns: stat.Returns,
		})
	}
	sort.Slice(creatorsBreakdown, func(i, j int) bool {
		if !creatorsBreakdown[i].Amount.Equal(creatorsBreakdown[j].Amount) {
			return creatorsBreakdown[i].Amount.GreaterThan(creatorsBreakdown[j].Amount)
		}
		return creatorsBreakdown[i].UserID < creatorsBreakdown[j].UserID
	})

	var vacations []report.VacationEntry
	if len(days) > 0 {
		first, last := days[0].Date, days[len(days)-1].Date
		for _, v := range e.snap.Vacations {
			if v.StartDate.After(last) || v.EndDate.Before(first) || e.hideFromViewer(v.UserID) {
				continue
			}
			vacations = append(vacations, report.VacationEntry{
				ID:        v.ID,
				UserID:    v.UserID,
				StartDate: v.StartDate.Format("2006-01-02"),
				EndDate:   v.EndDate.Format("2006-01-02"),
				Amount:    v.Amount,
			})
		}
	}

	return report.PeriodSummary{
		Days: days,
		Totals: report.PeriodTotals{
			Orders:  totalOrders,
			Returns: totalReturns,
			Cashbox: totalOrders.Sub(totalReturns),
		},
		Salaries:          salaries,
		Vacations:         vacations,
		TypesBreakdown:    typesBreakdown,
		CreatorsBreakdown: creatorsBreakdown,
	}
}
