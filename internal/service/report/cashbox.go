package report

import (
	"time"

	"github.com/glowmark/retailops-backend-go/internal/domain/order"
	"github.com/glowmark/retailops-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
)

// dateKey normalizes a calendar date into a map key.
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// orderSplits returns an order's split list. Orders predating typed splits
// carry no split rows; they normalize to one untyped split covering the full
// amount, which the resolver treats as 100% commission, counted in the
// employee base.
func orderSplits(o order.Order) []order.TypeSplit {
	if len(o.Splits) > 0 {
		return o.Splits
	}
	return []order.TypeSplit{{Amount: o.Amount}}
}

// creatorOrders - one creator's orders for one day.
type creatorOrders struct {
	amount decimal.Decimal
	orders []order.Order
}

// cashboxAggregate holds the per-day order aggregation for a date range:
// gross totals, the employee-visible base (order types flagged out of
// employee salary are excluded), per-creator amounts and per-type stats.
// Built once per report request.
type cashboxAggregate struct {
	grossByDate  map[string]decimal.Decimal
	employeeBase map[string]decimal.Decimal
	byCreator    map[string]map[string]*creatorOrders
	byType       map[string]map[string]report.TypeStat
}

func newCashboxAggregate(orders []order.Order, res *PercentResolver) *cashboxAggregate {
	agg := &cashboxAggregate{
		grossByDate:  make(map[string]decimal.Decimal),
		employeeBase: make(map[string]decimal.Decimal),
		byCreator:    make(map[string]map[string]*creatorOrders),
		byType:       make(map[string]map[string]report.TypeStat),
	}

	for _, o := range orders {
		day := dateKey(o.Date)

		agg.grossByDate[day] = agg.grossByDate[day].Add(o.Amount)

		if agg.byCreator[day] == nil {
			agg.byCreator[day] = make(map[string]*creatorOrders)
		}
		co := agg.byCreator[day][o.CreatedBy]
		if co == nil {
			co = &creatorOrders{}
			agg.byCreator[day][o.CreatedBy] = co
		}
		co.amount = co.amount.Add(o.Amount)
		co.orders = append(co.orders, o)

		if agg.byType[day] == nil {
			agg.byType[day] = make(map[string]report.TypeStat)
		}
		for _, split := range orderSplits(o) {
			if res.IncludeInEmployeeSalary(split.OrderTypeID) {
				agg.employeeBase[day] = agg.employeeBase[day].Add(split.Amount)
			}

			name := res.TypeName(split.OrderTypeID)
			stat := agg.byType[day][name]
			stat.Amount = stat.Amount.Add(split.Amount)
			stat.Count++
			agg.byType[day][name] = stat
		}
	}

	return agg
}

// commissionAmount returns the commission-weighted revenue of one order: the
// sum over its splits of split amount x type commission / 100.
func (a *cashboxAggregate) commissionAmount(o order.Order, res *PercentResolver) decimal.Decimal {
	total := decimal.Zero
	for _, split := range orderSplits(o) {
		total = total.Add(split.Amount.Mul(res.Commission(split.OrderTypeID)).Div(decimalHundred))
	}
	return total
}

var decimalHundred = decimal.NewFromInt(100)
