package report

import (
	"github.com/glowmark/retailops-backend-go/internal/domain/order"
	"github.com/glowmark/retailops-backend-go/internal/domain/returns"
	"github.com/shopspring/decimal"
)

// returnsAggregate distributes returns and penalties for a date range.
// A return linked to a resolvable order is attributed in full to that order's
// creator; everything else lands in the unassigned bucket, which the day
// builder splits per capita across the managers active that day. Penalties
// are kept wholly apart from the cashbox effect: a direct user -> amount map
// deducted from final salary only.
type returnsAggregate struct {
	totalByDate map[string]decimal.Decimal
	byManager   map[string]map[string]decimal.Decimal
	unassigned  map[string]decimal.Decimal
	penalties   map[string]map[string]decimal.Decimal
}

func newReturnsAggregate(rets []returns.Return, orders []order.Order) *returnsAggregate {
	creatorByOrderID := make(map[string]string, len(orders))
	for _, o := range orders {
		creatorByOrderID[o.ID] = o.CreatedBy
	}

	agg := &returnsAggregate{
		totalByDate: make(map[string]decimal.Decimal),
		byManager:   make(map[string]map[string]decimal.Decimal),
		unassigned:  make(map[string]decimal.Decimal),
		penalties:   make(map[string]map[string]decimal.Decimal),
	}

	for _, ret := range rets {
		day := dateKey(ret.Date)

		agg.totalByDate[day] = agg.totalByDate[day].Add(ret.Amount)

		creator := ""
		if ret.OrderID != nil {
			creator = creatorByOrderID[*ret.OrderID]
		}
		if creator != "" {
			if agg.byManager[day] == nil {
				agg.byManager[day] = make(map[string]decimal.Decimal)
			}
			agg.byManager[day][creator] = agg.byManager[day][creator].Add(ret.Amount)
		} else {
			agg.unassigned[day] = agg.unassigned[day].Add(ret.Amount)
		}

		for userID, amount := range ret.PenaltyDistribution {
			if agg.penalties[day] == nil {
				agg.penalties[day] = make(map[string]decimal.Decimal)
			}
			agg.penalties[day][userID] = agg.penalties[day][userID].Add(amount)
		}
	}

	return agg
}

// managerShare returns the returns deduction base for one manager on one
// day: the amounts attributed to their orders plus an even share of the
// day's unassigned returns. managerCount is the number of distinct managers
// with orders that day; a zero count leaves the unassigned bucket untouched.
func (a *returnsAggregate) managerShare(day, userID string, managerCount int) decimal.Decimal {
	share := a.byManager[day][userID]
	if managerCount > 0 {
		perCapita := a.unassigned[day].Div(decimal.NewFromInt(int64(managerCount)))
		share = share.Add(perCapita)
	}
	return share
}
