package report

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowmark/retailops-backend-go/internal/domain/order"
	"github.com/glowmark/retailops-backend-go/internal/domain/ordertype"
	"github.com/glowmark/retailops-backend-go/internal/domain/report"
	"github.com/glowmark/retailops-backend-go/internal/domain/returns"
	"github.com/glowmark/retailops-backend-go/internal/domain/shift"
	"github.com/glowmark/retailops-backend-go/internal/domain/user"
	"github.com/glowmark/retailops-backend-go/internal/domain/vacation"
)

var reportDay = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func testUser(id string, role user.Role, rate, percent string) user.User {
	return user.User{
		ID:             id,
		Name:           gofakeit.Name(),
		Role:           role,
		DefaultRate:    dec(rate),
		DefaultPercent: dec(percent),
		IsActive:       true,
	}
}

func baseSnapshot(users ...user.User) report.Snapshot {
	userMap := make(map[string]user.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}
	return report.Snapshot{
		Users: userMap,
		OrderTypes: map[string]ordertype.OrderType{
			"perfume": {
				ID:                      "perfume",
				Name:                    "Perfume",
				CommissionPercent:       dec("100"),
				IncludeInEmployeeSalary: true,
			},
			"resale": {
				ID:                      "resale",
				Name:                    "Resale",
				CommissionPercent:       dec("50"),
				IncludeInEmployeeSalary: false,
			},
		},
		Payouts: map[string]decimal.Decimal{},
	}
}

func splitOrder(id, creator string, splits ...order.TypeSplit) order.Order {
	total := decimal.Zero
	for _, s := range splits {
		total = total.Add(s.Amount)
	}
	return order.Order{
		ID:        id,
		Date:      reportDay,
		Amount:    total,
		CreatedBy: creator,
		Splits:    splits,
	}
}

func buildSingleDay(t *testing.T, snap report.Snapshot, viewer user.User) report.DayRecord {
	t.Helper()
	days, err := NewEngine(snap, nil, viewer).BuildDays(reportDay, reportDay)
	require.NoError(t, err)
	require.Len(t, days, 1)
	return days[0]
}

func TestBuildDaysRejectsReversedRange(t *testing.T) {
	t.Parallel()

	admin := testUser("admin", user.RoleAdmin, "0", "0")
	engine := NewEngine(baseSnapshot(admin), nil, admin)

	_, err := engine.BuildDays(reportDay, reportDay.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, report.ErrInvalidDateRange)
}

func TestManagerCommissionWeightedPercent(t *testing.T) {
	t.Parallel()

	admin := testUser("admin", user.RoleAdmin, "0", "0")
	manager := testUser("m1", user.RoleManager, "500", "10")

	snap := baseSnapshot(admin, manager)
	snap.Orders = []order.Order{
		splitOrder("o1", "m1",
			order.TypeSplit{OrderTypeID: "resale", Amount: dec("600")},
			order.TypeSplit{OrderTypeID: "perfume", Amount: dec("400")},
		),
	}

	day := buildSingleDay(t, snap, admin)

	// 600 at 50% commission + 400 at 100% commission = 700 weighted,
	// 10% of which is 70 on top of the 500 daily rate.
	assert.True(t, dec("500").Equal(day.FixedByUser["m1"]), "fixed: %s", day.FixedByUser["m1"])
	assert.True(t, dec("70").Equal(day.PercentByUser["m1"]), "percent: %s", day.PercentByUser["m1"])
	assert.True(t, dec("570").Equal(day.SalaryByUser["m1"]))

	assert.True(t, dec("1000").Equal(day.Orders))
	assert.True(t, dec("1000").Equal(day.Cashbox))
}

func TestOrderWithoutSplitsEarnsFullCommission(t *testing.T) {
	t.Parallel()

	admin := testUser("admin", user.RoleAdmin, "0", "0")
	manager := testUser("m1", user.RoleManager, "0", "10")
	employee := testUser("e1", user.RoleEmployee, "0", "5")

	snap := baseSnapshot(admin, manager, employee)
	// Orders predating typed splits arrive with no split rows at all. The
	// whole amount still pays commission at the untyped fallback and counts
	// toward the employee base.
	snap.Orders = []order.Order{
		{ID: "o1", Date: reportDay, Amount: dec("1000"), CreatedBy: "m1"},
	}
	snap.Shifts = []shift.Shift{
		{
			ID:       "s1",
			Date:     reportDay,
			Location: shift.LocationTikTok,
			Assignments: []shift.Assignment{
				{ID: "a1", UserID: "e1", Salary: dec("0")},
			},
		},
	}

	day := buildSingleDay(t, snap, admin)

	assert.True(t, dec("100").Equal(day.PercentByUser["m1"]), "manager percent: %s", day.PercentByUser["m1"])
	assert.True(t, dec("50").Equal(day.PercentByUser["e1"]), "employee percent: %s", day.PercentByUser["e1"])
	assert.True(t, dec("1000").Equal(day.Orders))
}

func TestUnassignedReturnsSplitAcrossManagers(t *testing.T) {
	t.Parallel()

	admin := testUser("admin", user.RoleAdmin, "0", "0")
	m1 := testUser("m1", user.RoleManager, "0", "10")
	m2 := testUser("m2", user.RoleManager, "0", "20")

	snap := baseSnapshot(admin, m1, m2)
	snap.Orders = []order.Order{
		splitOrder("o1", "m1", order.TypeSplit{OrderTypeID: "perfume", Amount: dec("1000")}),
		splitOrder("o2", "m2", order.TypeSplit{OrderTypeID: "perfume", Amount: dec("1000")}),
	}
	snap.Returns = []returns.Return{
		{ID: "r1", Date: reportDay, Amount: dec("100"), CreatedBy: "admin"},
	}

	day := buildSingleDay(t, snap, admin)

	// Each manager absorbs 50 of the unassigned return at their own rate:
	// m1 earns 100 - 10% of 50 = 95, m2 earns 200 - 20% of 50 = 190.
	assert.True(t, dec("95").Equal(day.PercentByUser["m1"]), "m1: %s", day.PercentByUser["m1"])
	assert.True(t, dec("190").Equal(day.PercentByUser["m2"]), "m2: %s", day.PercentByUser["m2"])

	assert.True(t, dec("100").Equal(day.Returns))
	assert.True(t, dec("1900").Equal(day.Cashbox))
}

func TestOrderLinkedReturnHitsCreatorOnly(t *testing.T) {
	t.Parallel()

	admin := testUser("admin", user.RoleAdmin, "0", "0")
	m1 := testUser("m1", user.RoleManager, "0", "10")
	m2 := testUser("m2", user.RoleManager, "0", "10")

	snap := baseSnapshot(admin, m1, m2)
	snap.Orders = []order.Order{
		splitOrder("o1", "m1", order.TypeSplit{OrderTypeID: "perfume", Amount: dec("1000")}),
		splitOrder("o2", "m2", order.TypeSplit{OrderTypeID: "perfume", Amount: dec("1000")}),
	}
	snap.Returns = []returns.Return{
		{ID: "r1", Date: reportDay, Amount: dec("200"), OrderID: strPtr("o1"), CreatedBy: "admin"},
	}

	day := buildSingleDay(t, snap, admin)

	// The whole 200 lands on o1's creator; m2 keeps the full commission.
	assert.True(t, dec("80").Equal(day.PercentByUser["m1"]), "m1: %s", day.PercentByUser["m1"])
	assert.True(t, dec("100").Equal(day.PercentByUser["m2"]), "m2: %s", day.PercentByUser["m2"])
}

func TestPenaltiesIndependentOfCashbox(t *testing.T) {
	t.Parallel()

	admin := testUser("admin", user.RoleAdmin, "0", "0")
	m1 := testUser("m1", user.RoleManager, "300", "10")

	snap := baseSnapshot(admin, m1)
	snap.Orders = []order.Order{
		splitOrder("o1", "m1", order.TypeSplit{OrderTypeID: "perfume", Amount: dec("1000")}),
	}
	snap.Returns = []returns.Return{
		{
			ID:            "r1",
			Date:          reportDay,
			Amount:        decimal.Zero,
			CreatedBy:     "admin",
			PenaltyAmount: dec("150"),
			PenaltyDistribution: map[string]decimal.Decimal{
				"m1": dec("150"),
			},
		},
	}

	day := buildSingleDay(t, snap, admin)

	// Zero-amount return leaves the cashbox and percent cut alone; the
	// penalty comes off the final salary only.
	assert.True(t, dec("1000").Equal(day.Cashbox))
	assert.True(t, dec("100").Equal(day.PercentByUser["m1"]))
	assert.True(t, dec("150").Equal(day.PenaltiesByUser["m1"]))
	assert.True(t, dec("250").Equal(day.SalaryByUser["m1"]), "salary: %s", day.SalaryByUser["m1"])
}

func TestTikTokShiftSplitsEmployeeCashboxByHeadcount(t *testing.T) {
	t.Parallel()

	admin := testUser("admin", user.RoleAdmin, "0", "0")
	m1 := testUser("m1", user.RoleManager, "0", "0")
	e1 := testUser("e1", user.RoleEmployee, "1000", "5")
	e2 := testUser("e2", user.RoleEmployee, "1000", "5")

	snap := baseSnapshot(admin, m1, e1, e2)
	snap.Orders = []order.Order{
		// The resale split stays out of the employee base.
		splitOrder("o1", "m1",
			order.TypeSplit{OrderTypeID: "perfume", Amount: dec("2000")},
			order.TypeSplit{OrderTypeID: "resale", Amount: dec("500")},
		),
	}
	snap.Shifts = []shift.Shift{
		{
			ID:       "s1",
			Date:     reportDay,
			Location: shift.LocationTikTok,
			Assignments: []shift.Assignment{
				{ID: "a1", UserID: "e1", Salary: dec("1000")},
				{ID: "a2", UserID: "e2", Salary: dec("500")},
			},
		},
	}

	day := buildSingleDay(t, snap, admin)

	// Employee base is 2000, split two ways; 5% of 1000 is 50 each on top
	// of the stored fixed wage.
	assert.True(t, dec("1000").Equal(day.FixedByUser["e1"]))
	assert.True(t, dec("500").Equal(day.FixedByUser["e2"]))
	assert.True(t, dec("50").Equal(day.PercentByUser["e1"]), "e1: %s", day.PercentByUser["e1"])
	assert.True(t, dec("50").Equal(day.PercentByUser["e2"]))

	require.NotNil(t, day.ShiftID)
	assert.Equal(t, "s1", *day.ShiftID)
	assert.Len(t, day.Employees, 2)
}

func TestStoreShiftPaysFixedOnly(t *testing.T) {
	t.Parallel()

	admin := testUser("admin", user.RoleAdmin, "0", "0")
	m1 := testUser("m1", user.RoleManager, "0", "0")
	w1 := testUser("w1", user.RoleStoreWorker, "800", "5")

	snap := baseSnapshot(admin, m1, w1)
	snap.Orders = []order.Order{
		splitOrder("o1", "m1", order.TypeSplit{OrderTypeID: "perfume", Amount: dec("3000")}),
	}
	snap.Shifts = []shift.Shift{
		{
			ID:       "s1",
			Date:     reportDay,
			Location: shift.LocationStore,
			Assignments: []shift.Assignment{
				{ID: "a1", UserID: "w1", Salary: dec("800")},
			},
		},
	}

	day := buildSingleDay(t, snap, admin)

	assert.True(t, dec("800").Equal(day.FixedByUser["w1"]))
	assert.True(t, day.PercentByUser["w1"].IsZero(), "store shifts carry no percent cut")
}

func TestManagerViewerSeesNoAdminRows(t *testing.T) {
	t.Parallel()

	admin := testUser("admin", user.RoleAdmin, "400", "10")
	m1 := testUser("m1", user.RoleManager, "0", "10")

	snap := baseSnapshot(admin, m1)
	snap.Orders = []order.Order{
		splitOrder("o1", "admin", order.TypeSplit{OrderTypeID: "perfume", Amount: dec("1000")}),
		splitOrder("o2", "m1", order.TypeSplit{OrderTypeID: "perfume", Amount: dec("1000")}),
	}

	adminDay := buildSingleDay(t, snap, admin)
	assert.Contains(t, adminDay.SalaryByUser, "admin")
	assert.NotEmpty(t, adminDay.OrdersByType)
	assert.Len(t, adminDay.OrdersByCreator, 2)

	managerDay := buildSingleDay(t, snap, m1)
	assert.NotContains(t, managerDay.SalaryByUser, "admin")
	assert.Contains(t, managerDay.SalaryByUser, "m1")
	// Day stats are admin-only.
	assert.Empty(t, managerDay.OrdersByType)
	assert.Empty(t, managerDay.OrdersByCreator)
	// The cashbox itself is not hidden.
	assert.True(t, dec("2000").Equal(managerDay.Cashbox))
}

func TestVacationAccruesOnlyOverlappingDays(t *testing.T) {
	t.Parallel()

	admin := testUser("admin", user.RoleAdmin, "0", "0")
	e1 := testUser("e1", user.RoleEmployee, "0", "0")

	snap := baseSnapshot(admin, e1)
	// Ten days at 1000 total is 100 per day; the report range covers three
	// of them.
	snap.Vacations = []vacation.Vacation{
		{
			ID:        "v1",
			UserID:    "e1",
			StartDate: time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			Amount:    dec("1000"),
		},
	}

	engine := NewEngine(snap, nil, admin)
	days, err := engine.BuildDays(reportDay, reportDay.AddDate(0, 0, 2))
	require.NoError(t, err)
	require.Len(t, days, 3)

	for _, day := range days {
		assert.True(t, dec("100").Equal(day.FixedByUser["e1"]), "day %s: %s", day.Date, day.FixedByUser["e1"])
	}

	summary := engine.Summarize(days)
	require.Len(t, summary.Salaries, 1)
	assert.True(t, dec("300").Equal(summary.Salaries[0].Fixed))
	assert.True(t, dec("300").Equal(summary.Salaries[0].Total))

	require.Len(t, summary.Vacations, 1)
	assert.Equal(t, "v1", summary.Vacations[0].ID)
	assert.True(t, dec("1000").Equal(summary.Vacations[0].Amount))
}

func TestSummarizeFoldsDaysExactly(t *testing.T) {
	t.Parallel()

	admin := testUser("admin", user.RoleAdmin, "0", "0")
	m1 := testUser("m1", user.RoleManager, "500", "10")

	snap := baseSnapshot(admin, m1)
	nextDay := reportDay.AddDate(0, 0, 1)
	snap.Orders = []order.Order{
		splitOrder("o1", "m1", order.TypeSplit{OrderTypeID: "perfume", Amount: dec("1000")}),
		{
			ID: "o2", Date: nextDay, Amount: dec("2000"), CreatedBy: "m1",
			Splits: []order.TypeSplit{{OrderTypeID: "perfume", Amount: dec("2000")}},
		},
	}
	snap.Returns = []returns.Return{
		{ID: "r1", Date: nextDay, Amount: dec("300"), OrderID: strPtr("o2"), CreatedBy: "admin"},
	}
	snap.Payouts = map[string]decimal.Decimal{"m1": dec("400")}

	engine := NewEngine(snap, nil, admin)
	days, err := engine.BuildDays(reportDay, nextDay)
	require.NoError(t, err)
	require.Len(t, days, 2)

	summary := engine.Summarize(days)

	assert.True(t, dec("3000").Equal(summary.Totals.Orders))
	assert.True(t, dec("300").Equal(summary.Totals.Returns))
	assert.True(t, dec("2700").Equal(summary.Totals.Cashbox))

	require.Len(t, summary.Salaries, 1)
	row := summary.Salaries[0]
	assert.Equal(t, "m1", row.UserID)

	// Daily totals fold exactly: day one pays 500+100, day two pays
	// 500+200-30 for the returned 300 at 10%.
	assert.True(t, dec("1000").Equal(row.Fixed), "fixed: %s", row.Fixed)
	assert.True(t, dec("270").Equal(row.Percent), "percent: %s", row.Percent)
	assert.True(t, dec("1270").Equal(row.Total))
	assert.True(t, dec("400").Equal(row.Paid))
	assert.True(t, dec("870").Equal(row.Remaining))

	require.Len(t, summary.TypesBreakdown, 1)
	assert.Equal(t, "Perfume", summary.TypesBreakdown[0].TypeName)
	assert.True(t, dec("3000").Equal(summary.TypesBreakdown[0].Amount))
	assert.Equal(t, 2, summary.TypesBreakdown[0].Count)

	require.Len(t, summary.CreatorsBreakdown, 1)
	assert.True(t, dec("300").Equal(summary.CreatorsBreakdown[0].Returns))
}
