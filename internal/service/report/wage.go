package report

import (
	"time"

	"github.com/glowmark/retailops-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

// hoursBetween converts a wall-clock interval into fractional hours. Negative
// intervals clamp to zero: overnight shifts do not wrap past midnight.
func hoursBetween(start, end time.Time) float64 {
	hours := end.Sub(start).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}

// AssignmentSalary computes the fixed wage for one shift assignment: the
// user's daily rate scaled by worked hours over standard shift hours, rounded
// half-up to cents. A zero-length standard shift counts as one hour. The
// result is stored on the assignment at creation/edit time and read back as
// ground truth by the day builder.
func AssignmentSalary(u user.User, startTime, endTime time.Time) decimal.Decimal {
	standard := hoursBetween(u.ShiftStart, u.ShiftEnd)
	if standard == 0 {
		standard = 1
	}
	worked := hoursBetween(startTime, endTime)

	ratio := decimal.NewFromFloat(worked).Div(decimal.NewFromFloat(standard))
	return u.DefaultRate.Mul(ratio).Round(2)
}
