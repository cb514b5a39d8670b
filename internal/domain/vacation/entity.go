package vacation

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vacation - a paid leave entry. The amount covers the whole [StartDate,
// EndDate] stretch and accrues into payroll at Amount divided by the stretch
// length per covered day, so a report period overlapping part of a vacation
// pays only the overlapping share.
type Vacation struct {
	ID        string
	UserID    string
	StartDate time.Time
	EndDate   time.Time
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// TotalDays is the inclusive length of the vacation in days.
func (v Vacation) TotalDays() int64 {
	return int64(v.EndDate.Sub(v.StartDate).Hours()/24) + 1
}
