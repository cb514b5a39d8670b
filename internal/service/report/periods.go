package report

import (
	"fmt"
	"time"
)

// Period - one labelled [Start, End] slice of a month.
type Period struct {
	Label string
	Start time.Time
	End   time.Time
}

func endOfMonth(month int, year int) time.Time {
	if month == 12 {
		return time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}

func periodLabel(start, end time.Time) string {
	return fmt.Sprintf("%d.%d–%d.%d", start.Day(), int(start.Month()), end.Day(), int(end.Month()))
}

// HalfMonthPeriods cuts a month into 1-15 and 16-EOM (legacy layout).
func HalfMonthPeriods(month, year int) []Period {
	mid := time.Date(year, time.Month(month), 15, 0, 0, 0, 0, time.UTC)
	first := Period{
		Start: time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
		End:   mid,
	}
	second := Period{
		Start: time.Date(year, time.Month(month), 16, 0, 0, 0, 0, time.UTC),
		End:   endOfMonth(month, year),
	}
	first.Label = periodLabel(first.Start, first.End)
	second.Label = periodLabel(second.Start, second.End)
	return []Period{first, second}
}

// WeeklyPeriods cuts a month into 1-7, 8-14, 15-21 and 22-EOM.
func WeeklyPeriods(month, year int) []Period {
	day := func(d int) time.Time {
		return time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
	}
	periods := []Period{
		{Start: day(1), End: day(7)},
		{Start: day(8), End: day(14)},
		{Start: day(15), End: day(21)},
		{Start: day(22), End: endOfMonth(month, year)},
	}
	for i := range periods {
		periods[i].Label = periodLabel(periods[i].Start, periods[i].End)
	}
	return periods
}
