package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHalfMonthPeriods(t *testing.T) {
	t.Parallel()

	periods := HalfMonthPeriods(3, 2026)
	require.Len(t, periods, 2)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), periods[0].Start)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), periods[0].End)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), periods[1].Start)
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), periods[1].End)
	assert.Equal(t, "1.3–15.3", periods[0].Label)
	assert.Equal(t, "16.3–31.3", periods[1].Label)
}

func TestHalfMonthPeriodsFebruary(t *testing.T) {
	t.Parallel()

	// 2024 is a leap year.
	periods := HalfMonthPeriods(2, 2024)
	require.Len(t, periods, 2)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), periods[1].End)

	periods = HalfMonthPeriods(2, 2026)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), periods[1].End)
}

func TestWeeklyPeriods(t *testing.T) {
	t.Parallel()

	periods := WeeklyPeriods(12, 2026)
	require.Len(t, periods, 4)

	assert.Equal(t, 1, periods[0].Start.Day())
	assert.Equal(t, 7, periods[0].End.Day())
	assert.Equal(t, 8, periods[1].Start.Day())
	assert.Equal(t, 14, periods[1].End.Day())
	assert.Equal(t, 15, periods[2].Start.Day())
	assert.Equal(t, 21, periods[2].End.Day())
	assert.Equal(t, 22, periods[3].Start.Day())

	// December must not roll into January when computing end of month.
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), periods[3].End)
}
