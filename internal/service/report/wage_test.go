package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/glowmark/retailops-backend-go/internal/domain/user"
)

func clock(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		t.Fatalf("bad clock value %q: %v", value, err)
	}
	return parsed
}

func TestAssignmentSalary(t *testing.T) {
	t.Parallel()

	worker := func(rate int64, start, end string) user.User {
		return user.User{
			Role:        user.RoleEmployee,
			DefaultRate: decimal.NewFromInt(rate),
			ShiftStart:  clock(t, start),
			ShiftEnd:    clock(t, end),
		}
	}

	tests := []struct {
		name  string
		u     user.User
		start string
		end   string
		want  string
	}{
		{
			name:  "full standard shift pays full rate",
			u:     worker(1000, "10:00", "20:00"),
			start: "10:00", end: "20:00",
			want: "1000",
		},
		{
			name:  "half the hours pays half the rate",
			u:     worker(1000, "10:00", "20:00"),
			start: "10:00", end: "15:00",
			want: "500",
		},
		{
			name:  "overtime scales past the full rate",
			u:     worker(1000, "10:00", "20:00"),
			start: "09:00", end: "21:00",
			want: "1200",
		},
		{
			name:  "rounds half up to cents",
			u:     worker(1000, "10:00", "19:00"),
			start: "10:00", end: "17:30",
			want: "833.33",
		},
		{
			name:  "zero-length standard shift counts as one hour",
			u:     worker(100, "10:00", "10:00"),
			start: "10:00", end: "12:00",
			want: "200",
		},
		{
			name:  "overnight interval clamps to zero instead of wrapping",
			u:     worker(1000, "10:00", "20:00"),
			start: "22:00", end: "02:00",
			want: "0",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := AssignmentSalary(tc.u, clock(t, tc.start), clock(t, tc.end))
			assert.True(t, decimal.RequireFromString(tc.want).Equal(got), "got %s, want %s", got, tc.want)
		})
	}
}
