package report

import (
	"fmt"
	"time"

	"github.com/glowmark/retailops-backend-go/internal/pkg/validator"
)

// PeriodMode selects how a month is cut into report periods.
type PeriodMode string

const (
	PeriodModeOld    PeriodMode = "old"    // 1-15, 16-EOM
	PeriodModeNew    PeriodMode = "new"    // 1-7, 8-14, 15-21, 22-EOM
	PeriodModeCustom PeriodMode = "custom" // arbitrary [start, end]
)

type PeriodReportRequest struct {
	Month       int        `json:"month"`
	Year        int        `json:"year"`
	PeriodMode  PeriodMode `json:"period_mode"`
	CustomStart *string    `json:"custom_start,omitempty"`
	CustomEnd   *string    `json:"custom_end,omitempty"`
	BranchID    *string    `json:"branch_id,omitempty"`
}

func (r *PeriodReportRequest) Validate() error {
	var errs validator.ValidationErrors

	switch r.PeriodMode {
	case PeriodModeOld, PeriodModeNew:
		if r.Month < 1 || r.Month > 12 {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be between 1 and 12",
			})
		}
		currentYear := time.Now().Year()
		if r.Year < 2020 || r.Year > currentYear+1 {
			errs = append(errs, validator.ValidationError{
				Field:   "year",
				Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
			})
		}
	case PeriodModeCustom:
		var start, end time.Time
		var ok bool
		if r.CustomStart == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "custom_start",
				Message: "custom_start is required for custom periods",
			})
		} else if start, ok = validator.IsValidDate(*r.CustomStart); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "custom_start",
				Message: "invalid date, expected YYYY-MM-DD",
			})
		}
		if r.CustomEnd == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "custom_end",
				Message: "custom_end is required for custom periods",
			})
		} else if end, ok = validator.IsValidDate(*r.CustomEnd); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "custom_end",
				Message: "invalid date, expected YYYY-MM-DD",
			})
		}
		if len(errs) == 0 && start.After(end) {
			errs = append(errs, validator.ValidationError{
				Field:   "custom_start",
				Message: "start date must not be after end date",
			})
		}
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "period_mode",
			Message: "period_mode must be old, new or custom",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PeriodReportResponse - one labelled period plus its summary.
type PeriodReportResponse struct {
	Label   string        `json:"label"`
	Start   string        `json:"start"`
	End     string        `json:"end"`
	Summary PeriodSummary `json:"summary"`
}
