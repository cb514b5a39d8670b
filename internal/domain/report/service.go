package report

import (
	"context"
	"time"

	"github.com/glowmark/retailops-backend-go/internal/domain/user"
)

// ReportService builds payroll reports for a viewer. The viewer's role
// decides row visibility: manager viewers never see admin rows, payouts to
// admins, or the per-type/per-creator day stats.
type ReportService interface {
	// PeriodReport resolves the request's period mode into one or more
	// [start, end] ranges and builds a summary for each.
	PeriodReport(ctx context.Context, req PeriodReportRequest, viewer user.User) ([]PeriodReportResponse, error)

	// RangeReport builds a single summary for [start, end].
	RangeReport(ctx context.Context, start, end time.Time, branchID *string, viewer user.User) (PeriodSummary, error)
}
