package report

import (
	"context"
	"fmt"
	"time"

	"github.com/glowmark/retailops-backend-go/internal/domain/branch"
	"github.com/glowmark/retailops-backend-go/internal/domain/order"
	"github.com/glowmark/retailops-backend-go/internal/domain/ordertype"
	"github.com/glowmark/retailops-backend-go/internal/domain/payout"
	"github.com/glowmark/retailops-backend-go/internal/domain/report"
	"github.com/glowmark/retailops-backend-go/internal/domain/returns"
	"github.com/glowmark/retailops-backend-go/internal/domain/shift"
	"github.com/glowmark/retailops-backend-go/internal/domain/user"
	"github.com/glowmark/retailops-backend-go/internal/domain/vacation"
	"github.com/glowmark/retailops-backend-go/internal/pkg/database"
)

// ReportServiceImpl assembles one snapshot per request through a handful of
// bulk reads, then hands it to the pure engine. It issues no queries inside
// the per-day loop.
type ReportServiceImpl struct {
	db            *database.DB
	userRepo      user.UserRepository
	orderRepo     order.OrderRepository
	returnRepo    returns.ReturnRepository
	shiftRepo     shift.ShiftRepository
	payoutRepo    payout.PayoutRepository
	vacationRepo  vacation.VacationRepository
	orderTypeRepo ordertype.OrderTypeRepository
	branchRepo    branch.BranchRepository
}

func NewReportService(
	db *database.DB,
	userRepo user.UserRepository,
	orderRepo order.OrderRepository,
	returnRepo returns.ReturnRepository,
	shiftRepo shift.ShiftRepository,
	payoutRepo payout.PayoutRepository,
	vacationRepo vacation.VacationRepository,
	orderTypeRepo ordertype.OrderTypeRepository,
	branchRepo branch.BranchRepository,
) report.ReportService {
	return &ReportServiceImpl{
		db:            db,
		userRepo:      userRepo,
		orderRepo:     orderRepo,
		returnRepo:    returnRepo,
		shiftRepo:     shiftRepo,
		payoutRepo:    payoutRepo,
		vacationRepo:  vacationRepo,
		orderTypeRepo: orderTypeRepo,
		branchRepo:    branchRepo,
	}
}

func (s *ReportServiceImpl) PeriodReport(ctx context.Context, req report.PeriodReportRequest, viewer user.User) ([]report.PeriodReportResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var periods []Period
	switch req.PeriodMode {
	case report.PeriodModeOld:
		periods = HalfMonthPeriods(req.Month, req.Year)
	case report.PeriodModeNew:
		periods = WeeklyPeriods(req.Month, req.Year)
	case report.PeriodModeCustom:
		start, _ := time.Parse("2006-01-02", *req.CustomStart)
		end, _ := time.Parse("2006-01-02", *req.CustomEnd)
		periods = []Period{{Label: periodLabel(start, end), Start: start, End: end}}
	default:
		return nil, report.ErrInvalidPeriodMode
	}

	var responses []report.PeriodReportResponse
	for _, p := range periods {
		summary, err := s.RangeReport(ctx, p.Start, p.End, req.BranchID, viewer)
		if err != nil {
			return nil, err
		}
		responses = append(responses, report.PeriodReportResponse{
			Label:   p.Label,
			Start:   p.Start.Format("2006-01-02"),
			End:     p.End.Format("2006-01-02"),
			Summary: summary,
		})
	}

	return responses, nil
}

func (s *ReportServiceImpl) RangeReport(ctx context.Context, start, end time.Time, branchID *string, viewer user.User) (report.PeriodSummary, error) {
	if start.After(end) {
		return report.PeriodSummary{}, report.ErrInvalidDateRange
	}

	snap, err := s.loadSnapshot(ctx, start, end, branchID, viewer)
	if err != nil {
		return report.PeriodSummary{}, err
	}

	engine := NewEngine(snap, branchID, viewer)
	days, err := engine.BuildDays(start, end)
	if err != nil {
		return report.PeriodSummary{}, err
	}

	return engine.Summarize(days), nil
}

// loadSnapshot performs the bulk upfront reads. The payouts map comes back
// pre-filtered by viewer role so the engine never sees admin payouts it must
// not show.
func (s *ReportServiceImpl) loadSnapshot(ctx context.Context, start, end time.Time, branchID *string, viewer user.User) (report.Snapshot, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return report.Snapshot{}, fmt.Errorf("failed to load users: %w", err)
	}
	userMap := make(map[string]user.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}

	types, err := s.orderTypeRepo.GetAll(ctx, false)
	if err != nil {
		return report.Snapshot{}, fmt.Errorf("failed to load order types: %w", err)
	}
	typeMap := make(map[string]ordertype.OrderType, len(types))
	for _, t := range types {
		typeMap[t.ID] = t
	}

	orders, err := s.orderRepo.GetByDateRange(ctx, start, end, branchID)
	if err != nil {
		return report.Snapshot{}, fmt.Errorf("failed to load orders: %w", err)
	}

	rets, err := s.returnRepo.GetByDateRange(ctx, start, end)
	if err != nil {
		return report.Snapshot{}, fmt.Errorf("failed to load returns: %w", err)
	}

	shifts, err := s.shiftRepo.GetByDateRange(ctx, start, end, branchID)
	if err != nil {
		return report.Snapshot{}, fmt.Errorf("failed to load shifts: %w", err)
	}

	payouts, err := s.payoutRepo.SumByUser(ctx, start, end, shift.LocationTikTok, viewer.Role == user.RoleManager)
	if err != nil {
		return report.Snapshot{}, fmt.Errorf("failed to load payouts: %w", err)
	}

	vacations, err := s.vacationRepo.GetOverlapping(ctx, start, end)
	if err != nil {
		return report.Snapshot{}, fmt.Errorf("failed to load vacations: %w", err)
	}

	typeSettings, err := s.orderTypeRepo.GetUserSettings(ctx, nil)
	if err != nil {
		return report.Snapshot{}, fmt.Errorf("failed to load order type settings: %w", err)
	}

	branchAssignments, err := s.branchRepo.GetUserAssignments(ctx, branchID)
	if err != nil {
		return report.Snapshot{}, fmt.Errorf("failed to load branch assignments: %w", err)
	}

	return report.Snapshot{
		Users:             userMap,
		OrderTypes:        typeMap,
		Orders:            orders,
		Returns:           rets,
		Shifts:            shifts,
		Vacations:         vacations,
		TypeSettings:      typeSettings,
		BranchAssignments: branchAssignments,
		Payouts:           payouts,
	}, nil
}
