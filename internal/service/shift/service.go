package shift

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glowmark/retailops-backend-go/internal/domain/shift"
	"github.com/glowmark/retailops-backend-go/internal/domain/user"
	"github.com/glowmark/retailops-backend-go/internal/pkg/database"
	reportService "github.com/glowmark/retailops-backend-go/internal/service/report"
)

type ShiftService interface {
	Create(ctx context.Context, req shift.CreateShiftRequest, createdBy string) (shift.Shift, error)
	Get(ctx context.Context, id string) (shift.Shift, error)
	Delete(ctx context.Context, id string) error
	AddAssignment(ctx context.Context, req shift.AddAssignmentRequest, createdBy string) (shift.Assignment, error)
	UpdateAssignmentTimes(ctx context.Context, assignmentID, shiftID string, startTime, endTime string) (shift.Assignment, error)
	RemoveAssignment(ctx context.Context, id string) error
}

// ShiftServiceImpl owns the one place assignment salaries are computed: the
// time-proportional wage is fixed at assignment creation/edit time and the
// stored value is ground truth from then on.
type ShiftServiceImpl struct {
	db        *database.DB
	shiftRepo shift.ShiftRepository
	userRepo  user.UserRepository
}

func NewShiftService(db *database.DB, shiftRepo shift.ShiftRepository, userRepo user.UserRepository) ShiftService {
	return &ShiftServiceImpl{
		db:        db,
		shiftRepo: shiftRepo,
		userRepo:  userRepo,
	}
}

func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest, createdBy string) (shift.Shift, error) {
	if err := req.Validate(); err != nil {
		return shift.Shift{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	// One shift per (date, branch).
	_, err := s.shiftRepo.GetByDateAndBranch(ctx, date, req.BranchID)
	if err == nil {
		return shift.Shift{}, shift.ErrShiftExists
	}
	if !errors.Is(err, shift.ErrShiftNotFound) {
		return shift.Shift{}, fmt.Errorf("failed to check existing shift: %w", err)
	}

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		Date:      date,
		Location:  shift.Location(req.Location),
		BranchID:  req.BranchID,
		CreatedBy: createdBy,
	})
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return created, nil
}

func (s *ShiftServiceImpl) Get(ctx context.Context, id string) (shift.Shift, error) {
	return s.shiftRepo.GetByID(ctx, id)
}

func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	return s.shiftRepo.Delete(ctx, id)
}

func (s *ShiftServiceImpl) AddAssignment(ctx context.Context, req shift.AddAssignmentRequest, createdBy string) (shift.Assignment, error) {
	if err := req.Validate(); err != nil {
		return shift.Assignment{}, err
	}

	if _, err := s.shiftRepo.GetByID(ctx, req.ShiftID); err != nil {
		return shift.Assignment{}, err
	}

	assignee, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return shift.Assignment{}, shift.ErrUserNotFound
		}
		return shift.Assignment{}, err
	}

	startTime := assignee.ShiftStart
	if req.StartTime != nil {
		startTime, _ = time.Parse("15:04", *req.StartTime)
	}
	endTime := assignee.ShiftEnd
	if req.EndTime != nil {
		endTime, _ = time.Parse("15:04", *req.EndTime)
	}

	assignment := shift.Assignment{
		ShiftID:   req.ShiftID,
		UserID:    req.UserID,
		StartTime: startTime,
		EndTime:   endTime,
		Salary:    reportService.AssignmentSalary(assignee, startTime, endTime),
		CreatedBy: createdBy,
	}

	created, err := s.shiftRepo.AddAssignment(ctx, assignment)
	if err != nil {
		return shift.Assignment{}, fmt.Errorf("failed to add assignment: %w", err)
	}

	return created, nil
}

func (s *ShiftServiceImpl) UpdateAssignmentTimes(ctx context.Context, assignmentID, shiftID string, startTimeStr, endTimeStr string) (shift.Assignment, error) {
	sh, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return shift.Assignment{}, err
	}

	var existing *shift.Assignment
	for i := range sh.Assignments {
		if sh.Assignments[i].ID == assignmentID {
			existing = &sh.Assignments[i]
			break
		}
	}
	if existing == nil {
		return shift.Assignment{}, shift.ErrAssignmentNotFound
	}

	startTime, err := time.Parse("15:04", startTimeStr)
	if err != nil {
		return shift.Assignment{}, fmt.Errorf("invalid start time: %w", err)
	}
	endTime, err := time.Parse("15:04", endTimeStr)
	if err != nil {
		return shift.Assignment{}, fmt.Errorf("invalid end time: %w", err)
	}

	assignee, err := s.userRepo.GetByID(ctx, existing.UserID)
	if err != nil {
		return shift.Assignment{}, err
	}

	existing.StartTime = startTime
	existing.EndTime = endTime
	existing.Salary = reportService.AssignmentSalary(assignee, startTime, endTime)

	if err := s.shiftRepo.UpdateAssignment(ctx, *existing); err != nil {
		return shift.Assignment{}, fmt.Errorf("failed to update assignment: %w", err)
	}

	return *existing, nil
}

func (s *ShiftServiceImpl) RemoveAssignment(ctx context.Context, id string) error {
	return s.shiftRepo.RemoveAssignment(ctx, id)
}
