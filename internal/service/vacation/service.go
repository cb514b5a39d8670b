package vacation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glowmark/retailops-backend-go/internal/domain/user"
	"github.com/glowmark/retailops-backend-go/internal/domain/vacation"
	"github.com/glowmark/retailops-backend-go/internal/pkg/database"
)

type VacationService interface {
	Create(ctx context.Context, req vacation.CreateVacationRequest) (vacation.Vacation, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, start, end time.Time) ([]vacation.Vacation, error)
}

type VacationServiceImpl struct {
	db           *database.DB
	vacationRepo vacation.VacationRepository
	userRepo     user.UserRepository
}

func NewVacationService(db *database.DB, vacationRepo vacation.VacationRepository, userRepo user.UserRepository) VacationService {
	return &VacationServiceImpl{
		db:           db,
		vacationRepo: vacationRepo,
		userRepo:     userRepo,
	}
}

func (s *VacationServiceImpl) Create(ctx context.Context, req vacation.CreateVacationRequest) (vacation.Vacation, error) {
	if err := req.Validate(); err != nil {
		return vacation.Vacation{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return vacation.Vacation{}, vacation.ErrUserNotFound
		}
		return vacation.Vacation{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.vacationRepo.Create(ctx, vacation.Vacation{
		UserID:    req.UserID,
		StartDate: start,
		EndDate:   end,
		Amount:    req.Amount,
	})
	if err != nil {
		return vacation.Vacation{}, fmt.Errorf("failed to create vacation: %w", err)
	}

	return created, nil
}

func (s *VacationServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.vacationRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.vacationRepo.Delete(ctx, id)
}

func (s *VacationServiceImpl) List(ctx context.Context, start, end time.Time) ([]vacation.Vacation, error) {
	vacations, err := s.vacationRepo.GetOverlapping(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacations: %w", err)
	}
	return vacations, nil
}
