package payout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glowmark/retailops-backend-go/internal/domain/payout"
	"github.com/glowmark/retailops-backend-go/internal/domain/shift"
	"github.com/glowmark/retailops-backend-go/internal/domain/user"
	"github.com/glowmark/retailops-backend-go/internal/pkg/database"
)

type PayoutService interface {
	Create(ctx context.Context, req payout.CreatePayoutRequest) (payout.Payout, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, start, end time.Time, location shift.Location) ([]payout.Payout, error)
}

type PayoutServiceImpl struct {
	db         *database.DB
	payoutRepo payout.PayoutRepository
	userRepo   user.UserRepository
}

func NewPayoutService(db *database.DB, payoutRepo payout.PayoutRepository, userRepo user.UserRepository) PayoutService {
	return &PayoutServiceImpl{
		db:         db,
		payoutRepo: payoutRepo,
		userRepo:   userRepo,
	}
}

func (s *PayoutServiceImpl) Create(ctx context.Context, req payout.CreatePayoutRequest) (payout.Payout, error) {
	if err := req.Validate(); err != nil {
		return payout.Payout{}, err
	}

	recipient, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return payout.Payout{}, payout.ErrUserNotFound
		}
		return payout.Payout{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	created, err := s.payoutRepo.Create(ctx, payout.Payout{
		UserID:   req.UserID,
		Date:     date,
		Location: shift.Location(req.Location),
		RoleType: recipient.Role,
		Amount:   req.Amount,
		IsManual: true,
		PaidAt:   time.Now(),
	})
	if err != nil {
		return payout.Payout{}, fmt.Errorf("failed to create payout: %w", err)
	}

	return created, nil
}

func (s *PayoutServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.payoutRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.payoutRepo.Delete(ctx, id)
}

func (s *PayoutServiceImpl) List(ctx context.Context, start, end time.Time, location shift.Location) ([]payout.Payout, error) {
	payouts, err := s.payoutRepo.GetByDateRange(ctx, start, end, location)
	if err != nil {
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}
	return payouts, nil
}
