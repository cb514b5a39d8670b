package returns

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glowmark/retailops-backend-go/internal/domain/order"
	"github.com/glowmark/retailops-backend-go/internal/domain/returns"
	"github.com/glowmark/retailops-backend-go/internal/pkg/database"
)

type ReturnService interface {
	Create(ctx context.Context, req returns.CreateReturnRequest, createdBy string) (returns.Return, error)
	Update(ctx context.Context, id string, req returns.CreateReturnRequest) (returns.Return, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (returns.Return, error)
	List(ctx context.Context, start, end time.Time) ([]returns.Return, error)
}

type ReturnServiceImpl struct {
	db         *database.DB
	returnRepo returns.ReturnRepository
	orderRepo  order.OrderRepository
}

func NewReturnService(db *database.DB, returnRepo returns.ReturnRepository, orderRepo order.OrderRepository) ReturnService {
	return &ReturnServiceImpl{
		db:         db,
		returnRepo: returnRepo,
		orderRepo:  orderRepo,
	}
}

func (s *ReturnServiceImpl) Create(ctx context.Context, req returns.CreateReturnRequest, createdBy string) (returns.Return, error) {
	if err := req.Validate(); err != nil {
		return returns.Return{}, err
	}

	if req.OrderID != nil {
		if _, err := s.orderRepo.GetByID(ctx, *req.OrderID); err != nil {
			if errors.Is(err, order.ErrOrderNotFound) {
				return returns.Return{}, returns.ErrOrderNotFound
			}
			return returns.Return{}, err
		}
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	created, err := s.returnRepo.Create(ctx, returns.Return{
		Date:                date,
		Amount:              req.Amount,
		Reason:              req.Reason,
		OrderID:             req.OrderID,
		CreatedBy:           createdBy,
		PenaltyAmount:       req.PenaltyAmount,
		PenaltyDistribution: req.PenaltyDistribution,
	})
	if err != nil {
		return returns.Return{}, fmt.Errorf("failed to create return: %w", err)
	}

	return created, nil
}

func (s *ReturnServiceImpl) Update(ctx context.Context, id string, req returns.CreateReturnRequest) (returns.Return, error) {
	if err := req.Validate(); err != nil {
		return returns.Return{}, err
	}

	existing, err := s.returnRepo.GetByID(ctx, id)
	if err != nil {
		return returns.Return{}, err
	}

	if req.OrderID != nil {
		if _, err := s.orderRepo.GetByID(ctx, *req.OrderID); err != nil {
			if errors.Is(err, order.ErrOrderNotFound) {
				return returns.Return{}, returns.ErrOrderNotFound
			}
			return returns.Return{}, err
		}
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	existing.Date = date
	existing.Amount = req.Amount
	existing.Reason = req.Reason
	existing.OrderID = req.OrderID
	existing.PenaltyAmount = req.PenaltyAmount
	existing.PenaltyDistribution = req.PenaltyDistribution

	if err := s.returnRepo.Update(ctx, existing); err != nil {
		return returns.Return{}, fmt.Errorf("failed to update return: %w", err)
	}

	return existing, nil
}

func (s *ReturnServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.returnRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.returnRepo.Delete(ctx, id)
}

func (s *ReturnServiceImpl) Get(ctx context.Context, id string) (returns.Return, error) {
	return s.returnRepo.GetByID(ctx, id)
}

func (s *ReturnServiceImpl) List(ctx context.Context, start, end time.Time) ([]returns.Return, error) {
	rets, err := s.returnRepo.GetByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list returns: %w", err)
	}
	return rets, nil
}
