package order

import (
	"context"
	"fmt"
	"time"

	"github.com/glowmark/retailops-backend-go/internal/domain/order"
	"github.com/glowmark/retailops-backend-go/internal/domain/ordertype"
	"github.com/glowmark/retailops-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type OrderService interface {
	Create(ctx context.Context, req order.CreateOrderRequest, createdBy string) (order.Order, error)
	Update(ctx context.Context, req order.UpdateOrderRequest) (order.Order, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (order.Order, error)
	CheckDuplicates(ctx context.Context, req order.CreateOrderRequest, excludeID *string) (order.DuplicateCheckResult, error)
}

// OrderServiceImpl enforces the write-boundary invariants the report engine
// assumes: split sums match the order amount, no type appears twice, every
// referenced type exists and is active.
type OrderServiceImpl struct {
	db            *database.DB
	orderRepo     order.OrderRepository
	orderTypeRepo ordertype.OrderTypeRepository
}

func NewOrderService(db *database.DB, orderRepo order.OrderRepository, orderTypeRepo ordertype.OrderTypeRepository) OrderService {
	return &OrderServiceImpl{
		db:            db,
		orderRepo:     orderRepo,
		orderTypeRepo: orderTypeRepo,
	}
}

func (s *OrderServiceImpl) Create(ctx context.Context, req order.CreateOrderRequest, createdBy string) (order.Order, error) {
	if err := req.Validate(); err != nil {
		return order.Order{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	splits, err := s.validateTypes(ctx, req.Splits)
	if err != nil {
		return order.Order{}, err
	}

	newOrder := order.Order{
		Date:        date,
		PhoneNumber: req.PhoneNumber,
		Amount:      req.Amount,
		BranchID:    req.BranchID,
		CreatedBy:   createdBy,
		Splits:      splits,
	}

	created, err := s.orderRepo.Create(ctx, newOrder)
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	return created, nil
}

func (s *OrderServiceImpl) Update(ctx context.Context, req order.UpdateOrderRequest) (order.Order, error) {
	if err := req.Validate(); err != nil {
		return order.Order{}, err
	}

	existing, err := s.orderRepo.GetByID(ctx, req.ID)
	if err != nil {
		return order.Order{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	splits, err := s.validateTypes(ctx, req.Splits)
	if err != nil {
		return order.Order{}, err
	}

	existing.Date = date
	existing.PhoneNumber = req.PhoneNumber
	existing.Amount = req.Amount
	existing.BranchID = req.BranchID
	existing.Splits = splits

	if err := s.orderRepo.Update(ctx, existing); err != nil {
		return order.Order{}, fmt.Errorf("failed to update order: %w", err)
	}

	return existing, nil
}

func (s *OrderServiceImpl) Delete(ctx context.Context, id string) error {
	return s.orderRepo.Delete(ctx, id)
}

func (s *OrderServiceImpl) Get(ctx context.Context, id string) (order.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// CheckDuplicates finds orders sharing phone, date and amount. A match with
// the same split set is an exact duplicate; a match with a different split
// set is only similar and comes back as a warning.
func (s *OrderServiceImpl) CheckDuplicates(ctx context.Context, req order.CreateOrderRequest, excludeID *string) (order.DuplicateCheckResult, error) {
	if err := req.Validate(); err != nil {
		return order.DuplicateCheckResult{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	matches, err := s.orderRepo.FindMatching(ctx, req.PhoneNumber, date, req.Amount, excludeID)
	if err != nil {
		return order.DuplicateCheckResult{}, fmt.Errorf("failed to check duplicates: %w", err)
	}

	newSplits := make(map[string]decimal.Decimal, len(req.Splits))
	for _, s := range req.Splits {
		newSplits[s.OrderTypeID] = s.Amount
	}

	result := order.DuplicateCheckResult{SimilarOrders: []order.Order{}}
	for _, existing := range matches {
		existingSplits := make(map[string]decimal.Decimal, len(existing.Splits))
		for _, s := range existing.Splits {
			existingSplits[s.OrderTypeID] = s.Amount
		}

		if splitsEqual(newSplits, existingSplits) {
			dup := existing
			result.ExactDuplicate = &dup
		} else {
			result.SimilarOrders = append(result.SimilarOrders, existing)
		}
	}

	return result, nil
}

func (s *OrderServiceImpl) validateTypes(ctx context.Context, reqSplits []order.TypeSplitRequest) ([]order.TypeSplit, error) {
	ids := make([]string, 0, len(reqSplits))
	for _, split := range reqSplits {
		ids = append(ids, split.OrderTypeID)
	}

	types, err := s.orderTypeRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load order types: %w", err)
	}

	active := make(map[string]bool, len(types))
	for _, t := range types {
		if t.IsActive {
			active[t.ID] = true
		}
	}

	splits := make([]order.TypeSplit, 0, len(reqSplits))
	for _, split := range reqSplits {
		if !active[split.OrderTypeID] {
			return nil, order.ErrInvalidOrderTypes
		}
		splits = append(splits, order.TypeSplit{
			OrderTypeID: split.OrderTypeID,
			Amount:      split.Amount,
		})
	}

	return splits, nil
}

func splitsEqual(a, b map[string]decimal.Decimal) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		other, ok := b[k]
		if !ok || !other.Equal(v) {
			return false
		}
	}
	return true
}
