package master

import (
	"context"
	"fmt"

	"github.com/glowmark/retailops-backend-go/internal/domain/branch"
	"github.com/glowmark/retailops-backend-go/internal/domain/ordertype"
	"github.com/glowmark/retailops-backend-go/internal/pkg/database"
)

// MasterService manages the reference data the salary engine resolves
// against: branches, order types, and the per-user overrides on both.
type MasterService interface {
	// Branches
	CreateBranch(ctx context.Context, req branch.CreateBranchRequest) (branch.Branch, error)
	UpdateBranch(ctx context.Context, id string, req branch.UpdateBranchRequest) (branch.Branch, error)
	ListBranches(ctx context.Context, activeOnly bool) ([]branch.Branch, error)
	UpsertBranchAssignment(ctx context.Context, req branch.UpsertAssignmentRequest) (branch.UserBranchAssignment, error)
	ListBranchAssignments(ctx context.Context, branchID *string) ([]branch.UserBranchAssignment, error)
	SetBranchOrderType(ctx context.Context, orderTypeID, branchID string, allowed bool) error

	// Order types
	CreateOrderType(ctx context.Context, req ordertype.CreateOrderTypeRequest) (ordertype.OrderType, error)
	UpdateOrderType(ctx context.Context, id string, req ordertype.UpdateOrderTypeRequest) (ordertype.OrderType, error)
	ListOrderTypes(ctx context.Context, activeOnly bool) ([]ordertype.OrderType, error)
	UpsertUserTypeSetting(ctx context.Context, req ordertype.UpsertUserSettingRequest) (ordertype.UserTypeSetting, error)
	ListUserTypeSettings(ctx context.Context, userID *string) ([]ordertype.UserTypeSetting, error)
}

type MasterServiceImpl struct {
	db            *database.DB
	branchRepo    branch.BranchRepository
	orderTypeRepo ordertype.OrderTypeRepository
}

func NewMasterService(db *database.DB, branchRepo branch.BranchRepository, orderTypeRepo ordertype.OrderTypeRepository) MasterService {
	return &MasterServiceImpl{
		db:            db,
		branchRepo:    branchRepo,
		orderTypeRepo: orderTypeRepo,
	}
}

// ========== BRANCHES ==========

func (s *MasterServiceImpl) CreateBranch(ctx context.Context, req branch.CreateBranchRequest) (branch.Branch, error) {
	if err := req.Validate(); err != nil {
		return branch.Branch{}, err
	}

	created, err := s.branchRepo.Create(ctx, branch.Branch{
		Name:      req.Name,
		IsActive:  true,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		return branch.Branch{}, fmt.Errorf("failed to create branch: %w", err)
	}

	return created, nil
}

func (s *MasterServiceImpl) UpdateBranch(ctx context.Context, id string, req branch.UpdateBranchRequest) (branch.Branch, error) {
	if err := req.Validate(); err != nil {
		return branch.Branch{}, err
	}

	b, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return branch.Branch{}, err
	}

	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}

	if err := s.branchRepo.Update(ctx, b); err != nil {
		return branch.Branch{}, fmt.Errorf("failed to update branch: %w", err)
	}

	return b, nil
}

func (s *MasterServiceImpl) ListBranches(ctx context.Context, activeOnly bool) ([]branch.Branch, error) {
	branches, err := s.branchRepo.GetAll(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return branches, nil
}

func (s *MasterServiceImpl) UpsertBranchAssignment(ctx context.Context, req branch.UpsertAssignmentRequest) (branch.UserBranchAssignment, error) {
	if err := req.Validate(); err != nil {
		return branch.UserBranchAssignment{}, err
	}

	if _, err := s.branchRepo.GetByID(ctx, req.BranchID); err != nil {
		return branch.UserBranchAssignment{}, err
	}

	a, err := s.branchRepo.UpsertUserAssignment(ctx, branch.UserBranchAssignment{
		UserID:        req.UserID,
		BranchID:      req.BranchID,
		CustomPercent: req.CustomPercent,
		IsPrimary:     req.IsPrimary,
		IsAllowed:     req.IsAllowed,
	})
	if err != nil {
		return branch.UserBranchAssignment{}, fmt.Errorf("failed to upsert branch assignment: %w", err)
	}

	return a, nil
}

func (s *MasterServiceImpl) ListBranchAssignments(ctx context.Context, branchID *string) ([]branch.UserBranchAssignment, error) {
	assignments, err := s.branchRepo.GetUserAssignments(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list branch assignments: %w", err)
	}
	return assignments, nil
}

func (s *MasterServiceImpl) SetBranchOrderType(ctx context.Context, orderTypeID, branchID string, allowed bool) error {
	if _, err := s.branchRepo.GetByID(ctx, branchID); err != nil {
		return err
	}
	if _, err := s.orderTypeRepo.GetByID(ctx, orderTypeID); err != nil {
		return err
	}
	return s.branchRepo.SetOrderTypeAllowed(ctx, orderTypeID, branchID, allowed)
}

// ========== ORDER TYPES ==========

func (s *MasterServiceImpl) CreateOrderType(ctx context.Context, req ordertype.CreateOrderTypeRequest) (ordertype.OrderType, error) {
	if err := req.Validate(); err != nil {
		return ordertype.OrderType{}, err
	}

	include := true
	if req.IncludeInEmployeeSalary != nil {
		include = *req.IncludeInEmployeeSalary
	}

	created, err := s.orderTypeRepo.Create(ctx, ordertype.OrderType{
		Name:                    req.Name,
		CommissionPercent:       req.CommissionPercent,
		DefaultEmployeePercent:  req.DefaultEmployeePercent,
		IncludeInEmployeeSalary: include,
		IsActive:                true,
	})
	if err != nil {
		return ordertype.OrderType{}, fmt.Errorf("failed to create order type: %w", err)
	}

	return created, nil
}

func (s *MasterServiceImpl) UpdateOrderType(ctx context.Context, id string, req ordertype.UpdateOrderTypeRequest) (ordertype.OrderType, error) {
	if err := req.Validate(); err != nil {
		return ordertype.OrderType{}, err
	}

	t, err := s.orderTypeRepo.GetByID(ctx, id)
	if err != nil {
		return ordertype.OrderType{}, err
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.CommissionPercent != nil {
		t.CommissionPercent = *req.CommissionPercent
	}
	if req.DefaultEmployeePercent != nil {
		t.DefaultEmployeePercent = req.DefaultEmployeePercent
	}
	if req.IncludeInEmployeeSalary != nil {
		t.IncludeInEmployeeSalary = *req.IncludeInEmployeeSalary
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	if err := s.orderTypeRepo.Update(ctx, t); err != nil {
		return ordertype.OrderType{}, fmt.Errorf("failed to update order type: %w", err)
	}

	return t, nil
}

func (s *MasterServiceImpl) ListOrderTypes(ctx context.Context, activeOnly bool) ([]ordertype.OrderType, error) {
	types, err := s.orderTypeRepo.GetAll(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list order types: %w", err)
	}
	return types, nil
}

func (s *MasterServiceImpl) UpsertUserTypeSetting(ctx context.Context, req ordertype.UpsertUserSettingRequest) (ordertype.UserTypeSetting, error) {
	if err := req.Validate(); err != nil {
		return ordertype.UserTypeSetting{}, err
	}

	if _, err := s.orderTypeRepo.GetByID(ctx, req.OrderTypeID); err != nil {
		return ordertype.UserTypeSetting{}, err
	}

	setting, err := s.orderTypeRepo.UpsertUserSetting(ctx, ordertype.UserTypeSetting{
		UserID:        req.UserID,
		OrderTypeID:   req.OrderTypeID,
		CustomPercent: req.CustomPercent,
		IsAllowed:     req.IsAllowed,
	})
	if err != nil {
		return ordertype.UserTypeSetting{}, fmt.Errorf("failed to upsert user type setting: %w", err)
	}

	return setting, nil
}

func (s *MasterServiceImpl) ListUserTypeSettings(ctx context.Context, userID *string) ([]ordertype.UserTypeSetting, error) {
	settings, err := s.orderTypeRepo.GetUserSettings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user type settings: %w", err)
	}
	return settings, nil
}
