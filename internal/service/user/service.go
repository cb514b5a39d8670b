package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/glowmark/retailops-backend-go/internal/domain/user"
	"github.com/glowmark/retailops-backend-go/internal/pkg/database"
	"github.com/glowmark/retailops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UserService interface {
	Create(ctx context.Context, req user.CreateUserRequest) (user.User, error)
	Update(ctx context.Context, req user.UpdateUserRequest) (user.User, error)
	Get(ctx context.Context, id string) (user.User, error)
	List(ctx context.Context) ([]user.User, error)
	SetActive(ctx context.Context, actorID, userID string, active bool) error
	ChangePassword(ctx context.Context, userID, newPassword string) error
}

type UserServiceImpl struct {
	db       *database.DB
	userRepo user.UserRepository
}

func NewUserService(db *database.DB, userRepo user.UserRepository) UserService {
	return &UserServiceImpl{
		db:       db,
		userRepo: userRepo,
	}
}

// defaultShiftBounds is the standard working window applied when a new user
// is created without explicit shift times.
var defaultShiftStart, _ = time.Parse("15:04", "10:00")
var defaultShiftEnd, _ = time.Parse("15:04", "20:00")

func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return user.User{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		ShiftStart:   defaultShiftStart,
		ShiftEnd:     defaultShiftEnd,
		IsActive:     true,
	}

	if req.DefaultRate != nil {
		newUser.DefaultRate = *req.DefaultRate
	} else {
		newUser.DefaultRate = decimal.Zero
	}
	if req.DefaultPercent != nil {
		newUser.DefaultPercent = *req.DefaultPercent
	} else {
		newUser.DefaultPercent = decimal.Zero
	}
	if req.ShiftStart != nil {
		newUser.ShiftStart, _ = validator.ParseTimeOfDay(*req.ShiftStart)
	}
	if req.ShiftEnd != nil {
		newUser.ShiftEnd, _ = validator.ParseTimeOfDay(*req.ShiftEnd)
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.ID); err != nil {
		return user.User{}, err
	}

	if req.Email != nil {
		existing, err := s.userRepo.GetByEmail(ctx, *req.Email)
		if err == nil && existing.ID != req.ID {
			return user.User{}, user.ErrEmailExists
		}
		if err != nil && !errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, fmt.Errorf("failed to check existing email: %w", err)
		}
	}

	if err := s.userRepo.Update(ctx, req); err != nil {
		return user.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return s.userRepo.GetByID(ctx, req.ID)
}

func (s *UserServiceImpl) Get(ctx context.Context, id string) (user.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserServiceImpl) List(ctx context.Context) ([]user.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserServiceImpl) SetActive(ctx context.Context, actorID, userID string, active bool) error {
	if !active && actorID == userID {
		return user.ErrSelfDeactivate
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.SetActive(ctx, userID, active)
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, userID, newPassword string) error {
	if len(newPassword) < 8 {
		return validator.ValidationErrors{{
			Field:   "password",
			Message: "password must be at least 8 characters",
		}}
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, userID, string(hash))
}
