// Package fixtures seeds the reference data a fresh deployment needs: one
// admin account, the default branch for legacy orders, and the starter order
// types.
package fixtures

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/glowmark/retailops-backend-go/internal/domain/branch"
	"github.com/glowmark/retailops-backend-go/internal/domain/ordertype"
	"github.com/glowmark/retailops-backend-go/internal/domain/user"
	"github.com/glowmark/retailops-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

// DefaultOrderTypes are created on first boot. "Перекуп" resales stay out of
// the employee cashbox but still pay the manager commission.
var DefaultOrderTypes = []ordertype.OrderType{
	{
		Name:                    "Парфюм",
		CommissionPercent:       decimal.NewFromInt(100),
		IncludeInEmployeeSalary: true,
		IsActive:                true,
	},
	{
		Name:                    "Амазон",
		CommissionPercent:       decimal.NewFromInt(100),
		IncludeInEmployeeSalary: true,
		IsActive:                true,
	},
	{
		Name:                    "Перекуп",
		CommissionPercent:       decimal.NewFromInt(30),
		DefaultEmployeePercent:  decimalPtr(decimal.Zero),
		IncludeInEmployeeSalary: false,
		IsActive:                true,
	},
}

// Seed is idempotent: it only writes what is missing.
func Seed(db *database.DB, userRepo user.UserRepository, orderTypeRepo ordertype.OrderTypeRepository, branchRepo branch.BranchRepository) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seedAdmin(ctx, userRepo); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := seedDefaultBranch(ctx, branchRepo); err != nil {
		return fmt.Errorf("seed default branch: %w", err)
	}
	if err := seedOrderTypes(ctx, orderTypeRepo); err != nil {
		return fmt.Errorf("seed order types: %w", err)
	}

	return nil
}

func seedAdmin(ctx context.Context, userRepo user.UserRepository) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@localhost"
	}

	_, err := userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return err
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required for first boot")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	shiftStart, _ := time.Parse("15:04", "10:00")
	shiftEnd, _ := time.Parse("15:04", "20:00")

	_, err = userRepo.Create(ctx, user.User{
		Email:          email,
		Name:           "Administrator",
		PasswordHash:   string(hash),
		Role:           user.RoleAdmin,
		DefaultRate:    decimal.Zero,
		DefaultPercent: decimal.Zero,
		ShiftStart:     shiftStart,
		ShiftEnd:       shiftEnd,
		IsActive:       true,
	})
	return err
}

func seedDefaultBranch(ctx context.Context, branchRepo branch.BranchRepository) error {
	_, err := branchRepo.GetDefault(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, branch.ErrBranchNotFound) {
		return err
	}

	_, err = branchRepo.Create(ctx, branch.Branch{
		Name:      "Основной",
		IsActive:  true,
		IsDefault: true,
	})
	return err
}

func seedOrderTypes(ctx context.Context, orderTypeRepo ordertype.OrderTypeRepository) error {
	existing, err := orderTypeRepo.GetAll(ctx, false)
	if err != nil {
		return err
	}

	names := make(map[string]bool, len(existing))
	for _, t := range existing {
		names[t.Name] = true
	}

	for _, t := range DefaultOrderTypes {
		if names[t.Name] {
			continue
		}
		if _, err := orderTypeRepo.Create(ctx, t); err != nil {
			return err
		}
	}

	return nil
}
