package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/glowmark/retailops-backend-go/internal/domain/branch"
	"github.com/glowmark/retailops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type branchRepositoryImpl struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) branch.BranchRepository {
	return &branchRepositoryImpl{db: db}
}

// Create implements branch.BranchRepository.
func (r *branchRepositoryImpl) Create(ctx context.Context, b branch.Branch) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO branches (id, name, is_active, is_default, created_at)
		VALUES (uuidv7(), $1, $2, $3, NOW())
		RETURNING id, name, is_active, is_default, created_at
	`

	var created branch.Branch
	err := q.QueryRow(ctx, query, b.Name, b.IsActive, b.IsDefault).Scan(
		&created.ID, &created.Name, &created.IsActive, &created.IsDefault, &created.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_branch_name") {
			return branch.Branch{}, branch.ErrBranchNameExists
		}
		return branch.Branch{}, err
	}

	return created, nil
}

// GetByID implements branch.BranchRepository.
func (r *branchRepositoryImpl) GetByID(ctx context.Context, id string) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, is_active, is_default, created_at FROM branches WHERE id = $1`

	var b branch.Branch
	err := q.QueryRow(ctx, query, id).Scan(&b.ID, &b.Name, &b.IsActive, &b.IsDefault, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return branch.Branch{}, branch.ErrBranchNotFound
		}
		return branch.Branch{}, err
	}

	return b, nil
}

// GetAll implements branch.BranchRepository.
func (r *branchRepositoryImpl) GetAll(ctx context.Context, activeOnly bool) ([]branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, is_active, is_default, created_at FROM branches`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY created_at`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []branch.Branch
	for rows.Next() {
		var b branch.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.IsActive, &b.IsDefault, &b.CreatedAt); err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}

	return branches, rows.Err()
}

// GetDefault implements branch.BranchRepository.
func (r *branchRepositoryImpl) GetDefault(ctx context.Context) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, is_active, is_default, created_at FROM branches WHERE is_default LIMIT 1`

	var b branch.Branch
	err := q.QueryRow(ctx, query).Scan(&b.ID, &b.Name, &b.IsActive, &b.IsDefault, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return branch.Branch{}, branch.ErrBranchNotFound
		}
		return branch.Branch{}, err
	}

	return b, nil
}

// Update implements branch.BranchRepository.
func (r *branchRepositoryImpl) Update(ctx context.Context, b branch.Branch) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE branches SET name = $1, is_active = $2, is_default = $3 WHERE id = $4
	`, b.Name, b.IsActive, b.IsDefault, b.ID)
	if err != nil {
		if strings.Contains(err.Error(), "uk_branch_name") {
			return branch.ErrBranchNameExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return branch.ErrBranchNotFound
	}

	return nil
}

// UpsertUserAssignment implements branch.BranchRepository.
func (r *branchRepositoryImpl) UpsertUserAssignment(ctx context.Context, a branch.UserBranchAssignment) (branch.UserBranchAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_branches (id, user_id, branch_id, custom_percent, is_primary, is_allowed)
		VALUES (uuidv7(), $1, $2, $3, $4, $5)
		ON CONFLICT (user_id, branch_id) DO UPDATE SET
			custom_percent = EXCLUDED.custom_percent,
			is_primary = EXCLUDED.is_primary,
			is_allowed = EXCLUDED.is_allowed
		RETURNING id, user_id, branch_id, custom_percent, is_primary, is_allowed
	`

	var saved branch.UserBranchAssignment
	err := q.QueryRow(ctx, query, a.UserID, a.BranchID, a.CustomPercent, a.IsPrimary, a.IsAllowed).Scan(
		&saved.ID, &saved.UserID, &saved.BranchID, &saved.CustomPercent, &saved.IsPrimary, &saved.IsAllowed,
	)
	if err != nil {
		return branch.UserBranchAssignment{}, err
	}

	return saved, nil
}

// GetUserAssignments implements branch.BranchRepository.
func (r *branchRepositoryImpl) GetUserAssignments(ctx context.Context, branchID *string) ([]branch.UserBranchAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, branch_id, custom_percent, is_primary, is_allowed
		FROM user_branches
		WHERE ($1::uuid IS NULL OR branch_id = $1)
	`

	rows, err := q.Query(ctx, query, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []branch.UserBranchAssignment
	for rows.Next() {
		var a branch.UserBranchAssignment
		if err := rows.Scan(&a.ID, &a.UserID, &a.BranchID, &a.CustomPercent, &a.IsPrimary, &a.IsAllowed); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}

// SetOrderTypeAllowed implements branch.BranchRepository.
func (r *branchRepositoryImpl) SetOrderTypeAllowed(ctx context.Context, orderTypeID, branchID string, allowed bool) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO order_type_branches (id, order_type_id, branch_id, is_allowed)
		VALUES (uuidv7(), $1, $2, $3)
		ON CONFLICT (order_type_id, branch_id) DO UPDATE SET is_allowed = EXCLUDED.is_allowed
	`, orderTypeID, branchID, allowed)

	return err
}

// GetAllowedOrderTypes implements branch.BranchRepository.
func (r *branchRepositoryImpl) GetAllowedOrderTypes(ctx context.Context, branchID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT order_type_id FROM order_type_branches WHERE branch_id = $1 AND is_allowed
	`, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
