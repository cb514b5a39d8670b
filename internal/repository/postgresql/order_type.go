package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/glowmark/retailops-backend-go/internal/domain/ordertype"
	"github.com/glowmark/retailops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type orderTypeRepositoryImpl struct {
	db *database.DB
}

func NewOrderTypeRepository(db *database.DB) ordertype.OrderTypeRepository {
	return &orderTypeRepositoryImpl{db: db}
}

const orderTypeColumns = `id, name, commission_percent, default_employee_percent,
	include_in_employee_salary, is_active, created_at`

func scanOrderType(row pgx.Row) (ordertype.OrderType, error) {
	var t ordertype.OrderType
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.CommissionPercent,
		&t.DefaultEmployeePercent,
		&t.IncludeInEmployeeSalary,
		&t.IsActive,
		&t.CreatedAt,
	)
	return t, err
}

// Create implements ordertype.OrderTypeRepository.
func (r *orderTypeRepositoryImpl) Create(ctx context.Context, t ordertype.OrderType) (ordertype.OrderType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO order_types (id, name, commission_percent, default_employee_percent,
			include_in_employee_salary, is_active, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW())
		RETURNING ` + orderTypeColumns

	created, err := scanOrderType(q.QueryRow(ctx, query,
		t.Name, t.CommissionPercent, t.DefaultEmployeePercent, t.IncludeInEmployeeSalary, t.IsActive,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_order_type_name") {
			return ordertype.OrderType{}, ordertype.ErrOrderTypeNameExists
		}
		return ordertype.OrderType{}, err
	}

	return created, nil
}

// GetByID implements ordertype.OrderTypeRepository.
func (r *orderTypeRepositoryImpl) GetByID(ctx context.Context, id string) (ordertype.OrderType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + orderTypeColumns + ` FROM order_types WHERE id = $1`

	t, err := scanOrderType(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ordertype.OrderType{}, ordertype.ErrOrderTypeNotFound
		}
		return ordertype.OrderType{}, err
	}

	return t, nil
}

// GetByIDs implements ordertype.OrderTypeRepository.
func (r *orderTypeRepositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]ordertype.OrderType, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + orderTypeColumns + ` FROM order_types WHERE id = ANY($1)`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []ordertype.OrderType
	for rows.Next() {
		t, err := scanOrderType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}

	return types, rows.Err()
}

// GetAll implements ordertype.OrderTypeRepository.
func (r *orderTypeRepositoryImpl) GetAll(ctx context.Context, activeOnly bool) ([]ordertype.OrderType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + orderTypeColumns + ` FROM order_types`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY created_at`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []ordertype.OrderType
	for rows.Next() {
		t, err := scanOrderType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}

	return types, rows.Err()
}

// Update implements ordertype.OrderTypeRepository.
func (r *orderTypeRepositoryImpl) Update(ctx context.Context, t ordertype.OrderType) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE order_types
		SET name = $1, commission_percent = $2, default_employee_percent = $3,
			include_in_employee_salary = $4, is_active = $5
		WHERE id = $6
	`, t.Name, t.CommissionPercent, t.DefaultEmployeePercent, t.IncludeInEmployeeSalary, t.IsActive, t.ID)
	if err != nil {
		if strings.Contains(err.Error(), "uk_order_type_name") {
			return ordertype.ErrOrderTypeNameExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ordertype.ErrOrderTypeNotFound
	}

	return nil
}

// UpsertUserSetting implements ordertype.OrderTypeRepository.
func (r *orderTypeRepositoryImpl) UpsertUserSetting(ctx context.Context, s ordertype.UserTypeSetting) (ordertype.UserTypeSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_order_types (id, user_id, order_type_id, custom_percent, is_allowed)
		VALUES (uuidv7(), $1, $2, $3, $4)
		ON CONFLICT (user_id, order_type_id) DO UPDATE SET
			custom_percent = EXCLUDED.custom_percent,
			is_allowed = EXCLUDED.is_allowed
		RETURNING id, user_id, order_type_id, custom_percent, is_allowed
	`

	var saved ordertype.UserTypeSetting
	err := q.QueryRow(ctx, query, s.UserID, s.OrderTypeID, s.CustomPercent, s.IsAllowed).Scan(
		&saved.ID, &saved.UserID, &saved.OrderTypeID, &saved.CustomPercent, &saved.IsAllowed,
	)
	if err != nil {
		return ordertype.UserTypeSetting{}, err
	}

	return saved, nil
}

// GetUserSettings implements ordertype.OrderTypeRepository.
func (r *orderTypeRepositoryImpl) GetUserSettings(ctx context.Context, userID *string) ([]ordertype.UserTypeSetting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, order_type_id, custom_percent, is_allowed
		FROM user_order_types
		WHERE ($1::uuid IS NULL OR user_id = $1)
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []ordertype.UserTypeSetting
	for rows.Next() {
		var s ordertype.UserTypeSetting
		if err := rows.Scan(&s.ID, &s.UserID, &s.OrderTypeID, &s.CustomPercent, &s.IsAllowed); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}

	return settings, rows.Err()
}
