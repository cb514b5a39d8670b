package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glowmark/retailops-backend-go/internal/domain/user"
	"github.com/glowmark/retailops-backend-go/internal/pkg/database"
	"github.com/glowmark/retailops-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, email, name, password_hash, role, default_rate, default_percent,
	shift_start, shift_end, is_active, created_at, updated_at`

// shift_start and shift_end are stored as "HH:MM" strings, the same way the
// API exchanges them.
func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	var shiftStart, shiftEnd string
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.PasswordHash,
		&u.Role,
		&u.DefaultRate,
		&u.DefaultPercent,
		&shiftStart,
		&shiftEnd,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}
	if u.ShiftStart, err = validator.ParseTimeOfDay(shiftStart); err != nil {
		return user.User{}, fmt.Errorf("bad shift_start %q: %w", shiftStart, err)
	}
	if u.ShiftEnd, err = validator.ParseTimeOfDay(shiftEnd); err != nil {
		return user.User{}, fmt.Errorf("bad shift_end %q: %w", shiftEnd, err)
	}
	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return u, nil
}

// GetAll implements user.UserRepository.
func (r *userRepositoryImpl) GetAll(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, email, name, password_hash, role, default_rate, default_percent,
			shift_start, shift_end, is_active, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING ` + userColumns

	created, err := scanUser(q.QueryRow(ctx, query,
		newUser.Email,
		newUser.Name,
		newUser.PasswordHash,
		newUser.Role,
		newUser.DefaultRate,
		newUser.DefaultPercent,
		newUser.ShiftStart.Format("15:04"),
		newUser.ShiftEnd.Format("15:04"),
		newUser.IsActive,
	))
	if err != nil {
		return user.User{}, err
	}

	return created, nil
}

// Update implements user.UserRepository. Only the fields set on the request
// are written.
func (r *userRepositoryImpl) Update(ctx context.Context, req user.UpdateUserRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	idx := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if req.Email != nil {
		addSet("email", *req.Email)
	}
	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Role != nil {
		addSet("role", *req.Role)
	}
	if req.DefaultRate != nil {
		addSet("default_rate", *req.DefaultRate)
	}
	if req.DefaultPercent != nil {
		addSet("default_percent", *req.DefaultPercent)
	}
	if req.ShiftStart != nil {
		addSet("shift_start", *req.ShiftStart)
	}
	if req.ShiftEnd != nil {
		addSet("shift_end", *req.ShiftEnd)
	}

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(sets, ", "), idx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2
	`, passwordHash, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// SetActive implements user.UserRepository.
func (r *userRepositoryImpl) SetActive(ctx context.Context, userID string, active bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE users SET is_active = $1, updated_at = NOW() WHERE id = $2
	`, active, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
