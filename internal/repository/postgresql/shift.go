package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glowmark/retailops-backend-go/internal/domain/shift"
	"github.com/glowmark/retailops-backend-go/internal/pkg/database"
	"github.com/glowmark/retailops-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, date, location, branch_id, created_by, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW())
		RETURNING id, date, location, branch_id, created_by, created_at
	`

	var created shift.Shift
	err := q.QueryRow(ctx, query, s.Date, s.Location, s.BranchID, s.CreatedBy).Scan(
		&created.ID, &created.Date, &created.Location, &created.BranchID, &created.CreatedBy, &created.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_shift_date_branch") {
			return shift.Shift{}, shift.ErrShiftExists
		}
		return shift.Shift{}, err
	}

	return created, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, date, location, branch_id, created_by, created_at FROM shifts WHERE id = $1`

	var s shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Date, &s.Location, &s.BranchID, &s.CreatedBy, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, err
	}

	if err := r.loadAssignments(ctx, []*shift.Shift{&s}); err != nil {
		return shift.Shift{}, err
	}

	return s, nil
}

// GetByDateAndBranch implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByDateAndBranch(ctx context.Context, date time.Time, branchID *string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, location, branch_id, created_by, created_at
		FROM shifts
		WHERE date = $1 AND branch_id IS NOT DISTINCT FROM $2
	`

	var s shift.Shift
	err := q.QueryRow(ctx, query, date, branchID).Scan(&s.ID, &s.Date, &s.Location, &s.BranchID, &s.CreatedBy, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, err
	}

	if err := r.loadAssignments(ctx, []*shift.Shift{&s}); err != nil {
		return shift.Shift{}, err
	}

	return s, nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// GetByDateRange implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByDateRange(ctx context.Context, start, end time.Time, branchID *string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, location, branch_id, created_by, created_at
		FROM shifts
		WHERE date BETWEEN $1 AND $2
		  AND ($3::uuid IS NULL OR branch_id = $3)
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, start, end, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(&s.ID, &s.Date, &s.Location, &s.BranchID, &s.CreatedBy, &s.CreatedAt); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*shift.Shift, len(shifts))
	for i := range shifts {
		refs[i] = &shifts[i]
	}
	if err := r.loadAssignments(ctx, refs); err != nil {
		return nil, err
	}

	return shifts, nil
}

// AddAssignment implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) AddAssignment(ctx context.Context, a shift.Assignment) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (id, shift_id, user_id, start_time, end_time, salary, created_by, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		a.ShiftID, a.UserID,
		a.StartTime.Format("15:04"), a.EndTime.Format("15:04"),
		a.Salary, a.CreatedBy,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return shift.Assignment{}, err
	}

	return a, nil
}

// UpdateAssignment implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) UpdateAssignment(ctx context.Context, a shift.Assignment) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE shift_assignments SET start_time = $1, end_time = $2, salary = $3 WHERE id = $4
	`, a.StartTime.Format("15:04"), a.EndTime.Format("15:04"), a.Salary, a.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrAssignmentNotFound
	}

	return nil
}

// RemoveAssignment implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) RemoveAssignment(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_assignments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrAssignmentNotFound
	}

	return nil
}

func (r *shiftRepositoryImpl) loadAssignments(ctx context.Context, shifts []*shift.Shift) error {
	if len(shifts) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	byID := make(map[string]*shift.Shift, len(shifts))
	ids := make([]string, 0, len(shifts))
	for _, s := range shifts {
		byID[s.ID] = s
		ids = append(ids, s.ID)
	}

	rows, err := q.Query(ctx, `
		SELECT id, shift_id, user_id, start_time, end_time, salary, created_by, created_at
		FROM shift_assignments
		WHERE shift_id = ANY($1)
		ORDER BY shift_id, created_at
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a shift.Assignment
		var startTime, endTime string
		if err := rows.Scan(&a.ID, &a.ShiftID, &a.UserID, &startTime, &endTime, &a.Salary, &a.CreatedBy, &a.CreatedAt); err != nil {
			return err
		}
		if a.StartTime, err = validator.ParseTimeOfDay(startTime); err != nil {
			return fmt.Errorf("bad start_time %q: %w", startTime, err)
		}
		if a.EndTime, err = validator.ParseTimeOfDay(endTime); err != nil {
			return fmt.Errorf("bad end_time %q: %w", endTime, err)
		}
		if s, ok := byID[a.ShiftID]; ok {
			s.Assignments = append(s.Assignments, a)
		}
	}

	return rows.Err()
}
