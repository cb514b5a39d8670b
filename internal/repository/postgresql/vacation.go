package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/glowmark/retailops-backend-go/internal/domain/vacation"
	"github.com/glowmark/retailops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type vacationRepositoryImpl struct {
	db *database.DB
}

func NewVacationRepository(db *database.DB) vacation.VacationRepository {
	return &vacationRepositoryImpl{db: db}
}

const vacationColumns = `id, user_id, start_date, end_date, amount, created_at`

func scanVacation(row pgx.Row) (vacation.Vacation, error) {
	var v vacation.Vacation
	err := row.Scan(
		&v.ID,
		&v.UserID,
		&v.StartDate,
		&v.EndDate,
		&v.Amount,
		&v.CreatedAt,
	)
	return v, err
}

// Create implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) Create(ctx context.Context, v vacation.Vacation) (vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacations (id, user_id, start_date, end_date, amount, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW())
		RETURNING ` + vacationColumns

	created, err := scanVacation(q.QueryRow(ctx, query,
		v.UserID, v.StartDate, v.EndDate, v.Amount,
	))
	if err != nil {
		return vacation.Vacation{}, err
	}

	return created, nil
}

// GetByID implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) GetByID(ctx context.Context, id string) (vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + vacationColumns + ` FROM vacations WHERE id = $1`

	v, err := scanVacation(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.Vacation{}, vacation.ErrVacationNotFound
		}
		return vacation.Vacation{}, err
	}

	return v, nil
}

// Delete implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM vacations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return vacation.ErrVacationNotFound
	}

	return nil
}

// GetOverlapping implements vacation.VacationRepository.
func (r *vacationRepositoryImpl) GetOverlapping(ctx context.Context, start, end time.Time) ([]vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + vacationColumns + ` FROM vacations WHERE start_date <= $2 AND end_date >= $1 ORDER BY start_date`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vacations []vacation.Vacation
	for rows.Next() {
		v, err := scanVacation(rows)
		if err != nil {
			return nil, err
		}
		vacations = append(vacations, v)
	}

	return vacations, rows.Err()
}
