package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/glowmark/retailops-backend-go/internal/domain/payout"
	"github.com/glowmark/retailops-backend-go/internal/domain/shift"
	"github.com/glowmark/retailops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type payoutRepositoryImpl struct {
	db *database.DB
}

func NewPayoutRepository(db *database.DB) payout.PayoutRepository {
	return &payoutRepositoryImpl{db: db}
}

const payoutColumns = `id, user_id, date, location, role_type, amount, is_manual, paid_at, created_at`

func scanPayout(row pgx.Row) (payout.Payout, error) {
	var p payout.Payout
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Date,
		&p.Location,
		&p.RoleType,
		&p.Amount,
		&p.IsManual,
		&p.PaidAt,
		&p.CreatedAt,
	)
	return p, err
}

// Create implements payout.PayoutRepository.
func (r *payoutRepositoryImpl) Create(ctx context.Context, p payout.Payout) (payout.Payout, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payouts (id, user_id, date, location, role_type, amount, is_manual, paid_at, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING ` + payoutColumns

	created, err := scanPayout(q.QueryRow(ctx, query,
		p.UserID, p.Date, p.Location, p.RoleType, p.Amount, p.IsManual, p.PaidAt,
	))
	if err != nil {
		return payout.Payout{}, err
	}

	return created, nil
}

// GetByID implements payout.PayoutRepository.
func (r *payoutRepositoryImpl) GetByID(ctx context.Context, id string) (payout.Payout, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payoutColumns + ` FROM payouts WHERE id = $1`

	p, err := scanPayout(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payout.Payout{}, payout.ErrPayoutNotFound
		}
		return payout.Payout{}, err
	}

	return p, nil
}

// Delete implements payout.PayoutRepository.
func (r *payoutRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payouts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payout.ErrPayoutNotFound
	}

	return nil
}

// GetByDateRange implements payout.PayoutRepository.
func (r *payoutRepositoryImpl) GetByDateRange(ctx context.Context, start, end time.Time, location shift.Location) ([]payout.Payout, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payoutColumns + ` FROM payouts WHERE date BETWEEN $1 AND $2 AND location = $3 ORDER BY date`

	rows, err := q.Query(ctx, query, start, end, location)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payouts []payout.Payout
	for rows.Next() {
		p, err := scanPayout(rows)
		if err != nil {
			return nil, err
		}
		payouts = append(payouts, p)
	}

	return payouts, rows.Err()
}

// SumByUser implements payout.PayoutRepository.
func (r *payoutRepositoryImpl) SumByUser(ctx context.Context, start, end time.Time, location shift.Location, excludeAdmins bool) (map[string]decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, COALESCE(SUM(amount), 0)
		FROM payouts
		WHERE date BETWEEN $1 AND $2 AND location = $3
		  AND (NOT $4 OR role_type <> 'admin')
		GROUP BY user_id
	`

	rows, err := q.Query(ctx, query, start, end, location, excludeAdmins)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := make(map[string]decimal.Decimal)
	for rows.Next() {
		var userID string
		var total decimal.Decimal
		if err := rows.Scan(&userID, &total); err != nil {
			return nil, err
		}
		sums[userID] = total
	}

	return sums, rows.Err()
}
