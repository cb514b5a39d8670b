package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/glowmark/retailops-backend-go/internal/domain/returns"
	"github.com/glowmark/retailops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type returnRepositoryImpl struct {
	db *database.DB
}

func NewReturnRepository(db *database.DB) returns.ReturnRepository {
	return &returnRepositoryImpl{db: db}
}

const returnColumns = `id, date, amount, reason, order_id, created_by, created_at,
	penalty_amount, penalty_distribution`

// penalty_distribution is stored as a JSONB object of user id -> amount.
func marshalPenalties(m map[string]decimal.Decimal) ([]byte, error) {
	if len(m) == 0 {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func scanReturn(row pgx.Row) (returns.Return, error) {
	var ret returns.Return
	var penalties []byte
	err := row.Scan(
		&ret.ID,
		&ret.Date,
		&ret.Amount,
		&ret.Reason,
		&ret.OrderID,
		&ret.CreatedBy,
		&ret.CreatedAt,
		&ret.PenaltyAmount,
		&penalties,
	)
	if err != nil {
		return returns.Return{}, err
	}
	if len(penalties) > 0 {
		if err := json.Unmarshal(penalties, &ret.PenaltyDistribution); err != nil {
			return returns.Return{}, err
		}
	}
	if len(ret.PenaltyDistribution) == 0 {
		ret.PenaltyDistribution = nil
	}
	return ret, nil
}

// Create implements returns.ReturnRepository.
func (r *returnRepositoryImpl) Create(ctx context.Context, ret returns.Return) (returns.Return, error) {
	q := GetQuerier(ctx, r.db)

	penalties, err := marshalPenalties(ret.PenaltyDistribution)
	if err != nil {
		return returns.Return{}, err
	}

	query := `
		INSERT INTO returns (id, date, amount, reason, order_id, created_by, created_at,
			penalty_amount, penalty_distribution)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW(), $6, $7)
		RETURNING ` + returnColumns

	created, err := scanReturn(q.QueryRow(ctx, query,
		ret.Date, ret.Amount, ret.Reason, ret.OrderID, ret.CreatedBy,
		ret.PenaltyAmount, penalties,
	))
	if err != nil {
		return returns.Return{}, err
	}

	return created, nil
}

// GetByID implements returns.ReturnRepository.
func (r *returnRepositoryImpl) GetByID(ctx context.Context, id string) (returns.Return, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + returnColumns + ` FROM returns WHERE id = $1`

	ret, err := scanReturn(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return returns.Return{}, returns.ErrReturnNotFound
		}
		return returns.Return{}, err
	}

	return ret, nil
}

// Update implements returns.ReturnRepository.
func (r *returnRepositoryImpl) Update(ctx context.Context, ret returns.Return) error {
	q := GetQuerier(ctx, r.db)

	penalties, err := marshalPenalties(ret.PenaltyDistribution)
	if err != nil {
		return err
	}

	tag, err := q.Exec(ctx, `
		UPDATE returns
		SET date = $1, amount = $2, reason = $3, order_id = $4,
			penalty_amount = $5, penalty_distribution = $6
		WHERE id = $7
	`, ret.Date, ret.Amount, ret.Reason, ret.OrderID, ret.PenaltyAmount, penalties, ret.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return returns.ErrReturnNotFound
	}

	return nil
}

// Delete implements returns.ReturnRepository.
func (r *returnRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM returns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return returns.ErrReturnNotFound
	}

	return nil
}

// GetByDateRange implements returns.ReturnRepository.
func (r *returnRepositoryImpl) GetByDateRange(ctx context.Context, start, end time.Time) ([]returns.Return, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + returnColumns + ` FROM returns WHERE date BETWEEN $1 AND $2 ORDER BY date, created_at`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rets []returns.Return
	for rows.Next() {
		ret, err := scanReturn(rows)
		if err != nil {
			return nil, err
		}
		rets = append(rets, ret)
	}

	return rets, rows.Err()
}
