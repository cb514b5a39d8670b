package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/glowmark/retailops-backend-go/internal/domain/order"
	"github.com/glowmark/retailops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type orderRepositoryImpl struct {
	db *database.DB
}

func NewOrderRepository(db *database.DB) order.OrderRepository {
	return &orderRepositoryImpl{db: db}
}

// Create implements order.OrderRepository. The order row and its splits are
// written in one transaction so a partially split order can never be read
// back.
func (r *orderRepositoryImpl) Create(ctx context.Context, o order.Order) (order.Order, error) {
	var created order.Order

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO orders (id, date, phone_number, amount, branch_id, created_by, created_at)
			VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW())
			RETURNING id, date, phone_number, amount, branch_id, created_by, created_at
		`
		err := tx.QueryRow(ctx, query,
			o.Date, o.PhoneNumber, o.Amount, o.BranchID, o.CreatedBy,
		).Scan(
			&created.ID, &created.Date, &created.PhoneNumber, &created.Amount,
			&created.BranchID, &created.CreatedBy, &created.CreatedAt,
		)
		if err != nil {
			return err
		}

		for _, split := range o.Splits {
			_, err := tx.Exec(ctx, `
				INSERT INTO order_splits (id, order_id, order_type_id, amount)
				VALUES (uuidv7(), $1, $2, $3)
			`, created.ID, split.OrderTypeID, split.Amount)
			if err != nil {
				return err
			}
		}

		created.Splits = o.Splits
		return nil
	})
	if err != nil {
		return order.Order{}, err
	}

	return created, nil
}

// GetByID implements order.OrderRepository.
func (r *orderRepositoryImpl) GetByID(ctx context.Context, id string) (order.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, phone_number, amount, branch_id, created_by, created_at
		FROM orders WHERE id = $1
	`

	var o order.Order
	err := q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Date, &o.PhoneNumber, &o.Amount, &o.BranchID, &o.CreatedBy, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.Order{}, order.ErrOrderNotFound
		}
		return order.Order{}, err
	}

	if err := r.loadSplits(ctx, []*order.Order{&o}); err != nil {
		return order.Order{}, err
	}

	return o, nil
}

// Update implements order.OrderRepository. Splits are replaced wholesale.
func (r *orderRepositoryImpl) Update(ctx context.Context, o order.Order) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE orders SET date = $1, phone_number = $2, amount = $3, branch_id = $4
			WHERE id = $5
		`, o.Date, o.PhoneNumber, o.Amount, o.BranchID, o.ID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return order.ErrOrderNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM order_splits WHERE order_id = $1`, o.ID); err != nil {
			return err
		}

		for _, split := range o.Splits {
			_, err := tx.Exec(ctx, `
				INSERT INTO order_splits (id, order_id, order_type_id, amount)
				VALUES (uuidv7(), $1, $2, $3)
			`, o.ID, split.OrderTypeID, split.Amount)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete implements order.OrderRepository.
func (r *orderRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

// GetByDateRange implements order.OrderRepository.
func (r *orderRepositoryImpl) GetByDateRange(ctx context.Context, start, end time.Time, branchID *string) ([]order.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, phone_number, amount, branch_id, created_by, created_at
		FROM orders
		WHERE date BETWEEN $1 AND $2
		  AND ($3::uuid IS NULL OR branch_id = $3)
		ORDER BY date, created_at
	`

	rows, err := q.Query(ctx, query, start, end, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		var o order.Order
		if err := rows.Scan(&o.ID, &o.Date, &o.PhoneNumber, &o.Amount, &o.BranchID, &o.CreatedBy, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*order.Order, len(orders))
	for i := range orders {
		refs[i] = &orders[i]
	}
	if err := r.loadSplits(ctx, refs); err != nil {
		return nil, err
	}

	return orders, nil
}

// FindMatching implements order.OrderRepository.
func (r *orderRepositoryImpl) FindMatching(ctx context.Context, phone string, date time.Time, amount decimal.Decimal, excludeID *string) ([]order.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, phone_number, amount, branch_id, created_by, created_at
		FROM orders
		WHERE phone_number = $1 AND date = $2 AND amount = $3
		  AND ($4::uuid IS NULL OR id <> $4)
	`

	rows, err := q.Query(ctx, query, phone, date, amount, excludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		var o order.Order
		if err := rows.Scan(&o.ID, &o.Date, &o.PhoneNumber, &o.Amount, &o.BranchID, &o.CreatedBy, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*order.Order, len(orders))
	for i := range orders {
		refs[i] = &orders[i]
	}
	if err := r.loadSplits(ctx, refs); err != nil {
		return nil, err
	}

	return orders, nil
}

// loadSplits attaches split lists to the given orders in one query. A legacy
// row with no split rows falls back to its order_type_id column, normalized
// into a one-element split covering the full amount.
func (r *orderRepositoryImpl) loadSplits(ctx context.Context, orders []*order.Order) error {
	if len(orders) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	byID := make(map[string]*order.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	rows, err := q.Query(ctx, `
		SELECT order_id, order_type_id, amount
		FROM order_splits
		WHERE order_id = ANY($1)
		ORDER BY order_id, id
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var split order.TypeSplit
		if err := rows.Scan(&orderID, &split.OrderTypeID, &split.Amount); err != nil {
			return err
		}
		if o, ok := byID[orderID]; ok {
			o.Splits = append(o.Splits, split)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	// Legacy rows predate the split table.
	legacy := make([]string, 0)
	for _, o := range orders {
		if len(o.Splits) == 0 {
			legacy = append(legacy, o.ID)
		}
	}
	if len(legacy) == 0 {
		return nil
	}

	legacyRows, err := q.Query(ctx, `
		SELECT id, order_type_id FROM orders
		WHERE id = ANY($1) AND order_type_id IS NOT NULL
	`, legacy)
	if err != nil {
		return err
	}
	defer legacyRows.Close()

	for legacyRows.Next() {
		var orderID, typeID string
		if err := legacyRows.Scan(&orderID, &typeID); err != nil {
			return err
		}
		if o, ok := byID[orderID]; ok {
			o.Splits = []order.TypeSplit{{OrderTypeID: typeID, Amount: o.Amount}}
		}
	}
	if err := legacyRows.Err(); err != nil {
		return err
	}

	// Oldest rows have neither split rows nor a legacy type. They still
	// normalize to a one-element split so the whole amount earns the
	// untyped-commission fallback downstream.
	for _, o := range orders {
		if len(o.Splits) == 0 {
			o.Splits = []order.TypeSplit{{Amount: o.Amount}}
		}
	}

	return nil
}
