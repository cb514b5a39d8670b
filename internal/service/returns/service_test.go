package returns

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowmark/retailops-backend-go/internal/domain/order"
	"github.com/glowmark/retailops-backend-go/internal/domain/returns"
	"github.com/glowmark/retailops-backend-go/internal/pkg/validator"
)

type fakeReturnRepo struct {
	returns map[string]returns.Return
	nextID  int
}

func newFakeReturnRepo() *fakeReturnRepo {
	return &fakeReturnRepo{returns: make(map[string]returns.Return)}
}

func (f *fakeReturnRepo) Create(_ context.Context, r returns.Return) (returns.Return, error) {
	f.nextID++
	r.ID = fmt.Sprintf("return-%d", f.nextID)
	f.returns[r.ID] = r
	return r, nil
}

func (f *fakeReturnRepo) GetByID(_ context.Context, id string) (returns.Return, error) {
	r, ok := f.returns[id]
	if !ok {
		return returns.Return{}, returns.ErrReturnNotFound
	}
	return r, nil
}

func (f *fakeReturnRepo) Update(_ context.Context, r returns.Return) error {
	if _, ok := f.returns[r.ID]; !ok {
		return returns.ErrReturnNotFound
	}
	f.returns[r.ID] = r
	return nil
}

func (f *fakeReturnRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.returns[id]; !ok {
		return returns.ErrReturnNotFound
	}
	delete(f.returns, id)
	return nil
}

func (f *fakeReturnRepo) GetByDateRange(_ context.Context, start, end time.Time) ([]returns.Return, error) {
	var out []returns.Return
	for _, r := range f.returns {
		if !r.Date.Before(start) && !r.Date.After(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeOrderRepo struct {
	orders map[string]order.Order
}

func (f *fakeOrderRepo) Create(_ context.Context, o order.Order) (order.Order, error) {
	f.orders[o.ID] = o
	return o, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (order.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return order.Order{}, order.ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, _ order.Order) error { return nil }

func (f *fakeOrderRepo) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeOrderRepo) GetByDateRange(_ context.Context, _, _ time.Time, _ *string) ([]order.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) FindMatching(_ context.Context, _ string, _ time.Time, _ decimal.Decimal, _ *string) ([]order.Order, error) {
	return nil, nil
}

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func newTestService() (ReturnService, *fakeReturnRepo) {
	returnRepo := newFakeReturnRepo()
	orderRepo := &fakeOrderRepo{orders: map[string]order.Order{
		"o1": {ID: "o1", CreatedBy: "m1"},
	}}
	return NewReturnService(nil, returnRepo, orderRepo), returnRepo
}

func TestCreateReturn(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	orderID := "o1"
	created, err := svc.Create(context.Background(), returns.CreateReturnRequest{
		Date:    "2026-03-10",
		Amount:  dec("200"),
		OrderID: &orderID,
	}, "admin")
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "admin", created.CreatedBy)
	require.NotNil(t, created.OrderID)
	assert.Equal(t, "o1", *created.OrderID)
}

func TestCreateReturnUnknownOrder(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	orderID := "ghost"
	_, err := svc.Create(context.Background(), returns.CreateReturnRequest{
		Date:    "2026-03-10",
		Amount:  dec("200"),
		OrderID: &orderID,
	}, "admin")
	assert.ErrorIs(t, err, returns.ErrOrderNotFound)
}

func TestCreateReturnPenaltyMismatch(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), returns.CreateReturnRequest{
		Date:          "2026-03-10",
		Amount:        dec("0"),
		PenaltyAmount: dec("150"),
		PenaltyDistribution: map[string]decimal.Decimal{
			"m1": dec("100"),
		},
	}, "admin")

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "penalty_distribution", verrs[0].Field)
}

func TestCreateReturnPenaltyOnly(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), returns.CreateReturnRequest{
		Date:          "2026-03-10",
		Amount:        dec("0"),
		PenaltyAmount: dec("150"),
		PenaltyDistribution: map[string]decimal.Decimal{
			"m1": dec("100"),
			"m2": dec("50"),
		},
	}, "admin")
	require.NoError(t, err)

	assert.True(t, created.Amount.IsZero())
	assert.True(t, dec("150").Equal(created.PenaltyAmount))
	assert.Len(t, created.PenaltyDistribution, 2)
}

func TestUpdateReturnDetachesOrder(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	orderID := "o1"
	created, err := svc.Create(context.Background(), returns.CreateReturnRequest{
		Date:    "2026-03-10",
		Amount:  dec("200"),
		OrderID: &orderID,
	}, "admin")
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, returns.CreateReturnRequest{
		Date:   "2026-03-10",
		Amount: dec("250"),
	})
	require.NoError(t, err)

	assert.Nil(t, updated.OrderID)
	assert.True(t, dec("250").Equal(updated.Amount))
	// The creator survives the update.
	assert.Equal(t, "admin", updated.CreatedBy)
}

func TestDeleteReturnUnknown(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	err := svc.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, returns.ErrReturnNotFound)
}
