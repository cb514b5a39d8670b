package order

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowmark/retailops-backend-go/internal/domain/order"
	"github.com/glowmark/retailops-backend-go/internal/domain/ordertype"
	"github.com/glowmark/retailops-backend-go/internal/pkg/validator"
)

type fakeOrderRepo struct {
	orders map[string]order.Order
	nextID int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]order.Order)}
}

func (f *fakeOrderRepo) Create(_ context.Context, o order.Order) (order.Order, error) {
	f.nextID++
	o.ID = fmt.Sprintf("order-%d", f.nextID)
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

func (f *fakeOrderRepo) Update(_ context.Context, o order.Order) error {
	if _, ok := f.orders[o.ID]; !ok {
		return order.ErrOrderNotFound
	}
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.orders[id]; !ok {
		return order.ErrOrderNotFound
	}
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) GetByDateRange(_ context.Context, start, end time.Time, _ *string) ([]order.Order, error) {
	var out []order.Order
	for _, o := range f.orders {
		if !o.Date.Before(start) && !o.Date.After(end) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindMatching(_ context.Context, phone string, date time.Time, amount decimal.Decimal, excludeID *string) ([]order.Order, error) {
	var out []order.Order
	for _, o := range f.orders {
		if excludeID != nil && o.ID == *excludeID {
			continue
		}
		if o.PhoneNumber == phone && o.Date.Equal(date) && o.Amount.Equal(amount) {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeOrderTypeRepo struct {
	types map[string]ordertype.OrderType
}

func newFakeOrderTypeRepo(types ...ordertype.OrderType) *fakeOrderTypeRepo {
	f := &fakeOrderTypeRepo{types: make(map[string]ordertype.OrderType)}
	for _, t := range types {
		f.types[t.ID] = t
	}
	return f
}

func (f *fakeOrderTypeRepo) Create(_ context.Context, t ordertype.OrderType) (ordertype.OrderType, error) {
	f.types[t.ID] = t
	return t, nil
}

func (f *fakeOrderTypeRepo) GetByID(_ context.Context, id string) (ordertype.OrderType, error) {
	t, ok := f.types[id]
	if !ok {
		return ordertype.OrderType{}, ordertype.ErrOrderTypeNotFound
	}
	return t, nil
}

func (f *fakeOrderTypeRepo) GetByIDs(_ context.Context, ids []string) ([]ordertype.OrderType, error) {
	var out []ordertype.OrderType
	for _, id := range ids {
		if t, ok := f.types[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeOrderTypeRepo) GetAll(_ context.Context, activeOnly bool) ([]ordertype.OrderType, error) {
	var out []ordertype.OrderType
	for _, t := range f.types {
		if activeOnly && !t.IsActive {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeOrderTypeRepo) Update(_ context.Context, t ordertype.OrderType) error {
	if _, ok := f.types[t.ID]; !ok {
		return ordertype.ErrOrderTypeNotFound
	}
	f.types[t.ID] = t
	return nil
}

func (f *fakeOrderTypeRepo) UpsertUserSetting(_ context.Context, s ordertype.UserTypeSetting) (ordertype.UserTypeSetting, error) {
	return s, nil
}

func (f *fakeOrderTypeRepo) GetUserSettings(_ context.Context, _ *string) ([]ordertype.UserTypeSetting, error) {
	return nil, nil
}

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func newTestService() (OrderService, *fakeOrderRepo) {
	orderRepo := newFakeOrderRepo()
	typeRepo := newFakeOrderTypeRepo(
		ordertype.OrderType{ID: "perfume", Name: "Perfume", IsActive: true},
		ordertype.OrderType{ID: "resale", Name: "Resale", IsActive: true},
		ordertype.OrderType{ID: "retired", Name: "Retired", IsActive: false},
	)
	return NewOrderService(nil, orderRepo, typeRepo), orderRepo
}

func validRequest() order.CreateOrderRequest {
	return order.CreateOrderRequest{
		Date:        "2026-03-10",
		PhoneNumber: "+79991234567",
		Amount:      dec("1000"),
		Splits: []order.TypeSplitRequest{
			{OrderTypeID: "perfume", Amount: dec("600")},
			{OrderTypeID: "resale", Amount: dec("400")},
		},
	}
}

func TestCreateOrder(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), validRequest(), "manager-1")
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "manager-1", created.CreatedBy)
	assert.True(t, dec("1000").Equal(created.Amount))
	require.Len(t, created.Splits, 2)
	assert.True(t, created.Amount.Equal(created.SplitSum()))
}

func TestCreateOrderSplitSumMismatch(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	req := validRequest()
	req.Splits[1].Amount = dec("300")

	_, err := svc.Create(context.Background(), req, "manager-1")

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "order_types", verrs[0].Field)
}

func TestCreateOrderDuplicateType(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	req := validRequest()
	req.Splits = []order.TypeSplitRequest{
		{OrderTypeID: "perfume", Amount: dec("500")},
		{OrderTypeID: "perfume", Amount: dec("500")},
	}

	_, err := svc.Create(context.Background(), req, "manager-1")

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestCreateOrderInactiveType(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	req := validRequest()
	req.Splits = []order.TypeSplitRequest{
		{OrderTypeID: "retired", Amount: dec("1000")},
	}

	_, err := svc.Create(context.Background(), req, "manager-1")
	assert.ErrorIs(t, err, order.ErrInvalidOrderTypes)
}

func TestCreateOrderUnknownType(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	req := validRequest()
	req.Splits = []order.TypeSplitRequest{
		{OrderTypeID: "nope", Amount: dec("1000")},
	}

	_, err := svc.Create(context.Background(), req, "manager-1")
	assert.ErrorIs(t, err, order.ErrInvalidOrderTypes)
}

func TestUpdateOrderReplacesSplits(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), validRequest(), "manager-1")
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), order.UpdateOrderRequest{
		ID:          created.ID,
		Date:        "2026-03-11",
		PhoneNumber: created.PhoneNumber,
		Amount:      dec("800"),
		Splits: []order.TypeSplitRequest{
			{OrderTypeID: "perfume", Amount: dec("800")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-11", updated.Date.Format("2006-01-02"))
	require.Len(t, updated.Splits, 1)
	assert.True(t, dec("800").Equal(updated.Splits[0].Amount))

	// The creator never changes on update.
	assert.Equal(t, "manager-1", updated.CreatedBy)
}

func TestCheckDuplicatesExactMatch(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), validRequest(), "manager-1")
	require.NoError(t, err)

	result, err := svc.CheckDuplicates(context.Background(), validRequest(), nil)
	require.NoError(t, err)

	require.NotNil(t, result.ExactDuplicate)
	assert.Equal(t, created.ID, result.ExactDuplicate.ID)
	assert.Empty(t, result.SimilarOrders)
}

func TestCheckDuplicatesDifferentSplitsAreSimilar(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), validRequest(), "manager-1")
	require.NoError(t, err)

	// Same phone, date and amount, different type mix.
	req := validRequest()
	req.Splits = []order.TypeSplitRequest{
		{OrderTypeID: "perfume", Amount: dec("1000")},
	}

	result, err := svc.CheckDuplicates(context.Background(), req, nil)
	require.NoError(t, err)

	assert.Nil(t, result.ExactDuplicate)
	require.Len(t, result.SimilarOrders, 1)
	assert.Equal(t, created.ID, result.SimilarOrders[0].ID)
}

func TestCheckDuplicatesExcludesSelf(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), validRequest(), "manager-1")
	require.NoError(t, err)

	result, err := svc.CheckDuplicates(context.Background(), validRequest(), &created.ID)
	require.NoError(t, err)

	assert.Nil(t, result.ExactDuplicate)
	assert.Empty(t, result.SimilarOrders)
}
