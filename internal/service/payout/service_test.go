package payout

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowmark/retailops-backend-go/internal/domain/payout"
	"github.com/glowmark/retailops-backend-go/internal/domain/shift"
	"github.com/glowmark/retailops-backend-go/internal/domain/user"
)

type fakePayoutRepo struct {
	payouts map[string]payout.Payout
	nextID  int
}

func newFakePayoutRepo() *fakePayoutRepo {
	return &fakePayoutRepo{payouts: make(map[string]payout.Payout)}
}

func (f *fakePayoutRepo) Create(_ context.Context, p payout.Payout) (payout.Payout, error) {
	f.nextID++
	p.ID = fmt.Sprintf("payout-%d", f.nextID)
	f.payouts[p.ID] = p
	return p, nil
}

func (f *fakePayoutRepo) GetByID(_ context.Context, id string) (payout.Payout, error) {
	p, ok := f.payouts[id]
	if !ok {
		return payout.Payout{}, payout.ErrPayoutNotFound
	}
	return p, nil
}

func (f *fakePayoutRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.payouts[id]; !ok {
		return payout.ErrPayoutNotFound
	}
	delete(f.payouts, id)
	return nil
}

func (f *fakePayoutRepo) GetByDateRange(_ context.Context, start, end time.Time, location shift.Location) ([]payout.Payout, error) {
	var out []payout.Payout
	for _, p := range f.payouts {
		if p.Location != location {
			continue
		}
		if !p.Date.Before(start) && !p.Date.After(end) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePayoutRepo) SumByUser(_ context.Context, start, end time.Time, location shift.Location, excludeAdmins bool) (map[string]decimal.Decimal, error) {
	sums := make(map[string]decimal.Decimal)
	for _, p := range f.payouts {
		if p.Location != location || p.Date.Before(start) || p.Date.After(end) {
			continue
		}
		if excludeAdmins && p.RoleType == user.RoleAdmin {
			continue
		}
		sums[p.UserID] = sums[p.UserID].Add(p.Amount)
	}
	return sums, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetAll(_ context.Context) ([]user.User, error) { return nil, nil }

func (f *fakeUserRepo) Create(_ context.Context, newUser user.User) (user.User, error) {
	return newUser, nil
}

func (f *fakeUserRepo) Update(_ context.Context, _ user.UpdateUserRequest) error { return nil }

func (f *fakeUserRepo) UpdatePassword(_ context.Context, _, _ string) error { return nil }

func (f *fakeUserRepo) SetActive(_ context.Context, _ string, _ bool) error { return nil }

func newTestService() (PayoutService, *fakePayoutRepo) {
	repo := newFakePayoutRepo()
	users := &fakeUserRepo{users: map[string]user.User{
		"m1":    {ID: "m1", Role: user.RoleManager},
		"admin": {ID: "admin", Role: user.RoleAdmin},
	}}
	return NewPayoutService(nil, repo, users), repo
}

func TestCreatePayoutStampsRecipientRole(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), payout.CreatePayoutRequest{
		UserID:   "m1",
		Date:     "2026-03-10",
		Location: string(shift.LocationTikTok),
		Amount:   decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	assert.Equal(t, user.RoleManager, created.RoleType)
	assert.True(t, created.IsManual)
	assert.False(t, created.PaidAt.IsZero())
}

func TestCreatePayoutUnknownRecipient(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), payout.CreatePayoutRequest{
		UserID:   "ghost",
		Date:     "2026-03-10",
		Location: string(shift.LocationTikTok),
		Amount:   decimal.NewFromInt(500),
	})
	assert.ErrorIs(t, err, payout.ErrUserNotFound)
}

func TestSumByUserExcludesAdmins(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService()

	for _, userID := range []string{"m1", "admin"} {
		_, err := svc.Create(context.Background(), payout.CreatePayoutRequest{
			UserID:   userID,
			Date:     "2026-03-10",
			Location: string(shift.LocationTikTok),
			Amount:   decimal.NewFromInt(100),
		})
		require.NoError(t, err)
	}

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	all, err := repo.SumByUser(context.Background(), start, end, shift.LocationTikTok, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := repo.SumByUser(context.Background(), start, end, shift.LocationTikTok, true)
	require.NoError(t, err)
	assert.Len(t, filtered, 1)
	assert.True(t, decimal.NewFromInt(100).Equal(filtered["m1"]))
}

func TestDeletePayoutUnknown(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	err := svc.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, payout.ErrPayoutNotFound)
}
