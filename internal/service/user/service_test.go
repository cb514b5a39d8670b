package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/glowmark/retailops-backend-go/internal/domain/user"
	"github.com/glowmark/retailops-backend-go/internal/pkg/validator"
)

type fakeUserRepo struct {
	users  map[string]user.User
	nextID int
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]user.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetAll(_ context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Create(_ context.Context, newUser user.User) (user.User, error) {
	f.nextID++
	newUser.ID = fmt.Sprintf("user-%d", f.nextID)
	f.users[newUser.ID] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) Update(_ context.Context, req user.UpdateUserRequest) error {
	u, ok := f.users[req.ID]
	if !ok {
		return user.ErrUserNotFound
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Role != nil {
		u.Role = user.Role(*req.Role)
	}
	if req.DefaultRate != nil {
		u.DefaultRate = *req.DefaultRate
	}
	if req.DefaultPercent != nil {
		u.DefaultPercent = *req.DefaultPercent
	}
	f.users[req.ID] = u
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	u, ok := f.users[userID]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	f.users[userID] = u
	return nil
}

func (f *fakeUserRepo) SetActive(_ context.Context, userID string, active bool) error {
	u, ok := f.users[userID]
	if !ok {
		return user.ErrUserNotFound
	}
	u.IsActive = active
	f.users[userID] = u
	return nil
}

func validCreate() user.CreateUserRequest {
	return user.CreateUserRequest{
		Email:    "manager@example.com",
		Name:     "New Manager",
		Password: "secret-password",
		Role:     string(user.RoleManager),
	}
}

func TestCreateUserDefaults(t *testing.T) {
	t.Parallel()

	svc := NewUserService(nil, newFakeUserRepo())

	created, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)
	assert.True(t, created.DefaultRate.IsZero())
	assert.True(t, created.DefaultPercent.IsZero())
	assert.Equal(t, "10:00", created.ShiftStart.Format("15:04"))
	assert.Equal(t, "20:00", created.ShiftEnd.Format("15:04"))

	// The stored hash verifies against the plaintext and is never the
	// plaintext itself.
	assert.NotEqual(t, "secret-password", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret-password")))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo(user.User{ID: "u1", Email: "manager@example.com"})
	svc := NewUserService(nil, repo)

	_, err := svc.Create(context.Background(), validCreate())
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestCreateUserInvalidRole(t *testing.T) {
	t.Parallel()

	svc := NewUserService(nil, newFakeUserRepo())

	req := validCreate()
	req.Role = "supervisor"

	_, err := svc.Create(context.Background(), req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "role", verrs[0].Field)
}

func TestCreateUserCustomCompensation(t *testing.T) {
	t.Parallel()

	svc := NewUserService(nil, newFakeUserRepo())

	rate := decimal.NewFromInt(1500)
	percent := decimal.NewFromInt(7)
	start, end := "09:00", "18:00"

	req := validCreate()
	req.DefaultRate = &rate
	req.DefaultPercent = &percent
	req.ShiftStart = &start
	req.ShiftEnd = &end

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, rate.Equal(created.DefaultRate))
	assert.True(t, percent.Equal(created.DefaultPercent))
	assert.Equal(t, "09:00", created.ShiftStart.Format("15:04"))
	assert.Equal(t, "18:00", created.ShiftEnd.Format("15:04"))
}

func TestUpdateUserEmailTakenByOther(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo(
		user.User{ID: "u1", Email: "one@example.com"},
		user.User{ID: "u2", Email: "two@example.com"},
	)
	svc := NewUserService(nil, repo)

	taken := "two@example.com"
	_, err := svc.Update(context.Background(), user.UpdateUserRequest{ID: "u1", Email: &taken})
	assert.ErrorIs(t, err, user.ErrEmailExists)

	// Keeping your own email is not a conflict.
	own := "one@example.com"
	_, err = svc.Update(context.Background(), user.UpdateUserRequest{ID: "u1", Email: &own})
	assert.NoError(t, err)
}

func TestSetActiveSelfDeactivation(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo(user.User{ID: "admin", Email: "admin@example.com", IsActive: true})
	svc := NewUserService(nil, repo)

	err := svc.SetActive(context.Background(), "admin", "admin", false)
	assert.ErrorIs(t, err, user.ErrSelfDeactivate)

	// Reactivating yourself is allowed, deactivating others is too.
	assert.NoError(t, svc.SetActive(context.Background(), "admin", "admin", true))
}

func TestChangePasswordTooShort(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo(user.User{ID: "u1"})
	svc := NewUserService(nil, repo)

	err := svc.ChangePassword(context.Background(), "u1", "short")

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo(user.User{ID: "u1"})
	svc := NewUserService(nil, repo)

	require.NoError(t, svc.ChangePassword(context.Background(), "u1", "a-longer-password"))

	stored, err := repo.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("a-longer-password")))
}
