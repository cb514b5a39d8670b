package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/glowmark/retailops-backend-go/internal/domain/auth"
	"github.com/glowmark/retailops-backend-go/internal/domain/user"
	"github.com/glowmark/retailops-backend-go/internal/pkg/jwt"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

type fakeUserRepo struct {
	users map[string]user.User // keyed by id
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
	f.users[newUser.ID] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) Update(_ context.Context, req user.UpdateUserRequest) error {
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	u := f.users[userID]
	u.PasswordHash = passwordHash
	f.users[userID] = u
	return nil
}

func (f *fakeUserRepo) SetActive(_ context.Context, userID string, active bool) error {
	u := f.users[userID]
	u.IsActive = active
	f.users[userID] = u
	return nil
}

func testUser(t *testing.T, id, email, password string, active bool) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return user.User{
		ID:           id,
		Email:        email,
		Name:         "Test User",
		PasswordHash: string(hash),
		Role:         user.RoleManager,
		IsActive:     active,
		CreatedAt:    time.Now(),
	}
}

func newTestService(repo user.UserRepository) auth.AuthService {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(nil, repo, jwtService)
}

func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeUserRepo(testUser(t, "u1", "manager@example.com", "password123", true))
	svc := newTestService(repo)

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "manager@example.com", Password: "password123"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
	assert.Equal(t, "u1", resp.UserID)
	assert.Equal(t, string(user.RoleManager), resp.Role)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeUserRepo(testUser(t, "u1", "manager@example.com", "password123", true))
	svc := newTestService(repo)

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "manager@example.com", Password: "wrong-password"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(newFakeUserRepo())

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: "password123"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_DeactivatedUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeUserRepo(testUser(t, "u1", "gone@example.com", "password123", false))
	svc := newTestService(repo)

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "gone@example.com", Password: "password123"})

	assert.ErrorIs(t, err, auth.ErrUserInactive)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeUserRepo(testUser(t, "u1", "manager@example.com", "password123", true))
	svc := newTestService(repo)

	login, err := svc.Login(ctx, auth.LoginRequest{Email: "manager@example.com", Password: "password123"})
	require.NoError(t, err)

	resp, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
}

func TestAuthService_RefreshToken_AccessTokenRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeUserRepo(testUser(t, "u1", "manager@example.com", "password123", true))
	svc := newTestService(repo)

	login, err := svc.Login(ctx, auth.LoginRequest{Email: "manager@example.com", Password: "password123"})
	require.NoError(t, err)

	// An access token must not be accepted in place of a refresh token.
	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.AccessToken})

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_RefreshToken_RevokedAfterLogout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeUserRepo(testUser(t, "u1", "manager@example.com", "password123", true))
	svc := newTestService(repo)

	login, err := svc.Login(ctx, auth.LoginRequest{Email: "manager@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.RefreshToken))

	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})

	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_RefreshToken_Garbage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(newFakeUserRepo())

	_, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: "not-a-token"})

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
