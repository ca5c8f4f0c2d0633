package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	"github.com/tsizion/DokaBackend/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type loginUserRepoMock struct{ mock.Mock }

func (m *loginUserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *loginUserRepoMock) Create(ctx context.Context, user *model.User) error {
	panic("not used in login tests")
}
func (m *loginUserRepoMock) List(ctx context.Context) ([]model.User, error) {
	panic("not used in login tests")
}
func (m *loginUserRepoMock) FindByID(ctx context.Context, id string) (*model.User, error) {
	panic("not used in login tests")
}
func (m *loginUserRepoMock) ExistsByEmailOrPhone(ctx context.Context, email, phone, excludeID string) (bool, error) {
	panic("not used in login tests")
}
func (m *loginUserRepoMock) Update(ctx context.Context, user *model.User) error {
	panic("not used in login tests")
}
func (m *loginUserRepoMock) Delete(ctx context.Context, id string) error {
	panic("not used in login tests")
}

type loginAdminRepoMock struct{ mock.Mock }

func (m *loginAdminRepoMock) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	args := m.Called(ctx, email)
	a, _ := args.Get(0).(*model.Admin)
	return a, args.Error(1)
}

func (m *loginAdminRepoMock) Create(ctx context.Context, admin *model.Admin) error {
	panic("not used in login tests")
}
func (m *loginAdminRepoMock) List(ctx context.Context) ([]model.Admin, error) {
	panic("not used in login tests")
}
func (m *loginAdminRepoMock) FindByID(ctx context.Context, id string) (*model.Admin, error) {
	panic("not used in login tests")
}
func (m *loginAdminRepoMock) Delete(ctx context.Context, id string) error {
	panic("not used in login tests")
}

var (
	_ repository.UserRepository  = (*loginUserRepoMock)(nil)
	_ repository.AdminRepository = (*loginAdminRepoMock)(nil)
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

const testSecret = "test-secret"

func newLoginUsecase(t *testing.T, users *loginUserRepoMock, admins *loginAdminRepoMock) (*LoginUsecase, *BcryptPasswordHasher) {
	t.Helper()
	hasher := NewBcryptPasswordHasher(4)
	uc := NewLoginUsecase(users, admins, NewBcryptPasswordVerifier(), NewJWTIssuer(testSecret, time.Hour), fixedClock{t: time.Now()})
	return uc, hasher
}

func parseClaims(t *testing.T, raw string) jwt.MapClaims {
	t.Helper()
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestLoginUser_Success(t *testing.T) {
	users := new(loginUserRepoMock)
	uc, hasher := newLoginUsecase(t, users, new(loginAdminRepoMock))

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)
	users.On("FindByEmail", mock.Anything, "a@example.com").Return(&model.User{
		Document:     model.Document{ID: "u1"},
		Email:        "a@example.com",
		PasswordHash: hash,
		Status:       model.UserStatusActive,
	}, nil)

	out, err := uc.LoginUser(context.Background(), LoginInput{Email: " a@example.com ", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "u1", out.User.ID)

	claims := parseClaims(t, out.Token)
	assert.Equal(t, "u1", claims["sub"])
	assert.Equal(t, "user", claims["typ"])
}

func TestLoginUser_WrongPassword(t *testing.T) {
	users := new(loginUserRepoMock)
	uc, hasher := newLoginUsecase(t, users, new(loginAdminRepoMock))

	hash, _ := hasher.Hash("password123")
	users.On("FindByEmail", mock.Anything, "a@example.com").Return(&model.User{PasswordHash: hash}, nil)

	_, err := uc.LoginUser(context.Background(), LoginInput{Email: "a@example.com", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_UnknownEmail(t *testing.T) {
	users := new(loginUserRepoMock)
	uc, _ := newLoginUsecase(t, users, new(loginAdminRepoMock))

	users.On("FindByEmail", mock.Anything, "x@example.com").Return(nil, repository.ErrNotFound)

	_, err := uc.LoginUser(context.Background(), LoginInput{Email: "x@example.com", Password: "p"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_Inactive(t *testing.T) {
	users := new(loginUserRepoMock)
	uc, hasher := newLoginUsecase(t, users, new(loginAdminRepoMock))

	hash, _ := hasher.Hash("password123")
	users.On("FindByEmail", mock.Anything, "a@example.com").Return(&model.User{PasswordHash: hash, Status: model.UserStatusInactive}, nil)

	_, err := uc.LoginUser(context.Background(), LoginInput{Email: "a@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestLoginUser_DBError(t *testing.T) {
	users := new(loginUserRepoMock)
	uc, _ := newLoginUsecase(t, users, new(loginAdminRepoMock))

	dbErr := errors.New("db down")
	users.On("FindByEmail", mock.Anything, "a@example.com").Return(nil, dbErr)

	_, err := uc.LoginUser(context.Background(), LoginInput{Email: "a@example.com", Password: "p"})
	assert.ErrorIs(t, err, dbErr)
}

func TestLoginAdmin_Success(t *testing.T) {
	admins := new(loginAdminRepoMock)
	uc, hasher := newLoginUsecase(t, new(loginUserRepoMock), admins)

	hash, _ := hasher.Hash("adminpass")
	admins.On("FindByEmail", mock.Anything, "root@example.com").Return(&model.Admin{
		Document:     model.Document{ID: "a1"},
		PasswordHash: hash,
		Role:         model.AdminRoleSuperAdmin,
	}, nil)

	out, err := uc.LoginAdmin(context.Background(), LoginInput{Email: "root@example.com", Password: "adminpass"})
	require.NoError(t, err)

	claims := parseClaims(t, out.Token)
	assert.Equal(t, "a1", claims["sub"])
	assert.Equal(t, "admin", claims["typ"])
}

func TestJWTIssuer_Expiry(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	_, exp, err := NewJWTIssuer(testSecret, 24*time.Hour).Issue("u1", TokenTypeUser, now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(24*time.Hour), exp)
}

func TestBcryptPasswordHasher_FallbackCost(t *testing.T) {
	h := NewBcryptPasswordHasher(100)
	hash, err := h.Hash("secret")
	require.NoError(t, err)
	assert.True(t, NewBcryptPasswordVerifier().Verify("secret", hash))
	assert.False(t, NewBcryptPasswordVerifier().Verify("other", hash))
}
