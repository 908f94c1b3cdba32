package service

import (
	"context"
	"testing"
	"time"

	"dormhub/internal/config"
	"dormhub/internal/microservices/http-api/models"
	"dormhub/internal/middleware/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockSessionDenylist mocks the SessionDenylist interface
type MockSessionDenylist struct {
	mock.Mock
}

func (m *MockSessionDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockSessionDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func newTestAuthService(users *MockUserRepository, denylist *MockSessionDenylist) AuthService {
	cfg := &config.Config{
		JWTSecret:      testSecret,
		AccessTokenTTL: time.Hour,
	}
	return NewAuthService(users, denylist, cfg, discardLogger())
}

func storedUser(t *testing.T) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	return &models.User{ID: 11, Username: "warden", Email: "warden@example.com", Password: hash, IsActive: true}
}

func TestRegister_Success(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestAuthService(users, new(MockSessionDenylist))
	ctx := context.Background()

	users.On("FindByUsername", ctx, "testuser").Return(nil, gorm.ErrRecordNotFound)
	users.On("FindByEmail", ctx, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil)

	user, err := svc.Register(ctx, "testuser", "password123", "test@example.com")

	require.NoError(t, err)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, "test@example.com", user.Email)
	assert.True(t, user.IsActive)
	assert.NoError(t, auth.VerifyPassword(user.Password, "password123"))
	users.AssertExpectations(t)
}

func TestRegister_UsernameExists(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestAuthService(users, new(MockSessionDenylist))
	ctx := context.Background()

	users.On("FindByUsername", ctx, "testuser").Return(&models.User{ID: 1}, nil)

	_, err := svc.Register(ctx, "testuser", "password123", "test@example.com")
	assert.ErrorIs(t, err, ErrNameInUse)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_EmailExists(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestAuthService(users, new(MockSessionDenylist))
	ctx := context.Background()

	users.On("FindByUsername", ctx, "testuser").Return(nil, gorm.ErrRecordNotFound)
	users.On("FindByEmail", ctx, "test@example.com").Return(&models.User{ID: 1}, nil)

	_, err := svc.Register(ctx, "testuser", "password123", "test@example.com")
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestLogin_IssuesValidToken(t *testing.T) {
	users := new(MockUserRepository)
	denylist := new(MockSessionDenylist)
	svc := newTestAuthService(users, denylist)
	ctx := context.Background()
	user := storedUser(t)

	users.On("FindByEmail", ctx, user.Email).Return(user, nil)
	denylist.On("IsRevoked", ctx, mock.AnythingOfType("string")).Return(false, nil)

	token, expiresAt, got, err := svc.Login(ctx, user.Email, "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, got.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "warden", claims.Username)
	assert.NotEmpty(t, claims.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestAuthService(users, new(MockSessionDenylist))
	ctx := context.Background()
	user := storedUser(t)

	users.On("FindByEmail", ctx, user.Email).Return(user, nil)

	_, _, _, err := svc.Login(ctx, user.Email, "not-the-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestAuthService(users, new(MockSessionDenylist))
	ctx := context.Background()

	users.On("FindByEmail", ctx, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, _, _, err := svc.Login(ctx, "ghost@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken_Rejects(t *testing.T) {
	svc := newTestAuthService(new(MockUserRepository), new(MockSessionDenylist))
	ctx := context.Background()

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			UserID: 1,
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        "x",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := token.SignedString([]byte("some-other-secret-of-enough-length!!"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			UserID: 1,
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        "x",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		})
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestLogout_RevokesToken(t *testing.T) {
	users := new(MockUserRepository)
	denylist := new(MockSessionDenylist)
	svc := newTestAuthService(users, denylist)
	ctx := context.Background()
	user := storedUser(t)

	users.On("FindByEmail", ctx, user.Email).Return(user, nil)
	denylist.On("IsRevoked", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()

	token, _, _, err := svc.Login(ctx, user.Email, "password123")
	require.NoError(t, err)
	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)

	denylist.On("Revoke", ctx, claims.ID, mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 0 && ttl <= time.Hour
	})).Return(nil)
	require.NoError(t, svc.Logout(ctx, claims))

	denylist.On("IsRevoked", ctx, claims.ID).Return(true, nil)
	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	denylist.AssertExpectations(t)
}

func TestGetUser_Missing(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestAuthService(users, new(MockSessionDenylist))
	ctx := context.Background()

	users.On("FindByID", ctx, int64(3)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetUser(ctx, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}
