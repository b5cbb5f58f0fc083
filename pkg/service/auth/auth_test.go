package auth_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/ledger/infra/repository/memory"
	"github.com/amirasaad/ledger/internal/fixtures/mocks"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/user"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/service/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testJwt = &config.Jwt{Secret: "test-secret", Expiry: time.Hour}

func seedUser(t *testing.T, uow repository.UnitOfWork, email, password string) *user.User {
	t.Helper()
	u, err := user.New("Eduardo Mausa", email, password)
	require.NoError(t, err)
	users, err := uow.UserRepository()
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func TestLogin_JWT(t *testing.T) {
	t.Parallel()
	uow := memory.NewUoW(memory.NewStore())
	u := seedUser(t, uow, "eduardo@mail.com", "secret123")
	svc := auth.NewWithJWT(uow, testJwt, slog.Default())

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"valid credentials", "eduardo@mail.com", "secret123", nil},
		{"wrong password", "eduardo@mail.com", "wrong", user.ErrUserUnauthorized},
		{"unknown email", "nobody@mail.com", "secret123", user.ErrUserUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := svc.Login(context.Background(), tc.email, tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, u.ID, got.ID)
		})
	}
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	t.Parallel()
	uow := memory.NewUoW(memory.NewStore())
	u := seedUser(t, uow, "eduardo@mail.com", "secret123")
	svc := auth.NewWithJWT(uow, testJwt, slog.Default())

	tokenString, err := svc.GenerateToken(context.Background(), u)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
		return []byte(testJwt.Secret), nil
	})
	require.NoError(t, err)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, u.Email, claims["email"])
	assert.Equal(t, u.Name, claims["name"])

	userID, err := svc.GetCurrentUserID(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
}

func TestGetCurrentUserID_InvalidClaims(t *testing.T) {
	t.Parallel()
	svc := auth.NewWithJWT(memory.NewUoW(memory.NewStore()), testJwt, slog.Default())

	tests := []struct {
		name  string
		token *jwt.Token
	}{
		{"nil token", nil},
		{"missing user_id", jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "x@mail.com"})},
		{"malformed user_id", jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "not-a-uuid"})},
		{"registered claims", jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "x"})},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.GetCurrentUserID(tc.token)
			assert.ErrorIs(t, err, user.ErrUserUnauthorized)
		})
	}
}

func TestBasicStrategy(t *testing.T) {
	t.Parallel()
	uow := memory.NewUoW(memory.NewStore())
	u := seedUser(t, uow, "eduardo@mail.com", "secret123")
	svc := auth.NewWithBasic(uow, slog.Default())

	got, err := svc.Login(context.Background(), "eduardo@mail.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = svc.GenerateToken(context.Background(), u)
	assert.ErrorIs(t, err, auth.ErrTokensUnsupported)

	_, err = svc.GetCurrentUserID(&jwt.Token{})
	assert.ErrorIs(t, err, auth.ErrTokensUnsupported)
}

func TestService_DelegatesToStrategy(t *testing.T) {
	t.Parallel()
	strategy := mocks.NewMockStrategy(t)
	svc := auth.New(strategy, slog.Default())
	u := &user.User{ID: uuid.New(), Email: "eduardo@mail.com"}
	boom := errors.New("boom")

	strategy.EXPECT().Login(mock.Anything, "eduardo@mail.com", "pw").Return(u, nil).Once()
	strategy.EXPECT().Login(mock.Anything, "eduardo@mail.com", "bad").Return(nil, boom).Once()
	strategy.EXPECT().GenerateToken(mock.Anything, u).Return("signed", nil).Once()

	got, err := svc.Login(context.Background(), "eduardo@mail.com", "pw")
	require.NoError(t, err)
	assert.Same(t, u, got)

	_, err = svc.Login(context.Background(), "eduardo@mail.com", "bad")
	assert.ErrorIs(t, err, boom)

	token, err := svc.GenerateToken(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, "signed", token)
}
