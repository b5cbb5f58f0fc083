package user_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/amirasaad/ledger/infra/repository/memory"
	"github.com/amirasaad/ledger/internal/fixtures/mocks"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/user"
	"github.com/amirasaad/ledger/pkg/repository"
	usersvc "github.com/amirasaad/ledger/pkg/service/user"
	"github.com/amirasaad/ledger/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserServiceWithMocks(t *testing.T) (*usersvc.Service, *mocks.MockUserRepository, *mocks.MockUnitOfWork) {
	t.Helper()
	userRepo := mocks.NewMockUserRepository(t)
	uow := mocks.NewMockUnitOfWork(t)
	uow.EXPECT().UserRepository().Return(userRepo, nil).Maybe()
	return usersvc.New(uow, slog.Default()), userRepo, uow
}

func expectDo(uow *mocks.MockUnitOfWork) {
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	)
}

func TestCreateUser_Success(t *testing.T) {
	t.Parallel()
	svc, userRepo, uow := newUserServiceWithMocks(t)
	expectDo(uow)
	userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, user.ErrUserNotFound)
	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	u, err := svc.CreateUser(context.Background(), "alice", " alice@example.com ", "password")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Name)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEqual(t, "password", u.Password)
	assert.True(t, utils.CheckPasswordHash("password", u.Password))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc, userRepo, uow := newUserServiceWithMocks(t)
	expectDo(uow)
	userRepo.EXPECT().GetByEmail(mock.Anything, "bob@example.com").Return(&user.User{ID: uuid.New()}, nil)

	u, err := svc.CreateUser(context.Background(), "bob", "bob@example.com", "password")
	assert.ErrorIs(t, err, user.ErrUserAlreadyExists)
	assert.Nil(t, u)
}

func TestCreateUser_RepoError(t *testing.T) {
	t.Parallel()
	svc, userRepo, uow := newUserServiceWithMocks(t)
	expectDo(uow)
	dbErr := errors.New("db error")
	userRepo.EXPECT().GetByEmail(mock.Anything, "carol@example.com").Return(nil, user.ErrUserNotFound)
	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(dbErr)

	u, err := svc.CreateUser(context.Background(), "carol", "carol@example.com", "password")
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, u)
}

func TestCreateUser_InvalidInput(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name, userName, email, password string
	}{
		{"empty name", "", "dave@example.com", "password"},
		{"bad email", "dave", "not-an-email", "password"},
		{"empty password", "dave", "dave@example.com", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc, _, _ := newUserServiceWithMocks(t)
			_, err := svc.CreateUser(context.Background(), tc.userName, tc.email, tc.password)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestGetUser(t *testing.T) {
	t.Parallel()
	svc := usersvc.New(memory.NewUoW(memory.NewStore()), slog.Default())

	created, err := svc.CreateUser(context.Background(), "erin", "erin@example.com", "password")
	require.NoError(t, err)

	got, err := svc.GetUser(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, got.Email)

	byEmail, err := svc.GetUserByEmail(context.Background(), "erin@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = svc.GetUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	_, err = svc.CreateUser(context.Background(), "erin again", "erin@example.com", "password")
	assert.ErrorIs(t, err, user.ErrUserAlreadyExists)
}
