package user

import (
	"context"
	"errors"

	infrarepo "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/user"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct {
	db *gorm.DB
}

// New returns a gorm-backed UserRepository bound to db, which is either the
// connection or an open transaction.
func New(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*user.User, error) {
	var m User
	err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return mapModelToDomain(&m), nil
}

func (r *userRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*user.User, error) {
	var m User
	err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return mapModelToDomain(&m), nil
}

// GetForUpdate takes a row lock on the user. Inside a transaction the lock is
// held until commit or rollback.
func (r *userRepository) GetForUpdate(
	ctx context.Context,
	id uuid.UUID,
) (*user.User, error) {
	var m User
	err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&m, "id = ?", id).Error
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return mapModelToDomain(&m), nil
}

func (r *userRepository) Create(
	ctx context.Context,
	u *user.User,
) error {
	m := &User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Create(m).Error
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		return user.ErrUserAlreadyExists
	}
	return err
}

func mapNotFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return user.ErrUserNotFound
	}
	return err
}

func mapModelToDomain(m *User) *user.User {
	return user.NewFromData(m.ID, m.Name, m.Email, m.Password, m.CreatedAt, m.UpdatedAt)
}

var _ repository.UserRepository = (*userRepository)(nil)
