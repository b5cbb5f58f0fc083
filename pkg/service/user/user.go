// Package user provides business logic for user registration and profiles.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain/user"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/uuid"
)

// Service provides business logic for user operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		logger: logger,
	}
}

// CreateUser registers a new user. The email must not be taken.
func (s *Service) CreateUser(
	ctx context.Context,
	name, email, password string,
) (u *user.User, err error) {
	log := s.logger.With("email", email)
	log.Info("CreateUser started")

	u, err = user.New(name, email, password)
	if err != nil {
		log.Error("CreateUser failed: invalid input", "error", err)
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return fmt.Errorf("user repository: %w", err)
		}
		_, err = repo.GetByEmail(ctx, u.Email)
		switch {
		case err == nil:
			return user.ErrUserAlreadyExists
		case !errors.Is(err, user.ErrUserNotFound):
			return err
		}
		return repo.Create(ctx, u)
	})
	if err != nil {
		log.Error("CreateUser failed", "error", err)
		return nil, err
	}
	log.Info("CreateUser successful", "userID", u.ID)
	return u, nil
}

// GetUser returns the profile of userID.
func (s *Service) GetUser(
	ctx context.Context,
	userID uuid.UUID,
) (u *user.User, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return fmt.Errorf("user repository: %w", err)
		}
		u, err = repo.Get(ctx, userID)
		return err
	})
	if err != nil {
		s.logger.Error("GetUser failed", "userID", userID, "error", err)
		return nil, err
	}
	return u, nil
}

// GetUserByEmail looks a user up by email.
func (s *Service) GetUserByEmail(
	ctx context.Context,
	email string,
) (u *user.User, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return fmt.Errorf("user repository: %w", err)
		}
		u, err = repo.GetByEmail(ctx, email)
		return err
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}
