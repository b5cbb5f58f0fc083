// Package statement implements the ledger operations: recording deposits and
// withdrawals, computing balances and retrieving single statements.
package statement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain/statement"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service provides the statement and balance operations.
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

// CreateStatementInput carries the fields of a new statement.
type CreateStatementInput struct {
	UserID      uuid.UUID
	Type        statement.OperationType
	Amount      decimal.Decimal
	Description string
}

// CreateStatement records a deposit or withdrawal for an existing user.
//
// The user row is locked for the whole unit of work, so the balance read for
// a withdrawal and the insert that follows cannot interleave with another
// write for the same user. Any failure leaves the ledger untouched.
func (s *Service) CreateStatement(
	ctx context.Context,
	in CreateStatementInput,
) (created *statement.Statement, err error) {
	log := s.logger.With(
		"userID", in.UserID,
		"type", in.Type,
		"amount", in.Amount.String(),
	)
	log.Info("CreateStatement started")

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return fmt.Errorf("user repository: %w", err)
		}
		if _, err := users.GetForUpdate(ctx, in.UserID); err != nil {
			log.Error("CreateStatement failed: user lookup", "error", err)
			return err
		}

		stmt, err := statement.New().
			WithUserID(in.UserID).
			WithType(in.Type).
			WithAmount(in.Amount).
			WithDescription(in.Description).
			Build()
		if err != nil {
			log.Error("CreateStatement failed: invalid statement", "error", err)
			return err
		}

		stmts, err := uow.StatementRepository()
		if err != nil {
			return fmt.Errorf("statement repository: %w", err)
		}

		if stmt.Type == statement.Withdraw {
			existing, err := stmts.ListByUser(ctx, in.UserID)
			if err != nil {
				log.Error("CreateStatement failed: list statements", "error", err)
				return err
			}
			balance := statement.Total(existing)
			if err := statement.ValidateWithdraw(balance, stmt.Amount); err != nil {
				log.Error("CreateStatement failed: withdraw rejected", "balance", balance.String(), "error", err)
				return err
			}
		}

		if err := stmts.Create(ctx, stmt); err != nil {
			log.Error("CreateStatement failed: persist", "error", err)
			return err
		}
		created = stmt
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info("CreateStatement successful", "statementID", created.ID)
	return created, nil
}

// ComputeBalance folds every statement of userID into a balance. It does not
// check that the user exists; an unknown user has a zero balance.
func (s *Service) ComputeBalance(
	ctx context.Context,
	userID uuid.UUID,
) (balance *statement.Balance, err error) {
	log := s.logger.With("userID", userID)
	log.Debug("ComputeBalance started")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		balance, err = computeBalance(ctx, uow, userID)
		return err
	})
	if err != nil {
		log.Error("ComputeBalance failed", "error", err)
		return nil, err
	}
	log.Debug("ComputeBalance successful", "balance", balance.Amount.String())
	return balance, nil
}

// GetBalance is ComputeBalance for a user that must exist.
func (s *Service) GetBalance(
	ctx context.Context,
	userID uuid.UUID,
) (balance *statement.Balance, err error) {
	log := s.logger.With("userID", userID)
	log.Info("GetBalance started")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return fmt.Errorf("user repository: %w", err)
		}
		if _, err := users.Get(ctx, userID); err != nil {
			return err
		}
		balance, err = computeBalance(ctx, uow, userID)
		return err
	})
	if err != nil {
		log.Error("GetBalance failed", "error", err)
		return nil, err
	}
	log.Info("GetBalance successful", "balance", balance.Amount.String(), "statements", len(balance.Statements))
	return balance, nil
}

// GetStatementOperation returns statementID if it belongs to userID. The user
// is resolved first, so an unknown user is reported before an unknown
// statement.
func (s *Service) GetStatementOperation(
	ctx context.Context,
	userID, statementID uuid.UUID,
) (stmt *statement.Statement, err error) {
	log := s.logger.With("userID", userID, "statementID", statementID)
	log.Info("GetStatementOperation started")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return fmt.Errorf("user repository: %w", err)
		}
		if _, err := users.Get(ctx, userID); err != nil {
			return err
		}
		stmts, err := uow.StatementRepository()
		if err != nil {
			return fmt.Errorf("statement repository: %w", err)
		}
		stmt, err = stmts.FindByID(ctx, statementID, userID)
		return err
	})
	if err != nil {
		log.Error("GetStatementOperation failed", "error", err)
		return nil, err
	}
	log.Info("GetStatementOperation successful")
	return stmt, nil
}

func computeBalance(
	ctx context.Context,
	uow repository.UnitOfWork,
	userID uuid.UUID,
) (*statement.Balance, error) {
	stmts, err := uow.StatementRepository()
	if err != nil {
		return nil, fmt.Errorf("statement repository: %w", err)
	}
	list, err := stmts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return statement.NewBalance(list), nil
}
