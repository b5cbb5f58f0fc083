package repository

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/statement"
	"github.com/amirasaad/ledger/pkg/domain/user"
	"github.com/google/uuid"
)

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// Get returns user.ErrUserNotFound when no user has the id.
	Get(ctx context.Context, id uuid.UUID) (*user.User, error)
	// GetByEmail returns user.ErrUserNotFound when no user has the email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	// GetForUpdate resolves the user and holds its write lock until the
	// surrounding unit of work ends. Writes for the same user queue behind it.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*user.User, error)
	// Create returns user.ErrUserAlreadyExists on a duplicate email.
	Create(ctx context.Context, u *user.User) error
}

// StatementRepository defines the interface for the append-only statement store.
type StatementRepository interface {
	// FindByID returns the statement only if it belongs to userID,
	// otherwise statement.ErrStatementNotFound.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*statement.Statement, error)
	// ListByUser returns all statements of a user, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*statement.Statement, error)
	// Create stores a statement, assigning an id if it has none.
	Create(ctx context.Context, s *statement.Statement) error
}
