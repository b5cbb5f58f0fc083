package repository

import "context"

// UnitOfWork defines the contract for transactional work and repository access.
//
// Do runs fn in a transaction boundary. Repositories obtained from the uow
// passed to fn share that transaction; if fn returns an error nothing fn
// wrote is kept.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	UserRepository() (UserRepository, error)
	StatementRepository() (StatementRepository, error)
}
