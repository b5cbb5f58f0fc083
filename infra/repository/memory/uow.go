package memory

import (
	"context"
	"sync"

	"github.com/amirasaad/ledger/pkg/domain/statement"
	"github.com/amirasaad/ledger/pkg/domain/user"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/uuid"
)

type txState struct {
	mu         sync.Mutex
	users      []*user.User
	statements []*statement.Statement
	held       map[uuid.UUID]struct{}
}

// UoW implements repository.UnitOfWork over a Store.
type UoW struct {
	store *Store
	tx    *txState
}

// NewUoW creates a UoW over store.
func NewUoW(store *Store) *UoW {
	return &UoW{store: store}
}

// Do stages fn's writes and publishes them only if fn succeeds. A nested Do
// joins the outer one. Locks taken inside fn are released after publishing.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}
	tx := &txState{held: make(map[uuid.UUID]struct{})}
	defer func() {
		for id := range tx.held {
			u.store.unlock(id)
		}
	}()

	if err := fn(&UoW{store: u.store, tx: tx}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return u.store.commit(tx.users, tx.statements)
}

func (u *UoW) UserRepository() (repository.UserRepository, error) {
	return &userRepository{store: u.store, tx: u.tx}, nil
}

func (u *UoW) StatementRepository() (repository.StatementRepository, error) {
	return &statementRepository{store: u.store, tx: u.tx}, nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
