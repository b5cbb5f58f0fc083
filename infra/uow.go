package infra

import (
	"context"

	statementrepo "github.com/amirasaad/ledger/infra/repository/statement"
	userrepo "github.com/amirasaad/ledger/infra/repository/user"
	"github.com/amirasaad/ledger/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// Repositories returned by a UoW created inside Do share its transaction.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn in a database transaction. A nested Do joins the outer one.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UoW) UserRepository() (repository.UserRepository, error) {
	return userrepo.New(u.session()), nil
}

func (u *UoW) StatementRepository() (repository.StatementRepository, error) {
	return statementrepo.New(u.session()), nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
