package memory

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/statement"
	"github.com/amirasaad/ledger/pkg/domain/user"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/uuid"
)

type userRepository struct {
	store *Store
	tx    *txState
}

func (r *userRepository) staged(match func(*user.User) bool) (*user.User, bool) {
	if r.tx == nil {
		return nil, false
	}
	r.tx.mu.Lock()
	defer r.tx.mu.Unlock()
	for _, u := range r.tx.users {
		if match(u) {
			cp := *u
			return &cp, true
		}
	}
	return nil, false
}

func (r *userRepository) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if u, ok := r.staged(func(u *user.User) bool { return u.ID == id }); ok {
		return u, nil
	}
	if u, ok := r.store.getUser(id); ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if u, ok := r.staged(func(u *user.User) bool { return u.Email == email }); ok {
		return u, nil
	}
	if u, ok := r.store.getUserByEmail(email); ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}

func (r *userRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := r.Get(ctx, id)
	if err != nil || r.tx == nil {
		return u, err
	}
	r.tx.mu.Lock()
	_, held := r.tx.held[id]
	r.tx.mu.Unlock()
	if held {
		return u, nil
	}
	if err := r.store.lock(ctx, id); err != nil {
		return nil, err
	}
	r.tx.mu.Lock()
	r.tx.held[id] = struct{}{}
	r.tx.mu.Unlock()
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := r.GetByEmail(ctx, u.Email); err == nil {
		return user.ErrUserAlreadyExists
	}
	cp := *u
	if r.tx == nil {
		return r.store.commit([]*user.User{&cp}, nil)
	}
	r.tx.mu.Lock()
	r.tx.users = append(r.tx.users, &cp)
	r.tx.mu.Unlock()
	return nil
}

type statementRepository struct {
	store *Store
	tx    *txState
}

func (r *statementRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*statement.Statement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := r.store.listStatements(userID)
	if r.tx != nil {
		r.tx.mu.Lock()
		for _, st := range r.tx.statements {
			if st.UserID == userID {
				cp := *st
				out = append(out, &cp)
			}
		}
		r.tx.mu.Unlock()
	}
	return out, nil
}

func (r *statementRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*statement.Statement, error) {
	stmts, err := r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, st := range stmts {
		if st.ID == id {
			return st, nil
		}
	}
	return nil, statement.ErrStatementNotFound
}

func (r *statementRepository) Create(ctx context.Context, s *statement.Statement) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cp := *s
	if r.tx == nil {
		return r.store.commit(nil, []*statement.Statement{&cp})
	}
	r.tx.mu.Lock()
	r.tx.statements = append(r.tx.statements, &cp)
	r.tx.mu.Unlock()
	return nil
}

var (
	_ repository.UserRepository      = (*userRepository)(nil)
	_ repository.StatementRepository = (*statementRepository)(nil)
)
