// Package memory provides a volatile UnitOfWork for tests, the CLI and
// DATABASE_DRIVER=memory. Writes made inside Do are staged and published on
// success; GetForUpdate takes a per-user lock held until Do returns.
package memory

import (
	"context"
	"sync"

	"github.com/amirasaad/ledger/pkg/domain/statement"
	"github.com/amirasaad/ledger/pkg/domain/user"
	"github.com/google/uuid"
)

// Store holds committed users and statements.
type Store struct {
	mu         sync.RWMutex
	users      map[uuid.UUID]*user.User
	emails     map[string]uuid.UUID
	statements map[uuid.UUID][]*statement.Statement

	locksMu sync.Mutex
	locks   map[uuid.UUID]chan struct{}
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:      make(map[uuid.UUID]*user.User),
		emails:     make(map[string]uuid.UUID),
		statements: make(map[uuid.UUID][]*statement.Statement),
		locks:      make(map[uuid.UUID]chan struct{}),
	}
}

func (s *Store) userLock(id uuid.UUID) chan struct{} {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	ch, ok := s.locks[id]
	if !ok {
		ch = make(chan struct{}, 1)
		s.locks[id] = ch
	}
	return ch
}

// lock blocks until the user's write lock is free or ctx is done.
func (s *Store) lock(ctx context.Context, id uuid.UUID) error {
	select {
	case s.userLock(id) <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) unlock(id uuid.UUID) {
	<-s.userLock(id)
}

func (s *Store) getUser(id uuid.UUID) (*user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	cp := *u
	return &cp, true
}

func (s *Store) getUserByEmail(email string) (*user.User, bool) {
	s.mu.RLock()
	id, ok := s.emails[email]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return s.getUser(id)
}

func (s *Store) listStatements(userID uuid.UUID) []*statement.Statement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.statements[userID]
	out := make([]*statement.Statement, 0, len(stored))
	for _, st := range stored {
		cp := *st
		out = append(out, &cp)
	}
	return out
}

// commit publishes staged writes atomically. Email uniqueness is checked
// again here since two units of work may have staged the same address.
func (s *Store) commit(users []*user.User, stmts []*statement.Statement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		if _, taken := s.emails[u.Email]; taken {
			return user.ErrUserAlreadyExists
		}
	}
	for _, u := range users {
		s.users[u.ID] = u
		s.emails[u.Email] = u.ID
	}
	for _, st := range stmts {
		s.statements[st.UserID] = append(s.statements[st.UserID], st)
	}
	return nil
}
