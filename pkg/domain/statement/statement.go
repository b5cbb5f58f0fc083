package statement

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrInsufficientFunds is returned when a withdrawal exceeds the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrStatementNotFound is returned when no statement with the given id belongs to the user.
	ErrStatementNotFound = errors.New("statement not found")

	// ErrNegativeAmount is returned when a statement amount is below zero.
	ErrNegativeAmount = errors.New("statement amount must not be negative")

	// ErrInvalidOperationType is returned for anything other than deposit or withdraw.
	ErrInvalidOperationType = errors.New("invalid operation type")

	// ErrUserIDRequired is returned when a statement is built without an owner.
	ErrUserIDRequired = errors.New("user id is required")
)

// OperationType is the kind of a statement.
type OperationType string

const (
	Deposit  OperationType = "deposit"
	Withdraw OperationType = "withdraw"
)

// Valid reports whether t is a known operation type.
func (t OperationType) Valid() bool {
	return t == Deposit || t == Withdraw
}

// Statement is a single ledger entry. Statements are append-only: once
// persisted they are never mutated or removed.
//
// Invariants:
//   - UserID is never nil.
//   - Type is deposit or withdraw.
//   - Amount is never negative.
type Statement struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Type        OperationType   `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Signed returns the amount as it contributes to the balance.
func (s *Statement) Signed() decimal.Decimal {
	if s.Type == Withdraw {
		return s.Amount.Neg()
	}
	return s.Amount
}

// Builder provides a fluent API for constructing Statement instances.
type Builder struct {
	id          uuid.UUID
	userID      uuid.UUID
	opType      OperationType
	amount      decimal.Decimal
	description string
	createdAt   time.Time
}

// New creates a new Builder with a fresh id and the current time.
func New() *Builder {
	return &Builder{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// WithID sets the statement id.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithUserID sets the owner. This is a mandatory field.
func (b *Builder) WithUserID(userID uuid.UUID) *Builder {
	b.userID = userID
	return b
}

// WithType sets the operation type. This is a mandatory field.
func (b *Builder) WithType(t OperationType) *Builder {
	b.opType = t
	return b
}

// WithAmount sets the amount.
func (b *Builder) WithAmount(amount decimal.Decimal) *Builder {
	b.amount = amount
	return b
}

// WithDescription sets the free-text description.
func (b *Builder) WithDescription(description string) *Builder {
	b.description = description
	return b
}

// WithCreatedAt sets the creation timestamp.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// Build validates the invariants and returns the statement.
func (b *Builder) Build() (*Statement, error) {
	if b.userID == uuid.Nil {
		return nil, ErrUserIDRequired
	}
	if !b.opType.Valid() {
		return nil, ErrInvalidOperationType
	}
	if b.amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	return &Statement{
		ID:          b.id,
		UserID:      b.userID,
		Type:        b.opType,
		Amount:      b.amount,
		Description: b.description,
		CreatedAt:   b.createdAt,
	}, nil
}

// NewFromData creates a Statement from raw data (used for DB hydration).
func NewFromData(
	id, userID uuid.UUID,
	opType OperationType,
	amount decimal.Decimal,
	description string,
	created time.Time,
) *Statement {
	return &Statement{
		ID:          id,
		UserID:      userID,
		Type:        opType,
		Amount:      amount,
		Description: description,
		CreatedAt:   created,
	}
}
