package statement

import (
	"context"
	"errors"

	infrarepo "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/statement"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type statementRepository struct {
	db *gorm.DB
}

// New returns a gorm-backed StatementRepository bound to db.
func New(db *gorm.DB) repository.StatementRepository {
	return &statementRepository{db: db}
}

func (r *statementRepository) FindByID(
	ctx context.Context,
	id, userID uuid.UUID,
) (*statement.Statement, error) {
	var m Statement
	err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).
			Where("id = ? AND user_id = ?", id, userID).
			First(&m).Error
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, statement.ErrStatementNotFound
	}
	if err != nil {
		return nil, err
	}
	return mapModelToDomain(&m), nil
}

func (r *statementRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*statement.Statement, error) {
	var models []Statement
	err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Order("created_at ASC").
			Find(&models).Error
	})
	if err != nil {
		return nil, err
	}
	result := make([]*statement.Statement, 0, len(models))
	for i := range models {
		result = append(result, mapModelToDomain(&models[i]))
	}
	return result, nil
}

func (r *statementRepository) Create(
	ctx context.Context,
	s *statement.Statement,
) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	m := &Statement{
		ID:          s.ID,
		UserID:      s.UserID,
		Type:        string(s.Type),
		Amount:      s.Amount,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
	return infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Create(m).Error
	})
}

func mapModelToDomain(m *Statement) *statement.Statement {
	return statement.NewFromData(
		m.ID,
		m.UserID,
		statement.OperationType(m.Type),
		m.Amount,
		m.Description,
		m.CreatedAt,
	)
}

var _ repository.StatementRepository = (*statementRepository)(nil)
