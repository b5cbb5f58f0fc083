package statement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Statement represents a ledger entry record in the database.
type Statement struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        string          `gorm:"not null;size:16"`
	Amount      decimal.Decimal `gorm:"type:numeric;not null"`
	Description string          `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName specifies the table name for the Statement model.
func (Statement) TableName() string {
	return "statements"
}
