package statement

import "github.com/shopspring/decimal"

// OperationRequest is the body of a deposit or withdrawal. The amount may be
// sent as a JSON number or a decimal string.
type OperationRequest struct {
	Amount      *decimal.Decimal `json:"amount" validate:"required"`
	Description string           `json:"description" validate:"max=255"`
}
