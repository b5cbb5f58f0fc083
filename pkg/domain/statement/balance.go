package statement

import "github.com/shopspring/decimal"

// Balance is the derived position of a user: the fold of all their
// statements. It is never stored.
type Balance struct {
	Amount     decimal.Decimal `json:"balance"`
	Statements []*Statement    `json:"statement"`
}

// Total sums deposits and subtracts withdrawals. An empty ledger totals zero.
func Total(stmts []*Statement) decimal.Decimal {
	total := decimal.Zero
	for _, s := range stmts {
		total = total.Add(s.Signed())
	}
	return total
}

// NewBalance folds stmts into a Balance. A nil slice becomes an empty one.
func NewBalance(stmts []*Statement) *Balance {
	if stmts == nil {
		stmts = []*Statement{}
	}
	return &Balance{
		Amount:     Total(stmts),
		Statements: stmts,
	}
}

// ValidateWithdraw checks that amount can be taken from balance. Withdrawing
// exactly the balance is allowed and leaves it at zero.
func ValidateWithdraw(balance, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	if amount.GreaterThan(balance) {
		return ErrInsufficientFunds
	}
	return nil
}
