package statement_test

import (
	"testing"

	"github.com/amirasaad/ledger/pkg/domain/statement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuild(t *testing.T, userID uuid.UUID, opType statement.OperationType, amount int64) *statement.Statement {
	t.Helper()
	s, err := statement.New().
		WithUserID(userID).
		WithType(opType).
		WithAmount(decimal.NewFromInt(amount)).
		Build()
	require.NoError(t, err)
	return s
}

func TestBuild(t *testing.T) {
	t.Parallel()
	userID := uuid.New()

	tests := []struct {
		name    string
		builder *statement.Builder
		wantErr error
	}{
		{
			name: "deposit",
			builder: statement.New().WithUserID(userID).WithType(statement.Deposit).
				WithAmount(decimal.NewFromInt(1300)).WithDescription("salary"),
		},
		{
			name:    "zero amount withdraw",
			builder: statement.New().WithUserID(userID).WithType(statement.Withdraw).WithAmount(decimal.Zero),
		},
		{
			name:    "missing user",
			builder: statement.New().WithType(statement.Deposit).WithAmount(decimal.NewFromInt(1)),
			wantErr: statement.ErrUserIDRequired,
		},
		{
			name:    "unknown type",
			builder: statement.New().WithUserID(userID).WithType("transfer").WithAmount(decimal.NewFromInt(1)),
			wantErr: statement.ErrInvalidOperationType,
		},
		{
			name:    "negative amount",
			builder: statement.New().WithUserID(userID).WithType(statement.Deposit).WithAmount(decimal.NewFromInt(-1)),
			wantErr: statement.ErrNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := tt.builder.Build()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, s.ID)
			assert.Equal(t, userID, s.UserID)
			assert.False(t, s.CreatedAt.IsZero())
		})
	}
}

func TestTotal(t *testing.T) {
	t.Parallel()
	userID := uuid.New()

	t.Run("empty ledger is zero", func(t *testing.T) {
		assert.True(t, statement.Total(nil).IsZero())
	})

	t.Run("deposits minus withdrawals", func(t *testing.T) {
		stmts := []*statement.Statement{
			mustBuild(t, userID, statement.Deposit, 1000),
			mustBuild(t, userID, statement.Withdraw, 500),
			mustBuild(t, userID, statement.Deposit, 50),
		}
		assert.True(t, decimal.NewFromInt(550).Equal(statement.Total(stmts)))
	})

	t.Run("fractional amounts keep precision", func(t *testing.T) {
		a, err := statement.New().WithUserID(userID).WithType(statement.Deposit).
			WithAmount(decimal.RequireFromString("0.1")).Build()
		require.NoError(t, err)
		b, err := statement.New().WithUserID(userID).WithType(statement.Deposit).
			WithAmount(decimal.RequireFromString("0.2")).Build()
		require.NoError(t, err)
		assert.Equal(t, "0.3", statement.Total([]*statement.Statement{a, b}).String())
	})
}

func TestNewBalance(t *testing.T) {
	t.Parallel()
	b := statement.NewBalance(nil)
	assert.NotNil(t, b.Statements)
	assert.Empty(t, b.Statements)
	assert.True(t, b.Amount.IsZero())
}

func TestValidateWithdraw(t *testing.T) {
	t.Parallel()
	balance := decimal.NewFromInt(100)

	assert.NoError(t, statement.ValidateWithdraw(balance, decimal.NewFromInt(50)))
	assert.NoError(t, statement.ValidateWithdraw(balance, balance), "withdrawing the full balance is allowed")
	assert.NoError(t, statement.ValidateWithdraw(decimal.Zero, decimal.Zero))
	assert.ErrorIs(t, statement.ValidateWithdraw(balance, decimal.NewFromInt(200)), statement.ErrInsufficientFunds)
	assert.ErrorIs(t, statement.ValidateWithdraw(balance, decimal.RequireFromString("100.01")), statement.ErrInsufficientFunds)
	assert.ErrorIs(t, statement.ValidateWithdraw(balance, decimal.NewFromInt(-1)), statement.ErrNegativeAmount)
}

// FuzzTotal checks that a withdraw accepted by ValidateWithdraw never drives the total negative.
func FuzzTotal(f *testing.F) {
	userID := uuid.New()
	f.Add(int64(100), int64(50))
	f.Add(int64(100), int64(100))
	f.Add(int64(0), int64(1))
	f.Add(int64(-5), int64(3))
	f.Fuzz(func(t *testing.T, deposit, withdraw int64) {
		dep, err := statement.New().WithUserID(userID).WithType(statement.Deposit).
			WithAmount(decimal.NewFromInt(deposit)).Build()
		if err != nil {
			t.Skip()
		}
		stmts := []*statement.Statement{dep}
		amount := decimal.NewFromInt(withdraw)
		if err := statement.ValidateWithdraw(statement.Total(stmts), amount); err != nil {
			return
		}
		wd, err := statement.New().WithUserID(userID).WithType(statement.Withdraw).WithAmount(amount).Build()
		if err != nil {
			t.Fatalf("validated withdraw failed to build: %v", err)
		}
		if statement.Total(append(stmts, wd)).IsNegative() {
			t.Errorf("balance negative after deposit=%d withdraw=%d", deposit, withdraw)
		}
	})
}
