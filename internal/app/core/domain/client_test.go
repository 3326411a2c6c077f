package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestApplyCredit 入帳讓餘額單純往上加，不受額度限制
func TestApplyCredit(t *testing.T) {
	c := NewClient(1, 1000, 0)

	got, err := c.Apply(TransactionKindCredit, 500)
	assert.NoError(t, err)
	assert.Equal(t, int64(500), got)

	// Apply 不改變 Client 本身
	assert.Equal(t, int64(0), c.Balance)
}

// TestApplyDebitWithinLimit 扣款允許餘額為負，只要不低於 -Limit
func TestApplyDebitWithinLimit(t *testing.T) {
	c := NewClient(1, 1000, 0)

	got, err := c.Apply(TransactionKindDebit, 100)
	assert.NoError(t, err)
	assert.Equal(t, int64(-100), got)

	// 剛好打到底線 -Limit 仍然合法
	got, err = c.Apply(TransactionKindDebit, 1000)
	assert.NoError(t, err)
	assert.Equal(t, int64(-1000), got)
}

// TestApplyDebitExceedsLimit 超過額度的扣款必須整筆拒絕
func TestApplyDebitExceedsLimit(t *testing.T) {
	c := NewClient(1, 1000, 0)

	_, err := c.Apply(TransactionKindDebit, 1001)
	assert.ErrorIs(t, err, ErrLimitExceeded)

	// 已經欠款時，防線跟著目前餘額走
	c.Balance = -900
	_, err = c.Apply(TransactionKindDebit, 200)
	assert.ErrorIs(t, err, ErrLimitExceeded)

	_, err = c.Apply(TransactionKindDebit, 100)
	assert.NoError(t, err)
}

// TestApplyInvalidInput 金額必須為正，類型必須是已定義的值
func TestApplyInvalidInput(t *testing.T) {
	c := NewClient(1, 1000, 0)

	_, err := c.Apply(TransactionKindDebit, 0)
	assert.ErrorIs(t, err, ErrAmountMustBePositive)

	_, err = c.Apply(TransactionKindCredit, -5)
	assert.ErrorIs(t, err, ErrAmountMustBePositive)

	_, err = c.Apply(TransactionKind(9), 100)
	assert.ErrorIs(t, err, ErrInvalidKind)
}

// TestValidateDescription 描述長度必須落在 1~10
func TestValidateDescription(t *testing.T) {
	assert.ErrorIs(t, ValidateDescription(""), ErrInvalidDescription)
	assert.ErrorIs(t, ValidateDescription("12345678901"), ErrInvalidDescription)
	assert.NoError(t, ValidateDescription("a"))
	assert.NoError(t, ValidateDescription("1234567890"))
}

// TestTransactionKindString 顯示名稱供 log 與 wire 層使用
func TestTransactionKindString(t *testing.T) {
	assert.Equal(t, "credit", TransactionKindCredit.String())
	assert.Equal(t, "debit", TransactionKindDebit.String())
	assert.Equal(t, "unknown", TransactionKind(0).String())
	assert.False(t, TransactionKind(0).Valid())
}
