package memory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-credit-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-credit-ledger/pkg/wal"
)

func seedClients(limit int64) map[int64]*domain.Client {
	return map[int64]*domain.Client{
		1: domain.NewClient(1, limit, 0),
	}
}

// TestApplyAndRecord 寫入後餘額與明細都反映新狀態
func TestApplyAndRecord(t *testing.T) {
	ledger, err := NewMemoryLedger(seedClients(1000), nil)
	require.NoError(t, err)
	ctx := context.Background()

	tran := &domain.Transaction{
		ClientID:    1,
		Amount:      500,
		Kind:        domain.TransactionKindCredit,
		Description: "first",
		RefID:       uuid.New(),
	}
	require.NoError(t, ledger.ApplyAndRecord(ctx, 1, 500, tran))

	// 序號與時間由儲存層回填
	assert.Equal(t, int64(1), tran.ID)
	assert.NotZero(t, tran.CreatedAt)

	client, err := ledger.GetClient(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(500), client.Balance)
}

// TestGetClientSnapshot 回傳的是複本，改動不影響內部狀態
func TestGetClientSnapshot(t *testing.T) {
	ledger, err := NewMemoryLedger(seedClients(1000), nil)
	require.NoError(t, err)
	ctx := context.Background()

	client, err := ledger.GetClient(ctx, 1)
	require.NoError(t, err)
	client.Balance = 999999

	again, err := ledger.GetClient(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), again.Balance)
}

// TestLastDefenseLimitCheck 儲存邊界擋下會打破不變量的寫入
func TestLastDefenseLimitCheck(t *testing.T) {
	ledger, err := NewMemoryLedger(seedClients(1000), nil)
	require.NoError(t, err)
	ctx := context.Background()

	tran := &domain.Transaction{
		ClientID: 1,
		Amount:   2000,
		Kind:     domain.TransactionKindDebit,
		RefID:    uuid.New(),
	}
	err = ledger.ApplyAndRecord(ctx, 1, -2000, tran)
	assert.ErrorIs(t, err, domain.ErrLimitExceeded)

	// 被拒絕的寫入不留任何痕跡
	client, err := ledger.GetClient(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), client.Balance)

	trans, err := ledger.RecentTransactions(ctx, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, trans)
}

// TestRefIDDedup 相同 RefID 的第二次寫入回 ErrTransactionAlreadyProcessed
func TestRefIDDedup(t *testing.T) {
	ledger, err := NewMemoryLedger(seedClients(1000), nil)
	require.NoError(t, err)
	ctx := context.Background()

	refID := uuid.New()
	first := &domain.Transaction{ClientID: 1, Amount: 100, Kind: domain.TransactionKindCredit, RefID: refID}
	require.NoError(t, ledger.ApplyAndRecord(ctx, 1, 100, first))

	second := &domain.Transaction{ClientID: 1, Amount: 100, Kind: domain.TransactionKindCredit, RefID: refID}
	err = ledger.ApplyAndRecord(ctx, 1, 200, second)
	assert.ErrorIs(t, err, domain.ErrTransactionAlreadyProcessed)

	client, err := ledger.GetClient(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(100), client.Balance)
}

// TestRecentTransactionsOrder 由新到舊，筆數受 n 限制
func TestRecentTransactionsOrder(t *testing.T) {
	ledger, err := NewMemoryLedger(seedClients(10000), nil)
	require.NoError(t, err)
	ctx := context.Background()

	balance := int64(0)
	for i := 1; i <= 5; i++ {
		balance += int64(i)
		tran := &domain.Transaction{
			ClientID: 1,
			Amount:   int64(i),
			Kind:     domain.TransactionKindCredit,
			RefID:    uuid.New(),
		}
		require.NoError(t, ledger.ApplyAndRecord(ctx, 1, balance, tran))
	}

	trans, err := ledger.RecentTransactions(ctx, 1, 3)
	require.NoError(t, err)
	require.Len(t, trans, 3)
	assert.Equal(t, int64(5), trans[0].Amount)
	assert.Equal(t, int64(4), trans[1].Amount)
	assert.Equal(t, int64(3), trans[2].Amount)

	// n 大於實際筆數時回傳全部
	all, err := ledger.RecentTransactions(ctx, 1, 100)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	// 不存在的客戶
	_, err = ledger.RecentTransactions(ctx, 99, 3)
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

// TestWALRecovery 重啟後從 WAL 重放出相同的餘額、明細與去重狀態
func TestWALRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.wal")
	ctx := context.Background()

	w, err := wal.NewWAL(path)
	require.NoError(t, err)

	ledger, err := NewMemoryLedger(seedClients(1000), w)
	require.NoError(t, err)

	refID := uuid.New()
	require.NoError(t, ledger.ApplyAndRecord(ctx, 1, 500,
		&domain.Transaction{ClientID: 1, Amount: 500, Kind: domain.TransactionKindCredit, Description: "salary", RefID: refID}))
	require.NoError(t, ledger.ApplyAndRecord(ctx, 1, 400,
		&domain.Transaction{ClientID: 1, Amount: 100, Kind: domain.TransactionKindDebit, Description: "coffee", RefID: uuid.New()}))
	require.NoError(t, w.Close())

	// 模擬重啟：同一個 WAL 檔、全新的空白狀態
	w2, err := wal.NewWAL(path)
	require.NoError(t, err)
	defer w2.Close()

	recovered, err := NewMemoryLedger(seedClients(1000), w2)
	require.NoError(t, err)

	client, err := recovered.GetClient(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(400), client.Balance)

	trans, err := recovered.RecentTransactions(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, trans, 2)
	assert.Equal(t, "coffee", trans[0].Description)
	assert.Equal(t, "salary", trans[1].Description)

	// 重放也恢復去重狀態
	err = recovered.ApplyAndRecord(ctx, 1, 900,
		&domain.Transaction{ClientID: 1, Amount: 500, Kind: domain.TransactionKindCredit, RefID: refID})
	assert.ErrorIs(t, err, domain.ErrTransactionAlreadyProcessed)

	// 序號接續在重放的最大值之後
	next := &domain.Transaction{ClientID: 1, Amount: 1, Kind: domain.TransactionKindCredit, RefID: uuid.New()}
	require.NoError(t, recovered.ApplyAndRecord(ctx, 1, 401, next))
	assert.Equal(t, int64(3), next.ID)
}
