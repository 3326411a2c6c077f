package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-credit-ledger/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-credit-ledger/internal/app/core/cache"
	"github.com/JoeShih716/go-credit-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-credit-ledger/internal/app/core/usecase"
)

// newCore 建立一個以記憶體帳本為後端的核心引擎 (不落地 WAL)
func newCore(t *testing.T, limit int64, cfg usecase.Config) *usecase.CoreUseCase {
	t.Helper()
	clients := map[int64]*domain.Client{
		1: domain.NewClient(1, limit, 0),
	}
	ledger, err := memory.NewMemoryLedger(clients, nil)
	require.NoError(t, err)
	views := cache.NewViewCache(cache.Config{})
	return usecase.NewCoreUseCase(ledger, views, cfg)
}

// TestApplyTransactionBasic 入帳、扣款與超額拒絕的基本流程
// 額度 1000：入帳 500 → 扣款 100 → 扣款 2000 被拒，餘額停在 400
func TestApplyTransactionBasic(t *testing.T) {
	core := newCore(t, 1000, usecase.Config{})
	ctx := context.Background()

	balance, limit, err := core.ApplyTransaction(ctx, 1, uuid.New(), 500, domain.TransactionKindCredit, "salary")
	require.NoError(t, err)
	assert.Equal(t, int64(500), balance)
	assert.Equal(t, int64(1000), limit)

	balance, _, err = core.ApplyTransaction(ctx, 1, uuid.New(), 100, domain.TransactionKindDebit, "coffee")
	require.NoError(t, err)
	assert.Equal(t, int64(400), balance)

	_, _, err = core.ApplyTransaction(ctx, 1, uuid.New(), 2000, domain.TransactionKindDebit, "tv")
	assert.ErrorIs(t, err, domain.ErrLimitExceeded)

	// 被拒絕的交易不留痕跡：明細只有兩筆，由新到舊
	stmt, err := core.GetStatement(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(400), stmt.Balance)
	assert.Equal(t, int64(1000), stmt.Limit)
	require.Len(t, stmt.Transactions, 2)
	assert.Equal(t, "coffee", stmt.Transactions[0].Description)
	assert.Equal(t, "salary", stmt.Transactions[1].Description)
}

// TestApplyTransactionValidation 靜態驗證在碰儲存層之前就擋下非法輸入
func TestApplyTransactionValidation(t *testing.T) {
	core := newCore(t, 1000, usecase.Config{})
	ctx := context.Background()

	_, _, err := core.ApplyTransaction(ctx, 1, uuid.New(), 0, domain.TransactionKindCredit, "x")
	assert.ErrorIs(t, err, domain.ErrAmountMustBePositive)

	_, _, err = core.ApplyTransaction(ctx, 1, uuid.New(), 100, domain.TransactionKind(0), "x")
	assert.ErrorIs(t, err, domain.ErrInvalidKind)

	_, _, err = core.ApplyTransaction(ctx, 1, uuid.New(), 100, domain.TransactionKindCredit, "")
	assert.ErrorIs(t, err, domain.ErrInvalidDescription)

	_, _, err = core.ApplyTransaction(ctx, 1, uuid.New(), 100, domain.TransactionKindCredit, "way too long")
	assert.ErrorIs(t, err, domain.ErrInvalidDescription)
}

// TestUnknownClient 不存在的客戶在所有操作都回 ErrClientNotFound
func TestUnknownClient(t *testing.T) {
	core := newCore(t, 1000, usecase.Config{})
	ctx := context.Background()

	_, _, err := core.ApplyTransaction(ctx, 99, uuid.New(), 100, domain.TransactionKindCredit, "x")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)

	_, err = core.GetBalance(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrClientNotFound)

	_, err = core.GetStatement(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

// TestConcurrentCredits 並發入帳不掉任何一筆
func TestConcurrentCredits(t *testing.T) {
	core := newCore(t, 1000, usecase.Config{LockTimeout: 10 * time.Second})
	ctx := context.Background()

	const workers = 200
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _, err := core.ApplyTransaction(ctx, 1, uuid.New(), 10, domain.TransactionKindCredit, "topup")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	view, err := core.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(workers*10), view.Balance)
}

// TestConcurrentDebitBoundary 餘額 0、額度 1000 時，
// 兩筆並發的 debit(600) 恰好只能成功一筆
func TestConcurrentDebitBoundary(t *testing.T) {
	core := newCore(t, 1000, usecase.Config{LockTimeout: 10 * time.Second})
	ctx := context.Background()

	results := make(chan error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func() {
			defer wg.Done()
			_, _, err := core.ApplyTransaction(ctx, 1, uuid.New(), 600, domain.TransactionKindDebit, "big buy")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	success, rejected := 0, 0
	for err := range results {
		if err == nil {
			success++
		} else if assert.ErrorIs(t, err, domain.ErrLimitExceeded) {
			rejected++
		}
	}
	assert.Equal(t, 1, success)
	assert.Equal(t, 1, rejected)

	view, err := core.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(-600), view.Balance)
}

// TestReadThroughCache 同一窗口內的 N 次讀取只有第一次回源
func TestReadThroughCache(t *testing.T) {
	core := newCore(t, 1000, usecase.Config{})
	ctx := context.Background()

	const reads = 5
	for i := 0; i < reads; i++ {
		_, err := core.GetBalance(ctx, 1)
		require.NoError(t, err)
	}

	stats := core.CacheStats()
	assert.Equal(t, uint64(1), stats.Balance.Misses)
	assert.Equal(t, uint64(reads-1), stats.Balance.Hits)
}

// TestCacheInvalidationOnWrite 成功寫入後的讀取必須看到新餘額
func TestCacheInvalidationOnWrite(t *testing.T) {
	core := newCore(t, 1000, usecase.Config{})
	ctx := context.Background()

	// 先讓餘額進快取
	view, err := core.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), view.Balance)

	_, _, err = core.ApplyTransaction(ctx, 1, uuid.New(), 300, domain.TransactionKindCredit, "topup")
	require.NoError(t, err)

	// 寫入讓快取失效，這次讀取回源拿到新值
	view, err = core.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(300), view.Balance)
}

// TestRejectedWriteKeepsCache 被拒絕的交易沒改變狀態，不應清掉快取
func TestRejectedWriteKeepsCache(t *testing.T) {
	core := newCore(t, 1000, usecase.Config{})
	ctx := context.Background()

	_, err := core.GetBalance(ctx, 1)
	require.NoError(t, err)

	_, _, err = core.ApplyTransaction(ctx, 1, uuid.New(), 5000, domain.TransactionKindDebit, "too big")
	assert.ErrorIs(t, err, domain.ErrLimitExceeded)

	_, err = core.GetBalance(ctx, 1)
	require.NoError(t, err)

	stats := core.CacheStats()
	assert.Equal(t, uint64(1), stats.Balance.Hits)
	assert.Equal(t, uint64(1), stats.Balance.Misses)
}

// blockingLedger 卡在 ApplyAndRecord 的假儲存層，用來製造鎖競爭
type blockingLedger struct {
	entered chan struct{}
	release chan struct{}
}

func (b *blockingLedger) GetClient(ctx context.Context, clientID int64) (*domain.Client, error) {
	return domain.NewClient(clientID, 1000, 0), nil
}

func (b *blockingLedger) ApplyAndRecord(ctx context.Context, clientID int64, newBalance int64, tran *domain.Transaction) error {
	close(b.entered)
	<-b.release
	return nil
}

func (b *blockingLedger) RecentTransactions(ctx context.Context, clientID int64, n int) ([]domain.Transaction, error) {
	return nil, nil
}

// TestBusyOnLockTimeout 鎖等待超過上限時回 ErrBusy，而不是無限等待
func TestBusyOnLockTimeout(t *testing.T) {
	ledger := &blockingLedger{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	core := usecase.NewCoreUseCase(ledger, cache.NewViewCache(cache.Config{}), usecase.Config{
		LockTimeout: 50 * time.Millisecond,
	})
	ctx := context.Background()

	go func() {
		_, _, _ = core.ApplyTransaction(ctx, 1, uuid.New(), 100, domain.TransactionKindCredit, "slow")
	}()

	// 等第一筆確實持有鎖並卡在儲存層
	<-ledger.entered

	_, _, err := core.ApplyTransaction(ctx, 1, uuid.New(), 100, domain.TransactionKindCredit, "fast")
	assert.ErrorIs(t, err, domain.ErrBusy)

	close(ledger.release)
}

// TestRefIDReplay 帶同一 RefID 的重送被視為同一筆交易
func TestRefIDReplay(t *testing.T) {
	core := newCore(t, 1000, usecase.Config{})
	ctx := context.Background()

	refID := uuid.New()
	balance, _, err := core.ApplyTransaction(ctx, 1, refID, 500, domain.TransactionKindCredit, "once")
	require.NoError(t, err)
	assert.Equal(t, int64(500), balance)

	// 重送：回報目前餘額，不再記帳
	balance, _, err = core.ApplyTransaction(ctx, 1, refID, 500, domain.TransactionKindCredit, "once")
	require.NoError(t, err)
	assert.Equal(t, int64(500), balance)

	stmt, err := core.GetStatement(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, stmt.Transactions, 1)
}

// TestStatementBounded 明細最多回傳設定的筆數，且由新到舊
func TestStatementBounded(t *testing.T) {
	core := newCore(t, 1000, usecase.Config{StatementSize: 10})
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		_, _, err := core.ApplyTransaction(ctx, 1, uuid.New(), int64(i+1), domain.TransactionKindCredit, "seq")
		require.NoError(t, err)
	}

	stmt, err := core.GetStatement(ctx, 1)
	require.NoError(t, err)
	require.Len(t, stmt.Transactions, 10)

	// 最新的一筆金額為 15，往後遞減
	for i, tran := range stmt.Transactions {
		assert.Equal(t, int64(15-i), tran.Amount)
	}
	// CreatedAt 非遞增排列
	for i := 1; i < len(stmt.Transactions); i++ {
		assert.GreaterOrEqual(t, stmt.Transactions[i-1].CreatedAt, stmt.Transactions[i].CreatedAt)
	}
}
