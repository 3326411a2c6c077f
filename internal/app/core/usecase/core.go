package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-credit-ledger/internal/app/core/cache"
	"github.com/JoeShih716/go-credit-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-credit-ledger/pkg/keylock"
)

// 預設值 (yaml 沒寫時由 Config 補全)
const (
	DefaultLockTimeout   = 2 * time.Second
	DefaultStatementSize = 10
)

// Config 核心引擎配置
type Config struct {
	// LockTimeout: 等待同一客戶寫入鎖的上限，超過即回 ErrBusy
	LockTimeout time.Duration `yaml:"lock_timeout"`
	// StatementSize: 明細回傳的最大交易筆數
	StatementSize int `yaml:"statement_size"`
}

// CoreUseCase 是核心業務邏輯層
//
// 結構:
//
//	ledger: 持久層 (MySQL 或記憶體)
//	views: 投影快取層
//	locks: 以 clientID 為粒度的寫入鎖
//
// 同一客戶的交易在這裡被完全串行化 (validate-check-write 全程持鎖)，
// 不同客戶之間互不阻塞；讀取路徑不取鎖
type CoreUseCase struct {
	ledger Ledger
	views  *cache.ViewCache
	locks  *keylock.KeyLock
	cfg    Config
}

func NewCoreUseCase(ledger Ledger, views *cache.ViewCache, cfg Config) *CoreUseCase {
	if cfg.LockTimeout <= 0 {
		cfg.LockTimeout = DefaultLockTimeout
	}
	if cfg.StatementSize <= 0 {
		cfg.StatementSize = DefaultStatementSize
	}
	return &CoreUseCase{
		ledger: ledger,
		views:  views,
		locks:  keylock.New(),
		cfg:    cfg,
	}
}

// ApplyTransaction 處理一筆交易
//
// 參數:
//
//	ctx: 上下文
//	clientID: 客戶 ID
//	refID: 外部追蹤號，重複的 refID 會被視為同一筆交易的重送
//	amount: 金額 (必須為正)
//	kind: credit 或 debit
//	description: 用途描述，長度 1~10
//
// 回傳:
//
//	int64: 交易後餘額
//	int64: 信用額度
//	error: 驗證失敗、超過額度、鎖逾時或儲存層錯誤
func (c *CoreUseCase) ApplyTransaction(ctx context.Context, clientID int64, refID uuid.UUID, amount int64, kind domain.TransactionKind, description string) (int64, int64, error) {
	// 1. 靜態驗證 (不需碰儲存層，也不取鎖)
	if amount <= 0 {
		return 0, 0, domain.ErrAmountMustBePositive
	}
	if !kind.Valid() {
		return 0, 0, domain.ErrInvalidKind
	}
	if err := domain.ValidateDescription(description); err != nil {
		return 0, 0, err
	}

	// 2. 取得該客戶的寫入鎖 (有界等待)
	// 沒有這把鎖，兩筆並發扣款會讀到同一個舊餘額、
	// 各自通過額度檢查，最後把餘額超扣過 -limit (lost update)
	if err := c.locks.Acquire(ctx, clientID, c.cfg.LockTimeout); err != nil {
		return 0, 0, domain.ErrBusy
	}
	defer c.locks.Release(clientID)

	// 3. 讀取目前狀態並計算候選餘額
	client, err := c.ledger.GetClient(ctx, clientID)
	if err != nil {
		return 0, 0, err
	}
	newBalance, err := client.Apply(kind, amount)
	if err != nil {
		// 被拒絕的交易不留任何痕跡，也不需要讓快取失效
		return 0, 0, err
	}

	// 4. 原子寫入 (餘額更新 + 交易紀錄)
	tran := &domain.Transaction{
		ClientID:    clientID,
		Amount:      amount,
		Kind:        kind,
		Description: description,
		RefID:       refID,
	}
	err = c.ledger.ApplyAndRecord(ctx, clientID, newBalance, tran)
	if errors.Is(err, domain.ErrTransactionAlreadyProcessed) {
		// 重送：原交易早已提交，回報目前餘額即可
		return client.Balance, client.Limit, nil
	}
	if err != nil {
		return 0, 0, err
	}

	// 5. 快取失效必須發生在鎖釋放之前，
	// 否則後續讀取可能先命中舊快取 (defer Release 在這之後才執行)
	c.views.Invalidate(clientID)

	return newBalance, client.Limit, nil
}

// GetBalance 取得餘額快照 (read-through)
func (c *CoreUseCase) GetBalance(ctx context.Context, clientID int64) (domain.BalanceView, error) {
	if view, ok := c.views.GetBalance(clientID); ok {
		return view, nil
	}

	client, err := c.ledger.GetClient(ctx, clientID)
	if err != nil {
		return domain.BalanceView{}, err
	}
	view := domain.BalanceView{
		Balance:     client.Balance,
		Limit:       client.Limit,
		GeneratedAt: time.Now().UnixMilli(),
	}
	c.views.SetBalance(clientID, view)
	return view, nil
}

// GetStatement 取得帳戶明細 (read-through)
// 明細 = 目前餘額/額度 + 最近 N 筆交易 (由新到舊)
func (c *CoreUseCase) GetStatement(ctx context.Context, clientID int64) (domain.StatementView, error) {
	if view, ok := c.views.GetStatement(clientID); ok {
		return view, nil
	}

	client, err := c.ledger.GetClient(ctx, clientID)
	if err != nil {
		return domain.StatementView{}, err
	}
	trans, err := c.ledger.RecentTransactions(ctx, clientID, c.cfg.StatementSize)
	if err != nil {
		return domain.StatementView{}, err
	}

	view := domain.StatementView{
		Balance:      client.Balance,
		Limit:        client.Limit,
		GeneratedAt:  time.Now().UnixMilli(),
		Transactions: trans,
	}
	c.views.SetStatement(clientID, view)
	return view, nil
}

// CacheStats 回傳快取層的累計命中統計
func (c *CoreUseCase) CacheStats() cache.Stats {
	return c.views.Stats()
}
