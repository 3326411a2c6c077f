package usecase

import (
	"context"

	"github.com/JoeShih716/go-credit-ledger/internal/app/core/domain"
)

// Ledger 是持久層的介面 (Driven Port)
// 實作必須保證 ApplyAndRecord 的原子性：
// 餘額更新與交易寫入要嘛一起成功，要嘛完全沒發生
type Ledger interface {
	// GetClient 取得客戶目前的額度與餘額
	GetClient(ctx context.Context, clientID int64) (*domain.Client, error)

	// ApplyAndRecord 原子地寫入新餘額並插入一筆交易
	// 實作要在儲存邊界重驗 newBalance >= -limit，做為最後防線；
	// tran.RefID 重複時回傳 ErrTransactionAlreadyProcessed，不寫入任何東西；
	// 成功時回填 tran.ID 與 tran.CreatedAt
	ApplyAndRecord(ctx context.Context, clientID int64, newBalance int64, tran *domain.Transaction) error

	// RecentTransactions 取最近 n 筆交易
	// 依 (CreatedAt, ID) 由新到舊排序
	RecentTransactions(ctx context.Context, clientID int64, n int) ([]domain.Transaction, error)
}
