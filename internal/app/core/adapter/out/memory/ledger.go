package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-credit-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-credit-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-credit-ledger/pkg/wal"
)

// walRecord WAL 裡的一筆已提交交易
// 重放時直接套用 NewBalance，不重算，確保與當初提交的結果一致
type walRecord struct {
	Tran       domain.Transaction
	NewBalance int64
}

// MemoryLedger 是記憶體實作的持久層
//
// 結構:
//
//	clients: 客戶資料 Map
//	transactions: 每個客戶的交易，依提交順序 append
//	processed: 已處理過的 RefID
//	wal: Write-Ahead Log 實例 (nil 代表不落地，測試用)
//
// 引擎層已保證同一客戶的寫入互斥，這裡的 mu 只負責
// Map 本身的並發安全，以及做為儲存邊界的最後防線
type MemoryLedger struct {
	mu           sync.RWMutex
	clients      map[int64]*domain.Client
	transactions map[int64][]domain.Transaction
	processed    map[uuid.UUID]struct{}
	// nextID: 全局單調遞增的交易序號
	nextID int64
	// lastCreatedAt: 每個客戶最後一筆交易的時間，
	// 用來保證同一客戶的 CreatedAt 非遞減
	lastCreatedAt map[int64]int64
	wal           *wal.WAL
}

// NewMemoryLedger 建立記憶體持久層並重放 WAL
//
// 參數:
//
//	clients: 開戶時配置的客戶 (額度固定，執行期不增減)
//	w: WAL 實例，可為 nil
//
// 回傳:
//
//	*MemoryLedger: MemoryLedger 實例
//	error: WAL 重放錯誤
func NewMemoryLedger(clients map[int64]*domain.Client, w *wal.WAL) (*MemoryLedger, error) {
	ledger := &MemoryLedger{
		clients:       clients,
		transactions:  make(map[int64][]domain.Transaction),
		processed:     make(map[uuid.UUID]struct{}),
		lastCreatedAt: make(map[int64]int64),
		wal:           w,
	}
	if err := ledger.recoverFromWAL(); err != nil {
		return nil, err
	}
	return ledger, nil
}

// recoverFromWAL 從 WAL 檔案重放出最後的已提交狀態
// 只在 NewMemoryLedger 裡跑 (單執行緒)，無需 Lock
func (m *MemoryLedger) recoverFromWAL() error {
	if m.wal == nil {
		return nil
	}
	return m.wal.ReadAll(func(jsonRaw []byte) error {
		var rec walRecord
		if err := json.Unmarshal(jsonRaw, &rec); err != nil {
			return err
		}
		client, ok := m.clients[rec.Tran.ClientID]
		if !ok {
			// 客戶配置縮減後留下的舊紀錄，跳過
			return nil
		}
		client.Balance = rec.NewBalance
		m.transactions[rec.Tran.ClientID] = append(m.transactions[rec.Tran.ClientID], rec.Tran)
		m.processed[rec.Tran.RefID] = struct{}{}
		if rec.Tran.ID > m.nextID {
			m.nextID = rec.Tran.ID
		}
		if rec.Tran.CreatedAt > m.lastCreatedAt[rec.Tran.ClientID] {
			m.lastCreatedAt[rec.Tran.ClientID] = rec.Tran.CreatedAt
		}
		return nil
	})
}

// GetClient 取得客戶目前的額度與餘額
// 回傳複本，呼叫方拿到的快照不會被後續寫入改動
func (m *MemoryLedger) GetClient(ctx context.Context, clientID int64) (*domain.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	client, ok := m.clients[clientID]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	snapshot := *client
	return &snapshot, nil
}

// ApplyAndRecord 原子地寫入新餘額並插入交易
// WAL 先行：紀錄落地失敗時，記憶體狀態完全不動
func (m *MemoryLedger) ApplyAndRecord(ctx context.Context, clientID int64, newBalance int64, tran *domain.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	client, ok := m.clients[clientID]
	if !ok {
		return domain.ErrClientNotFound
	}
	if tran.RefID != uuid.Nil {
		if _, dup := m.processed[tran.RefID]; dup {
			return domain.ErrTransactionAlreadyProcessed
		}
	}
	// 儲存邊界的最後防線：引擎算錯也不能讓不變量破掉
	if newBalance < -client.Limit {
		return domain.ErrLimitExceeded
	}

	// 分配序號與時間 (同一客戶保證非遞減)
	tran.ID = m.nextID + 1
	tran.CreatedAt = time.Now().UnixMilli()
	if last := m.lastCreatedAt[clientID]; tran.CreatedAt < last {
		tran.CreatedAt = last
	}

	if m.wal != nil {
		rec := walRecord{Tran: *tran, NewBalance: newBalance}
		if err := m.wal.Append(rec); err != nil {
			return domain.ErrWALWriteFailed
		}
	}

	m.nextID = tran.ID
	m.lastCreatedAt[clientID] = tran.CreatedAt
	client.Balance = newBalance
	m.transactions[clientID] = append(m.transactions[clientID], *tran)
	if tran.RefID != uuid.Nil {
		m.processed[tran.RefID] = struct{}{}
	}
	return nil
}

// RecentTransactions 取最近 n 筆交易，由新到舊
// 交易依提交順序 append，反向走訪即為 (CreatedAt, ID) desc
func (m *MemoryLedger) RecentTransactions(ctx context.Context, clientID int64, n int) ([]domain.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.clients[clientID]; !ok {
		return nil, domain.ErrClientNotFound
	}

	history := m.transactions[clientID]
	if n > len(history) {
		n = len(history)
	}
	out := make([]domain.Transaction, 0, n)
	for i := len(history) - 1; i >= len(history)-n; i-- {
		out = append(out, history[i])
	}
	return out, nil
}

var _ usecase.Ledger = (*MemoryLedger)(nil)
