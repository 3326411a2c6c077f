package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JoeShih716/go-credit-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-credit-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-credit-ledger/pkg/mysql"
)

// sqlClient 對應資料庫的 clients 表
// limit 是 MySQL 保留字，欄位命名為 credit_limit
type sqlClient struct {
	ID          int64 `gorm:"primaryKey"`
	CreditLimit int64 `gorm:"column:credit_limit"`
	Balance     int64
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli"` // 自動更新時間
}

func (*sqlClient) TableName() string {
	return "clients"
}

// sqlTransaction 對應資料庫的 transactions 表
// (client_id, created_at) 有複合索引供明細查詢使用
type sqlTransaction struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	RefID       []byte `gorm:"column:ref_id;type:binary(16);uniqueIndex"` // 對應 domain.Transaction.RefID
	ClientID    int64  `gorm:"index:idx_client_created,priority:1"`
	Amount      int64
	Kind        uint8
	Description string `gorm:"type:varchar(10)"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;index:idx_client_created,priority:2"` // 自動寫入時間
}

func (*sqlTransaction) TableName() string {
	return "transactions"
}

type MySQLLedger struct {
	client *mysql.Client
}

func NewMySQLLedger(client *mysql.Client) *MySQLLedger {
	return &MySQLLedger{
		client: client,
	}
}

// wrapStoreErr 讓 domain 錯誤原樣通過，
// 其他 driver 層錯誤一律包成 ErrStoreUnavailable (暫時性，重試交給呼叫方)
func wrapStoreErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrLimitExceeded),
		errors.Is(err, domain.ErrTransactionAlreadyProcessed):
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}

// GetClient 取得客戶目前的額度與餘額
func (ledger *MySQLLedger) GetClient(ctx context.Context, clientID int64) (*domain.Client, error) {
	var row sqlClient
	err := ledger.client.DB().WithContext(ctx).Where("id = ?", clientID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, wrapStoreErr(err)
	}
	return domain.NewClient(row.ID, row.CreditLimit, row.Balance), nil
}

// ApplyAndRecord 原子地寫入新餘額並插入交易
// 以 SELECT ... FOR UPDATE 鎖住客戶那一列，
// 額度檢查與寫入在同一個資料庫交易內完成，失敗即整筆回滾
func (ledger *MySQLLedger) ApplyAndRecord(ctx context.Context, clientID int64, newBalance int64, tran *domain.Transaction) error {
	err := ledger.client.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先檢查是否有這筆交易記錄 (重送判定)
		var existing sqlTransaction
		err := tx.Where("ref_id = ?", tran.RefID[:]).First(&existing).Error
		if err == nil {
			return domain.ErrTransactionAlreadyProcessed
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// 悲觀鎖鎖住客戶列
		var row sqlClient
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", clientID).
			First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrClientNotFound
			}
			return err
		}

		// 儲存邊界的最後防線
		if newBalance < -row.CreditLimit {
			return domain.ErrLimitExceeded
		}

		if err := tx.Model(&sqlClient{}).
			Where("id = ?", clientID).
			Update("balance", newBalance).Error; err != nil {
			return err
		}

		record := sqlTransaction{
			RefID:       tran.RefID[:],
			ClientID:    clientID,
			Amount:      tran.Amount,
			Kind:        uint8(tran.Kind),
			Description: tran.Description,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		// 回填儲存層分配的序號與時間
		tran.ID = record.ID
		tran.CreatedAt = record.CreatedAt
		return nil
	})
	return wrapStoreErr(err)
}

// RecentTransactions 取最近 n 筆交易，由新到舊
// created_at 相同時以 id 做 tie-break
func (ledger *MySQLLedger) RecentTransactions(ctx context.Context, clientID int64, n int) ([]domain.Transaction, error) {
	var rows []sqlTransaction
	err := ledger.client.DB().WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC, id DESC").
		Limit(n).
		Find(&rows).Error
	if err != nil {
		return nil, wrapStoreErr(err)
	}

	out := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		tran := domain.Transaction{
			ID:          row.ID,
			ClientID:    row.ClientID,
			Amount:      row.Amount,
			CreatedAt:   row.CreatedAt,
			Description: row.Description,
			Kind:        domain.TransactionKind(row.Kind),
		}
		copy(tran.RefID[:], row.RefID)
		out = append(out, tran)
	}
	return out, nil
}

// Seed 建表並補齊缺少的客戶列 (只在啟動時呼叫)
// 已存在的列不動，額度與餘額以資料庫內的為準
func (ledger *MySQLLedger) Seed(ctx context.Context, clients []domain.Client) error {
	if err := ledger.client.DB().WithContext(ctx).AutoMigrate(&sqlClient{}, &sqlTransaction{}); err != nil {
		return wrapStoreErr(err)
	}

	rows := make([]sqlClient, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, sqlClient{ID: c.ID, CreditLimit: c.Limit, Balance: c.Balance})
	}
	err := ledger.client.DB().WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
	return wrapStoreErr(err)
}

var _ usecase.Ledger = (*MySQLLedger)(nil)
