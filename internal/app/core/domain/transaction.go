package domain

import "github.com/google/uuid"

// 描述欄位的長度限制 (字元數)
const (
	DescriptionMinLen = 1
	DescriptionMaxLen = 10
)

// TransactionKind 交易類型
// 為了極致節省記憶體，使用 uint8
type TransactionKind uint8

const (
	// 入帳 (credit)
	TransactionKindCredit TransactionKind = 1
	// 扣款 (debit)
	TransactionKindDebit TransactionKind = 2
)

// Valid 回報類型是否為已定義的值
func (k TransactionKind) Valid() bool {
	return k == TransactionKindCredit || k == TransactionKindDebit
}

// String 供 log 與 wire 層顯示用
func (k TransactionKind) String() string {
	switch k {
	case TransactionKindCredit:
		return "credit"
	case TransactionKindDebit:
		return "debit"
	default:
		return "unknown"
	}
}

// Transaction 交易 注意欄位排序以避免 Padding
// 一旦寫入即不可變更，也不可刪除
type Transaction struct {
	// ID: 由儲存層分配的單調遞增序號
	ID int64
	// ClientID: 所屬客戶
	ClientID int64
	// Amount: 金額，永遠為正；方向由 Kind 決定
	Amount int64
	// CreatedAt: 入帳時間 (unix milli)，由儲存層分配
	// 同一客戶保證非遞減
	CreatedAt int64
	// Description: 用途描述，長度 1~10
	Description string
	// RefID: 外部追蹤號 (UUID)，用於重送判定
	RefID uuid.UUID
	// Kind: 放到最後面，利用 Padding 空間
	Kind TransactionKind
}

// ValidateDescription 檢查描述長度是否落在 1~10 字元
func ValidateDescription(desc string) error {
	if len(desc) < DescriptionMinLen || len(desc) > DescriptionMaxLen {
		return ErrInvalidDescription
	}
	return nil
}
