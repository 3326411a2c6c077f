package domain

// BalanceView 餘額快照 (可快取的唯讀投影)
type BalanceView struct {
	Balance int64
	Limit   int64
	// GeneratedAt: 產生快照的時間 (unix milli)
	GeneratedAt int64
}

// StatementView 帳戶明細 (可快取的唯讀投影)
// Transactions 為最近 N 筆，依 (CreatedAt, ID) 由新到舊排序；
// 不落地儲存，每次都由 Client + Transaction 重新計算
type StatementView struct {
	Balance      int64
	Limit        int64
	GeneratedAt  int64
	Transactions []Transaction
}
