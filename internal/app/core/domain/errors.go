package domain

import "errors"

var (
	// ErrClientNotFound 找不到客戶
	ErrClientNotFound = errors.New("client not found")

	// ErrAmountMustBePositive 金額必須為正數
	ErrAmountMustBePositive = errors.New("amount must be positive")

	// ErrInvalidKind 交易類型不合法
	ErrInvalidKind = errors.New("invalid transaction kind")

	// ErrInvalidDescription 描述長度必須為 1~10
	ErrInvalidDescription = errors.New("description length must be between 1 and 10")

	// ErrLimitExceeded 超過信用額度 (balance 不可低於 -limit)
	ErrLimitExceeded = errors.New("credit limit exceeded")

	// ErrBusy 同一客戶的鎖競爭逾時
	ErrBusy = errors.New("client busy: lock acquisition timed out")

	// ErrStoreUnavailable 儲存層暫時不可用
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrTransactionAlreadyProcessed 交易已處理 (RefID 重複)
	ErrTransactionAlreadyProcessed = errors.New("transaction already processed")

	// ErrWALWriteFailed WAL 寫入失敗
	ErrWALWriteFailed = errors.New("wal write failed")
)
