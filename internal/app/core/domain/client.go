package domain

// Client 客戶帳戶
// Limit 為信用額度，在開戶時決定後即不再變動；
// 不變量: Balance >= -Limit (任何已提交狀態都必須成立)
type Client struct {
	ID      int64
	Limit   int64
	Balance int64
}

func NewClient(id, limit, balance int64) *Client {
	return &Client{
		ID:      id,
		Limit:   limit,
		Balance: balance,
	}
}

// Apply 計算套用一筆交易後的餘額
// 不修改 Client 本身，只回傳候選餘額；
// 候選餘額若低於 -Limit 則回傳 ErrLimitExceeded
func (c *Client) Apply(kind TransactionKind, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrAmountMustBePositive
	}

	var candidate int64
	switch kind {
	case TransactionKindCredit:
		candidate = c.Balance + amount
	case TransactionKindDebit:
		candidate = c.Balance - amount
	default:
		return 0, ErrInvalidKind
	}

	if candidate < -c.Limit {
		return 0, ErrLimitExceeded
	}
	return candidate, nil
}
