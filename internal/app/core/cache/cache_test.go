package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JoeShih716/go-credit-ledger/internal/app/core/domain"
)

// TestHitMissCounting miss 後回填，之後的讀取都是 hit
func TestHitMissCounting(t *testing.T) {
	c := NewViewCache(Config{})

	_, ok := c.GetBalance(1)
	assert.False(t, ok)

	c.SetBalance(1, domain.BalanceView{Balance: 500, Limit: 1000})

	for i := 0; i < 3; i++ {
		view, ok := c.GetBalance(1)
		assert.True(t, ok)
		assert.Equal(t, int64(500), view.Balance)
	}

	stats := c.Stats()
	assert.Equal(t, uint64(3), stats.Balance.Hits)
	assert.Equal(t, uint64(1), stats.Balance.Misses)
	assert.InDelta(t, 0.75, stats.Balance.Ratio, 1e-9)

	// 明細快取的計數獨立
	assert.Zero(t, stats.Statement.Hits)
	assert.Zero(t, stats.Statement.Misses)
	assert.Zero(t, stats.Statement.Ratio)
}

// TestInvalidate 失效後兩種快取都回到 miss
func TestInvalidate(t *testing.T) {
	c := NewViewCache(Config{})

	c.SetBalance(1, domain.BalanceView{Balance: 100})
	c.SetStatement(1, domain.StatementView{Balance: 100})

	c.Invalidate(1)

	_, ok := c.GetBalance(1)
	assert.False(t, ok)
	_, ok = c.GetStatement(1)
	assert.False(t, ok)

	// 其他客戶不受影響
	c.SetBalance(2, domain.BalanceView{Balance: 7})
	c.Invalidate(1)
	_, ok = c.GetBalance(2)
	assert.True(t, ok)
}

// TestTTLExpiry 過期後的讀取視同 miss
func TestTTLExpiry(t *testing.T) {
	c := NewViewCache(Config{
		BalanceTTL:   30 * time.Millisecond,
		StatementTTL: 200 * time.Millisecond,
	})

	c.SetBalance(1, domain.BalanceView{Balance: 100})
	c.SetStatement(1, domain.StatementView{Balance: 100})

	_, ok := c.GetBalance(1)
	assert.True(t, ok)

	time.Sleep(60 * time.Millisecond)

	// 餘額已過期，明細的 TTL 較長仍然有效
	_, ok = c.GetBalance(1)
	assert.False(t, ok)
	_, ok = c.GetStatement(1)
	assert.True(t, ok)
}

// TestSetResetsTTL 重新 Set 會重設 TTL
func TestSetResetsTTL(t *testing.T) {
	c := NewViewCache(Config{
		BalanceTTL:   50 * time.Millisecond,
		StatementTTL: 50 * time.Millisecond,
	})

	c.SetBalance(1, domain.BalanceView{Balance: 1})
	time.Sleep(30 * time.Millisecond)
	c.SetBalance(1, domain.BalanceView{Balance: 2})
	time.Sleep(30 * time.Millisecond)

	// 距離第二次 Set 只有 30ms，仍應命中且拿到新值
	view, ok := c.GetBalance(1)
	assert.True(t, ok)
	assert.Equal(t, int64(2), view.Balance)
}
