// Package cache 是餘額與明細投影的 read-through 快取層。
// 快取永遠不是資料的最終來源：任何時刻整個快取被清空，
// 行為都必須等同於全部 cache miss，正確性不受影響。
package cache

import (
	"strconv"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/JoeShih716/go-credit-ledger/internal/app/core/domain"
)

// 預設 TTL
// 明細查詢成本較高、可容忍稍舊，所以給兩倍的 TTL
const (
	DefaultBalanceTTL   = 5 * time.Second
	DefaultStatementTTL = 10 * time.Second
)

// Config 快取層配置
type Config struct {
	BalanceTTL   time.Duration `yaml:"balance_ttl"`
	StatementTTL time.Duration `yaml:"statement_ttl"`
}

// Counter 單一快取的累計命中統計
// 計數只增不減，沒有 reset
type Counter struct {
	Hits   uint64  `json:"hits"`
	Misses uint64  `json:"misses"`
	Ratio  float64 `json:"hit_ratio"`
}

// Stats 兩種快取各自的統計
type Stats struct {
	Balance   Counter `json:"balance"`
	Statement Counter `json:"statement"`
}

// ViewCache 以 clientID 為 key 的 TTL 快取
// balances 與 statements 是兩個獨立的 store，TTL 各自配置；
// 命中計數用 atomic，讀多寫少的流量不會互相卡住
type ViewCache struct {
	balances   *gocache.Cache
	statements *gocache.Cache

	balanceHits     atomic.Uint64
	balanceMisses   atomic.Uint64
	statementHits   atomic.Uint64
	statementMisses atomic.Uint64
}

// NewViewCache 建立快取層
// TTL <= 0 時套用預設值
func NewViewCache(cfg Config) *ViewCache {
	if cfg.BalanceTTL <= 0 {
		cfg.BalanceTTL = DefaultBalanceTTL
	}
	if cfg.StatementTTL <= 0 {
		cfg.StatementTTL = DefaultStatementTTL
	}
	return &ViewCache{
		// 清掃間隔用 TTL 的兩倍即可，過期判定本身在 Get 時就會做
		balances:   gocache.New(cfg.BalanceTTL, 2*cfg.BalanceTTL),
		statements: gocache.New(cfg.StatementTTL, 2*cfg.StatementTTL),
	}
}

func cacheKey(clientID int64) string {
	return strconv.FormatInt(clientID, 10)
}

// GetBalance 查詢餘額快取
// 回傳 (view, true) 代表命中；否則為 miss，由呼叫方回源後 SetBalance
func (c *ViewCache) GetBalance(clientID int64) (domain.BalanceView, bool) {
	obj, found := c.balances.Get(cacheKey(clientID))
	if !found {
		c.balanceMisses.Add(1)
		return domain.BalanceView{}, false
	}
	c.balanceHits.Add(1)
	return obj.(domain.BalanceView), true
}

// SetBalance 寫入餘額快取 (重設 TTL)
func (c *ViewCache) SetBalance(clientID int64, view domain.BalanceView) {
	c.balances.SetDefault(cacheKey(clientID), view)
}

// GetStatement 查詢明細快取
func (c *ViewCache) GetStatement(clientID int64) (domain.StatementView, bool) {
	obj, found := c.statements.Get(cacheKey(clientID))
	if !found {
		c.statementMisses.Add(1)
		return domain.StatementView{}, false
	}
	c.statementHits.Add(1)
	return obj.(domain.StatementView), true
}

// SetStatement 寫入明細快取 (重設 TTL)
func (c *ViewCache) SetStatement(clientID int64, view domain.StatementView) {
	c.statements.SetDefault(cacheKey(clientID), view)
}

// Invalidate 移除該客戶的餘額與明細快取
// 只在寫入成功後呼叫；被拒絕的交易沒有改變狀態，不需要失效
func (c *ViewCache) Invalidate(clientID int64) {
	key := cacheKey(clientID)
	c.balances.Delete(key)
	c.statements.Delete(key)
}

// Stats 回傳兩種快取的累計命中統計
func (c *ViewCache) Stats() Stats {
	return Stats{
		Balance:   newCounter(c.balanceHits.Load(), c.balanceMisses.Load()),
		Statement: newCounter(c.statementHits.Load(), c.statementMisses.Load()),
	}
}

func newCounter(hits, misses uint64) Counter {
	c := Counter{Hits: hits, Misses: misses}
	if total := hits + misses; total > 0 {
		c.Ratio = float64(hits) / float64(total)
	}
	return c
}
