package keylock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAcquireRelease 基本取鎖與釋放
func TestAcquireRelease(t *testing.T) {
	k := New()
	ctx := context.Background()

	require.NoError(t, k.Acquire(ctx, 1, time.Second))
	k.Release(1)

	// 釋放後可以再次取得
	require.NoError(t, k.Acquire(ctx, 1, time.Second))
	k.Release(1)
}

// TestSameKeyExclusive 同一 key 的持有者之間完全互斥
// 100 個 goroutine 搶同一把鎖做非原子的讀改寫，結果必須不掉更新
func TestSameKeyExclusive(t *testing.T) {
	k := New()
	ctx := context.Background()

	const workers = 100
	counter := 0

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if !assert.NoError(t, k.Acquire(ctx, 7, 5*time.Second)) {
				return
			}
			defer k.Release(7)
			v := counter
			time.Sleep(time.Microsecond) // 放大競爭窗口
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

// TestDistinctKeysParallel 不同 key 之間不互相阻塞
func TestDistinctKeysParallel(t *testing.T) {
	k := New()
	ctx := context.Background()

	// 先持有 key=1
	require.NoError(t, k.Acquire(ctx, 1, time.Second))
	defer k.Release(1)

	// key=2 不應被 key=1 卡住
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := k.Acquire(ctx, 2, time.Second); err == nil {
			k.Release(2)
		}
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("acquire on a distinct key blocked")
	}
}

// TestAcquireTimeout 鎖被占住時，等待方在 timeout 後收到 ErrTimeout
func TestAcquireTimeout(t *testing.T) {
	k := New()
	ctx := context.Background()

	require.NoError(t, k.Acquire(ctx, 1, time.Second))
	defer k.Release(1)

	start := time.Now()
	err := k.Acquire(ctx, 1, 50*time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

// TestAcquireContextCancel ctx 取消等同逾時
func TestAcquireContextCancel(t *testing.T) {
	k := New()

	require.NoError(t, k.Acquire(context.Background(), 1, time.Second))
	defer k.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := k.Acquire(ctx, 1, 5*time.Second)
	assert.ErrorIs(t, err, ErrTimeout)
}
