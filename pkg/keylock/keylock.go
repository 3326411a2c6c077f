// Package keylock 提供以 key 為粒度的互斥鎖。
// 同一 key 的持有者之間完全互斥，不同 key 之間完全平行；
// Acquire 支援逾時與 context 取消，避免高競爭下無限等待。
package keylock

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrTimeout 在逾時或 context 取消前未能取得鎖
var ErrTimeout = errors.New("keylock: acquire timed out")

// KeyLock 管理一組以 int64 為 key 的鎖
// 內部用容量 1 的 channel 當 semaphore，
// 這樣才能在 select 裡同時等鎖、等逾時、等取消
type KeyLock struct {
	mu    sync.Mutex
	locks map[int64]chan struct{}
}

func New() *KeyLock {
	return &KeyLock{
		locks: make(map[int64]chan struct{}),
	}
}

// sem 取得 (或建立) 指定 key 的 semaphore
func (k *KeyLock) sem(key int64) chan struct{} {
	k.mu.Lock()
	defer k.mu.Unlock()
	ch, ok := k.locks[key]
	if !ok {
		ch = make(chan struct{}, 1)
		k.locks[key] = ch
	}
	return ch
}

// Acquire 嘗試在 timeout 內取得 key 的鎖
// 成功時回傳 nil，之後必須呼叫 Release；
// 逾時或 ctx 取消時回傳 ErrTimeout，此時不需 Release
func (k *KeyLock) Acquire(ctx context.Context, key int64, timeout time.Duration) error {
	ch := k.sem(key)

	// Fast path: 無競爭時不配置 timer
	select {
	case ch <- struct{}{}:
		return nil
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ch <- struct{}{}:
		return nil
	case <-timer.C:
		return ErrTimeout
	case <-ctx.Done():
		return ErrTimeout
	}
}

// Release 釋放 key 的鎖
// 只能由 Acquire 成功的呼叫方釋放一次
func (k *KeyLock) Release(key int64) {
	<-k.sem(key)
}
