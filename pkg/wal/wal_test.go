package wal

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID     int64
	Amount int64
	Note   string
}

// TestAppendAndReadAll 寫入多筆後能依原順序完整讀回
func TestAppendAndReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.wal")

	w, err := NewWAL(path)
	require.NoError(t, err)

	want := []record{
		{ID: 1, Amount: 100, Note: "first"},
		{ID: 2, Amount: -50, Note: "second"},
		{ID: 3, Amount: 999, Note: "third"},
	}
	for _, rec := range want {
		require.NoError(t, w.Append(rec))
	}
	require.NoError(t, w.Close())

	// 模擬重啟：重新開啟同一個檔案後重放
	w2, err := NewWAL(path)
	require.NoError(t, err)
	defer w2.Close()

	var got []record
	err = w2.ReadAll(func(jsonRaw []byte) error {
		var rec record
		if err := json.Unmarshal(jsonRaw, &rec); err != nil {
			return err
		}
		got = append(got, rec)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestReadAllEmpty 空檔案讀回零筆，不報錯
func TestReadAllEmpty(t *testing.T) {
	w, err := NewWAL(filepath.Join(t.TempDir(), "empty.wal"))
	require.NoError(t, err)
	defer w.Close()

	count := 0
	err = w.ReadAll(func(jsonRaw []byte) error {
		count++
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, count)
}

// TestAppendAfterReadAll 重放完成後可以繼續追加 (O_APPEND 保證寫到末尾)
func TestAppendAfterReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.wal")

	w, err := NewWAL(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Append(record{ID: 1}))
	require.NoError(t, w.ReadAll(func([]byte) error { return nil }))
	require.NoError(t, w.Append(record{ID: 2}))

	count := 0
	require.NoError(t, w.ReadAll(func([]byte) error {
		count++
		return nil
	}))
	assert.Equal(t, 2, count)
}
