package repository

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"go.etcd.io/bbolt"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestKV(t *testing.T, maxValueBytes int) *BoltKV {
	t.Helper()

	db, err := bbolt.Open(filepath.Join(t.TempDir(), "test.db"), 0o600, &bbolt.Options{Timeout: time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	kv, err := NewBoltKV(db, "test", maxValueBytes, newTestLogger(t))
	require.NoError(t, err)
	return kv
}

func TestBoltKV_ReadAbsent(t *testing.T) {
	kv := newTestKV(t, 0)

	value, ok := kv.Read(context.Background(), "missing")

	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestBoltKV_WriteRead(t *testing.T) {
	kv := newTestKV(t, 0)

	require.True(t, kv.Write(context.Background(), "k", `{"a":1}`))

	value, ok := kv.Read(context.Background(), "k")
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, value)
}

func TestBoltKV_Overwrite(t *testing.T) {
	kv := newTestKV(t, 0)

	require.True(t, kv.Write(context.Background(), "k", "one"))
	require.True(t, kv.Write(context.Background(), "k", "two"))

	value, _ := kv.Read(context.Background(), "k")
	assert.Equal(t, "two", value)
}

func TestBoltKV_Remove(t *testing.T) {
	kv := newTestKV(t, 0)

	require.True(t, kv.Write(context.Background(), "k", "v"))
	require.True(t, kv.Remove(context.Background(), "k"))

	_, ok := kv.Read(context.Background(), "k")
	assert.False(t, ok)
}

func TestBoltKV_RemoveAbsent(t *testing.T) {
	kv := newTestKV(t, 0)

	assert.True(t, kv.Remove(context.Background(), "missing"))
}

func TestBoltKV_QuotaExceeded(t *testing.T) {
	kv := newTestKV(t, 16)

	ok := kv.Write(context.Background(), "big", strings.Repeat("x", 17))

	assert.False(t, ok)
	_, found := kv.Read(context.Background(), "big")
	assert.False(t, found, "rejected write must leave no partial value")
}

func TestBoltKV_QuotaBoundary(t *testing.T) {
	kv := newTestKV(t, 16)

	assert.True(t, kv.Write(context.Background(), "fits", strings.Repeat("x", 16)))
}
