package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
	"go.etcd.io/bbolt"

	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/domain"
)

// BoltKV adapts a single bbolt bucket to the never-throwing key/value
// contract. Storage failures (quota, I/O, serialization) are logged
// and degrade to absent/false; callers treat persistence as
// best-effort.
type BoltKV struct {
	db            *bbolt.DB
	bucket        []byte
	maxValueBytes int
	strategy      retry.Strategy
	logger        logger.Logger
}

// NewBoltKV opens (creating if needed) the named bucket.
// maxValueBytes models the per-origin storage quota; writes larger
// than it are rejected. Zero disables the quota.
func NewBoltKV(db *bbolt.DB, bucket string, maxValueBytes int, log logger.Logger) (*BoltKV, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create bucket %q: %w", bucket, err)
	}

	return &BoltKV{
		db:            db,
		bucket:        []byte(bucket),
		maxValueBytes: maxValueBytes,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    100 * time.Millisecond,
			Backoff:  2,
		},
		logger: log,
	}, nil
}

func (kv *BoltKV) Read(ctx context.Context, key string) (string, bool) {
	var value string
	var found bool
	err := kv.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(kv.bucket).Get([]byte(key))
		if raw != nil {
			value = string(raw)
			found = true
		}
		return nil
	})
	if err != nil {
		kv.logger.Error("kv read failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
		return "", false
	}
	return value, found
}

func (kv *BoltKV) Write(ctx context.Context, key, value string) bool {
	if kv.maxValueBytes > 0 && len(value) > kv.maxValueBytes {
		kv.logger.Warn("kv write rejected",
			logger.String("key", key),
			logger.Int("size", len(value)),
			logger.Int("quota", kv.maxValueBytes),
			logger.String("error", domain.ErrQuotaExceeded.Error()),
		)
		return false
	}

	err := retry.Do(func() error {
		return kv.db.Update(func(tx *bbolt.Tx) error {
			return tx.Bucket(kv.bucket).Put([]byte(key), []byte(value))
		})
	}, kv.strategy)
	if err != nil {
		kv.logger.Error("kv write failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
		return false
	}
	return true
}

func (kv *BoltKV) Remove(ctx context.Context, key string) bool {
	err := retry.Do(func() error {
		return kv.db.Update(func(tx *bbolt.Tx) error {
			return tx.Bucket(kv.bucket).Delete([]byte(key))
		})
	}, kv.strategy)
	if err != nil {
		kv.logger.Error("kv remove failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
		return false
	}
	return true
}
