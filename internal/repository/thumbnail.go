package repository

import (
	"context"
	"encoding/json"

	"github.com/wb-go/wbf/logger"

	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/service/ports"
)

// ThumbnailRepository stores recordId→blob pairs as one JSON object
// under a key separate from the event collection, so large payloads do
// not inflate every list read/write.
type ThumbnailRepository struct {
	kv     ports.KV
	key    string
	logger logger.Logger
}

func NewThumbnailRepo(kv ports.KV, key string, log logger.Logger) *ThumbnailRepository {
	return &ThumbnailRepository{kv: kv, key: key, logger: log}
}

func (r *ThumbnailRepository) load(ctx context.Context) map[string]string {
	raw, ok := r.kv.Read(ctx, r.key)
	if !ok || raw == "" {
		return map[string]string{}
	}

	var thumbs map[string]string
	if err := json.Unmarshal([]byte(raw), &thumbs); err != nil {
		r.logger.Warn("corrupt thumbnail map, falling back to empty",
			logger.String("key", r.key),
			logger.String("error", err.Error()),
		)
		return map[string]string{}
	}
	return thumbs
}

func (r *ThumbnailRepository) save(ctx context.Context, thumbs map[string]string) bool {
	raw, err := json.Marshal(thumbs)
	if err != nil {
		r.logger.Error("encode thumbnail map",
			logger.String("error", err.Error()),
		)
		return false
	}
	return r.kv.Write(ctx, r.key, string(raw))
}

func (r *ThumbnailRepository) Get(ctx context.Context, recordID string) (string, bool) {
	blob, ok := r.load(ctx)[recordID]
	return blob, ok
}

func (r *ThumbnailRepository) Put(ctx context.Context, recordID, blob string) bool {
	thumbs := r.load(ctx)
	thumbs[recordID] = blob
	return r.save(ctx, thumbs)
}

// PutAll replicates one blob to every given record id in a single
// rewrite. A national fan-out stores its shared thumbnail this way.
func (r *ThumbnailRepository) PutAll(ctx context.Context, recordIDs []string, blob string) bool {
	if len(recordIDs) == 0 {
		return true
	}
	thumbs := r.load(ctx)
	for _, id := range recordIDs {
		thumbs[id] = blob
	}
	return r.save(ctx, thumbs)
}

// Remove drops the entry for a record id. Removing an absent entry is
// a successful no-op.
func (r *ThumbnailRepository) Remove(ctx context.Context, recordID string) bool {
	thumbs := r.load(ctx)
	if _, ok := thumbs[recordID]; !ok {
		return true
	}
	delete(thumbs, recordID)
	return r.save(ctx, thumbs)
}
