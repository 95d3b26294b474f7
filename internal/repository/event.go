package repository

import (
	"context"
	"encoding/json"

	"github.com/wb-go/wbf/logger"

	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/domain"
	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/service/ports"
)

// EventRepository persists the whole event collection as one JSON
// array under a single key. The collection is always rewritten in
// full; there is no record-level locking.
type EventRepository struct {
	kv     ports.KV
	key    string
	logger logger.Logger
}

func NewEventRepo(kv ports.KV, key string, log logger.Logger) *EventRepository {
	return &EventRepository{kv: kv, key: key, logger: log}
}

// LoadAll decodes the persisted collection. Absent and corrupt state
// both yield an empty collection; first run and post-corruption reads
// are indistinguishable to callers.
func (r *EventRepository) LoadAll(ctx context.Context) []*domain.EventRecord {
	raw, ok := r.kv.Read(ctx, r.key)
	if !ok || raw == "" {
		return []*domain.EventRecord{}
	}

	var records []*domain.EventRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		r.logger.Warn("corrupt event collection, falling back to empty",
			logger.String("key", r.key),
			logger.String("error", err.Error()),
		)
		return []*domain.EventRecord{}
	}
	return records
}

func (r *EventRepository) SaveAll(ctx context.Context, records []*domain.EventRecord) bool {
	raw, err := json.Marshal(records)
	if err != nil {
		r.logger.Error("encode event collection",
			logger.String("error", err.Error()),
		)
		return false
	}
	return r.kv.Write(ctx, r.key, string(raw))
}
