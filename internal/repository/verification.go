package repository

import (
	"context"
	"encoding/json"

	"github.com/wb-go/wbf/logger"

	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/domain"
	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/service/ports"
)

// VerificationRepository keeps one append-only JSON array per event
// under "<prefix><eventId>".
type VerificationRepository struct {
	kv        ports.KV
	keyPrefix string
	logger    logger.Logger
}

func NewVerificationRepo(kv ports.KV, keyPrefix string, log logger.Logger) *VerificationRepository {
	return &VerificationRepository{kv: kv, keyPrefix: keyPrefix, logger: log}
}

func (r *VerificationRepository) key(eventID string) string {
	return r.keyPrefix + eventID
}

func (r *VerificationRepository) List(ctx context.Context, eventID string) []domain.VerificationEntry {
	raw, ok := r.kv.Read(ctx, r.key(eventID))
	if !ok || raw == "" {
		return []domain.VerificationEntry{}
	}

	var entries []domain.VerificationEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		r.logger.Warn("corrupt verification log, falling back to empty",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return []domain.VerificationEntry{}
	}
	return entries
}

func (r *VerificationRepository) Append(ctx context.Context, eventID string, entry domain.VerificationEntry) bool {
	entries := append(r.List(ctx, eventID), entry)
	raw, err := json.Marshal(entries)
	if err != nil {
		r.logger.Error("encode verification log",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return false
	}
	return r.kv.Write(ctx, r.key(eventID), string(raw))
}
