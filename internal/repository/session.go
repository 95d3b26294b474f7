package repository

import (
	"context"
	"encoding/json"

	"github.com/wb-go/wbf/logger"

	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/domain"
	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/service/ports"
)

// SessionRepository persists the single client identity record.
type SessionRepository struct {
	kv     ports.KV
	key    string
	logger logger.Logger
}

func NewSessionRepo(kv ports.KV, key string, log logger.Logger) *SessionRepository {
	return &SessionRepository{kv: kv, key: key, logger: log}
}

func (r *SessionRepository) Get(ctx context.Context) (*domain.SessionIdentity, bool) {
	raw, ok := r.kv.Read(ctx, r.key)
	if !ok || raw == "" {
		return nil, false
	}

	var identity domain.SessionIdentity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		r.logger.Warn("corrupt session identity, treating as absent",
			logger.String("error", err.Error()),
		)
		return nil, false
	}
	return &identity, true
}

func (r *SessionRepository) Save(ctx context.Context, identity *domain.SessionIdentity) bool {
	raw, err := json.Marshal(identity)
	if err != nil {
		r.logger.Error("encode session identity",
			logger.String("error", err.Error()),
		)
		return false
	}
	return r.kv.Write(ctx, r.key, string(raw))
}
