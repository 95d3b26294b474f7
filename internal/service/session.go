package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/domain"
	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/service/ports"
)

const defaultDisplayName = "Apoiador"

// SessionService issues the stable pseudonymous identity of this
// client. The identity is created once, persisted, and reused for the
// lifetime of the store.
type SessionService struct {
	repo   ports.SessionRepo
	logger logger.Logger
}

func NewSessionService(repo ports.SessionRepo, log logger.Logger) *SessionService {
	return &SessionService{repo: repo, logger: log}
}

// Current returns the persisted identity, or nil when none exists yet.
func (s *SessionService) Current(ctx context.Context) *domain.SessionIdentity {
	identity, ok := s.repo.Get(ctx)
	if !ok {
		return nil
	}
	return identity
}

// GetOrCreate returns the persisted identity, synthesizing and
// persisting one on first call. Idempotent afterwards: every later
// call returns the same identity.
func (s *SessionService) GetOrCreate(ctx context.Context) *domain.SessionIdentity {
	if identity, ok := s.repo.Get(ctx); ok {
		return identity
	}

	suffix := uuid.New().String()[:8]
	identity := &domain.SessionIdentity{
		ID:          fmt.Sprintf("user-%s", suffix),
		DisplayName: fmt.Sprintf("%s %s", defaultDisplayName, suffix),
		CreatedAt:   time.Now().UTC(),
	}

	if !s.repo.Save(ctx, identity) {
		// Best-effort: an unsaved identity still stamps this turn's
		// records; the next call will synthesize a fresh one.
		s.logger.Warn("session identity not persisted",
			logger.String("id", identity.ID),
		)
	} else {
		s.logger.Info("session identity created",
			logger.String("id", identity.ID),
		)
	}

	return identity
}
