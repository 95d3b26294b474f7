package ports

import (
	"context"

	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/domain"
)

// SessionRepo persists the single client identity record.
type SessionRepo interface {
	Get(ctx context.Context) (*domain.SessionIdentity, bool)
	Save(ctx context.Context, identity *domain.SessionIdentity) bool
}

// IdentityProvider stamps record ownership.
type IdentityProvider interface {
	GetOrCreate(ctx context.Context) *domain.SessionIdentity
}
