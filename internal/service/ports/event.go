package ports

import (
	"context"

	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/domain"
)

// EventRepo persists the whole event collection as one value. LoadAll
// treats absent or corrupt state as an empty collection.
type EventRepo interface {
	LoadAll(ctx context.Context) []*domain.EventRecord
	SaveAll(ctx context.Context, records []*domain.EventRecord) bool
}
