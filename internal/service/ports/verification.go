package ports

import (
	"context"

	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/domain"
)

// VerificationLog is the append-only per-event contact log. Entries
// are informational and never affect RSVP counters.
type VerificationLog interface {
	Append(ctx context.Context, eventID string, entry domain.VerificationEntry) bool
	List(ctx context.Context, eventID string) []domain.VerificationEntry
}
