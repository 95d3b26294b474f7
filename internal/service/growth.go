package service

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/domain"
)

// GrowthParams tune the synthetic participant growth window.
type GrowthParams struct {
	// QuietPeriod is how long after creation a record stays untouched.
	QuietPeriod time.Duration
	// PercentPerHour is the growth slope once the window opens.
	PercentPerHour int
	// MaxPercent caps the share of the estimate ever displayed.
	MaxPercent int
	// WindowHours closes growth this many hours after it started.
	WindowHours int
}

func DefaultGrowthParams() GrowthParams {
	return GrowthParams{
		QuietPeriod:    time.Hour,
		PercentPerHour: 1,
		MaxPercent:     5,
		WindowHours:    5,
	}
}

// GrowthService synthesizes a steadily climbing confirmed-participant
// figure anchored to each record's original estimate. It owns no
// timer: the host triggers ProcessAll (page load, poll, scheduler) and
// every transition is a pure function of wall-clock time, so repeated
// evaluation is idempotent and never moves a value backward.
//
// Per record the field set walks: dormant (no estimate) → quiet
// (younger than QuietPeriod) → growing (value rising by
// PercentPerHour of the estimate per hour, capped at MaxPercent) →
// completed (terminal, frozen).
type GrowthService struct {
	store  *EventService
	params GrowthParams
	logger logger.Logger
}

func NewGrowthService(store *EventService, params GrowthParams, log logger.Logger) *GrowthService {
	return &GrowthService{store: store, params: params, logger: log}
}

// ProcessAll evaluates every record against the current wall clock.
// Changed records are persisted in one collection rewrite followed by
// one notification, no matter how many records moved.
func (g *GrowthService) ProcessAll(ctx context.Context) bool {
	now := time.Now().UTC()
	advanced := 0

	changed := g.store.mutate(ctx, func(records []*domain.EventRecord) ([]*domain.EventRecord, bool) {
		for _, rec := range records {
			if g.evaluate(rec, now) {
				advanced++
			}
		}
		return records, advanced > 0
	})

	if changed {
		g.logger.Info("participant growth advanced",
			logger.Int("records", advanced),
		)
	}
	return changed
}

// evaluate advances one record's growth fields to where the clock says
// they belong. Reports whether anything changed.
func (g *GrowthService) evaluate(rec *domain.EventRecord, now time.Time) bool {
	if rec.OriginalEstimate <= 0 || rec.GrowthCompleted {
		return false
	}
	if now.Sub(rec.CreatedAt) < g.params.QuietPeriod {
		return false
	}

	changed := false
	if rec.GrowthStartedAt == nil {
		started := now
		rec.GrowthStartedAt = &started
		changed = true
	}

	hours := int(now.Sub(*rec.GrowthStartedAt) / time.Hour)
	if hours < 0 {
		hours = 0
	}
	if hours >= g.params.WindowHours {
		// Terminal transition; the freeze itself counts as a change.
		rec.GrowthCompleted = true
		return true
	}

	percent := hours * g.params.PercentPerHour
	if percent >= g.params.MaxPercent {
		percent = g.params.MaxPercent
		rec.GrowthCompleted = true
		changed = true
	}

	target := rec.OriginalEstimate * percent / 100
	if target != rec.ConfirmedParticipants {
		rec.ConfirmedParticipants = target
		changed = true
	}
	return changed
}
