package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/domain"
	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/service/ports"
)

const nationalAnnotation = "Evento nacional simultâneo em todas as capitais do Brasil."

// EventService is the record store: CRUD over the persisted event
// collection, schema forward-fill on read, national fan-out on create,
// RSVP counters and thumbnail bookkeeping.
//
// Every mutation is serialized through one mutex and performs a fresh
// read-modify-write of the whole collection inside the critical
// section, so interleaved callers (two RSVP clicks queued
// back-to-back) cannot clobber each other's increment.
type EventService struct {
	mu sync.Mutex

	events        ports.EventRepo
	thumbs        ports.ThumbnailRepo
	verifications ports.VerificationLog
	identity      ports.IdentityProvider
	notifier      ports.ChangeNotifier
	logger        logger.Logger
}

func NewEventService(
	events ports.EventRepo,
	thumbs ports.ThumbnailRepo,
	verifications ports.VerificationLog,
	identity ports.IdentityProvider,
	notifier ports.ChangeNotifier,
	log logger.Logger,
) *EventService {
	return &EventService{
		events:        events,
		thumbs:        thumbs,
		verifications: verifications,
		identity:      identity,
		notifier:      notifier,
		logger:        log,
	}
}

// mutate runs fn on a fresh load of the collection under the store
// mutex, re-persists when fn reports a change, and fans out a single
// notification. The notification fires even when the re-persist
// degraded to a no-op: observers re-read state themselves.
func (s *EventService) mutate(ctx context.Context, fn func(records []*domain.EventRecord) ([]*domain.EventRecord, bool)) bool {
	s.mu.Lock()
	records, changed := fn(s.events.LoadAll(ctx))
	if changed {
		s.events.SaveAll(ctx, records)
	}
	s.mu.Unlock()

	if changed {
		s.notifier.Notify()
	}
	return changed
}

// List returns the whole collection, forward-filling coordinates on
// records persisted before coordinates existed. The migration is
// one-way and idempotent: the migrated collection is re-persisted
// immediately, so the next read derives nothing.
func (s *EventService) List(ctx context.Context) []*domain.EventRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.events.LoadAll(ctx)
	migrated := 0
	for _, rec := range records {
		if migrateRecord(rec) {
			migrated++
		}
	}
	if migrated > 0 {
		s.events.SaveAll(ctx, records)
		s.logger.Info("event records migrated",
			logger.Int("count", migrated),
		)
	}
	return records
}

// migrateRecord forward-fills fields older records are missing. It
// never rejects or drops a record; an unmatched region falls back to
// the default coordinate.
func migrateRecord(rec *domain.EventRecord) bool {
	changed := false
	if len(rec.Coordinates) == 0 {
		if region, ok := domain.LookupRegion(rec.Region); ok {
			rec.Coordinates = copyCoords(region.Coordinates)
		} else {
			rec.Coordinates = copyCoords(domain.DefaultCoordinates)
		}
		changed = true
	}
	if rec.RSVPs == nil {
		rec.RSVPs = domain.NewRSVPs(rec.Type)
		changed = true
	}
	return changed
}

// GetByID returns the record, or nil when absent.
func (s *EventService) GetByID(ctx context.Context, id string) *domain.EventRecord {
	for _, rec := range s.List(ctx) {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}

// Create appends one record — or, for a national submission, one per
// federative unit sharing a batch token — to the collection, persists
// it in full, replicates the thumbnail to every produced id, and
// notifies once. The produced records are returned.
func (s *EventService) Create(ctx context.Context, sub domain.Submission) ([]*domain.EventRecord, error) {
	if strings.TrimSpace(sub.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if _, ok := domain.RSVPKeysForType(sub.Type); !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEventType, sub.Type)
	}

	identity := s.identity.GetOrCreate(ctx)
	now := time.Now().UTC()
	created := buildRecords(sub, identity.ID, now)

	if sub.Thumbnail != "" {
		ids := make([]string, len(created))
		for i, rec := range created {
			ids[i] = rec.ID
		}
		s.thumbs.PutAll(ctx, ids, sub.Thumbnail)
	}

	s.mutate(ctx, func(records []*domain.EventRecord) ([]*domain.EventRecord, bool) {
		return append(records, created...), true
	})

	s.logger.Info("events created",
		logger.Int("count", len(created)),
		logger.String("type", string(sub.Type)),
		logger.Any("national", sub.IsNational),
	)
	return created, nil
}

func buildRecords(sub domain.Submission, createdBy string, now time.Time) []*domain.EventRecord {
	estimate := parseEstimate(sub.ExpectedAttendance)

	base := domain.EventRecord{
		Title:                 sub.Title,
		Description:           sub.Description,
		Date:                  sub.Date,
		Time:                  sub.Time,
		Location:              sub.MeetingPoint,
		FinalDestination:      sub.FinalDestination,
		Type:                  sub.Type,
		WhatsappContact:       sub.WhatsappContact,
		CreatedBy:             createdBy,
		CreatedAt:             now,
		UpdatedAt:             now,
		ExpectedAttendance:    estimate,
		ConfirmedParticipants: 0,
		OriginalEstimate:      estimate,
	}

	if !sub.IsNational {
		rec := base
		rec.ID = fmt.Sprintf("event-%s", uuid.New().String())
		rec.City = sub.City
		rec.Region = sub.State
		rec.Country = sub.Country
		rec.RSVPs = domain.NewRSVPs(sub.Type)
		switch {
		case sub.IsInternational:
			rec.Coordinates = copyCoords(domain.CountryCoordinates(sub.Country))
		default:
			if rec.Country == "" {
				rec.Country = "Brasil"
			}
			if region, ok := domain.LookupRegion(sub.State); ok {
				rec.Coordinates = copyCoords(region.Coordinates)
			} else {
				rec.Coordinates = copyCoords(domain.DefaultCoordinates)
			}
		}
		return []*domain.EventRecord{&rec}
	}

	// Fan-out: the shared millisecond token plus the region code keeps
	// every id in the batch unique.
	batch := now.UnixMilli()
	records := make([]*domain.EventRecord, 0, len(domain.BrazilRegions))
	for _, region := range domain.BrazilRegions {
		rec := base
		rec.ID = fmt.Sprintf("event-%d-%s", batch, strings.ToLower(region.Code))
		rec.Title = fmt.Sprintf("%s - %s", sub.Title, region.Capital)
		rec.Description = strings.TrimSpace(sub.Description + "\n\n" + nationalAnnotation)
		rec.City = region.Capital
		rec.Region = region.Code
		rec.Country = "Brasil"
		rec.Coordinates = copyCoords(region.Coordinates)
		rec.RSVPs = domain.NewRSVPs(sub.Type)
		records = append(records, &rec)
	}
	return records
}

func parseEstimate(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Update merges the patch into the record's core fields and bumps
// UpdatedAt. A patched thumbnail overwrites the thumbnail entry.
// Returns false without side effects when the id is unknown.
func (s *EventService) Update(ctx context.Context, id string, patch domain.EventPatch) bool {
	updated := s.mutate(ctx, func(records []*domain.EventRecord) ([]*domain.EventRecord, bool) {
		rec := findRecord(records, id)
		if rec == nil {
			return records, false
		}
		applyPatch(rec, patch)
		rec.UpdatedAt = time.Now().UTC()
		// Overwrite the blob before the notification goes out, so an
		// observer re-reading on that notify already sees it.
		if patch.Thumbnail != nil {
			s.thumbs.Put(ctx, id, *patch.Thumbnail)
		}
		return records, true
	})
	if !updated {
		s.logger.Debug("update skipped, event not found",
			logger.String("event_id", id),
		)
		return false
	}
	return true
}

func applyPatch(rec *domain.EventRecord, patch domain.EventPatch) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&rec.Title, patch.Title)
	set(&rec.Description, patch.Description)
	set(&rec.Date, patch.Date)
	set(&rec.Time, patch.Time)
	set(&rec.Location, patch.Location)
	set(&rec.City, patch.City)
	set(&rec.Region, patch.Region)
	set(&rec.Country, patch.Country)
	set(&rec.FinalDestination, patch.FinalDestination)
	if patch.Type != nil {
		rec.Type = *patch.Type
	}
}

// Delete removes the record and best-effort removes its thumbnail.
// The record removal commits even when the thumbnail cleanup degrades;
// a missing thumbnail later reads as "no thumbnail".
func (s *EventService) Delete(ctx context.Context, id string) bool {
	deleted := s.mutate(ctx, func(records []*domain.EventRecord) ([]*domain.EventRecord, bool) {
		for i, rec := range records {
			if rec.ID == id {
				return append(records[:i], records[i+1:]...), true
			}
		}
		return records, false
	})
	if !deleted {
		return false
	}

	if !s.thumbs.Remove(ctx, id) {
		s.logger.Warn("thumbnail cleanup failed",
			logger.String("event_id", id),
		)
	}

	s.logger.Info("event deleted",
		logger.String("event_id", id),
	)
	return true
}

// AddRSVP increments the counter the public participant type maps to,
// by exactly one. Unknown participant types and categories the event's
// type does not carry are rejected with no mutation. Optional
// verification contact data lands in the append-only log and never
// affects any counter.
func (s *EventService) AddRSVP(ctx context.Context, id, participant, verification string) bool {
	key, ok := domain.RSVPKeyForParticipant(participant)
	if !ok {
		s.logger.Debug("rsvp rejected, unknown participant",
			logger.String("event_id", id),
			logger.String("participant", participant),
		)
		return false
	}

	return s.mutate(ctx, func(records []*domain.EventRecord) ([]*domain.EventRecord, bool) {
		rec := findRecord(records, id)
		if rec == nil {
			return records, false
		}
		if rec.RSVPs == nil {
			rec.RSVPs = domain.NewRSVPs(rec.Type)
		}
		if _, carried := rec.RSVPs[key]; !carried {
			return records, false
		}
		rec.RSVPs[key]++
		rec.UpdatedAt = time.Now().UTC()

		// The log append is a read-modify-write of its own, so it has
		// to stay inside the critical section or interleaved verified
		// RSVPs drop each other's entries.
		if verification != "" {
			s.verifications.Append(ctx, id, domain.VerificationEntry{
				ParticipantCategory: participant,
				Verification:        verification,
				Timestamp:           time.Now().UTC(),
			})
		}
		return records, true
	})
}

// Thumbnail returns the blob stored for a record id, if any.
func (s *EventService) Thumbnail(ctx context.Context, id string) (string, bool) {
	return s.thumbs.Get(ctx, id)
}

// Verifications returns the append-only contact log for an event.
func (s *EventService) Verifications(ctx context.Context, id string) []domain.VerificationEntry {
	return s.verifications.List(ctx, id)
}

func findRecord(records []*domain.EventRecord, id string) *domain.EventRecord {
	for _, rec := range records {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}

func copyCoords(coords []float64) []float64 {
	return append([]float64(nil), coords...)
}
