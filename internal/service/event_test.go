package service

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"go.etcd.io/bbolt"

	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/domain"
	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/notifier"
	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/repository"
	"github.com/CristianoSantos3266/MarchaBrasil-main-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/mock"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// testStore wires a full store over a throwaway bolt file. notified
// counts change notifications so tests can assert fan-out batching;
// callbacks run after the store mutex is released, so concurrent
// mutators fire them concurrently and the counter must be atomic.
type testStore struct {
	events   *EventService
	sessions *SessionService
	kv       *repository.BoltKV
	repo     *repository.EventRepository
	thumbs   *repository.ThumbnailRepository
	hub      *notifier.Notifier
	notified *atomic.Int64
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()
	log := newTestLogger(t)

	db, err := bbolt.Open(filepath.Join(t.TempDir(), "store.db"), 0o600, &bbolt.Options{Timeout: time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	kv, err := repository.NewBoltKV(db, "test", 0, log)
	require.NoError(t, err)

	eventRepo := repository.NewEventRepo(kv, "events", log)
	thumbRepo := repository.NewThumbnailRepo(kv, "thumbnails", log)
	verifyRepo := repository.NewVerificationRepo(kv, "rsvp-verification-", log)
	sessionRepo := repository.NewSessionRepo(kv, "session-identity", log)

	n := notifier.New(log)
	var notified atomic.Int64
	n.Subscribe(func() { notified.Add(1) })

	sessions := NewSessionService(sessionRepo, log)
	events := NewEventService(eventRepo, thumbRepo, verifyRepo, sessions, n, log)

	return &testStore{
		events:   events,
		sessions: sessions,
		kv:       kv,
		repo:     eventRepo,
		thumbs:   thumbRepo,
		hub:      n,
		notified: &notified,
	}
}

func carreataSubmission() domain.Submission {
	return domain.Submission{
		Title:              "Carreata da Liberdade",
		Description:        "Concentração às 9h",
		Type:               domain.EventTypeCarreata,
		Date:               "2026-09-07",
		Time:               "09:00",
		MeetingPoint:       "Av. Paulista, 1000",
		City:               "São Paulo",
		State:              "SP",
		ExpectedAttendance: "1000",
	}
}

func TestEventService_Create_Single(t *testing.T) {
	ts := newTestStore(t)

	created, err := ts.events.Create(context.Background(), carreataSubmission())

	require.NoError(t, err)
	require.Len(t, created, 1)

	rec := created[0]
	assert.Equal(t, "Carreata da Liberdade", rec.Title)
	assert.Equal(t, "SP", rec.Region)
	assert.Equal(t, "Brasil", rec.Country)
	assert.Equal(t, []float64{-46.6333, -23.5505}, rec.Coordinates)
	assert.Equal(t, map[domain.RSVPKey]int{domain.RSVPCarros: 0, domain.RSVPPopulacao: 0}, rec.RSVPs)
	assert.Equal(t, 1000, rec.OriginalEstimate)
	assert.Equal(t, 0, rec.ConfirmedParticipants)
	assert.Nil(t, rec.GrowthStartedAt)
	assert.False(t, rec.GrowthCompleted)
	assert.NotEmpty(t, rec.CreatedBy)
	assert.EqualValues(t, 1, ts.notified.Load())
}

func TestEventService_Create_UnknownRegionFallsBack(t *testing.T) {
	ts := newTestStore(t)

	sub := carreataSubmission()
	sub.State = "ZZ"
	created, err := ts.events.Create(context.Background(), sub)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCoordinates, created[0].Coordinates)
}

func TestEventService_Create_International(t *testing.T) {
	ts := newTestStore(t)

	sub := carreataSubmission()
	sub.IsInternational = true
	sub.Country = "Portugal"
	sub.City = "Lisboa"
	sub.State = ""

	created, err := ts.events.Create(context.Background(), sub)

	require.NoError(t, err)
	assert.Equal(t, []float64{-9.1393, 38.7223}, created[0].Coordinates)
	assert.Equal(t, "Portugal", created[0].Country)
}

func TestEventService_Create_EmptyTitle(t *testing.T) {
	ts := newTestStore(t)

	sub := carreataSubmission()
	sub.Title = "  "
	_, err := ts.events.Create(context.Background(), sub)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_UnknownType(t *testing.T) {
	ts := newTestStore(t)

	sub := carreataSubmission()
	sub.Type = "passeata"
	_, err := ts.events.Create(context.Background(), sub)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownEventType)
}

func TestEventService_Create_NationalFanOut(t *testing.T) {
	ts := newTestStore(t)

	sub := carreataSubmission()
	sub.IsNational = true
	sub.Thumbnail = "data:image/png;base64,AAAA"

	created, err := ts.events.Create(context.Background(), sub)

	require.NoError(t, err)
	require.Len(t, created, len(domain.BrazilRegions))

	seen := make(map[string]bool)
	for i, rec := range created {
		region := domain.BrazilRegions[i]

		assert.False(t, seen[rec.ID], "duplicate id %s", rec.ID)
		seen[rec.ID] = true

		assert.Equal(t, "Carreata da Liberdade - "+region.Capital, rec.Title)
		assert.Contains(t, rec.Description, "Evento nacional simultâneo")
		assert.Equal(t, region.Capital, rec.City)
		assert.Equal(t, region.Code, rec.Region)
		assert.Equal(t, region.Coordinates, rec.Coordinates)

		blob, ok := ts.events.Thumbnail(context.Background(), rec.ID)
		require.True(t, ok, "thumbnail missing for %s", rec.ID)
		assert.Equal(t, sub.Thumbnail, blob)
	}

	assert.Len(t, ts.events.List(context.Background()), len(domain.BrazilRegions))
	assert.EqualValues(t, 1, ts.notified.Load(), "one fan-out, one notification")
}

func TestEventService_GetByID(t *testing.T) {
	ts := newTestStore(t)

	created, err := ts.events.Create(context.Background(), carreataSubmission())
	require.NoError(t, err)

	found := ts.events.GetByID(context.Background(), created[0].ID)
	require.NotNil(t, found)
	assert.Equal(t, created[0].ID, found.ID)

	assert.Nil(t, ts.events.GetByID(context.Background(), "missing"))
}

func TestEventService_Update(t *testing.T) {
	ts := newTestStore(t)

	created, err := ts.events.Create(context.Background(), carreataSubmission())
	require.NoError(t, err)
	id := created[0].ID

	title := "Carreata pela Anistia"
	thumb := "data:image/png;base64,BBBB"
	ok := ts.events.Update(context.Background(), id, domain.EventPatch{
		Title:     &title,
		Thumbnail: &thumb,
	})

	require.True(t, ok)
	rec := ts.events.GetByID(context.Background(), id)
	assert.Equal(t, "Carreata pela Anistia", rec.Title)
	assert.Equal(t, "Concentração às 9h", rec.Description, "unpatched fields untouched")
	assert.False(t, rec.UpdatedAt.Before(rec.CreatedAt))

	blob, found := ts.events.Thumbnail(context.Background(), id)
	require.True(t, found)
	assert.Equal(t, thumb, blob)
}

func TestEventService_Update_ThumbnailVisibleOnNotify(t *testing.T) {
	ts := newTestStore(t)

	created, err := ts.events.Create(context.Background(), carreataSubmission())
	require.NoError(t, err)
	id := created[0].ID

	// An observer re-reading on the update notification must already
	// see the patched blob.
	var seen string
	unsubscribe := ts.hub.Subscribe(func() {
		seen, _ = ts.events.Thumbnail(context.Background(), id)
	})
	defer unsubscribe()

	thumb := "data:image/png;base64,CCCC"
	require.True(t, ts.events.Update(context.Background(), id, domain.EventPatch{Thumbnail: &thumb}))

	assert.Equal(t, thumb, seen)
}

func TestEventService_Update_NotFound(t *testing.T) {
	ts := newTestStore(t)

	before := ts.notified.Load()
	title := "x"
	ok := ts.events.Update(context.Background(), "missing", domain.EventPatch{Title: &title})

	assert.False(t, ok)
	assert.Equal(t, before, ts.notified.Load(), "failed update must not notify")
}

func TestEventService_Delete_Cascade(t *testing.T) {
	ts := newTestStore(t)

	sub := carreataSubmission()
	sub.Thumbnail = "blob"
	created, err := ts.events.Create(context.Background(), sub)
	require.NoError(t, err)
	id := created[0].ID

	require.True(t, ts.events.Delete(context.Background(), id))

	assert.Nil(t, ts.events.GetByID(context.Background(), id))
	_, found := ts.events.Thumbnail(context.Background(), id)
	assert.False(t, found)
}

func TestEventService_Delete_NotFound(t *testing.T) {
	ts := newTestStore(t)

	assert.False(t, ts.events.Delete(context.Background(), "missing"))
}

func TestEventService_AddRSVP_Monotonic(t *testing.T) {
	ts := newTestStore(t)

	created, err := ts.events.Create(context.Background(), carreataSubmission())
	require.NoError(t, err)
	id := created[0].ID

	for i := 0; i < 5; i++ {
		require.True(t, ts.events.AddRSVP(context.Background(), id, "carro", ""))
	}
	require.True(t, ts.events.AddRSVP(context.Background(), id, "populacao", ""))

	rec := ts.events.GetByID(context.Background(), id)
	assert.Equal(t, 5, rec.RSVPs[domain.RSVPCarros])
	assert.Equal(t, 1, rec.RSVPs[domain.RSVPPopulacao])
}

func TestEventService_AddRSVP_UnknownParticipant(t *testing.T) {
	ts := newTestStore(t)

	created, err := ts.events.Create(context.Background(), carreataSubmission())
	require.NoError(t, err)
	id := created[0].ID

	ok := ts.events.AddRSVP(context.Background(), id, "paraquedista", "")

	assert.False(t, ok)
	assert.Equal(t, 0, ts.events.GetByID(context.Background(), id).TotalRSVPs())
}

func TestEventService_AddRSVP_CategoryNotCarriedByType(t *testing.T) {
	ts := newTestStore(t)

	// Uma carreata não carrega contador de motociclistas.
	created, err := ts.events.Create(context.Background(), carreataSubmission())
	require.NoError(t, err)
	id := created[0].ID

	require.True(t, ts.events.AddRSVP(context.Background(), id, "carro", ""))
	require.True(t, ts.events.AddRSVP(context.Background(), id, "carro", ""))
	ok := ts.events.AddRSVP(context.Background(), id, "motociclista", "")

	assert.False(t, ok)
	rec := ts.events.GetByID(context.Background(), id)
	assert.Equal(t, 2, rec.RSVPs[domain.RSVPCarros])
	assert.NotContains(t, rec.RSVPs, domain.RSVPMotociclistas)
}

func TestEventService_AddRSVP_Motociata(t *testing.T) {
	ts := newTestStore(t)

	sub := carreataSubmission()
	sub.Type = domain.EventTypeMotociata
	created, err := ts.events.Create(context.Background(), sub)
	require.NoError(t, err)
	id := created[0].ID

	require.True(t, ts.events.AddRSVP(context.Background(), id, "motociclista", ""))
	require.True(t, ts.events.AddRSVP(context.Background(), id, "motociclista", ""))

	assert.Equal(t, 2, ts.events.GetByID(context.Background(), id).RSVPs[domain.RSVPMotociclistas])
}

func TestEventService_AddRSVP_VerificationLog(t *testing.T) {
	ts := newTestStore(t)

	created, err := ts.events.Create(context.Background(), carreataSubmission())
	require.NoError(t, err)
	id := created[0].ID

	require.True(t, ts.events.AddRSVP(context.Background(), id, "carro", "+55 11 98888-0000"))
	require.True(t, ts.events.AddRSVP(context.Background(), id, "carro", ""))

	entries := ts.events.Verifications(context.Background(), id)
	require.Len(t, entries, 1, "only verified RSVPs log an entry")
	assert.Equal(t, "carro", entries[0].ParticipantCategory)
	assert.Equal(t, "+55 11 98888-0000", entries[0].Verification)

	assert.Equal(t, 2, ts.events.GetByID(context.Background(), id).RSVPs[domain.RSVPCarros],
		"verification log never feeds the counter")
}

func TestEventService_AddRSVP_ConcurrentIncrements(t *testing.T) {
	ts := newTestStore(t)

	created, err := ts.events.Create(context.Background(), carreataSubmission())
	require.NoError(t, err)
	id := created[0].ID

	// Cliques em sequência: each increment re-reads before its own write.
	const clicks = 20
	var wg sync.WaitGroup
	for i := 0; i < clicks; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ts.events.AddRSVP(context.Background(), id, "populacao", "")
		}()
	}
	wg.Wait()

	assert.Equal(t, clicks, ts.events.GetByID(context.Background(), id).RSVPs[domain.RSVPPopulacao])
}

func TestEventService_AddRSVP_ConcurrentVerifications(t *testing.T) {
	ts := newTestStore(t)

	created, err := ts.events.Create(context.Background(), carreataSubmission())
	require.NoError(t, err)
	id := created[0].ID

	// The log append re-reads the whole per-event array, so it must
	// ride the same critical section as the counter or interleaved
	// appends overwrite each other.
	const clicks = 50
	var wg sync.WaitGroup
	for i := 0; i < clicks; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ts.events.AddRSVP(context.Background(), id, "populacao", fmt.Sprintf("+55 11 9%04d-0000", i))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, clicks, ts.events.GetByID(context.Background(), id).RSVPs[domain.RSVPPopulacao])
	assert.Len(t, ts.events.Verifications(context.Background(), id), clicks)
}

func TestEventService_List_MigratesCoordinates(t *testing.T) {
	ts := newTestStore(t)

	// Persist a legacy record with no coordinates, as older versions
	// stored them.
	legacy := []*domain.EventRecord{
		{ID: "event-old-1", Title: "Ato na Paulista", Type: domain.EventTypeManifestacao, Region: "SP"},
		{ID: "event-old-2", Title: "Ato sem estado", Type: domain.EventTypeManifestacao, Region: "Atlântida"},
	}
	require.True(t, ts.repo.SaveAll(context.Background(), legacy))

	listed := ts.events.List(context.Background())
	require.Len(t, listed, 2)
	assert.Equal(t, []float64{-46.6333, -23.5505}, listed[0].Coordinates)
	assert.Equal(t, domain.DefaultCoordinates, listed[1].Coordinates)
	assert.NotNil(t, listed[0].RSVPs, "missing rsvps seeded with zeroed defaults")

	// Idempotent: the second read returns identical fields without
	// re-deriving anything.
	again := ts.events.List(context.Background())
	require.Len(t, again, 2)
	assert.Equal(t, listed[0].Coordinates, again[0].Coordinates)
	assert.Equal(t, listed[1].Coordinates, again[1].Coordinates)

	// And the migrated state was re-persisted.
	persisted := ts.repo.LoadAll(context.Background())
	assert.Equal(t, []float64{-46.6333, -23.5505}, persisted[0].Coordinates)
}

func TestEventService_List_CorruptState(t *testing.T) {
	ts := newTestStore(t)

	created, err := ts.events.Create(context.Background(), carreataSubmission())
	require.NoError(t, err)
	require.Len(t, created, 1)

	// Simulate a corrupt persisted payload; the store falls back to an
	// empty collection instead of propagating a parse error.
	require.True(t, ts.kv.Write(context.Background(), "events", "{truncated"))

	assert.NotPanics(t, func() {
		assert.Empty(t, ts.events.List(context.Background()))
	})
}

func TestEventService_Update_SaveDegrades(t *testing.T) {
	// Mock-based: a repo whose save degrades must still leave Update
	// reporting the mutation (persistence is best-effort by contract).
	eventRepo := mocks.NewMockEventRepo(t)
	n := mocks.NewMockChangeNotifier(t)
	log := newTestLogger(t)

	rec := &domain.EventRecord{ID: "event-1", Title: "Ato", Type: domain.EventTypeManifestacao}
	eventRepo.EXPECT().LoadAll(mock.Anything).Return([]*domain.EventRecord{rec})
	eventRepo.EXPECT().SaveAll(mock.Anything, mock.Anything).Return(false)
	n.EXPECT().Notify()

	svc := NewEventService(eventRepo, nil, nil, nil, n, log)

	title := "Ato pela Democracia"
	ok := svc.Update(context.Background(), "event-1", domain.EventPatch{Title: &title})

	assert.True(t, ok)
}
