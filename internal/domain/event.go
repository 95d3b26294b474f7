package domain

import "time"

// EventType categorizes a civic event and determines which RSVP
// counters the event carries.
type EventType string

const (
	EventTypeManifestacao  EventType = "manifestacao"
	EventTypeCarreata      EventType = "carreata"
	EventTypeMotociata     EventType = "motociata"
	EventTypeCaminhoneiros EventType = "caminhoneiros"
	EventTypeBuzinaco      EventType = "buzinaco"
)

// RSVPKey is an internal counter key inside EventRecord.RSVPs.
type RSVPKey string

const (
	RSVPCaminhoneiros RSVPKey = "caminhoneiros"
	RSVPMotociclistas RSVPKey = "motociclistas"
	RSVPCarros        RSVPKey = "carros"
	RSVPPopulacao     RSVPKey = "populacao"
)

// rsvpKeysByType is the single source of truth for which counters an
// event type carries. Creation seeds zeroed counters from it and RSVP
// increments validate against it.
var rsvpKeysByType = map[EventType][]RSVPKey{
	EventTypeManifestacao:  {RSVPPopulacao},
	EventTypeCarreata:      {RSVPCarros, RSVPPopulacao},
	EventTypeMotociata:     {RSVPMotociclistas, RSVPPopulacao},
	EventTypeCaminhoneiros: {RSVPCaminhoneiros, RSVPPopulacao},
	EventTypeBuzinaco:      {RSVPPopulacao},
}

// rsvpKeyByParticipant maps the public-facing participant type (as the
// UI submits it) to the internal counter key.
var rsvpKeyByParticipant = map[string]RSVPKey{
	"caminhoneiro": RSVPCaminhoneiros,
	"motociclista": RSVPMotociclistas,
	"carro":        RSVPCarros,
	"populacao":    RSVPPopulacao,
}

// RSVPKeysForType reports the counter keys an event type carries.
func RSVPKeysForType(t EventType) ([]RSVPKey, bool) {
	keys, ok := rsvpKeysByType[t]
	return keys, ok
}

// RSVPKeyForParticipant converts a public participant type to its
// internal counter key.
func RSVPKeyForParticipant(participant string) (RSVPKey, bool) {
	key, ok := rsvpKeyByParticipant[participant]
	return key, ok
}

// NewRSVPs seeds an all-zero counter map for the given event type.
// Unknown types get no counters.
func NewRSVPs(t EventType) map[RSVPKey]int {
	keys, ok := rsvpKeysByType[t]
	if !ok {
		return map[RSVPKey]int{}
	}
	rsvps := make(map[RSVPKey]int, len(keys))
	for _, k := range keys {
		rsvps[k] = 0
	}
	return rsvps
}

// EventRecord is a persisted civic event. Coordinates are [lon, lat];
// they may be absent on records persisted before coordinates existed
// and are forward-filled on the next List.
type EventRecord struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	City             string    `json:"city"`
	Region           string    `json:"region"`
	Country          string    `json:"country"`
	Date             string    `json:"date"` // canonical YYYY-MM-DD
	Time             string    `json:"time"` // canonical HH:MM
	Location         string    `json:"location"`
	FinalDestination string    `json:"finalDestination,omitempty"`
	Coordinates      []float64 `json:"coordinates,omitempty"`

	Type  EventType       `json:"type"`
	RSVPs map[RSVPKey]int `json:"rsvps,omitempty"`

	WhatsappContact string `json:"whatsappContact,omitempty"`

	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ExpectedAttendance    int        `json:"expectedAttendance,omitempty"`
	ConfirmedParticipants int        `json:"confirmedParticipants"`
	OriginalEstimate      int        `json:"originalEstimate,omitempty"`
	GrowthStartedAt       *time.Time `json:"growthStartedAt,omitempty"`
	GrowthCompleted       bool       `json:"growthCompleted"`
}

// TotalRSVPs sums every counter for display.
func (e *EventRecord) TotalRSVPs() int {
	total := 0
	for _, n := range e.RSVPs {
		total += n
	}
	return total
}

// Submission is a validated form submission for creating one event, or
// one event per federative unit when IsNational is set.
type Submission struct {
	Title              string
	Description        string
	Type               EventType
	Date               string
	Time               string
	MeetingPoint       string
	FinalDestination   string
	City               string
	State              string
	Country            string
	IsNational         bool
	IsInternational    bool
	ExpectedAttendance string
	WhatsappContact    string
	Thumbnail          string
}

// EventPatch carries the editable core fields for Update. Nil pointers
// leave the field untouched.
type EventPatch struct {
	Title            *string
	Description      *string
	Type             *EventType
	Date             *string
	Time             *string
	Location         *string
	City             *string
	Region           *string
	Country          *string
	FinalDestination *string
	Thumbnail        *string
}

// VerificationEntry is one line of the append-only RSVP verification
// log. Informational only; it never feeds back into any counter.
type VerificationEntry struct {
	ParticipantCategory string    `json:"participantCategory"`
	Verification        string    `json:"verification"`
	Timestamp           time.Time `json:"timestamp"`
}
