package domain

import "time"

// SessionIdentity is the stable pseudonymous identity of this client,
// created once and reused to stamp EventRecord.CreatedBy.
type SessionIdentity struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}
