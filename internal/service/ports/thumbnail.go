package ports

import "context"

// ThumbnailRepo keeps large blob payloads out of the primary record
// list, keyed by record id.
type ThumbnailRepo interface {
	Get(ctx context.Context, recordID string) (string, bool)
	Put(ctx context.Context, recordID, blob string) bool
	PutAll(ctx context.Context, recordIDs []string, blob string) bool
	Remove(ctx context.Context, recordID string) bool
}
