package ports

import "context"

// KV is the persistence adapter contract. Implementations never
// propagate storage errors: a failed read is absent, a failed write or
// remove reports false after logging.
type KV interface {
	Read(ctx context.Context, key string) (string, bool)
	Write(ctx context.Context, key, value string) bool
	Remove(ctx context.Context, key string) bool
}
