package ports

import "context"

// DocumentCache stores raw API response bodies keyed by request identity.
// Get returns domain.ErrCacheMiss when the key is absent or expired.
type DocumentCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}
