// Package credentials persists the two opaque token secrets across process
// restarts.
package credentials

import "context"

// Well-known keys. No other keys are ever written.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
)

// Repository is a durable key-value store for token secrets.
//
// Get returns an empty string (and no error) when the key is absent. Set and
// Remove are idempotent. The store gives no transactional coupling between
// the two keys; the session manager orders its reads and writes to preserve
// its own invariants.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}
