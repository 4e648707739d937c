package cache

import (
	"context"
	"time"
)

// Scoped wraps a Cache with a key prefix, isolating namespaces that share
// one backend. The registry server scopes the shared cache per dashboard so
// deleting a dashboard can't collide with another's artifacts.
//
// Example:
//
//	shared, _ := cache.NewRedisCache(ctx, "localhost:6379")
//	perDash := cache.NewScoped(shared, "dash:"+id+":")
type Scoped struct {
	inner  Cache
	prefix string
}

// NewScoped creates a prefixed view over inner. A nil inner falls back to
// the null cache.
func NewScoped(inner Cache, prefix string) *Scoped {
	if inner == nil {
		inner = NewNullCache()
	}
	return &Scoped{inner: inner, prefix: prefix}
}

// Get retrieves a value under the scope prefix.
func (c *Scoped) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.inner.Get(ctx, c.prefix+key)
}

// Set stores a value under the scope prefix.
func (c *Scoped) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.inner.Set(ctx, c.prefix+key, data, ttl)
}

// Delete removes a value under the scope prefix.
func (c *Scoped) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, c.prefix+key)
}

// Close is a no-op: the scoped view does not own the underlying backend.
func (c *Scoped) Close() error {
	return nil
}

var _ Cache = (*Scoped)(nil)
