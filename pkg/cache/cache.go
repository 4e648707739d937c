// Package cache provides caching for rendered dashboard artifacts.
//
// Building a body is cheap, but rendered artifacts (SVG trees, large JSON
// documents) are worth reusing, and the registry server serves the same
// dashboards repeatedly. The package offers three backends behind one
// interface: a file cache for CLI usage, a Redis cache for the server, and a
// null cache to disable caching entirely.
//
// Keys are derived from the SHA-256 hash of the definition source plus the
// options that affect the output, so any change to either invalidates the
// entry naturally.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the expiration applied when callers pass a zero TTL.
const DefaultTTL = 24 * time.Hour

// Cache stores rendered artifacts keyed by content hash.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL applies DefaultTTL;
	// a negative TTL stores without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// BodyKeyOpts are the options that affect a built body document.
type BodyKeyOpts struct {
	Region string
}

// ArtifactKeyOpts are the options that affect a rendered artifact.
type ArtifactKeyOpts struct {
	Format  string
	Region  string
	Compact bool
}

// BodyKey builds the cache key for a body document computed from the
// definition with the given hash.
func BodyKey(definitionHash string, opts BodyKeyOpts) string {
	return hashKey("body", definitionHash, opts)
}

// ArtifactKey builds the cache key for a rendered artifact of the definition
// with the given hash.
func ArtifactKey(definitionHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", definitionHash, opts)
}
