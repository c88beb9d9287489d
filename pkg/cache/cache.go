// Package cache provides TTL caching for stats API responses and rendered
// card images.
//
// Two implementations are provided: a file-backed cache for CLI usage
// (survives across invocations) and an in-memory cache for the preview
// server (fast, process-scoped). A null cache disables caching entirely.
//
// Keys are generated through the Keyer interface so that API responses and
// rendered artifacts live in distinct namespaces and render options are part
// of the key.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores raw bytes under string keys with optional expiry.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// CardKeyOpts captures the render options that affect card output.
// Two renders with different options must never share a cache entry.
type CardKeyOpts struct {
	Mode    string
	Limit   int
	Format  string
	Quality int
}

// Keyer generates cache keys for the different cached artifact types.
type Keyer interface {
	// APIKey generates a key for a stats API response.
	APIKey(endpoint string) string

	// CardKey generates a key for a rendered card image.
	CardKey(kind, subject string, opts CardKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// APIKey generates a key for a stats API response.
func (k *DefaultKeyer) APIKey(endpoint string) string {
	return "api:" + endpoint
}

// CardKey generates a key for a rendered card image.
// Render options are hashed into the key so format or quality changes miss.
func (k *DefaultKeyer) CardKey(kind, subject string, opts CardKeyOpts) string {
	return hashKey("card", kind, subject, opts)
}

// ScopedKeyer wraps a Keyer with a prefix, isolating cache namespaces when
// several renderers share one store (e.g. per-guild caches in a bot host).
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// APIKey generates a prefixed API response key.
func (k *ScopedKeyer) APIKey(endpoint string) string {
	return k.prefix + k.inner.APIKey(endpoint)
}

// CardKey generates a prefixed rendered card key.
func (k *ScopedKeyer) CardKey(kind, subject string, opts CardKeyOpts) string {
	return k.prefix + k.inner.CardKey(kind, subject, opts)
}

// NullCache discards writes and always misses. It backs --no-cache runs and
// the degraded path taken when the cache directory cannot be opened.
type NullCache struct{}

// NewNullCache creates a cache that stores nothing.
func NewNullCache() Cache {
	return &NullCache{}
}

func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

func (c *NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)

// Hash returns the full hex SHA-256 digest of data. File cache entry paths
// are derived from it.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds a "<prefix>:<digest>" key from the JSON encoding of parts,
// so structurally different option sets can never collide.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%s", prefix, Hash(data))
}
