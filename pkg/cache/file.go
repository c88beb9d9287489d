package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/kanau/tetracard/pkg/errors"
)

// FileCache persists entries under a directory so cached API payloads and
// encoded cards survive across CLI invocations. Each entry is one JSON file
// carrying the payload and its expiry; keys are hashed into a two-level
// directory layout to keep fan-out bounded.
type FileCache struct {
	root string
}

// NewFileCache opens a file cache rooted at dir, creating the directory when
// missing. Failure to open reports RESOURCE_UNAVAILABLE; callers typically
// degrade to a NullCache rather than aborting.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeResourceUnavailable, err, "open cache directory %s", dir)
	}
	return &FileCache{root: dir}, nil
}

// fileEntry is the on-disk envelope: the cached payload plus its expiry
// instant. A zero expiry means the entry never expires.
type fileEntry struct {
	Payload   []byte    `json:"payload"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

func (e fileEntry) expired() bool {
	return !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt)
}

// Get returns the payload stored under key. Corrupt and expired entry files
// are removed and reported as misses, so a damaged cache heals itself on
// lookup instead of failing requests.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.entryPath(key)

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(errors.ErrCodeResourceUnavailable, err, "read cache entry")
	}

	var entry fileEntry
	if err := json.Unmarshal(raw, &entry); err != nil || entry.expired() {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return entry.Payload, true, nil
}

// Set stores data under key for ttl.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := fileEntry{Payload: data}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode cache entry")
	}

	path := c.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeResourceUnavailable, err, "create cache shard")
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeResourceUnavailable, err, "write cache entry")
	}
	return nil
}

// Delete removes the entry for key; a missing entry is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.entryPath(key))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeResourceUnavailable, err, "delete cache entry")
	}
	return nil
}

// Close is a no-op; entries stay on disk for the next invocation.
func (c *FileCache) Close() error {
	return nil
}

// entryPath shards entries by the first hash byte: <root>/ab/cdef....json.
func (c *FileCache) entryPath(key string) string {
	sum := Hash([]byte(key))
	return filepath.Join(c.root, sum[:2], sum[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
