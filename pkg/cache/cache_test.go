package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kanau/tetracard/pkg/errors"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	defer c.Close()

	if err := c.Set(ctx, "card:abc", []byte("png-bytes"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	data, hit, err := c.Get(ctx, "card:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if string(data) != "png-bytes" {
		t.Errorf("Get data = %q, want %q", data, "png-bytes")
	}

	// Unknown key misses
	if _, hit, _ := c.Get(ctx, "card:missing"); hit {
		t.Error("unknown key should miss")
	}

	// Delete removes the entry
	if err := c.Delete(ctx, "card:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "card:abc"); hit {
		t.Error("deleted key should miss")
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); !hit {
		t.Fatal("entry should be live before TTL elapses")
	}

	time.Sleep(20 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("entry should expire after TTL")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry should be dropped on Get, Len = %d", c.Len())
	}

	// Zero TTL never expires
	if err := c.Set(ctx, "forever", []byte("v"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("zero-TTL entry should not expire")
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "api:users/osk", []byte(`{"ok":true}`), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	data, hit, err := c.Get(ctx, "api:users/osk")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if string(data) != `{"ok":true}` {
		t.Errorf("Get data = %q", data)
	}

	// Expired entries miss and are removed
	if err := c.Set(ctx, "short", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "short"); hit {
		t.Error("expired file entry should miss")
	}

	// Delete on a missing key is not an error
	if err := c.Delete(ctx, "never-set"); err != nil {
		t.Errorf("Delete on missing key error: %v", err)
	}
}

func TestFileCacheCardPayloadTTL(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Rendered cards are cached under hashed keys with their render options.
	key := NewDefaultKeyer().CardKey("user", "icely", CardKeyOpts{Format: "png", Quality: 90})
	png := []byte("\x89PNG\r\n\x1a\nfake-card-bytes")

	if err := c.Set(ctx, key, png, 25*time.Millisecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit {
		t.Fatalf("Get = hit %v, err %v; want live entry", hit, err)
	}
	if string(data) != string(png) {
		t.Error("card payload round-trip mismatch")
	}

	time.Sleep(50 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("card entry should expire after its TTL")
	}
}

func TestFileCacheHealsCorruptEntry(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "api:general/stats", []byte("{}"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	// Truncate the entry file behind the cache's back.
	fc := c.(*FileCache)
	path := fc.entryPath("api:general/stats")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("corrupt entry: %v", err)
	}

	if _, hit, err := c.Get(ctx, "api:general/stats"); hit || err != nil {
		t.Errorf("corrupt entry should be a clean miss, got hit %v err %v", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry file should be removed on lookup")
	}
}

func TestNewFileCacheUnavailableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "taken")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	// The target path runs through a regular file, so MkdirAll must fail.
	_, err := NewFileCache(filepath.Join(blocker, "cache"))
	if !errors.Is(err, errors.ErrCodeResourceUnavailable) {
		t.Errorf("expected RESOURCE_UNAVAILABLE, got %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// APIKey
	apiKey := k.APIKey("users/osk")
	if apiKey != "api:users/osk" {
		t.Errorf("APIKey unexpected: %s", apiKey)
	}

	// CardKey should include options in hash
	ck1 := k.CardKey("leaderboard", "league", CardKeyOpts{Limit: 10, Format: "png"})
	ck2 := k.CardKey("leaderboard", "league", CardKeyOpts{Limit: 25, Format: "png"})
	if ck1 == ck2 {
		t.Error("Different CardKeyOpts should produce different keys")
	}

	// Same inputs produce the same key
	ck3 := k.CardKey("leaderboard", "league", CardKeyOpts{Limit: 10, Format: "png"})
	if ck1 != ck3 {
		t.Error("CardKey should be deterministic")
	}
}

func TestScopedKeyer(t *testing.T) {
	base := NewDefaultKeyer()
	scoped := NewScopedKeyer(base, "guild123:")

	if got := scoped.APIKey("users/osk"); got != "guild123:api:users/osk" {
		t.Errorf("scoped APIKey = %q", got)
	}

	// nil inner falls back to the default keyer
	fallback := NewScopedKeyer(nil, "p:")
	if got := fallback.APIKey("x"); got != "p:api:x" {
		t.Errorf("fallback APIKey = %q", got)
	}
}
