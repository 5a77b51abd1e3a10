package cmd

import (
	"os"
	"sync"
	"time"

	"github.com/lcereceda/accessnav/internal/platform"
)

// snapshotCacheEntry holds a parsed snapshot with its timestamp.
type snapshotCacheEntry struct {
	snap      *platform.Snapshot
	timestamp time.Time
}

// snapshotCache is a TTL-based cache for parsed container snapshots, so a
// burst of tool calls against the same snapshot parses it once.
type snapshotCache struct {
	mu      sync.Mutex
	entries map[string]snapshotCacheEntry
	ttl     time.Duration
}

// newSnapshotCache creates a cache. A ttl of 0 disables caching.
func newSnapshotCache(ttl time.Duration) *snapshotCache {
	return &snapshotCache{
		entries: make(map[string]snapshotCacheEntry),
		ttl:     ttl,
	}
}

// load returns the cached snapshot for a path if within TTL, otherwise
// reads and parses fresh.
func (c *snapshotCache) load(path string) (*platform.Snapshot, error) {
	if c.ttl == 0 {
		return readSnapshotFile(path)
	}

	c.mu.Lock()
	if entry, ok := c.entries[path]; ok && time.Since(entry.timestamp) < c.ttl {
		snap := entry.snap
		c.mu.Unlock()
		return snap, nil
	}
	c.mu.Unlock()

	snap, err := readSnapshotFile(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[path] = snapshotCacheEntry{snap: snap, timestamp: time.Now()}
	c.mu.Unlock()

	return snap, nil
}

// invalidate removes the cache entry for a path.
func (c *snapshotCache) invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}

// invalidateAll clears the entire cache.
func (c *snapshotCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]snapshotCacheEntry)
}

func readSnapshotFile(path string) (*platform.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return platform.ParseSnapshot(data)
}
