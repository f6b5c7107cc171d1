package watcher

import (
	"sync"
	"unique"

	"go.trai.ch/assetpipe/internal/core/ports"
)

// DigestCache remembers the content digest of every file seen by a watcher.
// Editors often rewrite a file without changing it; such writes are dropped.
type DigestCache struct {
	mu      sync.Mutex
	hasher  ports.Hasher
	digests map[unique.Handle[string]]uint64
}

// NewDigestCache creates an empty cache.
func NewDigestCache(hasher ports.Hasher) *DigestCache {
	return &DigestCache{
		hasher:  hasher,
		digests: make(map[unique.Handle[string]]uint64),
	}
}

// Prime records the current digest of path without reporting a change.
func (c *DigestCache) Prime(path string) {
	digest, err := c.hasher.HashFile(path)
	if err != nil {
		return
	}
	c.mu.Lock()
	c.digests[unique.Make(path)] = digest
	c.mu.Unlock()
}

// Changed returns the paths whose content differs from the recorded digest.
// Paths that can no longer be read were removed and always count as changed.
func (c *DigestCache) Changed(paths []string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := make([]string, 0, len(paths))
	for _, path := range paths {
		key := unique.Make(path)
		digest, err := c.hasher.HashFile(path)
		if err != nil {
			delete(c.digests, key)
			changed = append(changed, path)
			continue
		}
		if prev, ok := c.digests[key]; ok && prev == digest {
			continue
		}
		c.digests[key] = digest
		changed = append(changed, path)
	}
	return changed
}
