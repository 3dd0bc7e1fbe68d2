package config

import (
	"sync"

	"github.com/arloliu/chartlink/internal/hash"
)

type cacheEntry struct {
	name  string
	group Group
}

// Cache memoizes merged groups of a Provider.
//
// Entries are keyed by the xxHash64 of the group name. When two names share a
// hash, the later one is merged on every call instead of being cached. Cache is
// safe for concurrent use; the Provider must not change while cached entries
// are in use, or Reset must be called after it does.
type Cache struct {
	provider Provider

	mu      sync.RWMutex
	entries map[uint64]cacheEntry
}

// NewCache creates a cache in front of p.
func NewCache(p Provider) *Cache {
	return &Cache{
		provider: p,
		entries:  make(map[uint64]cacheEntry),
	}
}

// Merge returns the merged group for name, resolving it through Merge on the
// first request. The returned group is a copy owned by the caller.
func (c *Cache) Merge(name string) (Group, error) {
	if name == "" {
		name = DefaultGroup
	}
	id := hash.GroupID(name)

	c.mu.RLock()
	entry, ok := c.entries[id]
	c.mu.RUnlock()
	if ok && entry.name == name {
		return entry.group.Clone(), nil
	}

	merged, err := Merge(c.provider, name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if existing, taken := c.entries[id]; !taken || existing.name == name {
		c.entries[id] = cacheEntry{name: name, group: merged}
	}
	c.mu.Unlock()

	return merged.Clone(), nil
}

// Resolve is like the package-level Resolve but uses cached merged groups.
func (c *Cache) Resolve(name string) (Options, error) {
	merged, err := c.Merge(name)
	if err != nil {
		return Options{}, err
	}

	opts, err := Decode(merged)
	if err != nil {
		return Options{}, err
	}

	return DefaultOptions().Override(opts), nil
}

// Invalidate drops the cached entry for name.
func (c *Cache) Invalidate(name string) {
	id := hash.GroupID(name)

	c.mu.Lock()
	if entry, ok := c.entries[id]; ok && entry.name == name {
		delete(c.entries, id)
	}
	c.mu.Unlock()
}

// Reset drops all cached entries.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.entries = make(map[uint64]cacheEntry)
	c.mu.Unlock()
}

// Len returns the number of cached groups.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
