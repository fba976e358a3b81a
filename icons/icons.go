package icons

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the cache when the configured size is not
// positive.
const DefaultCacheSize = 128

// Icon is a decoded display icon keyed by the entry identity that owns
// it. Data is the encoded image as served to the UI.
type Icon struct {
	Data     []byte
	MimeType string
}

// Cache keeps recently used entry icons in memory so redrawing a result
// list does not hit the icon loader again. The cache can be disabled at
// runtime; disabling releases everything held.
type Cache struct {
	mu      sync.Mutex
	enabled bool
	lru     *lru.Cache[string, Icon]
}

// NewCache creates an icon cache holding at most size icons. A
// non-positive size falls back to DefaultCacheSize.
func NewCache(size int, enabled bool) (*Cache, error) {
	if size < 1 {
		size = DefaultCacheSize
	}
	backing, err := lru.New[string, Icon](size)
	if err != nil {
		return nil, err
	}
	return &Cache{enabled: enabled, lru: backing}, nil
}

// Enabled reports whether the cache currently retains icons.
func (c *Cache) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// SetEnabled toggles the cache. Disabling purges every held icon so a
// later re-enable starts cold.
func (c *Cache) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.enabled && !enabled {
		c.lru.Purge()
	}
	c.enabled = enabled
}

// Put stores the icon for an entry identity. No-op while disabled.
func (c *Cache) Put(entryID string, icon Icon) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return
	}
	c.lru.Add(entryID, icon)
}

// Get returns the cached icon for an entry identity.
func (c *Cache) Get(entryID string) (Icon, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return Icon{}, false
	}
	return c.lru.Get(entryID)
}

// Remove drops the icon for an entry identity, if held.
func (c *Cache) Remove(entryID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Remove(entryID)
}

// Len reports the number of icons held.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}
