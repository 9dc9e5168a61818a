package globre

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a fixed-size LRU of compiled patterns, for callers that compile
// the same patterns repeatedly, such as servers evaluating rule sets against
// incoming paths. A Cache is safe for concurrent use.
type Cache struct {
	entries *lru.Cache[string, *Pattern]
}

// NewCache makes a Cache holding up to size compiled patterns. size must be
// positive.
func NewCache(size int) (*Cache, error) {
	entries, err := lru.New[string, *Pattern](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Compile is like [Compile], but returns the previously compiled pattern
// when the same pattern text and options were seen before. Failed compiles
// are not cached; they fail fast during tokenising or parsing.
func (c *Cache) Compile(pattern string, opts ...Option) (*Pattern, error) {
	cfg := defaultConfig
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(&cfg)
	}
	key := cfg.fingerprint() + "\x00" + pattern
	if p, ok := c.entries.Get(key); ok {
		return p, nil
	}
	p, cerr := compileWith(pattern, &cfg)
	if cerr != nil {
		return nil, cerr
	}
	c.entries.Add(key, p)
	return p, nil
}

// Match compiles pattern through the cache and matches name against it.
func (c *Cache) Match(pattern, name string, opts ...Option) (bool, error) {
	p, err := c.Compile(pattern, opts...)
	if err != nil {
		return false, err
	}
	return p.Match(name), nil
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int { return c.entries.Len() }

// Purge empties the cache.
func (c *Cache) Purge() { c.entries.Purge() }
