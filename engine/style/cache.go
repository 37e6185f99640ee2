package style

// MaxCacheEntries limits the size of a parse cache. A full cache is flushed.
const MaxCacheEntries = 1024

type cacheKey struct {
	text string
	env  Environment
}

type cacheEntry struct {
	d     Descriptor
	props Property
}

// Cache memoizes Parse results. Immediate-mode clients re-submit identical
// style texts every frame; a cache hit avoids re-parsing them.
//
// The zero value is an empty cache ready to use. Cache is not safe for
// concurrent use.
type Cache struct {
	entries      map[cacheKey]cacheEntry
	hits, misses int
}

// Parse works like package-level Parse, but looks up text and env in the
// cache first.
func (c *Cache) Parse(text string, env Environment) (Descriptor, Property) {
	key := cacheKey{text: text, env: env}
	if e, ok := c.entries[key]; ok {
		c.hits++
		return e.d, e.props
	}
	c.misses++
	d, props := Parse(text, env)
	if c.entries == nil || len(c.entries) >= MaxCacheEntries {
		if len(c.entries) > 0 {
			tracer().Debugf("style cache full, flushing %d entries", len(c.entries))
		}
		c.entries = make(map[cacheKey]cacheEntry, 64)
	}
	c.entries[key] = cacheEntry{d: d, props: props}
	return d, props
}

// Stats returns the number of cache hits and misses.
func (c *Cache) Stats() (hits, misses int) {
	return c.hits, c.misses
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}
