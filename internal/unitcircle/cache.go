package unitcircle

// DefaultCapacity is the soft limit used by renderers: few scenes use more
// than a handful of distinct segment counts.
const DefaultCapacity = 16

// Cache maps segment counts to tables with a soft limit. When the limit is
// exceeded the least recently used quarter of the tables is evicted.
type Cache struct {
	entries   map[int]*cacheEntry
	softLimit int
	tick      int64 // monotonic access counter

	hits      uint64
	misses    uint64
	evictions uint64
}

type cacheEntry struct {
	table Table
	atime int64
}

// NewCache creates a cache holding about softLimit tables. A softLimit of
// 0 means unlimited.
func NewCache(softLimit int) *Cache {
	return &Cache{
		entries:   make(map[int]*cacheEntry),
		softLimit: softLimit,
	}
}

// Get returns the table for segments, building and caching it on a miss.
// segments <= 0 returns nil and is never cached.
func (c *Cache) Get(segments int) Table {
	if segments <= 0 {
		return nil
	}

	c.tick++
	if e, ok := c.entries[segments]; ok {
		e.atime = c.tick
		c.hits++
		return e.table
	}

	c.misses++
	t := NewTable(segments)
	c.entries[segments] = &cacheEntry{table: t, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return t
}

// Len returns the number of cached tables.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Clear drops all tables. Counters are kept.
func (c *Cache) Clear() {
	clear(c.entries)
	c.tick = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() Stats {
	s := Stats{
		Len:       len(c.entries),
		Capacity:  c.softLimit,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// evictOldest shrinks the cache to three quarters of the soft limit,
// least recently used first.
func (c *Cache) evictOldest() {
	target := max(c.softLimit*3/4, 1)
	toEvict := len(c.entries) - target
	if toEvict <= 0 {
		return
	}

	type aged struct {
		key   int
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{key: k, atime: e.atime})
	}

	// Partial selection sort; toEvict is small.
	for i := 0; i < toEvict; i++ {
		oldest := i
		for j := i + 1; j < len(all); j++ {
			if all[j].atime < all[oldest].atime {
				oldest = j
			}
		}
		all[i], all[oldest] = all[oldest], all[i]
		delete(c.entries, all[i].key)
		c.evictions++
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of tables.
	Len int
	// Capacity is the soft limit.
	Capacity int
	// Hits and Misses count Get calls with segments > 0.
	Hits   uint64
	Misses uint64
	// HitRate is Hits / (Hits + Misses), 0 before the first Get.
	HitRate float64
	// Evictions is the number of tables dropped to honor the soft limit.
	Evictions uint64
}
