// Package hashing provides Zobrist position keys and the evaluation cache
// the search uses to avoid re-scoring repeated leaf positions.
package hashing

// EvalCache memoises static evaluations by position key. It belongs to a
// single search and is not safe for concurrent use.
type EvalCache struct {
	table map[uint64]float64
	// maxCapacity limits the number of stored entries (0 = unlimited).
	maxCapacity int
	hits        int
	misses      int
}

// NewEvalCache creates an empty cache. maxCapacity of 0 means unlimited;
// once full, new entries are dropped while lookups keep working.
func NewEvalCache(maxCapacity int) *EvalCache {
	return &EvalCache{
		table:       make(map[uint64]float64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the cached evaluation for key.
func (c *EvalCache) Lookup(key uint64) (float64, bool) {
	v, ok := c.table[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}

// Store records an evaluation. It is a no-op when the cache is full.
func (c *EvalCache) Store(key uint64, eval float64) {
	if c.IsFull() {
		if _, ok := c.table[key]; !ok {
			return
		}
	}
	c.table[key] = eval
}

// IsFull reports whether the cache has reached its capacity.
func (c *EvalCache) IsFull() bool {
	return c.maxCapacity > 0 && len(c.table) >= c.maxCapacity
}

// Len returns the number of stored entries.
func (c *EvalCache) Len() int {
	return len(c.table)
}

// Hits returns the number of successful lookups since the last Reset.
func (c *EvalCache) Hits() int {
	return c.hits
}

// Misses returns the number of failed lookups since the last Reset.
func (c *EvalCache) Misses() int {
	return c.misses
}

// Reset clears all entries and counters.
func (c *EvalCache) Reset() {
	c.table = make(map[uint64]float64)
	c.hits = 0
	c.misses = 0
}
