package warnsdorff

import (
	"sync"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/movegraph"
)

// cacheKey identifies a memoized tile solution.
type cacheKey struct {
	size board.Size
	dir  movegraph.Direction
}

// Cache memoizes solved stretched tiles by (size, direction). It lives for
// the whole solve (or process), grows monotonically, and is never evicted:
// the number of distinct tile shapes is small and each tile is at most
// 10×10. Insertion is idempotent — re-solving and overwriting an entry is
// wasted work, not an error — so concurrent tile solvers only need the
// internal read/write lock.
type Cache struct {
	mu    sync.RWMutex
	tiles map[cacheKey]*movegraph.Graph
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{tiles: make(map[cacheKey]*movegraph.Graph)}
}

// Get returns a read-only view of the cached solution for (size, dir).
func (c *Cache) Get(size board.Size, dir movegraph.Direction) (*movegraph.Graph, bool) {
	c.mu.RLock()
	g, ok := c.tiles[cacheKey{size: size, dir: dir}]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	return g.Ref(), true
}

// Put stores the solution for (size, dir). Entries are read-only once
// inserted; the graph must not be mutated afterwards.
func (c *Cache) Put(size board.Size, dir movegraph.Direction, g *movegraph.Graph) {
	c.mu.Lock()
	c.tiles[cacheKey{size: size, dir: dir}] = g
	c.mu.Unlock()
}

// Len reports the number of memoized tiles.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.tiles)
}
