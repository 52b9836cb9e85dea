package mustache

import "sync"

// Cache maps absolute template paths to parse trees. It is safe for
// concurrent use. An [Engine] populates it lazily and never clears it;
// owners that watch template files evict stale entries themselves.
type Cache struct {
	trees sync.Map // string -> *Node
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Load returns the tree cached for path.
func (c *Cache) Load(path string) (*Node, bool) {
	v, ok := c.trees.Load(path)
	if !ok {
		return nil, false
	}

	return v.(*Node), true
}

// LoadOrStore caches tree for path unless a tree is already cached, and
// returns the cached tree. loaded reports whether it was already present.
// Concurrent first parses of one path therefore all render the same tree.
func (c *Cache) LoadOrStore(path string, tree *Node) (actual *Node, loaded bool) {
	v, loaded := c.trees.LoadOrStore(path, tree)

	return v.(*Node), loaded
}

// Evict removes the tree cached for path, reporting whether one was present.
func (c *Cache) Evict(path string) bool {
	_, ok := c.trees.LoadAndDelete(path)

	return ok
}

// Clear removes every cached tree.
func (c *Cache) Clear() {
	c.trees.Clear()
}

// Len returns the number of cached trees.
func (c *Cache) Len() int {
	n := 0

	c.trees.Range(func(_, _ any) bool {
		n++

		return true
	})

	return n
}
