package robdd

// config holds the tunable parameters of an Engine, in the spirit of
// rudd's configs (Nodesize/Maxnodesize/Cachesize...), pared down to what a
// single-build, map-based unique table actually needs: an initial capacity
// hint for the node arena, and an optional hard cap used to bail out of
// pathological input with a ResourceError instead of growing forever.
type config struct {
	nodeCapacity int
	maxNodes     int // 0 means unlimited, like rudd's maxnodesize
}

func defaultConfig() *config {
	return &config{
		nodeCapacity: 64,
		maxNodes:     0,
	}
}

// Option configures an Engine at construction time.
type Option func(*config)

// WithNodeCapacity sets a preferred initial capacity for the node arena.
// The arena still grows on demand; this only avoids early reallocations for
// callers that know roughly how large their formulas are.
func WithNodeCapacity(n int) Option {
	return func(c *config) {
		if n > 2 {
			c.nodeCapacity = n
		}
	}
}

// WithMaxNodes caps the number of nodes an Engine will ever allocate in a
// single Build. Exceeding it surfaces a *ResourceError instead of letting
// the arena grow without bound. The default (0) means no limit.
func WithMaxNodes(n int) Option {
	return func(c *config) {
		c.maxNodes = n
	}
}
