package router

// bucket is an ordered, non-owning sequence of entries that share the
// same param-index static prefix. Go's append already amortizes growth
// geometrically, so push needs no manual doubling.
type bucket struct {
	entries []*entry
}

func newBucket() *bucket {
	return &bucket{entries: make([]*entry, 0, 4)}
}

func (b *bucket) push(e *entry) {
	b.entries = append(b.entries, e)
}
