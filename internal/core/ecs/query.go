package ecs

// Each2 iterates over entities that have both component A and B.
// The walk is driven by sa so that ordering is stable across runs.
func Each2[A, B any](sa *Store[A], sb *Store[B], fn func(EntityID, *A, *B)) {
	sa.Each(func(id EntityID, a *A) {
		if b, ok := sb.Get(id); ok {
			fn(id, a, b)
		}
	})
}

// Each3 iterates over entities that have components A, B, and C.
func Each3[A, B, C any](sa *Store[A], sb *Store[B], sc *Store[C], fn func(EntityID, *A, *B, *C)) {
	sa.Each(func(id EntityID, a *A) {
		b, ok := sb.Get(id)
		if !ok {
			return
		}
		if c, ok := sc.Get(id); ok {
			fn(id, a, b, c)
		}
	})
}
