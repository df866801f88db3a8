package safeio

import "sync/atomic"

type stats struct {
	locksCreated uint32
	fallbackHits uint32
	tryFailures  uint32
}

// Stats is a point-in-time snapshot of guard counters.
type Stats struct {
	// LocksCreated counts lazily created locks (per-pin and bus).
	LocksCreated uint32
	// FallbackHits counts operations on out-of-range pins that were
	// degraded to the shared fallback lock.
	FallbackHits uint32
	// TryFailures counts bounded-wait attempts that gave up.
	TryFailures uint32
}

// Stats snapshots the counters. Cheap enough for periodic health logs.
func (g *Guard) Stats() Stats {
	return Stats{
		LocksCreated: atomic.LoadUint32(&g.st.locksCreated),
		FallbackHits: atomic.LoadUint32(&g.st.fallbackHits),
		TryFailures:  atomic.LoadUint32(&g.st.tryFailures),
	}
}
