package safeio

import (
	"sync/atomic"

	"espcore-go/x/mathx"
	"espcore-go/x/syncx"
)

// MaxPins is the default per-pin table size, sized for ESP32-class
// parts (GPIO0..47).
const MaxPins = 48

// pinLock resolves the lock covering pin, creating it on first use.
//
// The fast path is one atomic load; the published pointer is only ever
// stored after the mutex is fully built, so the loser of a creation
// race can never observe a half-built lock. Out-of-range pins degrade to the
// shared fallback lock: wrong ids stay serialized instead of failing,
// at the cost of contending with each other.
func (g *Guard) pinLock(pin uint8) *syncx.Mutex {
	if g.global {
		return g.gpio
	}
	n := int(pin)
	if !mathx.Between(n, 0, g.pinCount-1) {
		atomic.AddUint32(&g.st.fallbackHits, 1)
		return g.fall
	}
	if m := g.pins[n].Load(); m != nil {
		return m
	}
	g.boot.Lock()
	defer g.boot.Unlock()
	if m := g.pins[n].Load(); m != nil {
		return m
	}
	m := syncx.New()
	atomic.AddUint32(&g.st.locksCreated, 1)
	g.pins[n].Store(m)
	return m
}

// busLock resolves the singleton lock for a wrapped bus id, creating
// it on first use. Called at wrapper construction, not per transfer.
func (g *Guard) busLock(id string) *syncx.Mutex {
	g.boot.Lock()
	defer g.boot.Unlock()
	m := g.buses[id]
	if m == nil {
		m = syncx.New()
		atomic.AddUint32(&g.st.locksCreated, 1)
		g.buses[id] = m
	}
	return m
}

// rank orders locks for two-pin acquisition: in-range pins by number,
// the fallback after all of them. Equal rank implies the same lock.
func (g *Guard) rank(pin uint8) int {
	return mathx.Min(int(pin), g.pinCount)
}

// lockPair acquires the locks of two pins in rank order and returns
// the matching release. Rank order makes crossed pairs ("data=3,
// clock=9" vs "data=9, clock=3") take the locks in the same sequence,
// so concurrent transfers cannot deadlock.
func (g *Guard) lockPair(pa, pb uint8) (unlock func()) {
	ma, mb := g.pinLock(pa), g.pinLock(pb)
	if ma == mb {
		ma.Lock()
		return ma.Unlock
	}
	if g.rank(pb) < g.rank(pa) {
		ma, mb = mb, ma
	}
	ma.Lock()
	mb.Lock()
	return func() {
		mb.Unlock()
		ma.Unlock()
	}
}
