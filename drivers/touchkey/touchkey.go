// Package touchkey turns a capacitive touch pin into a debounced
// button. Samples go through the safeio guard, so a polling key
// coexists with any other task using the touch unit.
//
//	key := touchkey.New(g, 4, touchkey.Config{})
//	if key.Pressed() {
//		// finger on the pad right now
//	}
//
// or, for edge events:
//
//	events := make(chan touchkey.Event, 8)
//	go key.Poll(ctx, events)
//
// On ESP32-class hardware a touched pad reads LOW: the raw value sinks
// below the threshold while a finger is present.
package touchkey

import (
	"context"
	"sync/atomic"
	"time"

	"espcore-go/safeio"
	"espcore-go/x/mathx"
	"espcore-go/x/timex"
)

// Config controls sampling. All fields are optional.
type Config struct {
	// Threshold is the raw reading below which the pad counts as
	// touched. Default 30, a typical margin for bare pads; wire to a
	// measured idle value for covered ones.
	Threshold uint16
	// SamplePeriod is the Poll sampling interval. Default 20 ms.
	SamplePeriod time.Duration
	// Debounce is how long a new state must hold before Poll reports
	// the edge. Default 50 ms.
	Debounce time.Duration
}

func (c Config) withDefaults() Config {
	if c.Threshold == 0 {
		c.Threshold = 30
	}
	if c.SamplePeriod <= 0 {
		c.SamplePeriod = 20 * time.Millisecond
	}
	if c.Debounce <= 0 {
		c.Debounce = 50 * time.Millisecond
	}
	// An edge cannot be confirmed in less than one sample.
	c.Debounce = mathx.Max(c.Debounce, c.SamplePeriod)
	return c
}

// Event is one debounced edge.
type Event struct {
	Pressed bool
	Raw     uint16 // the sample that confirmed the edge
	AtMs    int64  // unix milliseconds when the edge was confirmed
}

// Key is a debounced touch button on one pin.
type Key struct {
	g     *safeio.Guard
	pin   uint8
	cfg   Config
	drops uint32
}

// New builds a Key on pin. The guard must not be nil.
func New(g *safeio.Guard, pin uint8, cfg Config) *Key {
	if g == nil {
		panic("touchkey: nil guard")
	}
	return &Key{g: g, pin: pin, cfg: cfg.withDefaults()}
}

// Raw reads the current raw touch value under the guard.
func (k *Key) Raw() uint16 { return k.g.TouchRead(k.pin) }

// Pressed reports whether the pad reads touched right now, one
// guarded sample, no debouncing.
func (k *Key) Pressed() bool { return k.g.TouchRead(k.pin) < k.cfg.Threshold }

// Poll samples until ctx ends, sending one Event per debounced edge.
// Sends never block; events dropped on a full channel are counted
// instead (see Drops).
func (k *Key) Poll(ctx context.Context, events chan<- Event) {
	t := time.NewTicker(k.cfg.SamplePeriod)
	defer t.Stop()

	cur := false  // reported state
	cand := false // candidate state awaiting debounce
	candSince := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}

		raw := k.g.TouchRead(k.pin)
		obs := raw < k.cfg.Threshold
		if obs != cand {
			cand = obs
			candSince = time.Now()
		}
		if cand != cur && time.Since(candSince) >= k.cfg.Debounce {
			cur = cand
			select {
			case events <- Event{Pressed: cur, Raw: raw, AtMs: timex.NowMs()}:
			default:
				atomic.AddUint32(&k.drops, 1)
			}
		}
	}
}

// Drops counts events lost to a full channel.
func (k *Key) Drops() uint32 { return atomic.LoadUint32(&k.drops) }
