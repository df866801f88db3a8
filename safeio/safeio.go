// Package safeio serializes access to shared MCU peripherals from
// preemptively scheduled tasks. Raw pin operations are not atomic on
// most parts: two tasks touching the same pin, or two conversions on
// the shared ADC, interleave and corrupt each other. The guard wraps
// each operation in the lock covering the resource it touches, so
// callers swap raw driver calls for wrapped ones and nothing else.
//
//	sim := hw.NewSim()
//	g := safeio.New(safeio.Config{Driver: sim})
//	g.PinMode(4, hw.Output)
//	g.DigitalWrite(4, true)
//	if !g.TryDigitalWrite(4, false, 5*time.Millisecond) {
//		// pin stayed busy; nothing was written
//	}
//
// Locking is per pin by default, so traffic on one pin never stalls
// another. Building with -tags safeio_global_lock flips the default to
// a single GPIO lock (smaller, more contention); Config.Policy
// overrides per instance. The ADC and the touch unit each get one lock
// for all channels regardless of policy.
//
// The blocking API is task-context only. Interrupt handlers use the
// ISR variants, which skip locking entirely: a handler that blocks on
// a mutex held by a preempted task deadlocks the core, so in interrupt
// context the guard deliberately provides no exclusion.
package safeio

import (
	"sync"
	"sync/atomic"

	"espcore-go/hw"
	"espcore-go/x/syncx"
)

// Policy selects how GPIO pins map to locks.
type Policy uint8

const (
	// PolicyDefault is the compiled-in default: per-pin, unless the
	// safeio_global_lock build tag is set.
	PolicyDefault Policy = iota
	PolicyPerPin
	PolicyGlobal
)

// Config configures a Guard. The zero value is usable: platform
// default driver, MaxPins pins, compiled-in policy.
type Config struct {
	Driver   hw.Driver // nil -> hw.Default()
	PinCount int       // locks in the per-pin table; 0 -> MaxPins
	Policy   Policy
}

// Guard owns the lock registry for one set of peripherals. Create one
// per process with Init, or standalone instances with New for tests.
// All methods are safe for concurrent use from task context.
type Guard struct {
	drv      hw.Driver
	pinCount int
	global   bool

	// boot guards all lazy lock creation.
	boot  sync.Mutex
	pins  []atomic.Pointer[syncx.Mutex]
	gpio  *syncx.Mutex // global policy only
	adc   *syncx.Mutex
	touch *syncx.Mutex
	fall  *syncx.Mutex
	buses map[string]*syncx.Mutex

	st stats
}

// New builds a Guard. Singleton locks (ADC, touch, fallback, and the
// global GPIO lock when selected) are created eagerly here; per-pin
// locks are created on first use.
func New(cfg Config) *Guard {
	if cfg.Driver == nil {
		cfg.Driver = hw.Default()
	}
	if cfg.PinCount <= 0 {
		cfg.PinCount = MaxPins
	}
	global := defaultGlobalLock
	switch cfg.Policy {
	case PolicyPerPin:
		global = false
	case PolicyGlobal:
		global = true
	}

	g := &Guard{
		drv:      cfg.Driver,
		pinCount: cfg.PinCount,
		global:   global,
		adc:      syncx.New(),
		touch:    syncx.New(),
		fall:     syncx.New(),
		buses:    make(map[string]*syncx.Mutex),
	}
	if global {
		g.gpio = syncx.New()
	} else {
		g.pins = make([]atomic.Pointer[syncx.Mutex], cfg.PinCount)
	}
	return g
}

// PinMode configures pin under its lock.
func (g *Guard) PinMode(pin uint8, mode hw.PinMode) {
	m := g.pinLock(pin)
	m.Lock()
	defer m.Unlock()
	g.drv.PinMode(pin, mode)
}

// DigitalWrite drives pin under its lock.
func (g *Guard) DigitalWrite(pin uint8, level bool) {
	m := g.pinLock(pin)
	m.Lock()
	defer m.Unlock()
	g.drv.DigitalWrite(pin, level)
}

// DigitalRead samples pin under its lock.
func (g *Guard) DigitalRead(pin uint8) bool {
	m := g.pinLock(pin)
	m.Lock()
	defer m.Unlock()
	return g.drv.DigitalRead(pin)
}

// AnalogRead converts on pin's channel under the one ADC lock. All
// analog pins share that lock: the ADC is a single sequencer and
// concurrent conversions corrupt each other even on distinct channels.
// On ESP32-class parts ADC2 is also shared with the Wi-Fi driver;
// serializing conversions bounds that conflict but cannot remove it,
// so prefer ADC1 channels when the radio is up.
func (g *Guard) AnalogRead(pin uint8) uint16 {
	g.adc.Lock()
	defer g.adc.Unlock()
	return g.drv.AnalogRead(pin)
}

// TouchRead samples pin's touch channel under the touch-unit lock.
func (g *Guard) TouchRead(pin uint8) uint16 {
	g.touch.Lock()
	defer g.touch.Unlock()
	return g.drv.TouchRead(pin)
}

// WithPinLock runs fn while holding pin's lock, handing it the raw
// driver so several hardware touches compose into one atomic section:
//
//	g.WithPinLock(4, func(d hw.Driver) {
//		d.DigitalWrite(4, !d.DigitalRead(4))
//	})
//
// fn must not call wrapped operations on the same pin; the lock is not
// reentrant.
func (g *Guard) WithPinLock(pin uint8, fn func(d hw.Driver)) {
	m := g.pinLock(pin)
	m.Lock()
	defer m.Unlock()
	fn(g.drv)
}

// ISRDigitalWrite drives pin with no locking. Interrupt context only;
// exclusion against task-context writers is not provided.
func (g *Guard) ISRDigitalWrite(pin uint8, level bool) {
	g.drv.DigitalWrite(pin, level)
}

// ISRDigitalRead samples pin with no locking. Interrupt context only.
func (g *Guard) ISRDigitalRead(pin uint8) bool {
	return g.drv.DigitalRead(pin)
}
