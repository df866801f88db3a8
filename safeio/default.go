package safeio

import (
	"sync/atomic"
	"time"

	"espcore-go/hw"
)

var def atomic.Pointer[Guard]

// Init builds the process-wide guard and installs it behind the
// package-level operations. Call it once, after the runtime is up and
// before any task touches a wrapper; calling it twice panics. Sketch
// code that never constructs its own Guard uses exactly this plus the
// package-level functions below.
func Init(cfg Config) *Guard {
	g := New(cfg)
	if !def.CompareAndSwap(nil, g) {
		panic("safeio: Init called twice")
	}
	return g
}

// Default returns the guard installed by Init and panics when Init has
// not run. A lazy fallback here would reintroduce the first-use race
// the explicit init exists to kill.
func Default() *Guard {
	g := def.Load()
	if g == nil {
		panic("safeio: not initialized")
	}
	return g
}

// Package-level operations, bound to the Init'd guard.

func PinMode(pin uint8, mode hw.PinMode) { Default().PinMode(pin, mode) }
func DigitalWrite(pin uint8, level bool) { Default().DigitalWrite(pin, level) }
func DigitalRead(pin uint8) bool         { return Default().DigitalRead(pin) }
func AnalogRead(pin uint8) uint16        { return Default().AnalogRead(pin) }
func TouchRead(pin uint8) uint16         { return Default().TouchRead(pin) }

func TryDigitalWrite(pin uint8, level bool, timeout time.Duration) bool {
	return Default().TryDigitalWrite(pin, level, timeout)
}

func TryAnalogRead(pin uint8, timeout time.Duration) (uint16, bool) {
	return Default().TryAnalogRead(pin, timeout)
}

func ShiftOut(dataPin, clockPin uint8, order hw.BitOrder, value byte) {
	Default().ShiftOut(dataPin, clockPin, order, value)
}

func ShiftIn(dataPin, clockPin uint8, order hw.BitOrder) byte {
	return Default().ShiftIn(dataPin, clockPin, order)
}

func WithPinLock(pin uint8, fn func(d hw.Driver)) { Default().WithPinLock(pin, fn) }

func ISRDigitalWrite(pin uint8, level bool) { Default().ISRDigitalWrite(pin, level) }
func ISRDigitalRead(pin uint8) bool         { return Default().ISRDigitalRead(pin) }

// GetStats snapshots the default guard's counters.
func GetStats() Stats { return Default().Stats() }
