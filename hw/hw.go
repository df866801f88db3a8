// Package hw defines the hardware backend consumed by safeio: five
// synchronous pin primitives behind a small Driver interface, a
// process-wide default driver reference, and a pure-Go simulator for
// host builds and tests. Platform files install the right default at
// init; boards with their own driver call SetDefault before safeio.Init.
package hw

import "sync"

// PinMode selects the electrical configuration of a pin.
type PinMode uint8

const (
	Input PinMode = iota
	Output
	InputPullup
	InputPulldown
	Analog
)

// BitOrder selects the bit order of shift transfers.
type BitOrder uint8

const (
	LSBFirst BitOrder = iota
	MSBFirst
)

// Driver is the raw hardware surface. Calls are synchronous and
// errorless; what a driver does with a pin it does not have is its own
// business. Implementations need not be safe for concurrent use, that
// is what the guard on top is for.
type Driver interface {
	PinMode(pin uint8, mode PinMode)
	DigitalWrite(pin uint8, level bool)
	DigitalRead(pin uint8) bool
	AnalogRead(pin uint8) uint16
	TouchRead(pin uint8) uint16
}

var (
	defMu sync.RWMutex
	def   Driver = newPlatformDriver()
)

// SetDefault replaces the process-wide driver. Call before safeio.Init;
// a nil driver panics.
func SetDefault(d Driver) {
	if d == nil {
		panic("hw: SetDefault(nil)")
	}
	defMu.Lock()
	def = d
	defMu.Unlock()
}

// Default returns the process-wide driver, the platform one unless
// SetDefault replaced it.
func Default() Driver {
	defMu.RLock()
	d := def
	defMu.RUnlock()
	return d
}
