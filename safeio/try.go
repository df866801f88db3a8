package safeio

import (
	"sync/atomic"
	"time"
)

// TryDigitalWrite attempts to drive pin, waiting at most timeout for
// its lock. Zero or negative timeout means a single non-blocking
// attempt. On failure nothing was written and no lock is held; the
// caller decides whether to retry, drop, or escalate. Task context
// only: interrupt handlers use ISRDigitalWrite instead of waiting.
func (g *Guard) TryDigitalWrite(pin uint8, level bool, timeout time.Duration) bool {
	m := g.pinLock(pin)
	if !m.TryLockFor(timeout) {
		atomic.AddUint32(&g.st.tryFailures, 1)
		return false
	}
	defer m.Unlock()
	g.drv.DigitalWrite(pin, level)
	return true
}

// TryAnalogRead attempts a conversion on pin's channel, waiting at
// most timeout for the ADC lock. Same contract as TryDigitalWrite:
// false means no conversion was started.
func (g *Guard) TryAnalogRead(pin uint8, timeout time.Duration) (uint16, bool) {
	if !g.adc.TryLockFor(timeout) {
		atomic.AddUint32(&g.st.tryFailures, 1)
		return 0, false
	}
	defer g.adc.Unlock()
	return g.drv.AnalogRead(pin), true
}
