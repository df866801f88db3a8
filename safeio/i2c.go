package safeio

import (
	"time"

	"tinygo.org/x/drivers"

	"espcore-go/errcode"
	"espcore-go/x/syncx"
)

// guardedI2C serializes Tx on a shared bus the same way AnalogRead
// serializes the ADC: one singleton lock per bus id.
type guardedI2C struct {
	bus     drivers.I2C
	m       *syncx.Mutex
	timeout time.Duration // 0 -> block
}

var _ drivers.I2C = (*guardedI2C)(nil)

// GuardedI2C wraps bus so transactions from different tasks cannot
// interleave. Wrappers created with the same id share one lock, so
// wrap each physical bus once per driver that uses it and key by the
// bus name ("i2c0"). Mutual exclusion only; ordering and fairness are
// whatever the scheduler does.
func (g *Guard) GuardedI2C(id string, bus drivers.I2C) drivers.I2C {
	return &guardedI2C{bus: bus, m: g.busLock(id)}
}

// GuardedI2CTimeout is GuardedI2C with bounded acquisition: a Tx that
// cannot take the bus lock within timeout returns errcode.Busy without
// touching the bus.
func (g *Guard) GuardedI2CTimeout(id string, bus drivers.I2C, timeout time.Duration) drivers.I2C {
	return &guardedI2C{bus: bus, m: g.busLock(id), timeout: timeout}
}

func (w *guardedI2C) Tx(addr uint16, wb, rb []byte) error {
	if w.timeout > 0 {
		if !w.m.TryLockFor(w.timeout) {
			return errcode.Busy
		}
	} else {
		w.m.Lock()
	}
	defer w.m.Unlock()
	return w.bus.Tx(addr, wb, rb)
}
