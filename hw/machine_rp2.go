//go:build rp2040 || rp2350

package hw

import (
	"machine"
	"sync"
)

// machineDriver maps the Driver surface onto TinyGo's machine package.
// RP2 has no capacitive touch unit; TouchRead reports the idle
// sentinel so threshold logic written for touch hardware stays inert.
type machineDriver struct {
	adcOnce sync.Once
}

const touchIdle = 0xFFFF

var _ Driver = (*machineDriver)(nil)

func newPlatformDriver() Driver { return &machineDriver{} }

func (d *machineDriver) PinMode(pin uint8, mode PinMode) {
	p := machine.Pin(pin)
	switch mode {
	case Output:
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	case InputPullup:
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	case InputPulldown:
		p.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	case Analog:
		d.adcOnce.Do(machine.InitADC)
		a := machine.ADC{Pin: p}
		_ = a.Configure(machine.ADCConfig{})
	default:
		p.Configure(machine.PinConfig{Mode: machine.PinInput})
	}
}

func (d *machineDriver) DigitalWrite(pin uint8, level bool) {
	machine.Pin(pin).Set(level)
}

func (d *machineDriver) DigitalRead(pin uint8) bool {
	return machine.Pin(pin).Get()
}

func (d *machineDriver) AnalogRead(pin uint8) uint16 {
	d.adcOnce.Do(machine.InitADC)
	a := machine.ADC{Pin: machine.Pin(pin)}
	_ = a.Configure(machine.ADCConfig{})
	return a.Get()
}

func (d *machineDriver) TouchRead(uint8) uint16 { return touchIdle }
