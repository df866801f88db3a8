package safeio

import "espcore-go/hw"

// ShiftOut clocks value out of dataPin, one bit per rising edge on
// clockPin, holding both pin locks for the whole byte so a concurrent
// writer cannot split the transfer. The clock idles low.
func (g *Guard) ShiftOut(dataPin, clockPin uint8, order hw.BitOrder, value byte) {
	unlock := g.lockPair(dataPin, clockPin)
	defer unlock()
	for i := 0; i < 8; i++ {
		var bit bool
		if order == hw.LSBFirst {
			bit = value&(1<<i) != 0
		} else {
			bit = value&(1<<(7-i)) != 0
		}
		g.drv.DigitalWrite(dataPin, bit)
		g.drv.DigitalWrite(clockPin, true)
		g.drv.DigitalWrite(clockPin, false)
	}
}

// ShiftIn clocks a byte in from dataPin, sampling after each rising
// edge on clockPin, under both pin locks.
func (g *Guard) ShiftIn(dataPin, clockPin uint8, order hw.BitOrder) byte {
	unlock := g.lockPair(dataPin, clockPin)
	defer unlock()
	var value byte
	for i := 0; i < 8; i++ {
		g.drv.DigitalWrite(clockPin, true)
		if g.drv.DigitalRead(dataPin) {
			if order == hw.LSBFirst {
				value |= 1 << i
			} else {
				value |= 1 << (7 - i)
			}
		}
		g.drv.DigitalWrite(clockPin, false)
	}
	return value
}
