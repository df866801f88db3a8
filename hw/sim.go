package hw

import (
	"sync"
	"sync/atomic"
	"time"
)

// Sim is an in-memory Driver for host builds and tests. Inputs are
// settable, outputs are readable back, and every operation counts.
// An optional latency is slept outside the internal lock so simulated
// slowness on one pin does not serialize unrelated pins.
type Sim struct {
	mu      sync.RWMutex
	modes   map[uint8]PinMode
	levels  map[uint8]bool
	analog  map[uint8]uint16
	touch   map[uint8]uint16
	latency time.Duration

	pinModes      uint32
	digitalWrites uint32
	digitalReads  uint32
	analogReads   uint32
	touchReads    uint32
}

var _ Driver = (*Sim)(nil)

// NewSim returns an empty simulator: all pins low, all readings zero.
func NewSim() *Sim {
	return &Sim{
		modes:  make(map[uint8]PinMode),
		levels: make(map[uint8]bool),
		analog: make(map[uint8]uint16),
		touch:  make(map[uint8]uint16),
	}
}

// SetLatency makes every subsequent operation take at least d.
func (s *Sim) SetLatency(d time.Duration) {
	s.mu.Lock()
	s.latency = d
	s.mu.Unlock()
}

func (s *Sim) lag() {
	s.mu.RLock()
	d := s.latency
	s.mu.RUnlock()
	if d > 0 {
		time.Sleep(d)
	}
}

func (s *Sim) PinMode(pin uint8, mode PinMode) {
	atomic.AddUint32(&s.pinModes, 1)
	s.mu.Lock()
	s.modes[pin] = mode
	s.mu.Unlock()
	s.lag()
}

func (s *Sim) DigitalWrite(pin uint8, level bool) {
	atomic.AddUint32(&s.digitalWrites, 1)
	s.mu.Lock()
	s.levels[pin] = level
	s.mu.Unlock()
	s.lag()
}

func (s *Sim) DigitalRead(pin uint8) bool {
	atomic.AddUint32(&s.digitalReads, 1)
	s.mu.RLock()
	v := s.levels[pin]
	s.mu.RUnlock()
	s.lag()
	return v
}

func (s *Sim) AnalogRead(pin uint8) uint16 {
	atomic.AddUint32(&s.analogReads, 1)
	s.mu.RLock()
	v := s.analog[pin]
	s.mu.RUnlock()
	s.lag()
	return v
}

func (s *Sim) TouchRead(pin uint8) uint16 {
	atomic.AddUint32(&s.touchReads, 1)
	s.mu.RLock()
	v := s.touch[pin]
	s.mu.RUnlock()
	s.lag()
	return v
}

// SetLevel drives an input pin for DigitalRead.
func (s *Sim) SetLevel(pin uint8, level bool) {
	s.mu.Lock()
	s.levels[pin] = level
	s.mu.Unlock()
}

// SetAnalog sets the value AnalogRead reports for pin.
func (s *Sim) SetAnalog(pin uint8, v uint16) {
	s.mu.Lock()
	s.analog[pin] = v
	s.mu.Unlock()
}

// SetTouch sets the value TouchRead reports for pin.
func (s *Sim) SetTouch(pin uint8, v uint16) {
	s.mu.Lock()
	s.touch[pin] = v
	s.mu.Unlock()
}

// Level reports the last written level of pin.
func (s *Sim) Level(pin uint8) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.levels[pin]
}

// Mode reports the last configured mode of pin.
func (s *Sim) Mode(pin uint8) PinMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modes[pin]
}

// Call counters, cumulative since construction.
func (s *Sim) PinModes() uint32      { return atomic.LoadUint32(&s.pinModes) }
func (s *Sim) DigitalWrites() uint32 { return atomic.LoadUint32(&s.digitalWrites) }
func (s *Sim) DigitalReads() uint32  { return atomic.LoadUint32(&s.digitalReads) }
func (s *Sim) AnalogReads() uint32   { return atomic.LoadUint32(&s.analogReads) }
func (s *Sim) TouchReads() uint32    { return atomic.LoadUint32(&s.touchReads) }
