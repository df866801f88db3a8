package hw

import "testing"

func TestSimRoundtrip(t *testing.T) {
	s := NewSim()

	s.PinMode(4, Output)
	if got := s.Mode(4); got != Output {
		t.Fatalf("mode = %d, want Output", got)
	}

	s.DigitalWrite(4, true)
	if !s.Level(4) {
		t.Fatal("level not recorded")
	}

	s.SetLevel(5, true)
	if !s.DigitalRead(5) {
		t.Fatal("input level not visible")
	}

	s.SetAnalog(34, 2048)
	if got := s.AnalogRead(34); got != 2048 {
		t.Fatalf("analog = %d, want 2048", got)
	}

	s.SetTouch(4, 12)
	if got := s.TouchRead(4); got != 12 {
		t.Fatalf("touch = %d, want 12", got)
	}
}

func TestSimCounters(t *testing.T) {
	s := NewSim()
	s.DigitalWrite(1, true)
	s.DigitalWrite(1, false)
	s.DigitalRead(1)
	s.AnalogRead(2)
	s.TouchRead(3)
	s.PinMode(1, Input)

	if s.DigitalWrites() != 2 || s.DigitalReads() != 1 ||
		s.AnalogReads() != 1 || s.TouchReads() != 1 || s.PinModes() != 1 {
		t.Fatalf("counters off: w=%d r=%d a=%d t=%d m=%d",
			s.DigitalWrites(), s.DigitalReads(), s.AnalogReads(), s.TouchReads(), s.PinModes())
	}
}

func TestDefaultDriver(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	if prev == nil {
		t.Fatal("platform default missing")
	}

	s := NewSim()
	SetDefault(s)
	if Default() != Driver(s) {
		t.Fatal("SetDefault not visible through Default")
	}
}

func TestSetDefaultNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	SetDefault(nil)
}
