package touchkey

import (
	"context"
	"testing"
	"time"

	"espcore-go/hw"
	"espcore-go/safeio"
)

func newKey(t *testing.T, cfg Config) (*Key, *hw.Sim) {
	t.Helper()
	sim := hw.NewSim()
	sim.SetTouch(4, 70) // idle
	g := safeio.New(safeio.Config{Driver: sim})
	return New(g, 4, cfg), sim
}

func recvEvent(t *testing.T, ch <-chan Event, within time.Duration) Event {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(within):
		t.Fatal("no event within deadline")
		return Event{}
	}
}

func TestPressedThreshold(t *testing.T) {
	key, sim := newKey(t, Config{Threshold: 30})

	if key.Pressed() {
		t.Fatal("idle pad reported pressed")
	}
	sim.SetTouch(4, 10)
	if !key.Pressed() {
		t.Fatal("touched pad not reported")
	}
	if got := key.Raw(); got != 10 {
		t.Fatalf("Raw = %d, want 10", got)
	}
}

func TestPollReportsDebouncedEdges(t *testing.T) {
	key, sim := newKey(t, Config{
		Threshold:    30,
		SamplePeriod: 2 * time.Millisecond,
		Debounce:     10 * time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := make(chan Event, 8)
	done := make(chan struct{})
	go func() {
		key.Poll(ctx, events)
		close(done)
	}()

	sim.SetTouch(4, 10)
	ev := recvEvent(t, events, 2*time.Second)
	if !ev.Pressed {
		t.Fatalf("first edge = %+v, want press", ev)
	}
	if ev.AtMs == 0 {
		t.Fatal("edge not timestamped")
	}

	sim.SetTouch(4, 70)
	ev = recvEvent(t, events, 2*time.Second)
	if ev.Pressed {
		t.Fatalf("second edge = %+v, want release", ev)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Poll did not stop on cancel")
	}
}

func TestPollIgnoresFlicker(t *testing.T) {
	key, sim := newKey(t, Config{
		Threshold:    30,
		SamplePeriod: 2 * time.Millisecond,
		Debounce:     50 * time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := make(chan Event, 8)
	go key.Poll(ctx, events)

	// A blip shorter than the debounce window.
	sim.SetTouch(4, 10)
	time.Sleep(6 * time.Millisecond)
	sim.SetTouch(4, 70)

	select {
	case ev := <-events:
		t.Fatalf("flicker produced an event: %+v", ev)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestPollCountsDropsOnFullChannel(t *testing.T) {
	key, sim := newKey(t, Config{
		Threshold:    30,
		SamplePeriod: 2 * time.Millisecond,
		Debounce:     6 * time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := make(chan Event) // nobody receives
	go key.Poll(ctx, events)

	sim.SetTouch(4, 10)
	deadline := time.Now().Add(2 * time.Second)
	for key.Drops() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("dropped edge never counted")
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func TestNewNilGuardPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New(nil, 4, Config{})
}
