// cmd/guarddemo/main.go
//
// Host demo: a simulated driver with artificial latency, one guard,
// and a handful of tasks hammering it at once. Blink writers on
// distinct pins run untroubled by each other, the ADC poller and the
// touch key share their singleton locks, a stray writer exercises the
// out-of-range fallback, and a stats line rolls every second.
package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"espcore-go/clock"
	"espcore-go/drivers/touchkey"
	"espcore-go/hw"
	"espcore-go/logging"
	"espcore-go/safeio"
	"espcore-go/x/timex"
)

// ---------- Configuration ----------

const (
	runFor     = 3 * time.Second
	statsEvery = time.Second

	simLatency = 200 * time.Microsecond

	writerPins = 4
	blinkHz    = 200

	adcPin    = 34
	adcEvery  = 5 * time.Millisecond
	touchPin  = 4
	strayPin  = 200 // deliberately out of range
	dataPin   = 10
	clockPin  = 11
	shiftWord = 0x5A
)

func main() {
	sim := hw.NewSim()
	sim.SetLatency(simLatency)
	sim.SetAnalog(adcPin, 1234)
	sim.SetTouch(touchPin, 70)
	hw.SetDefault(sim)

	g := safeio.Init(safeio.Config{})
	clock.Set(clock.System{})
	logging.Println("guarddemo: starting on simulated hardware")

	ctx, cancel := context.WithTimeout(context.Background(), runFor)
	defer cancel()

	var wg sync.WaitGroup
	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	for i := 0; i < writerPins; i++ {
		pin := uint8(2 * i)
		g.PinMode(pin, hw.Output)
		run(func() { blink(ctx, g, pin) })
	}

	run(func() { pollADC(ctx, g) })
	run(func() { shiftPattern(ctx, g) })
	run(func() { stray(ctx, g) })
	run(func() { finger(ctx, sim) })
	run(func() { statsLoop(ctx, g) })

	key := touchkey.New(g, touchPin, touchkey.Config{
		SamplePeriod: 5 * time.Millisecond,
		Debounce:     20 * time.Millisecond,
	})
	events := make(chan touchkey.Event, 8)
	run(func() { key.Poll(ctx, events) })
	run(func() { reportTouches(ctx, events) })

	wg.Wait()
	logging.Println("guarddemo: done")
	logStats(g.Stats())
}

// blink toggles one pin, trying a bounded write first and falling back
// to a blocking one when the pin is momentarily busy.
func blink(ctx context.Context, g *safeio.Guard, pin uint8) {
	t := time.NewTicker(time.Duration(timex.PeriodFromHz(blinkHz)))
	defer t.Stop()
	level := false
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
		level = !level
		if !g.TryDigitalWrite(pin, level, time.Millisecond) {
			g.DigitalWrite(pin, level)
		}
	}
}

func pollADC(ctx context.Context, g *safeio.Guard) {
	t := time.NewTicker(adcEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
		if _, ok := g.TryAnalogRead(adcPin, 2*time.Millisecond); !ok {
			// ADC busy; take the blocking path this round.
			g.AnalogRead(adcPin)
		}
	}
}

// shiftPattern pushes a byte out a simulated shift register, then
// atomically toggles the data pin to show a composed section.
func shiftPattern(ctx context.Context, g *safeio.Guard) {
	t := time.NewTicker(25 * time.Millisecond)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
		g.ShiftOut(dataPin, clockPin, hw.MSBFirst, shiftWord)
		g.WithPinLock(dataPin, func(d hw.Driver) {
			d.DigitalWrite(dataPin, !d.DigitalRead(dataPin))
		})
	}
}

func stray(ctx context.Context, g *safeio.Guard) {
	t := time.NewTicker(20 * time.Millisecond)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
		g.DigitalWrite(strayPin, true)
	}
}

// finger simulates a touch every 400 ms.
func finger(ctx context.Context, sim *hw.Sim) {
	t := time.NewTicker(400 * time.Millisecond)
	defer t.Stop()
	touched := false
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
		touched = !touched
		if touched {
			sim.SetTouch(touchPin, 12)
		} else {
			sim.SetTouch(touchPin, 70)
		}
	}
}

func reportTouches(ctx context.Context, events <-chan touchkey.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if ev.Pressed {
				logging.Println(fmt.Sprintf("[%s] touch press, raw=%d", clock.FormattedTime(), ev.Raw))
			} else {
				logging.Println(fmt.Sprintf("[%s] touch release, raw=%d", clock.FormattedTime(), ev.Raw))
			}
		}
	}
}

func statsLoop(ctx context.Context, g *safeio.Guard) {
	t := time.NewTicker(statsEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
		logStats(g.Stats())
	}
}

func logStats(s safeio.Stats) {
	logging.Println(fmt.Sprintf("[%s] stats: locks=%d fallback=%d tryfail=%d",
		clock.FormattedTime(), s.LocksCreated, s.FallbackHits, s.TryFailures))
}
