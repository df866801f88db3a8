// Package syncx provides a mutex with bounded acquisition, something
// sync.Mutex does not offer. The implementation is a capacity-1 channel
// semaphore, so it stays cheap on single-core targets and works under
// TinyGo's scheduler as well as the host runtime.
package syncx

import "time"

// Mutex is a mutual-exclusion lock with try and timed-try acquisition.
// Use New; the zero value has no semaphore and will hang.
type Mutex struct {
	ch chan struct{}
}

// New returns a ready-to-use unlocked Mutex.
func New() *Mutex {
	return &Mutex{ch: make(chan struct{}, 1)}
}

// Lock blocks until the mutex is held.
func (m *Mutex) Lock() {
	m.ch <- struct{}{}
}

// Unlock releases the mutex. Unlocking an unlocked Mutex panics.
func (m *Mutex) Unlock() {
	select {
	case <-m.ch:
	default:
		panic("syncx: unlock of unlocked Mutex")
	}
}

// TryLock makes a single non-blocking attempt.
func (m *Mutex) TryLock() bool {
	select {
	case m.ch <- struct{}{}:
		return true
	default:
		return false
	}
}

// TryLockFor attempts acquisition for at most d.
// d <= 0 degenerates to a single attempt. The timer is stopped on
// every path so abandoned waits leak nothing.
func (m *Mutex) TryLockFor(d time.Duration) bool {
	if m.TryLock() {
		return true
	}
	if d <= 0 {
		return false
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case m.ch <- struct{}{}:
		return true
	case <-t.C:
		return false
	}
}
