// Package clock answers "what time is it" for firmware that may or may
// not have a synced time source. Providers implement the time-query
// surface; a process-wide replaceable reference selects the active one.
// The default is Null, which runs off uptime so time-stamped output
// stays usable before sync. Set(nil) reinstalls Null.
package clock

import (
	"sync"

	"espcore-go/x/conv"
)

// SecondsPerDay is the wrap bound of SecondsOfDay.
const SecondsPerDay = 86400

// Provider is the time-query surface.
//
// UnixTime reports local-shifted epoch seconds; UnixUTCTime converts a
// local value back to true UTC epoch, with 0 meaning "now".
// SecondsOfDay is seconds since local midnight, always in
// [0, SecondsPerDay).
type Provider interface {
	Start()
	UnixTime() int64
	UnixUTCTime(localHint int64) int64
	FormattedTime() string
	SecondsOfDay() int
}

var (
	mu  sync.RWMutex
	cur Provider = Null{}
)

// Set replaces the process-wide provider. nil installs Null.
func Set(p Provider) {
	if p == nil {
		p = Null{}
	}
	mu.Lock()
	cur = p
	mu.Unlock()
}

// Get returns the active provider.
func Get() Provider {
	mu.RLock()
	p := cur
	mu.RUnlock()
	return p
}

// Package-level queries, bound to the active provider.
func Start()                            { Get().Start() }
func UnixTime() int64                   { return Get().UnixTime() }
func UnixUTCTime(localHint int64) int64 { return Get().UnixUTCTime(localHint) }
func FormattedTime() string             { return Get().FormattedTime() }
func SecondsOfDay() int                 { return Get().SecondsOfDay() }

// fmtHMS renders secs (already wrapped to a day) as HH:MM:SS.
func fmtHMS(secs int) string {
	if secs < 0 {
		secs = 0
	}
	var b [8]byte
	conv.Pad2(b[0:2], secs/3600)
	b[2] = ':'
	conv.Pad2(b[3:5], (secs/60)%60)
	b[5] = ':'
	conv.Pad2(b[6:8], secs%60)
	return string(b[:])
}
