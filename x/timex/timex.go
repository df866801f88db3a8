package timex

import "time"

var bootAt = time.Now()

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }

// UptimeMs returns milliseconds since process start.
// The baseline is captured at package init, which on firmware targets
// coincides with boot.
func UptimeMs() int64 { return int64(time.Since(bootAt) / time.Millisecond) }

// Uptime returns whole seconds since process start.
func Uptime() int64 { return UptimeMs() / 1000 }

// PeriodFromHz returns a nanosecond period for a requested frequency.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint32) uint64 {
	if freqHz == 0 {
		freqHz = 1
	}
	return uint64(1_000_000_000 / uint64(freqHz))
}
