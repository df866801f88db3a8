package clock

import "time"

// System reads the runtime wall clock and the process time zone.
// Use it on hosts and on boards whose RTC is set; boards that sync via
// NTP should install their own Provider once sync completes.
type System struct{}

var _ Provider = System{}

// Start is a no-op; the wall clock is always running.
func (System) Start() {}

func (System) UnixTime() int64 {
	now := time.Now()
	_, off := now.Zone()
	return now.Unix() + int64(off)
}

func (System) UnixUTCTime(localHint int64) int64 {
	now := time.Now()
	if localHint == 0 {
		return now.Unix()
	}
	_, off := now.Zone()
	return localHint - int64(off)
}

func (System) FormattedTime() string {
	h, m, s := time.Now().Clock()
	return fmtHMS(h*3600 + m*60 + s)
}

func (System) SecondsOfDay() int {
	h, m, s := time.Now().Clock()
	return h*3600 + m*60 + s
}
