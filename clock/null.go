package clock

import "espcore-go/x/timex"

// Null is the no-time-source fallback: every query runs off uptime.
// Answers are wrong as wall time but monotonic and well-formed, so
// timestamps in logs stay orderable before a real source is installed.
type Null struct{}

var _ Provider = Null{}

func (Null) Start() {}

func (Null) UnixTime() int64 { return timex.Uptime() }

// No zone knowledge: a non-zero hint passes through unchanged.
func (Null) UnixUTCTime(localHint int64) int64 {
	if localHint == 0 {
		return timex.Uptime()
	}
	return localHint
}

func (Null) FormattedTime() string {
	return fmtHMS(int(timex.Uptime() % SecondsPerDay))
}

func (Null) SecondsOfDay() int {
	return int(timex.Uptime() % SecondsPerDay)
}
