package clock

import (
	"testing"
	"time"
)

type fixed struct {
	secs int64
}

func (fixed) Start()            {}
func (f fixed) UnixTime() int64 { return f.secs }
func (f fixed) UnixUTCTime(h int64) int64 {
	if h == 0 {
		return f.secs
	}
	return h
}
func (f fixed) FormattedTime() string { return fmtHMS(int(f.secs % SecondsPerDay)) }
func (f fixed) SecondsOfDay() int     { return int(f.secs % SecondsPerDay) }

func TestFmtHMS(t *testing.T) {
	cases := []struct {
		secs int
		want string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{3661, "01:01:01"},
		{86399, "23:59:59"},
		{-5, "00:00:00"},
	}
	for _, c := range cases {
		if got := fmtHMS(c.secs); got != c.want {
			t.Errorf("fmtHMS(%d) = %q, want %q", c.secs, got, c.want)
		}
	}
}

func TestSecondsOfDayWraps(t *testing.T) {
	// 2 days, 1 hour, 2 seconds of "uptime".
	f := fixed{secs: 2*SecondsPerDay + 3602}
	if got := f.SecondsOfDay(); got != 3602 {
		t.Fatalf("SecondsOfDay = %d, want 3602", got)
	}
	if got := f.FormattedTime(); got != "01:00:02" {
		t.Fatalf("FormattedTime = %q", got)
	}
}

func TestNullRunsOffUptime(t *testing.T) {
	n := Null{}
	a := n.UnixTime()
	if a < 0 {
		t.Fatalf("uptime went negative: %d", a)
	}
	if got := n.SecondsOfDay(); got < 0 || got >= SecondsPerDay {
		t.Fatalf("SecondsOfDay out of range: %d", got)
	}
	if got := len(n.FormattedTime()); got != 8 {
		t.Fatalf("FormattedTime length %d, want 8", got)
	}
	if got := n.UnixUTCTime(12345); got != 12345 {
		t.Fatalf("non-zero hint should pass through, got %d", got)
	}
}

func TestSystemRoundtrip(t *testing.T) {
	s := System{}
	utc := s.UnixUTCTime(0)
	now := time.Now().Unix()
	if d := utc - now; d < -2 || d > 2 {
		t.Fatalf("UnixUTCTime(0) drifted %ds from wall clock", d)
	}
	// Local-shifted epoch minus the zone offset lands back on UTC.
	if got := s.UnixUTCTime(s.UnixTime()); got < now-2 || got > now+2 {
		t.Fatalf("roundtrip drifted: %d vs %d", got, now)
	}
	if got := s.SecondsOfDay(); got < 0 || got >= SecondsPerDay {
		t.Fatalf("SecondsOfDay out of range: %d", got)
	}
}

func TestSetSwapsProcessWide(t *testing.T) {
	prev := Get()
	defer Set(prev)

	Set(fixed{secs: 90061}) // 1d 1h 1m 1s
	if got := UnixTime(); got != 90061 {
		t.Fatalf("UnixTime = %d", got)
	}
	if got := FormattedTime(); got != "01:01:01" {
		t.Fatalf("FormattedTime = %q", got)
	}
	if got := SecondsOfDay(); got != 3661 {
		t.Fatalf("SecondsOfDay = %d", got)
	}
}

func TestSetNilInstallsNull(t *testing.T) {
	prev := Get()
	defer Set(prev)

	Set(nil)
	if _, ok := Get().(Null); !ok {
		t.Fatalf("Set(nil) installed %T, want Null", Get())
	}
}
