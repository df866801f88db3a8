package errcode

import (
	"errors"
	"testing"
)

func TestOf(t *testing.T) {
	if got := Of(nil); got != OK {
		t.Fatalf("Of(nil) = %v, want OK", got)
	}
	if got := Of(Busy); got != Busy {
		t.Fatalf("Of(Busy) = %v", got)
	}
	wrapped := &E{C: Timeout, Op: "tx", Err: errors.New("deadline")}
	if got := Of(wrapped); got != Timeout {
		t.Fatalf("Of(E{Timeout}) = %v", got)
	}
	if got := Of(errors.New("plain")); got != Error {
		t.Fatalf("Of(plain) = %v, want Error", got)
	}
}

func TestEUnwraps(t *testing.T) {
	cause := errors.New("short read")
	e := &E{C: NotReady, Op: "probe", Msg: "sensor silent", Err: cause}
	if !errors.Is(e, cause) {
		t.Fatal("E did not unwrap to its cause")
	}
	if got := e.Error(); got != "not_ready: sensor silent" {
		t.Fatalf("Error() = %q", got)
	}
}
