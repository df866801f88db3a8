package logging

import (
	"bytes"
	"testing"
)

type capture struct {
	lines []string
}

func (c *capture) Print(s string)   { c.lines = append(c.lines, s) }
func (c *capture) Println(s string) { c.lines = append(c.lines, s+"\n") }

func TestSerialWrites(t *testing.T) {
	var buf bytes.Buffer
	l := NewSerial(&buf)

	l.Print("boot")
	if got := buf.String(); got != "boot" {
		t.Fatalf("Print wrote %q", got)
	}

	buf.Reset()
	l.Println("ready")
	if got := buf.String(); got != "ready\r\n" {
		t.Fatalf("Println wrote %q, want CRLF-terminated", got)
	}
}

func TestSerialNilWriter(t *testing.T) {
	l := NewSerial(nil)
	l.Print("dropped")
	l.Println("dropped")
}

func TestSetSwapsProcessWide(t *testing.T) {
	prev := Get()
	defer Set(prev)

	c := &capture{}
	Set(c)
	Println("hello")
	Print("there")

	if len(c.lines) != 2 || c.lines[0] != "hello\n" || c.lines[1] != "there" {
		t.Fatalf("captured %q", c.lines)
	}
}

func TestSetNilInstallsNull(t *testing.T) {
	prev := Get()
	defer Set(prev)

	Set(nil)
	if _, ok := Get().(Null); !ok {
		t.Fatalf("Set(nil) installed %T, want Null", Get())
	}
	// Must not crash.
	Println("into the void")
}

func TestIntegerHelpers(t *testing.T) {
	prev := Get()
	defer Set(prev)

	c := &capture{}
	Set(c)
	PrintlnInt(-42)
	PrintlnUint(7)

	if len(c.lines) != 2 || c.lines[0] != "-42\n" || c.lines[1] != "7\n" {
		t.Fatalf("captured %q", c.lines)
	}
}
