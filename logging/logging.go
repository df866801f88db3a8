// Package logging is the minimal print/println sink used across the
// module. Backends implement Logger; one process-wide reference selects
// the active backend and can be swapped at runtime. The default is a
// console writer (stdout on the host, the board serial on RP2 builds);
// Set(nil) installs the discarding backend rather than disabling the
// reference.
package logging

import (
	"io"
	"sync"

	"espcore-go/x/conv"
)

// Logger is the whole surface: unterminated and line-terminated text.
// Values are converted to text before they reach a backend.
type Logger interface {
	Print(s string)
	Println(s string)
}

// Null discards everything.
type Null struct{}

func (Null) Print(string)   {}
func (Null) Println(string) {}

// Serial writes to an io.Writer, one lock around each write so lines
// from different tasks do not interleave mid-line. Println terminates
// with CRLF, the serial-console convention.
type Serial struct {
	mu sync.Mutex
	w  io.Writer
}

var (
	_ Logger = Null{}
	_ Logger = (*Serial)(nil)
)

// NewSerial wraps w. A nil writer yields a logger that drops writes.
func NewSerial(w io.Writer) *Serial { return &Serial{w: w} }

func (l *Serial) Print(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.w == nil {
		return
	}
	_, _ = io.WriteString(l.w, s)
}

func (l *Serial) Println(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.w == nil {
		return
	}
	_, _ = io.WriteString(l.w, s)
	_, _ = io.WriteString(l.w, "\r\n")
}

var (
	mu  sync.RWMutex
	cur Logger = newConsole()
)

// Set replaces the process-wide logger. nil installs Null.
func Set(l Logger) {
	if l == nil {
		l = Null{}
	}
	mu.Lock()
	cur = l
	mu.Unlock()
}

// Get returns the active logger.
func Get() Logger {
	mu.RLock()
	l := cur
	mu.RUnlock()
	return l
}

// Print and Println go to the active logger.
func Print(s string)   { Get().Print(s) }
func Println(s string) { Get().Println(s) }

// Integer helpers, allocation-light via conv.
func PrintInt(n int64) {
	var b [20]byte
	Get().Print(string(conv.Itoa(b[:], n)))
}

func PrintlnInt(n int64) {
	var b [20]byte
	Get().Println(string(conv.Itoa(b[:], n)))
}

func PrintUint(n uint64) {
	var b [20]byte
	Get().Print(string(conv.Utoa(b[:], n)))
}

func PrintlnUint(n uint64) {
	var b [20]byte
	Get().Println(string(conv.Utoa(b[:], n)))
}
