//go:build !(rp2040 || rp2350)

package logging

import "os"

func newConsole() Logger { return NewSerial(os.Stdout) }
