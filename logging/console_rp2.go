//go:build rp2040 || rp2350

package logging

import "machine"

// machine.Serial is USB CDC on Pico-class boards.
func newConsole() Logger { return NewSerial(machine.Serial) }
