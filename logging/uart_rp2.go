//go:build rp2040 || rp2350

package logging

import (
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

// UARTConfig configures a hardware-UART log sink.
type UARTConfig struct {
	Baud uint32 // 0 -> 115200
	TX   machine.Pin
	RX   machine.Pin
}

// NewUART configures u and returns a Serial writing to it. Useful on
// headless boards where USB CDC is absent and logs go out a spare UART.
func NewUART(u *uartx.UART, cfg UARTConfig) *Serial {
	if cfg.Baud == 0 {
		cfg.Baud = 115200
	}
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: cfg.Baud,
		TX:       cfg.TX,
		RX:       cfg.RX,
	})
	return NewSerial(u)
}
