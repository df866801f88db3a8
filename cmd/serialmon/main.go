// cmd/serialmon/main.go
//
// Tail the serial log of a board running this library. Lines arrive
// CRLF-terminated from the logging package's serial backend; each one
// is echoed with a wall-clock prefix so captures from long soak runs
// stay correlatable.
//
//	serialmon -device /dev/ttyACM0 -baud 115200
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/tarm/serial"

	"espcore-go/clock"
)

func main() {
	device := flag.String("device", "/dev/ttyACM0", "serial device path")
	baud := flag.Int("baud", 115200, "baud rate (USB CDC ignores this)")
	stamp := flag.Bool("timestamps", true, "prefix lines with wall time")
	flag.Parse()

	clock.Set(clock.System{})

	port, err := serial.OpenPort(&serial.Config{Name: *device, Baud: *baud})
	if err != nil {
		fmt.Fprintf(os.Stderr, "serialmon: open %s: %v\n", *device, err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Printf("serialmon: listening on %s @ %d\n", *device, *baud)
	sc := bufio.NewScanner(port)
	for sc.Scan() {
		if *stamp {
			fmt.Printf("[%s] %s\n", clock.FormattedTime(), sc.Text())
		} else {
			fmt.Println(sc.Text())
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "serialmon: read: %v\n", err)
		os.Exit(1)
	}
}
