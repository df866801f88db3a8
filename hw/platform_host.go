//go:build !(rp2040 || rp2350)

package hw

// Host builds get a simulator so library consumers and tests run
// without hardware.
func newPlatformDriver() Driver { return NewSim() }
