package common

import "time"

// Base resolution of the layout space. The host scales it to the window.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// TickStep returns the simulated time of one update at tps ticks per second.
func TickStep(tps int) time.Duration {
	if tps <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(tps)
}
