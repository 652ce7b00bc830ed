package uptime

import (
	"time"

	"github.com/opd-ai/go-uptime/internal/platform"
)

// provider is the strategy selected at build time by the platform
// factory files. Exactly one implementation exists per target.
var provider = platform.NewProvider()

// Milliseconds returns the number of milliseconds elapsed since the
// operating system booted.
//
// Effective precision depends on the platform: roughly 10-16ms on
// Windows (timer tick resolution), ~10ms on Linux (kernel accounting
// granularity in /proc/uptime), and ~1s on the BSD family, where the
// boot timestamp is recorded once at boot.
func Milliseconds() (uint64, error) {
	return provider.Milliseconds()
}

// Duration returns the system uptime as a time.Duration carrying the
// same value as Milliseconds, allowing for the instant between two
// separate calls.
func Duration() (time.Duration, error) {
	ms, err := provider.Milliseconds()
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// BootTime returns the wall-clock instant the operating system booted.
// On the BSD family this is the kernel's recorded boot timestamp; on
// Linux and Windows it is derived as current time minus uptime.
func BootTime() (time.Time, error) {
	return provider.BootTime()
}
