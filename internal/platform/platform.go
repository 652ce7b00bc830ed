// Package platform provides OS-specific uptime retrieval.
// It defines a small provider interface that each supported operating
// system implements, plus build-tag factory files that compile exactly
// one implementation into any given binary. There is no runtime
// detection and no fallback between implementations.
package platform

import "time"

// Provider defines the interface for OS-specific uptime retrieval.
// Implementations are stateless and safe for concurrent use: every call
// performs at most one bounded-cost operation against read-only kernel
// state.
type Provider interface {
	// Name returns the provider identifier (e.g., "procfs", "sysctl", "tickcount").
	Name() string

	// Milliseconds returns the number of milliseconds elapsed since the
	// operating system booted. The value is non-negative and
	// non-decreasing across calls within a single boot session, modulo
	// wall-clock adjustments on providers that derive it from boot time.
	Milliseconds() (uint64, error)

	// BootTime returns the wall-clock instant the operating system booted.
	BootTime() (time.Time, error)
}
