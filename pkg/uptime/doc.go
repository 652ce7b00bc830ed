// Package uptime reports operating-system uptime (time since boot),
// normalized to milliseconds.
//
// Exactly one retrieval strategy is compiled into any given build:
// Windows uses the kernel's millisecond tick counter, Linux and Android
// parse the /proc/uptime virtual file, and the BSD family (macOS, iOS,
// FreeBSD) subtracts the kern.boottime sysctl from the current time.
// There is no runtime fallback between strategies, no retries, and no
// silent defaults; every failure is surfaced to the caller as a typed
// error distinguishable with IsAccessError, IsFormatError, and
// IsUnsupported.
//
// Basic usage:
//
//	ms, err := uptime.Milliseconds()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("up %d ms (%s)\n", ms, uptime.FormatShort(time.Duration(ms)*time.Millisecond))
//
// The package also retrieves uptime from remote hosts over SSH; see
// NewRemote.
//
// All functions are safe for concurrent use. Each call is self-contained
// and touches no shared state beyond read-only kernel state.
package uptime
