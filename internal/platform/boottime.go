package platform

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SinceBoot returns the elapsed milliseconds between boot and now.
// The subtraction preserves the full sub-second resolution of both
// instants; any coarser precision is a property of how the kernel
// recorded the boot timestamp, not of this computation.
func SinceBoot(boot, now time.Time) (uint64, error) {
	elapsed := now.Sub(boot)
	if elapsed < 0 {
		return 0, fmt.Errorf("boot time %v is after current time %v", boot, now)
	}
	return uint64(elapsed / time.Millisecond), nil
}

// ParseSysctlTimeval parses the textual form of kern.boottime as printed
// by sysctl -n, e.g. "{ sec = 1692891600, usec = 542718 } Thu Aug 24 ...".
// The usec field is optional on some kernels and defaults to zero.
// The source string is carried into any returned SourceError.
func ParseSysctlTimeval(output, source string) (time.Time, error) {
	sec, ok, err := extractTimevalField(output, "sec")
	if err != nil {
		return time.Time{}, NewSourceError(KindFormat, source,
			fmt.Errorf("parsing boot time sec: %w", err))
	}
	if !ok {
		return time.Time{}, NewSourceError(KindFormat, source,
			fmt.Errorf("no sec field in boot time output %q", strings.TrimSpace(output)))
	}

	usec, ok, err := extractTimevalField(output, "usec")
	if err != nil {
		return time.Time{}, NewSourceError(KindFormat, source,
			fmt.Errorf("parsing boot time usec: %w", err))
	}
	if !ok {
		usec = 0
	}

	return time.Unix(sec, usec*1000), nil
}

// extractTimevalField locates "name = <digits>" in a sysctl timeval dump
// and returns the numeric value. The second return reports whether the
// field was present at all.
func extractTimevalField(output, name string) (int64, bool, error) {
	marker := name + " = "
	idx := -1
	for search := 0; search < len(output); {
		i := strings.Index(output[search:], marker)
		if i < 0 {
			break
		}
		i += search
		// Reject partial matches, e.g. "sec" inside "usec".
		if i == 0 || !isWordByte(output[i-1]) {
			idx = i
			break
		}
		search = i + len(marker)
	}
	if idx < 0 {
		return 0, false, nil
	}

	rest := output[idx+len(marker):]
	end := strings.IndexFunc(rest, func(r rune) bool {
		return r != '-' && (r < '0' || r > '9')
	})
	if end >= 0 {
		rest = rest[:end]
	}

	value, err := strconv.ParseInt(strings.TrimSpace(rest), 10, 64)
	if err != nil {
		return 0, true, err
	}
	return value, true, nil
}

// isWordByte reports whether b can be part of a field name.
func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') || b == '_'
}
