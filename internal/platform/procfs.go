package platform

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// procfsProvider retrieves uptime from the /proc/uptime virtual file.
// The file reports at least one whitespace-delimited field; the first is
// total seconds since boot as a decimal floating-point value.
type procfsProvider struct {
	procUptimePath string
}

// newProcfsProvider creates a procfsProvider with the default path.
func newProcfsProvider() *procfsProvider {
	return &procfsProvider{
		procUptimePath: "/proc/uptime",
	}
}

func (p *procfsProvider) Name() string { return "procfs" }

// Milliseconds reads and parses /proc/uptime.
// Precision is bounded by the kernel's own accounting granularity in
// that file, roughly 10ms.
func (p *procfsProvider) Milliseconds() (uint64, error) {
	data, err := os.ReadFile(p.procUptimePath)
	if err != nil {
		return 0, NewSourceError(KindAccess, p.Name(),
			fmt.Errorf("reading %s: %w", p.procUptimePath, err))
	}
	return ParseProcUptime(data, p.Name())
}

// BootTime derives the boot instant as current time minus uptime.
func (p *procfsProvider) BootTime() (time.Time, error) {
	ms, err := p.Milliseconds()
	if err != nil {
		return time.Time{}, err
	}
	return time.Now().Add(-time.Duration(ms) * time.Millisecond), nil
}

// ParseProcUptime parses /proc/uptime content into milliseconds since
// boot. Only the first whitespace-delimited field is consumed; the
// fractional seconds are scaled to milliseconds and truncated.
// The source string is carried into any returned SourceError.
func ParseProcUptime(data []byte, source string) (uint64, error) {
	fields := strings.Fields(string(data))
	if len(fields) < 1 {
		return 0, NewSourceError(KindFormat, source,
			fmt.Errorf("no fields in uptime data"))
	}

	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, NewSourceError(KindFormat, source,
			fmt.Errorf("parsing uptime value %q: %w", fields[0], err))
	}
	if seconds < 0 {
		return 0, NewSourceError(KindFormat, source,
			fmt.Errorf("negative uptime value %q", fields[0]))
	}

	return uint64(seconds * 1000), nil
}
