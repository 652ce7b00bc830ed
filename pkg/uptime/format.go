package uptime

import (
	"fmt"
	"strings"
	"time"
)

// Format renders a duration as a human-readable uptime string, e.g.
// "4d 3h 12m 9s". Leading zero components are omitted; a duration under
// one second renders as "0s".
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)

	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	mins := d / time.Minute
	d -= mins * time.Minute
	secs := d / time.Second

	var sb strings.Builder
	if days > 0 {
		fmt.Fprintf(&sb, "%dd ", days)
	}
	if hours > 0 || sb.Len() > 0 {
		fmt.Fprintf(&sb, "%dh ", hours)
	}
	if mins > 0 || sb.Len() > 0 {
		fmt.Fprintf(&sb, "%dm ", mins)
	}
	fmt.Fprintf(&sb, "%ds", secs)

	return sb.String()
}

// FormatShort renders a duration in compact "4d3h12m" form, dropping
// seconds. A duration under one minute renders as "0m".
func FormatShort(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)

	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	mins := d / time.Minute

	switch {
	case days > 0:
		return fmt.Sprintf("%dd%dh%dm", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh%dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
