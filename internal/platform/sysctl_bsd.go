//go:build darwin || freebsd

package platform

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// sysctlProvider derives uptime from the kernel's recorded boot time,
// queried via the kern.boottime sysctl. The boot timestamp is recorded
// once at boot with roughly one-second effective precision, though the
// timeval itself carries microseconds.
type sysctlProvider struct {
	bootTimeval func() (*unix.Timeval, error)
	now         func() time.Time
}

// newSysctlProvider creates a sysctlProvider backed by the real sysctl
// interface and wall clock.
func newSysctlProvider() *sysctlProvider {
	return &sysctlProvider{
		bootTimeval: func() (*unix.Timeval, error) {
			return unix.SysctlTimeval("kern.boottime")
		},
		now: time.Now,
	}
}

func (p *sysctlProvider) Name() string { return "sysctl" }

// BootTime queries kern.boottime and converts the returned timeval to a
// wall-clock instant.
func (p *sysctlProvider) BootTime() (time.Time, error) {
	tv, err := p.bootTimeval()
	if err != nil {
		return time.Time{}, NewSourceError(KindAccess, p.Name(),
			fmt.Errorf("sysctl kern.boottime: %w", err))
	}
	if tv == nil || tv.Sec == 0 {
		return time.Time{}, NewSourceError(KindFormat, p.Name(),
			fmt.Errorf("sysctl kern.boottime returned empty timeval"))
	}
	return time.Unix(int64(tv.Sec), int64(tv.Usec)*1000), nil
}

// Milliseconds computes current time minus boot time.
func (p *sysctlProvider) Milliseconds() (uint64, error) {
	boot, err := p.BootTime()
	if err != nil {
		return 0, err
	}
	ms, err := SinceBoot(boot, p.now())
	if err != nil {
		return 0, NewSourceError(KindFormat, p.Name(), err)
	}
	return ms, nil
}
