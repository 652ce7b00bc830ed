//go:build darwin || freebsd

package platform

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func TestSysctlProviderWithMockBootTime(t *testing.T) {
	now := time.Now()
	boot := now.Add(-time.Hour)

	provider := &sysctlProvider{
		bootTimeval: func() (*unix.Timeval, error) {
			tv := unix.NsecToTimeval(boot.UnixNano())
			return &tv, nil
		},
		now: func() time.Time { return now },
	}

	ms, err := provider.Milliseconds()
	if err != nil {
		t.Fatalf("Milliseconds() error = %v", err)
	}
	if ms < 3600000 || ms > 3600000+1000 {
		t.Errorf("Milliseconds() = %d, want within [3600000, 3601000]", ms)
	}
}

func TestSysctlProviderQueryFailure(t *testing.T) {
	provider := &sysctlProvider{
		bootTimeval: func() (*unix.Timeval, error) {
			return nil, fmt.Errorf("operation not permitted")
		},
		now: time.Now,
	}

	_, err := provider.Milliseconds()
	if err == nil {
		t.Fatal("Milliseconds() should surface sysctl failure")
	}

	var se *SourceError
	if !errors.As(err, &se) {
		t.Fatalf("error should be a SourceError, got %T", err)
	}
	if se.Kind != KindAccess {
		t.Errorf("Kind = %v, want access", se.Kind)
	}
}

func TestSysctlProviderFutureBootTime(t *testing.T) {
	now := time.Now()

	provider := &sysctlProvider{
		bootTimeval: func() (*unix.Timeval, error) {
			tv := unix.NsecToTimeval(now.Add(time.Minute).UnixNano())
			return &tv, nil
		},
		now: func() time.Time { return now },
	}

	_, err := provider.Milliseconds()
	if err == nil {
		t.Fatal("Milliseconds() should fail when boot is after now")
	}

	var se *SourceError
	if !errors.As(err, &se) {
		t.Fatalf("error should be a SourceError, got %T", err)
	}
	if se.Kind != KindFormat {
		t.Errorf("Kind = %v, want format", se.Kind)
	}
}

func TestSysctlProviderLive(t *testing.T) {
	provider := newSysctlProvider()

	ms, err := provider.Milliseconds()
	if err != nil {
		t.Fatalf("Milliseconds() error = %v", err)
	}
	if ms == 0 {
		t.Error("Milliseconds() should be greater than 0")
	}

	boot, err := provider.BootTime()
	if err != nil {
		t.Fatalf("BootTime() error = %v", err)
	}
	if !boot.Before(time.Now()) {
		t.Errorf("BootTime() = %v, want it in the past", boot)
	}
}
