//go:build windows

package platform

import (
	"time"

	"golang.org/x/sys/windows"
)

var (
	modKernel32        = windows.NewLazySystemDLL("kernel32.dll")
	procGetTickCount64 = modKernel32.NewProc("GetTickCount64")
)

// tickCountProvider reads the millisecond tick counter the Windows
// kernel maintains since system start. GetTickCount64 cannot fail by
// contract and does not wrap for 584 million years; resolution is the
// system timer tick, typically 10-16ms.
type tickCountProvider struct{}

func newTickCountProvider() *tickCountProvider {
	return &tickCountProvider{}
}

func (p *tickCountProvider) Name() string { return "tickcount" }

// Milliseconds returns GetTickCount64, which reports milliseconds since
// system start directly. No parsing or computation is involved.
func (p *tickCountProvider) Milliseconds() (uint64, error) {
	ret, _, _ := procGetTickCount64.Call()
	return uint64(ret), nil
}

// BootTime derives the boot instant as current time minus the tick count.
func (p *tickCountProvider) BootTime() (time.Time, error) {
	ms, err := p.Milliseconds()
	if err != nil {
		return time.Time{}, err
	}
	return time.Now().Add(-time.Duration(ms) * time.Millisecond), nil
}
