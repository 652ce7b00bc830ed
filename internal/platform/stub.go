package platform

import (
	"fmt"
	"runtime"
	"time"
)

// stubProvider is compiled for targets without a native uptime source.
// Every call fails with an unsupported-OS error; there is no fallback.
type stubProvider struct{}

func newStubProvider() stubProvider { return stubProvider{} }

func (stubProvider) Name() string { return "unsupported" }

func (s stubProvider) Milliseconds() (uint64, error) {
	return 0, NewSourceError(KindUnsupported, s.Name(),
		fmt.Errorf("uptime retrieval is not supported on %s", runtime.GOOS))
}

func (s stubProvider) BootTime() (time.Time, error) {
	_, err := s.Milliseconds()
	return time.Time{}, err
}
