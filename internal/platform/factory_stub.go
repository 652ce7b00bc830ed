//go:build !linux && !darwin && !freebsd && !windows

package platform

// NewProvider creates the stub provider for targets without a native
// uptime source.
func NewProvider() Provider {
	return newStubProvider()
}
