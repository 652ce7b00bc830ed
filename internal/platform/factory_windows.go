//go:build windows

package platform

// NewProvider creates the uptime provider for Windows.
func NewProvider() Provider {
	return newTickCountProvider()
}
