//go:build linux

package platform

// NewProvider creates the uptime provider for Linux and Android, which
// both expose /proc/uptime.
func NewProvider() Provider {
	return newProcfsProvider()
}
