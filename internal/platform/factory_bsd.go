//go:build darwin || freebsd

package platform

// NewProvider creates the uptime provider for the BSD family: macOS,
// iOS (GOOS=ios carries the darwin build tag), and FreeBSD. All of them
// record the boot instant under the kern.boottime sysctl.
func NewProvider() Provider {
	return newSysctlProvider()
}
