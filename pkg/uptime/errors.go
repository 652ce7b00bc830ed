package uptime

import (
	"errors"

	"github.com/opd-ai/go-uptime/internal/platform"
)

// IsAccessError reports whether err means the underlying OS primitive
// could not be reached: the uptime file could not be opened, the sysctl
// query failed, or a remote command could not be run.
func IsAccessError(err error) bool {
	return hasKind(err, platform.KindAccess)
}

// IsFormatError reports whether err means data was retrieved but could
// not be interpreted: a malformed or missing numeric field, or returned
// data of unexpected shape.
func IsFormatError(err error) bool {
	return hasKind(err, platform.KindFormat)
}

// IsUnsupported reports whether err means the build target has no
// uptime source at all.
func IsUnsupported(err error) bool {
	return hasKind(err, platform.KindUnsupported)
}

func hasKind(err error, kind platform.ErrorKind) bool {
	var se *platform.SourceError
	return errors.As(err, &se) && se.Kind == kind
}
