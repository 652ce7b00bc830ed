package platform

import "fmt"

// ErrorKind classifies uptime retrieval failures.
type ErrorKind int

const (
	// KindAccess indicates the underlying OS primitive could not be
	// reached (file open failure, sysctl failure, SSH command failure).
	KindAccess ErrorKind = iota
	// KindFormat indicates data was retrieved but could not be
	// interpreted (malformed numeric field, unexpected data).
	KindFormat
	// KindUnsupported indicates no uptime source exists for the build target.
	KindUnsupported
)

// String returns the string representation of an ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case KindAccess:
		return "access"
	case KindFormat:
		return "format"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// SourceError wraps a failure from an uptime source with the kind of
// failure and the source that produced it.
// It preserves the original error for inspection via errors.Is/errors.As.
type SourceError struct {
	Kind   ErrorKind
	Source string // provider identifier, e.g. "procfs"
	Err    error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Source, e.Kind, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a new SourceError.
func NewSourceError(kind ErrorKind, source string, err error) *SourceError {
	return &SourceError{
		Kind:   kind,
		Source: source,
		Err:    err,
	}
}
