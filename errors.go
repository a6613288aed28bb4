package morphdict

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped in a *LoadError) by Load.
var (
	ErrResourceMissing    = errors.New("resource missing")
	ErrMalformed          = errors.New("malformed resource")
	ErrUnsupportedVersion = errors.New("unsupported format version")
)

// LoadError reports which resource made a dictionary load fail.
type LoadError struct {
	Resource string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("morphdict: load %s: %v", e.Resource, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
