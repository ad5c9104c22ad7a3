package benchmark

import (
	"errors"

	errs "github.com/copyleftdev/benchfn/internal/errors"
)

var (
	// ErrConfiguration indicates a function could not be constructed: the
	// dimensionality is not positive, the bounds do not match it, or a fixed
	// dimensionality function was given a dimensionality option.
	ErrConfiguration = errors.New("benchmark: invalid configuration")
	// ErrShape indicates a point whose length differs from the dimensionality.
	ErrShape = errors.New("benchmark: point shape mismatch")
	// ErrDomain indicates a point outside the declared bounds.
	ErrDomain = errors.New("benchmark: point outside bounds")
	// ErrNotSupported indicates the function does not supply a global minimum.
	ErrNotSupported = errors.New("benchmark: global minimum not supported")
	// ErrUnknownFunction indicates a registry key that names no function.
	ErrUnknownFunction = errors.New("benchmark: unknown function")
)

// Kind returns a short label for the sentinel err wraps, or "internal" when
// it wraps none of them.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errs.Is(err, ErrConfiguration):
		return "configuration"
	case errs.Is(err, ErrShape):
		return "shape"
	case errs.Is(err, ErrDomain):
		return "domain"
	case errs.Is(err, ErrNotSupported):
		return "not_supported"
	case errs.Is(err, ErrUnknownFunction):
		return "unknown_function"
	default:
		return "internal"
	}
}

func newError(kind error, component, op, format string, args ...interface{}) error {
	return errs.Wrapf(kind, format, args...).
		WithComponent(component).
		WithOperation(op)
}
