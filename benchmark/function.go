package benchmark

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// DefaultDimensionality is used by the n-dimensional functions when no
// WithDimensionality option is given.
const DefaultDimensionality = 2

// Function is the contract every benchmark function satisfies.
type Function interface {
	// Name returns the display name, e.g. "Gramacy and Lee".
	Name() string

	// Dimensionality returns the number of coordinates a point must have.
	Dimensionality() int

	// Bounds returns a copy of the per-dimension intervals.
	Bounds() []Bound

	// Evaluate computes the function at x. It fails with ErrShape or
	// ErrDomain instead of computing a value for an invalid point.
	Evaluate(x []float64) (float64, error)

	// CheckBounds reports whether every coordinate of x lies inside its
	// interval, inclusive. It fails with ErrShape when len(x) differs from
	// the dimensionality.
	CheckBounds(x []float64) (bool, error)

	// GlobalMinimum returns the known minimum, or ErrNotSupported.
	GlobalMinimum() (Minimum, error)

	// String returns the short display form, e.g. "Ackley (dim=2)".
	String() string

	// GoString returns the detailed form including the bounds.
	GoString() string
}

// Bound is a closed interval [Lower, Upper].
type Bound struct {
	Lower float64
	Upper float64
}

// Contains reports whether Lower <= v <= Upper. NaN is never contained.
func (b Bound) Contains(v float64) bool {
	return b.Lower <= v && v <= b.Upper
}

// Pair returns the bound as a [min, max] array.
func (b Bound) Pair() [2]float64 {
	return [2]float64{b.Lower, b.Upper}
}

func (b Bound) String() string {
	return "(" + formatFloat(b.Lower) + ", " + formatFloat(b.Upper) + ")"
}

// Minimum is a global minimum record. Location is nil when the minimizer is
// not known in closed form.
type Minimum struct {
	Value    float64
	Location []float64
}

// LocationKnown reports whether the record carries a minimizer.
func (m Minimum) LocationKnown() bool {
	return m.Location != nil
}

// Option configures a function at construction.
type Option func(*options)

type options struct {
	dim    int
	dimSet bool
}

// WithDimensionality sets the number of dimensions of an n-dimensional
// function.
func WithDimensionality(dim int) Option {
	return func(o *options) {
		o.dim = dim
		o.dimSet = true
	}
}

func applyOptions(opts []Option) options {
	o := options{dim: DefaultDimensionality}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// variableDim resolves the dimensionality of an n-dimensional function.
func variableDim(kind string, opts []Option) (int, error) {
	o := applyOptions(opts)
	if o.dim < 1 {
		return 0, newError(ErrConfiguration, kind, "New",
			"dimensionality must be positive, got %d", o.dim)
	}
	return o.dim, nil
}

// fixedDim rejects any dimensionality option for a one-dimensional function.
func fixedDim(kind string, opts []Option) error {
	if o := applyOptions(opts); o.dimSet {
		return newError(ErrConfiguration, kind, "New",
			"dimensionality is fixed at 1 and cannot be set (got %d)", o.dim)
	}
	return nil
}

// base holds the identity shared by every function and enforces the bounds
// precondition of Evaluate.
type base struct {
	kind   string
	name   string
	dim    int
	bounds []Bound
}

func newBase(kind, name string, dim int, bounds []Bound) (base, error) {
	if dim < 1 {
		return base{}, newError(ErrConfiguration, kind, "New",
			"dimensionality must be positive, got %d", dim)
	}
	if len(bounds) != dim {
		return base{}, newError(ErrConfiguration, kind, "New",
			"number of bounds (%d) must match dimension (%d)", len(bounds), dim)
	}
	for i, b := range bounds {
		if !(b.Lower <= b.Upper) {
			return base{}, newError(ErrConfiguration, kind, "New",
				"bound %d has lower %v above upper %v", i, b.Lower, b.Upper)
		}
	}
	return base{
		kind:   kind,
		name:   name,
		dim:    dim,
		bounds: append([]Bound(nil), bounds...),
	}, nil
}

// uniformBounds repeats [lower, upper] for every dimension.
func uniformBounds(dim int, lower, upper float64) []Bound {
	if dim < 0 {
		dim = 0
	}
	bounds := make([]Bound, dim)
	for i := range bounds {
		bounds[i] = Bound{Lower: lower, Upper: upper}
	}
	return bounds
}

func (b *base) Name() string { return b.name }

func (b *base) Dimensionality() int { return b.dim }

func (b *base) Bounds() []Bound {
	return append([]Bound(nil), b.bounds...)
}

func (b *base) CheckBounds(x []float64) (bool, error) {
	if err := b.checkShape("CheckBounds", x); err != nil {
		return false, err
	}
	return b.outside(x) < 0, nil
}

// GlobalMinimum is the contract default; every concrete function overrides it.
func (b *base) GlobalMinimum() (Minimum, error) {
	return Minimum{}, newError(ErrNotSupported, b.kind, "GlobalMinimum",
		"global minimum not implemented for %s", b.name)
}

func (b *base) String() string {
	return fmt.Sprintf("%s (dim=%d)", b.name, b.dim)
}

// compactString is the short form without the space before the dimension.
func (b *base) compactString() string {
	return fmt.Sprintf("%s(dim=%d)", b.name, b.dim)
}

func (b *base) GoString() string {
	parts := make([]string, len(b.bounds))
	for i, bound := range b.bounds {
		parts[i] = bound.String()
	}
	return fmt.Sprintf("%s(name='%s', dim=%d, bounds=[%s])",
		b.kind, b.name, b.dim, strings.Join(parts, ", "))
}

// evaluate validates x and then applies formula to it.
func (b *base) evaluate(x []float64, formula func([]float64) float64) (float64, error) {
	if err := b.checkShape("Evaluate", x); err != nil {
		return 0, err
	}
	if i := b.outside(x); i >= 0 {
		return 0, newError(ErrDomain, b.kind, "Evaluate",
			"coordinate %d = %v outside %s", i, x[i], b.bounds[i])
	}
	return formula(x), nil
}

func (b *base) checkShape(op string, x []float64) error {
	if len(x) != b.dim {
		return newError(ErrShape, b.kind, op,
			"input dimension %d doesn't match function dimension %d", len(x), b.dim)
	}
	return nil
}

// outside returns the index of the first coordinate outside its bound, or -1.
func (b *base) outside(x []float64) int {
	for i, v := range x {
		if !b.bounds[i].Contains(v) {
			return i
		}
	}
	return -1
}

// filled returns a vector of n copies of v.
func filled(n int, v float64) []float64 {
	out := make([]float64, n)
	floats.AddConst(v, out)
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
