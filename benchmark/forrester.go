package benchmark

import "math"

// Forrester is the one-dimensional Forrester function
//
//	f(x) = (6x - 2)²·sin(12x - 4)
//
// on [0, 1]. It is a common Bayesian-optimization test case with a global
// minimum of about -6.0207 near x = 0.7572.
type Forrester struct {
	base
}

// NewForrester creates the Forrester function. Its dimensionality is fixed, so
// passing WithDimensionality fails with ErrConfiguration.
func NewForrester(opts ...Option) (*Forrester, error) {
	if err := fixedDim("Forrester", opts); err != nil {
		return nil, err
	}
	b, err := newBase("Forrester", "Forrester", 1, []Bound{{Lower: 0, Upper: 1}})
	if err != nil {
		return nil, err
	}
	return &Forrester{base: b}, nil
}

// Evaluate computes the Forrester function at x.
func (f *Forrester) Evaluate(x []float64) (float64, error) {
	return f.evaluate(x, func(x []float64) float64 {
		t := 6*x[0] - 2
		return t * t * math.Sin(12*x[0]-4)
	})
}

// GlobalMinimum returns -6.0207 at x = 0.7572.
func (f *Forrester) GlobalMinimum() (Minimum, error) {
	return Minimum{Value: -6.0207, Location: []float64{0.7572}}, nil
}

func (f *Forrester) String() string { return f.compactString() }
