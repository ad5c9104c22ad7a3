package benchmark

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Griewank is the Griewank function
//
//	f(x) = 1 + Σ x_i²/4000 - Π cos(x_i/sqrt(i))
//
// where i counts dimensions from 1. Its many local minima are regularly
// distributed; the global minimum is 0 at the origin.
type Griewank struct {
	base
}

// NewGriewank creates a Griewank function on [-600, 600]^n.
func NewGriewank(opts ...Option) (*Griewank, error) {
	dim, err := variableDim("Griewank", opts)
	if err != nil {
		return nil, err
	}
	b, err := newBase("Griewank", "Griewank", dim, uniformBounds(dim, -600, 600))
	if err != nil {
		return nil, err
	}
	return &Griewank{base: b}, nil
}

// Evaluate computes the Griewank function at x.
func (f *Griewank) Evaluate(x []float64) (float64, error) {
	return f.evaluate(x, func(x []float64) float64 {
		cosines := make([]float64, len(x))
		for i, v := range x {
			cosines[i] = math.Cos(v / math.Sqrt(float64(i+1)))
		}
		return 1 + floats.Dot(x, x)/4000 - floats.Prod(cosines)
	})
}

// GlobalMinimum returns 0 at the origin.
func (f *Griewank) GlobalMinimum() (Minimum, error) {
	return Minimum{Value: 0, Location: make([]float64, f.dim)}, nil
}
