package benchmark

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Schubert is the Schubert function
//
//	f(x) = Π_i Σ_{j=1}^{5} j·cos((j+1)·x_i + j)
//
// It has many global minimizers; only the value is recorded.
type Schubert struct {
	base
}

// NewSchubert creates a Schubert function on [-10, 10]^n.
func NewSchubert(opts ...Option) (*Schubert, error) {
	dim, err := variableDim("Schubert", opts)
	if err != nil {
		return nil, err
	}
	b, err := newBase("Schubert", "Schubert", dim, uniformBounds(dim, -10, 10))
	if err != nil {
		return nil, err
	}
	return &Schubert{base: b}, nil
}

// Evaluate computes the Schubert function at x.
func (f *Schubert) Evaluate(x []float64) (float64, error) {
	return f.evaluate(x, func(x []float64) float64 {
		factors := make([]float64, len(x))
		for i, v := range x {
			for j := 1.0; j <= 5; j++ {
				factors[i] += j * math.Cos((j+1)*v+j)
			}
		}
		return floats.Prod(factors)
	})
}

// GlobalMinimum returns -186.7309 with an unknown location.
func (f *Schubert) GlobalMinimum() (Minimum, error) {
	return Minimum{Value: -186.7309}, nil
}

func (f *Schubert) String() string { return f.compactString() }
