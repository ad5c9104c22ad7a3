package benchmark

import "math"

// Schwefel is the Schwefel function
//
//	f(x) = 418.9829n - Σ x_i·sin(sqrt(|x_i|))
//
// Its second-best minima are far from the global minimum of 0 at
// (420.9687, ..., 420.9687).
type Schwefel struct {
	base
}

// NewSchwefel creates a Schwefel function on [-500, 500]^n.
func NewSchwefel(opts ...Option) (*Schwefel, error) {
	dim, err := variableDim("Schwefel", opts)
	if err != nil {
		return nil, err
	}
	b, err := newBase("Schwefel", "Schwefel", dim, uniformBounds(dim, -500, 500))
	if err != nil {
		return nil, err
	}
	return &Schwefel{base: b}, nil
}

// Evaluate computes the Schwefel function at x.
func (f *Schwefel) Evaluate(x []float64) (float64, error) {
	return f.evaluate(x, func(x []float64) float64 {
		sum := 418.9829 * float64(len(x))
		for _, v := range x {
			sum -= v * math.Sin(math.Sqrt(math.Abs(v)))
		}
		return sum
	})
}

// GlobalMinimum returns 0 at (420.9687, ..., 420.9687).
func (f *Schwefel) GlobalMinimum() (Minimum, error) {
	return Minimum{Value: 0, Location: filled(f.dim, 420.9687)}, nil
}
