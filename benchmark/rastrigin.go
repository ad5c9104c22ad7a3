package benchmark

import "math"

// Rastrigin is the Rastrigin function
//
//	f(x) = 10n + Σ (x_i² - 10·cos(2π·x_i))
//
// whose local minima sit on a regular lattice around the global minimum of 0
// at the origin.
type Rastrigin struct {
	base
}

// NewRastrigin creates a Rastrigin function on [-5.12, 5.12]^n.
func NewRastrigin(opts ...Option) (*Rastrigin, error) {
	dim, err := variableDim("Rastrigin", opts)
	if err != nil {
		return nil, err
	}
	b, err := newBase("Rastrigin", "Rastrigin", dim, uniformBounds(dim, -5.12, 5.12))
	if err != nil {
		return nil, err
	}
	return &Rastrigin{base: b}, nil
}

// Evaluate computes the Rastrigin function at x.
func (f *Rastrigin) Evaluate(x []float64) (float64, error) {
	return f.evaluate(x, func(x []float64) float64 {
		sum := 10 * float64(len(x))
		for _, v := range x {
			sum += v*v - 10*math.Cos(2*math.Pi*v)
		}
		return sum
	})
}

// GlobalMinimum returns 0 at the origin.
func (f *Rastrigin) GlobalMinimum() (Minimum, error) {
	return Minimum{Value: 0, Location: make([]float64, f.dim)}, nil
}
