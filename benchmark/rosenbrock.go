package benchmark

// Rosenbrock is the Rosenbrock (valley, banana) function
//
//	f(x) = Σ_{i=1}^{n-1} 100·(x_{i+1} - x_i²)² + (1 - x_i)²
//
// The global minimum is 0 at (1, ..., 1) and lies at the bottom of a long,
// narrow parabolic valley.
//
// With one dimension the sum is empty and every in-bounds point evaluates
// to 0.
type Rosenbrock struct {
	base
}

// NewRosenbrock creates a Rosenbrock function on [-2.048, 2.048]^n.
func NewRosenbrock(opts ...Option) (*Rosenbrock, error) {
	dim, err := variableDim("Rosenbrock", opts)
	if err != nil {
		return nil, err
	}
	b, err := newBase("Rosenbrock", "Rosenbrock", dim, uniformBounds(dim, -2.048, 2.048))
	if err != nil {
		return nil, err
	}
	return &Rosenbrock{base: b}, nil
}

// Evaluate computes the Rosenbrock function at x.
func (f *Rosenbrock) Evaluate(x []float64) (float64, error) {
	return f.evaluate(x, func(x []float64) float64 {
		var sum float64
		for i := 0; i < len(x)-1; i++ {
			a := x[i+1] - x[i]*x[i]
			b := 1 - x[i]
			sum += 100*a*a + b*b
		}
		return sum
	})
}

// GlobalMinimum returns 0 at (1, ..., 1).
func (f *Rosenbrock) GlobalMinimum() (Minimum, error) {
	return Minimum{Value: 0, Location: filled(f.dim, 1)}, nil
}
