package benchmark

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	ackleyA = 20.0
	ackleyB = 0.2
	ackleyC = 2 * math.Pi
)

// Ackley is the Ackley function
//
//	f(x) = -a·exp(-b·sqrt(mean(x_i²))) - exp(mean(cos(c·x_i))) + a + e
//
// with a = 20, b = 0.2 and c = 2π. It has a nearly flat outer region and many
// local minima around a single global minimum of 0 at the origin.
type Ackley struct {
	base
}

// NewAckley creates an Ackley function on [-32.768, 32.768]^n.
func NewAckley(opts ...Option) (*Ackley, error) {
	dim, err := variableDim("Ackley", opts)
	if err != nil {
		return nil, err
	}
	b, err := newBase("Ackley", "Ackley", dim, uniformBounds(dim, -32.768, 32.768))
	if err != nil {
		return nil, err
	}
	return &Ackley{base: b}, nil
}

// Evaluate computes the Ackley function at x.
func (f *Ackley) Evaluate(x []float64) (float64, error) {
	return f.evaluate(x, func(x []float64) float64 {
		n := float64(len(x))
		cosines := make([]float64, len(x))
		for i, v := range x {
			cosines[i] = math.Cos(ackleyC * v)
		}
		term1 := -ackleyA * math.Exp(-ackleyB*math.Sqrt(floats.Dot(x, x)/n))
		term2 := -math.Exp(stat.Mean(cosines, nil))
		return term1 + term2 + ackleyA + math.E
	})
}

// GlobalMinimum returns 0 at the origin.
func (f *Ackley) GlobalMinimum() (Minimum, error) {
	return Minimum{Value: 0, Location: make([]float64, f.dim)}, nil
}
