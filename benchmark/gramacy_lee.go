package benchmark

import "math"

// GramacyLee is the one-dimensional Gramacy and Lee function
//
//	f(x) = sin(10πx)/(2x) + (x - 1)⁴
//
// on [0.5, 2.5].
type GramacyLee struct {
	base
}

// NewGramacyLee creates the Gramacy and Lee function. Like Forrester it
// rejects WithDimensionality.
func NewGramacyLee(opts ...Option) (*GramacyLee, error) {
	if err := fixedDim("GramacyLee", opts); err != nil {
		return nil, err
	}
	b, err := newBase("GramacyLee", "Gramacy and Lee", 1, []Bound{{Lower: 0.5, Upper: 2.5}})
	if err != nil {
		return nil, err
	}
	return &GramacyLee{base: b}, nil
}

func (f *GramacyLee) Evaluate(x []float64) (float64, error) {
	return f.evaluate(x, func(x []float64) float64 {
		d := x[0] - 1
		return math.Sin(10*math.Pi*x[0])/(2*x[0]) + d*d*d*d
	})
}

func (f *GramacyLee) GlobalMinimum() (Minimum, error) {
	return Minimum{Value: -0.869011134989500, Location: []float64{0.548563444114526}}, nil
}

func (f *GramacyLee) String() string { return f.compactString() }
