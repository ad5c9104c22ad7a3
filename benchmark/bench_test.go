package benchmark

import (
	"fmt"
	"math/rand"
	"testing"
)

// BenchmarkEvaluate measures evaluation cost across dimensionalities
func BenchmarkEvaluate(b *testing.B) {
	for _, dim := range []int{2, 10, 100} {
		fns, err := All(WithDimensionality(dim))
		if err != nil {
			b.Fatalf("All(%d): %v", dim, err)
		}

		for _, fn := range fns {
			b.Run(fmt.Sprintf("%s/dim=%d", fn.Name(), dim), func(b *testing.B) {
				rng := rand.New(rand.NewSource(1))
				x := make([]float64, dim)
				for i, bound := range fn.Bounds() {
					x[i] = bound.Lower + rng.Float64()*(bound.Upper-bound.Lower)
				}

				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := fn.Evaluate(x); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkCheckBounds measures the cost of the bounds precondition alone
func BenchmarkCheckBounds(b *testing.B) {
	fn, err := NewSchwefel(WithDimensionality(100))
	if err != nil {
		b.Fatal(err)
	}
	x := make([]float64, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = fn.CheckBounds(x)
	}
}
