package benchmark_test

import (
	"errors"
	"fmt"

	"github.com/copyleftdev/benchfn/benchmark"
)

func Example() {
	fn, err := benchmark.NewRastrigin(benchmark.WithDimensionality(3))
	if err != nil {
		panic(err)
	}

	v, _ := fn.Evaluate([]float64{1, -2, 0})
	fmt.Println(fn)
	fmt.Printf("%.4f\n", v)

	_, err = fn.Evaluate([]float64{6, 0, 0})
	fmt.Println(errors.Is(err, benchmark.ErrDomain))
	// Output:
	// Rastrigin (dim=3)
	// 5.0000
	// true
}

func ExampleSchubert_GlobalMinimum() {
	fn, _ := benchmark.NewSchubert()
	m, _ := fn.GlobalMinimum()
	fmt.Println(m.Value, m.LocationKnown())
	// Output: -186.7309 false
}

func ExampleNewForrester() {
	_, err := benchmark.NewForrester(benchmark.WithDimensionality(1))
	fmt.Println(errors.Is(err, benchmark.ErrConfiguration))

	fn, _ := benchmark.NewForrester()
	fmt.Printf("%v %#v\n", fn, fn)
	// Output:
	// true
	// Forrester(dim=1) Forrester(name='Forrester', dim=1, bounds=[(0, 1)])
}

func ExampleNew() {
	fn, err := benchmark.New("gramacy-lee")
	if err != nil {
		panic(err)
	}
	m, _ := fn.GlobalMinimum()
	v, _ := fn.Evaluate(m.Location)
	fmt.Printf("%s %.6f\n", fn, v)
	// Output: Gramacy and Lee(dim=1) -0.869011
}
