// Package benchmark implements closed-form test functions for optimization
// algorithms. Every function satisfies the Function contract: it has a name,
// a dimensionality and one closed interval per dimension, it evaluates points
// only inside those intervals, and it reports its global minimum.
//
// The functions offered are:
//
//   - Ackley      n-dimensional, [-32.768, 32.768], minimum 0 at the origin
//   - Forrester   1-dimensional, [0, 1], minimum ≈ -6.0207 at x ≈ 0.7572
//   - GramacyLee  1-dimensional, [0.5, 2.5], minimum ≈ -0.869011 at x ≈ 0.548563
//   - Griewank    n-dimensional, [-600, 600], minimum 0 at the origin
//   - Rastrigin   n-dimensional, [-5.12, 5.12], minimum 0 at the origin
//   - Rosenbrock  n-dimensional, [-2.048, 2.048], minimum 0 at (1, ..., 1)
//   - Schubert    n-dimensional, [-10, 10], minimum ≈ -186.7309, location unknown
//   - Schwefel    n-dimensional, [-500, 500], minimum 0 at (420.9687, ...)
//
// # Construction
//
// The n-dimensional functions default to two dimensions. Pass
// WithDimensionality to choose another:
//
//	fn, err := benchmark.NewRastrigin(benchmark.WithDimensionality(10))
//
// Forrester and GramacyLee are only defined in one dimension and reject
// WithDimensionality outright, even when the requested value is 1.
//
// Functions can also be built by registry key with New, which is what the
// evaluation service uses.
//
// # Errors
//
// Failures carry one of the sentinel kinds ErrConfiguration, ErrShape,
// ErrDomain, ErrNotSupported or ErrUnknownFunction; test for them with
// errors.Is. Points outside the bounds are never clamped.
//
// # Concurrency
//
// Instances are immutable after construction. Evaluate, CheckBounds and
// GlobalMinimum may be called from any number of goroutines.
package benchmark
