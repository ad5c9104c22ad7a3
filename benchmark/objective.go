package benchmark

// ObjectiveFunction is the objective shape optimizers consume.
type ObjectiveFunction func([]float64) (float64, error)

// Objective adapts fn for an optimizer. Points outside the bounds surface as
// ErrDomain errors rather than penalty values.
func Objective(fn Function) ObjectiveFunction {
	return fn.Evaluate
}

// BoundsPairs returns fn's bounds as [min, max] pairs, one per dimension.
func BoundsPairs(fn Function) [][2]float64 {
	bounds := fn.Bounds()
	pairs := make([][2]float64, len(bounds))
	for i, b := range bounds {
		pairs[i] = b.Pair()
	}
	return pairs
}
