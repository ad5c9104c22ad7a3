package benchmark

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjective(t *testing.T) {
	fn, err := NewRosenbrock(WithDimensionality(3))
	require.NoError(t, err)

	obj := Objective(fn)
	v, err := obj([]float64{1, 1, 1})
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = obj([]float64{3, 0, 0})
	assert.True(t, errors.Is(err, ErrDomain))
}

func TestBoundsPairs(t *testing.T) {
	fn, err := NewGriewank(WithDimensionality(3))
	require.NoError(t, err)

	assert.Equal(t, [][2]float64{{-600, 600}, {-600, 600}, {-600, 600}}, BoundsPairs(fn))
}
