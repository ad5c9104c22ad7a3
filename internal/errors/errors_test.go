package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errKind = stderrors.New("kind")

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "message only",
			err:  New("boom"),
			want: "boom",
		},
		{
			name: "component and operation",
			err:  Wrap(errKind, "bad input").WithComponent("Ackley").WithOperation("Evaluate"),
			want: "Ackley.Evaluate: bad input: kind",
		},
		{
			name: "operation only",
			err:  Wrap(errKind, "").WithOperation("New"),
			want: "New: kind",
		},
		{
			name: "formatted",
			err:  Errorf("dim=%d", 3),
			want: "dim=3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "x"))
	assert.Nil(t, Wrapf(nil, "x %d", 1))
}

func TestWrapDoesNotMutate(t *testing.T) {
	inner := New("inner").WithOperation("first")
	outer := Wrap(inner, "outer").WithOperation("second")

	assert.Equal(t, "first", inner.Operation)
	assert.Equal(t, "inner", inner.Message)
	assert.Equal(t, "second: outer: first: inner", outer.Error())
}

func TestChainHelpers(t *testing.T) {
	err := Wrapf(errKind, "point %v", []float64{1})
	wrapped := fmt.Errorf("service: %w", err)

	assert.True(t, Is(wrapped, errKind))
	assert.False(t, Is(wrapped, stderrors.New("kind")))

	var e *Error
	require.True(t, As(wrapped, &e))
	assert.Equal(t, "point [1]", e.Message)
	assert.Equal(t, errKind, e.Unwrap())
	assert.False(t, As(nil, &e))
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")
	require.NotEmpty(t, err.StackTrace())
	// frames from this package are filtered, the test runner is not
	assert.Contains(t, err.StackTrace()[0], "testing.tRunner")
}
