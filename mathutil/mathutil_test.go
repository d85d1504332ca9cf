package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	assert.Equal(t, 5, Add(2, 3))
	assert.Equal(t, 0, Add(-1, 1))
	assert.Equal(t, 0, Add(0, 0))
}

func TestSubtract(t *testing.T) {
	assert.Equal(t, 2, Subtract(5, 3))
	assert.Equal(t, -5, Subtract(0, 5))
	assert.Equal(t, 0, Subtract(10, 10))
}

func TestMultiply(t *testing.T) {
	assert.Equal(t, 12, Multiply(3, 4))
	assert.Equal(t, -10, Multiply(-2, 5))
	assert.Equal(t, 0, Multiply(0, 100))
}

func TestDivide(t *testing.T) {
	got, err := Divide(10, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)

	got, err = Divide(7, 2)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, got, 1e-9)
}

func TestDivideByZero(t *testing.T) {
	_, err := Divide(10, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Divide(-5, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestPower(t *testing.T) {
	assert.InDelta(t, 8.0, Power(2, 3), 1e-9)
	assert.InDelta(t, 1.0, Power(5, 0), 1e-9)
	assert.InDelta(t, 0.25, Power(2, -2), 1e-9)
}

func TestOperationCountIncreases(t *testing.T) {
	before := OperationCount()
	Add(1, 1)
	Multiply(2, 2)
	assert.GreaterOrEqual(t, OperationCount(), before+2)
}
