// Package mathutil provides small arithmetic helpers used by the
// packages and testing examples.
package mathutil

import (
	"errors"
	"math"
	"sync/atomic"
)

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

var opCount atomic.Uint64

// Add returns the sum of a and b.
func Add(a, b int) int {
	opCount.Add(1)
	return a + b
}

// Subtract returns a minus b.
func Subtract(a, b int) int {
	opCount.Add(1)
	return a - b
}

// Multiply returns the product of a and b.
func Multiply(a, b int) int {
	opCount.Add(1)
	return a * b
}

// Divide returns a divided by b, or ErrDivisionByZero when b is zero.
func Divide(a, b float64) (float64, error) {
	opCount.Add(1)
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Power returns base raised to exp.
func Power(base float64, exp int) float64 {
	opCount.Add(1)
	return math.Pow(base, float64(exp))
}

// OperationCount reports how many operations this package has performed
// since process start. It exists to demonstrate package-level state
// guarded by sync/atomic.
func OperationCount() uint64 {
	return opCount.Load()
}
