package task

import (
	"math/big"

	"github.com/smartcontractkit/eccalc/internal/curve"
	"github.com/smartcontractkit/eccalc/internal/gf2"
)

// FormatInt renders a prime field element in decimal.
func FormatInt(v *big.Int) string {
	return v.String()
}

// FormatPoly renders a polynomial as its coefficient bit mask, in decimal.
func FormatPoly(p gf2.Poly) string {
	return p.Bits().String()
}

// FormatPoint renders "O" for the point at infinity and "(x, y)" otherwise.
func FormatPoint[T any](p curve.Point[T], element func(T) string) string {
	if p.IsInfinity() {
		return "O"
	}
	x, y := p.XY()
	return "(" + element(x) + ", " + element(y) + ")"
}

// FormatTask renders the task description: "P + Q" for additions and "P * k"
// for scalar multiplications.
func FormatTask[T any](t Task[T], element func(T) string) string {
	if t.Kind == Mul {
		return FormatPoint(t.P, element) + " * " + t.Scalar.String()
	}
	return FormatPoint(t.P, element) + " + " + FormatPoint(t.Q, element)
}

// FormatResult renders one output line: the task description, then the
// computed point.
func FormatResult[T any](r Result[T], element func(T) string) string {
	return FormatTask(r.Task, element) + " = " + FormatPoint(r.Point, element)
}
