// Package curve implements elliptic curve point arithmetic over the fields of
// the field package. One generic add/mul engine evaluates the group law; the
// three curve families (Weierstrass over Z_p, binary non-supersingular, binary
// supersingular) supply the chord, tangent and result-point formulas.
package curve

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/smartcontractkit/eccalc/internal/field"
)

// ErrDegenerateCurve is returned when doubling is requested on a binary
// supersingular curve whose coefficient a normalizes to zero. It is raised at
// evaluation time, not at construction: a curve whose inputs never require
// doubling is still usable.
var ErrDegenerateCurve = errors.New("supersingular curve coefficient a is zero, doubling is undefined")

// ErrNegativeScalar is returned by Mul for scalars below zero.
var ErrNegativeScalar = errors.New("scalar must be non-negative")

// Point is an affine point with coordinates of type T, or the point at
// infinity, the curve group's identity. Infinity is an explicit tag, not a
// pair of sentinel coordinates: an infinite point carries no coordinates at
// all. Points are immutable values with no reference to the curve that
// produced them.
type Point[T any] struct {
	x, y     T
	infinite bool
}

// NewPoint returns the affine point (x, y).
func NewPoint[T any](x, y T) Point[T] {
	return Point[T]{x: x, y: y}
}

// Infinity returns the point at infinity.
func Infinity[T any]() Point[T] {
	return Point[T]{infinite: true}
}

func (p Point[T]) IsInfinity() bool {
	return p.infinite
}

// XY returns the affine coordinates. Meaningless for the point at infinity.
func (p Point[T]) XY() (T, T) {
	return p.x, p.y
}

// arithmetic supplies the curve-family-specific formulas. The unexported
// marker method keeps the variant set closed: exactly three families exist
// and no others can be registered.
type arithmetic[T any] interface {
	internal()

	// chord returns the coefficient k for the case p.x != q.x.
	chord(p, q Point[T]) (T, error)

	// tangent returns the coefficient k for the doubling case p == q.
	// Both points are passed for signature symmetry; only p is used.
	tangent(p, q Point[T]) (T, error)

	// resultPoint computes the raw result coordinates from p, q and the
	// normalized coefficient k. The results may leave the canonical range;
	// the engine normalizes them.
	resultPoint(p, q Point[T], k T) (T, T)
}

// Curve evaluates the group law for one curve family over one field. A Curve
// holds only its coefficients and an owned Field; it is never mutated by Add
// or Mul and is safe to use from concurrent goroutines.
type Curve[T any] struct {
	field field.Field[T]
	arith arithmetic[T]
}

// Field returns the curve's underlying field.
func (c *Curve[T]) Field() field.Field[T] {
	return c.field
}

// PointsEqual reports whether p and q are the same group element.
func (c *Curve[T]) PointsEqual(p, q Point[T]) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	return c.field.Equal(p.x, q.x) && c.field.Equal(p.y, q.y)
}

// Add returns p + q under the curve group law.
func (c *Curve[T]) Add(p, q Point[T]) (Point[T], error) {
	if p.IsInfinity() {
		return q, nil
	}
	if q.IsInfinity() {
		return p, nil
	}
	p = NewPoint(c.field.Normalize(p.x), c.field.Normalize(p.y))
	q = NewPoint(c.field.Normalize(q.x), c.field.Normalize(q.y))

	var k T
	var err error
	switch {
	case !c.field.Equal(p.x, q.x):
		k, err = c.arith.chord(p, q)
	case !c.field.Equal(p.y, q.y):
		// equal x, distinct y: the points are inverses of each other
		return Infinity[T](), nil
	default:
		k, err = c.arith.tangent(p, q)
	}
	if err != nil {
		return Point[T]{}, err
	}
	k = c.field.Normalize(k)
	x, y := c.arith.resultPoint(p, q, k)
	return NewPoint(c.field.Normalize(x), c.field.Normalize(y)), nil
}

// Mul returns scalar * p by double-and-add over the scalar's binary digits,
// O(log scalar) group operations. A zero scalar yields the point at infinity,
// the group identity; negative scalars are rejected.
func (c *Curve[T]) Mul(p Point[T], scalar *big.Int) (Point[T], error) {
	if scalar.Sign() < 0 {
		return Point[T]{}, ErrNegativeScalar
	}
	result := Infinity[T]()
	addend := p
	k := new(big.Int).Set(scalar)
	var err error
	for k.Sign() > 0 {
		if k.Bit(0) == 1 {
			if result, err = c.Add(result, addend); err != nil {
				return Point[T]{}, err
			}
		}
		if addend, err = c.Add(addend, addend); err != nil {
			return Point[T]{}, err
		}
		k.Rsh(k, 1)
	}
	return result, nil
}
