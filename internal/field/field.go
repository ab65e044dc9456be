// Package field provides the finite fields backing elliptic curve arithmetic.
// Two implementations exist: Prime (Z_p) and Binary (GF(2^n)). A field is a
// configuration object, fixed at construction, with no mutable runtime state;
// a single instance is safe to share across concurrent curve computations.
package field

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field is the capability a curve needs from its underlying finite field.
type Field[T any] interface {
	// Normalize returns the canonical representative of v in the field.
	Normalize(v T) T

	// Mod applies the field's full reduction. Used after raw arithmetic that
	// may leave the canonical range.
	Mod(v T) T

	// Invert returns the multiplicative inverse of v in the field. Returns an
	// error wrapping ErrNotInvertible if v reduces to the additive identity,
	// or shares a nontrivial factor with the modulus.
	Invert(v T) (T, error)

	// Zero returns the additive identity.
	Zero() T

	// One returns the multiplicative identity.
	One() T

	// Equal reports whether a and b represent the same field element.
	Equal(a, b T) bool
}

// ErrNotInvertible is returned by Invert for elements with no multiplicative
// inverse. Use errors.Is to test for it.
var ErrNotInvertible = errors.New("element has no multiplicative inverse in the field")

// UnsupportedDegreeError reports a GF(2^n) construction request for a degree
// with no entry in the built-in irreducible polynomial table.
type UnsupportedDegreeError struct {
	Degree int
}

func (e *UnsupportedDegreeError) Error() string {
	return fmt.Sprintf("no known irreducible polynomial of degree %d over GF(2)", e.Degree)
}
