package field

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/smartcontractkit/eccalc/internal/gf2"
)

// Binary is the field GF(2^n): polynomials over GF(2) of degree below n,
// reduced against a fixed irreducible polynomial of degree n.
type Binary struct {
	modulus gf2.Poly
	degree  int
}

var _ Field[gf2.Poly] = (*Binary)(nil)

// irreducible holds one known irreducible polynomial per supported degree:
// the low-weight trinomials and pentanomials of Seroussi's table for degrees
// up to 16 (the AES polynomial for degree 8), plus the FIPS 186-4 binary
// curve reduction polynomials. Degrees outside this table are not supported
// and are never inferred.
var irreducible = map[int]gf2.Poly{
	1:   gf2.FromExponents(1, 0),
	2:   gf2.FromExponents(2, 1, 0),
	3:   gf2.FromExponents(3, 1, 0),
	4:   gf2.FromExponents(4, 1, 0),
	5:   gf2.FromExponents(5, 2, 0),
	6:   gf2.FromExponents(6, 1, 0),
	7:   gf2.FromExponents(7, 1, 0),
	8:   gf2.FromExponents(8, 4, 3, 1, 0),
	9:   gf2.FromExponents(9, 1, 0),
	10:  gf2.FromExponents(10, 3, 0),
	11:  gf2.FromExponents(11, 2, 0),
	12:  gf2.FromExponents(12, 3, 0),
	13:  gf2.FromExponents(13, 4, 3, 1, 0),
	14:  gf2.FromExponents(14, 5, 0),
	15:  gf2.FromExponents(15, 1, 0),
	16:  gf2.FromExponents(16, 5, 3, 1, 0),
	163: gf2.FromExponents(163, 7, 6, 3, 0),
	233: gf2.FromExponents(233, 74, 0),
	283: gf2.FromExponents(283, 12, 7, 5, 0),
	409: gf2.FromExponents(409, 87, 0),
	571: gf2.FromExponents(571, 10, 5, 2, 0),
}

// SupportedDegrees returns the degrees present in the built-in irreducible
// polynomial table, in increasing order.
func SupportedDegrees() []int {
	degrees := make([]int, 0, len(irreducible))
	for n := range irreducible {
		degrees = append(degrees, n)
	}
	sort.Ints(degrees)
	return degrees
}

// NewBinary returns GF(2^n) reduced against the given degree-n modulus. The
// caller vouches for irreducibility; a reducible modulus surfaces later as a
// failed inversion.
func NewBinary(modulus gf2.Poly) (*Binary, error) {
	if modulus.Degree() < 1 {
		return nil, errors.Errorf("invalid field modulus %s: degree must be at least 1", modulus)
	}
	return &Binary{modulus: modulus, degree: modulus.Degree()}, nil
}

// NewBinaryOfDegree returns GF(2^n) with the modulus looked up in the built-in
// irreducible polynomial table. Fails with an UnsupportedDegreeError for
// degrees outside the table.
func NewBinaryOfDegree(n int) (*Binary, error) {
	m, ok := irreducible[n]
	if !ok {
		return nil, &UnsupportedDegreeError{Degree: n}
	}
	return &Binary{modulus: m, degree: n}, nil
}

// Degree returns n for the field GF(2^n).
func (f *Binary) Degree() int {
	return f.degree
}

// Modulus returns the field's irreducible polynomial.
func (f *Binary) Modulus() gf2.Poly {
	return f.modulus
}

// Mod reduces v against the field's irreducible polynomial.
func (f *Binary) Mod(v gf2.Poly) gf2.Poly {
	return v.Reduce(f.modulus)
}

func (f *Binary) Normalize(v gf2.Poly) gf2.Poly {
	return f.Mod(v)
}

func (f *Binary) Zero() gf2.Poly {
	return gf2.Zero
}

func (f *Binary) One() gf2.Poly {
	return gf2.One
}

func (f *Binary) Equal(a, b gf2.Poly) bool {
	return f.Mod(a).Equal(f.Mod(b))
}

// Invert returns v^-1 in GF(2^n) via the polynomial extended Euclidean
// algorithm against the field's irreducible polynomial.
func (f *Binary) Invert(v gf2.Poly) (gf2.Poly, error) {
	r := f.Mod(v)
	if r.IsZero() {
		return gf2.Poly{}, errors.Wrapf(ErrNotInvertible, "inverting 0 in GF(2^%d)", f.degree)
	}
	inv, ok := r.InverseVarTime(f.modulus)
	if !ok {
		return gf2.Poly{}, errors.Wrapf(ErrNotInvertible, "inverting %s in GF(2^%d)", r, f.degree)
	}
	return inv, nil
}
