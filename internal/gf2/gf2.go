// Package gf2 implements arithmetic in the polynomial ring GF(2)[x]. Values
// are unbounded bit vectors; bit i is the coefficient of x^i. Addition is
// carry-less (XOR), and reduction against a modulus is a separate operation,
// so raw products may grow beyond any field's representation width until
// explicitly reduced.
package gf2

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Poly is a polynomial over GF(2). Poly values are immutable; every operation
// returns a fresh value and never modifies its operands, so they may be copied
// and shared freely. The zero value is the zero polynomial.
type Poly struct {
	bits *big.Int
}

var (
	Zero = Poly{}
	One  = FromExponents(0)
)

var zeroBits = new(big.Int)

// FromBits returns the polynomial whose coefficient bit vector is v.
// The caller keeps ownership of v; the value is copied.
// Panics if v is negative, a bit vector has no sign.
func FromBits(v *big.Int) Poly {
	if v.Sign() < 0 {
		panic("gf2: negative bit vector")
	}
	return Poly{bits: new(big.Int).Set(v)}
}

// FromExponents returns the polynomial with a set coefficient for every listed
// exponent, e.g. FromExponents(4, 1, 0) = x^4 + x + 1.
func FromExponents(exponents ...int) Poly {
	bits := new(big.Int)
	for _, e := range exponents {
		bits.SetBit(bits, e, 1)
	}
	return Poly{bits: bits}
}

// Parse reads a polynomial in monomial form, e.g. "x^4 + x + 1".
// Repeated monomials cancel, per GF(2) addition.
func Parse(s string) (Poly, error) {
	raw := s
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Poly{}, errors.New("empty polynomial")
	}
	bits := new(big.Int)
	for _, term := range strings.Split(s, "+") {
		term = strings.TrimSpace(term)
		var exp int
		switch {
		case term == "0":
			continue
		case term == "1":
			exp = 0
		case term == "x":
			exp = 1
		case strings.HasPrefix(term, "x^"):
			n, err := strconv.Atoi(strings.TrimSpace(term[2:]))
			if err != nil || n < 0 {
				return Poly{}, errors.Errorf("invalid monomial %q in polynomial %q", term, raw)
			}
			exp = n
		default:
			return Poly{}, errors.Errorf("invalid monomial %q in polynomial %q", term, raw)
		}
		bits.SetBit(bits, exp, bits.Bit(exp)^1)
	}
	return Poly{bits: bits}, nil
}

func (p Poly) v() *big.Int {
	if p.bits == nil {
		return zeroBits
	}
	return p.bits
}

// Bits returns a copy of the coefficient bit vector.
func (p Poly) Bits() *big.Int {
	return new(big.Int).Set(p.v())
}

func (p Poly) IsZero() bool {
	return p.v().Sign() == 0
}

// Degree returns the degree of p, or -1 for the zero polynomial, which has no
// well-defined degree.
func (p Poly) Degree() int {
	return p.v().BitLen() - 1
}

func (p Poly) Equal(q Poly) bool {
	return p.v().Cmp(q.v()) == 0
}

// Add returns p + q. In GF(2)[x] this is the bitwise XOR of the coefficient
// vectors; every polynomial is its own additive inverse.
func (p Poly) Add(q Poly) Poly {
	return Poly{bits: new(big.Int).Xor(p.v(), q.v())}
}

// Mul returns the carry-less product p * q, without reduction.
func (p Poly) Mul(q Poly) Poly {
	acc := new(big.Int)
	qb := q.v()
	for i := 0; i < qb.BitLen(); i++ {
		if qb.Bit(i) == 1 {
			acc.Xor(acc, new(big.Int).Lsh(p.v(), uint(i)))
		}
	}
	return Poly{bits: acc}
}

// Reduce returns the remainder of p divided by m, i.e. the representative of
// p with degree below deg(m). Panics if m is the zero polynomial.
func (p Poly) Reduce(m Poly) Poly {
	if m.IsZero() {
		panic("gf2: reduction by the zero polynomial")
	}
	_, r := p.divMod(m)
	return r
}

// p.divMod(m) returns the carry-less quotient and remainder of p / m.
func (p Poly) divMod(m Poly) (Poly, Poly) {
	md := m.Degree()
	quo := new(big.Int)
	rem := new(big.Int).Set(p.v())
	for rem.BitLen() > md {
		shift := uint(rem.BitLen() - 1 - md)
		quo.SetBit(quo, int(shift), 1)
		rem.Xor(rem, new(big.Int).Lsh(m.v(), shift))
	}
	return Poly{bits: quo}, Poly{bits: rem}
}

// p.InverseVarTime(m) returns q with p * q ≡ 1 (mod m) via the extended
// Euclidean algorithm, and whether the inverse exists. The zero polynomial has
// no inverse, nor does any p sharing a nontrivial factor with m.
func (p Poly) InverseVarTime(m Poly) (Poly, bool) {
	r1 := p.Reduce(m)
	if r1.IsZero() {
		return Poly{}, false
	}
	r0 := m
	t0, t1 := Zero, One
	for !r1.IsZero() {
		q, r := r0.divMod(r1)
		r0, r1 = r1, r
		t0, t1 = t1, t0.Add(q.Mul(t1))
	}
	// t0 * p ≡ r0 (mod m); r0 is the gcd.
	if r0.Degree() != 0 {
		return Poly{}, false
	}
	return t0.Reduce(m), true
}

// String renders p in monomial form, e.g. "x^4 + x + 1". For testing and
// logging purposes; the task formatter renders polynomials as bit masks.
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var terms []string
	for i := p.Degree(); i >= 0; i-- {
		if p.v().Bit(i) == 0 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, "x^"+strconv.Itoa(i))
		}
	}
	return strings.Join(terms, " + ")
}
