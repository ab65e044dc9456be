package field

import (
	"math/big"

	"filippo.io/bigmod"
	"github.com/pkg/errors"
)

// Prime is the field Z_p of integers modulo a prime p. Elements are
// represented as *big.Int values; Mod always returns the non-negative
// representative in [0, p).
type Prime struct {
	p *big.Int

	// modulus is nil when p == 2. bigmod inversion requires an odd modulus;
	// Z_2 inverts through the trivial path instead.
	modulus *bigmod.Modulus
}

var _ Field[*big.Int] = (*Prime)(nil)

// NewPrime returns the field Z_p. The order must be greater than one.
// Primality is the caller's responsibility; a composite modulus surfaces
// later as a failed inversion, not here.
func NewPrime(p *big.Int) (*Prime, error) {
	if p.Cmp(big.NewInt(2)) < 0 {
		return nil, errors.Errorf("invalid prime field order %s", p)
	}
	if p.Bit(0) == 0 && p.Cmp(big.NewInt(2)) != 0 {
		return nil, errors.Errorf("invalid prime field order %s: even and not 2", p)
	}
	f := &Prime{p: new(big.Int).Set(p)}
	if p.Bit(0) == 1 {
		m, err := bigmod.NewModulus(p.Bytes())
		if err != nil {
			return nil, errors.Wrapf(err, "prime field order %s", p)
		}
		f.modulus = m
	}
	return f, nil
}

// Order returns a copy of the field order p.
func (f *Prime) Order() *big.Int {
	return new(big.Int).Set(f.p)
}

// Mod reduces v modulo p. The result is the mathematical modulo, never
// negative, regardless of the sign of v.
func (f *Prime) Mod(v *big.Int) *big.Int {
	return new(big.Int).Mod(v, f.p)
}

func (f *Prime) Normalize(v *big.Int) *big.Int {
	return f.Mod(v)
}

func (f *Prime) Zero() *big.Int {
	return new(big.Int)
}

func (f *Prime) One() *big.Int {
	return big.NewInt(1)
}

func (f *Prime) Equal(a, b *big.Int) bool {
	return f.Mod(a).Cmp(f.Mod(b)) == 0
}

// Invert returns v^-1 (mod p). The inverse is computed in variable time; this
// package makes no constant-time guarantees.
func (f *Prime) Invert(v *big.Int) (*big.Int, error) {
	r := f.Mod(v)
	if r.Sign() == 0 {
		return nil, errors.Wrapf(ErrNotInvertible, "inverting 0 in Z_%s", f.p)
	}
	if f.modulus == nil {
		// p == 2, the only nonzero residue is its own inverse
		return r, nil
	}
	x, err := bigmod.NewNat().SetBytes(r.Bytes(), f.modulus)
	if err != nil {
		return nil, errors.Wrapf(err, "element %s out of range for Z_%s", r, f.p)
	}
	if _, ok := x.InverseVarTime(x, f.modulus); !ok {
		return nil, errors.Wrapf(ErrNotInvertible, "inverting %s in Z_%s", r, f.p)
	}
	return new(big.Int).SetBytes(x.Bytes(f.modulus)), nil
}
