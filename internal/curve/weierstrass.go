package curve

import (
	"math/big"

	"github.com/smartcontractkit/eccalc/internal/field"
)

// weierstrass supplies the formulas for y² = x³ + ax + b over Z_p.
type weierstrass struct {
	f    *field.Prime
	a, b *big.Int
}

// NewWeierstrass returns the curve y² = x³ + ax + b over the given prime
// field. Coefficients may arrive unreduced and are normalized here.
func NewWeierstrass(f *field.Prime, a, b *big.Int) *Curve[*big.Int] {
	w := &weierstrass{f: f, a: f.Normalize(a), b: f.Normalize(b)}
	return &Curve[*big.Int]{field: f, arith: w}
}

func (w *weierstrass) internal() {}

// k = (y2 - y1) / (x2 - x1)
func (w *weierstrass) chord(p, q Point[*big.Int]) (*big.Int, error) {
	inv, err := w.f.Invert(new(big.Int).Sub(q.x, p.x))
	if err != nil {
		return nil, err
	}
	k := new(big.Int).Sub(q.y, p.y)
	return w.f.Mod(k.Mul(k, inv)), nil
}

// k = (3·x1² + a) / (2·y1)
func (w *weierstrass) tangent(p, _ Point[*big.Int]) (*big.Int, error) {
	inv, err := w.f.Invert(new(big.Int).Lsh(p.y, 1))
	if err != nil {
		return nil, err
	}
	k := new(big.Int).Mul(p.x, p.x)
	k.Mul(k, big.NewInt(3))
	k.Add(k, w.a)
	return w.f.Mod(k.Mul(k, inv)), nil
}

// x3 = k² - x1 - x2; y3 = -(y1 + k·(x3 - x1))
func (w *weierstrass) resultPoint(p, q Point[*big.Int], k *big.Int) (*big.Int, *big.Int) {
	x3 := new(big.Int).Mul(k, k)
	x3.Sub(x3, p.x)
	x3.Sub(x3, q.x)
	x3 = w.f.Mod(x3)

	y3 := new(big.Int).Sub(x3, p.x)
	y3.Mul(y3, k)
	y3.Add(y3, p.y)
	return x3, y3.Neg(w.f.Mod(y3))
}
