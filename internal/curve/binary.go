package curve

import (
	"github.com/smartcontractkit/eccalc/internal/field"
	"github.com/smartcontractkit/eccalc/internal/gf2"
)

// binaryNSS supplies the formulas for the non-supersingular family
// y² + a·x·y = x³ + b·x² + c over GF(2^n).
type binaryNSS struct {
	f       *field.Binary
	a, b, c gf2.Poly
}

// NewBinaryNonSupersingular returns the curve y² + a·x·y = x³ + b·x² + c over
// the given binary field. Coefficients may arrive unreduced and are
// normalized here.
func NewBinaryNonSupersingular(f *field.Binary, a, b, c gf2.Poly) *Curve[gf2.Poly] {
	v := &binaryNSS{f: f, a: f.Normalize(a), b: f.Normalize(b), c: f.Normalize(c)}
	return &Curve[gf2.Poly]{field: f, arith: v}
}

func (v *binaryNSS) internal() {}

// k = (y1 + y2) / (x1 + x2)
func (v *binaryNSS) chord(p, q Point[gf2.Poly]) (gf2.Poly, error) {
	inv, err := v.f.Invert(p.x.Add(q.x))
	if err != nil {
		return gf2.Poly{}, err
	}
	return v.f.Mod(p.y.Add(q.y).Mul(inv)), nil
}

// k = (x1² + a·y1) / (a·x1)
func (v *binaryNSS) tangent(p, _ Point[gf2.Poly]) (gf2.Poly, error) {
	inv, err := v.f.Invert(v.a.Mul(p.x))
	if err != nil {
		return gf2.Poly{}, err
	}
	k := p.x.Mul(p.x).Add(v.a.Mul(p.y))
	return v.f.Mod(k.Mul(inv)), nil
}

// x3 = k² + a·k + b + x1 + x2; y3 = a·x3 + (y1 + k·(x3 + x1))
func (v *binaryNSS) resultPoint(p, q Point[gf2.Poly], k gf2.Poly) (gf2.Poly, gf2.Poly) {
	x3 := v.f.Mod(k.Mul(k).Add(v.a.Mul(k)).Add(v.b).Add(p.x).Add(q.x))
	y3 := v.f.Mod(p.y.Add(k.Mul(x3.Add(p.x))))
	return x3, v.a.Mul(x3).Add(y3)
}

// binarySS supplies the formulas for the supersingular family
// y² + a·y = x³ + b·x + c over GF(2^n).
type binarySS struct {
	f    *field.Binary
	a, b gf2.Poly
}

// NewBinarySupersingular returns the curve y² + a·y = x³ + b·x + c over the
// given binary field. A coefficient a that normalizes to zero is accepted
// here; it only becomes an error if doubling is ever requested.
func NewBinarySupersingular(f *field.Binary, a, b gf2.Poly) *Curve[gf2.Poly] {
	v := &binarySS{f: f, a: f.Normalize(a), b: f.Normalize(b)}
	return &Curve[gf2.Poly]{field: f, arith: v}
}

func (v *binarySS) internal() {}

// k = (y1 + y2) / (x1 + x2)
func (v *binarySS) chord(p, q Point[gf2.Poly]) (gf2.Poly, error) {
	inv, err := v.f.Invert(p.x.Add(q.x))
	if err != nil {
		return gf2.Poly{}, err
	}
	return v.f.Mod(p.y.Add(q.y).Mul(inv)), nil
}

// k = (x1² + b) / a
func (v *binarySS) tangent(p, _ Point[gf2.Poly]) (gf2.Poly, error) {
	if v.a.IsZero() {
		return gf2.Poly{}, ErrDegenerateCurve
	}
	inv, err := v.f.Invert(v.a)
	if err != nil {
		return gf2.Poly{}, err
	}
	k := p.x.Mul(p.x).Add(v.b)
	return v.f.Mod(k.Mul(inv)), nil
}

// x3 = k² + x1 + x2; y3 = a + (y1 + k·(x3 + x1))
func (v *binarySS) resultPoint(p, q Point[gf2.Poly], k gf2.Poly) (gf2.Poly, gf2.Poly) {
	x3 := v.f.Mod(k.Mul(k).Add(p.x).Add(q.x))
	y3 := v.f.Mod(p.y.Add(k.Mul(x3.Add(p.x))))
	return x3, v.a.Add(y3)
}
