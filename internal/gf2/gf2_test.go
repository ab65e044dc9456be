package gf2

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poly(mask int64) Poly {
	return FromBits(big.NewInt(mask))
}

func TestAdd(t *testing.T) {
	// x^2+x  +  x+1  =  x^2+1
	assert.True(t, poly(0b110).Add(poly(0b011)).Equal(poly(0b101)))

	t.Run("self inverse", func(t *testing.T) {
		p := poly(0b1011)
		assert.True(t, p.Add(p).IsZero())
	})

	t.Run("commutative", func(t *testing.T) {
		a, b := poly(0b10110), poly(0b01101)
		assert.True(t, a.Add(b).Equal(b.Add(a)))
	})

	t.Run("zero value is the zero polynomial", func(t *testing.T) {
		var z Poly
		assert.True(t, z.Add(poly(7)).Equal(poly(7)))
	})
}

func TestMul(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{0b11, 0b11, 0b101},        // (x+1)^2 = x^2+1, carry-less
		{0b110, 0b11, 0b1010},      // (x^2+x)(x+1) = x^3+x
		{0b1011, 0b1, 0b1011},      // multiplicative identity
		{0b1011, 0, 0},             // zero annihilates
		{0b10011, 0b10011, 0b100000101}, // (x^4+x+1)^2
	}
	for _, c := range cases {
		got := poly(c.a).Mul(poly(c.b))
		assert.True(t, got.Equal(poly(c.want)), "%s * %s = %s, want %s", poly(c.a), poly(c.b), got, poly(c.want))
	}

	t.Run("degree bound", func(t *testing.T) {
		a, b := poly(0b1101), poly(0b101)
		assert.LessOrEqual(t, a.Mul(b).Degree(), a.Degree()+b.Degree())
	})
}

func TestReduce(t *testing.T) {
	m := FromExponents(4, 1, 0) // x^4+x+1

	// x^4 = x+1 (mod x^4+x+1)
	assert.True(t, FromExponents(4).Reduce(m).Equal(poly(0b11)))
	// already below the modulus degree
	assert.True(t, poly(0b1011).Reduce(m).Equal(poly(0b1011)))
	assert.True(t, Zero.Reduce(m).IsZero())

	assert.Panics(t, func() { poly(5).Reduce(Zero) })
}

func TestDegree(t *testing.T) {
	assert.Equal(t, -1, Zero.Degree())
	assert.Equal(t, 0, One.Degree())
	assert.Equal(t, 1, poly(0b10).Degree())
	assert.Equal(t, 4, FromExponents(4, 1, 0).Degree())
}

func TestInverseVarTime(t *testing.T) {
	m := FromExponents(4, 1, 0)

	t.Run("round trip for all nonzero elements", func(t *testing.T) {
		for v := int64(1); v < 16; v++ {
			inv, ok := poly(v).InverseVarTime(m)
			require.True(t, ok, "inverting %s", poly(v))
			require.True(t, poly(v).Mul(inv).Reduce(m).Equal(One), "%s * %s != 1", poly(v), inv)
		}
	})

	t.Run("zero has no inverse", func(t *testing.T) {
		_, ok := Zero.InverseVarTime(m)
		assert.False(t, ok)
	})

	t.Run("shared factor with a reducible modulus", func(t *testing.T) {
		_, ok := poly(0b10).InverseVarTime(poly(0b100)) // gcd(x, x^2) = x
		assert.False(t, ok)
	})

	t.Run("value above the modulus degree is reduced first", func(t *testing.T) {
		inv, ok := FromExponents(4).InverseVarTime(m) // x^4 = x+1
		require.True(t, ok)
		assert.True(t, poly(0b11).Mul(inv).Reduce(m).Equal(One))
	})
}

func TestFromExponents(t *testing.T) {
	assert.True(t, FromExponents(4, 1, 0).Equal(poly(0b10011)))
	assert.True(t, FromExponents().IsZero())
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"x^4 + x + 1", 0b10011},
		{"x^4+x+1", 0b10011},
		{"X^2 + X + 1", 0b111},
		{"x", 0b10},
		{"1", 0b1},
		{"0", 0},
		{"x + x", 0}, // cancellation
		{"x^10", 1 << 10},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		require.NoError(t, err, "parsing %q", c.in)
		assert.True(t, got.Equal(poly(c.want)), "parsing %q: got %s", c.in, got)
	}

	for _, bad := range []string{"", "x^-1", "y + 1", "x^", "2x", "x^two"} {
		_, err := Parse(bad)
		assert.Error(t, err, "parsing %q", bad)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "x^4 + x + 1", FromExponents(4, 1, 0).String())
	assert.Equal(t, "x", poly(0b10).String())
	assert.Equal(t, "1", One.String())
	assert.Equal(t, "0", Zero.String())
}

func TestImmutability(t *testing.T) {
	a, b := poly(0b101), poly(0b11)
	a.Add(b)
	a.Mul(b)
	a.Reduce(b)
	assert.True(t, a.Equal(poly(0b101)))
	assert.True(t, b.Equal(poly(0b11)))
}
