package curve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairingValueOnGenerators(t *testing.T) {
	c := Toy()
	f := c.F
	e := c.Pair(c.Generator(), c.Generator())
	// e(G, G) = 42 + 19u on the didactic curve
	require.Equal(t, []uint64{42, 19}, f.Limbs(e))
}

func TestPairingIsNonDegenerate(t *testing.T) {
	c := Toy()
	e := c.Pair(c.Generator(), c.Generator())
	require.False(t, c.F.IsOne(e))
	// its order is exactly r
	require.True(t, c.F.IsOne(c.F.PowUint(e, c.R)))
}

func TestPairingBilinearity(t *testing.T) {
	c := Toy()
	f := c.F
	g := c.Generator()
	e := c.Pair(g, g)
	for a := uint64(0); a < c.R; a++ {
		for b := uint64(0); b < c.R; b++ {
			lhs := c.Pair(c.ScalarMul(g, a), c.ScalarMul(g, b))
			rhs := f.PowUint(e, a*b)
			require.True(t, f.Equal(lhs, rhs), "e([%d]G, [%d]G) != e(G,G)^%d", a, b, a*b)
		}
	}
}

func TestPairingWithIdentityIsOne(t *testing.T) {
	c := Toy()
	g := c.Generator()
	require.True(t, c.F.IsOne(c.Pair(c.Identity(), g)))
	require.True(t, c.F.IsOne(c.Pair(g, c.Identity())))
	require.True(t, c.F.IsOne(c.Pair(c.Identity(), c.Identity())))
}

func TestPairingOutputIsRootOfUnity(t *testing.T) {
	c := Toy()
	g := c.Generator()
	for a := uint64(1); a < c.R; a++ {
		e := c.Pair(c.ScalarMul(g, a), g)
		require.True(t, c.F.IsOne(c.F.PowUint(e, c.R)))
	}
}
