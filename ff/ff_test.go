package ff

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lambdaclass/pinocchio-lambda-vm/sample"
)

func TestNewFieldRejectsBadModuli(t *testing.T) {
	_, err := NewField(0)
	require.Error(t, err)
	_, err = NewField(1)
	require.Error(t, err)
	_, err = NewField(1 << 33)
	require.Error(t, err)
	_, err = NewField(5)
	require.NoError(t, err)
}

func TestNewReduces(t *testing.T) {
	f := MustField(5)
	require.Equal(t, Elem(2), f.New(7))
	require.Equal(t, Elem(0), f.New(10))
	require.Equal(t, Elem(4), f.New(4))
}

// field axioms, exhaustively over F_5 and F_59
func TestFieldAxioms(t *testing.T) {
	for _, q := range []uint64{5, 59} {
		f := MustField(q)
		for a := uint64(0); a < q; a++ {
			ea := f.New(a)
			require.Equal(t, f.Zero(), f.Add(ea, f.Neg(ea)), "x + (-x) = 0")
			if ea != 0 {
				inv, err := f.Inv(ea)
				require.NoError(t, err)
				require.Equal(t, f.One(), f.Mul(ea, inv), "x * x^-1 = 1")
				require.Equal(t, f.One(), f.Pow(ea, q-1), "x^(q-1) = 1")
			}
			for b := uint64(0); b < q; b++ {
				eb := f.New(b)
				require.Equal(t, f.Add(ea, eb), f.Add(eb, ea))
				require.Equal(t, f.Mul(ea, eb), f.Mul(eb, ea))
				for c := uint64(0); c < q; c += 7 {
					ec := f.New(c)
					require.Equal(t, f.Add(f.Add(ea, eb), ec), f.Add(ea, f.Add(eb, ec)), "associativity")
					require.Equal(t, f.Mul(ea, f.Add(eb, ec)), f.Add(f.Mul(ea, eb), f.Mul(ea, ec)), "distributivity")
				}
			}
		}
	}
}

func TestSubAgainstAdd(t *testing.T) {
	f := MustField(59)
	for a := uint64(0); a < 59; a++ {
		for b := uint64(0); b < 59; b++ {
			require.Equal(t, f.New(a), f.Add(f.Sub(f.New(a), f.New(b)), f.New(b)))
		}
	}
}

func TestNegZeroIsZero(t *testing.T) {
	f := MustField(5)
	require.Equal(t, f.Zero(), f.Neg(f.Zero()))
}

func TestInvZeroFails(t *testing.T) {
	f := MustField(5)
	_, err := f.Inv(f.Zero())
	require.True(t, errors.Is(err, ErrDivisionByZero))
	_, err = f.Div(f.One(), f.Zero())
	require.True(t, errors.Is(err, ErrDivisionByZero))
}

func TestDiv(t *testing.T) {
	f := MustField(5)
	for a := uint64(0); a < 5; a++ {
		for b := uint64(1); b < 5; b++ {
			quo, err := f.Div(f.New(a), f.New(b))
			require.NoError(t, err)
			require.Equal(t, f.New(a), f.Mul(quo, f.New(b)))
		}
	}
}

func TestPow(t *testing.T) {
	f := MustField(59)
	require.Equal(t, f.One(), f.Pow(f.New(3), 0))
	require.Equal(t, f.New(27), f.Pow(f.New(3), 3))
	require.Equal(t, f.New(3*3*3*3%59), f.Pow(f.New(3), 4))
}

func TestRandomIsInRangeAndDeterministicPerKey(t *testing.T) {
	f := MustField(59)
	src1, err := sample.NewKeyedSource([]byte("ff-test"))
	require.NoError(t, err)
	src2, err := sample.NewKeyedSource([]byte("ff-test"))
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		a := f.Random(src1)
		require.Less(t, a.Representative(), uint64(59))
		require.Equal(t, a, f.Random(src2))
	}
}

func TestRepresentative(t *testing.T) {
	f := MustField(5)
	require.Equal(t, uint64(3), f.New(8).Representative())
}
