package r1cs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lambdaclass/pinocchio-lambda-vm/ff"
)

func elems(f ff.Field, vals ...uint64) []ff.Elem {
	out := make([]ff.Elem, len(vals))
	for i, v := range vals {
		out[i] = f.New(v)
	}
	return out
}

func TestNewConstraintRejectsRaggedRows(t *testing.T) {
	f := ff.MustField(5)
	_, err := NewConstraint(elems(f, 1, 2), elems(f, 1), elems(f, 1, 2))
	require.True(t, errors.Is(err, ErrDimensionMismatch))
	_, err = NewConstraint(elems(f, 1, 2), elems(f, 1, 2), elems(f, 1, 2))
	require.NoError(t, err)
}

func TestNewValidatesWidthsAcrossConstraints(t *testing.T) {
	f := ff.MustField(5)
	a, _ := NewConstraint(elems(f, 1, 2, 3), elems(f, 0, 1, 0), elems(f, 0, 0, 1))
	b, _ := NewConstraint(elems(f, 1, 2), elems(f, 0, 1), elems(f, 0, 0))
	_, err := New(f, []Constraint{a, b}, 1, 1)
	require.True(t, errors.Is(err, ErrDimensionMismatch))
}

func TestNewRejectsOversizedIo(t *testing.T) {
	f := ff.MustField(5)
	a, _ := NewConstraint(elems(f, 1, 2, 3), elems(f, 0, 1, 0), elems(f, 0, 0, 1))
	_, err := New(f, []Constraint{a}, 2, 1)
	require.True(t, errors.Is(err, ErrIoOutOfRange))
	_, err = New(f, []Constraint{a}, 1, 1)
	require.NoError(t, err)
}

func TestSparseAdapterMatchesDense(t *testing.T) {
	f := ff.MustField(5)
	sparse, err := NewConstraintFromSparse(7,
		[]SparseTerm{{Index: 3, Coeff: f.New(1)}},
		[]SparseTerm{{Index: 4, Coeff: f.New(1)}},
		[]SparseTerm{{Index: 5, Coeff: f.New(1)}},
	)
	require.NoError(t, err)
	require.Equal(t, PaperCircuit(f).Constraints[0], sparse)
}

func TestSparseAdapterRejectsOutOfRangeIndex(t *testing.T) {
	f := ff.MustField(5)
	_, err := NewConstraintFromSparse(3, []SparseTerm{{Index: 3, Coeff: f.New(1)}}, nil, nil)
	require.True(t, errors.Is(err, ErrDimensionMismatch))
	_, err = NewConstraintFromSparse(3, nil, []SparseTerm{{Index: -1, Coeff: f.New(1)}}, nil)
	require.True(t, errors.Is(err, ErrDimensionMismatch))
}

func TestPaperCircuitAcceptsSolution(t *testing.T) {
	f := ff.MustField(5)
	cs := PaperCircuit(f)
	require.Equal(t, 7, cs.NumWires())
	require.Equal(t, 2, cs.NumConstraints())

	assignment := PaperAssignment(f, [4]ff.Elem{f.New(1), f.New(2), f.New(3), f.New(4)})
	require.Equal(t, f.New(2), assignment[5], "mid = 3*4 = 12 = 2 mod 5")
	require.Equal(t, f.New(1), assignment[6], "out = 3*12 = 36 = 1 mod 5")
	ok, err := cs.VerifySolution(assignment)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestPaperCircuitRejectsBadMid(t *testing.T) {
	f := ff.MustField(5)
	cs := PaperCircuit(f)
	assignment := PaperAssignment(f, [4]ff.Elem{f.New(3), f.New(3), f.New(3), f.New(3)})
	assignment[5] = f.Zero()
	ok, err := cs.VerifySolution(assignment)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPaperCircuitRejectsBadOutput(t *testing.T) {
	f := ff.MustField(5)
	cs := PaperCircuit(f)
	assignment := PaperAssignment(f, [4]ff.Elem{f.New(1), f.New(2), f.New(3), f.New(4)})
	assignment[6] = f.Add(assignment[6], f.One())
	ok, err := cs.VerifySolution(assignment)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifySolutionRejectsWrongWidth(t *testing.T) {
	f := ff.MustField(5)
	cs := PaperCircuit(f)
	_, err := cs.VerifySolution(elems(f, 1, 2))
	require.True(t, errors.Is(err, ErrDimensionMismatch))
}

func TestMatricesStackRows(t *testing.T) {
	f := ff.MustField(5)
	cs := PaperCircuit(f)
	a, b, c := cs.Matrices()
	require.Len(t, a, 2)
	require.Equal(t, cs.Constraints[0].A, a[0])
	require.Equal(t, cs.Constraints[1].B, b[1])
	require.Equal(t, cs.Constraints[1].C, c[1])
}

func TestChainCircuit(t *testing.T) {
	f := ff.MustField(2147483647)
	for _, k := range []int{2, 3, 5, 8} {
		cs := ChainCircuit(f, k)
		require.Equal(t, k-1, cs.NumConstraints())
		require.Equal(t, 2*k, cs.NumWires())

		inputs := make([]ff.Elem, k)
		expected := f.One()
		for i := range inputs {
			inputs[i] = f.New(uint64(i + 2))
			expected = f.Mul(expected, inputs[i])
		}
		assignment := SolveChainCircuit(f, inputs)
		require.Equal(t, expected, assignment[len(assignment)-1])
		ok, err := cs.VerifySolution(assignment)
		require.NoError(t, err)
		require.True(t, ok, "k = %d", k)

		assignment[len(assignment)-1] = f.Add(assignment[len(assignment)-1], f.One())
		ok, err = cs.VerifySolution(assignment)
		require.NoError(t, err)
		require.False(t, ok)
	}
}
