package r1cs

// Package r1cs implements Rank-1 Constraint Systems: rows of the form
// <a_i, c> * <b_i, c> = <c_i, c> over the scalar field, plus the metadata
// partitioning the wire vector into the constant-1 wire, public inputs,
// intermediate wires, and public outputs. Stacking the a rows of all
// constraints yields the A matrix of the system, and likewise for B and C.

import (
	"errors"
	"fmt"

	"github.com/lambdaclass/pinocchio-lambda-vm/ff"
)

var (
	// ErrDimensionMismatch is returned when constraint row widths disagree.
	ErrDimensionMismatch = errors.New("r1cs: dimension mismatch")
	// ErrIoOutOfRange is returned when the declared inputs and outputs do
	// not leave room for the constant-1 wire.
	ErrIoOutOfRange = errors.New("r1cs: inputs plus outputs exceed wire count minus one")
)

// Constraint is one gate: the a, b, c coefficient rows, all of the same
// width n (the number of wires, constant-1 wire included at index 0).
type Constraint struct {
	A, B, C []ff.Elem
}

// NewConstraint validates that the three rows have equal width.
func NewConstraint(a, b, c []ff.Elem) (Constraint, error) {
	if len(a) != len(b) || len(a) != len(c) {
		return Constraint{}, fmt.Errorf("%w: rows of width %d, %d, %d", ErrDimensionMismatch, len(a), len(b), len(c))
	}
	return Constraint{A: a, B: b, C: c}, nil
}

// SparseTerm is one (wire index, coefficient) entry of a sparse row.
type SparseTerm struct {
	Index int
	Coeff ff.Elem
}

// NewConstraintFromSparse densifies sparse rows to width n, padding absent
// indices with zero. Frontends usually hand over constraints in this form;
// the rest of the pipeline only sees dense rows.
func NewConstraintFromSparse(n int, a, b, c []SparseTerm) (Constraint, error) {
	dense := func(terms []SparseTerm) ([]ff.Elem, error) {
		row := make([]ff.Elem, n)
		for _, t := range terms {
			if t.Index < 0 || t.Index >= n {
				return nil, fmt.Errorf("%w: sparse index %d outside width %d", ErrDimensionMismatch, t.Index, n)
			}
			row[t.Index] = t.Coeff
		}
		return row, nil
	}
	ra, err := dense(a)
	if err != nil {
		return Constraint{}, err
	}
	rb, err := dense(b)
	if err != nil {
		return Constraint{}, err
	}
	rc, err := dense(c)
	if err != nil {
		return Constraint{}, err
	}
	return Constraint{A: ra, B: rb, C: rc}, nil
}

// R1CS is a constraint system over field F with NumInputs public inputs and
// NumOutputs public outputs. Wire index space: [0] constant-1, [1, nI]
// inputs, (nI, n-nO) intermediates, [n-nO, n) outputs.
type R1CS struct {
	F           ff.Field
	Constraints []Constraint
	NumInputs   int
	NumOutputs  int
}

// New validates widths and IO metadata and builds the system. All rows of
// all constraints must share one width n, and nI + nO <= n - 1 so the
// constant wire and at least the IO wires fit.
func New(f ff.Field, constraints []Constraint, numInputs, numOutputs int) (*R1CS, error) {
	if len(constraints) == 0 {
		return nil, fmt.Errorf("%w: no constraints", ErrDimensionMismatch)
	}
	if numInputs < 0 || numOutputs < 0 {
		return nil, fmt.Errorf("%w: negative input or output count", ErrIoOutOfRange)
	}
	n := len(constraints[0].A)
	for i, ct := range constraints {
		if len(ct.A) != n || len(ct.B) != n || len(ct.C) != n {
			return nil, fmt.Errorf("%w: constraint %d", ErrDimensionMismatch, i)
		}
	}
	if numInputs+numOutputs > n-1 {
		return nil, fmt.Errorf("%w: %d inputs + %d outputs with %d wires", ErrIoOutOfRange, numInputs, numOutputs, n)
	}
	return &R1CS{F: f, Constraints: constraints, NumInputs: numInputs, NumOutputs: numOutputs}, nil
}

// NumWires returns n, the width of every row.
func (cs *R1CS) NumWires() int { return len(cs.Constraints[0].A) }

// NumConstraints returns the number of gates.
func (cs *R1CS) NumConstraints() int { return len(cs.Constraints) }

// Matrices returns the stacked A, B, C matrices, row i taken from
// constraint i.
func (cs *R1CS) Matrices() (a, b, c [][]ff.Elem) {
	m := cs.NumConstraints()
	a = make([][]ff.Elem, m)
	b = make([][]ff.Elem, m)
	c = make([][]ff.Elem, m)
	for i, ct := range cs.Constraints {
		a[i], b[i], c[i] = ct.A, ct.B, ct.C
	}
	return a, b, c
}

// VerifySolution reports whether the assignment satisfies every constraint.
// The assignment must have width n.
func (cs *R1CS) VerifySolution(assignment []ff.Elem) (bool, error) {
	if len(assignment) != cs.NumWires() {
		return false, fmt.Errorf("%w: assignment of length %d for %d wires", ErrDimensionMismatch, len(assignment), cs.NumWires())
	}
	for _, ct := range cs.Constraints {
		lhs := cs.F.Mul(dot(cs.F, ct.A, assignment), dot(cs.F, ct.B, assignment))
		if lhs != dot(cs.F, ct.C, assignment) {
			return false, nil
		}
	}
	return true, nil
}

func dot(f ff.Field, a, b []ff.Elem) ff.Elem {
	acc := f.Zero()
	for i := range a {
		acc = f.Add(acc, f.Mul(a[i], b[i]))
	}
	return acc
}
