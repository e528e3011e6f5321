package qap

// Package qap implements Quadratic Arithmetic Programs: the polynomial
// encoding of an R1CS. Each wire k gets three polynomials v_k, w_k, y_k
// interpolating the k-th columns of the A, B, C matrices at m distinct
// evaluation points, and the target polynomial t is the product of
// (X - r_i) over those points. An assignment satisfies the circuit exactly
// when t divides p = (sum c_k v_k)(sum c_k w_k) - sum c_k y_k.

import (
	"errors"
	"fmt"

	"github.com/lambdaclass/pinocchio-lambda-vm/ff"
	"github.com/lambdaclass/pinocchio-lambda-vm/poly"
	"github.com/lambdaclass/pinocchio-lambda-vm/r1cs"
)

var (
	// ErrDimensionMismatch is returned when the polynomial vectors or an
	// assignment disagree with the wire count.
	ErrDimensionMismatch = errors.New("qap: dimension mismatch")
	// ErrAssignmentUnsatisfied is returned when the witness quotient has a
	// remainder, i.e. the assignment does not satisfy the circuit.
	ErrAssignmentUnsatisfied = errors.New("qap: assignment does not satisfy the circuit")
)

// QAP is the polynomial program. V, W, Y are indexed by wire: index 0 is
// the constant-1 wire, then inputs, then intermediates, then outputs, as in
// the R1CS it was lowered from.
type QAP struct {
	Ring       poly.Ring
	V, W, Y    []poly.Poly
	Target     poly.Poly
	NumInputs  int
	NumOutputs int
}

// New validates the vector shapes and IO metadata.
func New(ring poly.Ring, v, w, y []poly.Poly, target poly.Poly, numInputs, numOutputs int) (*QAP, error) {
	if len(v) != len(w) || len(v) != len(y) {
		return nil, fmt.Errorf("%w: polynomial vectors of length %d, %d, %d", ErrDimensionMismatch, len(v), len(w), len(y))
	}
	if len(v) == 0 {
		return nil, fmt.Errorf("%w: empty polynomial vectors", ErrDimensionMismatch)
	}
	if numInputs < 0 || numOutputs < 0 || numInputs+numOutputs > len(v)-1 {
		return nil, fmt.Errorf("qap: %d inputs + %d outputs with %d wires: %w", numInputs, numOutputs, len(v), r1cs.ErrIoOutOfRange)
	}
	return &QAP{Ring: ring, V: v, W: w, Y: y, Target: target, NumInputs: numInputs, NumOutputs: numOutputs}, nil
}

// FromR1CS lowers a constraint system to a QAP by interpolating every
// matrix column at the evaluation points 0, 1, ..., m-1 of the scalar
// field. The point count must not exceed the field order, or the nodes
// would collide.
func FromR1CS(cs *r1cs.R1CS) (*QAP, error) {
	f := cs.F
	ring := poly.NewRing(f)
	m := cs.NumConstraints()
	n := cs.NumWires()
	if uint64(m) > f.Modulus() {
		return nil, fmt.Errorf("qap: %d constraints over a field of order %d: %w", m, f.Modulus(), poly.ErrNonDistinctNodes)
	}

	points := make([]ff.Elem, m)
	for i := range points {
		points[i] = f.New(uint64(i))
	}

	a, b, c := cs.Matrices()
	interpColumn := func(mat [][]ff.Elem, k int) (poly.Poly, error) {
		ys := make([]ff.Elem, m)
		for i := 0; i < m; i++ {
			ys[i] = mat[i][k]
		}
		return ring.Interpolate(points, ys)
	}

	v := make([]poly.Poly, n)
	w := make([]poly.Poly, n)
	y := make([]poly.Poly, n)
	for k := 0; k < n; k++ {
		var err error
		if v[k], err = interpColumn(a, k); err != nil {
			return nil, err
		}
		if w[k], err = interpColumn(b, k); err != nil {
			return nil, err
		}
		if y[k], err = interpColumn(c, k); err != nil {
			return nil, err
		}
	}

	target := ring.Monomial(f.One(), 0)
	for _, r := range points {
		target = ring.Mul(target, ring.New([]ff.Elem{f.Neg(r), f.One()}))
	}

	return New(ring, v, w, y, target, cs.NumInputs, cs.NumOutputs)
}

// NumWires returns the wire count n.
func (q *QAP) NumWires() int { return len(q.V) }

// VMid returns the v polynomials of the intermediate wires,
// indices [nI+1, n-nO).
func (q *QAP) VMid() []poly.Poly { return q.V[q.NumInputs+1 : len(q.V)-q.NumOutputs] }

// WMid returns the w polynomials of the intermediate wires.
func (q *QAP) WMid() []poly.Poly { return q.W[q.NumInputs+1 : len(q.W)-q.NumOutputs] }

// YMid returns the y polynomials of the intermediate wires.
func (q *QAP) YMid() []poly.Poly { return q.Y[q.NumInputs+1 : len(q.Y)-q.NumOutputs] }

// VInput returns the v polynomials of the public inputs, indices [1, nI].
func (q *QAP) VInput() []poly.Poly { return q.V[1 : q.NumInputs+1] }

// WInput returns the w polynomials of the public inputs.
func (q *QAP) WInput() []poly.Poly { return q.W[1 : q.NumInputs+1] }

// YInput returns the y polynomials of the public inputs.
func (q *QAP) YInput() []poly.Poly { return q.Y[1 : q.NumInputs+1] }

// VOutput returns the v polynomials of the public outputs,
// indices [n-nO, n).
func (q *QAP) VOutput() []poly.Poly { return q.V[len(q.V)-q.NumOutputs:] }

// WOutput returns the w polynomials of the public outputs.
func (q *QAP) WOutput() []poly.Poly { return q.W[len(q.W)-q.NumOutputs:] }

// YOutput returns the y polynomials of the public outputs.
func (q *QAP) YOutput() []poly.Poly { return q.Y[len(q.Y)-q.NumOutputs:] }

// V0 returns the constant-1 wire's v polynomial.
func (q *QAP) V0() poly.Poly { return q.V[0] }

// W0 returns the constant-1 wire's w polynomial.
func (q *QAP) W0() poly.Poly { return q.W[0] }

// Y0 returns the constant-1 wire's y polynomial.
func (q *QAP) Y0() poly.Poly { return q.Y[0] }

// P computes p = (sum_k c_k v_k)(sum_k c_k w_k) - sum_k c_k y_k for the
// full assignment c, constant-1 wire at index 0 included.
func (q *QAP) P(assignment []ff.Elem) (poly.Poly, error) {
	if len(assignment) != q.NumWires() {
		return poly.Poly{}, fmt.Errorf("%w: assignment of length %d for %d wires", ErrDimensionMismatch, len(assignment), q.NumWires())
	}
	r := q.Ring
	v := r.Zero()
	w := r.Zero()
	y := r.Zero()
	for k, c := range assignment {
		v = r.Add(v, r.ScalarMul(q.V[k], c))
		w = r.Add(w, r.ScalarMul(q.W[k], c))
		y = r.Add(y, r.ScalarMul(q.Y[k], c))
	}
	return r.Sub(r.Mul(v, w), y), nil
}

// H computes the witness quotient h = p / t. A nonzero remainder means the
// assignment does not satisfy the circuit, reported as
// ErrAssignmentUnsatisfied.
func (q *QAP) H(assignment []ff.Elem) (poly.Poly, error) {
	p, err := q.P(assignment)
	if err != nil {
		return poly.Poly{}, err
	}
	h, rem, err := q.Ring.DivRem(p, q.Target)
	if err != nil {
		return poly.Poly{}, err
	}
	if !rem.IsZero() {
		return poly.Poly{}, ErrAssignmentUnsatisfied
	}
	return h, nil
}
