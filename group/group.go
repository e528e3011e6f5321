package group

// Package group abstracts the cyclic bilinear group the protocol hides
// evaluations in. Setup, prover, and verifier are generic over a Bilinear
// suite, so the same code runs over the elliptic-curve group and over the
// raw-exponent group used for pen-and-paper tests.

import (
	"github.com/lambdaclass/pinocchio-lambda-vm/curve"
	"github.com/lambdaclass/pinocchio-lambda-vm/extfield"
	"github.com/lambdaclass/pinocchio-lambda-vm/ff"
)

// Bilinear is a cyclic group G of prime order with a non-degenerate
// bilinear map into a target group T: Pair(aP, bQ) = Pair(P, Q)^(ab).
// Scalars are canonical Fr representatives. TOp/TOne/TEqual are the target
// group's operation, identity, and equality.
type Bilinear[G, T any] interface {
	Identity() G
	Generator() G
	Op(a, b G) G
	ScalarMul(p G, k uint64) G
	Equal(a, b G) bool

	Pair(p, q G) T
	TOp(a, b T) T
	TOne() T
	TEqual(a, b T) bool
}

// CurveSuite adapts an elliptic curve with pairing to the Bilinear
// interface. The target group is the multiplicative group of the curve's
// extension field.
type CurveSuite struct {
	C *curve.Curve
}

// NewCurveSuite wraps c.
func NewCurveSuite(c *curve.Curve) CurveSuite { return CurveSuite{C: c} }

func (s CurveSuite) Identity() curve.Point  { return s.C.Identity() }
func (s CurveSuite) Generator() curve.Point { return s.C.Generator() }

func (s CurveSuite) Op(a, b curve.Point) curve.Point { return s.C.Add(a, b) }

func (s CurveSuite) ScalarMul(p curve.Point, k uint64) curve.Point {
	return s.C.ScalarMul(p, k)
}

func (s CurveSuite) Equal(a, b curve.Point) bool { return s.C.Equal(a, b) }

func (s CurveSuite) Pair(p, q curve.Point) extfield.Elem { return s.C.Pair(p, q) }

func (s CurveSuite) TOp(a, b extfield.Elem) extfield.Elem { return s.C.F.Mul(a, b) }

func (s CurveSuite) TOne() extfield.Elem { return s.C.F.One() }

func (s CurveSuite) TEqual(a, b extfield.Elem) bool { return s.C.F.Equal(a, b) }

// ExponentSuite is the "no hiding" group: elements are the exponents
// themselves, written additively in Fr. The group operation is addition,
// scalar multiplication is field multiplication, and the pairing is the
// product of exponents (the target group is Fr under addition). Everything
// a hiding conceals is in the clear, which is exactly what makes this suite
// useful in tests.
type ExponentSuite struct {
	F ff.Field
}

// NewExponentSuite returns the exponent suite over f.
func NewExponentSuite(f ff.Field) ExponentSuite { return ExponentSuite{F: f} }

func (s ExponentSuite) Identity() ff.Elem  { return s.F.Zero() }
func (s ExponentSuite) Generator() ff.Elem { return s.F.One() }

func (s ExponentSuite) Op(a, b ff.Elem) ff.Elem { return s.F.Add(a, b) }

func (s ExponentSuite) ScalarMul(p ff.Elem, k uint64) ff.Elem {
	return s.F.Mul(p, s.F.New(k))
}

func (s ExponentSuite) Equal(a, b ff.Elem) bool { return a == b }

func (s ExponentSuite) Pair(p, q ff.Elem) ff.Elem { return s.F.Mul(p, q) }

func (s ExponentSuite) TOp(a, b ff.Elem) ff.Elem { return s.F.Add(a, b) }

func (s ExponentSuite) TOne() ff.Elem { return s.F.Zero() }

func (s ExponentSuite) TEqual(a, b ff.Elem) bool { return a == b }
