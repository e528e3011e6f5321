package curve

// Package curve implements the elliptic-curve group used to hide circuit
// evaluations: a short Weierstrass curve y^2 z = x^3 + a x z^2 + b z^3 in
// projective coordinates over an extension field, together with a Tate-style
// bilinear pairing into the extension field's multiplicative group. The
// interesting subgroup is the r-torsion generated by a fixed base point; a
// distortion map supplies the linearly independent second pairing argument
// (type-I pairing).

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/lambdaclass/pinocchio-lambda-vm/extfield"
)

// ErrNotOnCurve is returned when a projective triple fails the curve
// equation.
var ErrNotOnCurve = errors.New("curve: point is not on the curve")

// Curve fixes the field, the Weierstrass coefficients, the subgroup
// generator of order R, and the pairing data.
type Curve struct {
	F *extfield.Field
	A extfield.Elem
	B extfield.Elem

	// R is the order of the subgroup generated by the base point.
	R uint64

	// Distortion maps a point of the base-field subgroup to a linearly
	// independent point, making the pairing non-degenerate on pairs drawn
	// from the same subgroup. Required for Pair.
	Distortion func(Point) Point

	gen      Point
	finalExp *big.Int
}

// Point is a projective triple (X : Y : Z). The identity is (0 : 1 : 0).
type Point struct {
	X, Y, Z extfield.Elem
}

// New constructs a curve descriptor and validates the generator: it must lie
// on the curve and [r]G must be the identity, so its order divides r (and
// equals r when r is prime). The Tate final exponent
// (p^k - 1)/r is fixed here; r must divide p^k - 1.
func New(f *extfield.Field, a, b extfield.Elem, gx, gy extfield.Elem, r uint64, distortion func(Point) Point) (*Curve, error) {
	if r < 2 {
		return nil, fmt.Errorf("curve: subgroup order must be at least 2, got %d", r)
	}
	c := &Curve{F: f, A: a, B: b, R: r, Distortion: distortion}
	gen, err := c.NewPoint(gx, gy, f.One())
	if err != nil {
		return nil, fmt.Errorf("curve: generator: %w", err)
	}
	c.gen = gen
	if !c.IsIdentity(c.ScalarMul(gen, r)) {
		return nil, fmt.Errorf("curve: generator order does not divide %d", r)
	}
	groupOrder := new(big.Int).Sub(f.Order(), big.NewInt(1))
	rBig := new(big.Int).SetUint64(r)
	quo, rem := new(big.Int).QuoRem(groupOrder, rBig, new(big.Int))
	if rem.Sign() != 0 {
		return nil, fmt.Errorf("curve: %d does not divide p^k - 1", r)
	}
	c.finalExp = quo
	return c, nil
}

// NewPoint validates that (x : y : z) satisfies the curve equation and
// returns it.
func (c *Curve) NewPoint(x, y, z extfield.Elem) (Point, error) {
	p := Point{X: x, Y: y, Z: z}
	if !c.onCurve(p) {
		return Point{}, ErrNotOnCurve
	}
	return p, nil
}

// onCurve evaluates y^2 z - x^3 - a x z^2 - b z^3.
func (c *Curve) onCurve(p Point) bool {
	f := c.F
	lhs := f.Mul(f.Mul(p.Y, p.Y), p.Z)
	z2 := f.Mul(p.Z, p.Z)
	rhs := f.Mul(f.Mul(p.X, p.X), p.X)
	rhs = f.Add(rhs, f.Mul(c.A, f.Mul(p.X, z2)))
	rhs = f.Add(rhs, f.Mul(c.B, f.Mul(p.Z, z2)))
	return f.Equal(lhs, rhs)
}

// Identity returns the neutral element (0 : 1 : 0).
func (c *Curve) Identity() Point {
	return Point{X: c.F.Zero(), Y: c.F.One(), Z: c.F.Zero()}
}

// Generator returns the fixed subgroup generator.
func (c *Curve) Generator() Point { return c.gen }

// IsIdentity reports whether p is the neutral element.
func (c *Curve) IsIdentity(p Point) bool { return c.F.IsZero(p.Z) }

// Equal is projective equality: (X1:Y1:Z1) == (X2:Y2:Z2) iff the triples
// are proportional.
func (c *Curve) Equal(p, q Point) bool {
	f := c.F
	return f.Equal(f.Mul(p.X, q.Z), f.Mul(q.X, p.Z)) &&
		f.Equal(f.Mul(p.Y, q.Z), f.Mul(q.Y, p.Z))
}

// Neg returns -p.
func (c *Curve) Neg(p Point) Point {
	return Point{X: p.X, Y: c.F.Neg(p.Y), Z: p.Z}
}

// Add returns p + q by the standard projective short-Weierstrass formulas,
// with branches for the identity, doubling, and inverse operands.
func (c *Curve) Add(p, q Point) Point {
	if c.IsIdentity(q) {
		return p
	}
	if c.IsIdentity(p) {
		return q
	}
	f := c.F
	u1 := f.Mul(q.Y, p.Z)
	u2 := f.Mul(p.Y, q.Z)
	v1 := f.Mul(q.X, p.Z)
	v2 := f.Mul(p.X, q.Z)
	if f.Equal(v1, v2) {
		if !f.Equal(u1, u2) || f.IsZero(p.Y) {
			return c.Identity()
		}
		return c.double(p)
	}
	u := f.Sub(u1, u2)
	v := f.Sub(v1, v2)
	w := f.Mul(p.Z, q.Z)
	v2sq := f.Mul(v, v)
	v3 := f.Mul(v2sq, v)
	a := f.Sub(f.Sub(f.Mul(f.Mul(u, u), w), v3), f.Mul(f.Embed(2), f.Mul(v2sq, v2)))
	x := f.Mul(v, a)
	y := f.Sub(f.Mul(u, f.Sub(f.Mul(v2sq, v2), a)), f.Mul(v3, u2))
	z := f.Mul(v3, w)
	return Point{X: x, Y: y, Z: z}
}

func (c *Curve) double(p Point) Point {
	f := c.F
	w := f.Add(f.Mul(c.A, f.Mul(p.Z, p.Z)), f.Mul(f.Embed(3), f.Mul(p.X, p.X)))
	s := f.Mul(p.Y, p.Z)
	b := f.Mul(p.X, f.Mul(p.Y, s))
	h := f.Sub(f.Mul(w, w), f.Mul(f.Embed(8), b))
	x := f.Mul(f.Embed(2), f.Mul(h, s))
	ssq := f.Mul(s, s)
	y := f.Sub(f.Mul(w, f.Sub(f.Mul(f.Embed(4), b), h)), f.Mul(f.Embed(8), f.Mul(f.Mul(p.Y, p.Y), ssq)))
	z := f.Mul(f.Embed(8), f.Mul(s, ssq))
	return Point{X: x, Y: y, Z: z}
}

// ScalarMul returns [k]p by left-to-right double-and-add over the binary
// expansion of k.
func (c *Curve) ScalarMul(p Point, k uint64) Point {
	result := c.Identity()
	for i := bitLen(k) - 1; i >= 0; i-- {
		result = c.Add(result, result)
		if k>>uint(i)&1 == 1 {
			result = c.Add(result, p)
		}
	}
	return result
}

// Affine normalizes p to (x, y, 1) coordinates. The second return is false
// for the identity, which has no affine form.
func (c *Curve) Affine(p Point) (x, y extfield.Elem, ok bool) {
	if c.IsIdentity(p) {
		return extfield.Elem{}, extfield.Elem{}, false
	}
	return c.mustAffine(p)
}

// mustAffine is Affine for points known not to be the identity. A point with
// nonzero Z always normalizes; failure here means a corrupted point.
func (c *Curve) mustAffine(p Point) (x, y extfield.Elem, ok bool) {
	zi, err := c.F.Inv(p.Z)
	if err != nil {
		panic("curve: affine normalization of the identity")
	}
	return c.F.Mul(p.X, zi), c.F.Mul(p.Y, zi), true
}
