package curve

// Tate-style pairing: a Miller loop over the binary expansion of the
// subgroup order accumulates line-function evaluations, then the final
// exponentiation by (p^k - 1)/r maps the accumulator into the r-th roots of
// unity. Line conventions follow the divisor calculus: lines and verticals
// through the point at infinity contribute the constant 1.

import "github.com/lambdaclass/pinocchio-lambda-vm/extfield"

// Pair computes the bilinear map e(p, q). The second argument is routed
// through the curve's distortion map, so both inputs may come from the base
// subgroup. Pairing with the identity yields the multiplicative identity of
// the extension field.
func (c *Curve) Pair(p, q Point) extfield.Elem {
	if c.IsIdentity(p) || c.IsIdentity(q) {
		return c.F.One()
	}
	qd := q
	if c.Distortion != nil {
		qd = c.Distortion(q)
	}
	f := c.miller(p, qd)
	return c.F.Pow(f, c.finalExp)
}

// miller runs Miller's algorithm: T starts at p, and for each bit of r
// below the most significant one, the accumulator is squared and multiplied
// by the tangent-over-vertical quotient at T (doubling step), then, on set
// bits, multiplied by the chord-over-vertical quotient through T and p
// (addition step).
func (c *Curve) miller(p, q Point) extfield.Elem {
	f := c.F
	qx, qy, _ := c.mustAffine(q)

	acc := f.One()
	t := p
	for i := bitLen(c.R) - 2; i >= 0; i-- {
		l := c.lineEval(t, t, qx, qy)
		t2 := c.Add(t, t)
		v := c.verticalEval(t2, qx)
		acc = f.Mul(f.Mul(acc, acc), c.mustDiv(l, v))
		t = t2
		if c.R>>uint(i)&1 == 1 {
			l = c.lineEval(t, p, qx, qy)
			t3 := c.Add(t, p)
			v = c.verticalEval(t3, qx)
			acc = f.Mul(acc, c.mustDiv(l, v))
			t = t3
		}
	}
	return acc
}

// lineEval evaluates the line through a and b at (qx, qy): the tangent when
// a = b, the vertical when the x-coordinates coincide otherwise (or the
// tangent point is 2-torsion), and the chord in the generic case. Lines
// involving the identity degenerate to the vertical through the other
// point, or to 1 when both are the identity.
func (c *Curve) lineEval(a, b Point, qx, qy extfield.Elem) extfield.Elem {
	f := c.F
	if c.IsIdentity(a) && c.IsIdentity(b) {
		return f.One()
	}
	if c.IsIdentity(a) {
		a, b = b, a
	}
	ax, ay, _ := c.mustAffine(a)
	if c.IsIdentity(b) {
		return f.Sub(qx, ax)
	}
	bx, by, _ := c.mustAffine(b)

	var slope extfield.Elem
	if f.Equal(ax, bx) {
		if !f.Equal(ay, by) || f.IsZero(ay) {
			return f.Sub(qx, ax)
		}
		num := f.Add(f.Mul(f.Embed(3), f.Mul(ax, ax)), c.A)
		den := f.Mul(f.Embed(2), ay)
		slope = c.mustDiv(num, den)
	} else {
		slope = c.mustDiv(f.Sub(by, ay), f.Sub(bx, ax))
	}
	return f.Sub(f.Sub(qy, ay), f.Mul(slope, f.Sub(qx, ax)))
}

// verticalEval evaluates the vertical line through s at x-coordinate qx.
// The vertical through the identity is the constant 1.
func (c *Curve) verticalEval(s Point, qx extfield.Elem) extfield.Elem {
	if c.IsIdentity(s) {
		return c.F.One()
	}
	sx, _, _ := c.mustAffine(s)
	return c.F.Sub(qx, sx)
}

// mustDiv divides two line evaluations. Denominators vanish only at roots
// the Miller loop never evaluates (q is outside the base subgroup by the
// distortion map), so a zero here means a broken precondition.
func (c *Curve) mustDiv(a, b extfield.Elem) extfield.Elem {
	out, err := c.F.Div(a, b)
	if err != nil {
		panic("curve: vanishing line denominator in Miller loop")
	}
	return out
}

func bitLen(x uint64) int {
	n := 0
	for x > 0 {
		n++
		x >>= 1
	}
	return n
}
