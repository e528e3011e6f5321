package poly

// Package poly implements dense univariate polynomials over a prime field.
// A Ring fixes the coefficient field; Poly values hold coefficients in
// ascending degree order with no trailing zero, and the zero polynomial is
// the empty coefficient slice. Schoolbook multiplication and classical long
// division are deliberate: QAP polynomials at these sizes do not warrant an
// NTT, and the coefficient fields are not NTT-friendly anyway.

import (
	"errors"
	"fmt"

	"github.com/lambdaclass/pinocchio-lambda-vm/ff"
)

// ErrNonDistinctNodes is returned by Interpolate when two x-coordinates
// coincide.
var ErrNonDistinctNodes = errors.New("poly: interpolation nodes are not distinct")

// Ring is the polynomial ring F[X] over a fixed prime field.
type Ring struct {
	F ff.Field
}

// NewRing returns F[X].
func NewRing(f ff.Field) Ring { return Ring{F: f} }

// Poly is a polynomial in ascending coefficient order. Invariant: the last
// coefficient is nonzero; the zero polynomial has no coefficients.
type Poly struct {
	Coeffs []ff.Elem
}

// Degree returns the degree, or -1 for the zero polynomial.
func (p Poly) Degree() int { return len(p.Coeffs) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.Coeffs) == 0 }

// Equal reports coefficient-wise equality.
func (p Poly) Equal(q Poly) bool {
	if len(p.Coeffs) != len(q.Coeffs) {
		return false
	}
	for i := range p.Coeffs {
		if p.Coeffs[i] != q.Coeffs[i] {
			return false
		}
	}
	return true
}

// Zero returns the zero polynomial.
func (r Ring) Zero() Poly { return Poly{} }

// New builds a polynomial from coeffs, reducing each coefficient and
// stripping trailing zeros. The input slice is not retained.
func (r Ring) New(coeffs []ff.Elem) Poly {
	out := make([]ff.Elem, len(coeffs))
	for i, c := range coeffs {
		out[i] = r.F.New(uint64(c))
	}
	return trim(out)
}

// NewUint builds a polynomial from raw coefficient values.
func (r Ring) NewUint(coeffs []uint64) Poly {
	elems := make([]ff.Elem, len(coeffs))
	for i, c := range coeffs {
		elems[i] = r.F.New(c)
	}
	return r.New(elems)
}

// Monomial returns c * X^d.
func (r Ring) Monomial(c ff.Elem, d int) Poly {
	c = r.F.New(uint64(c))
	if c == 0 {
		return Poly{}
	}
	coeffs := make([]ff.Elem, d+1)
	coeffs[d] = c
	return Poly{Coeffs: coeffs}
}

// Add returns a + b.
func (r Ring) Add(a, b Poly) Poly {
	n := len(a.Coeffs)
	if len(b.Coeffs) > n {
		n = len(b.Coeffs)
	}
	out := make([]ff.Elem, n)
	for i := 0; i < n; i++ {
		var ai, bi ff.Elem
		if i < len(a.Coeffs) {
			ai = a.Coeffs[i]
		}
		if i < len(b.Coeffs) {
			bi = b.Coeffs[i]
		}
		out[i] = r.F.Add(ai, bi)
	}
	return trim(out)
}

// Sub returns a - b.
func (r Ring) Sub(a, b Poly) Poly {
	n := len(a.Coeffs)
	if len(b.Coeffs) > n {
		n = len(b.Coeffs)
	}
	out := make([]ff.Elem, n)
	for i := 0; i < n; i++ {
		var ai, bi ff.Elem
		if i < len(a.Coeffs) {
			ai = a.Coeffs[i]
		}
		if i < len(b.Coeffs) {
			bi = b.Coeffs[i]
		}
		out[i] = r.F.Sub(ai, bi)
	}
	return trim(out)
}

// Neg returns -a.
func (r Ring) Neg(a Poly) Poly {
	out := make([]ff.Elem, len(a.Coeffs))
	for i, c := range a.Coeffs {
		out[i] = r.F.Neg(c)
	}
	return Poly{Coeffs: out}
}

// Mul returns a * b by schoolbook convolution.
func (r Ring) Mul(a, b Poly) Poly {
	if a.IsZero() || b.IsZero() {
		return Poly{}
	}
	out := make([]ff.Elem, len(a.Coeffs)+len(b.Coeffs)-1)
	for i, ai := range a.Coeffs {
		if ai == 0 {
			continue
		}
		for j, bj := range b.Coeffs {
			if bj == 0 {
				continue
			}
			out[i+j] = r.F.Add(out[i+j], r.F.Mul(ai, bj))
		}
	}
	return trim(out)
}

// ScalarMul returns c * a.
func (r Ring) ScalarMul(a Poly, c ff.Elem) Poly {
	if c == 0 || a.IsZero() {
		return Poly{}
	}
	out := make([]ff.Elem, len(a.Coeffs))
	for i, ai := range a.Coeffs {
		out[i] = r.F.Mul(ai, c)
	}
	return trim(out)
}

// DivRem returns (q, rem) with a = q*d + rem and deg rem < deg d, by
// classical long division. Dividing by the zero polynomial fails with
// ff.ErrDivisionByZero. When deg a < deg d the quotient is zero and the
// remainder is a.
func (r Ring) DivRem(a, d Poly) (Poly, Poly, error) {
	if d.IsZero() {
		return Poly{}, Poly{}, fmt.Errorf("poly: divide by zero polynomial: %w", ff.ErrDivisionByZero)
	}
	if len(a.Coeffs) < len(d.Coeffs) {
		rem := make([]ff.Elem, len(a.Coeffs))
		copy(rem, a.Coeffs)
		return Poly{}, Poly{Coeffs: rem}, nil
	}
	rem := make([]ff.Elem, len(a.Coeffs))
	copy(rem, a.Coeffs)
	quo := make([]ff.Elem, len(a.Coeffs)-len(d.Coeffs)+1)
	invLead, err := r.F.Inv(d.Coeffs[len(d.Coeffs)-1])
	if err != nil {
		return Poly{}, Poly{}, err
	}
	for i := len(rem) - 1; i >= len(d.Coeffs)-1; i-- {
		c := rem[i]
		if c == 0 {
			continue
		}
		c = r.F.Mul(c, invLead)
		quo[i-len(d.Coeffs)+1] = c
		for j, dj := range d.Coeffs {
			idx := i - len(d.Coeffs) + 1 + j
			rem[idx] = r.F.Sub(rem[idx], r.F.Mul(c, dj))
		}
	}
	return trim(quo), trim(rem[:len(d.Coeffs)-1]), nil
}

// Eval evaluates p at x by Horner's rule.
func (r Ring) Eval(p Poly, x ff.Elem) ff.Elem {
	var acc ff.Elem
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		acc = r.F.Add(r.F.Mul(acc, x), p.Coeffs[i])
	}
	return acc
}

// Interpolate returns the unique polynomial of degree < len(xs) through the
// points (xs[i], ys[i]), by the Lagrange basis. The xs must be pairwise
// distinct or the construction fails with ErrNonDistinctNodes.
func (r Ring) Interpolate(xs, ys []ff.Elem) (Poly, error) {
	if len(xs) != len(ys) {
		return Poly{}, fmt.Errorf("poly: interpolate with %d nodes but %d values", len(xs), len(ys))
	}
	res := r.Zero()
	for i := range xs {
		num := r.Monomial(ys[i], 0)
		den := r.F.One()
		for j := range xs {
			if i == j {
				continue
			}
			if xs[i] == xs[j] {
				return Poly{}, ErrNonDistinctNodes
			}
			num = r.Mul(num, Poly{Coeffs: []ff.Elem{r.F.Neg(xs[j]), r.F.One()}})
			den = r.F.Mul(den, r.F.Sub(xs[i], xs[j]))
		}
		invDen, err := r.F.Inv(den)
		if err != nil {
			return Poly{}, err
		}
		res = r.Add(res, r.ScalarMul(num, invDen))
	}
	return res, nil
}

func trim(coeffs []ff.Elem) Poly {
	end := len(coeffs)
	for end > 0 && coeffs[end-1] == 0 {
		end--
	}
	return Poly{Coeffs: coeffs[:end]}
}
