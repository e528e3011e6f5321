package extfield

// Irreducibility testing for defining polynomials, expressed over the
// module's own field and polynomial layers. The test is Ben-Or's: D of
// degree n over F_p is irreducible iff gcd(X^(p^i) - X, D) is trivial for
// every i up to n/2 and the Frobenius orbit closes after n steps,
// X^(p^n) = X (mod D).

import "github.com/lambdaclass/pinocchio-lambda-vm/poly"

// powMod raises base to exp modulo m in F_p[X], reducing after every
// squaring so degrees stay below deg m.
func powMod(r poly.Ring, base poly.Poly, exp uint64, m poly.Poly) poly.Poly {
	result := r.Monomial(r.F.One(), 0)
	b := mod(r, base, m)
	for exp > 0 {
		if exp&1 == 1 {
			result = mod(r, r.Mul(result, b), m)
		}
		exp >>= 1
		if exp > 0 {
			b = mod(r, r.Mul(b, b), m)
		}
	}
	return result
}

// frobenius maps a residue through x -> x^p modulo m.
func frobenius(r poly.Ring, x poly.Poly, m poly.Poly) poly.Poly {
	return powMod(r, x, r.F.Modulus(), m)
}

// gcd returns the monic greatest common divisor of a and b.
func gcd(r poly.Ring, a, b poly.Poly) poly.Poly {
	for !b.IsZero() {
		a, b = b, mod(r, a, b)
	}
	if a.IsZero() {
		return a
	}
	invLead, err := r.F.Inv(a.Coeffs[len(a.Coeffs)-1])
	if err != nil {
		panic("extfield: zero leading coefficient after trim")
	}
	return r.ScalarMul(a, invLead)
}

// mod reduces a modulo m. The modulus is nonzero at every call site.
func mod(r poly.Ring, a, m poly.Poly) poly.Poly {
	_, rem, err := r.DivRem(a, m)
	if err != nil {
		panic("extfield: reduction by zero polynomial")
	}
	return rem
}

// isIrreducible reports whether d is irreducible over the ring's base
// field. Constants are never irreducible; degree-1 polynomials always are.
func isIrreducible(r poly.Ring, d poly.Poly) bool {
	n := d.Degree()
	if n < 1 {
		return false
	}
	x := r.Monomial(r.F.One(), 1)
	xRed := mod(r, x, d)
	xp := xRed
	for i := 1; i <= n/2; i++ {
		xp = frobenius(r, xp, d)
		if gcd(r, r.Sub(xp, xRed), d).Degree() > 0 {
			return false
		}
	}
	xp = xRed
	for i := 0; i < n; i++ {
		xp = frobenius(r, xp, d)
	}
	return r.Sub(xp, xRed).IsZero()
}
