package extfield

// Package extfield implements small extension fields F_{p^k} represented
// over a power basis. Elements carry k limbs over the base prime;
// multiplication reduces modulo a fixed irreducible defining polynomial,
// and inversion raises to p^k - 2. The base-field and representative-
// polynomial arithmetic is the module's own ff/poly layer. The pairing
// target group and the coordinates of curve points both live here.

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/lambdaclass/pinocchio-lambda-vm/ff"
	"github.com/lambdaclass/pinocchio-lambda-vm/poly"
	"github.com/lambdaclass/pinocchio-lambda-vm/sample"
)

// ErrDivisionByZero is returned when inverting the zero element.
var ErrDivisionByZero = errors.New("extfield: division by zero")

// Field describes K = F_p[X]/(D(X)) with a degree-k power-basis
// representation. D is monic irreducible of degree k.
type Field struct {
	P   uint64
	K   int
	Mod []uint64

	base    ff.Field
	ring    poly.Ring
	modPoly poly.Poly
}

// Elem is a K element represented by its k limbs in the power basis. Limbs
// are canonical residues modulo p; the fixed length k is the reduced form
// (formal degree < k), so no trailing-coefficient bookkeeping is needed.
type Elem struct {
	Limb []uint64
}

// New constructs an extension field descriptor. mod must be monic
// irreducible of degree k over F_p.
func New(p uint64, k int, mod []uint64) (*Field, error) {
	base, err := ff.NewField(p)
	if err != nil {
		return nil, fmt.Errorf("extfield: base prime %d: %w", p, err)
	}
	if k <= 0 {
		return nil, fmt.Errorf("extfield: extension degree must be positive, got %d", k)
	}
	if len(mod) != k+1 {
		return nil, fmt.Errorf("extfield: defining polynomial must have degree %d, got %d coefficients", k, len(mod))
	}
	norm := make([]uint64, len(mod))
	for i := range mod {
		norm[i] = base.New(mod[i]).Representative()
	}
	if norm[k] != base.One().Representative() {
		return nil, errors.New("extfield: defining polynomial must be monic")
	}
	ring := poly.NewRing(base)
	modPoly := ring.NewUint(norm)
	if !isIrreducible(ring, modPoly) {
		return nil, errors.New("extfield: defining polynomial is reducible")
	}
	return &Field{P: p, K: k, Mod: norm, base: base, ring: ring, modPoly: modPoly}, nil
}

// FindIrreducible samples random monic polynomials of degree k over F_p,
// with nonzero constant term, until one passes the Ben-Or test.
func FindIrreducible(p uint64, k int, src sample.Source) ([]uint64, error) {
	base, err := ff.NewField(p)
	if err != nil {
		return nil, fmt.Errorf("extfield: base prime %d: %w", p, err)
	}
	if k <= 0 {
		return nil, fmt.Errorf("extfield: invalid degree %d", k)
	}
	ring := poly.NewRing(base)
	const maxTries = 1 << 16
	for try := 0; try < maxTries; try++ {
		mod := make([]uint64, k+1)
		mod[k] = 1
		mod[0] = 1 + src.Uniform(p-1)
		for i := 1; i < k; i++ {
			mod[i] = src.Uniform(p)
		}
		if isIrreducible(ring, ring.NewUint(mod)) {
			return mod, nil
		}
	}
	return nil, errors.New("extfield: failed to find irreducible polynomial")
}

// Order returns p^k.
func (f *Field) Order() *big.Int {
	p := new(big.Int).SetUint64(f.P)
	return p.Exp(p, big.NewInt(int64(f.K)), nil)
}

// Zero returns the additive identity in K.
func (f *Field) Zero() Elem {
	return Elem{Limb: make([]uint64, f.K)}
}

// One returns the multiplicative identity in K.
func (f *Field) One() Elem {
	e := f.Zero()
	e.Limb[0] = f.base.One().Representative()
	return e
}

// Embed lifts an F_p element into K via the canonical embedding.
func (f *Field) Embed(x uint64) Elem {
	e := f.Zero()
	e.Limb[0] = f.base.New(x).Representative()
	return e
}

// FromLimbs builds an element from its power-basis coordinates, truncating
// or zero-padding to length k and reducing each limb.
func (f *Field) FromLimbs(limbs []uint64) Elem {
	e := f.Zero()
	n := len(limbs)
	if n > f.K {
		n = f.K
	}
	for i := 0; i < n; i++ {
		e.Limb[i] = f.base.New(limbs[i]).Representative()
	}
	return e
}

// Limbs returns a copy of the power-basis coordinates of e.
func (f *Field) Limbs(e Elem) []uint64 {
	out := make([]uint64, f.K)
	copy(out, e.Limb)
	return out
}

// asPoly returns the representative polynomial of e.
func (f *Field) asPoly(e Elem) poly.Poly {
	coeffs := make([]ff.Elem, len(e.Limb))
	for i, limb := range e.Limb {
		coeffs[i] = ff.Elem(limb)
	}
	return f.ring.New(coeffs)
}

// fromPoly pads a reduced representative back to k limbs.
func (f *Field) fromPoly(p poly.Poly) Elem {
	e := f.Zero()
	for i, c := range p.Coeffs {
		e.Limb[i] = c.Representative()
	}
	return e
}

// Add returns a + b in K.
func (f *Field) Add(a, b Elem) Elem {
	out := f.Zero()
	for i := 0; i < f.K; i++ {
		out.Limb[i] = f.base.Add(ff.Elem(a.Limb[i]), ff.Elem(b.Limb[i])).Representative()
	}
	return out
}

// Sub returns a - b in K.
func (f *Field) Sub(a, b Elem) Elem {
	out := f.Zero()
	for i := 0; i < f.K; i++ {
		out.Limb[i] = f.base.Sub(ff.Elem(a.Limb[i]), ff.Elem(b.Limb[i])).Representative()
	}
	return out
}

// Neg returns -a in K.
func (f *Field) Neg(a Elem) Elem {
	return f.Sub(f.Zero(), a)
}

// Mul multiplies two K elements: product of the representative
// polynomials, then reduction modulo the defining polynomial.
func (f *Field) Mul(a, b Elem) Elem {
	prod := f.ring.Mul(f.asPoly(a), f.asPoly(b))
	return f.fromPoly(mod(f.ring, prod, f.modPoly))
}

// Equal reports whether a and b are the same element.
func (f *Field) Equal(a, b Elem) bool {
	for i := 0; i < f.K; i++ {
		if a.Limb[i] != b.Limb[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether e is the additive identity.
func (f *Field) IsZero(e Elem) bool {
	for _, limb := range e.Limb {
		if limb != 0 {
			return false
		}
	}
	return true
}

// IsOne reports whether e is the multiplicative identity.
func (f *Field) IsOne(e Elem) bool {
	return f.Equal(e, f.One())
}

// Pow returns base^exp using square-and-multiply. exp must be non-negative;
// a nil or zero exponent yields one.
func (f *Field) Pow(base Elem, exp *big.Int) Elem {
	if exp == nil || exp.Sign() == 0 {
		return f.One()
	}
	result := f.One()
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = f.Mul(result, result)
		if exp.Bit(i) == 1 {
			result = f.Mul(result, base)
		}
	}
	return result
}

// PowUint is Pow for small exponents.
func (f *Field) PowUint(base Elem, exp uint64) Elem {
	return f.Pow(base, new(big.Int).SetUint64(exp))
}

// Inv returns the multiplicative inverse of a, computed as a^(p^k - 2).
func (f *Field) Inv(a Elem) (Elem, error) {
	if f.IsZero(a) {
		return Elem{}, ErrDivisionByZero
	}
	exp := f.Order()
	exp.Sub(exp, big.NewInt(2))
	return f.Pow(a, exp), nil
}

// Div returns a / b.
func (f *Field) Div(a, b Elem) (Elem, error) {
	bi, err := f.Inv(b)
	if err != nil {
		return Elem{}, err
	}
	return f.Mul(a, bi), nil
}

// Random samples a uniform K element by drawing k uniform limbs.
func (f *Field) Random(src sample.Source) Elem {
	limb := make([]uint64, f.K)
	for i := range limb {
		limb[i] = f.base.Random(src).Representative()
	}
	return Elem{Limb: limb}
}

// String renders e as a polynomial in the power-basis indeterminate.
func (f *Field) String(e Elem) string {
	s := ""
	for i := f.K - 1; i >= 0; i-- {
		if e.Limb[i] == 0 && !(i == 0 && s == "") {
			continue
		}
		if s != "" {
			s += " + "
		}
		switch i {
		case 0:
			s += fmt.Sprintf("%d", e.Limb[i])
		case 1:
			s += fmt.Sprintf("%d*u", e.Limb[i])
		default:
			s += fmt.Sprintf("%d*u^%d", e.Limb[i], i)
		}
	}
	return s
}
