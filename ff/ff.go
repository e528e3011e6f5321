package ff

// Package ff implements arithmetic in small prime fields F_q with q < 2^32.
// It backs both the scalar field Fr (circuit wires, group exponents) and the
// coordinate field Fp of the pairing curve. Values are canonical residues in
// [0, q): they are reduced once on construction and every operation returns a
// reduced result.

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/lambdaclass/pinocchio-lambda-vm/sample"
)

// ErrDivisionByZero is returned when inverting or dividing by zero.
var ErrDivisionByZero = errors.New("ff: division by zero")

// Elem is a canonical residue of some Field. The zero value is the field zero.
type Elem uint64

// Representative returns the canonical residue as an unsigned integer.
func (e Elem) Representative() uint64 { return uint64(e) }

// Field describes F_q. The modulus is fixed at construction; all methods
// assume their Elem arguments were produced by the same Field.
type Field struct {
	q uint64
}

// NewField constructs F_q. The modulus must be at least 2 and small enough
// that q*q fits in 64 bits, so products never need multi-limb folding.
func NewField(q uint64) (Field, error) {
	if q < 2 {
		return Field{}, fmt.Errorf("ff: modulus must be at least 2, got %d", q)
	}
	if q > 1<<32-1 {
		return Field{}, fmt.Errorf("ff: modulus %d exceeds 2^32-1", q)
	}
	return Field{q: q}, nil
}

// MustField is NewField for compile-time-known moduli. It panics on error.
func MustField(q uint64) Field {
	f, err := NewField(q)
	if err != nil {
		panic(err)
	}
	return f
}

// Modulus returns q.
func (f Field) Modulus() uint64 { return f.q }

// New reduces v modulo q.
func (f Field) New(v uint64) Elem { return Elem(v % f.q) }

// Zero returns the additive identity.
func (f Field) Zero() Elem { return 0 }

// One returns the multiplicative identity.
func (f Field) One() Elem { return Elem(1 % f.q) }

// Add returns a + b.
func (f Field) Add(a, b Elem) Elem {
	s := uint64(a) + uint64(b)
	if s >= f.q {
		s -= f.q
	}
	return Elem(s)
}

// Sub returns a - b.
func (f Field) Sub(a, b Elem) Elem {
	if a >= b {
		return a - b
	}
	return Elem(uint64(a) + f.q - uint64(b))
}

// Neg returns the additive inverse. Neg(0) = 0.
func (f Field) Neg(a Elem) Elem {
	if a == 0 {
		return 0
	}
	return Elem(f.q - uint64(a))
}

// Mul returns a * b.
func (f Field) Mul(a, b Elem) Elem {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	_, rem := bits.Div64(hi, lo, f.q)
	return Elem(rem)
}

// Pow returns a^e by square-and-multiply. Pow(0, 0) = 1.
func (f Field) Pow(a Elem, e uint64) Elem {
	result := f.One()
	base := a
	for e > 0 {
		if e&1 == 1 {
			result = f.Mul(result, base)
		}
		e >>= 1
		if e > 0 {
			base = f.Mul(base, base)
		}
	}
	return result
}

// Inv returns the multiplicative inverse of a by Fermat's little theorem
// (exponent q-2; the modulus is assumed prime).
func (f Field) Inv(a Elem) (Elem, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	return f.Pow(a, f.q-2), nil
}

// Div returns a / b.
func (f Field) Div(a, b Elem) (Elem, error) {
	bi, err := f.Inv(b)
	if err != nil {
		return 0, err
	}
	return f.Mul(a, bi), nil
}

// Random draws a uniform element of [0, q) from src.
func (f Field) Random(src sample.Source) Elem {
	return Elem(src.Uniform(f.q))
}
