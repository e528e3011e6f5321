package pinocchio

// Toxic waste: the eight secret scalars a trusted party samples for setup.
// Anyone holding them can forge proofs, so they live only as long as the
// setup that consumes them. WithToxicWaste scopes the secret and zeroizes
// it on every exit path; Sample and Zeroize remain available for callers
// that manage the scope themselves.

import (
	"github.com/lambdaclass/pinocchio-lambda-vm/ff"
	"github.com/lambdaclass/pinocchio-lambda-vm/sample"
)

// ToxicWaste holds the setup secrets (s, alpha_v, alpha_w, alpha_y, beta,
// r_v, r_w, gamma), all in the scalar field.
type ToxicWaste struct {
	F      ff.Field
	S      ff.Elem
	AlphaV ff.Elem
	AlphaW ff.Elem
	AlphaY ff.Elem
	Beta   ff.Elem
	Rv     ff.Elem
	Rw     ff.Elem
	Gamma  ff.Elem
}

// SampleToxicWaste draws the eight secrets uniformly from src.
func SampleToxicWaste(f ff.Field, src sample.Source) *ToxicWaste {
	return &ToxicWaste{
		F:      f,
		S:      f.Random(src),
		AlphaV: f.Random(src),
		AlphaW: f.Random(src),
		AlphaY: f.Random(src),
		Beta:   f.Random(src),
		Rv:     f.Random(src),
		Rw:     f.Random(src),
		Gamma:  f.Random(src),
	}
}

// Ry returns the derived scaling r_y = r_v * r_w.
func (tw *ToxicWaste) Ry() ff.Elem {
	return tw.F.Mul(tw.Rv, tw.Rw)
}

// Zeroize overwrites the secrets.
func (tw *ToxicWaste) Zeroize() {
	tw.S = 0
	tw.AlphaV = 0
	tw.AlphaW = 0
	tw.AlphaY = 0
	tw.Beta = 0
	tw.Rv = 0
	tw.Rw = 0
	tw.Gamma = 0
}

// WithToxicWaste samples fresh toxic waste, hands it to fn, and zeroizes it
// when fn returns or panics.
func WithToxicWaste(f ff.Field, src sample.Source, fn func(*ToxicWaste) error) error {
	tw := SampleToxicWaste(f, src)
	defer tw.Zeroize()
	return fn(tw)
}
