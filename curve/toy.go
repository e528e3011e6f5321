package curve

// The didactic pairing preset: E: y^2 = x^3 + x over F_59, extended to
// F_59[u]/(u^2 + 1). The curve is supersingular with |E(F_59)| = 60; the
// base point (35, 31) generates the 5-torsion subgroup, and the distortion
// map (x, y) -> (-x, u*y) carries it to a linearly independent copy, so
// e(P, phi(Q)) is non-degenerate on the base subgroup. The Tate final
// exponent is (59^2 - 1)/5 = 696.
//
// These parameters are for tests and demos only. Any curve descriptor with
// a valid generator and distortion map slots into the same Curve type.

import "github.com/lambdaclass/pinocchio-lambda-vm/extfield"

const (
	// ToyBasePrime is the coordinate-field characteristic of the preset.
	ToyBasePrime = 59
	// ToySubgroupOrder is the order of the preset's base point; the scalar
	// field Fr of the protocol must match it.
	ToySubgroupOrder = 5
)

// ToyField returns F_59[u]/(u^2 + 1).
func ToyField() *extfield.Field {
	f, err := extfield.New(ToyBasePrime, 2, []uint64{1, 0, 1})
	if err != nil {
		panic(err)
	}
	return f
}

// Toy returns the didactic pairing curve.
func Toy() *Curve {
	f := ToyField()
	distortion := func(p Point) Point {
		// (x : y : z) -> (-x : u*y : z)
		u := f.FromLimbs([]uint64{0, 1})
		return Point{X: f.Neg(p.X), Y: f.Mul(u, p.Y), Z: p.Z}
	}
	c, err := New(
		f,
		f.Embed(1), // a
		f.Embed(0), // b
		f.Embed(35),
		f.Embed(31),
		ToySubgroupOrder,
		distortion,
	)
	if err != nil {
		panic(err)
	}
	return c
}
