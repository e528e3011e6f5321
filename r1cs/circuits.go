package r1cs

// Reusable circuits: the four-input example from the Pinocchio paper, used
// throughout the tests and the demo binary, and a variable-size
// multiplication chain for benchmarks.

import "github.com/lambdaclass/pinocchio-lambda-vm/ff"

// PaperCircuit builds the paper's example circuit out = (x1 + x2) * x5 with
// x5 = x3 * x4: four public inputs, one intermediate wire, one public
// output, seven wires in total.
//
// Wire layout: [1, x1, x2, x3, x4, x5, out].
func PaperCircuit(f ff.Field) *R1CS {
	row := func(vals ...uint64) []ff.Elem {
		out := make([]ff.Elem, len(vals))
		for i, v := range vals {
			out[i] = f.New(v)
		}
		return out
	}
	// x3 * x4 = x5
	first := Constraint{
		A: row(0, 0, 0, 1, 0, 0, 0),
		B: row(0, 0, 0, 0, 1, 0, 0),
		C: row(0, 0, 0, 0, 0, 1, 0),
	}
	// (x1 + x2) * x5 = out
	second := Constraint{
		A: row(0, 1, 1, 0, 0, 0, 0),
		B: row(0, 0, 0, 0, 0, 1, 0),
		C: row(0, 0, 0, 0, 0, 0, 1),
	}
	cs, err := New(f, []Constraint{first, second}, 4, 1)
	if err != nil {
		panic(err)
	}
	return cs
}

// SolvePaperCircuit runs the paper circuit on the given inputs and returns
// the intermediate wire and the output.
func SolvePaperCircuit(f ff.Field, inputs [4]ff.Elem) (mid, out ff.Elem) {
	mid = f.Mul(inputs[2], inputs[3])
	out = f.Mul(f.Add(inputs[0], inputs[1]), mid)
	return mid, out
}

// PaperAssignment assembles the full wire vector for the paper circuit:
// constant 1, the inputs, the solved intermediate, and the output.
func PaperAssignment(f ff.Field, inputs [4]ff.Elem) []ff.Elem {
	mid, out := SolvePaperCircuit(f, inputs)
	return []ff.Elem{f.One(), inputs[0], inputs[1], inputs[2], inputs[3], mid, out}
}

// ChainCircuit builds a product chain out = x1 * x2 * ... * xk with k >= 2
// inputs, k-2 intermediate wires, and one output, giving k-1 constraints
// over 2k wires. It scales the pipeline for benchmarks without changing the
// circuit's character.
func ChainCircuit(f ff.Field, k int) *R1CS {
	if k < 2 {
		panic("r1cs: chain circuit needs at least 2 inputs")
	}
	n := 2 * k
	one := f.One()
	constraints := make([]Constraint, 0, k-1)
	// wire layout: [1, x1..xk, m1..m_{k-2}, out]
	midWire := func(i int) int { return 1 + k + i } // i-th intermediate, 0-based
	outWire := n - 1
	left := 1 // x1
	for i := 0; i < k-1; i++ {
		target := midWire(i)
		if i == k-2 {
			target = outWire
		}
		a := make([]ff.Elem, n)
		b := make([]ff.Elem, n)
		c := make([]ff.Elem, n)
		a[left] = one
		b[2+i] = one // x_{i+2}
		c[target] = one
		constraints = append(constraints, Constraint{A: a, B: b, C: c})
		left = target
	}
	cs, err := New(f, constraints, k, 1)
	if err != nil {
		panic(err)
	}
	return cs
}

// SolveChainCircuit assembles the full wire vector for ChainCircuit(f, k)
// given its k inputs.
func SolveChainCircuit(f ff.Field, inputs []ff.Elem) []ff.Elem {
	k := len(inputs)
	n := 2 * k
	assignment := make([]ff.Elem, n)
	assignment[0] = f.One()
	copy(assignment[1:], inputs)
	acc := inputs[0]
	for i := 0; i < k-2; i++ {
		acc = f.Mul(acc, inputs[i+1])
		assignment[1+k+i] = acc
	}
	assignment[n-1] = f.Mul(acc, inputs[k-1])
	return assignment
}
