package pinocchio

import (
	"testing"

	"github.com/lambdaclass/pinocchio-lambda-vm/curve"
	"github.com/lambdaclass/pinocchio-lambda-vm/ff"
	"github.com/lambdaclass/pinocchio-lambda-vm/group"
	"github.com/lambdaclass/pinocchio-lambda-vm/qap"
	"github.com/lambdaclass/pinocchio-lambda-vm/r1cs"
	"github.com/lambdaclass/pinocchio-lambda-vm/sample"
)

func BenchmarkSetupPaperCircuitOnCurve(b *testing.B) {
	toy := curve.Toy()
	s := group.NewCurveSuite(toy)
	f := ff.MustField(toy.R)
	q := qap.PaperQAP(f)
	tw := scenarioToxicWaste(f)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Setup(s, q, tw)
	}
}

func BenchmarkProvePaperCircuitOnCurve(b *testing.B) {
	toy := curve.Toy()
	s := group.NewCurveSuite(toy)
	f := ff.MustField(toy.R)
	q := qap.PaperQAP(f)
	ek, _ := Setup(s, q, scenarioToxicWaste(f))
	assignment := r1cs.PaperAssignment(f, [4]ff.Elem{f.New(1), f.New(2), f.New(3), f.New(4)})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Prove(s, ek, q, assignment); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerifyPaperCircuitOnCurve(b *testing.B) {
	toy := curve.Toy()
	s := group.NewCurveSuite(toy)
	f := ff.MustField(toy.R)
	q := qap.PaperQAP(f)
	ek, vk := Setup(s, q, scenarioToxicWaste(f))
	inputs := [4]ff.Elem{f.New(1), f.New(2), f.New(3), f.New(4)}
	assignment := r1cs.PaperAssignment(f, inputs)
	proof, err := Prove(s, ek, q, assignment)
	if err != nil {
		b.Fatal(err)
	}
	io := paperIo(inputs, assignment[6])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Verify(s, vk, proof, io)
	}
}

func BenchmarkProveChain64ExponentSuite(b *testing.B) {
	f := ff.MustField(2147483647)
	s := group.NewExponentSuite(f)
	cs := r1cs.ChainCircuit(f, 64)
	q, err := qap.FromR1CS(cs)
	if err != nil {
		b.Fatal(err)
	}
	src := sample.NewShakeSource([]byte("bench-chain"))
	ek, _ := Setup(s, q, SampleToxicWaste(f, src))
	inputs := make([]ff.Elem, 64)
	for i := range inputs {
		inputs[i] = f.Random(src)
	}
	assignment := r1cs.SolveChainCircuit(f, inputs)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Prove(s, ek, q, assignment); err != nil {
			b.Fatal(err)
		}
	}
}
