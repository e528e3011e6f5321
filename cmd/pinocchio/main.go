package main

// End-to-end demo on the didactic curve: build the paper circuit
// out = (a + b) * c * d over F_5, run the trusted setup, prove one
// execution, and verify it against the public inputs and output.

import (
	"flag"
	"fmt"
	"os"

	"github.com/lambdaclass/pinocchio-lambda-vm/curve"
	"github.com/lambdaclass/pinocchio-lambda-vm/ff"
	"github.com/lambdaclass/pinocchio-lambda-vm/group"
	"github.com/lambdaclass/pinocchio-lambda-vm/internal/logger"
	"github.com/lambdaclass/pinocchio-lambda-vm/pinocchio"
	"github.com/lambdaclass/pinocchio-lambda-vm/qap"
	"github.com/lambdaclass/pinocchio-lambda-vm/r1cs"
	"github.com/lambdaclass/pinocchio-lambda-vm/sample"
)

func main() {
	var (
		a       = flag.Uint64("a", 1, "first input")
		b       = flag.Uint64("b", 2, "second input")
		c       = flag.Uint64("c", 3, "third input")
		d       = flag.Uint64("d", 4, "fourth input")
		tamper  = flag.Bool("tamper", false, "flip the claimed output before verifying")
		verbose = flag.Bool("v", false, "log protocol phases")
	)
	flag.Parse()
	if !*verbose {
		logger.Disable()
	}

	if err := run(*a, *b, *c, *d, *tamper); err != nil {
		fmt.Fprintln(os.Stderr, "pinocchio:", err)
		os.Exit(1)
	}
}

func run(a, b, c, d uint64, tamper bool) error {
	toy := curve.Toy()
	suite := group.NewCurveSuite(toy)
	f := ff.MustField(toy.R)

	circuit := qap.PaperQAP(f)
	inputs := [4]ff.Elem{f.New(a), f.New(b), f.New(c), f.New(d)}
	assignment := r1cs.PaperAssignment(f, inputs)
	fmt.Printf("inputs  (a,b,c,d) = (%d, %d, %d, %d) over F_%d\n", inputs[0], inputs[1], inputs[2], inputs[3], f.Modulus())
	fmt.Printf("witness (mid,out) = (%d, %d)\n", assignment[5], assignment[6])

	src, err := sample.NewSource()
	if err != nil {
		return err
	}

	var (
		ek *pinocchio.EvaluationKey[curve.Point]
		vk *pinocchio.VerificationKey[curve.Point]
	)
	err = pinocchio.WithToxicWaste(f, src, func(tw *pinocchio.ToxicWaste) error {
		ek, vk = pinocchio.Setup(suite, circuit, tw)
		return nil
	})
	if err != nil {
		return err
	}

	proof, err := pinocchio.Prove(suite, ek, circuit, assignment)
	if err != nil {
		return err
	}

	out := assignment[6]
	if tamper {
		out = f.Add(out, f.One())
		fmt.Printf("tampered output   = %d\n", out)
	}
	inputOutput := []ff.Elem{inputs[0], inputs[1], inputs[2], inputs[3], out}

	if pinocchio.Verify(suite, vk, proof, inputOutput) {
		fmt.Println("verification: ACCEPT")
	} else {
		fmt.Println("verification: REJECT")
	}
	return nil
}
