package qap

import (
	"github.com/lambdaclass/pinocchio-lambda-vm/ff"
	"github.com/lambdaclass/pinocchio-lambda-vm/r1cs"
)

// PaperQAP lowers the paper's example circuit over f. With the lowering's
// evaluation points this pins the two gates at X = 0 and X = 1, matching
// the (r5, r6) choice in the paper walkthrough.
func PaperQAP(f ff.Field) *QAP {
	q, err := FromR1CS(r1cs.PaperCircuit(f))
	if err != nil {
		panic(err)
	}
	return q
}
