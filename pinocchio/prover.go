package pinocchio

// The prover. Given the evaluation key, the QAP, and the full wire
// assignment of one circuit execution, it emits eight group elements: the
// hidings of the intermediate-wire combinations v_mid(s), w_mid(s),
// y_mid(s), their alpha-companions, the beta combination, and the hiding of
// the witness quotient h(s). All eight are multi-scalar multiplications
// against the key.

import (
	"fmt"
	"time"

	"github.com/lambdaclass/pinocchio-lambda-vm/ff"
	"github.com/lambdaclass/pinocchio-lambda-vm/group"
	"github.com/lambdaclass/pinocchio-lambda-vm/internal/logger"
	"github.com/lambdaclass/pinocchio-lambda-vm/qap"
)

// Prove generates a proof for the execution instance described by
// assignment: the full wire vector with the constant 1 at index 0, public
// inputs at [1, nI], intermediate wires next, and public outputs last.
// An assignment that does not satisfy the circuit is rejected with
// qap.ErrAssignmentUnsatisfied (surfaced by the witness quotient).
func Prove[G, T any](s group.Bilinear[G, T], ek *EvaluationKey[G], q *qap.QAP, assignment []ff.Elem) (*Proof[G], error) {
	if len(assignment) != q.NumWires() {
		return nil, fmt.Errorf("%w: assignment of length %d for %d wires", qap.ErrDimensionMismatch, len(assignment), q.NumWires())
	}
	log := logger.Logger().With().Int("nbWires", q.NumWires()).Str("protocol", "pinocchio").Logger()
	start := time.Now()

	h, err := q.H(assignment)
	if err != nil {
		return nil, err
	}

	cMid := assignment[q.NumInputs+1 : len(assignment)-q.NumOutputs]

	proof := &Proof[G]{
		GVs:      group.MSM(s, cMid, ek.GvKs),
		GWs:      group.MSM(s, cMid, ek.GwKs),
		GYs:      group.MSM(s, cMid, ek.GyKs),
		GAlphaVs: group.MSM(s, cMid, ek.GvAlphaKs),
		GAlphaWs: group.MSM(s, cMid, ek.GwAlphaKs),
		GAlphaYs: group.MSM(s, cMid, ek.GyAlphaKs),
		GBetaVWY: group.MSM(s, cMid, ek.GBeta),
		GHs:      group.MSM(s, h.Coeffs, ek.GSi),
	}

	log.Debug().Dur("took", time.Since(start)).Msg("prover done")
	return proof, nil
}
