package pinocchio

// The verifier. Holding only the verification key, the proof, and the
// public inputs and outputs, it runs three pairing checks: divisibility by
// the target polynomial, the alpha span checks, and the beta
// same-linear-combination check. The result is a plain accept/reject;
// malformed proofs fail the equations rather than erroring.

import (
	"time"

	"github.com/lambdaclass/pinocchio-lambda-vm/ff"
	"github.com/lambdaclass/pinocchio-lambda-vm/group"
	"github.com/lambdaclass/pinocchio-lambda-vm/internal/logger"
)

// Verify checks the proof against the public IO slice: the input wire
// values followed by the output wire values, without the constant-1 wire
// (its hiding is the index-0 entry of the key's vectors). A slice whose
// length disagrees with the key rejects.
func Verify[G, T any](s group.Bilinear[G, T], vk *VerificationKey[G], proof *Proof[G], inputOutput []ff.Elem) bool {
	if len(inputOutput) != len(vk.GvKs)-1 {
		return false
	}
	log := logger.Logger().With().Str("protocol", "pinocchio").Logger()
	start := time.Now()

	ok := checkDivisibility(s, vk, proof, inputOutput) &&
		checkSpans(s, vk, proof) &&
		checkSameLinearCombination(s, vk, proof)

	log.Debug().Dur("took", time.Since(start)).Bool("accepted", ok).Msg("verifier done")
	return ok
}

// checkDivisibility reconstructs the hidings of the full combinations
// V(s), W(s), Y(s) from the constant wire, the public IO, and the proof's
// mid parts, then requires
//
//	e(g^V(s), g^W(s)) == e(g^{r_y t(s)}, g^h(s)) * e(g^Y(s), g).
func checkDivisibility[G, T any](s group.Bilinear[G, T], vk *VerificationKey[G], proof *Proof[G], inputOutput []ff.Elem) bool {
	hidingV := s.Op(s.Op(vk.GvKs[0], group.MSM(s, inputOutput, vk.GvKs[1:])), proof.GVs)
	hidingW := s.Op(s.Op(vk.GwKs[0], group.MSM(s, inputOutput, vk.GwKs[1:])), proof.GWs)
	hidingY := s.Op(s.Op(vk.GyKs[0], group.MSM(s, inputOutput, vk.GyKs[1:])), proof.GYs)

	lhs := s.Pair(hidingV, hidingW)
	rhs := s.TOp(s.Pair(vk.GyTargetS, proof.GHs), s.Pair(hidingY, vk.G1))
	return s.TEqual(lhs, rhs)
}

// checkSpans requires each mid hiding to be accompanied by its alpha
// multiple: e(V'_mid, g) == e(V_mid, g^alpha_v), and likewise for w and y.
func checkSpans[G, T any](s group.Bilinear[G, T], vk *VerificationKey[G], proof *Proof[G]) bool {
	return s.TEqual(s.Pair(proof.GAlphaVs, vk.G1), s.Pair(proof.GVs, vk.GAlphaV)) &&
		s.TEqual(s.Pair(proof.GAlphaWs, vk.G1), s.Pair(proof.GWs, vk.GAlphaW)) &&
		s.TEqual(s.Pair(proof.GAlphaYs, vk.G1), s.Pair(proof.GYs, vk.GAlphaY))
}

// checkSameLinearCombination requires the beta companion to combine the
// same mid coefficients as the three hidings:
//
//	e(Z, g^gamma) == e(V_mid + W_mid + Y_mid, g^{beta gamma}).
func checkSameLinearCombination[G, T any](s group.Bilinear[G, T], vk *VerificationKey[G], proof *Proof[G]) bool {
	combined := s.Op(s.Op(proof.GVs, proof.GWs), proof.GYs)
	return s.TEqual(s.Pair(proof.GBetaVWY, vk.GGamma), s.Pair(combined, vk.GBetaGamma))
}
