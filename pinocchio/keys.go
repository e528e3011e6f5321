package pinocchio

// Key material produced by the trusted setup. Both keys are vectors of
// hidings: group elements of the form g^x from which x cannot be recovered
// under the discrete-log assumption.

// EvaluationKey is the prover's key. The per-wire vectors are indexed by
// the intermediate wires only; GSi is indexed by monomial degree and has
// one entry per degree below deg t.
type EvaluationKey[G any] struct {
	// GvKs[k] = g^{r_v * v_k(s)}, and likewise for w and y (with r_y).
	GvKs []G
	GwKs []G
	GyKs []G
	// GvAlphaKs[k] = g^{r_v * alpha_v * v_k(s)}: the consistency
	// companions for the verifier's span checks.
	GvAlphaKs []G
	GwAlphaKs []G
	GyAlphaKs []G
	// GBeta[k] = g^{beta * (r_v v_k(s) + r_w w_k(s) + r_y y_k(s))}: the
	// same-linear-combination companion.
	GBeta []G
	// GSi[i] = g^{s^i}, for assembling g^{h(s)}.
	GSi []G
}

// VerificationKey is the verifier's key. The per-wire vectors cover the
// constant-1 wire at index 0 followed by the public inputs and outputs.
type VerificationKey[G any] struct {
	G1         G
	GAlphaV    G
	GAlphaW    G
	GAlphaY    G
	GGamma     G
	GBetaGamma G
	// GyTargetS = g^{r_y * t(s)}.
	GyTargetS G

	GvKs []G
	GwKs []G
	GyKs []G
}

// Proof is the constant-size argument: the hidings of v_mid(s), w_mid(s),
// y_mid(s) and h(s), plus the redundant alpha- and beta-companions the
// verifier's consistency checks need.
type Proof[G any] struct {
	GVs      G
	GWs      G
	GYs      G
	GHs      G
	GAlphaVs G
	GAlphaWs G
	GAlphaYs G
	GBetaVWY G
}
