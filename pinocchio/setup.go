package pinocchio

// The one-time trusted setup. Given a QAP and fresh toxic waste it hides
// the evaluations of every circuit polynomial at the secret point s, scaled
// by the secret factors, and splits the hidings into the prover's
// evaluation key (intermediate wires, powers of s) and the verifier's key
// (constant wire plus public IO wires, target evaluation, consistency
// generators).

import (
	"time"

	"github.com/lambdaclass/pinocchio-lambda-vm/ff"
	"github.com/lambdaclass/pinocchio-lambda-vm/group"
	"github.com/lambdaclass/pinocchio-lambda-vm/internal/logger"
	"github.com/lambdaclass/pinocchio-lambda-vm/poly"
	"github.com/lambdaclass/pinocchio-lambda-vm/qap"
)

// Setup derives the evaluation and verification keys from the QAP and the
// toxic waste. It is deterministic given its inputs; the caller destroys
// the waste afterwards (see WithToxicWaste).
func Setup[G, T any](s group.Bilinear[G, T], q *qap.QAP, tw *ToxicWaste) (*EvaluationKey[G], *VerificationKey[G]) {
	log := logger.Logger().With().Int("nbWires", q.NumWires()).Int("degTarget", q.Target.Degree()).Str("protocol", "pinocchio").Logger()
	start := time.Now()

	ek := evaluationKey(s, q, tw)
	vk := verificationKey(s, q, tw)

	log.Debug().Dur("took", time.Since(start)).Msg("setup done")
	return ek, vk
}

func evaluationKey[G, T any](s group.Bilinear[G, T], q *qap.QAP, tw *ToxicWaste) *EvaluationKey[G] {
	f := tw.F
	g := s.Generator()
	ring := q.Ring
	ry := tw.Ry()

	vMid, wMid, yMid := q.VMid(), q.WMid(), q.YMid()
	ek := &EvaluationKey[G]{
		GvKs:      make([]G, len(vMid)),
		GwKs:      make([]G, len(vMid)),
		GyKs:      make([]G, len(vMid)),
		GvAlphaKs: make([]G, len(vMid)),
		GwAlphaKs: make([]G, len(vMid)),
		GyAlphaKs: make([]G, len(vMid)),
		GBeta:     make([]G, len(vMid)),
	}

	hide := func(e ff.Elem) G { return s.ScalarMul(g, e.Representative()) }

	for k := range vMid {
		vs := ring.Eval(vMid[k], tw.S)
		ws := ring.Eval(wMid[k], tw.S)
		ys := ring.Eval(yMid[k], tw.S)

		ek.GvKs[k] = hide(f.Mul(tw.Rv, vs))
		ek.GwKs[k] = hide(f.Mul(tw.Rw, ws))
		ek.GyKs[k] = hide(f.Mul(ry, ys))
		ek.GvAlphaKs[k] = hide(f.Mul(f.Mul(tw.Rv, tw.AlphaV), vs))
		ek.GwAlphaKs[k] = hide(f.Mul(f.Mul(tw.Rw, tw.AlphaW), ws))
		ek.GyAlphaKs[k] = hide(f.Mul(f.Mul(ry, tw.AlphaY), ys))

		beta := f.Mul(f.Mul(tw.Rv, tw.Beta), vs)
		beta = f.Add(beta, f.Mul(f.Mul(tw.Rw, tw.Beta), ws))
		beta = f.Add(beta, f.Mul(f.Mul(ry, tw.Beta), ys))
		ek.GBeta[k] = hide(beta)
	}

	// one hiding per power of s below deg t; h never needs more
	degree := q.Target.Degree()
	ek.GSi = make([]G, degree)
	for i := 0; i < degree; i++ {
		ek.GSi[i] = hide(f.Pow(tw.S, uint64(i)))
	}
	return ek
}

func verificationKey[G, T any](s group.Bilinear[G, T], q *qap.QAP, tw *ToxicWaste) *VerificationKey[G] {
	f := tw.F
	g := s.Generator()
	ring := q.Ring
	ry := tw.Ry()

	hide := func(e ff.Elem) G { return s.ScalarMul(g, e.Representative()) }

	vk := &VerificationKey[G]{
		G1:         g,
		GAlphaV:    hide(tw.AlphaV),
		GAlphaW:    hide(tw.AlphaW),
		GAlphaY:    hide(tw.AlphaY),
		GGamma:     hide(tw.Gamma),
		GBetaGamma: hide(f.Mul(tw.Beta, tw.Gamma)),
		GyTargetS:  hide(f.Mul(ry, ring.Eval(q.Target, tw.S))),
	}

	appendIO := func(v, w, y poly.Poly) {
		vk.GvKs = append(vk.GvKs, hide(f.Mul(tw.Rv, ring.Eval(v, tw.S))))
		vk.GwKs = append(vk.GwKs, hide(f.Mul(tw.Rw, ring.Eval(w, tw.S))))
		vk.GyKs = append(vk.GyKs, hide(f.Mul(ry, ring.Eval(y, tw.S))))
	}

	appendIO(q.V0(), q.W0(), q.Y0())
	vIn, wIn, yIn := q.VInput(), q.WInput(), q.YInput()
	for k := range vIn {
		appendIO(vIn[k], wIn[k], yIn[k])
	}
	vOut, wOut, yOut := q.VOutput(), q.WOutput(), q.YOutput()
	for k := range vOut {
		appendIO(vOut[k], wOut[k], yOut[k])
	}
	return vk
}
