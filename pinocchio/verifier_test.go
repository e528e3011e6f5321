package pinocchio

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lambdaclass/pinocchio-lambda-vm/ff"
	"github.com/lambdaclass/pinocchio-lambda-vm/group"
	"github.com/lambdaclass/pinocchio-lambda-vm/qap"
	"github.com/lambdaclass/pinocchio-lambda-vm/r1cs"
)

// verifierFixture runs setup and proving for one paper-circuit execution
// over the exponent suite, where each check can be read off the exponents.
func verifierFixture(t *testing.T) (group.ExponentSuite, *VerificationKey[ff.Elem], *Proof[ff.Elem], []ff.Elem) {
	t.Helper()
	f := ff.MustField(5)
	s := group.NewExponentSuite(f)
	q := qap.PaperQAP(f)
	ek, vk := Setup(s, q, walkthroughToxicWaste(f))

	inputs := [4]ff.Elem{f.New(1), f.New(2), f.New(3), f.New(4)}
	assignment := r1cs.PaperAssignment(f, inputs)
	proof, err := Prove(s, ek, q, assignment)
	require.NoError(t, err)

	// inputs then outputs, constant wire excluded
	inputOutput := []ff.Elem{inputs[0], inputs[1], inputs[2], inputs[3], assignment[6]}
	return s, vk, proof, inputOutput
}

func TestDivisibilityCheckAcceptsHonestProof(t *testing.T) {
	s, vk, proof, io := verifierFixture(t)
	require.True(t, checkDivisibility(s, vk, proof, io))
}

func TestSpanChecksAcceptHonestProof(t *testing.T) {
	s, vk, proof, _ := verifierFixture(t)
	require.True(t, checkSpans(s, vk, proof))
}

func TestSameLinearCombinationAcceptsHonestProof(t *testing.T) {
	s, vk, proof, _ := verifierFixture(t)
	require.True(t, checkSameLinearCombination(s, vk, proof))
}

func TestVerifyAcceptsHonestProof(t *testing.T) {
	s, vk, proof, io := verifierFixture(t)
	require.True(t, Verify(s, vk, proof, io))
}

func TestDivisibilityRejectsWrongIo(t *testing.T) {
	s, vk, proof, io := verifierFixture(t)
	bad := append([]ff.Elem{}, io...)
	bad[len(bad)-1] = s.F.Add(bad[len(bad)-1], s.F.One())
	require.False(t, checkDivisibility(s, vk, proof, bad))
	require.False(t, Verify(s, vk, proof, bad))
}

func TestSpanChecksRejectTamperedCompanion(t *testing.T) {
	s, vk, proof, io := verifierFixture(t)
	proof.GAlphaWs = s.Identity()
	require.False(t, checkSpans(s, vk, proof))
	require.False(t, Verify(s, vk, proof, io))
}

func TestSameLinearCombinationRejectsTamperedBeta(t *testing.T) {
	s, vk, proof, io := verifierFixture(t)
	proof.GBetaVWY = s.Op(proof.GBetaVWY, s.Generator())
	require.False(t, checkSameLinearCombination(s, vk, proof))
	require.False(t, Verify(s, vk, proof, io))
}

func TestVerifyRejectsWrongIoLength(t *testing.T) {
	s, vk, proof, io := verifierFixture(t)
	require.False(t, Verify(s, vk, proof, io[:len(io)-1]))
	require.False(t, Verify(s, vk, proof, append(append([]ff.Elem{}, io...), s.F.One())))
}

// The constant-1 wire is not part of the IO slice: its hiding is the
// index-0 entry of the key vectors. Shifting the slice by one must reject.
func TestVerifyExcludesConstantWireFromIo(t *testing.T) {
	s, vk, proof, io := verifierFixture(t)
	shifted := append([]ff.Elem{s.F.One()}, io[:len(io)-1]...)
	require.False(t, Verify(s, vk, proof, shifted))
}
