package kzg

import (
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// naiveMSM accumulates sum(coeffs[i] * points[i]) starting from the
// identity, one scalar multiplication at a time. Used in verification
// paths where auditability matters more than speed, and as the fallback
// for small inputs.
func naiveMSM(points []bls12381.G1Affine, coeffs []fr.Element) (bls12381.G1Affine, error) {
	if len(points) != len(coeffs) {
		return bls12381.G1Affine{}, internalErr("naiveMSM", errMismatchedLengths)
	}
	var accJac bls12381.G1Jac
	for i := range points {
		term := g1ScalarMul(&points[i], &coeffs[i])
		var termJac bls12381.G1Jac
		termJac.FromAffine(&term)
		accJac.AddAssign(&termJac)
	}
	var out bls12381.G1Affine
	out.FromJacobian(&accJac)
	return out, nil
}

// fastMSM computes the same linear combination as naiveMSM but takes the
// windowed Pippenger fast path for n >= 8: identity points are filtered out
// (the underlying Pippenger routine is undefined on them) by copying the
// other points and their scalars into fresh slices, and if filtering drops
// the count below 8 it
// falls back to naiveMSM on the ORIGINAL, unfiltered input — filtering
// invalidates index correspondence, so the fallback must not reuse it.
func fastMSM(points []bls12381.G1Affine, coeffs []fr.Element) (bls12381.G1Affine, error) {
	if len(points) != len(coeffs) {
		return bls12381.G1Affine{}, internalErr("fastMSM", errMismatchedLengths)
	}
	n := len(points)
	if n < 8 {
		return naiveMSM(points, coeffs)
	}

	filteredPoints := make([]bls12381.G1Affine, 0, n)
	filteredCoeffs := make([]fr.Element, 0, n)
	for i := range points {
		if isIdentityG1(&points[i]) {
			continue
		}
		filteredPoints = append(filteredPoints, points[i])
		filteredCoeffs = append(filteredCoeffs, coeffs[i])
	}

	if len(filteredPoints) < 8 {
		return naiveMSM(points, coeffs)
	}

	var out bls12381.G1Affine
	if _, err := out.MultiExp(filteredPoints, filteredCoeffs, ecc.MultiExpConfig{}); err != nil {
		return bls12381.G1Affine{}, mallocErr("fastMSM", err)
	}
	return out, nil
}
