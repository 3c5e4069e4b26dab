package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ComputeBlobProof computes the KZG proof that binds a blob to its own
// commitment at the Fiat-Shamir-derived evaluation point (spec.md §4.7),
// the proof carried alongside a blob transaction's sidecar.
func ComputeBlobProof(ts *TrustedSetup, blob []fr.Element, commitment bls12381.G1Affine) (bls12381.G1Affine, error) {
	if len(blob) != FieldElementsPerBlob {
		return bls12381.G1Affine{}, badArgs("ComputeBlobProof", errBlobLength)
	}
	z := computeBlobChallenge(blob, commitment)
	proof, _, err := Open(ts, blob, z)
	return proof, err
}

// VerifyBlobProof checks a blob's Fiat-Shamir-bound proof against its
// commitment, re-deriving the evaluation point the same way ComputeBlobProof
// did.
func VerifyBlobProof(ts *TrustedSetup, blob []fr.Element, commitment, proof bls12381.G1Affine) (bool, error) {
	if len(blob) != FieldElementsPerBlob {
		return false, badArgs("VerifyBlobProof", errBlobLength)
	}
	z := computeBlobChallenge(blob, commitment)
	y, err := evaluatePolyInEvalForm(ts.DomainBlob, blob, &z)
	if err != nil {
		return false, err
	}
	return Verify(ts, commitment, proof, z, y)
}
