package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/rs/zerolog"
)

// NewInsecureTestSetup builds a TrustedSetup from a fixed, non-random
// secret scalar. It exists purely so tests (in this package and in
// kzg4844) can exercise the full commit/open/verify/FK20/recovery surface
// without a real ceremony transcript; never use it outside tests, since the
// "toxic waste" scalar is a hardcoded, publicly known constant.
func NewInsecureTestSetup(secret uint64) (*TrustedSetup, error) {
	var s fr.Element
	s.SetUint64(secret)

	domainBlob, err := newDomain(FieldElementsPerBlob)
	if err != nil {
		return nil, err
	}

	g1gen := g1Generator()
	g2gen := g2Generator()

	sPowersBlob := computePowers(s, FieldElementsPerBlob)
	g1Monomial := make([]bls12381.G1Affine, FieldElementsPerBlob)
	for i, p := range sPowersBlob {
		g1Monomial[i] = g1ScalarMul(&g1gen, &p)
	}

	sPowersG2 := computePowers(s, FieldElementsPerCell+1)
	g2Monomial := make([]bls12381.G2Affine, FieldElementsPerCell+1)
	for i, p := range sPowersG2 {
		g2Monomial[i] = g2ScalarMul(&g2gen, &p)
	}

	g1Lagrange, err := ifftG1(domainBlob, g1Monomial)
	if err != nil {
		return nil, err
	}
	if err := bitReversalPermuteG1(g1Lagrange); err != nil {
		return nil, err
	}

	return NewTrustedSetup(g1Monomial, g1Lagrange, g2Monomial, defaultPrecomputeWidth, zerolog.Nop())
}
