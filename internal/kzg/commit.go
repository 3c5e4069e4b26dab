package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Commit computes the KZG commitment to a polynomial given in Lagrange form
// over ts.DomainBlob: commit(p) = MSM(G1Lagrange, p).
func Commit(ts *TrustedSetup, p []fr.Element) (bls12381.G1Affine, error) {
	if len(p) != FieldElementsPerBlob {
		return bls12381.G1Affine{}, badArgs("Commit", errBlobLength)
	}
	return fastMSM(ts.G1Lagrange, p)
}

// Open produces a single-point KZG opening proof for p at z, returning the
// proof and the claimed evaluation y = p(z).
func Open(ts *TrustedSetup, p []fr.Element, z fr.Element) (proof bls12381.G1Affine, y fr.Element, err error) {
	if len(p) != FieldElementsPerBlob {
		return bls12381.G1Affine{}, fr.Element{}, badArgs("Open", errBlobLength)
	}

	y, err = evaluatePolyInEvalForm(ts.DomainBlob, p, &z)
	if err != nil {
		return bls12381.G1Affine{}, fr.Element{}, err
	}

	q, err := computeQuotient(ts.DomainBlob, p, y, z)
	if err != nil {
		return bls12381.G1Affine{}, fr.Element{}, err
	}

	proof, err = fastMSM(ts.G1Lagrange, q)
	if err != nil {
		return bls12381.G1Affine{}, fr.Element{}, err
	}
	return proof, y, nil
}

// computeQuotient builds the quotient polynomial q in Lagrange form per
// spec.md §4.6: q_i = (p_i - y)/(omega_i - z) off-domain, with a distinct
// on-domain formula when z coincides with a root.
func computeQuotient(d *Domain, p []fr.Element, y, z fr.Element) ([]fr.Element, error) {
	n := len(p)
	onDomainIdx := -1
	for i, root := range d.RootsOfUnity {
		if feEqual(&root, &z) {
			onDomainIdx = i
			break
		}
	}

	denom := make([]fr.Element, n)
	for i := range p {
		denom[i].Sub(&d.RootsOfUnity[i], &z)
		if onDomainIdx == i {
			// Filled with FR_ONE to keep the batch inversion
			// non-singular; overwritten below.
			denom[i].SetOne()
		}
	}
	denomInv, err := batchInverse(denom)
	if err != nil {
		return nil, internalErr("computeQuotient", err)
	}

	q := make([]fr.Element, n)
	for i := range p {
		if onDomainIdx == i {
			continue
		}
		var numer fr.Element
		numer.Sub(&p[i], &y)
		q[i].Mul(&numer, &denomInv[i])
	}

	if onDomainIdx >= 0 {
		if err := fillOnDomainQuotientEntry(d, p, y, z, onDomainIdx, q); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// fillOnDomainQuotientEntry computes q_m for the on-domain case z = omega_m
// per spec.md §4.6 step 3: a second batch inversion over (z - omega_i)*z.
func fillOnDomainQuotientEntry(d *Domain, p []fr.Element, y, z fr.Element, m int, q []fr.Element) error {
	n := len(p)
	denom := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		if i == m {
			denom[i].SetOne()
			continue
		}
		denom[i].Sub(&z, &d.RootsOfUnity[i])
		denom[i].Mul(&denom[i], &z)
	}
	denomInv, err := batchInverse(denom)
	if err != nil {
		return internalErr("fillOnDomainQuotientEntry", err)
	}

	var sum fr.Element
	for i := 0; i < n; i++ {
		if i == m {
			continue
		}
		var numer fr.Element
		numer.Sub(&p[i], &y)
		numer.Mul(&numer, &d.RootsOfUnity[i])
		numer.Mul(&numer, &denomInv[i])
		sum.Add(&sum, &numer)
	}
	q[m] = sum
	return nil
}

// Verify checks a single-point KZG opening via the pairing equation
// e(C - [y]G1, G2) == e(proof, [s]G2 - [z]G2).
func Verify(ts *TrustedSetup, commitment, proof bls12381.G1Affine, z, y fr.Element) (bool, error) {
	g1gen := g1Generator()
	g2gen := g2Generator()

	yG1 := g1ScalarMul(&g1gen, &y)
	cMinusY := g1Sub(&commitment, &yG1)

	zG2 := g2ScalarMul(&g2gen, &z)
	sG2 := ts.G2Monomial[1]
	sMinusZ := g2Sub(&sG2, &zG2)

	return pairingsEqual(&cMinusY, &g2gen, &proof, &sMinusZ)
}
