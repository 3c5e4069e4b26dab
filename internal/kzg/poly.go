package kzg

import "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

// evaluatePolyInEvalForm evaluates a polynomial given in Lagrange form
// (evals over d.RootsOfUnity, bit-reversal permuted) at an arbitrary point
// z, using the barycentric formula with an on-domain short-circuit (the
// barycentric formula divides by zero when z lands exactly on a root).
func evaluatePolyInEvalForm(d *Domain, evals []fr.Element, z *fr.Element) (fr.Element, error) {
	n := uint64(len(evals))
	if n != d.Width {
		return fr.Element{}, internalErr("evaluatePolyInEvalForm", errMismatchedLengths)
	}

	for i := range evals {
		if feEqual(&d.RootsOfUnity[i], z) {
			return evals[i], nil
		}
	}

	denom := make([]fr.Element, n)
	for i := range evals {
		denom[i].Sub(z, &d.RootsOfUnity[i])
	}
	denomInv, err := batchInverse(denom)
	if err != nil {
		return fr.Element{}, internalErr("evaluatePolyInEvalForm", err)
	}

	var sum fr.Element
	for i := range evals {
		var term fr.Element
		term.Mul(&evals[i], &d.RootsOfUnity[i])
		term.Mul(&term, &denomInv[i])
		sum.Add(&sum, &term)
	}

	// (z^n - 1) / n
	zPowN := fePow(z, n)
	var numerator fr.Element
	numerator.SetOne()
	numerator.Sub(&zPowN, &numerator)

	var nInv fr.Element
	nInv.SetUint64(n)
	nInv.Inverse(&nInv)
	numerator.Mul(&numerator, &nInv)

	var out fr.Element
	out.Mul(&numerator, &sum)
	return out, nil
}
