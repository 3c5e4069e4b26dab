package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// RecoverAllCells implements spec.md §4.11: given at least half of the
// CellsPerExtBlob cells of an extended blob, reconstruct every cell and its
// KZG proof via Reed-Solomon erasure decoding over the extended domain.
func RecoverAllCells(ts *TrustedSetup, cellIDs []uint64, cells [][]fr.Element) ([][]fr.Element, []bls12381.G1Affine, error) {
	if len(cellIDs) != len(cells) {
		return nil, nil, badArgs("RecoverAllCells", errMismatchedLengths)
	}
	present := make(map[uint64]bool, len(cellIDs))
	stored := make([]fr.Element, FieldElementsPerExtBlob)
	for i := range stored {
		stored[i] = frNull
	}
	for i, id := range cellIDs {
		if id >= CellsPerExtBlob {
			return nil, nil, badArgs("RecoverAllCells", errCellIDOutOfRange)
		}
		if present[id] {
			return nil, nil, badArgs("RecoverAllCells", errDuplicateCellID)
		}
		if len(cells[i]) != FieldElementsPerCell {
			return nil, nil, badArgs("RecoverAllCells", errCellLength)
		}
		present[id] = true
		copy(stored[id*FieldElementsPerCell:(id+1)*FieldElementsPerCell], cells[i])
	}
	if uint64(len(cellIDs)) < CellsPerExtBlob/2 {
		return nil, nil, badArgs("RecoverAllCells", errTooFewCellsForRecovery)
	}

	// Un-permute into the natural FFT order ExtendedEvaluation started from;
	// bit reversal is its own inverse.
	if err := bitReversalPermuteFr(stored); err != nil {
		return nil, nil, err
	}

	missing := make([]uint64, 0, FieldElementsPerExtBlob/2)
	knownEvals := make([]fr.Element, FieldElementsPerExtBlob)
	for i := range stored {
		if isNull(&stored[i]) {
			missing = append(missing, uint64(i))
			continue
		}
		knownEvals[i] = stored[i]
	}
	if len(missing) == 0 {
		blob, err := blobFromExtendedEvals(ts, stored)
		if err != nil {
			return nil, nil, err
		}
		return ComputeCellsAndProofs(ts, blob)
	}
	if uint64(len(missing)) > FieldElementsPerExtBlob/2 {
		return nil, nil, badArgs("RecoverAllCells", errTooFewCellsForRecovery)
	}

	zCoeffs, err := zeroPolynomial(ts.DomainExt, FieldElementsPerExtBlob, missing)
	if err != nil {
		return nil, nil, err
	}
	zEvals, err := fftFr(ts.DomainExt, zCoeffs)
	if err != nil {
		return nil, nil, err
	}

	ezEvals := make([]fr.Element, FieldElementsPerExtBlob)
	for i := range ezEvals {
		ezEvals[i].Mul(&knownEvals[i], &zEvals[i])
	}
	ezCoeffs, err := ifftFr(ts.DomainExt, ezEvals)
	if err != nil {
		return nil, nil, err
	}

	scaled := scaleCoeffs(ezCoeffs, primitiveRootBase)
	scaledZ := scaleCoeffs(zCoeffs, primitiveRootBase)

	scaledEvalsP, err := fftFr(ts.DomainExt, scaled)
	if err != nil {
		return nil, nil, err
	}
	scaledEvalsZ, err := fftFr(ts.DomainExt, scaledZ)
	if err != nil {
		return nil, nil, err
	}

	recoveredScaledEvals := make([]fr.Element, FieldElementsPerExtBlob)
	for i := range recoveredScaledEvals {
		v, err := feDiv(&scaledEvalsP[i], &scaledEvalsZ[i])
		if err != nil {
			return nil, nil, internalErr("RecoverAllCells", err)
		}
		recoveredScaledEvals[i] = v
	}
	recoveredScaledCoeffs, err := ifftFr(ts.DomainExt, recoveredScaledEvals)
	if err != nil {
		return nil, nil, err
	}

	var hInv fr.Element
	hInv.Inverse(&primitiveRootBase)
	recoveredCoeffs := scaleCoeffs(recoveredScaledCoeffs, hInv)

	fullEvals, err := fftFr(ts.DomainExt, recoveredCoeffs)
	if err != nil {
		return nil, nil, err
	}

	blob, err := blobFromExtendedEvals(ts, fullEvals)
	if err != nil {
		return nil, nil, err
	}
	return ComputeCellsAndProofs(ts, blob)
}

// scaleCoeffs multiplies coefficient j by base^j, the coset-shift trick used
// to divide by a polynomial at its own roots.
func scaleCoeffs(coeffs []fr.Element, base fr.Element) []fr.Element {
	powers := computePowers(base, len(coeffs))
	out := make([]fr.Element, len(coeffs))
	for i := range coeffs {
		out[i].Mul(&coeffs[i], &powers[i])
	}
	return out
}

// blobFromExtendedEvals recovers the blob's Lagrange-form (bit-reversal
// aligned) evaluations from a fully-populated, natural-order extended
// evaluation vector: the underlying polynomial has degree < FieldElementsPerBlob,
// so only the low half of its monomial coefficients are nonzero.
func blobFromExtendedEvals(ts *TrustedSetup, natural []fr.Element) ([]fr.Element, error) {
	coeffs, err := ifftFr(ts.DomainExt, natural)
	if err != nil {
		return nil, err
	}
	blobCoeffs := coeffs[:FieldElementsPerBlob]
	blobEvals, err := fftFr(ts.DomainBlob, blobCoeffs)
	if err != nil {
		return nil, err
	}
	if err := bitReversalPermuteFr(blobEvals); err != nil {
		return nil, err
	}
	return blobEvals, nil
}
