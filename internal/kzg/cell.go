package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// cellCoset returns the coset generator h for cell i: the
// bitrev_limited(CellsPerExtBlob, i)-th entry of DomainExt's
// ExpandedRootsOfUnity (spec.md §4.10).
func cellCoset(ts *TrustedSetup, cellID uint64) fr.Element {
	idx := reverseBits(cellID, CellsPerExtBlob)
	return ts.DomainExt.ExpandedRootsOfUnity[idx]
}

// interpolateCellToMonomial interpolates a cell's declared evaluations over
// the FieldElementsPerCell primary roots and shifts the result onto the
// cellID coset, returning monomial coefficients.
func interpolateCellToMonomial(ts *TrustedSetup, cellID uint64, y []fr.Element) ([]fr.Element, error) {
	if len(y) != FieldElementsPerCell {
		return nil, badArgs("interpolateCellToMonomial", errCellLength)
	}
	domainCell, err := newDomain(FieldElementsPerCell)
	if err != nil {
		return nil, err
	}

	permuted, err := bitReversedFr(y)
	if err != nil {
		return nil, err
	}
	mono, err := ifftFr(domainCell, permuted)
	if err != nil {
		return nil, err
	}

	h := cellCoset(ts, cellID)
	var hInv fr.Element
	hInv.Inverse(&h)
	hInvPow := computePowers(hInv, len(mono))
	for j := range mono {
		mono[j].Mul(&mono[j], &hInvPow[j])
	}
	return mono, nil
}

// VerifyCell implements spec.md §4.10 (single-cell case).
func VerifyCell(ts *TrustedSetup, commitment bls12381.G1Affine, cellID uint64, y []fr.Element, proof bls12381.G1Affine) (bool, error) {
	if cellID >= CellsPerExtBlob {
		return false, badArgs("VerifyCell", errCellIDOutOfRange)
	}
	mono, err := interpolateCellToMonomial(ts, cellID, y)
	if err != nil {
		return false, err
	}

	interpCommit, err := naiveMSM(ts.G1Monomial[:FieldElementsPerCell], mono)
	if err != nil {
		return false, err
	}

	h := cellCoset(ts, cellID)
	hPow := fePow(&h, FieldElementsPerCell)
	g2gen := g2Generator()
	hPowG2 := g2ScalarMul(&g2gen, &hPow)
	sPowG2 := ts.G2Monomial[FieldElementsPerCell]
	rhsG2 := g2Sub(&sPowG2, &hPowG2)

	lhsG1 := g1Sub(&commitment, &interpCommit)
	return pairingsEqual(&lhsG1, &g2gen, &proof, &rhsG2)
}

// CellBatchItem is one (commitment-row, column, cell, proof) tuple passed
// to VerifyCellBatch.
type CellBatchItem struct {
	RowIndex int
	ColIndex uint64
	Cell     []fr.Element
	Proof    bls12381.G1Affine
}

// VerifyCellBatch implements spec.md §4.10 (batched case): n cells across m
// commitments, combined with Fiat-Shamir random weights into one pairing
// check.
func VerifyCellBatch(ts *TrustedSetup, commitments []bls12381.G1Affine, items []CellBatchItem) (bool, error) {
	if len(items) == 0 {
		return true, nil
	}
	for _, it := range items {
		if it.RowIndex < 0 || it.RowIndex >= len(commitments) {
			return false, badArgs("VerifyCellBatch", errCellIDOutOfRange)
		}
		if it.ColIndex >= CellsPerExtBlob {
			return false, badArgs("VerifyCellBatch", errCellIDOutOfRange)
		}
		if len(it.Cell) != FieldElementsPerCell {
			return false, badArgs("VerifyCellBatch", errCellLength)
		}
	}

	transcriptItems := make([]cellBatchItem, len(items))
	for i, it := range items {
		transcriptItems[i] = cellBatchItem{
			Commitment: commitments[it.RowIndex],
			RowIndex:   uint64(it.RowIndex),
			ColIndex:   it.ColIndex,
			Cell:       it.Cell,
			Proof:      it.Proof,
		}
	}
	r := computeCellBatchChallenge(commitments, transcriptItems)
	weights := computePowers(r, len(items))

	// (i) weighted sum of proofs.
	proofs := make([]bls12381.G1Affine, len(items))
	for i, it := range items {
		proofs[i] = it.Proof
	}
	proofLinComb, err := fastMSM(proofs, weights)
	if err != nil {
		return false, err
	}

	// (ii) per-row weighted sum of commitments.
	rowWeights := make([]fr.Element, len(commitments))
	for i, it := range items {
		rowWeights[it.RowIndex].Add(&rowWeights[it.RowIndex], &weights[i])
	}
	commitLinComb, err := fastMSM(commitments, rowWeights)
	if err != nil {
		return false, err
	}

	// (iii) aggregated interpolation polynomial: per-item interpolation,
	// weighted sum in monomial form.
	aggregated := make([]fr.Element, FieldElementsPerCell)
	proofHPowWeights := make([]fr.Element, len(items))
	for i, it := range items {
		mono, err := interpolateCellToMonomial(ts, it.ColIndex, it.Cell)
		if err != nil {
			return false, err
		}
		for j := range aggregated {
			var term fr.Element
			term.Mul(&weights[i], &mono[j])
			aggregated[j].Add(&aggregated[j], &term)
		}
		h := cellCoset(ts, it.ColIndex)
		hPow := fePow(&h, FieldElementsPerCell)
		proofHPowWeights[i].Mul(&weights[i], &hPow)
	}
	interpCommit, err := naiveMSM(ts.G1Monomial[:FieldElementsPerCell], aggregated)
	if err != nil {
		return false, err
	}

	// (iv) proof sum weighted by r^i * h_column^64, added on the G1 side:
	// e(sum r^i (C_row - I_i) + sum r^i h_i^64 pi_i, G2) == e(sum r^i pi_i, [s^64]).
	proofHPowLinComb, err := fastMSM(proofs, proofHPowWeights)
	if err != nil {
		return false, err
	}
	lhsG1 := g1Sub(&commitLinComb, &interpCommit)
	lhsG1 = g1Add(&lhsG1, &proofHPowLinComb)
	g2gen := g2Generator()
	sPowG2 := ts.G2Monomial[FieldElementsPerCell]
	return pairingsEqual(&lhsG1, &g2gen, &proofLinComb, &sPowG2)
}
