package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// blobToMonomial converts a blob (Lagrange-form evaluations, bit-reversal
// aligned with ts.DomainBlob.RootsOfUnity) into its monomial-form
// coefficients.
func blobToMonomial(ts *TrustedSetup, blob []fr.Element) ([]fr.Element, error) {
	if len(blob) != FieldElementsPerBlob {
		return nil, badArgs("blobToMonomial", errBlobLength)
	}
	natural, err := bitReversedFr(blob)
	if err != nil {
		return nil, err
	}
	return ifftFr(ts.DomainBlob, natural)
}

// ExtendedEvaluation computes the 2x-extended (bit-reversal-permuted,
// cell-id-aligned) evaluation of blob's polynomial over ts.DomainExt.
func ExtendedEvaluation(ts *TrustedSetup, blob []fr.Element) ([]fr.Element, error) {
	coeffs, err := blobToMonomial(ts, blob)
	if err != nil {
		return nil, err
	}
	padded := make([]fr.Element, FieldElementsPerExtBlob)
	copy(padded, coeffs)

	evals, err := fftFr(ts.DomainExt, padded)
	if err != nil {
		return nil, err
	}
	if err := bitReversalPermuteFr(evals); err != nil {
		return nil, err
	}
	return evals, nil
}

// ComputeCellsAndProofs implements spec.md §4.9: produce all
// CellsPerExtBlob cells and their KZG opening proofs over the 2x-extended
// domain via the FK20 Toeplitz-FFT convolution.
func ComputeCellsAndProofs(ts *TrustedSetup, blob []fr.Element) ([][]fr.Element, []bls12381.G1Affine, error) {
	evals, err := ExtendedEvaluation(ts, blob)
	if err != nil {
		return nil, nil, err
	}
	cells := make([][]fr.Element, CellsPerExtBlob)
	for i := 0; i < CellsPerExtBlob; i++ {
		cells[i] = append([]fr.Element(nil), evals[i*FieldElementsPerCell:(i+1)*FieldElementsPerCell]...)
	}

	coeffs, err := blobToMonomial(ts, blob)
	if err != nil {
		return nil, nil, err
	}
	proofs, err := fk20ComputeProofs(ts, coeffs)
	if err != nil {
		return nil, nil, err
	}
	return cells, proofs, nil
}

// toeplitzFirstIndex and toeplitzTailIndex give the source-polynomial
// index for the head and tail entries of the offset-o Toeplitz-reflected
// vector described in spec.md §4.9: "first entry is p.coeffs[n-1-o] and
// whose tail re-inserts every FIELD_ELEMENTS_PER_CELL-th coefficient".
// Index 0 holds the head; indices [1, rowsPerOffset] are the zero gap;
// indices [rowsPerOffset+1, 2*rowsPerOffset) hold the strided tail, one
// entry per i in [0, rowsPerOffset-1).
func toeplitzFirstIndex(n, o int) int { return n - 1 - o }
func toeplitzTailIndex(l, o, i int) int { return (i+1)*l - o - 1 }

// fk20ComputeProofs runs the Toeplitz-matrix x vector FK20 convolution
// (spec.md §4.9, prove-time half) given the blob's monomial coefficients
// (length FieldElementsPerBlob).
func fk20ComputeProofs(ts *TrustedSetup, coeffs []fr.Element) ([]bls12381.G1Affine, error) {
	const (
		n = FieldElementsPerBlob
		l = FieldElementsPerCell
	)
	rowsPerOffset := n / l
	fftLen := 2 * rowsPerOffset // == CellsPerExtBlob

	// Per-offset Toeplitz-reflected coefficient vectors, FFT'd.
	toeplitzFFT := make([][]fr.Element, l)
	for o := 0; o < l; o++ {
		vec := make([]fr.Element, fftLen)
		vec[0] = coeffs[toeplitzFirstIndex(n, o)]
		for i := 0; i < rowsPerOffset-1; i++ {
			vec[rowsPerOffset+1+i] = coeffs[toeplitzTailIndex(l, o, i)]
		}
		transformed, err := fftFr(ts.domainFK20, vec)
		if err != nil {
			return nil, err
		}
		toeplitzFFT[o] = transformed
	}

	// Transpose to column-major and run the windowed MSM per column.
	hExtFFT := make([]bls12381.G1Affine, fftLen)
	for c := 0; c < fftLen; c++ {
		col := make([]fr.Element, l)
		for o := 0; o < l; o++ {
			col[o] = toeplitzFFT[o][c]
		}
		out, err := fastMSM(ts.FK20Columns[c], col)
		if err != nil {
			return nil, err
		}
		hExtFFT[c] = out
	}

	h, err := ifftG1(ts.domainFK20, hExtFFT)
	if err != nil {
		return nil, err
	}
	for i := rowsPerOffset; i < fftLen; i++ {
		h[i] = identityG1()
	}
	h, err = fftG1(ts.domainFK20, h)
	if err != nil {
		return nil, err
	}

	if err := bitReversalPermuteG1(h); err != nil {
		return nil, err
	}
	return h, nil
}
