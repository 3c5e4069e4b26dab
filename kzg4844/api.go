package kzg4844

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/ethereum/go-kzg-eip4844/internal/kzg"
)

// BlobToKZGCommitment computes the KZG commitment to blob.
func BlobToKZGCommitment(ctx *Context, blob Blob) (Commitment, error) {
	fes, err := blobToFieldElements(&blob)
	if err != nil {
		return Commitment{}, err
	}
	c, err := kzg.Commit(ctx.ts, fes)
	if err != nil {
		return Commitment{}, err
	}
	return g1ToCommitment(&c), nil
}

// ComputeKZGProof produces a single-point opening proof for blob at z,
// returning the proof and the claimed evaluation y = p(z).
func ComputeKZGProof(ctx *Context, blob Blob, z [32]byte) (Proof, [32]byte, error) {
	fes, err := blobToFieldElements(&blob)
	if err != nil {
		return Proof{}, [32]byte{}, err
	}
	zFe, err := kzg.DecodeFieldElement("ComputeKZGProof", z[:])
	if err != nil {
		return Proof{}, [32]byte{}, err
	}
	proof, y, err := kzg.Open(ctx.ts, fes, zFe)
	if err != nil {
		return Proof{}, [32]byte{}, err
	}
	return g1ToProof(&proof), kzg.EncodeFieldElement(&y), nil
}

// VerifyKZGProof checks a single-point KZG opening proof.
func VerifyKZGProof(ctx *Context, commitment Commitment, z, y [32]byte, proof Proof) (bool, error) {
	c, err := commitmentToG1("VerifyKZGProof", &commitment)
	if err != nil {
		return false, err
	}
	p, err := proofToG1("VerifyKZGProof", &proof)
	if err != nil {
		return false, err
	}
	zFe, err := kzg.DecodeFieldElement("VerifyKZGProof", z[:])
	if err != nil {
		return false, err
	}
	yFe, err := kzg.DecodeFieldElement("VerifyKZGProof", y[:])
	if err != nil {
		return false, err
	}
	return kzg.Verify(ctx.ts, c, p, zFe, yFe)
}

// ComputeBlobKZGProof computes the proof binding blob to commitment at its
// own Fiat-Shamir-derived evaluation point, the form carried in a blob
// transaction's sidecar.
func ComputeBlobKZGProof(ctx *Context, blob Blob, commitment Commitment) (Proof, error) {
	fes, err := blobToFieldElements(&blob)
	if err != nil {
		return Proof{}, err
	}
	c, err := commitmentToG1("ComputeBlobKZGProof", &commitment)
	if err != nil {
		return Proof{}, err
	}
	proof, err := kzg.ComputeBlobProof(ctx.ts, fes, c)
	if err != nil {
		return Proof{}, err
	}
	return g1ToProof(&proof), nil
}

// VerifyBlobKZGProof checks a single blob/commitment/proof triple.
func VerifyBlobKZGProof(ctx *Context, blob Blob, commitment Commitment, proof Proof) (bool, error) {
	fes, err := blobToFieldElements(&blob)
	if err != nil {
		return false, err
	}
	c, err := commitmentToG1("VerifyBlobKZGProof", &commitment)
	if err != nil {
		return false, err
	}
	p, err := proofToG1("VerifyBlobKZGProof", &proof)
	if err != nil {
		return false, err
	}
	return kzg.VerifyBlobProof(ctx.ts, fes, c, p)
}

// VerifyBlobKZGProofBatch checks n (blob, commitment, proof) triples with a
// single random linear combination and pairing check.
func VerifyBlobKZGProofBatch(ctx *Context, blobs []Blob, commitments []Commitment, proofs []Proof) (bool, error) {
	if len(blobs) != len(commitments) || len(blobs) != len(proofs) {
		return false, &kzg.Error{Kind: kzg.BadArgs, Op: "VerifyBlobKZGProofBatch"}
	}
	n := len(blobs)
	blobFes := make([][]fr.Element, n)
	cs := make([]bls12381.G1Affine, n)
	ps := make([]bls12381.G1Affine, n)
	for i := 0; i < n; i++ {
		fes, err := blobToFieldElements(&blobs[i])
		if err != nil {
			return false, err
		}
		blobFes[i] = fes
		c, err := commitmentToG1("VerifyBlobKZGProofBatch", &commitments[i])
		if err != nil {
			return false, err
		}
		cs[i] = c
		p, err := proofToG1("VerifyBlobKZGProofBatch", &proofs[i])
		if err != nil {
			return false, err
		}
		ps[i] = p
	}
	return kzg.VerifyBlobBatch(ctx.ts, blobFes, cs, ps)
}

// ComputeCellsAndKZGProofs computes all CellsPerExtBlob cells of the
// 2x-extended blob and their FK20 opening proofs.
func ComputeCellsAndKZGProofs(ctx *Context, blob Blob) ([]Cell, []Proof, error) {
	fes, err := blobToFieldElements(&blob)
	if err != nil {
		return nil, nil, err
	}
	cellFes, proofsG1, err := kzg.ComputeCellsAndProofs(ctx.ts, fes)
	if err != nil {
		return nil, nil, err
	}
	cells := make([]Cell, len(cellFes))
	for i, c := range cellFes {
		cells[i] = fieldElementsToCell(c)
	}
	proofs := make([]Proof, len(proofsG1))
	for i := range proofsG1 {
		proofs[i] = g1ToProof(&proofsG1[i])
	}
	return cells, proofs, nil
}

// VerifyCellKZGProof checks a single cell's opening proof against
// commitment.
func VerifyCellKZGProof(ctx *Context, commitment Commitment, cellID CellID, cell Cell, proof Proof) (bool, error) {
	c, err := commitmentToG1("VerifyCellKZGProof", &commitment)
	if err != nil {
		return false, err
	}
	p, err := proofToG1("VerifyCellKZGProof", &proof)
	if err != nil {
		return false, err
	}
	y, err := cellToFieldElements(&cell)
	if err != nil {
		return false, err
	}
	return kzg.VerifyCell(ctx.ts, c, cellID, y, p)
}

// CellBatchItem is one (commitment-row, column, cell, proof) tuple for
// VerifyCellKZGProofBatch.
type CellBatchItem struct {
	RowIndex int
	ColIndex CellID
	Cell     Cell
	Proof    Proof
}

// VerifyCellKZGProofBatch checks n cells across m commitments with a single
// random linear combination and pairing check.
func VerifyCellKZGProofBatch(ctx *Context, commitments []Commitment, items []CellBatchItem) (bool, error) {
	cs := make([]bls12381.G1Affine, len(commitments))
	for i := range commitments {
		c, err := commitmentToG1("VerifyCellKZGProofBatch", &commitments[i])
		if err != nil {
			return false, err
		}
		cs[i] = c
	}
	engineItems := make([]kzg.CellBatchItem, len(items))
	for i, it := range items {
		y, err := cellToFieldElements(&it.Cell)
		if err != nil {
			return false, err
		}
		p, err := proofToG1("VerifyCellKZGProofBatch", &it.Proof)
		if err != nil {
			return false, err
		}
		engineItems[i] = kzg.CellBatchItem{
			RowIndex: it.RowIndex,
			ColIndex: it.ColIndex,
			Cell:     y,
			Proof:    p,
		}
	}
	return kzg.VerifyCellBatch(ctx.ts, cs, engineItems)
}

// RecoverAllCells reconstructs every cell and its KZG proof from at least
// half of the CellsPerExtBlob cells of an extended blob.
func RecoverAllCells(ctx *Context, cellIDs []CellID, cells []Cell) ([]Cell, []Proof, error) {
	if len(cellIDs) != len(cells) {
		return nil, nil, &kzg.Error{Kind: kzg.BadArgs, Op: "RecoverAllCells"}
	}
	fes := make([][]fr.Element, len(cells))
	for i := range cells {
		fe, err := cellToFieldElements(&cells[i])
		if err != nil {
			return nil, nil, err
		}
		fes[i] = fe
	}
	recoveredFes, proofsG1, err := kzg.RecoverAllCells(ctx.ts, cellIDs, fes)
	if err != nil {
		return nil, nil, err
	}
	recovered := make([]Cell, len(recoveredFes))
	for i, c := range recoveredFes {
		recovered[i] = fieldElementsToCell(c)
	}
	proofs := make([]Proof, len(proofsG1))
	for i := range proofsG1 {
		proofs[i] = g1ToProof(&proofsG1[i])
	}
	return recovered, proofs, nil
}
