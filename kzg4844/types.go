// Package kzg4844 implements the EIP-4844 / EIP-7594 KZG polynomial
// commitment scheme over BLS12-381: committing to and opening blob
// polynomials, FK20 cell multi-proofs, and Reed-Solomon cell recovery.
package kzg4844

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/ethereum/go-kzg-eip4844/internal/kzg"
)

// Blob is the wire representation of a blob: FieldElementsPerBlob
// big-endian field elements in Lagrange form.
type Blob [kzg.BytesPerBlob]byte

// Commitment is a compressed G1 KZG commitment.
type Commitment [kzg.BytesPerCommitment]byte

// Proof is a compressed G1 KZG opening proof.
type Proof [kzg.BytesPerProof]byte

// Cell is one of the CellsPerExtBlob chunks of an extended blob.
type Cell [kzg.BytesPerCell]byte

// CellID identifies a cell's position within the 2x-extended domain,
// 0 <= CellID < CellsPerExtBlob.
type CellID = uint64

const (
	FieldElementsPerBlob    = kzg.FieldElementsPerBlob
	FieldElementsPerCell    = kzg.FieldElementsPerCell
	FieldElementsPerExtBlob = kzg.FieldElementsPerExtBlob
	CellsPerExtBlob         = kzg.CellsPerExtBlob
)

// Error is returned by every operation in this package; see kzg.ErrorKind.
type Error = kzg.Error

func blobToFieldElements(b *Blob) ([]fr.Element, error) {
	out := make([]fr.Element, FieldElementsPerBlob)
	for i := 0; i < FieldElementsPerBlob; i++ {
		off := i * kzg.BytesPerFieldElement
		fe, err := kzg.DecodeFieldElement("Blob", b[off:off+kzg.BytesPerFieldElement])
		if err != nil {
			return nil, err
		}
		out[i] = fe
	}
	return out, nil
}

func fieldElementsToBlob(fes []fr.Element) Blob {
	var out Blob
	for i, fe := range fes {
		b := kzg.EncodeFieldElement(&fe)
		copy(out[i*kzg.BytesPerFieldElement:], b[:])
	}
	return out
}

func cellToFieldElements(c *Cell) ([]fr.Element, error) {
	out := make([]fr.Element, FieldElementsPerCell)
	for i := 0; i < FieldElementsPerCell; i++ {
		off := i * kzg.BytesPerFieldElement
		fe, err := kzg.DecodeFieldElement("Cell", c[off:off+kzg.BytesPerFieldElement])
		if err != nil {
			return nil, err
		}
		out[i] = fe
	}
	return out, nil
}

func fieldElementsToCell(fes []fr.Element) Cell {
	var out Cell
	for i, fe := range fes {
		b := kzg.EncodeFieldElement(&fe)
		copy(out[i*kzg.BytesPerFieldElement:], b[:])
	}
	return out
}

func commitmentToG1(op string, c *Commitment) (bls12381.G1Affine, error) {
	return kzg.DecodeG1(op, c[:])
}

func g1ToCommitment(p *bls12381.G1Affine) Commitment {
	b := kzg.EncodeG1(p)
	return Commitment(b)
}

func proofToG1(op string, p *Proof) (bls12381.G1Affine, error) {
	return kzg.DecodeG1(op, p[:])
}

func g1ToProof(p *bls12381.G1Affine) Proof {
	b := kzg.EncodeG1(p)
	return Proof(b)
}
