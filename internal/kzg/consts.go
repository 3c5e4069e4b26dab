// Package kzg implements the polynomial commitment core used by EIP-4844
// blob transactions and EIP-7594 data availability sampling: committing to
// a blob, opening single-point proofs, batch verification, FK20 multi-proof
// generation over the 2x-extended domain, cell verification and Reed-Solomon
// cell recovery.
//
// BLS12-381 field and group arithmetic is provided by gnark-crypto; this
// package owns everything built on top of it.
package kzg

const (
	// FieldElementsPerBlob is the number of field elements carried by a blob.
	FieldElementsPerBlob = 4096

	// FieldElementsPerCell is the width of one cell of the extended blob.
	FieldElementsPerCell = 64

	// FieldElementsPerExtBlob is the size of the 2x-extended evaluation domain.
	FieldElementsPerExtBlob = 2 * FieldElementsPerBlob

	// CellsPerExtBlob is the number of cells covering the extended domain.
	CellsPerExtBlob = FieldElementsPerExtBlob / FieldElementsPerCell

	// BytesPerFieldElement is the wire size of one field element (big-endian).
	BytesPerFieldElement = 32

	// BytesPerG1 is the wire size of one compressed G1 point.
	BytesPerG1 = 48

	// BytesPerG2 is the wire size of one compressed G2 point.
	BytesPerG2 = 96

	// BytesPerBlob is the wire size of a blob.
	BytesPerBlob = FieldElementsPerBlob * BytesPerFieldElement

	// BytesPerCell is the wire size of one cell.
	BytesPerCell = FieldElementsPerCell * BytesPerFieldElement

	// BytesPerCommitment is the wire size of a KZG commitment.
	BytesPerCommitment = BytesPerG1

	// BytesPerProof is the wire size of a KZG proof.
	BytesPerProof = BytesPerG1

	// defaultPrecomputeWidth is the default FK20 fixed-base window size (wbits).
	defaultPrecomputeWidth = 8

	// maxTwoAdicity bounds the root-of-unity widths rootOfUnity accepts:
	// 2^i for i in [0, maxTwoAdicity].
	maxTwoAdicity = 32
)

// Fiat-Shamir domain separation tags, exact 16-byte ASCII per spec.
const (
	domainFSBlobVerify   = "FSBLOBVERIFY_V1_"
	domainRCKZGBatch     = "RCKZGBATCH___V1_"
	domainRCKZGCellBatch = "RCKZGCBATCH__V1_"
)
