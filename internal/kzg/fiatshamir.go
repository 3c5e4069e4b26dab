package kzg

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// hashToField reduces a SHA-256 digest to a field element by big-endian
// interpretation modulo r. No rejection sampling is performed, matching
// the reference "from-big-endian" import routine.
func hashToField(digest [32]byte) fr.Element {
	var asInt big.Int
	asInt.SetBytes(digest[:])
	asInt.Mod(&asInt, fr.Modulus())
	var out fr.Element
	out.SetBigInt(&asInt)
	return out
}

func writeUint64BE(h *sha256Writer, v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}

// sha256Writer is a tiny indirection so the hashing call sites below read
// like the wire layout they implement, without importing hash.Hash at
// every call site.
type sha256Writer struct {
	h interface{ Write(p []byte) (int, error) }
}

func newSHA256() *sha256Writer { return &sha256Writer{h: sha256.New()} }

func (w *sha256Writer) Write(p []byte) { _, _ = w.h.Write(p) }

func (w *sha256Writer) Sum() [32]byte {
	type summer interface{ Sum(b []byte) []byte }
	sum := w.h.(summer).Sum(nil)
	var out [32]byte
	copy(out[:], sum)
	return out
}

// computeBlobChallenge derives the Fiat-Shamir evaluation point z for a
// single blob/commitment pair per spec.md §4.7.
func computeBlobChallenge(blob []fr.Element, commitment bls12381.G1Affine) fr.Element {
	w := newSHA256()
	w.Write([]byte(domainFSBlobVerify))
	writeUint64BE(w, 0)
	writeUint64BE(w, FieldElementsPerBlob)
	for _, fe := range blob {
		b := fe.Bytes()
		w.Write(b[:])
	}
	cBytes := commitment.Bytes()
	w.Write(cBytes[:])
	return hashToField(w.Sum())
}

// computeBatchChallenge derives the random linear-combination base r for
// batch blob verification per spec.md §4.7/§4.8.
func computeBatchChallenge(commitments, proofs []bls12381.G1Affine, zs, ys []fr.Element) fr.Element {
	n := uint64(len(commitments))
	w := newSHA256()
	w.Write([]byte(domainRCKZGBatch))
	writeUint64BE(w, FieldElementsPerBlob)
	writeUint64BE(w, n)
	for i := uint64(0); i < n; i++ {
		cBytes := commitments[i].Bytes()
		w.Write(cBytes[:])
		zBytes := zs[i].Bytes()
		w.Write(zBytes[:])
		yBytes := ys[i].Bytes()
		w.Write(yBytes[:])
		pBytes := proofs[i].Bytes()
		w.Write(pBytes[:])
	}
	return hashToField(w.Sum())
}

// cellBatchItem is one row of the cell-batch Fiat-Shamir transcript.
type cellBatchItem struct {
	Commitment bls12381.G1Affine
	RowIndex   uint64
	ColIndex   uint64
	Cell       []fr.Element
	Proof      bls12381.G1Affine
}

// computeCellBatchChallenge derives the random linear-combination base r
// for batch cell verification per spec.md §4.10.
func computeCellBatchChallenge(commitments []bls12381.G1Affine, items []cellBatchItem) fr.Element {
	w := newSHA256()
	w.Write([]byte(domainRCKZGCellBatch))
	writeUint64BE(w, FieldElementsPerCell)
	writeUint64BE(w, uint64(len(commitments)))
	writeUint64BE(w, uint64(len(items)))
	for _, c := range commitments {
		b := c.Bytes()
		w.Write(b[:])
	}
	for _, it := range items {
		writeUint64BE(w, it.RowIndex)
		writeUint64BE(w, it.ColIndex)
		for _, fe := range it.Cell {
			b := fe.Bytes()
			w.Write(b[:])
		}
		pBytes := it.Proof.Bytes()
		w.Write(pBytes[:])
	}
	return hashToField(w.Sum())
}
