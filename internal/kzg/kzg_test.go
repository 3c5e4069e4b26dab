package kzg

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

func one() fr.Element {
	var o fr.Element
	o.SetOne()
	return o
}

func TestBitReversalIsInvolution(t *testing.T) {
	a := randomPolynomial(FieldElementsPerCell, 1)
	original := append([]fr.Element(nil), a...)

	require.NoError(t, bitReversalPermuteFr(a))
	require.NotEqual(t, original, a)
	require.NoError(t, bitReversalPermuteFr(a))
	require.Equal(t, original, a)
}

func TestFFTRoundTrip(t *testing.T) {
	d, err := newDomain(256)
	require.NoError(t, err)

	coeffs := randomPolynomial(256, 2)
	evals, err := fftFr(d, coeffs)
	require.NoError(t, err)

	back, err := ifftFr(d, evals)
	require.NoError(t, err)
	require.Equal(t, coeffs, back)
}

func TestBatchInverse(t *testing.T) {
	in := randomPolynomial(16, 3)
	out, err := batchInverse(in)
	require.NoError(t, err)

	o := one()
	for i := range in {
		var product fr.Element
		product.Mul(&in[i], &out[i])
		require.True(t, feEqual(&product, &o))
	}
}

func TestBatchInverseFailsOnZero(t *testing.T) {
	in := randomPolynomial(4, 4)
	in[2] = fr.Element{}
	_, err := batchInverse(in)
	require.Error(t, err)
}

func TestFieldElementBoundary(t *testing.T) {
	modulus := fr.Modulus()

	rMinusOne := new(big.Int).Sub(modulus, big.NewInt(1))
	_, err := DecodeFieldElement("test", bigIntTo32Bytes(rMinusOne))
	require.NoError(t, err)

	_, err = DecodeFieldElement("test", bigIntTo32Bytes(modulus))
	require.Error(t, err)

	rPlusOne := new(big.Int).Add(modulus, big.NewInt(1))
	_, err = DecodeFieldElement("test", bigIntTo32Bytes(rPlusOne))
	require.Error(t, err)
}

func bigIntTo32Bytes(v *big.Int) []byte {
	out := make([]byte, BytesPerFieldElement)
	b := v.Bytes()
	copy(out[BytesPerFieldElement-len(b):], b)
	return out
}

func TestCommitOpenVerifyRoundTrip(t *testing.T) {
	ts := newInsecureTestSetup(t)
	poly := randomPolynomial(FieldElementsPerBlob, 5)

	commitment, err := Commit(ts, poly)
	require.NoError(t, err)

	var z fr.Element
	z.SetUint64(424242)
	proof, y, err := Open(ts, poly, z)
	require.NoError(t, err)

	ok, err := Verify(ts, commitment, proof, z, y)
	require.NoError(t, err)
	require.True(t, ok)

	o := one()
	var badY fr.Element
	badY.Add(&y, &o)
	ok, err = Verify(ts, commitment, proof, z, badY)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCommitOpenVerifyOnDomain(t *testing.T) {
	ts := newInsecureTestSetup(t)
	poly := randomPolynomial(FieldElementsPerBlob, 6)

	z := ts.DomainBlob.RootsOfUnity[17]
	proof, y, err := Open(ts, poly, z)
	require.NoError(t, err)
	require.True(t, feEqual(&y, &poly[17]))

	commitment, err := Commit(ts, poly)
	require.NoError(t, err)
	ok, err := Verify(ts, commitment, proof, z, y)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyBlobBatch(t *testing.T) {
	ts := newInsecureTestSetup(t)
	const n = 4
	blobs := make([][]fr.Element, n)
	commitments := make([]bls12381.G1Affine, n)
	proofs := make([]bls12381.G1Affine, n)

	for i := 0; i < n; i++ {
		blobs[i] = randomPolynomial(FieldElementsPerBlob, uint64(10+i))
		c, err := Commit(ts, blobs[i])
		require.NoError(t, err)
		commitments[i] = c
		p, err := ComputeBlobProof(ts, blobs[i], c)
		require.NoError(t, err)
		proofs[i] = p
	}

	ok, err := VerifyBlobBatch(ts, blobs, commitments, proofs)
	require.NoError(t, err)
	require.True(t, ok)

	proofs[1], proofs[0] = proofs[0], proofs[1]
	ok, err = VerifyBlobBatch(ts, blobs, commitments, proofs)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestZeroBlobCommitment(t *testing.T) {
	ts := newInsecureTestSetup(t)
	zero := make([]fr.Element, FieldElementsPerBlob)
	c, err := Commit(ts, zero)
	require.NoError(t, err)
	require.True(t, isIdentityG1(&c))
}

func TestComputeCellsAndProofsThenVerify(t *testing.T) {
	ts := newInsecureTestSetup(t)
	blob := randomPolynomial(FieldElementsPerBlob, 7)

	commitment, err := Commit(ts, blob)
	require.NoError(t, err)

	cells, proofs, err := ComputeCellsAndProofs(ts, blob)
	require.NoError(t, err)
	require.Len(t, cells, CellsPerExtBlob)
	require.Len(t, proofs, CellsPerExtBlob)

	for _, id := range []uint64{0, 1, 64, 127} {
		ok, err := VerifyCell(ts, commitment, id, cells[id], proofs[id])
		require.NoError(t, err)
		require.True(t, ok, "cell %d should verify", id)
	}
}

func TestVerifyCellBatch(t *testing.T) {
	ts := newInsecureTestSetup(t)
	blob := randomPolynomial(FieldElementsPerBlob, 8)

	commitment, err := Commit(ts, blob)
	require.NoError(t, err)
	cells, proofs, err := ComputeCellsAndProofs(ts, blob)
	require.NoError(t, err)

	items := make([]CellBatchItem, 0, 8)
	for _, id := range []uint64{3, 9, 40, 100} {
		items = append(items, CellBatchItem{
			RowIndex: 0,
			ColIndex: id,
			Cell:     cells[id],
			Proof:    proofs[id],
		})
	}
	ok, err := VerifyCellBatch(ts, []bls12381.G1Affine{commitment}, items)
	require.NoError(t, err)
	require.True(t, ok)

	items[0].Cell[0].Add(&items[0].Cell[0], &items[0].Cell[0])
	ok, err = VerifyCellBatch(ts, []bls12381.G1Affine{commitment}, items)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRecoverAllCells(t *testing.T) {
	ts := newInsecureTestSetup(t)
	blob := randomPolynomial(FieldElementsPerBlob, 9)

	cells, _, err := ComputeCellsAndProofs(ts, blob)
	require.NoError(t, err)

	var haveIDs []uint64
	var haveCells [][]fr.Element
	for i := 0; i < CellsPerExtBlob; i += 2 {
		haveIDs = append(haveIDs, uint64(i))
		haveCells = append(haveCells, cells[i])
	}
	require.GreaterOrEqual(t, len(haveIDs), CellsPerExtBlob/2)

	recovered, _, err := RecoverAllCells(ts, haveIDs, haveCells)
	require.NoError(t, err)
	require.Len(t, recovered, CellsPerExtBlob)
	for i := range cells {
		require.Equal(t, cells[i], recovered[i], "cell %d mismatch", i)
	}
}

func TestRecoverAllCellsFailsBelowThreshold(t *testing.T) {
	ts := newInsecureTestSetup(t)
	blob := randomPolynomial(FieldElementsPerBlob, 10)
	cells, _, err := ComputeCellsAndProofs(ts, blob)
	require.NoError(t, err)

	ids := []uint64{0, 1, 2}
	have := [][]fr.Element{cells[0], cells[1], cells[2]}
	_, _, err = RecoverAllCells(ts, ids, have)
	require.Error(t, err)
}
