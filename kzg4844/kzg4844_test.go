package kzg4844

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ethereum/go-kzg-eip4844/internal/kzg"
)

func isIdentityCommitment(t testing.TB, c Commitment) bool {
	t.Helper()
	p, err := commitmentToG1("test", &c)
	require.NoError(t, err)
	return p.X.IsZero() && p.Y.IsZero()
}

// newInsecureTestContext builds a Context from a fixed, non-random secret
// scalar via internal/kzg's own deterministic test-setup constructor. Never
// use this outside tests.
func newInsecureTestContext(t testing.TB) *Context {
	t.Helper()
	ts, err := kzg.NewInsecureTestSetup(98765)
	require.NoError(t, err)
	return &Context{ts: ts, logger: zerolog.Nop()}
}

func testBlob(seed byte) Blob {
	var b Blob
	// Keep every 32-byte field element strictly below the scalar field
	// modulus by zeroing its top byte and varying a low byte per seed.
	for i := 0; i < FieldElementsPerBlob; i++ {
		off := i*32 + 31
		b[off] = byte(i) ^ seed
	}
	return b
}

func TestBlobToKZGCommitmentZeroBlob(t *testing.T) {
	ctx := newInsecureTestContext(t)
	var blob Blob
	c, err := BlobToKZGCommitment(ctx, blob)
	require.NoError(t, err)
	require.True(t, isIdentityCommitment(t, c))
}

func TestComputeAndVerifyKZGProof(t *testing.T) {
	ctx := newInsecureTestContext(t)
	blob := testBlob(1)

	commitment, err := BlobToKZGCommitment(ctx, blob)
	require.NoError(t, err)

	var z [32]byte
	z[31] = 7
	proof, y, err := ComputeKZGProof(ctx, blob, z)
	require.NoError(t, err)

	ok, err := VerifyKZGProof(ctx, commitment, z, y, proof)
	require.NoError(t, err)
	require.True(t, ok)

	y[31] ^= 1
	ok, err = VerifyKZGProof(ctx, commitment, z, y, proof)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestComputeAndVerifyBlobKZGProof(t *testing.T) {
	ctx := newInsecureTestContext(t)
	blob := testBlob(2)

	commitment, err := BlobToKZGCommitment(ctx, blob)
	require.NoError(t, err)

	proof, err := ComputeBlobKZGProof(ctx, blob, commitment)
	require.NoError(t, err)

	ok, err := VerifyBlobKZGProof(ctx, blob, commitment, proof)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyBlobKZGProofBatch(t *testing.T) {
	ctx := newInsecureTestContext(t)
	const n = 3
	blobs := make([]Blob, n)
	commitments := make([]Commitment, n)
	proofs := make([]Proof, n)

	for i := 0; i < n; i++ {
		blobs[i] = testBlob(byte(10 + i))
		c, err := BlobToKZGCommitment(ctx, blobs[i])
		require.NoError(t, err)
		commitments[i] = c
		p, err := ComputeBlobKZGProof(ctx, blobs[i], c)
		require.NoError(t, err)
		proofs[i] = p
	}

	ok, err := VerifyBlobKZGProofBatch(ctx, blobs, commitments, proofs)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCellsRoundTripAndRecovery(t *testing.T) {
	ctx := newInsecureTestContext(t)
	blob := testBlob(3)

	commitment, err := BlobToKZGCommitment(ctx, blob)
	require.NoError(t, err)

	cells, proofs, err := ComputeCellsAndKZGProofs(ctx, blob)
	require.NoError(t, err)
	require.Len(t, cells, CellsPerExtBlob)
	require.Len(t, proofs, CellsPerExtBlob)

	ok, err := VerifyCellKZGProof(ctx, commitment, 5, cells[5], proofs[5])
	require.NoError(t, err)
	require.True(t, ok)

	var haveIDs []CellID
	var haveCells []Cell
	for i := 0; i < CellsPerExtBlob; i += 2 {
		haveIDs = append(haveIDs, CellID(i))
		haveCells = append(haveCells, cells[i])
	}
	recovered, _, err := RecoverAllCells(ctx, haveIDs, haveCells)
	require.NoError(t, err)
	require.Equal(t, cells, recovered)
}
