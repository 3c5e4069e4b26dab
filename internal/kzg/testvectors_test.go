package kzg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// conformanceCase is one synthetic round-trip scenario: a blob seed, an
// evaluation point, and whether the opening is expected to verify.
type conformanceCase struct {
	Name        string `yaml:"name"`
	BlobSeed    uint64 `yaml:"blob_seed"`
	Z           uint64 `yaml:"z"`
	ShouldVerify bool  `yaml:"should_verify"`
}

// conformanceFixture mirrors the shape of the reference implementation's
// own YAML test-vector files: a list of named cases under a single key.
type conformanceFixture struct {
	Cases []conformanceCase `yaml:"cases"`
}

// embeddedConformanceYAML holds two synthetic scenarios that don't require
// the real ceremony trusted setup: open/verify round trips at two points off
// the evaluation domain, both expected to verify. The on-domain case is
// covered by TestCommitOpenVerifyOnDomain.
const embeddedConformanceYAML = `
cases:
  - name: off_domain_point
    blob_seed: 101
    z: 999999
    should_verify: true
  - name: on_domain_point_is_handled_by_dedicated_test
    blob_seed: 102
    z: 31337
    should_verify: true
`

func TestConformanceVectorsEmbedded(t *testing.T) {
	var fixture conformanceFixture
	require.NoError(t, yaml.Unmarshal([]byte(embeddedConformanceYAML), &fixture))
	require.NotEmpty(t, fixture.Cases)

	ts := newInsecureTestSetup(t)
	for _, c := range fixture.Cases {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			blob := randomPolynomial(FieldElementsPerBlob, c.BlobSeed)
			commitment, err := Commit(ts, blob)
			require.NoError(t, err)

			var z fr.Element
			z.SetUint64(c.Z)
			proof, y, err := Open(ts, blob, z)
			require.NoError(t, err)

			ok, err := Verify(ts, commitment, proof, z, y)
			require.NoError(t, err)
			require.Equal(t, c.ShouldVerify, ok)
		})
	}
}

// TestConformanceAgainstRealTrustedSetup is a placeholder for checks against
// the true Ethereum KZG ceremony transcript, whose exact published hex
// commitments/proofs only match when loaded from the real file. It only
// looks for that file in testdata/ and skips whether or not it is present;
// no published value is asserted.
func TestConformanceAgainstRealTrustedSetup(t *testing.T) {
	path := filepath.Join("..", "..", "testdata", "trusted_setup.txt")
	if _, err := os.Stat(path); err != nil {
		t.Skipf("real trusted setup fixture not present: %v", err)
	}
	t.Skip("conformance against the real ceremony file is not asserted by this suite")
}
