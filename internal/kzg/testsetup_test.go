package kzg

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// newInsecureTestSetup is the package-test-local wrapper around
// NewInsecureTestSetup, failing the test on error.
func newInsecureTestSetup(t testing.TB) *TrustedSetup {
	t.Helper()
	ts, err := NewInsecureTestSetup(12345)
	if err != nil {
		t.Fatalf("NewInsecureTestSetup: %v", err)
	}
	return ts
}

// randomPolynomial returns a deterministic (not cryptographically random)
// sequence of field elements for use as test blob/polynomial data, seeded
// by base.
func randomPolynomial(n int, base uint64) []fr.Element {
	out := make([]fr.Element, n)
	seed := new(big.Int).SetUint64(base + 1)
	mod := fr.Modulus()
	for i := range out {
		seed.Mul(seed, big.NewInt(6364136223846793005))
		seed.Add(seed, big.NewInt(1))
		seed.Mod(seed, mod)
		out[i].SetBigInt(seed)
	}
	return out
}
