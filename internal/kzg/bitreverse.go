package kzg

import (
	"math/bits"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// isPowerOfTwo reports whether n is a power of two (n > 0).
func isPowerOfTwo(n uint64) bool {
	return n > 0 && n&(n-1) == 0
}

// reverseBits reverses the low log2(order) bits of n. order must be a
// power of two.
func reverseBits(n, order uint64) uint64 {
	return bits.Reverse64(n) >> (65 - bits.Len64(order))
}

// bitReversalPermuteFr reorders a in place by bit-reversed index. Its own
// inverse: calling it twice restores the original order (spec.md P4).
func bitReversalPermuteFr(a []fr.Element) error {
	n := uint64(len(a))
	if !isPowerOfTwo(n) {
		return badArgs("bitReversalPermuteFr", errNotPowerOfTwo)
	}
	for i := uint64(0); i < n; i++ {
		j := reverseBits(i, n)
		if j > i {
			a[i], a[j] = a[j], a[i]
		}
	}
	return nil
}

// bitReversalPermuteG1 is the G1-point analogue of bitReversalPermuteFr.
func bitReversalPermuteG1(a []bls12381.G1Affine) error {
	n := uint64(len(a))
	if !isPowerOfTwo(n) {
		return badArgs("bitReversalPermuteG1", errNotPowerOfTwo)
	}
	for i := uint64(0); i < n; i++ {
		j := reverseBits(i, n)
		if j > i {
			a[i], a[j] = a[j], a[i]
		}
	}
	return nil
}

// bitReversedFr returns a bit-reversal-permuted copy of a, leaving a untouched.
func bitReversedFr(a []fr.Element) ([]fr.Element, error) {
	out := make([]fr.Element, len(a))
	copy(out, a)
	if err := bitReversalPermuteFr(out); err != nil {
		return nil, err
	}
	return out, nil
}

// bitReversedG1 returns a bit-reversal-permuted copy of a, leaving a untouched.
func bitReversedG1(a []bls12381.G1Affine) ([]bls12381.G1Affine, error) {
	out := make([]bls12381.G1Affine, len(a))
	copy(out, a)
	if err := bitReversalPermuteG1(out); err != nil {
		return nil, err
	}
	return out, nil
}
