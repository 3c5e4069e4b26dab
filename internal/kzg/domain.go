package kzg

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// primitiveRootBase is a fixed multiplicative generator of F_r* whose order
// is divisible by every power of two up to 2^32 (the 2-adicity of the
// BLS12-381 scalar field). This is the same constant the wider KZG-4844
// ecosystem (c-kzg-4844, go-kzg-4844) bakes in as PRIMITIVE_ROOT_OF_UNITY,
// and it doubles as the coset-shift generator used by zero-poly scaling
// in recovery.go.
var primitiveRootBase = func() fr.Element {
	var e fr.Element
	e.SetUint64(7)
	return e
}()

// rootOfUnity returns a primitive width-th root of unity of F_r. width must
// be a power of two no larger than 2^maxTwoAdicity.
func rootOfUnity(width uint64) (fr.Element, error) {
	if !isPowerOfTwo(width) {
		return fr.Element{}, badArgs("rootOfUnity", errNotPowerOfTwo)
	}
	if width > (uint64(1) << maxTwoAdicity) {
		return fr.Element{}, badArgs("rootOfUnity", errLengthExceedsMaxWidth)
	}
	modulusMinusOne := new(big.Int).Sub(fr.Modulus(), big.NewInt(1))
	exp := new(big.Int).Div(modulusMinusOne, new(big.Int).SetUint64(width))
	var root fr.Element
	root.Exp(primitiveRootBase, exp)

	// expand_root: multiply repeatedly by root until FR_ONE reappears; the
	// count must equal width.
	count := uint64(1)
	cur := root
	for !feIsOne(&cur) {
		cur.Mul(&cur, &root)
		count++
		if count > width {
			return fr.Element{}, badArgs("rootOfUnity", errNotPowerOfTwo)
		}
	}
	if count != width {
		return fr.Element{}, badArgs("rootOfUnity", errNotPowerOfTwo)
	}
	return root, nil
}

// Domain holds the precomputed root-of-unity tables for a given power-of-two
// width, shared by the field and G1 FFTs.
type Domain struct {
	Width uint64

	// RootsOfUnity holds {root^i} for i in [0,width), bit-reversal permuted.
	RootsOfUnity []fr.Element

	// ExpandedRootsOfUnity holds {root^i} for i in [0,width] in natural
	// order; the last entry closes the cycle and equals the first.
	ExpandedRootsOfUnity []fr.Element

	// ReverseRootsOfUnity is the reverse of ExpandedRootsOfUnity, used
	// directly by inverse FFTs.
	ReverseRootsOfUnity []fr.Element
}

// newDomain builds the roots-of-unity tables for the given width.
func newDomain(width uint64) (*Domain, error) {
	root, err := rootOfUnity(width)
	if err != nil {
		return nil, err
	}

	expanded := make([]fr.Element, width+1)
	expanded[0].SetOne()
	for i := uint64(1); i <= width; i++ {
		expanded[i].Mul(&expanded[i-1], &root)
	}
	// expanded[width] must close the cycle.
	if !feIsOne(&expanded[width]) {
		return nil, internalErr("newDomain", errNotPowerOfTwo)
	}

	reversed := make([]fr.Element, width+1)
	for i := range expanded {
		reversed[i] = expanded[uint64(len(expanded))-1-uint64(i)]
	}

	natural := make([]fr.Element, width)
	copy(natural, expanded[:width])
	if err := bitReversalPermuteFr(natural); err != nil {
		return nil, err
	}

	return &Domain{
		Width:                width,
		RootsOfUnity:         natural,
		ExpandedRootsOfUnity: expanded,
		ReverseRootsOfUnity:  reversed,
	}, nil
}
