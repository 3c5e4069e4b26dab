package kzg

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// frNull is the sentinel value marking a missing cell slot during recovery.
// It is the all-ones 32-byte pattern and must never be produced by a valid
// field element deserialization (every valid element satisfies value < r,
// and the all-ones pattern interpreted as a big-endian integer exceeds r).
var frNull = func() fr.Element {
	var raw [BytesPerFieldElement]byte
	for i := range raw {
		raw[i] = 0xff
	}
	var e fr.Element
	// The limbs are set directly to all ones, a pattern no reduced element
	// has; isNull compares frNull limb by limb, and it is never treated as a
	// field element subject to arithmetic.
	e[0], e[1], e[2], e[3] = ^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)
	return e
}()

// isNull reports whether x is the FR_NULL sentinel.
func isNull(x *fr.Element) bool {
	return x[0] == frNull[0] && x[1] == frNull[1] && x[2] == frNull[2] && x[3] == frNull[3]
}

// feFromBytes decodes a big-endian 32-byte field element, failing BadArgs
// if the value is not strictly less than the scalar field modulus.
func feFromBytes(op string, b []byte) (fr.Element, error) {
	var out fr.Element
	if len(b) != BytesPerFieldElement {
		return out, badArgs(op, errInvalidFieldElementLength)
	}
	var asInt big.Int
	asInt.SetBytes(b)
	if asInt.Cmp(fr.Modulus()) >= 0 {
		return out, badArgs(op, errFieldElementNotReduced)
	}
	out.SetBigInt(&asInt)
	return out, nil
}

// feIsZero reports whether x is the additive identity.
func feIsZero(x *fr.Element) bool { return x.IsZero() }

// feIsOne reports whether x is the multiplicative identity.
func feIsOne(x *fr.Element) bool { return x.IsOne() }

// feEqual reports whether a and b represent the same field element.
func feEqual(a, b *fr.Element) bool { return a.Equal(b) }

// feDiv computes a/b; b must be nonzero.
func feDiv(a, b *fr.Element) (fr.Element, error) {
	if feIsZero(b) {
		return fr.Element{}, internalErr("feDiv", errDivisionByZero)
	}
	var inv, out fr.Element
	inv.Inverse(b)
	out.Mul(a, &inv)
	return out, nil
}

// fePow raises x to the (small, non-negative) exponent n by square-and-multiply.
func fePow(x *fr.Element, n uint64) fr.Element {
	var out fr.Element
	out.SetOne()
	base := *x
	for n > 0 {
		if n&1 == 1 {
			out.Mul(&out, &base)
		}
		base.Mul(&base, &base)
		n >>= 1
	}
	return out
}

// batchInverse inverts every element of in using Montgomery's trick: one
// field inversion plus 3n multiplications. Fails if any input is zero; on
// failure the output is left in a partial, unspecified state and callers
// must discard it (per spec.md §9's tightened contract).
func batchInverse(in []fr.Element) ([]fr.Element, error) {
	n := len(in)
	out := make([]fr.Element, n)
	if n == 0 {
		return out, nil
	}

	prefix := make([]fr.Element, n)
	prefix[0] = in[0]
	for i := 1; i < n; i++ {
		if feIsZero(&in[i-1]) {
			return out, internalErr("batchInverse", errZeroInBatchInverse)
		}
		prefix[i].Mul(&prefix[i-1], &in[i])
	}
	if feIsZero(&in[n-1]) {
		return out, internalErr("batchInverse", errZeroInBatchInverse)
	}

	var acc fr.Element
	acc.Inverse(&prefix[n-1])

	for i := n - 1; i > 0; i-- {
		out[i].Mul(&acc, &prefix[i-1])
		acc.Mul(&acc, &in[i])
	}
	out[0] = acc
	return out, nil
}

// computePowers returns {1, x, x^2, ..., x^(n-1)}.
func computePowers(x fr.Element, n int) []fr.Element {
	powers := make([]fr.Element, n)
	if n == 0 {
		return powers
	}
	powers[0].SetOne()
	for i := 1; i < n; i++ {
		powers[i].Mul(&powers[i-1], &x)
	}
	return powers
}
