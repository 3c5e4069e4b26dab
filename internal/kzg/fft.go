package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// fftFr evaluates vals (polynomial coefficients, length n) at the n-th roots
// of unity using a recursive radix-2 Cooley-Tukey FFT. n must be a power of
// two no larger than d.Width.
func fftFr(d *Domain, vals []fr.Element) ([]fr.Element, error) {
	n := uint64(len(vals))
	if !isPowerOfTwo(n) {
		return nil, badArgs("fftFr", errNotPowerOfTwo)
	}
	if n > d.Width {
		return nil, badArgs("fftFr", errLengthExceedsMaxWidth)
	}
	stride := d.Width / n
	roots := make([]fr.Element, n)
	for i := uint64(0); i < n; i++ {
		roots[i] = d.ExpandedRootsOfUnity[i*stride]
	}
	return frFFTRecurse(vals, roots), nil
}

// ifftFr is the inverse of fftFr: it recovers coefficients from n evaluations
// at the n-th roots of unity.
func ifftFr(d *Domain, vals []fr.Element) ([]fr.Element, error) {
	n := uint64(len(vals))
	if !isPowerOfTwo(n) {
		return nil, badArgs("ifftFr", errNotPowerOfTwo)
	}
	if n > d.Width {
		return nil, badArgs("ifftFr", errLengthExceedsMaxWidth)
	}
	stride := d.Width / n
	roots := make([]fr.Element, n)
	for i := uint64(0); i < n; i++ {
		roots[i] = d.ReverseRootsOfUnity[i*stride]
	}
	out := frFFTRecurse(vals, roots)

	var nInv fr.Element
	nInv.SetUint64(n)
	nInv.Inverse(&nInv)
	for i := range out {
		out[i].Mul(&out[i], &nInv)
	}
	return out, nil
}

// frFFTRecurse implements the radix-2 decimation-in-time butterfly. roots
// must contain len(vals) distinct len(vals)-th roots of unity in natural
// (power-ascending) order.
func frFFTRecurse(vals, roots []fr.Element) []fr.Element {
	n := len(vals)
	if n == 1 {
		out := make([]fr.Element, 1)
		out[0] = vals[0]
		return out
	}
	half := n / 2
	evens := make([]fr.Element, half)
	odds := make([]fr.Element, half)
	halfRoots := make([]fr.Element, half)
	for i := 0; i < half; i++ {
		evens[i] = vals[2*i]
		odds[i] = vals[2*i+1]
		halfRoots[i] = roots[2*i]
	}
	ftEvens := frFFTRecurse(evens, halfRoots)
	ftOdds := frFFTRecurse(odds, halfRoots)

	out := make([]fr.Element, n)
	for i := 0; i < half; i++ {
		var t fr.Element
		t.Mul(&roots[i], &ftOdds[i])
		out[i].Add(&ftEvens[i], &t)
		out[i+half].Sub(&ftEvens[i], &t)
	}
	return out
}

// fftG1 is the G1-point analogue of fftFr, used to FFT the monomial-form
// trusted setup into Lagrange form and by the FK20 engine.
func fftG1(d *Domain, vals []bls12381.G1Affine) ([]bls12381.G1Affine, error) {
	n := uint64(len(vals))
	if !isPowerOfTwo(n) {
		return nil, badArgs("fftG1", errNotPowerOfTwo)
	}
	if n > d.Width {
		return nil, badArgs("fftG1", errLengthExceedsMaxWidth)
	}
	stride := d.Width / n
	roots := make([]fr.Element, n)
	for i := uint64(0); i < n; i++ {
		roots[i] = d.ExpandedRootsOfUnity[i*stride]
	}
	return g1FFTRecurse(vals, roots), nil
}

// ifftG1 is the G1-point analogue of ifftFr.
func ifftG1(d *Domain, vals []bls12381.G1Affine) ([]bls12381.G1Affine, error) {
	n := uint64(len(vals))
	if !isPowerOfTwo(n) {
		return nil, badArgs("ifftG1", errNotPowerOfTwo)
	}
	if n > d.Width {
		return nil, badArgs("ifftG1", errLengthExceedsMaxWidth)
	}
	stride := d.Width / n
	roots := make([]fr.Element, n)
	for i := uint64(0); i < n; i++ {
		roots[i] = d.ReverseRootsOfUnity[i*stride]
	}
	out := g1FFTRecurse(vals, roots)

	var nInv fr.Element
	nInv.SetUint64(n)
	nInv.Inverse(&nInv)
	for i := range out {
		out[i] = g1ScalarMul(&out[i], &nInv)
	}
	return out, nil
}

// g1FFTRecurse is frFFTRecurse's G1-point analogue. Two semantics must be
// preserved: a twiddle equal to one skips the scalar multiplication, and an
// identity operand short-circuits the combine step (both optimizations are
// load-bearing when the input contains the point at infinity, e.g. while
// FFTing a zero-padded monomial setup).
func g1FFTRecurse(vals []bls12381.G1Affine, roots []fr.Element) []bls12381.G1Affine {
	n := len(vals)
	if n == 1 {
		out := make([]bls12381.G1Affine, 1)
		out[0] = vals[0]
		return out
	}
	half := n / 2
	evens := make([]bls12381.G1Affine, half)
	odds := make([]bls12381.G1Affine, half)
	halfRoots := make([]fr.Element, half)
	for i := 0; i < half; i++ {
		evens[i] = vals[2*i]
		odds[i] = vals[2*i+1]
		halfRoots[i] = roots[2*i]
	}
	ftEvens := g1FFTRecurse(evens, halfRoots)
	ftOdds := g1FFTRecurse(odds, halfRoots)

	out := make([]bls12381.G1Affine, n)
	for i := 0; i < half; i++ {
		twiddled := ftOdds[i]
		if !feIsOne(&roots[i]) && !isIdentityG1(&ftOdds[i]) {
			twiddled = g1ScalarMul(&ftOdds[i], &roots[i])
		} else if isIdentityG1(&ftOdds[i]) {
			twiddled = identityG1()
		}
		out[i] = g1Add(&ftEvens[i], &twiddled)
		negTwiddled := twiddled
		negTwiddled.Neg(&negTwiddled)
		out[i+half] = g1Add(&ftEvens[i], &negTwiddled)
	}
	return out
}
