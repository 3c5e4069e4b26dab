package kzg

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// g1FromBytes decodes a compressed G1 point, validating on-curve and
// subgroup membership per spec.md §3 (the point at infinity is accepted).
func g1FromBytes(op string, b []byte) (bls12381.G1Affine, error) {
	var out bls12381.G1Affine
	if len(b) != BytesPerG1 {
		return out, badArgs(op, errCommitmentLength)
	}
	var buf [BytesPerG1]byte
	copy(buf[:], b)
	if _, err := out.SetBytes(buf[:]); err != nil {
		return out, badArgs(op, errInvalidPointEncoding)
	}
	if !out.IsInSubGroup() {
		return out, badArgs(op, errPointNotInSubgroup)
	}
	return out, nil
}

// g2FromBytes decodes a compressed G2 point with the same validation rules.
func g2FromBytes(op string, b []byte) (bls12381.G2Affine, error) {
	var out bls12381.G2Affine
	if len(b) != BytesPerG2 {
		return out, badArgs(op, errProofLength)
	}
	var buf [BytesPerG2]byte
	copy(buf[:], b)
	if _, err := out.SetBytes(buf[:]); err != nil {
		return out, badArgs(op, errInvalidPointEncoding)
	}
	if !out.IsInSubGroup() {
		return out, badArgs(op, errPointNotInSubgroup)
	}
	return out, nil
}

// g1ScalarMul returns [s]P.
func g1ScalarMul(p *bls12381.G1Affine, s *fr.Element) bls12381.G1Affine {
	var sInt big.Int
	s.BigInt(&sInt)
	var out bls12381.G1Affine
	out.ScalarMultiplication(p, &sInt)
	return out
}

// g2ScalarMul returns [s]P.
func g2ScalarMul(p *bls12381.G2Affine, s *fr.Element) bls12381.G2Affine {
	var sInt big.Int
	s.BigInt(&sInt)
	var out bls12381.G2Affine
	out.ScalarMultiplication(p, &sInt)
	return out
}

// g1Sub returns a - b, implemented as a + (-b).
func g1Sub(a, b *bls12381.G1Affine) bls12381.G1Affine {
	var negB, out bls12381.G1Affine
	negB.Neg(b)
	var aJac, outJac bls12381.G1Jac
	aJac.FromAffine(a)
	outJac.FromAffine(&negB)
	outJac.AddAssign(&aJac)
	out.FromJacobian(&outJac)
	return out
}

// g1Add returns a + b.
func g1Add(a, b *bls12381.G1Affine) bls12381.G1Affine {
	var aJac, bJac, out bls12381.G1Jac
	aJac.FromAffine(a)
	bJac.FromAffine(b)
	out.Set(&aJac).AddAssign(&bJac)
	var outAff bls12381.G1Affine
	outAff.FromJacobian(&out)
	return outAff
}

// g2Sub returns a - b.
func g2Sub(a, b *bls12381.G2Affine) bls12381.G2Affine {
	var negB bls12381.G2Affine
	negB.Neg(b)
	var aJac, outJac bls12381.G2Jac
	aJac.FromAffine(a)
	outJac.FromAffine(&negB)
	outJac.AddAssign(&aJac)
	var out bls12381.G2Affine
	out.FromJacobian(&outJac)
	return out
}

// pairingsEqual checks e(a1,a2) == e(b1,b2) by negating one G1 operand and
// testing that the product of the two Miller loops reduces to one after
// final exponentiation.
func pairingsEqual(a1 *bls12381.G1Affine, a2 *bls12381.G2Affine, b1 *bls12381.G1Affine, b2 *bls12381.G2Affine) (bool, error) {
	var negB1 bls12381.G1Affine
	negB1.Neg(b1)
	ok, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{*a1, negB1},
		[]bls12381.G2Affine{*a2, *b2},
	)
	if err != nil {
		return false, internalErr("pairingsEqual", err)
	}
	return ok, nil
}

// identityG1 returns the G1 point at infinity.
func identityG1() bls12381.G1Affine {
	var p bls12381.G1Affine
	return p
}

// isIdentityG1 reports whether p is the point at infinity.
func isIdentityG1(p *bls12381.G1Affine) bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// g1Generator returns the canonical generator of G1.
func g1Generator() bls12381.G1Affine {
	_, _, g1, _ := bls12381.Generators()
	return g1
}

// g2Generator returns the canonical generator of G2.
func g2Generator() bls12381.G2Affine {
	_, _, _, g2 := bls12381.Generators()
	return g2
}
