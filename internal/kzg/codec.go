package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// DecodeFieldElement validates and decodes a 32-byte big-endian field
// element, the wire representation used for blob/cell entries.
func DecodeFieldElement(op string, b []byte) (fr.Element, error) {
	return feFromBytes(op, b)
}

// EncodeFieldElement returns the 32-byte big-endian wire representation of x.
func EncodeFieldElement(x *fr.Element) [BytesPerFieldElement]byte {
	return x.Bytes()
}

// DecodeG1 validates and decodes a compressed G1 point (a KZG commitment or
// proof on the wire).
func DecodeG1(op string, b []byte) (bls12381.G1Affine, error) {
	return g1FromBytes(op, b)
}

// EncodeG1 returns the compressed wire representation of p.
func EncodeG1(p *bls12381.G1Affine) [BytesPerG1]byte {
	return p.Bytes()
}

// DecodeG2 validates and decodes a compressed G2 point, used only while
// loading a trusted setup file.
func DecodeG2(op string, b []byte) (bls12381.G2Affine, error) {
	return g2FromBytes(op, b)
}

// EncodeG2 returns the compressed wire representation of p.
func EncodeG2(p *bls12381.G2Affine) [BytesPerG2]byte {
	return p.Bytes()
}
