package kzg

import "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

// zeroPolyChunkSize is the partial-product chunk size used while building
// the zero polynomial, matching spec.md §4.11.
const zeroPolyChunkSize = 63

// polyMulNaive multiplies two small polynomials by direct convolution.
// Used only for the (<=63-degree) per-chunk partial products, where an FFT
// would not pay for itself.
func polyMulNaive(a, b []fr.Element) []fr.Element {
	out := make([]fr.Element, len(a)+len(b)-1)
	for i := range a {
		if feIsZero(&a[i]) {
			continue
		}
		for j := range b {
			var term fr.Element
			term.Mul(&a[i], &b[j])
			out[i+j].Add(&out[i+j], &term)
		}
	}
	return out
}

// polyMulFFT multiplies two polynomials via FFT convolution, used to
// reduce_partials the chunk products together.
func polyMulFFT(a, b []fr.Element) ([]fr.Element, error) {
	outLen := uint64(len(a) + len(b) - 1)
	width := uint64(1)
	for width < outLen {
		width <<= 1
	}
	domain, err := newDomain(width)
	if err != nil {
		return nil, err
	}
	pa := make([]fr.Element, width)
	pb := make([]fr.Element, width)
	copy(pa, a)
	copy(pb, b)

	fa, err := fftFr(domain, pa)
	if err != nil {
		return nil, err
	}
	fb, err := fftFr(domain, pb)
	if err != nil {
		return nil, err
	}
	fc := make([]fr.Element, width)
	for i := range fc {
		fc[i].Mul(&fa[i], &fb[i])
	}
	c, err := ifftFr(domain, fc)
	if err != nil {
		return nil, err
	}
	return c[:outLen], nil
}

// zeroPolynomial builds Z_I(x) = prod_{i in missing} (x - domain.ExpandedRootsOfUnity[i])
// as monomial coefficients padded to length L, per spec.md §4.11. missing
// holds natural (FFT-order, not bit-reversed) indices. An empty missing set
// returns the zero polynomial (the spec's degenerate case).
func zeroPolynomial(domain *Domain, length uint64, missing []uint64) ([]fr.Element, error) {
	if len(missing) == 0 {
		return make([]fr.Element, length), nil
	}

	var partials [][]fr.Element
	for start := 0; start < len(missing); start += zeroPolyChunkSize {
		end := start + zeroPolyChunkSize
		if end > len(missing) {
			end = len(missing)
		}
		chunk := missing[start:end]

		poly := make([]fr.Element, 1)
		poly[0].SetOne()
		for _, idx := range chunk {
			if idx >= uint64(len(domain.ExpandedRootsOfUnity))-1 {
				return nil, internalErr("zeroPolynomial", errCellIDOutOfRange)
			}
			var negRoot fr.Element
			negRoot.Neg(&domain.ExpandedRootsOfUnity[idx])
			factor := []fr.Element{negRoot, {}}
			factor[1].SetOne()
			poly = polyMulNaive(poly, factor)
		}
		partials = append(partials, poly)
	}

	for len(partials) > 1 {
		next := make([][]fr.Element, 0, (len(partials)+1)/2)
		for i := 0; i < len(partials); i += 2 {
			if i+1 < len(partials) {
				merged, err := polyMulFFT(partials[i], partials[i+1])
				if err != nil {
					return nil, err
				}
				next = append(next, merged)
			} else {
				next = append(next, partials[i])
			}
		}
		partials = next
	}

	if uint64(len(partials[0])) > length {
		return nil, internalErr("zeroPolynomial", errLengthExceedsMaxWidth)
	}
	out := make([]fr.Element, length)
	copy(out, partials[0])
	return out, nil
}
