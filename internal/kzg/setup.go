package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/rs/zerolog"
)

// TrustedSetup is the engine-internal, immutable-after-construction
// representation of the spec's TrustedSetup: roots-of-unity tables, the
// commitment key in both Lagrange and monomial form, and the FK20
// precomputation. It is safe for concurrent reads once NewTrustedSetup
// returns; loading and freeing must not race with any reader.
type TrustedSetup struct {
	MaxWidth uint64

	// DomainBlob is the width-FieldElementsPerBlob roots-of-unity table.
	DomainBlob *Domain
	// DomainExt is the width-FieldElementsPerExtBlob roots-of-unity table.
	DomainExt *Domain
	// domainFK20 is the width-CellsPerExtBlob (= 2*(FieldElementsPerBlob /
	// FieldElementsPerCell)) table used by the FK20 per-offset Toeplitz
	// convolution; it is a strictly smaller power of two than
	// FieldElementsPerExtBlob for the cell/blob sizes this package fixes,
	// so it is its own table rather than a stride into DomainExt.
	domainFK20 *Domain

	// G1Lagrange is the commitment key in Lagrange form, bit-reversal
	// permuted, length FieldElementsPerBlob.
	G1Lagrange []bls12381.G1Affine
	// G1Monomial is the commitment key in monomial form, length
	// FieldElementsPerBlob.
	G1Monomial []bls12381.G1Affine
	// G2Monomial is the G2 commitment key in monomial form, length 65
	// (powers 0..64 of the secret, enough for the degree-64 cell openings).
	G2Monomial []bls12381.G2Affine

	// PrecomputeWidth is the FK20 fixed-base window size (wbits) requested
	// at load time; see DESIGN.md for how this maps onto gnark-crypto's
	// MultiExp (which does not expose a persisted windowed fixed-base
	// precomputation object the way blst does).
	PrecomputeWidth uint64

	// FK20Columns holds, per FFT index (shape [CellsPerExtBlob]), the
	// FieldElementsPerCell-length column of G1 points the prove-time
	// windowed MSM runs against.
	FK20Columns [][]bls12381.G1Affine
}

// NewTrustedSetup builds a TrustedSetup from already-deserialized setup
// points. g1Monomial may be nil, in which case it is derived from
// g1Lagrange by reverting the bit-reversal permutation and taking an
// inverse G1 FFT (spec.md §9's "older ceremony files only carry the
// Lagrange form" open question).
func NewTrustedSetup(g1Monomial, g1Lagrange []bls12381.G1Affine, g2Monomial []bls12381.G2Affine, precomputeWidth uint64, logger zerolog.Logger) (*TrustedSetup, error) {
	if len(g1Lagrange) != FieldElementsPerBlob {
		return nil, badArgs("NewTrustedSetup", errSetupWrongPointCount)
	}
	if len(g2Monomial) != FieldElementsPerCell+1 {
		return nil, badArgs("NewTrustedSetup", errSetupWrongPointCount)
	}
	if precomputeWidth == 0 {
		precomputeWidth = defaultPrecomputeWidth
	}

	domainBlob, err := newDomain(FieldElementsPerBlob)
	if err != nil {
		return nil, err
	}
	domainExt, err := newDomain(FieldElementsPerExtBlob)
	if err != nil {
		return nil, err
	}
	domainFK20, err := newDomain(CellsPerExtBlob)
	if err != nil {
		return nil, err
	}

	if len(g1Monomial) == 0 {
		logger.Debug().Msg("deriving monomial-form G1 setup from Lagrange form")
		natural, err := bitReversedG1(g1Lagrange)
		if err != nil {
			return nil, err
		}
		g1Monomial, err = ifftG1(domainBlob, natural)
		if err != nil {
			return nil, err
		}
	} else if len(g1Monomial) != FieldElementsPerBlob {
		return nil, badArgs("NewTrustedSetup", errSetupWrongPointCount)
	}

	// Pairing sanity check: the caller-provided (or now-derived) setup
	// must actually be in Lagrange form for g1Lagrange.
	g2gen0 := g2Monomial[0]
	g2gen1 := g2Monomial[1]
	same, err := pairingsEqual(&g1Lagrange[1], &g2gen0, &g1Lagrange[0], &g2gen1)
	if err != nil {
		return nil, err
	}
	if same {
		return nil, badArgs("NewTrustedSetup", errSetupNotLagrangeForm)
	}

	ts := &TrustedSetup{
		MaxWidth:        FieldElementsPerExtBlob,
		DomainBlob:      domainBlob,
		DomainExt:       domainExt,
		domainFK20:      domainFK20,
		G1Lagrange:      g1Lagrange,
		G1Monomial:      g1Monomial,
		G2Monomial:      g2Monomial,
		PrecomputeWidth: precomputeWidth,
	}

	logger.Debug().Msg("precomputing FK20 columns")
	if err := ts.precomputeFK20(); err != nil {
		return nil, err
	}

	return ts, nil
}

// precomputeFK20 builds FK20Columns per spec.md §4.9. The per-offset G1
// vector for offset o holds G1Monomial[n-l-1-o-j*l] at index j for
// j in [0, rowsPerOffset-1), followed by identity points up to the FFT
// length; its circular convolution with the Toeplitz-reflected scalar
// vector of fk20ComputeProofs yields the FK20 h polynomial.
func (ts *TrustedSetup) precomputeFK20() error {
	const (
		n = FieldElementsPerBlob
		l = FieldElementsPerCell
	)
	rowsPerOffset := n / l
	fftLen := 2 * rowsPerOffset // == CellsPerExtBlob

	rows := make([][]bls12381.G1Affine, l)
	for o := 0; o < l; o++ {
		row := make([]bls12381.G1Affine, fftLen)
		for j := 0; j < rowsPerOffset-1; j++ {
			row[j] = ts.G1Monomial[n-l-1-o-j*l]
		}
		// remaining entries are already zero-valued (identity) by make().

		transformed, err := fftG1(ts.domainFK20, row)
		if err != nil {
			return err
		}
		rows[o] = transformed
	}

	columns := make([][]bls12381.G1Affine, fftLen)
	for c := 0; c < fftLen; c++ {
		col := make([]bls12381.G1Affine, l)
		for o := 0; o < l; o++ {
			col[o] = rows[o][c]
		}
		columns[c] = col
	}
	ts.FK20Columns = columns
	return nil
}
