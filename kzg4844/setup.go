package kzg4844

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ethereum/go-kzg-eip4844/internal/kzg"
)

// Context is a loaded trusted setup: the public handle every commit, open,
// verify, and cell operation in this package takes as its first argument.
type Context struct {
	ts     *kzg.TrustedSetup
	logger zerolog.Logger
}

// LoadTrustedSetup builds a Context from already-deserialized setup points.
// g1MonomialBytes may be nil/empty, in which case the monomial-form key is
// derived from the Lagrange form (older ceremony transcripts only publish
// Lagrange-form G1 points).
func LoadTrustedSetup(g1MonomialBytes, g1LagrangeBytes, g2MonomialBytes []byte, precomputeWidth uint64) (*Context, error) {
	logger := log.Logger.With().Str("component", "kzg4844").Logger()

	g1Lagrange, err := decodeG1Points("LoadTrustedSetup", g1LagrangeBytes)
	if err != nil {
		return nil, err
	}
	g2Monomial, err := decodeG2Points("LoadTrustedSetup", g2MonomialBytes)
	if err != nil {
		return nil, err
	}
	var g1Monomial []bls12381.G1Affine
	if len(g1MonomialBytes) > 0 {
		g1Monomial, err = decodeG1Points("LoadTrustedSetup", g1MonomialBytes)
		if err != nil {
			return nil, err
		}
	}

	ts, err := kzg.NewTrustedSetup(g1Monomial, g1Lagrange, g2Monomial, precomputeWidth, logger)
	if err != nil {
		return nil, err
	}
	return &Context{ts: ts, logger: logger}, nil
}

// LoadTrustedSetupFile loads a Context from the plain-text trusted setup
// format (spec.md §6): the first line gives the G1 point count (=
// FIELD_ELEMENTS_PER_BLOB), the second gives the G2 point count (= 65);
// both counts precede all point data. Then follow that many hex-encoded
// compressed G1 points (Lagrange form), that many hex-encoded compressed
// G2 points (monomial form), and optionally (if more lines follow) another
// G1-point-count's worth of hex G1 points (monomial form, the 7594
// variant).
func LoadTrustedSetupFile(path string, precomputeWidth uint64) (*Context, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &kzg.Error{Kind: kzg.BadArgs, Op: "LoadTrustedSetupFile", Err: err}
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	const op = "LoadTrustedSetupFile"

	g1Count, err := readCountLine(sc, op)
	if err != nil {
		return nil, err
	}
	g2Count, err := readCountLine(sc, op)
	if err != nil {
		return nil, err
	}

	g1LagrangeHex, err := readHexLines(sc, op, g1Count)
	if err != nil {
		return nil, err
	}
	g2MonomialHex, err := readHexLines(sc, op, g2Count)
	if err != nil {
		return nil, err
	}
	g1MonomialHex, err := readOptionalHexLines(sc, op, g1Count)
	if err != nil {
		return nil, err
	}

	g1Lagrange, err := hexToBytes(op, g1LagrangeHex, kzg.BytesPerG1)
	if err != nil {
		return nil, err
	}
	g2Monomial, err := hexToBytes(op, g2MonomialHex, kzg.BytesPerG2)
	if err != nil {
		return nil, err
	}
	var g1Monomial []byte
	if len(g1MonomialHex) > 0 {
		g1Monomial, err = hexToBytes(op, g1MonomialHex, kzg.BytesPerG1)
		if err != nil {
			return nil, err
		}
	}

	return LoadTrustedSetup(g1Monomial, g1Lagrange, g2Monomial, precomputeWidth)
}

// readHexLines reads exactly n hex lines.
func readHexLines(sc *bufio.Scanner, op string, n int) ([]string, error) {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return nil, &kzg.Error{Kind: kzg.BadArgs, Op: op, Err: fmt.Errorf("trusted setup file truncated")}
		}
		out[i] = strings.TrimSpace(sc.Text())
	}
	return out, nil
}

// readOptionalHexLines reads n trailing hex lines if any input remains,
// returning nil if the file ends cleanly (no G1 monomial points published,
// the pre-7594 variant).
func readOptionalHexLines(sc *bufio.Scanner, op string, n int) ([]string, error) {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			if i == 0 {
				return nil, nil
			}
			return nil, &kzg.Error{Kind: kzg.BadArgs, Op: op, Err: fmt.Errorf("trusted setup file truncated")}
		}
		out = append(out, strings.TrimSpace(sc.Text()))
	}
	return out, nil
}

func readCountLine(sc *bufio.Scanner, op string) (int, error) {
	if !sc.Scan() {
		return 0, &kzg.Error{Kind: kzg.BadArgs, Op: op, Err: fmt.Errorf("trusted setup file empty or truncated")}
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return 0, &kzg.Error{Kind: kzg.BadArgs, Op: op, Err: err}
	}
	return n, nil
}

func hexToBytes(op string, lines []string, pointSize int) ([]byte, error) {
	out := make([]byte, 0, len(lines)*pointSize)
	for _, line := range lines {
		b, err := hex.DecodeString(strings.TrimPrefix(line, "0x"))
		if err != nil {
			return nil, &kzg.Error{Kind: kzg.BadArgs, Op: op, Err: err}
		}
		if len(b) != pointSize {
			return nil, &kzg.Error{Kind: kzg.BadArgs, Op: op, Err: fmt.Errorf("point of wrong size in trusted setup file")}
		}
		out = append(out, b...)
	}
	return out, nil
}

func decodeG1Points(op string, raw []byte) ([]bls12381.G1Affine, error) {
	if len(raw)%kzg.BytesPerG1 != 0 {
		return nil, &kzg.Error{Kind: kzg.BadArgs, Op: op, Err: fmt.Errorf("G1 byte slice not a multiple of point size")}
	}
	n := len(raw) / kzg.BytesPerG1
	out := make([]bls12381.G1Affine, n)
	for i := 0; i < n; i++ {
		p, err := kzg.DecodeG1(op, raw[i*kzg.BytesPerG1:(i+1)*kzg.BytesPerG1])
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func decodeG2Points(op string, raw []byte) ([]bls12381.G2Affine, error) {
	if len(raw)%kzg.BytesPerG2 != 0 {
		return nil, &kzg.Error{Kind: kzg.BadArgs, Op: op, Err: fmt.Errorf("G2 byte slice not a multiple of point size")}
	}
	n := len(raw) / kzg.BytesPerG2
	out := make([]bls12381.G2Affine, n)
	for i := 0; i < n; i++ {
		p, err := kzg.DecodeG2(op, raw[i*kzg.BytesPerG2:(i+1)*kzg.BytesPerG2])
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// FreeTrustedSetup releases ctx. The TrustedSetup holds no off-heap
// resources; this exists for interface parity with the C/Rust bindings this
// library mirrors, and simply drops ctx's references.
func FreeTrustedSetup(ctx *Context) {
	ctx.Close()
}

// Close releases ctx's reference to the underlying trusted setup.
func (ctx *Context) Close() {
	ctx.ts = nil
}
