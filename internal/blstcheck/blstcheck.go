//go:build blst

// Package blstcheck cross-checks this module's G1 generator
// encoding against github.com/supranational/blst, a production
// BLS12-381 library. It is opt-in because blst pulls in cgo, which
// this module's default build avoids.
//
// Build and test with: go test -tags blst ./internal/blstcheck/...
package blstcheck

import (
	"bytes"
	"fmt"
	"math/big"

	blst "github.com/supranational/blst/bindings/go"

	"github.com/eth2030-tower/tower/pkg/curve"
)

// CheckG1Generator decodes blst's own compressed G1 generator encoding
// and compares its affine coordinates against the given curve's
// registered G1X/G1Y. It returns a descriptive error on any mismatch
// so a caller can wire it straight into a table-driven blst-tagged
// test without duplicating the comparison logic per curve.
func CheckG1Generator(name string, compressedGenerator []byte) error {
	p, err := curve.Lookup(name)
	if err != nil {
		return err
	}
	if p.B == nil {
		return fmt.Errorf("blstcheck: %s has no registered G1 parameters", name)
	}

	var affine blst.P1Affine
	if affine.Uncompress(compressedGenerator) == nil {
		return fmt.Errorf("blstcheck: blst failed to decode compressed generator for %s", name)
	}
	serialized := affine.Serialize()
	if len(serialized) != 96 {
		return fmt.Errorf("blstcheck: unexpected uncompressed G1 length %d", len(serialized))
	}

	x := new(big.Int).SetBytes(serialized[:48])
	y := new(big.Int).SetBytes(serialized[48:])

	if x.Cmp(p.G1X) != 0 {
		return fmt.Errorf("blstcheck: %s G1 generator x mismatch: blst=%s ours=%s", name, x, p.G1X)
	}
	if y.Cmp(p.G1Y) != 0 {
		return fmt.Errorf("blstcheck: %s G1 generator y mismatch: blst=%s ours=%s", name, y, p.G1Y)
	}
	return nil
}

// CheckG1RoundTrip re-encodes our own affine coordinates through blst
// and checks the 96-byte uncompressed form round-trips, catching any endianness
// or padding mismatch between the two libraries' byte encodings.
func CheckG1RoundTrip(x, y *big.Int) error {
	var raw [96]byte
	xb := x.Bytes()
	yb := y.Bytes()
	copy(raw[48-len(xb):48], xb)
	copy(raw[96-len(yb):96], yb)

	var affine blst.P1Affine
	if affine.Deserialize(raw[:]) == nil {
		return fmt.Errorf("blstcheck: blst rejected our uncompressed encoding")
	}
	roundTripped := affine.Serialize()
	if !bytes.Equal(roundTripped, raw[:]) {
		return fmt.Errorf("blstcheck: round trip mismatch")
	}
	return nil
}
