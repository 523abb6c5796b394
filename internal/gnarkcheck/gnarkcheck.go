//go:build gnarkcheck

// Package gnarkcheck cross-checks this module's Fp arithmetic against
// github.com/consensys/gnark-crypto's own field element types for
// BN254 and BLS12-381, the two curves gnark-crypto ships hand-tuned
// field backends for. It is a deliberately opt-in dependency, since it
// pulls in a much larger transitive graph than this module's default
// build needs.
//
// Build and test with: go test -tags gnarkcheck ./internal/gnarkcheck/...
package gnarkcheck

import (
	"fmt"
	"math/big"

	bls12381fp "github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	bn254fp "github.com/consensys/gnark-crypto/ecc/bn254/fp"

	"github.com/eth2030-tower/tower/pkg/towerfield"
)

// CheckBN254 runs the same random-sample multiplication and addition
// through this module's Fp and through gnark-crypto's bn254/fp.Element
// and reports a mismatch, if any.
func CheckBN254(a, b *big.Int) error {
	mod, _ := new(big.Int).SetString(
		"21888242871839275222246405745257275088696311157297823662689037894645226208583", 10)

	var ta, tb, tsum, tprod towerfield.Fp
	ta.SetBigInt(mod, a)
	tb.SetBigInt(mod, b)
	tsum.Add(&ta, &tb)
	tprod.Mul(&ta, &tb)

	var ga, gb, gsum, gprod bn254fp.Element
	ga.SetBigInt(a)
	gb.SetBigInt(b)
	gsum.Add(&ga, &gb)
	gprod.Mul(&ga, &gb)

	var gotSum, gotProd big.Int
	gsum.BigInt(&gotSum)
	gprod.BigInt(&gotProd)

	if tsum.BigInt().Cmp(&gotSum) != 0 {
		return fmt.Errorf("gnarkcheck: bn254 add mismatch: ours=%s gnark=%s", tsum.BigInt(), &gotSum)
	}
	if tprod.BigInt().Cmp(&gotProd) != 0 {
		return fmt.Errorf("gnarkcheck: bn254 mul mismatch: ours=%s gnark=%s", tprod.BigInt(), &gotProd)
	}
	return nil
}

// CheckBLS12381 is CheckBN254's BLS12-381 sibling.
func CheckBLS12381(a, b *big.Int) error {
	mod, _ := new(big.Int).SetString(
		"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab", 16)

	var ta, tb, tsum, tprod towerfield.Fp
	ta.SetBigInt(mod, a)
	tb.SetBigInt(mod, b)
	tsum.Add(&ta, &tb)
	tprod.Mul(&ta, &tb)

	var ga, gb, gsum, gprod bls12381fp.Element
	ga.SetBigInt(a)
	gb.SetBigInt(b)
	gsum.Add(&ga, &gb)
	gprod.Mul(&ga, &gb)

	var gotSum, gotProd big.Int
	gsum.BigInt(&gotSum)
	gprod.BigInt(&gotProd)

	if tsum.BigInt().Cmp(&gotSum) != 0 {
		return fmt.Errorf("gnarkcheck: bls12-381 add mismatch: ours=%s gnark=%s", tsum.BigInt(), &gotSum)
	}
	if tprod.BigInt().Cmp(&gotProd) != 0 {
		return fmt.Errorf("gnarkcheck: bls12-381 mul mismatch: ours=%s gnark=%s", tprod.BigInt(), &gotProd)
	}
	return nil
}
