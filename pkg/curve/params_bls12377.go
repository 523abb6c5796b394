package curve

import "math/big"

// BLS12-377, G1 only: modulus, b=1, and the G1 generator.
//
// No G2 is registered for this curve. This module's Fp2 is always
// built as Fp[i]/(i^2+1) (towerfield.Fp2), but BLS12-377's quadratic
// extension needs a different non-residue, since -1 is itself a square
// mod this curve's p (in which case i^2+1 factors over Fp and
// Fp[i]/(i^2+1) is not a field at all, let alone the right one). Rather
// than silently emit a broken G2, this curve is left with Twist ==
// NoTwist; see DESIGN.md.
func init() {
	p, ok := new(big.Int).SetString(
		"01ae3a4617c510eac63b05c06ca1493b1a22d9f300f5138f1ef3622fba094800170b5d44300000008508c00000000001", 16)
	if !ok {
		panic("curve: bad BLS12-377 modulus")
	}

	g1x, _ := new(big.Int).SetString(
		"008848defe740a67c8fc6225bf87ff5485951e2caa9d41bb188282c8bd37cb5cd5481512ffcd394eeab9b16eb21be9ef", 16)
	g1y, _ := new(big.Int).SetString(
		"1914a69c5102eff1f674f5d30afeec4bd7fb348ca3e52d96d182ad44fb82305c2fe3d3634a9591afd82de55559c8ea6", 16)

	Register(&Params{
		Name:    "bls12-377",
		Modulus: p,
		B:       big.NewInt(1),
		Twist:   NoTwist,
		G1X:     g1x,
		G1Y:     g1y,
	})
}
