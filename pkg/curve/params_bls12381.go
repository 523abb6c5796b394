package curve

import (
	"math/big"

	"github.com/eth2030-tower/tower/pkg/towerfield"
)

// BLS12-381: modulus, b=4, M-twist (b_twist = 4(1+u)), and the
// standard generator coordinates for both G1 and G2.
func init() {
	p, ok := new(big.Int).SetString(
		"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab", 16)
	if !ok {
		panic("curve: bad BLS12-381 modulus")
	}

	var btwist towerfield.Fp2
	btwist.C0.SetUint64(p, 4)
	btwist.C1.SetUint64(p, 4)

	g1x, _ := new(big.Int).SetString(
		"17f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb", 16)
	g1y, _ := new(big.Int).SetString(
		"08b3f481e3aaa0f1a09e30ed741d8ae4fcf5e095d5d00af600db18cb2c04b3edd03cc744a2888ae40caa232946c5e7e1", 16)

	g2x0, _ := new(big.Int).SetString(
		"024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8", 16)
	g2x1, _ := new(big.Int).SetString(
		"13e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e", 16)
	g2y0, _ := new(big.Int).SetString(
		"0ce5d527727d6e118cc9cdc6da2e351aadfd9baa8cbdd3a76d429a695160d12c923ac9cc3baca289e193548608b82801", 16)
	g2y1, _ := new(big.Int).SetString(
		"0606c4a02ea734cc32acd2b02bc28b99cb3e287e85a763af267492ab572e99ab3f370d275cec1da1aaa9075ff05f79be", 16)

	Register(&Params{
		Name:    "bls12-381",
		Modulus: p,
		B:       big.NewInt(4),
		Twist:   MTwist,
		BTwist:  &btwist,
		G1X:     g1x,
		G1Y:     g1y,
		G2X0:    g2x0,
		G2X1:    g2x1,
		G2Y0:    g2y0,
		G2Y1:    g2y1,
	})
}
