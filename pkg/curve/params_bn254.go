package curve

import (
	"math/big"

	"github.com/eth2030-tower/tower/pkg/towerfield"
)

// BN254 (alt_bn128): modulus, b=3, D-twist (b_twist = b/(9+i)), and the
// standard generator coordinates for both G1 and G2.
func init() {
	p, ok := new(big.Int).SetString("21888242871839275222246405745257275088696311157297823662689037894645226208583", 10)
	if !ok {
		panic("curve: bad BN254 modulus")
	}

	twistB0, ok := new(big.Int).SetString("19485874751759354771024239261021720505790618469301721065564631296452457478373", 10)
	if !ok {
		panic("curve: bad BN254 twist b0")
	}
	twistB1, ok := new(big.Int).SetString("266929791119991161246907387137283842545076965332900288569378510910307636690", 10)
	if !ok {
		panic("curve: bad BN254 twist b1")
	}
	var btwist towerfield.Fp2
	btwist.C0.SetBigInt(p, twistB0)
	btwist.C1.SetBigInt(p, twistB1)

	g2x0, _ := new(big.Int).SetString("10857046999023057135944570762232829481370756359578518086990519993285655852781", 10)
	g2x1, _ := new(big.Int).SetString("11559732032986387107991004021392285783925812861821192530917403151452391805634", 10)
	g2y0, _ := new(big.Int).SetString("8495653923123431417604973247489272438418190587263600148770280649306958101930", 10)
	g2y1, _ := new(big.Int).SetString("4082367875863433681332203403145435568316851327593401208105741076214120093531", 10)

	Register(&Params{
		Name:    "bn254",
		Modulus: p,
		B:       big.NewInt(3),
		Twist:   DTwist,
		BTwist:  &btwist,
		G1X:     big.NewInt(1),
		G1Y:     big.NewInt(2),
		G2X0:    g2x0,
		G2X1:    g2x1,
		G2Y0:    g2y0,
		G2Y1:    g2y1,
	})
}
