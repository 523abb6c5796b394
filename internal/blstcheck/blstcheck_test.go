//go:build blst

package blstcheck

import "testing"

// The standard compressed (48-byte, top compression-flag bit set per
// the ZCash serialization convention blst follows) encoding of the BLS12-381 G1
// generator, reproduced from the widely published test vector also
// used by go-ethereum's crypto/bls12381 package.
var bls12381G1GeneratorCompressed = []byte{
	0x97, 0xf1, 0xd3, 0xa7, 0x31, 0x97, 0xd7, 0x94, 0x26, 0x95, 0x63, 0x8c, 0x4f, 0xa9, 0xac, 0x0f,
	0xc3, 0x68, 0x8c, 0x4f, 0x97, 0x74, 0xb9, 0x05, 0xa1, 0x4e, 0x3a, 0x3f, 0x17, 0x1b, 0xac, 0x58,
	0x6c, 0x55, 0xe8, 0x3f, 0xf9, 0x7a, 0x1a, 0xef, 0xfb, 0x3a, 0xf0, 0x0a, 0xdb, 0x22, 0xc6, 0xbb,
}

func TestBLS12381G1GeneratorMatchesBlst(t *testing.T) {
	if err := CheckG1Generator("bls12-381", bls12381G1GeneratorCompressed); err != nil {
		t.Fatal(err)
	}
}
