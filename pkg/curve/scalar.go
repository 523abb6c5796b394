package curve

import (
	"math/big"

	"github.com/holiman/uint256"
)

// ScalarFromBytes decodes a big-endian, fixed-width 32-byte scalar
// (the size every curve in this registry's Fr fits within) into a
// big.Int reduced modulo mod. It is used by tests and by any future
// scalar-multiplication consumer of this package that needs a fast,
// allocation-light fixed-width decode instead of hand-rolled byte
// arithmetic.
func ScalarFromBytes(mod *big.Int, b [32]byte) *big.Int {
	var u uint256.Int
	u.SetBytes(b[:])
	v := u.ToBig()
	v.Mod(v, mod)
	return v
}

// ScalarToBytes encodes x as a big-endian 32-byte array, panicking if
// x does not fit (this module only ever calls it with values already
// reduced modulo a <256-bit curve order or field modulus).
func ScalarToBytes(x *big.Int) [32]byte {
	u, overflow := uint256.FromBig(x)
	if overflow {
		panic("curve: scalar does not fit in 256 bits")
	}
	return u.Bytes32()
}
