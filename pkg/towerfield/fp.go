package towerfield

import "math/big"

// Fp is an element of the base prime field of a pairing-friendly curve.
// It carries its own modulus rather than assuming a single hardcoded
// prime, so the same type serves every curve in the registry.
//
// It is deliberately not constant time: math/big branches on operand
// magnitude internally. A hardened backend (fixed-width limbs, assembly
// reduce) is expected to implement the same method set without any
// caller in this module changing.
type Fp struct {
	v   big.Int
	mod *big.Int
}

// Mod returns the modulus this element is reduced against.
func (z *Fp) Mod() *big.Int {
	return z.mod
}

// SetZero sets z to 0 in the field with the given modulus.
func (z *Fp) SetZero(mod *big.Int) *Fp {
	z.v.SetInt64(0)
	z.mod = mod
	return z
}

// SetOne sets z to 1 in the field with the given modulus.
func (z *Fp) SetOne(mod *big.Int) *Fp {
	z.v.SetInt64(1)
	z.mod = mod
	return z
}

// SetUint64 loads z from a raw uint64 value, unchecked against range.
func (z *Fp) SetUint64(mod *big.Int, u uint64) *Fp {
	z.v.SetUint64(u)
	z.v.Mod(&z.v, mod)
	z.mod = mod
	return z
}

// SetBigInt loads z from an arbitrary big.Int, reducing it modulo mod.
func (z *Fp) SetBigInt(mod *big.Int, x *big.Int) *Fp {
	z.v.Mod(x, mod)
	z.mod = mod
	return z
}

// Set copies x into z.
func (z *Fp) Set(x *Fp) *Fp {
	z.v.Set(&x.v)
	z.mod = x.mod
	return z
}

// Add sets z = x + y.
func (z *Fp) Add(x, y *Fp) *Fp {
	z.v.Add(&x.v, &y.v)
	z.v.Mod(&z.v, x.mod)
	z.mod = x.mod
	return z
}

// Sub sets z = x - y.
func (z *Fp) Sub(x, y *Fp) *Fp {
	z.v.Sub(&x.v, &y.v)
	z.v.Mod(&z.v, x.mod)
	z.mod = x.mod
	return z
}

// Double sets z = 2x.
func (z *Fp) Double(x *Fp) *Fp {
	return z.Add(x, x)
}

// Neg sets z = -x.
func (z *Fp) Neg(x *Fp) *Fp {
	z.mod = x.mod
	if x.v.Sign() == 0 {
		z.v.SetInt64(0)
		return z
	}
	z.v.Sub(x.mod, &x.v)
	return z
}

// Mul sets z = x * y.
func (z *Fp) Mul(x, y *Fp) *Fp {
	z.v.Mul(&x.v, &y.v)
	z.v.Mod(&z.v, x.mod)
	z.mod = x.mod
	return z
}

// Square sets z = x^2.
func (z *Fp) Square(x *Fp) *Fp {
	return z.Mul(x, x)
}

// Inverse sets z = x^-1. Behavior when x is zero is unspecified; the
// value left in z on that path must not be relied upon.
func (z *Fp) Inverse(x *Fp) *Fp {
	z.mod = x.mod
	if r := z.v.ModInverse(&x.v, x.mod); r == nil {
		z.v.SetInt64(0)
	}
	return z
}

// SqrtIfSquare attempts z = sqrt(x) using math/big's ModSqrt, which
// handles both p ≡ 3 (mod 4) moduli (BN254, BLS12-381) and p ≡ 1 (mod 4)
// moduli (BLS12-377). It returns a SecretBool reporting whether x was
// actually a square, decided by squaring the candidate root and
// comparing it with x; when x is not a square z is set to 0.
func (z *Fp) SqrtIfSquare(x *Fp) SecretBool {
	var reduced big.Int
	reduced.Mod(&x.v, x.mod)

	var candidate big.Int
	candidate.ModSqrt(&reduced, x.mod)

	var check big.Int
	check.Mul(&candidate, &candidate)
	check.Mod(&check, x.mod)
	ok := check.Cmp(&reduced) == 0

	z.v.Set(&candidate)
	z.mod = x.mod
	return newSecretBool(ok)
}

// IsZero reports whether x is the zero element.
func (x *Fp) IsZero() SecretBool {
	return newSecretBool(x.v.Sign() == 0)
}

// LSB returns the least-significant bit of x's canonical representative
// as a SecretBool, formed by masking rather than branching: subtracting
// a 0/1 value from zero yields either the all-zero or all-one mask, the
// same trick crypto/subtle's ConstantTimeSelect is built from. Callers
// use this instead of inspecting x.BigInt().Bit(0) directly, which would
// force a plain Go bool into existence and invite a branch on secret
// data.
func (x *Fp) LSB() SecretBool {
	bit := x.v.Bit(0)
	return SecretBool(0) - SecretBool(bit)
}

// Equal reports whether x and y hold the same value.
func (x *Fp) Equal(y *Fp) SecretBool {
	return newSecretBool(x.v.Cmp(&y.v) == 0)
}

// CCopy sets z = x iff ctl is true, otherwise leaves z unchanged.
func (z *Fp) CCopy(x *Fp, ctl SecretBool) *Fp {
	if ctl.Declassify() {
		z.Set(x)
	}
	return z
}

// CSetZero sets z = 0 iff ctl is true.
func (z *Fp) CSetZero(ctl SecretBool) *Fp {
	if ctl.Declassify() {
		z.v.SetInt64(0)
	}
	return z
}

// CSetOne sets z = 1 iff ctl is true.
func (z *Fp) CSetOne(ctl SecretBool) *Fp {
	if ctl.Declassify() {
		z.v.SetInt64(1)
	}
	return z
}

// CNeg negates z in place iff ctl is true.
func (z *Fp) CNeg(ctl SecretBool) *Fp {
	if ctl.Declassify() {
		z.Neg(z)
	}
	return z
}

// BigInt returns the element's value as a new big.Int in [0, mod).
func (x *Fp) BigInt() *big.Int {
	return new(big.Int).Set(&x.v)
}
