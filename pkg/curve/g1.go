package curve

import (
	"math/big"

	"github.com/eth2030-tower/tower/pkg/towerfield"
)

// PointG1 is a point on a curve's base G1 group, y^2 = x^3 + b, in
// projective (X:Y:Z) coordinates. The zero value is not a valid point;
// use SetInfinity or FromAffine.
//
// Every method follows the destination-receiver, alias-safe convention
// used throughout this module: all operand fields are read into local
// Fp temporaries before anything is written into the receiver, so z
// may alias x, y, or both. This mirrors the "scratch temp array on a
// field context struct" idiom found in
// ethereum-go-ethereum/crypto/bls12381/g1.go (its tempG1 struct) and
// ethereum-go-ethereum/crypto/bn256/cloudflare's curvePoint methods,
// adapted here to per-call local variables instead of a shared
// pre-allocated scratch struct, since this module has no long-lived
// "field" context object of its own.
type PointG1 struct {
	X, Y, Z towerfield.Fp
}

// SetInfinity sets z to the identity element (0:1:0).
func (z *PointG1) SetInfinity(mod *big.Int) *PointG1 {
	z.X.SetZero(mod)
	z.Y.SetOne(mod)
	z.Z.SetZero(mod)
	return z
}

// IsInfinity reports whether z is the identity element.
func (z *PointG1) IsInfinity() towerfield.SecretBool {
	return z.Z.IsZero()
}

// Set copies x into z.
func (z *PointG1) Set(x *PointG1) *PointG1 {
	z.X.Set(&x.X)
	z.Y.Set(&x.Y)
	z.Z.Set(&x.Z)
	return z
}

// CCopy sets z = x iff ctl is true.
func (z *PointG1) CCopy(x *PointG1, ctl towerfield.SecretBool) *PointG1 {
	z.X.CCopy(&x.X, ctl)
	z.Y.CCopy(&x.Y, ctl)
	z.Z.CCopy(&x.Z, ctl)
	return z
}

// Neg sets z = -x (negate the Y coordinate).
func (z *PointG1) Neg(x *PointG1) *PointG1 {
	z.X.Set(&x.X)
	z.Y.Neg(&x.Y)
	z.Z.Set(&x.Z)
	return z
}

// CNeg negates z in place iff ctl is true.
func (z *PointG1) CNeg(ctl towerfield.SecretBool) *PointG1 {
	z.Y.CNeg(ctl)
	return z
}

// FromAffine builds a projective point from affine (x, y), unchecked
// against the curve equation; use TrySetFromX to validate membership.
func (z *PointG1) FromAffine(mod *big.Int, x, y *big.Int) *PointG1 {
	z.X.SetBigInt(mod, x)
	z.Y.SetBigInt(mod, y)
	z.Z.SetOne(mod)
	return z
}

// ToAffine converts z to affine (x, y), returning (0, 0) when z is the
// point at infinity.
func (z *PointG1) ToAffine() (x, y towerfield.Fp) {
	var zinv towerfield.Fp
	zinv.Inverse(&z.Z)

	x.Mul(&z.X, &zinv)
	y.Mul(&z.Y, &zinv)

	inf := z.IsInfinity()
	x.CSetZero(inf)
	y.CSetZero(inf)
	return x, y
}

// Equality reports whether z and w represent the same projective
// point, comparing X1*Z2 == X2*Z1 and Y1*Z2 == Y2*Z1 so that no
// inversion (and no branch on either operand's coordinates) is needed.
func (z *PointG1) Equality(w *PointG1) towerfield.SecretBool {
	var l, r towerfield.Fp
	l.Mul(&z.X, &w.Z)
	r.Mul(&w.X, &z.Z)
	xEq := l.Equal(&r)

	l.Mul(&z.Y, &w.Z)
	r.Mul(&w.Y, &z.Z)
	yEq := l.Equal(&r)

	bothInf := z.IsInfinity().And(w.IsInfinity())
	neitherInf := z.IsInfinity().Or(w.IsInfinity()).Not()

	return bothInf.Or(neitherInf.And(xEq).And(yEq))
}

// Sum sets z = x + y using the Renes-Costello-Batina complete addition
// formulas for a=0 short-Weierstrass curves (Algorithm 7 of "Complete
// addition formulas for prime order elliptic curves"). The formulas are
// complete: no case split between doubling, adding, and infinity is
// needed. b3 = 3*b is precomputed once and passed in by the caller.
func (z *PointG1) Sum(x, y *PointG1, b3 *towerfield.Fp) *PointG1 {
	var t0, t1, t2, t3, t4, x3, y3, z3 towerfield.Fp

	t0.Mul(&x.X, &y.X)
	t1.Mul(&x.Y, &y.Y)
	t2.Mul(&x.Z, &y.Z)

	t3.Add(&x.X, &x.Y)
	t4.Add(&y.X, &y.Y)
	t3.Mul(&t3, &t4)
	t4.Add(&t0, &t1)
	t3.Sub(&t3, &t4)

	t4.Add(&x.Y, &x.Z)
	x3.Add(&y.Y, &y.Z)
	t4.Mul(&t4, &x3)
	x3.Add(&t1, &t2)
	t4.Sub(&t4, &x3)

	x3.Add(&x.X, &x.Z)
	y3.Add(&y.X, &y.Z)
	x3.Mul(&x3, &y3)
	y3.Add(&t0, &t2)
	y3.Sub(&x3, &y3)

	x3.Double(&t0)
	t0.Add(&x3, &t0)
	t2.Mul(b3, &t2)
	z3.Add(&t1, &t2)
	t1.Sub(&t1, &t2)
	y3.Mul(b3, &y3)

	x3.Mul(&t4, &y3)
	t2.Mul(&t3, &t1)
	x3.Sub(&t2, &x3)

	y3.Mul(&y3, &t0)
	t1.Mul(&t1, &z3)
	y3.Add(&t1, &y3)

	t0.Mul(&t0, &t3)
	z3.Mul(&z3, &t4)
	z3.Add(&z3, &t0)

	z.X.Set(&x3)
	z.Y.Set(&y3)
	z.Z.Set(&z3)
	return z
}

// Madd sets z = x + y where y is affine (its Z coordinate is implicitly
// 1), using Algorithm 8 of the same paper. This is the fast path for
// callers that keep one operand in affine form.
func (z *PointG1) Madd(x *PointG1, yx, yy *towerfield.Fp, b3 *towerfield.Fp) *PointG1 {
	var t0, t1, t2, t3, t4, x3, y3, z3 towerfield.Fp

	t0.Mul(&x.X, yx)
	t1.Mul(&x.Y, yy)

	t3.Add(yx, yy)
	t4.Add(&x.X, &x.Y)
	t3.Mul(&t3, &t4)
	t4.Add(&t0, &t1)
	t3.Sub(&t3, &t4)

	t4.Mul(yy, &x.Z)
	t4.Add(&t4, &x.Y)
	y3.Mul(yx, &x.Z)
	y3.Add(&y3, &x.X)

	x3.Double(&t0)
	t0.Add(&x3, &t0)
	t2.Mul(b3, &x.Z)
	z3.Add(&t1, &t2)
	t1.Sub(&t1, &t2)
	y3.Mul(b3, &y3)

	x3.Mul(&t4, &y3)
	t2.Mul(&t3, &t1)
	x3.Sub(&t2, &x3)

	y3.Mul(&y3, &t0)
	t1.Mul(&t1, &z3)
	y3.Add(&t1, &y3)

	t0.Mul(&t0, &t3)
	z3.Mul(&z3, &t4)
	z3.Add(&z3, &t0)

	z.X.Set(&x3)
	z.Y.Set(&y3)
	z.Z.Set(&z3)
	return z
}

// Double sets z = 2x using Algorithm 9 of the same paper.
func (z *PointG1) Double(x *PointG1, b3 *towerfield.Fp) *PointG1 {
	var t0, t1, t2, x3, y3, z3 towerfield.Fp

	t0.Square(&x.Y)
	z3.Double(&t0)
	z3.Double(&z3)
	z3.Double(&z3)

	t1.Mul(&x.Y, &x.Z)
	t2.Square(&x.Z)
	t2.Mul(b3, &t2)

	x3.Mul(&t2, &z3)
	y3.Add(&t0, &t2)
	z3.Mul(&t1, &z3)

	t1.Double(&t2)
	t2.Add(&t1, &t2)
	t0.Sub(&t0, &t2)

	y3.Mul(&t0, &y3)
	y3.Add(&x3, &y3)

	t1.Mul(&x.X, &x.Y)
	x3.Mul(&t0, &t1)
	x3.Double(&x3)

	z.X.Set(&x3)
	z.Y.Set(&y3)
	z.Z.Set(&z3)
	return z
}

// Diff sets z = x - y.
func (z *PointG1) Diff(x, y *PointG1, b3 *towerfield.Fp) *PointG1 {
	var negY PointG1
	negY.Neg(y)
	return z.Sum(x, &negY, b3)
}

// trySqrtYG1 computes y = sqrt(x^3+b) with the parity wantOdd asks for,
// entirely through masking: it never inspects y's bit through a Go
// if/else, since y is derived from a square root of secret-dependent
// data and must not branch on that outcome. The mismatch between the
// root SqrtIfSquare happened to return and the parity the caller wants
// is a SecretBool Xor, and CCopy applies the negation only when that
// mismatch is true.
func trySqrtYG1(mod *big.Int, x *big.Int, b *towerfield.Fp, wantOdd towerfield.SecretBool) (y towerfield.Fp, isSquare towerfield.SecretBool) {
	var xf, rhs towerfield.Fp
	xf.SetBigInt(mod, x)

	rhs.Square(&xf)
	rhs.Mul(&rhs, &xf)
	rhs.Add(&rhs, b)

	isSquare = y.SqrtIfSquare(&rhs)

	var negY towerfield.Fp
	negY.Neg(&y)
	oddMismatch := y.LSB().Xor(wantOdd)
	y.CCopy(&negY, oddMismatch)
	return y, isSquare
}

// TrySetFromX attempts to build a point with the given affine x
// coordinate and the y root matching wantOdd's parity (the
// least-significant bit of y). It returns a SecretBool reporting
// success; on failure z is left holding the point at infinity so it is
// always a well-formed point either way.
func (z *PointG1) TrySetFromX(mod *big.Int, x *big.Int, b *towerfield.Fp, wantOdd towerfield.SecretBool) towerfield.SecretBool {
	y, isSquare := trySqrtYG1(mod, x, b, wantOdd)

	var candidate PointG1
	candidate.FromAffine(mod, x, y.BigInt())
	z.SetInfinity(mod)
	z.CCopy(&candidate, isSquare)
	return isSquare
}

// TrySetFromXAndZ is TrySetFromX's two-argument form: on success it
// scales the resulting affine representative by zScale instead of
// leaving Z=1, assigning (x*zScale, y*zScale, zScale), a different
// projective representative of the same affine point. This is used by
// tests that want to exercise point equality and arithmetic across
// non-normalized Z values instead of always starting from Z=1.
func (z *PointG1) TrySetFromXAndZ(mod *big.Int, x *big.Int, zScale *big.Int, b *towerfield.Fp, wantOdd towerfield.SecretBool) towerfield.SecretBool {
	y, isSquare := trySqrtYG1(mod, x, b, wantOdd)

	var xf, zf towerfield.Fp
	xf.SetBigInt(mod, x)
	zf.SetBigInt(mod, zScale)

	var candidate PointG1
	candidate.X.Mul(&xf, &zf)
	candidate.Y.Mul(&y, &zf)
	candidate.Z.Set(&zf)

	z.SetInfinity(mod)
	z.CCopy(&candidate, isSquare)
	return isSquare
}
