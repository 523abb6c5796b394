package curve

import (
	"math/big"

	"github.com/eth2030-tower/tower/pkg/towerfield"
)

// PointG2 is a point on a curve's twisted G2 group, y^2 = x^3 + b',
// b' being Params.BTwist, in projective (X:Y:Z) coordinates over Fp2.
// It is the Fp2 sibling of PointG1: same RCB complete-addition
// formulas, same alias-safe destination-receiver convention, applied
// to towerfield.Fp2 instead of towerfield.Fp. The twist kind
// (D-twist/M-twist) only affects how Params.BTwist was derived from
// Params.B (see params.go); the point-arithmetic code itself is
// identical either way, which is why this module keeps two concrete
// point types rather than trying to parameterize one generically over
// the coordinate field (see DESIGN.md's note on the rejected generic
// Point[T, F] design).
type PointG2 struct {
	X, Y, Z towerfield.Fp2
}

// SetInfinity sets z to the identity element (0:1:0).
func (z *PointG2) SetInfinity(mod *big.Int) *PointG2 {
	z.X.SetZero(mod)
	z.Y.SetOne(mod)
	z.Z.SetZero(mod)
	return z
}

// IsInfinity reports whether z is the identity element.
func (z *PointG2) IsInfinity() towerfield.SecretBool {
	return z.Z.IsZero()
}

// Set copies x into z.
func (z *PointG2) Set(x *PointG2) *PointG2 {
	z.X.Set(&x.X)
	z.Y.Set(&x.Y)
	z.Z.Set(&x.Z)
	return z
}

// CCopy sets z = x iff ctl is true.
func (z *PointG2) CCopy(x *PointG2, ctl towerfield.SecretBool) *PointG2 {
	z.X.CCopy(&x.X, ctl)
	z.Y.CCopy(&x.Y, ctl)
	z.Z.CCopy(&x.Z, ctl)
	return z
}

// Neg sets z = -x.
func (z *PointG2) Neg(x *PointG2) *PointG2 {
	z.X.Set(&x.X)
	z.Y.Neg(&x.Y)
	z.Z.Set(&x.Z)
	return z
}

// CNeg negates z in place iff ctl is true.
func (z *PointG2) CNeg(ctl towerfield.SecretBool) *PointG2 {
	z.Y.CNeg(ctl)
	return z
}

// FromAffine builds a projective point from affine (x, y) in Fp2.
func (z *PointG2) FromAffine(x, y *towerfield.Fp2) *PointG2 {
	z.X.Set(x)
	z.Y.Set(y)
	z.Z.SetOne(x.C0.Mod())
	return z
}

// ToAffine converts z to affine (x, y), returning (0, 0) for infinity.
func (z *PointG2) ToAffine() (x, y towerfield.Fp2) {
	var zinv towerfield.Fp2
	zinv.Inverse(&z.Z)

	x.Mul(&z.X, &zinv)
	y.Mul(&z.Y, &zinv)

	inf := z.IsInfinity()
	x.CSetZero(inf)
	y.CSetZero(inf)
	return x, y
}

// Equality reports whether z and w represent the same projective point.
func (z *PointG2) Equality(w *PointG2) towerfield.SecretBool {
	var l, r towerfield.Fp2
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

// Sum sets z = x + y via the same RCB complete-addition formulas as
// PointG1.Sum, over Fp2.
func (z *PointG2) Sum(x, y *PointG2, b3 *towerfield.Fp2) *PointG2 {
	var t0, t1, t2, t3, t4, x3, y3, z3 towerfield.Fp2

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

// Madd sets z = x + y where y is affine, via Algorithm 8 over Fp2.
func (z *PointG2) Madd(x *PointG2, yx, yy *towerfield.Fp2, b3 *towerfield.Fp2) *PointG2 {
	var t0, t1, t2, t3, t4, x3, y3, z3 towerfield.Fp2

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

// Double sets z = 2x via Algorithm 9 over Fp2.
func (z *PointG2) Double(x *PointG2, b3 *towerfield.Fp2) *PointG2 {
	var t0, t1, t2, x3, y3, z3 towerfield.Fp2

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
func (z *PointG2) Diff(x, y *PointG2, b3 *towerfield.Fp2) *PointG2 {
	var negY PointG2
	negY.Neg(y)
	return z.Sum(x, &negY, b3)
}

// trySqrtYG2 is trySqrtYG1's Fp2 sibling: y = sqrt(x^3+bTwist) with the
// parity wantOdd asks for, using Fp2.LSB/Xor/CCopy throughout so the
// choice of square root never becomes a branch on secret data.
func trySqrtYG2(x *towerfield.Fp2, bTwist *towerfield.Fp2, wantOdd towerfield.SecretBool) (y towerfield.Fp2, isSquare towerfield.SecretBool) {
	var rhs towerfield.Fp2
	rhs.Square(x)
	rhs.Mul(&rhs, x)
	rhs.Add(&rhs, bTwist)

	isSquare = y.SqrtIfSquare(&rhs)

	var negY towerfield.Fp2
	negY.Neg(&y)
	oddMismatch := y.LSB().Xor(wantOdd)
	y.CCopy(&negY, oddMismatch)
	return y, isSquare
}

// TrySetFromX attempts to build a G2 point with the given affine x
// coordinate (over Fp2) and the y root matching wantOdd's parity,
// using the twist curve's b' = Params.BTwist since a=0 there as well.
// It returns a SecretBool reporting success; on failure z is left
// holding the point at infinity. This is PointG1.TrySetFromX's Fp2
// sibling, provided for every point type this module exposes, not just
// G1.
func (z *PointG2) TrySetFromX(mod *big.Int, x *towerfield.Fp2, bTwist *towerfield.Fp2, wantOdd towerfield.SecretBool) towerfield.SecretBool {
	y, isSquare := trySqrtYG2(x, bTwist, wantOdd)

	var candidate PointG2
	candidate.FromAffine(x, &y)
	z.SetInfinity(mod)
	z.CCopy(&candidate, isSquare)
	return isSquare
}

// TrySetFromXAndZ is TrySetFromX's two-argument form: on success it
// scales the resulting representative by zScale instead of leaving
// Z=1, producing (x*zScale, y*zScale, zScale).
func (z *PointG2) TrySetFromXAndZ(mod *big.Int, x *towerfield.Fp2, zScale *towerfield.Fp2, bTwist *towerfield.Fp2, wantOdd towerfield.SecretBool) towerfield.SecretBool {
	y, isSquare := trySqrtYG2(x, bTwist, wantOdd)

	var candidate PointG2
	candidate.X.Mul(x, zScale)
	candidate.Y.Mul(&y, zScale)
	candidate.Z.Set(zScale)

	z.SetInfinity(mod)
	z.CCopy(&candidate, isSquare)
	return isSquare
}

// G2Generator returns p's registered G2 generator, or
// ErrIncompleteParams if p has no twist registered (see the
// BLS12-377 and placeholder-curve entries in DESIGN.md).
func (p *Params) G2Generator() (*PointG2, error) {
	if p.Twist == NoTwist {
		return nil, ErrIncompleteParams
	}
	var x, y towerfield.Fp2
	x.C0.SetBigInt(p.Modulus, p.G2X0)
	x.C1.SetBigInt(p.Modulus, p.G2X1)
	y.C0.SetBigInt(p.Modulus, p.G2Y0)
	y.C1.SetBigInt(p.Modulus, p.G2Y1)

	var g PointG2
	g.FromAffine(&x, &y)
	return &g, nil
}
