package towerfield

import "math/big"

// Fp2 is an element a0 + a1*i of the quadratic extension Fp[i]/(i^2+1).
// Every method writes into the receiver using local temporaries for
// every intermediate, following the "func (z *T) Op(x, y *T) *T"
// convention used throughout this package, so the receiver may alias
// any operand with no heap churn.
type Fp2 struct {
	C0, C1 Fp
}

// SetZero sets z to 0 + 0*i.
func (z *Fp2) SetZero(mod *big.Int) *Fp2 {
	z.C0.SetZero(mod)
	z.C1.SetZero(mod)
	return z
}

// SetOne sets z to 1 + 0*i.
func (z *Fp2) SetOne(mod *big.Int) *Fp2 {
	z.C0.SetOne(mod)
	z.C1.SetZero(mod)
	return z
}

// Set copies x into z.
func (z *Fp2) Set(x *Fp2) *Fp2 {
	z.C0.Set(&x.C0)
	z.C1.Set(&x.C1)
	return z
}

// Add sets z = x + y, coordinatewise.
func (z *Fp2) Add(x, y *Fp2) *Fp2 {
	z.C0.Add(&x.C0, &y.C0)
	z.C1.Add(&x.C1, &y.C1)
	return z
}

// Sub sets z = x - y, coordinatewise.
func (z *Fp2) Sub(x, y *Fp2) *Fp2 {
	z.C0.Sub(&x.C0, &y.C0)
	z.C1.Sub(&x.C1, &y.C1)
	return z
}

// Neg sets z = -x, coordinatewise.
func (z *Fp2) Neg(x *Fp2) *Fp2 {
	z.C0.Neg(&x.C0)
	z.C1.Neg(&x.C1)
	return z
}

// Double sets z = 2x, coordinatewise.
func (z *Fp2) Double(x *Fp2) *Fp2 {
	z.C0.Double(&x.C0)
	z.C1.Double(&x.C1)
	return z
}

// Conj sets z = a0 - a1*i.
func (z *Fp2) Conj(x *Fp2) *Fp2 {
	c1 := x.C1
	z.C0.Set(&x.C0)
	z.C1.Neg(&c1)
	return z
}

// Mul sets z = x*y via Karatsuba's trick:
//
//	t0 = x0*y0, t1 = x1*y1, t2 = (x0+x1)(y0+y1)
//	z0 = t0 - t1, z1 = t2 - t0 - t1
func (z *Fp2) Mul(x, y *Fp2) *Fp2 {
	var t0, t1, t2, a, b Fp
	t0.Mul(&x.C0, &y.C0)
	t1.Mul(&x.C1, &y.C1)
	a.Add(&x.C0, &x.C1)
	b.Add(&y.C0, &y.C1)
	t2.Mul(&a, &b)

	z.C1.Sub(&t2, &t0)
	z.C1.Sub(&z.C1, &t1)
	z.C0.Sub(&t0, &t1)
	return z
}

// Square sets z = x^2 using the complex-squaring identity:
// (a0+a1*i)^2 = (a0+a1)(a0-a1) + 2*a0*a1*i.
func (z *Fp2) Square(x *Fp2) *Fp2 {
	var a, b, t Fp
	a.Add(&x.C0, &x.C1)
	b.Sub(&x.C0, &x.C1)
	t.Mul(&x.C0, &x.C1)

	z.C1.Double(&t)
	z.C0.Mul(&a, &b)
	return z
}

// Inverse sets z = x^-1 = (a0 - a1*i) / (a0^2 + a1^2). Behavior when x
// is zero is unspecified.
func (z *Fp2) Inverse(x *Fp2) *Fp2 {
	var t0, t1, denom Fp
	t0.Square(&x.C0)
	t1.Square(&x.C1)
	denom.Add(&t0, &t1)
	denom.Inverse(&denom)

	z.C1.Neg(&x.C1)
	z.C1.Mul(&z.C1, &denom)
	z.C0.Mul(&x.C0, &denom)
	return z
}

// MulByNonResidue sets z = (1+i)*x = (a0-a1) + (a0+a1)*i.
func (z *Fp2) MulByNonResidue(x *Fp2) *Fp2 {
	var a0 Fp
	a0.Set(&x.C0)
	z.C0.Sub(&x.C0, &x.C1)
	z.C1.Add(&a0, &x.C1)
	return z
}

// SqrtIfSquare attempts z = sqrt(x) in Fp[i]/(i^2+1) via the standard
// "complex method": writing x = a0 + a1*i, its norm a0^2+a1^2 is an Fp
// element, and when x is a square its square root can be recovered
// from a square root of the norm and one of the two candidate halves
// (a0+delta)/2, (a0-delta)/2 (exactly one of which is itself an Fp
// square whenever the norm is). Both candidates are computed
// unconditionally and merged with CCopy, the same masking idiom used
// throughout this package, so the choice of which half is square never
// becomes a Go if/else on secret data. Behavior on failure or when x is
// zero is unspecified, following the same contract as Fp.SqrtIfSquare.
func (z *Fp2) SqrtIfSquare(x *Fp2) SecretBool {
	mod := x.C0.Mod()

	var a0sq, a1sq, norm, delta Fp
	a0sq.Square(&x.C0)
	a1sq.Square(&x.C1)
	norm.Add(&a0sq, &a1sq)
	normIsSquare := delta.SqrtIfSquare(&norm)

	var two, twoInv Fp
	two.SetUint64(mod, 2)
	twoInv.Inverse(&two)

	var alphaPos, alphaNeg Fp
	alphaPos.Add(&x.C0, &delta)
	alphaPos.Mul(&alphaPos, &twoInv)
	alphaNeg.Sub(&x.C0, &delta)
	alphaNeg.Mul(&alphaNeg, &twoInv)

	var x0Pos, x0Neg Fp
	posIsSquare := x0Pos.SqrtIfSquare(&alphaPos)
	negIsSquare := x0Neg.SqrtIfSquare(&alphaNeg)

	var halfA1, x0PosInv, x1Pos Fp
	halfA1.Mul(&x.C1, &twoInv)
	x0PosInv.Inverse(&x0Pos)
	x1Pos.Mul(&halfA1, &x0PosInv)

	var x0NegInv, x1Neg Fp
	x0NegInv.Inverse(&x0Neg)
	x1Neg.Mul(&halfA1, &x0NegInv)

	var outC0, outC1 Fp
	outC0.CCopy(&x0Pos, posIsSquare)
	outC0.CCopy(&x0Neg, negIsSquare)
	outC1.CCopy(&x1Pos, posIsSquare)
	outC1.CCopy(&x1Neg, negIsSquare)

	z.C0.Set(&outC0)
	z.C1.Set(&outC1)
	return normIsSquare
}

// LSB returns the least-significant bit of x's real component (C0) as
// a SecretBool. This is the sign-selection convention TrySetFromX uses
// for G2 points, mirroring Fp.LSB one level up the tower rather than
// deriving a bit from both components.
func (x *Fp2) LSB() SecretBool {
	return x.C0.LSB()
}

// IsZero reports whether x is the zero element.
func (x *Fp2) IsZero() SecretBool {
	return x.C0.IsZero().And(x.C1.IsZero())
}

// Equal reports whether x and y hold the same value.
func (x *Fp2) Equal(y *Fp2) SecretBool {
	return x.C0.Equal(&y.C0).And(x.C1.Equal(&y.C1))
}

// CCopy sets z = x iff ctl is true.
func (z *Fp2) CCopy(x *Fp2, ctl SecretBool) *Fp2 {
	z.C0.CCopy(&x.C0, ctl)
	z.C1.CCopy(&x.C1, ctl)
	return z
}

// CSetZero sets z = 0 iff ctl is true.
func (z *Fp2) CSetZero(ctl SecretBool) *Fp2 {
	z.C0.CSetZero(ctl)
	z.C1.CSetZero(ctl)
	return z
}

// CSetOne sets z = 1 iff ctl is true.
func (z *Fp2) CSetOne(ctl SecretBool) *Fp2 {
	z.C0.CSetOne(ctl)
	z.C1.CSetZero(ctl)
	return z
}

// CNeg negates z in place iff ctl is true.
func (z *Fp2) CNeg(ctl SecretBool) *Fp2 {
	z.C0.CNeg(ctl)
	z.C1.CNeg(ctl)
	return z
}
