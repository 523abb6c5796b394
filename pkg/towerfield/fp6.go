package towerfield

import "math/big"

// Fp6 is an element c0 + c1*v + c2*v^2 of the sextic extension
// Fp2[v]/(v^3 - (1+i)), completing the tower one level above Fp2. It
// uses the standard 6-multiplication Karatsuba-like scheme for Mul and
// the Chung-Hasan SQR2 identity for Square, in the same
// destination-receiver style used throughout this package.
type Fp6 struct {
	C0, C1, C2 Fp2
}

// SetZero sets z to the zero element.
func (z *Fp6) SetZero(mod *big.Int) *Fp6 {
	z.C0.SetZero(mod)
	z.C1.SetZero(mod)
	z.C2.SetZero(mod)
	return z
}

// SetOne sets z to the multiplicative identity.
func (z *Fp6) SetOne(mod *big.Int) *Fp6 {
	z.C0.SetOne(mod)
	z.C1.SetZero(mod)
	z.C2.SetZero(mod)
	return z
}

// Set copies x into z.
func (z *Fp6) Set(x *Fp6) *Fp6 {
	z.C0.Set(&x.C0)
	z.C1.Set(&x.C1)
	z.C2.Set(&x.C2)
	return z
}

// Add sets z = x + y, coordinatewise.
func (z *Fp6) Add(x, y *Fp6) *Fp6 {
	z.C0.Add(&x.C0, &y.C0)
	z.C1.Add(&x.C1, &y.C1)
	z.C2.Add(&x.C2, &y.C2)
	return z
}

// Sub sets z = x - y, coordinatewise.
func (z *Fp6) Sub(x, y *Fp6) *Fp6 {
	z.C0.Sub(&x.C0, &y.C0)
	z.C1.Sub(&x.C1, &y.C1)
	z.C2.Sub(&x.C2, &y.C2)
	return z
}

// Neg sets z = -x, coordinatewise.
func (z *Fp6) Neg(x *Fp6) *Fp6 {
	z.C0.Neg(&x.C0)
	z.C1.Neg(&x.C1)
	z.C2.Neg(&x.C2)
	return z
}

// Double sets z = 2x, coordinatewise.
func (z *Fp6) Double(x *Fp6) *Fp6 {
	z.C0.Double(&x.C0)
	z.C1.Double(&x.C1)
	z.C2.Double(&x.C2)
	return z
}

// Mul sets z = x*y via the extension-field Karatsuba scheme:
//
//	v0 = x0*y0, v1 = x1*y1, v2 = x2*y2
//	c0 = v0 + xi*((x1+x2)(y1+y2) - v1 - v2)
//	c1 = (x0+x1)(y0+y1) - v0 - v1 + xi*v2
//	c2 = (x0+x2)(y0+y2) - v0 - v2 + v1
func (z *Fp6) Mul(x, y *Fp6) *Fp6 {
	var v0, v1, v2, t0, t1, t2, t3 Fp2

	v0.Mul(&x.C0, &y.C0)
	v1.Mul(&x.C1, &y.C1)
	v2.Mul(&x.C2, &y.C2)

	t0.Add(&x.C1, &x.C2)
	t1.Add(&y.C1, &y.C2)
	t0.Mul(&t0, &t1)
	t0.Sub(&t0, &v1)
	t0.Sub(&t0, &v2)
	t0.MulByNonResidue(&t0)
	t0.Add(&t0, &v0) // t0 = c0

	t1.Add(&x.C0, &x.C1)
	t2.Add(&y.C0, &y.C1)
	t1.Mul(&t1, &t2)
	t1.Sub(&t1, &v0)
	t1.Sub(&t1, &v1)
	t3.MulByNonResidue(&v2)
	t1.Add(&t1, &t3) // t1 = c1

	t2.Add(&x.C0, &x.C2)
	t3.Add(&y.C0, &y.C2)
	t2.Mul(&t2, &t3)
	t2.Sub(&t2, &v0)
	t2.Sub(&t2, &v2)
	t2.Add(&t2, &v1) // t2 = c2

	z.C0.Set(&t0)
	z.C1.Set(&t1)
	z.C2.Set(&t2)
	return z
}

// Square sets z = x^2 using the Chung-Hasan SQR2 identity:
//
//	t0=x0^2, t1=2*x0*x1, t2=(x0-x1+x2)^2, t3=2*x1*x2, t4=x2^2
//	c0 = t0 + xi*t3, c1 = t1 + xi*t4, c2 = t1+t2+t3-t0-t4
func (z *Fp6) Square(x *Fp6) *Fp6 {
	var t0, t1, t2, t3, t4, t5, c0, c1, c2 Fp2

	t0.Square(&x.C0)
	t1.Mul(&x.C0, &x.C1)
	t1.Double(&t1)
	t2.Sub(&x.C0, &x.C1)
	t2.Add(&t2, &x.C2)
	t2.Square(&t2)
	t3.Mul(&x.C1, &x.C2)
	t3.Double(&t3)
	t4.Square(&x.C2)

	t5.MulByNonResidue(&t3)
	c0.Add(&t0, &t5)

	t5.MulByNonResidue(&t4)
	c1.Add(&t1, &t5)

	t1.Add(&t1, &t2)
	t1.Add(&t1, &t3)
	t0.Add(&t0, &t4)
	c2.Sub(&t1, &t0)

	z.C0.Set(&c0)
	z.C1.Set(&c1)
	z.C2.Set(&c2)
	return z
}

// Inverse sets z = x^-1 via the standard cubic-extension formula:
//
//	t0 = x0^2 - xi*x1*x2
//	t1 = xi*x2^2 - x0*x1
//	t2 = x1^2 - x0*x2
//	f  = x0*t0 + xi*x2*t1 + xi*x1*t2
//	z  = (t0/f, t1/f, t2/f)
//
// Behavior when x is zero is unspecified.
func (z *Fp6) Inverse(x *Fp6) *Fp6 {
	var t0, t1, t2, a, b, f, finv Fp2

	t0.Square(&x.C0)
	a.Mul(&x.C1, &x.C2)
	a.MulByNonResidue(&a)
	t0.Sub(&t0, &a)

	t1.Square(&x.C2)
	t1.MulByNonResidue(&t1)
	b.Mul(&x.C0, &x.C1)
	t1.Sub(&t1, &b)

	t2.Square(&x.C1)
	b.Mul(&x.C0, &x.C2)
	t2.Sub(&t2, &b)

	a.Mul(&x.C0, &t0)
	b.Mul(&x.C2, &t1)
	b.MulByNonResidue(&b)
	a.Add(&a, &b)
	b.Mul(&x.C1, &t2)
	b.MulByNonResidue(&b)
	f.Add(&a, &b)

	finv.Inverse(&f)
	z.C0.Mul(&t0, &finv)
	z.C1.Mul(&t1, &finv)
	z.C2.Mul(&t2, &finv)
	return z
}

// MulByNonResidue sets z = v*x = (xi*x2, x0, x1), shifting coordinates
// up one v-power and folding the top coordinate through xi.
func (z *Fp6) MulByNonResidue(x *Fp6) *Fp6 {
	var c1, c2 Fp2
	c1.Set(&x.C0)
	c2.Set(&x.C1)
	var t Fp2
	t.MulByNonResidue(&x.C2)
	z.C0.Set(&t)
	z.C1.Set(&c1)
	z.C2.Set(&c2)
	return z
}

// IsZero reports whether x is the zero element.
func (x *Fp6) IsZero() SecretBool {
	return x.C0.IsZero().And(x.C1.IsZero()).And(x.C2.IsZero())
}

// Equal reports whether x and y hold the same value.
func (x *Fp6) Equal(y *Fp6) SecretBool {
	return x.C0.Equal(&y.C0).And(x.C1.Equal(&y.C1)).And(x.C2.Equal(&y.C2))
}

// CCopy sets z = x iff ctl is true.
func (z *Fp6) CCopy(x *Fp6, ctl SecretBool) *Fp6 {
	z.C0.CCopy(&x.C0, ctl)
	z.C1.CCopy(&x.C1, ctl)
	z.C2.CCopy(&x.C2, ctl)
	return z
}
