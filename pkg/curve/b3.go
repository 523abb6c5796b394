package curve

import "github.com/eth2030-tower/tower/pkg/towerfield"

// B3G1 returns 3*p.B as an Fp value, the constant every RCB addition
// and doubling call on G1 needs. Callers compute it once per curve and
// reuse it across many point operations rather than recomputing 3*b
// inside the hot addition formula.
func (p *Params) B3G1() *towerfield.Fp {
	var b, three, b3 towerfield.Fp
	b.SetBigInt(p.Modulus, p.B)
	three.SetUint64(p.Modulus, 3)
	b3.Mul(&b, &three)
	return &b3
}

// B3G2 returns 3*p.BTwist as an Fp2 value. It panics if this curve has
// no registered twist (Twist == NoTwist); callers should check that
// with p.Twist before calling, or handle ErrIncompleteParams from a
// higher-level constructor instead.
func (p *Params) B3G2() *towerfield.Fp2 {
	if p.Twist == NoTwist {
		panic("curve: " + p.Name + " has no registered G2 twist")
	}
	var three towerfield.Fp
	three.SetUint64(p.Modulus, 3)

	var threeFp2 towerfield.Fp2
	threeFp2.SetZero(p.Modulus)
	threeFp2.C0.Set(&three)

	var b3 towerfield.Fp2
	b3.Mul(p.BTwist, &threeFp2)
	return &b3
}
