package curve

import (
	"testing"

	"github.com/eth2030-tower/tower/pkg/towerfield"
)

func mustLookupG2(t *testing.T, name string) *Params {
	t.Helper()
	p := mustLookup(t, name)
	if p.Twist == NoTwist {
		t.Skipf("%s has no registered G2 twist", name)
	}
	return p
}

func TestG2GeneratorOnCurve(t *testing.T) {
	for _, name := range []string{"bn254", "bls12-381"} {
		p := mustLookupG2(t, name)
		var g PointG2
		var x, y towerfield.Fp2
		x.C0.SetBigInt(p.Modulus, p.G2X0)
		x.C1.SetBigInt(p.Modulus, p.G2X1)
		y.C0.SetBigInt(p.Modulus, p.G2Y0)
		y.C1.SetBigInt(p.Modulus, p.G2Y1)
		g.FromAffine(&x, &y)

		var x2, x3, y2 towerfield.Fp2
		x2.Square(&g.X)
		x3.Mul(&x2, &g.X)
		y2.Square(&g.Y)
		x3.Add(&x3, p.BTwist)

		if !y2.Equal(&x3).Declassify() {
			t.Fatalf("%s: G2 generator not on twist curve", name)
		}
	}
}

func TestG2DoubleMatchesAdd(t *testing.T) {
	for _, name := range []string{"bn254", "bls12-381"} {
		p := mustLookupG2(t, name)
		b3 := p.B3G2()
		var x, y towerfield.Fp2
		x.C0.SetBigInt(p.Modulus, p.G2X0)
		x.C1.SetBigInt(p.Modulus, p.G2X1)
		y.C0.SetBigInt(p.Modulus, p.G2Y0)
		y.C1.SetBigInt(p.Modulus, p.G2Y1)

		var g, sum, dbl PointG2
		g.FromAffine(&x, &y)
		sum.Sum(&g, &g, b3)
		dbl.Double(&g, b3)

		if !sum.Equality(&dbl).Declassify() {
			t.Fatalf("%s: G2: G+G != Double(G)", name)
		}
	}
}

func TestG2AddNegationIsInfinity(t *testing.T) {
	for _, name := range []string{"bn254", "bls12-381"} {
		p := mustLookupG2(t, name)
		b3 := p.B3G2()
		var x, y towerfield.Fp2
		x.C0.SetBigInt(p.Modulus, p.G2X0)
		x.C1.SetBigInt(p.Modulus, p.G2X1)
		y.C0.SetBigInt(p.Modulus, p.G2Y0)
		y.C1.SetBigInt(p.Modulus, p.G2Y1)

		var g, negG, sum PointG2
		g.FromAffine(&x, &y)
		negG.Neg(&g)
		sum.Sum(&g, &negG, b3)

		if !sum.IsInfinity().Declassify() {
			t.Fatalf("%s: G2: G+(-G) != infinity", name)
		}
	}
}

func TestG2AddInfinityIsTwoSidedIdentity(t *testing.T) {
	for _, name := range []string{"bn254", "bls12-381"} {
		p := mustLookupG2(t, name)
		b3 := p.B3G2()
		var x, y towerfield.Fp2
		x.C0.SetBigInt(p.Modulus, p.G2X0)
		x.C1.SetBigInt(p.Modulus, p.G2X1)
		y.C0.SetBigInt(p.Modulus, p.G2Y0)
		y.C1.SetBigInt(p.Modulus, p.G2Y1)

		var g, inf, sum PointG2
		g.FromAffine(&x, &y)
		inf.SetInfinity(p.Modulus)
		sum.Sum(&inf, &g, b3)

		if !sum.Equality(&g).Declassify() {
			t.Fatalf("%s: G2: infinity+G != G", name)
		}

		sum.Sum(&g, &inf, b3)
		if !sum.Equality(&g).Declassify() {
			t.Fatalf("%s: G2: G+infinity != G", name)
		}
	}
}

func TestG2AddCommutativeDistinctPoints(t *testing.T) {
	for _, name := range []string{"bn254", "bls12-381"} {
		p := mustLookupG2(t, name)
		b3 := p.B3G2()
		var x, y towerfield.Fp2
		x.C0.SetBigInt(p.Modulus, p.G2X0)
		x.C1.SetBigInt(p.Modulus, p.G2X1)
		y.C0.SetBigInt(p.Modulus, p.G2Y0)
		y.C1.SetBigInt(p.Modulus, p.G2Y1)

		var g, q, pq, qp PointG2
		g.FromAffine(&x, &y)
		q.Double(&g, b3) // q = 2G, distinct from g

		pq.Sum(&g, &q, b3)
		qp.Sum(&q, &g, b3)
		if !pq.Equality(&qp).Declassify() {
			t.Fatalf("%s: G2: P+Q != Q+P for distinct P, Q", name)
		}
	}
}

func TestG2AddAssociative(t *testing.T) {
	for _, name := range []string{"bn254", "bls12-381"} {
		p := mustLookupG2(t, name)
		b3 := p.B3G2()
		var x, y towerfield.Fp2
		x.C0.SetBigInt(p.Modulus, p.G2X0)
		x.C1.SetBigInt(p.Modulus, p.G2X1)
		y.C0.SetBigInt(p.Modulus, p.G2Y0)
		y.C1.SetBigInt(p.Modulus, p.G2Y1)

		var g, q, r PointG2
		g.FromAffine(&x, &y)
		q.Double(&g, b3)  // q = 2G
		r.Sum(&g, &q, b3) // r = 3G

		var pq, pqr, qr, pqr2 PointG2
		pq.Sum(&g, &q, b3)
		pqr.Sum(&pq, &r, b3)
		qr.Sum(&q, &r, b3)
		pqr2.Sum(&g, &qr, b3)

		if !pqr.Equality(&pqr2).Declassify() {
			t.Fatalf("%s: G2: (P+Q)+R != P+(Q+R)", name)
		}
	}
}

func TestG2GeneratorIncompleteParams(t *testing.T) {
	p, err := Lookup("bls12-377")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if _, err := p.G2Generator(); err != ErrIncompleteParams {
		t.Fatalf("expected ErrIncompleteParams, got %v", err)
	}
}

func TestG2GeneratorMatchesManualConstruction(t *testing.T) {
	p := mustLookupG2(t, "bn254")
	g, err := p.G2Generator()
	if err != nil {
		t.Fatalf("G2Generator: %v", err)
	}

	var x, y towerfield.Fp2
	x.C0.SetBigInt(p.Modulus, p.G2X0)
	x.C1.SetBigInt(p.Modulus, p.G2X1)
	y.C0.SetBigInt(p.Modulus, p.G2Y0)
	y.C1.SetBigInt(p.Modulus, p.G2Y1)
	var want PointG2
	want.FromAffine(&x, &y)

	if !g.Equality(&want).Declassify() {
		t.Fatalf("G2Generator produced wrong point")
	}
}

func TestG2TrySetFromXGenerator(t *testing.T) {
	for _, name := range []string{"bn254", "bls12-381"} {
		p := mustLookupG2(t, name)
		var x, y towerfield.Fp2
		x.C0.SetBigInt(p.Modulus, p.G2X0)
		x.C1.SetBigInt(p.Modulus, p.G2X1)
		y.C0.SetBigInt(p.Modulus, p.G2Y0)
		y.C1.SetBigInt(p.Modulus, p.G2Y1)

		wantOdd := towerfield.SecretBool(0)
		if p.G2Y0.Bit(0) == 1 {
			wantOdd = towerfield.SecretBool(^uint64(0))
		}

		var candidate PointG2
		ok := candidate.TrySetFromX(p.Modulus, &x, p.BTwist, wantOdd)
		if !ok.Declassify() {
			t.Fatalf("%s: G2 TrySetFromX failed on generator's own x", name)
		}

		var g PointG2
		g.FromAffine(&x, &y)
		if !candidate.Equality(&g).Declassify() {
			t.Fatalf("%s: G2 TrySetFromX produced wrong y", name)
		}
	}
}

func TestG2TrySetFromXAndZGenerator(t *testing.T) {
	for _, name := range []string{"bn254", "bls12-381"} {
		p := mustLookupG2(t, name)
		var x, y towerfield.Fp2
		x.C0.SetBigInt(p.Modulus, p.G2X0)
		x.C1.SetBigInt(p.Modulus, p.G2X1)
		y.C0.SetBigInt(p.Modulus, p.G2Y0)
		y.C1.SetBigInt(p.Modulus, p.G2Y1)

		wantOdd := towerfield.SecretBool(0)
		if p.G2Y0.Bit(0) == 1 {
			wantOdd = towerfield.SecretBool(^uint64(0))
		}

		var zScale towerfield.Fp2
		zScale.C0.SetUint64(p.Modulus, 7)
		zScale.C1.SetUint64(p.Modulus, 3)

		var candidate PointG2
		ok := candidate.TrySetFromXAndZ(p.Modulus, &x, &zScale, p.BTwist, wantOdd)
		if !ok.Declassify() {
			t.Fatalf("%s: G2 TrySetFromXAndZ failed on generator's own x", name)
		}

		var g PointG2
		g.FromAffine(&x, &y)
		if !candidate.Equality(&g).Declassify() {
			t.Fatalf("%s: G2 TrySetFromXAndZ produced a different affine point", name)
		}
		if !candidate.Z.Equal(&zScale).Declassify() {
			t.Fatalf("%s: G2 TrySetFromXAndZ did not scale Z by zScale", name)
		}
	}
}

func TestG2B3PanicsWithoutTwist(t *testing.T) {
	p, err := Lookup("bls12-377")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic calling B3G2 on a curve with no twist")
		}
	}()
	p.B3G2()
}
