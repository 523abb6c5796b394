package towerfield

import (
	"math/big"
	"math/rand"
	"testing"
)

func randFp6(r *rand.Rand) *Fp6 {
	var z Fp6
	z.C0 = *randFp2(r)
	z.C1 = *randFp2(r)
	z.C2 = *randFp2(r)
	return &z
}

func TestFp6MulCommutative(t *testing.T) {
	r := rand.New(rand.NewSource(20))
	for i := 0; i < 20; i++ {
		a := randFp6(r)
		b := randFp6(r)
		var ab, ba Fp6
		ab.Mul(a, b)
		ba.Mul(b, a)
		if !ab.Equal(&ba).Declassify() {
			t.Fatalf("a*b != b*a")
		}
	}
}

func TestFp6SquareMatchesMul(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	for i := 0; i < 20; i++ {
		a := randFp6(r)
		var sq, mul Fp6
		sq.Square(a)
		mul.Mul(a, a)
		if !sq.Equal(&mul).Declassify() {
			t.Fatalf("a^2 != a*a")
		}
	}
}

func TestFp6MulInverseIsOne(t *testing.T) {
	r := rand.New(rand.NewSource(22))
	for i := 0; i < 20; i++ {
		a := randFp6(r)
		if a.IsZero().Declassify() {
			continue
		}
		var inv, prod, one Fp6
		inv.Inverse(a)
		prod.Mul(a, &inv)
		one.SetOne(testModulus)
		if !prod.Equal(&one).Declassify() {
			t.Fatalf("a*a^-1 != 1")
		}
	}
}

func TestFp6MulByNonResidueMatchesShift(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	for i := 0; i < 20; i++ {
		a := randFp6(r)
		var got Fp6
		got.MulByNonResidue(a)

		var want Fp2
		want.MulByNonResidue(&a.C2)
		if !got.C0.Equal(&want).Declassify() {
			t.Fatalf("MulByNonResidue: c0 mismatch")
		}
		if !got.C1.Equal(&a.C0).Declassify() {
			t.Fatalf("MulByNonResidue: c1 mismatch")
		}
		if !got.C2.Equal(&a.C1).Declassify() {
			t.Fatalf("MulByNonResidue: c2 mismatch")
		}
	}
}

// TestFp6SeedScenarioBN254 checks square() against the concrete
// fixed-value scenarios (square(1)=1, square(2)=4, square(3)=9,
// square(-3)=9) with every coordinate embedded purely in C0's real
// component, reduced against BN254's field modulus (testModulus).
func TestFp6SeedScenarioBN254(t *testing.T) {
	cases := []struct {
		name  string
		in    int64
		wantC int64
	}{
		{"BN254 square(1)=1", 1, 1},
		{"BN254 square(2)=4", 2, 4},
		{"BN254 square(3)=9", 3, 9},
		{"BN254 square(-3)=9", -3, 9},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var in, want, got Fp6
			in.SetZero(testModulus)
			in.C0.C0.SetBigInt(testModulus, big.NewInt(c.in))
			want.SetZero(testModulus)
			want.C0.C0.SetBigInt(testModulus, big.NewInt(c.wantC))

			got.Square(&in)
			if !got.Equal(&want).Declassify() {
				t.Fatalf("%s: got C0=%+v C1=%+v C2=%+v", c.name, got.C0, got.C1, got.C2)
			}
		})
	}
}

func TestFp6AddAssociative(t *testing.T) {
	r := rand.New(rand.NewSource(25))
	for i := 0; i < 20; i++ {
		a, b, c := randFp6(r), randFp6(r), randFp6(r)
		var ab, abc, bc, abc2 Fp6
		ab.Add(a, b)
		abc.Add(&ab, c)
		bc.Add(b, c)
		abc2.Add(a, &bc)
		if !abc.Equal(&abc2).Declassify() {
			t.Fatalf("(a+b)+c != a+(b+c)")
		}
	}
}

func TestFp6MulAssociative(t *testing.T) {
	r := rand.New(rand.NewSource(26))
	for i := 0; i < 20; i++ {
		a, b, c := randFp6(r), randFp6(r), randFp6(r)
		var ab, abc, bc, abc2 Fp6
		ab.Mul(a, b)
		abc.Mul(&ab, c)
		bc.Mul(b, c)
		abc2.Mul(a, &bc)
		if !abc.Equal(&abc2).Declassify() {
			t.Fatalf("(a*b)*c != a*(b*c)")
		}
	}
}

func TestFp6AddZeroIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(27))
	var zero Fp6
	zero.SetZero(testModulus)
	for i := 0; i < 20; i++ {
		a := randFp6(r)
		var sum Fp6
		sum.Add(a, &zero)
		if !sum.Equal(a).Declassify() {
			t.Fatalf("a+0 != a")
		}
	}
}

func TestFp6MulZeroAnnihilates(t *testing.T) {
	r := rand.New(rand.NewSource(28))
	var zero Fp6
	zero.SetZero(testModulus)
	for i := 0; i < 20; i++ {
		a := randFp6(r)
		var prod Fp6
		prod.Mul(a, &zero)
		if !prod.Equal(&zero).Declassify() {
			t.Fatalf("a*0 != 0")
		}
	}
}

func TestFp6MulOneIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(29))
	var one Fp6
	one.SetOne(testModulus)
	for i := 0; i < 20; i++ {
		a := randFp6(r)
		var prod Fp6
		prod.Mul(a, &one)
		if !prod.Equal(a).Declassify() {
			t.Fatalf("a*1 != a")
		}
	}
}

func TestFp6Distributive(t *testing.T) {
	r := rand.New(rand.NewSource(24))
	for i := 0; i < 20; i++ {
		a := randFp6(r)
		b := randFp6(r)
		c := randFp6(r)

		var lhs, sum, rhs, ab, ac Fp6
		sum.Add(b, c)
		lhs.Mul(a, &sum)

		ab.Mul(a, b)
		ac.Mul(a, c)
		rhs.Add(&ab, &ac)

		if !lhs.Equal(&rhs).Declassify() {
			t.Fatalf("a*(b+c) != a*b+a*c")
		}
	}
}
