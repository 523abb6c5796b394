package curve

import "github.com/eth2030-tower/tower/pkg/towerfield"

// BatchToAffineG1 converts every point in pts to affine coordinates
// using a single shared inversion (Montgomery's trick), returning
// parallel X, Y slices the same length as pts. Points at infinity map
// to the sentinel (0, 0) pair, matching PointG1.ToAffine's convention,
// keeping the output aligned index-for-index with the input.
//
// Any point whose Z is zero has its Z coordinate temporarily replaced
// by 1 for the purposes of the running product, so the shared
// inversion never divides by zero; the true zero is restored afterward
// and its affine output forced to (0, 0).
func BatchToAffineG1(pts []PointG1) (xs, ys []towerfield.Fp) {
	n := len(pts)
	xs = make([]towerfield.Fp, n)
	ys = make([]towerfield.Fp, n)
	if n == 0 {
		return xs, ys
	}
	mod := pts[0].Z.Mod()

	zs := make([]towerfield.Fp, n)
	isInf := make([]towerfield.SecretBool, n)
	for i := range pts {
		isInf[i] = pts[i].IsInfinity()
		zs[i].CCopy(&pts[i].Z, isInf[i].Not())
		var one towerfield.Fp
		one.SetOne(mod)
		zs[i].CCopy(&one, isInf[i])
	}

	prefix := make([]towerfield.Fp, n+1)
	prefix[0].SetOne(mod)
	for i := 0; i < n; i++ {
		prefix[i+1].Mul(&prefix[i], &zs[i])
	}

	var acc towerfield.Fp
	acc.Inverse(&prefix[n])

	for i := n - 1; i >= 0; i-- {
		var zinv towerfield.Fp
		zinv.Mul(&acc, &prefix[i])
		acc.Mul(&acc, &zs[i])

		xs[i].Mul(&pts[i].X, &zinv)
		ys[i].Mul(&pts[i].Y, &zinv)

		xs[i].CSetZero(isInf[i])
		ys[i].CSetZero(isInf[i])
	}
	return xs, ys
}

// BatchToAffineG2 is BatchToAffineG1's Fp2 sibling.
func BatchToAffineG2(pts []PointG2) (xs, ys []towerfield.Fp2) {
	n := len(pts)
	xs = make([]towerfield.Fp2, n)
	ys = make([]towerfield.Fp2, n)
	if n == 0 {
		return xs, ys
	}
	mod := pts[0].Z.C0.Mod()

	zs := make([]towerfield.Fp2, n)
	isInf := make([]towerfield.SecretBool, n)
	for i := range pts {
		isInf[i] = pts[i].IsInfinity()
		zs[i].CCopy(&pts[i].Z, isInf[i].Not())
		var one towerfield.Fp2
		one.SetOne(mod)
		zs[i].CCopy(&one, isInf[i])
	}

	prefix := make([]towerfield.Fp2, n+1)
	prefix[0].SetOne(mod)
	for i := 0; i < n; i++ {
		prefix[i+1].Mul(&prefix[i], &zs[i])
	}

	var acc towerfield.Fp2
	acc.Inverse(&prefix[n])

	for i := n - 1; i >= 0; i-- {
		var zinv towerfield.Fp2
		zinv.Mul(&acc, &prefix[i])
		acc.Mul(&acc, &zs[i])

		xs[i].Mul(&pts[i].X, &zinv)
		ys[i].Mul(&pts[i].Y, &zinv)

		xs[i].CSetZero(isInf[i])
		ys[i].CSetZero(isInf[i])
	}
	return xs, ys
}
