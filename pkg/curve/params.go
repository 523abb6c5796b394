// Package curve implements complete, constant-time short-Weierstrass
// point arithmetic (y^2 = x^3 + b, a = 0) in projective coordinates for
// the BN and BLS12 pairing-friendly curve families. Curves register
// their parameters into a runtime table so the same point-arithmetic
// code serves every curve registered below.
package curve

import (
	"errors"
	"math/big"

	"github.com/eth2030-tower/tower/pkg/towerfield"
)

// TwistKind selects how a G2 curve's b coefficient relates to its base
// field's non-residue: divided by it (D-twist) or multiplied by it
// (M-twist).
type TwistKind int

const (
	// NoTwist marks a curve with no registered G2 (only G1 is usable).
	NoTwist TwistKind = iota
	// DTwist: b_twist = b / xi.
	DTwist
	// MTwist: b_twist = b * xi.
	MTwist
)

// Params holds one curve's public parameters. It deliberately has no
// field for the short-Weierstrass "a" coefficient: this package only
// supports a=0 curves, so a curve with a≠0 simply has nowhere to
// register itself.
type Params struct {
	Name    string
	Modulus *big.Int

	// B is the G1 curve's b coefficient, y^2 = x^3 + B, in Fp.
	B *big.Int

	// Twist selects how BTwist was derived from B; NoTwist means this
	// curve has no usable G2 in this registry (BTwist, generator G2
	// fields are left nil).
	Twist TwistKind
	// BTwist is the G2 twist curve's b coefficient in Fp2, present only
	// when Twist != NoTwist.
	BTwist *towerfield.Fp2

	G1X, G1Y *big.Int

	// G2 generator coordinates in Fp2, present only when Twist != NoTwist.
	G2X0, G2X1, G2Y0, G2Y1 *big.Int
}

// ErrUnknownCurve is returned by Lookup when no curve is registered
// under the requested name. It is this package's one recoverable
// runtime error; the point arithmetic itself never fails.
var ErrUnknownCurve = errors.New("curve: unknown curve name")

// ErrIncompleteParams is returned by G2-constructing helpers when the
// requested curve's Params has Twist == NoTwist, i.e. its G2 was never
// populated (see the BN446/FKM12-447/BLS12-461/BN462 placeholder
// entries and the BLS12-377 G2 omission, both recorded in DESIGN.md).
var ErrIncompleteParams = errors.New("curve: curve has no registered G2 twist")

var registry = map[string]*Params{}

// Register adds p to the registry under p.Name, overwriting any
// previous entry of the same name. It is meant to be called from
// package-level init functions in the params_*.go files.
func Register(p *Params) {
	registry[p.Name] = p
}

// Lookup returns the registered Params for name, or ErrUnknownCurve.
func Lookup(name string) (*Params, error) {
	p, ok := registry[name]
	if !ok {
		return nil, ErrUnknownCurve
	}
	return p, nil
}

// Names returns the names of every registered curve, in no particular
// order, for use by tests that want to range over "every curve we
// know about" without hardcoding the list twice.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
