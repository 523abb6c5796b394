package towerfield

// SecretBool is a data-carrying constant-time boolean. It is either all
// zero bits (false) or all one bits (true) and is meant to drive
// conditional-copy style data movement (CCopy, CSetZero, CSetOne, CNeg)
// rather than Go control flow. Nothing in this package converts a
// SecretBool into an ordinary bool except Declassify, which callers use
// only at the API edge once secrecy no longer matters.
type SecretBool uint64

const (
	secretFalse SecretBool = 0
	secretTrue  SecretBool = ^SecretBool(0)
)

// newSecretBool is the one seam where an ordinary bool becomes a
// SecretBool. It exists because the reference Fp backing this package
// is math/big based (see fp.go) and therefore already branches on the
// bit it is being asked to hide; a hardened, fixed-width Fp backend
// would produce SecretBool values directly out of its limb comparisons
// with no such seam.
func newSecretBool(cond bool) SecretBool {
	if cond {
		return secretTrue
	}
	return secretFalse
}

// Declassify exposes the boolean value for ordinary control flow. Use it
// only at API boundaries, never to decide the shape of an arithmetic
// operation inside this package.
func (b SecretBool) Declassify() bool {
	return b != secretFalse
}

// And is the constant-time conjunction of two SecretBool values.
func (b SecretBool) And(c SecretBool) SecretBool {
	return b & c
}

// Or is the constant-time disjunction of two SecretBool values.
func (b SecretBool) Or(c SecretBool) SecretBool {
	return b | c
}

// Not is the constant-time negation of a SecretBool value.
func (b SecretBool) Not() SecretBool {
	return ^b
}

// Xor is the constant-time exclusive-or of two SecretBool values, true
// exactly when b and c disagree.
func (b SecretBool) Xor(c SecretBool) SecretBool {
	return b ^ c
}
