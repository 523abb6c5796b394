package curve

// BN446, FKM12-447, BLS12-461 and BN462 are registered by name only,
// with nil parameter fields, since curve parameter selection for these
// families is outside this package's scope. A caller asking Lookup for
// one of these names gets ErrIncompleteParams from G2Generator, and
// G1 helpers such as B3G1 panic on the nil modulus, instead of silently
// running with a fabricated constant. Supplying real values later is a matter of
// filling in one Params literal each; nothing else in this package
// changes.
func init() {
	for _, name := range []string{"bn446", "fkm12-447", "bls12-461", "bn462"} {
		Register(&Params{Name: name})
	}
}
