package checked

// At validates i against the bounds of s via [Expects], then returns a
// pointer to the element, so callers can read or mutate through the
// handle:
//
//	*checked.At(buf, i) = b
//
// Fixed-size arrays are indexed as a[:]. There is no call path that
// skips the bounds check; that is the entire contract.
func At[S ~[]E, E any](s S, i int) *E {
	Expects(i >= 0 && i < len(s))
	return &s[i]
}

// AtString validates i against the bounds of s via [Expects], then
// returns the byte at that position. Strings are immutable, so the
// result is necessarily a copy.
func AtString(s string, i int) byte {
	Expects(i >= 0 && i < len(s))
	return s[i]
}
