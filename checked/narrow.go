package checked

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Number is the set of types [Trunc], [Narrow], and [MustNarrow] convert
// between: every integer and floating-point type, including named types.
type Number interface {
	constraints.Integer | constraints.Float
}

// ErrNarrowing reports that a checked narrowing conversion would change
// the value. It carries no detail beyond its identity.
var ErrNarrowing = errors.New("checked: narrowing conversion changes value")

// Trunc converts v to T with no validation. It is exactly T(v); the call
// exists to document, and make greppable, that truncation at this site is
// intentional. Constant expressions should keep using plain conversions,
// which the compiler evaluates.
func Trunc[T, U Number](v U) T {
	return T(v)
}

// Narrow converts v to T, returning [ErrNarrowing] if the conversion
// changes the value. Two independent checks are applied:
//
// Round trip: converting back to U must reproduce v. This catches lost
// magnitude, lost precision, and NaN (which never compares equal to
// itself). Out-of-range float-to-integer conversions produce an
// implementation-specific result in Go; the round trip classifies them
// as narrowing failures regardless of what that result is.
//
// Sign: the converted value must lie on the same side of zero as the
// original. A value can round-trip numerically and still flip sign when
// signedness differs, e.g. uint8(200) -> int8(-56) -> uint8(200). The
// check is deliberately kept as its own branch rather than folded into
// the round trip.
func Narrow[T, U Number](v U) (T, error) {
	t := T(v)

	if U(t) != v {
		return 0, ErrNarrowing
	}

	if (t < 0) != (v < 0) {
		return 0, ErrNarrowing
	}

	return t, nil
}

// MustNarrow is [Narrow] that panics with [ErrNarrowing] when the
// conversion would change the value. Use it where a failed narrowing is
// a programming error rather than an input condition.
func MustNarrow[T, U Number](v U) T {
	t, err := Narrow[T](v)
	if err != nil {
		panic(err)
	}
	return t
}
