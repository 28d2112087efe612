// Package checked provides checked numeric narrowing and bounds-checked
// element access.
//
// Go's numeric conversions are silent: int8(i) truncates, uint8(n) wraps,
// and float32(f) rounds, all without complaint. This package makes the
// lossy cases explicit:
//
//   - [Trunc]: an unchecked conversion that marks intentional truncation
//     at the call site, so every deliberate lossy cast is searchable.
//   - [Narrow]: a checked conversion that returns [ErrNarrowing] when the
//     value does not survive the round trip or silently flips sign across
//     a signed/unsigned boundary.
//   - [MustNarrow]: [Narrow] that panics instead of returning the error.
//   - [At] and [AtString]: positional access that validates the index
//     before every element read, with no unchecked path.
//   - [NotNil]: pointer validation for mandatory arguments.
//
// Bounds and nil checks are delegated to [Expects], a replaceable
// precondition hook that panics by default. Hosts with their own
// contract-violation machinery can install it at program start.
package checked
