// Package maybe provides an optional-value type: a value is either present
// (Just) or structurally absent (Nothing), never signalled by a sentinel
// inside the payload.
//
// Highlights:
// - Just/Nothing/New: construct a Maybe (New maps only the nil sentinel to Nothing)
// - Map/AndThen: transform or bind, short-circuiting on Nothing
// - UnwrapOr/UnwrapWith/Unwrap: read the value back out
// - Fold/Reduce: thread a Maybe accumulator over a slice
package maybe
