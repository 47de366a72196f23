// Package result provides a success/failure type with a typed failure
// payload that is independent of the success payload.
//
// Highlights:
// - Success/Failure: construct a Result
// - Map/MapFail/AndThen: transform either side, short-circuiting on failure
// - UnwrapOr/Unwrap: read the value back out
// - Fold/Reduce: thread a Result accumulator over a slice
// - Oks/AllOk: collapse a slice of Results
//
// Every Result is stamped with an id and UTC creation time; pass-through
// short-circuits keep the stamp of the failure they carry.
package result
