// Package review provides a three-state validation-accumulation type: a
// value is Accepted cleanly, Flagged with accumulated issues, or Rejected
// outright. Chained steps may replace the carried value at every stage, but
// issues only ever grow, in call order; Rejected is absorbing.
//
// Highlights:
// - Accept/Flag/Reject: construct a Review (issue-carrying states require at least one issue)
// - StepOk/StepIssue/StepReject: per-step outcomes consumed by AndThen
// - AndThen/Fold/Reduce: chain steps, halting only on Rejected
// - Map/MapIssues: transform the value or the issue log
// - UnwrapOr/Unwrap/AcceptOrReject/Finally: collapse a Review at a boundary
//
// Every Review is stamped with an id and UTC creation time; absorbing
// short-circuits keep the stamp of the rejection they carry.
package review
