package review

type stepState int

const (
	stepOk stepState = iota
	stepIssue
	stepReject
)

// Step is the outcome of a single chained step: clean success, success with
// one flagged issue, or hard rejection. It lets a step express a partial
// success without constructing a full Review.
type Step[V, I any] struct {
	value  V
	issues []I
	state  stepState
}

// StepOk reports a clean success carrying the step's output value.
func StepOk[V, I any](v V) Step[V, I] {
	return Step[V, I]{value: v, state: stepOk}
}

// StepIssue reports a success carrying the step's output value plus one
// flagged issue.
func StepIssue[V, I any](v V, issue I) Step[V, I] {
	return Step[V, I]{value: v, issues: []I{issue}, state: stepIssue}
}

// StepReject reports a hard failure with at least one issue.
func StepReject[V, I any](first I, rest ...I) Step[V, I] {
	issues := make([]I, 0, 1+len(rest))
	issues = append(issues, first)
	issues = append(issues, rest...)
	return Step[V, I]{issues: issues, state: stepReject}
}
