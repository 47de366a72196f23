package verdict

import "fmt"

// UnwrapError is returned by the Unwrap family when the wrapped value is
// absent, failed or not cleanly accepted. It is the only failure the library
// surfaces for partial accessors; callers opt into it explicitly.
type UnwrapError struct {
	// State names the variant the unwrap was attempted on ("nothing",
	// "failure", "flagged", "rejected").
	State string
	// Diag carries the diagnostic payload: the failure's rendering or the
	// accumulated issue list.
	Diag string
}

func (e *UnwrapError) Error() string {
	if e.Diag == "" {
		return fmt.Sprintf("verdict: unwrap on %s", e.State)
	}
	return fmt.Sprintf("verdict: unwrap on %s: %s", e.State, e.Diag)
}

// EmptyInputError is returned by the seedless Reduce forms when the input
// slice has no element to seed the accumulator from.
type EmptyInputError struct {
	Op string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("verdict: %s: empty input", e.Op)
}
