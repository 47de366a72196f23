package review

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/verdict/pkg/verdict"
)

type state int

const (
	accepted state = iota
	flagged
	rejected
)

// Review holds a cleanly accepted value, a value flagged with accumulated
// issues, or an outright rejection. Flagged and Rejected always carry at
// least one issue; issue order is insertion order.
type Review[V, I any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     V
	issues    []I
	state     state
}

var (
	_ verdict.ValueProvider[int] = Review[int, string]{}
	_ verdict.Stamped            = Review[int, string]{}
)

func Accept[V, I any](v V) Review[V, I] {
	return Review[V, I]{
		value:     v,
		state:     accepted,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Flag constructs a flagged Review; the signature requires at least one
// issue so a flagged state can never be issue-free.
func Flag[V, I any](v V, first I, rest ...I) Review[V, I] {
	return Review[V, I]{
		value:     v,
		issues:    joinIssues([]I{first}, rest...),
		state:     flagged,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Reject constructs a rejected Review; the signature requires at least one
// issue.
func Reject[V, I any](first I, rest ...I) Review[V, I] {
	return Review[V, I]{
		issues:    joinIssues([]I{first}, rest...),
		state:     rejected,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// RejectWith constructs a rejected Review from a prepared issue slice. The
// caller owns non-emptiness; conversions use it to stay total.
func RejectWith[V, I any](issues []I) Review[V, I] {
	return Review[V, I]{
		issues:    joinIssues(nil, issues...),
		state:     rejected,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// RejectedFrom carries a rejection across a value-type switch, preserving
// the original issue log and stamp.
func RejectedFrom[In, Out, I any](from Review[In, I]) Review[Out, I] {
	return Review[Out, I]{
		issues:    from.issues,
		state:     rejected,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// joinIssues copies base and appends more, so no earlier Review ever shares
// a backing array with a later one.
func joinIssues[I any](base []I, more ...I) []I {
	out := make([]I, 0, len(base)+len(more))
	out = append(out, base...)
	out = append(out, more...)
	return out
}

func (rv Review[V, I]) IsAccepted() bool {
	return rv.state == accepted
}

func (rv Review[V, I]) IsFlagged() bool {
	return rv.state == flagged
}

func (rv Review[V, I]) IsRejected() bool {
	return rv.state == rejected
}

// Value returns the carried value; the zero value on Rejected.
func (rv Review[V, I]) Value() V {
	return rv.value
}

// Issues returns a copy of the accumulated issue log, empty on Accepted.
func (rv Review[V, I]) Issues() []I {
	return joinIssues(rv.issues)
}

func (rv Review[V, I]) Id() uuid.UUID {
	return rv.id
}

func (rv Review[V, I]) CreatedAt() time.Time {
	return rv.createdAt
}

// UnwrapOr returns the carried value only when Accepted; a flagged outcome
// counts as non-clean and yields def.
func (rv Review[V, I]) UnwrapOr(def V) V {
	if rv.state == accepted {
		return rv.value
	}
	return def
}

// Unwrap returns the carried value when Accepted, and *verdict.UnwrapError
// listing the accumulated issues otherwise.
func (rv Review[V, I]) Unwrap() (V, error) {
	switch rv.state {
	case accepted:
		return rv.value, nil
	case flagged:
		return rv.value, &verdict.UnwrapError{State: "flagged", Diag: fmt.Sprintf("issues: %v", rv.issues)}
	default:
		var zero V
		return zero, &verdict.UnwrapError{State: "rejected", Diag: fmt.Sprintf("issues: %v", rv.issues)}
	}
}

// AndThen runs f on the carried value and merges its outcome into the
// current state. Rejected is absorbing: f is never invoked. A StepIssue
// appends its issue after the ones already accumulated, and a StepReject
// concatenates the prior issues with its own, so the log never shrinks.
func AndThen[V, U, I any](rv Review[V, I], f func(V) Step[U, I]) Review[U, I] {
	if rv.state == rejected {
		return RejectedFrom[V, U](rv)
	}

	step := f(rv.value)
	switch step.state {
	case stepOk:
		if rv.state == flagged {
			return Review[U, I]{
				value:     step.value,
				issues:    rv.issues,
				state:     flagged,
				createdAt: time.Now().UTC(),
				id:        uuid.New(),
			}
		}
		return Accept[U, I](step.value)
	case stepIssue:
		return Review[U, I]{
			value:     step.value,
			issues:    joinIssues(rv.issues, step.issues...),
			state:     flagged,
			createdAt: time.Now().UTC(),
			id:        uuid.New(),
		}
	default:
		return RejectWith[U](joinIssues(rv.issues, step.issues...))
	}
}

// Fold threads the accumulator through AndThen over elems, left to right.
// A flagged accumulator continues the fold; Rejected halts it without
// invoking f again.
func Fold[V, T, I any](initial Review[V, I], elems []T, f func(T, V) Step[V, I]) Review[V, I] {
	acc := initial
	for _, e := range elems {
		if acc.IsRejected() {
			return acc
		}
		acc = AndThen(acc, func(v V) Step[V, I] { return f(e, v) })
	}
	return acc
}

// Reduce seeds the fold with Accept(elems[0]) and folds f over the tail.
// It returns *verdict.EmptyInputError when elems is empty.
func Reduce[V, I any](elems []V, f func(V, V) Step[V, I]) (Review[V, I], error) {
	if len(elems) == 0 {
		var zero Review[V, I]
		return zero, &verdict.EmptyInputError{Op: "review.Reduce"}
	}
	return Fold(Accept[V, I](elems[0]), elems[1:], f), nil
}

// Map transforms the carried value in Accepted and Flagged; Rejected passes
// through with its issue log intact.
func Map[V, U, I any](rv Review[V, I], f func(V) U) Review[U, I] {
	switch rv.state {
	case accepted:
		return Accept[U, I](f(rv.value))
	case flagged:
		return Review[U, I]{
			value:     f(rv.value),
			issues:    rv.issues,
			state:     flagged,
			createdAt: time.Now().UTC(),
			id:        uuid.New(),
		}
	default:
		return RejectedFrom[V, U](rv)
	}
}

// MapIssues transforms every issue in Flagged and Rejected; Accepted passes
// through unchanged.
func MapIssues[V, I, J any](rv Review[V, I], f func(I) J) Review[V, J] {
	if rv.state == accepted {
		return Accept[V, J](rv.value)
	}

	issues := make([]J, len(rv.issues))
	for i, issue := range rv.issues {
		issues[i] = f(issue)
	}
	return Review[V, J]{
		value:     rv.value,
		issues:    issues,
		state:     rv.state,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// AcceptOrReject collapses a flagged Review into a rejection carrying the
// same issues, turning a soft failure hard at a pipeline boundary. Accepted
// and Rejected pass through unchanged.
func AcceptOrReject[V, I any](rv Review[V, I]) Review[V, I] {
	if rv.state == flagged {
		return RejectedFrom[V, V](rv)
	}
	return rv
}

// Finally reduces a Review to a concrete value with one handler per state.
func Finally[V, I, R any](rv Review[V, I],
	onAccepted func(V) R,
	onFlagged func(V, []I) R,
	onRejected func([]I) R) R {

	switch rv.state {
	case accepted:
		return onAccepted(rv.value)
	case flagged:
		return onFlagged(rv.value, rv.Issues())
	default:
		return onRejected(rv.Issues())
	}
}
