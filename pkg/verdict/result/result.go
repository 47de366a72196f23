package result

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/verdict/pkg/verdict"
)

// Result holds either a success value or a failure payload.
type Result[V, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     V
	failure   E
	ok        bool
}

var (
	_ verdict.ValueProvider[int] = Result[int, error]{}
	_ verdict.Stamped            = Result[int, error]{}
)

func Success[V, E any](v V) Result[V, E] {
	return Result[V, E]{
		value:     v,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[V, E any](e E) Result[V, E] {
	return Result[V, E]{
		failure:   e,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// failFrom carries a failure across a value-type switch, preserving the
// original stamp.
func failFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		failure:   from.failure,
		ok:        false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[V, E]) IsSuccess() bool {
	return r.ok
}

func (r Result[V, E]) IsFailure() bool {
	return !r.ok
}

// Value returns the success value, or the zero value on failure.
func (r Result[V, E]) Value() V {
	return r.value
}

// Err returns the failure payload, or the zero value on success.
func (r Result[V, E]) Err() E {
	return r.failure
}

func (r Result[V, E]) Id() uuid.UUID {
	return r.id
}

func (r Result[V, E]) CreatedAt() time.Time {
	return r.createdAt
}

// UnwrapOr returns the success value, or def on failure.
func (r Result[V, E]) UnwrapOr(def V) V {
	if r.ok {
		return r.value
	}
	return def
}

// Unwrap returns the success value, or *verdict.UnwrapError rendering the
// failure payload.
func (r Result[V, E]) Unwrap() (V, error) {
	if r.ok {
		return r.value, nil
	}
	return r.value, &verdict.UnwrapError{State: "failure", Diag: fmt.Sprintf("%v", r.failure)}
}

// Map transforms the success value; a failure passes through unchanged.
func Map[V, U, E any](r Result[V, E], f func(V) U) Result[U, E] {
	if r.ok {
		return Success[U, E](f(r.value))
	}
	return failFrom[V, U](r)
}

// MapFail transforms the failure payload; a success passes through unchanged.
func MapFail[V, E, F any](r Result[V, E], f func(E) F) Result[V, F] {
	if r.ok {
		return Result[V, F]{
			value:     r.value,
			ok:        true,
			createdAt: r.createdAt,
			id:        r.id,
		}
	}
	return Failure[V, F](f(r.failure))
}

// AndThen binds f over a success; failure is absorbing and f is not invoked.
func AndThen[V, U, E any](r Result[V, E], f func(V) Result[U, E]) Result[U, E] {
	if r.ok {
		return f(r.value)
	}
	return failFrom[V, U](r)
}

// Fold threads the accumulator through AndThen over elems, left to right,
// halting at the first failure without invoking f again.
func Fold[V, T, E any](initial Result[V, E], elems []T, f func(T, V) Result[V, E]) Result[V, E] {
	acc := initial
	for _, e := range elems {
		if acc.IsFailure() {
			return acc
		}
		acc = AndThen(acc, func(v V) Result[V, E] { return f(e, v) })
	}
	return acc
}

// Reduce seeds the fold with Success(elems[0]) and folds f over the tail.
// It returns *verdict.EmptyInputError when elems is empty.
func Reduce[V, E any](elems []V, f func(V, V) Result[V, E]) (Result[V, E], error) {
	if len(elems) == 0 {
		var zero Result[V, E]
		return zero, &verdict.EmptyInputError{Op: "result.Reduce"}
	}
	return Fold(Success[V, E](elems[0]), elems[1:], f), nil
}

// Oks filters rs down to its success values, preserving order.
func Oks[V, E any](rs []Result[V, E]) []V {
	out := make([]V, 0, len(rs))
	for _, r := range rs {
		if r.IsSuccess() {
			out = append(out, r.value)
		}
	}
	return out
}

// AllOk returns the success values of rs in order, or the first failure
// encountered.
func AllOk[V, E any](rs []Result[V, E]) Result[[]V, E] {
	values := make([]V, 0, len(rs))
	for _, r := range rs {
		if r.IsFailure() {
			return failFrom[V, []V](r)
		}
		values = append(values, r.value)
	}
	return Success[[]V, E](values)
}
