package maybe

import (
	"github.com/ib-77/verdict/pkg/verdict"
)

// Maybe holds either a present value or nothing. The zero value is Nothing.
type Maybe[V any] struct {
	value   V
	present bool
}

var _ verdict.ValueProvider[int] = Maybe[int]{}

func Just[V any](v V) Maybe[V] {
	return Maybe[V]{value: v, present: true}
}

func Nothing[V any]() Maybe[V] {
	return Maybe[V]{}
}

// New returns Nothing when v is the nil sentinel (nil interface or nil
// pointer) and Just(v) otherwise. False, zero and empty values are present.
func New[V any](v V) Maybe[V] {
	if verdict.IsNil(v) {
		return Nothing[V]()
	}
	return Just(v)
}

func (m Maybe[V]) IsJust() bool {
	return m.present
}

func (m Maybe[V]) IsNothing() bool {
	return !m.present
}

// Value returns the carried value, or the zero value on Nothing.
func (m Maybe[V]) Value() V {
	return m.value
}

// UnwrapOr returns the carried value, or def on Nothing.
func (m Maybe[V]) UnwrapOr(def V) V {
	if m.present {
		return m.value
	}
	return def
}

// Unwrap returns the carried value, or *verdict.UnwrapError on Nothing.
func (m Maybe[V]) Unwrap() (V, error) {
	if m.present {
		return m.value, nil
	}
	return m.value, &verdict.UnwrapError{State: "nothing"}
}

// UnwrapWith applies onJust to a present value and returns def otherwise.
// def is a plain value, not a thunk.
func UnwrapWith[V, U any](m Maybe[V], onJust func(V) U, def U) U {
	if m.present {
		return onJust(m.value)
	}
	return def
}

// Map transforms a present value; f is never invoked on Nothing.
func Map[V, U any](m Maybe[V], f func(V) U) Maybe[U] {
	if m.present {
		return Just(f(m.value))
	}
	return Nothing[U]()
}

// AndThen binds f over a present value; Nothing is absorbing.
func AndThen[V, U any](m Maybe[V], f func(V) Maybe[U]) Maybe[U] {
	if m.present {
		return f(m.value)
	}
	return Nothing[U]()
}

// Fold threads the accumulator through AndThen over elems, left to right.
// Once the accumulator is Nothing, f is not invoked again.
func Fold[V, E any](initial Maybe[V], elems []E, f func(E, V) Maybe[V]) Maybe[V] {
	acc := initial
	for _, e := range elems {
		if acc.IsNothing() {
			return acc
		}
		acc = AndThen(acc, func(v V) Maybe[V] { return f(e, v) })
	}
	return acc
}

// Reduce seeds the fold with Just(elems[0]) and folds f over the tail.
// It returns *verdict.EmptyInputError when elems is empty.
func Reduce[V any](elems []V, f func(V, V) Maybe[V]) (Maybe[V], error) {
	if len(elems) == 0 {
		return Nothing[V](), &verdict.EmptyInputError{Op: "maybe.Reduce"}
	}
	return Fold(Just(elems[0]), elems[1:], f), nil
}
