package chain

import (
	"github.com/ib-77/verdict/pkg/verdict/review"
)

// Chain wraps a review.Review to enable fluent chaining.
type Chain[V, I any] struct {
	rv review.Review[V, I]
}

// Start creates a new chain from an existing review.
func Start[V, I any](rv review.Review[V, I]) Chain[V, I] {
	return Chain[V, I]{rv: rv}
}

// FromValue creates a new chain from a cleanly accepted value.
func FromValue[V, I any](v V) Chain[V, I] {
	return Start(review.Accept[V, I](v))
}

// Review returns the underlying review.Review.
func (c Chain[V, I]) Review() review.Review[V, I] {
	return c.rv
}

// Then composes a step function; a rejected chain passes through untouched.
func (c Chain[V, I]) Then(step func(V) review.Step[V, I]) Chain[V, I] {
	return Chain[V, I]{rv: review.AndThen(c.rv, step)}
}

// Map transforms the carried value without touching the issue log.
func (c Chain[V, I]) Map(f func(V) V) Chain[V, I] {
	return Chain[V, I]{rv: review.Map(c.rv, f)}
}

// While repeats step as long as the chain is not rejected and the predicate
// holds for the carried value.
func (c Chain[V, I]) While(step func(V) review.Step[V, I], while func(V) bool) Chain[V, I] {
	for !c.rv.IsRejected() && while(c.rv.Value()) {
		c = c.Then(step)
	}
	return c
}

// Ensure triggers a side effect for the current state without changing the
// review. Nil handlers are skipped.
func (c Chain[V, I]) Ensure(onAccepted func(V), onFlagged func(V, []I), onRejected func([]I)) Chain[V, I] {
	switch {
	case c.rv.IsRejected():
		if onRejected != nil {
			onRejected(c.rv.Issues())
		}
	case c.rv.IsFlagged():
		if onFlagged != nil {
			onFlagged(c.rv.Value(), c.rv.Issues())
		}
	default:
		if onAccepted != nil {
			onAccepted(c.rv.Value())
		}
	}
	return c
}

// Strict hardens a flagged chain into a rejection carrying the same issues.
func (c Chain[V, I]) Strict() Chain[V, I] {
	return Chain[V, I]{rv: review.AcceptOrReject(c.rv)}
}

// Finally collapses the chain to a final value, delegating to review.Finally.
func (c Chain[V, I]) Finally(
	onAccepted func(V) V,
	onFlagged func(V, []I) V,
	onRejected func([]I) V,
) V {
	return review.Finally(c.rv, onAccepted, onFlagged, onRejected)
}

// Then composes a step function that switches the value type.
func Then[V, U, I any](c Chain[V, I], step func(V) review.Step[U, I]) Chain[U, I] {
	return Chain[U, I]{rv: review.AndThen(c.rv, step)}
}

// Map transforms the carried value to a new type.
func Map[V, U, I any](c Chain[V, I], f func(V) U) Chain[U, I] {
	return Chain[U, I]{rv: review.Map(c.rv, f)}
}
