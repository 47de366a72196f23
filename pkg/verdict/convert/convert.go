package convert

import (
	"github.com/ib-77/verdict/pkg/verdict"
	"github.com/ib-77/verdict/pkg/verdict/maybe"
	"github.com/ib-77/verdict/pkg/verdict/result"
	"github.com/ib-77/verdict/pkg/verdict/review"
)

// MaybeToResult maps Just(v) to a success and Nothing to a failure carrying
// the caller-supplied payload.
func MaybeToResult[V, E any](m maybe.Maybe[V], e E) result.Result[V, E] {
	if m.IsJust() {
		return result.Success[V, E](m.Value())
	}
	return result.Failure[V](e)
}

// MaybeToReview maps Just(v) to Accepted and Nothing to a rejection carrying
// the caller-supplied issues.
func MaybeToReview[V, I any](m maybe.Maybe[V], first I, rest ...I) review.Review[V, I] {
	if m.IsJust() {
		return review.Accept[V, I](m.Value())
	}
	return review.Reject[V](first, rest...)
}

// ResultToMaybe keeps the success value and discards the failure payload.
func ResultToMaybe[V, E any](r result.Result[V, E]) maybe.Maybe[V] {
	if r.IsSuccess() {
		return maybe.Just(r.Value())
	}
	return maybe.Nothing[V]()
}

// ResultToReview maps a success to Accepted and wraps a scalar failure into
// a single-issue rejection.
func ResultToReview[V, I any](r result.Result[V, I]) review.Review[V, I] {
	if r.IsSuccess() {
		return review.Accept[V, I](r.Value())
	}
	return review.Reject[V](r.Err())
}

// ResultSliceToReview maps a success to Accepted and takes a sequence-valued
// failure as the issue list as-is. The caller owns its non-emptiness.
func ResultSliceToReview[V, I any](r result.Result[V, []I]) review.Review[V, I] {
	if r.IsSuccess() {
		return review.Accept[V, I](r.Value())
	}
	return review.RejectWith[V](r.Err())
}

// ErrorToReview expands an error-valued failure into individual issues, so
// an errors.Join-ed failure rejects with one issue per joined error.
func ErrorToReview[V any](r result.Result[V, error]) review.Review[V, error] {
	if r.IsSuccess() {
		return review.Accept[V, error](r.Value())
	}
	return review.RejectWith[V](verdict.Flatten(r.Err()))
}

// ReviewToResult maps Accepted to a success; Flagged and Rejected both fail
// with the issue list, discarding a flagged value.
func ReviewToResult[V, I any](rv review.Review[V, I]) result.Result[V, []I] {
	if rv.IsAccepted() {
		return result.Success[V, []I](rv.Value())
	}
	return result.Failure[V](rv.Issues())
}

// ReviewToMaybe keeps the value only for Accepted; both issue-carrying
// states erase to Nothing.
func ReviewToMaybe[V, I any](rv review.Review[V, I]) maybe.Maybe[V] {
	if rv.IsAccepted() {
		return maybe.Just(rv.Value())
	}
	return maybe.Nothing[V]()
}
