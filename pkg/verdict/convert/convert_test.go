package convert

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ib-77/verdict/pkg/verdict/maybe"
	"github.com/ib-77/verdict/pkg/verdict/result"
	"github.com/ib-77/verdict/pkg/verdict/review"
)

func TestMaybeToResult(t *testing.T) {
	t.Parallel()
	r := MaybeToResult(maybe.Just(5), "missing")
	if !r.IsSuccess() || r.Value() != 5 {
		t.Fatalf("Just must convert to success, got: success=%v, val=%v", r.IsSuccess(), r.Value())
	}

	r = MaybeToResult(maybe.Nothing[int](), "missing")
	if r.IsSuccess() || r.Err() != "missing" {
		t.Fatalf("Nothing must convert to the supplied failure, got: success=%v, err=%v", r.IsSuccess(), r.Err())
	}
}

func TestMaybeToReview(t *testing.T) {
	t.Parallel()
	rv := MaybeToReview(maybe.Just(5), "absent")
	if !rv.IsAccepted() || rv.Value() != 5 {
		t.Fatalf("Just must convert to Accepted, got: accepted=%v", rv.IsAccepted())
	}

	rv = MaybeToReview(maybe.Nothing[int](), "absent", "really")
	if !rv.IsRejected() || !reflect.DeepEqual(rv.Issues(), []string{"absent", "really"}) {
		t.Fatalf("Nothing must convert to Rejected with supplied issues, got %v", rv.Issues())
	}
}

func TestResultToMaybe(t *testing.T) {
	t.Parallel()
	m := ResultToMaybe(result.Success[int, string](5))
	if !m.IsJust() || m.Value() != 5 {
		t.Fatalf("success must convert to Just, got: just=%v", m.IsJust())
	}

	// failure payload is discarded
	m = ResultToMaybe(result.Failure[int]("gone"))
	if !m.IsNothing() {
		t.Fatalf("failure must convert to Nothing")
	}
}

func TestResultToReview_ScalarAndSlice(t *testing.T) {
	t.Parallel()
	rv := ResultToReview(result.Success[int, string](1))
	if !rv.IsAccepted() {
		t.Fatalf("success must convert to Accepted")
	}

	rv = ResultToReview(result.Failure[int]("bad"))
	if !rv.IsRejected() || !reflect.DeepEqual(rv.Issues(), []string{"bad"}) {
		t.Fatalf("scalar failure must wrap into a one-issue rejection, got %v", rv.Issues())
	}

	srv := ResultSliceToReview(result.Failure[int]([]string{"a", "b"}))
	if !srv.IsRejected() || !reflect.DeepEqual(srv.Issues(), []string{"a", "b"}) {
		t.Fatalf("slice failure must become the issue list as-is, got %v", srv.Issues())
	}
}

func TestErrorToReview_ExpandsJoinedErrors(t *testing.T) {
	t.Parallel()
	a, b := errors.New("a"), errors.New("b")
	rv := ErrorToReview(result.Failure[int](errors.Join(a, b)))
	if !rv.IsRejected() {
		t.Fatalf("expected rejection")
	}
	issues := rv.Issues()
	if len(issues) != 2 || issues[0] != a || issues[1] != b {
		t.Fatalf("joined failure must expand into individual issues, got %v", issues)
	}
}

func TestReviewToResult(t *testing.T) {
	t.Parallel()
	r := ReviewToResult(review.Accept[int, string](5))
	if !r.IsSuccess() || r.Value() != 5 {
		t.Fatalf("Accepted must convert to success")
	}

	// flagged value is discarded even though present
	r = ReviewToResult(review.Flag(5, "w"))
	if r.IsSuccess() || !reflect.DeepEqual(r.Err(), []string{"w"}) {
		t.Fatalf("Flagged must convert to failure with the issues, got: success=%v, err=%v", r.IsSuccess(), r.Err())
	}

	r = ReviewToResult(review.Reject[int]("x", "y"))
	if r.IsSuccess() || !reflect.DeepEqual(r.Err(), []string{"x", "y"}) {
		t.Fatalf("Rejected must convert to failure with the issues, got %v", r.Err())
	}
}

func TestReviewToMaybe(t *testing.T) {
	t.Parallel()
	if m := ReviewToMaybe(review.Accept[int, string](5)); !m.IsJust() || m.Value() != 5 {
		t.Fatalf("Accepted must convert to Just")
	}
	if m := ReviewToMaybe(review.Flag(5, "w")); !m.IsNothing() {
		t.Fatalf("Flagged must erase to Nothing")
	}
	if m := ReviewToMaybe(review.Reject[int]("r")); !m.IsNothing() {
		t.Fatalf("Rejected must erase to Nothing")
	}
}

func TestRoundTrips(t *testing.T) {
	t.Parallel()
	// Just(5) -> Ok(5) -> Just(5)
	m := ResultToMaybe(MaybeToResult(maybe.Just(5), "err"))
	if !m.IsJust() || m.Value() != 5 {
		t.Fatalf("Maybe->Result->Maybe round trip lost the value")
	}

	// Nothing -> Rejected([x]) -> Error([x])
	r := ReviewToResult(MaybeToReview(maybe.Nothing[int](), "x"))
	if r.IsSuccess() || !reflect.DeepEqual(r.Err(), []string{"x"}) {
		t.Fatalf("Maybe->Review->Result round trip: got err=%v", r.Err())
	}
}
