// inspect_test.go — consuming operations, masking terminality, chain matching.
package xgxfault

import (
	"errors"
	"testing"
)

func TestUnwrapCause_ConsumesOuterDetail(t *testing.T) {
	t.Parallel()

	inner := New(KindNotFound, "missing")
	outer := Wrap(KindIOFailure, inner, "read failed", "fd", 3)

	got, ok := UnwrapCause(outer)
	if !ok || got != inner {
		t.Fatalf("cause: ok=%v got=%#v", ok, got)
	}

	// The outer payload is gone; only the inline kind survives on the handle.
	if outer.Message() != "" {
		t.Fatalf("outer message must be released, got=%q", outer.Message())
	}
	if _, ok := outer.Location(); ok {
		t.Fatal("outer location must be released")
	}
	if outer.Context() != nil || outer.Unwrap() != nil {
		t.Fatal("outer context/cause must be released")
	}

	// Second consume observes the release.
	if _, ok := UnwrapCause(outer); ok {
		t.Fatal("double unwrap must fail")
	}

	// The extracted cause is untouched and still owned by the caller.
	if got.Message() != "missing" {
		t.Fatalf("cause payload lost: %q", got.Message())
	}
}

func TestUnwrapCause_NoCause(t *testing.T) {
	t.Parallel()

	if _, ok := UnwrapCause(New(KindConflict, "dup")); ok {
		t.Fatal("leaf fault has no cause")
	}
	if _, ok := UnwrapCause(Fault{}); ok {
		t.Fatal("zero fault has no cause")
	}
	if _, ok := UnwrapCause(KindOnly(KindTimeout)); ok {
		t.Fatal("kind-only fault has no cause")
	}
}

func TestUnwrapCause_ForeignCauseIsAdopted(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("below")
	outer := WrapErr(KindInternal, sentinel, "boundary")
	got, ok := UnwrapCause(outer)
	if !ok || got.Kind() != KindExternal {
		t.Fatalf("ok=%v kind=%s", ok, got.Kind())
	}
	if !errors.Is(got, sentinel) {
		t.Fatal("adopted cause must unwrap to the sentinel")
	}
}

func TestCause_PeeksWithoutConsuming(t *testing.T) {
	t.Parallel()

	inner := New(KindNotFound, "missing")
	outer := Wrap(KindIOFailure, inner, "read failed")

	for i := 0; i < 3; i++ {
		got, ok := Cause(outer)
		if !ok || got != inner {
			t.Fatalf("peek %d: ok=%v", i, ok)
		}
	}
	if outer.Message() != "read failed" {
		t.Fatal("peek must not consume the outer detail")
	}
}

func TestMask_SubstitutesAndTerminates(t *testing.T) {
	t.Parallel()

	type config struct{ Port int }
	def := config{Port: 8080}

	e1 := New(KindNotFound, "file missing")
	e2 := Wrap(KindIOFailure, e1, "while reading config")

	got := Mask(e2, def)
	if got != def {
		t.Fatalf("Mask must return the fallback: %+v", got)
	}

	// Terminal: nothing of e2's payload remains reachable.
	if e2.Message() != "" {
		t.Fatal("message survived mask")
	}
	if _, ok := e2.Location(); ok {
		t.Fatal("location survived mask")
	}
	if e2.Unwrap() != nil {
		t.Fatal("cause link survived mask")
	}
	// The inline discriminant on a stale handle stays readable; that is the
	// price of a two-word value and documented as such.
	if e2.Kind() != KindIOFailure {
		t.Fatalf("inline kind: %s", e2.Kind())
	}

	t.Run("double mask is a no-op", func(t *testing.T) {
		if got := Mask(e2, 42); got != 42 {
			t.Fatalf("second mask fallback: %v", got)
		}
	})

	t.Run("mask of zero fault", func(t *testing.T) {
		if got := Mask(Fault{}, "fallback"); got != "fallback" {
			t.Fatalf("got=%q", got)
		}
	})
}

func TestDiscard_Terminates(t *testing.T) {
	t.Parallel()

	f := New(KindTimeout, "deadline", "op", "dial")
	Discard(f)
	if f.Message() != "" || f.Context() != nil {
		t.Fatal("Discard must release the detail")
	}
	Discard(f) // second discard is harmless
}

func TestMatchesAny_WalksChain(t *testing.T) {
	t.Parallel()

	e1 := New(KindNotFound, "file missing")
	e2 := Wrap(KindIOFailure, e1, "while reading config")

	if !MatchesAny(e2, KindNotFound) {
		t.Fatal("inner kind must match")
	}
	if !MatchesAny(e2, KindIOFailure) {
		t.Fatal("outer kind must match")
	}
	if !MatchesAny(e2, KindTimeout, KindNotFound) {
		t.Fatal("any-of must match on second candidate")
	}
	if MatchesAny(e2, KindTimeout, KindConflict) {
		t.Fatal("absent kinds must not match")
	}
	if MatchesAny(e2) {
		t.Fatal("empty candidate set never matches")
	}
	if MatchesAny(Fault{}, KindNotFound) {
		t.Fatal("zero fault never matches")
	}
}

func TestMatchesAny_DeepChainIterative(t *testing.T) {
	t.Parallel()

	const depth = 10000
	f := New(KindNotFound, "leaf")
	for i := 0; i < depth; i++ {
		f = Wrap(KindInternal, f, "")
	}
	if !MatchesAny(f, KindNotFound) {
		t.Fatal("innermost kind must be found at depth 10000")
	}
	if MatchesAny(f, KindTimeout) {
		t.Fatal("absent kind matched")
	}
}

func TestMatchesAny_ThroughJoinedCauses(t *testing.T) {
	t.Parallel()

	a := New(KindTimeout, "slow")
	b := New(KindConflict, "stale")
	agg := WrapErr(KindInternal, Join(a.Err(), b.Err()), "batch failed")

	if !MatchesAny(agg, KindTimeout) || !MatchesAny(agg, KindConflict) {
		t.Fatal("both joined branches must be visible")
	}
	if MatchesAny(agg, KindNotFound) {
		t.Fatal("absent kind matched")
	}
}

func TestKindOf_FirstFaultWins(t *testing.T) {
	t.Parallel()

	if KindOf(nil) != KindNone {
		t.Fatal("nil → KindNone")
	}
	if KindOf(errors.New("plain")) != KindNone {
		t.Fatal("fault-free error → KindNone")
	}
	f := Wrap(KindIOFailure, New(KindNotFound, "x"), "y")
	if KindOf(f) != KindIOFailure {
		t.Fatalf("outermost fault kind expected, got %s", KindOf(f))
	}
}
