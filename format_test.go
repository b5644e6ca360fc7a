// format_test.go — concise and verbose rendering contracts.
package xgxfault

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFormat_ConciseVerbs(t *testing.T) {
	t.Parallel()

	f := New(KindNotFound, "file missing")
	if got := fmt.Sprintf("%v", f); got != "not_found: file missing" {
		t.Fatalf("%%v: got=%q", got)
	}
	if got := fmt.Sprintf("%s", f); got != "not_found: file missing" {
		t.Fatalf("%%s: got=%q", got)
	}
	if got := fmt.Sprintf("%q", f); got != `"not_found: file missing"` {
		t.Fatalf("%%q: got=%q", got)
	}
}

func TestFormat_VerboseChainOuterFirst(t *testing.T) {
	t.Parallel()

	e1 := NewAt(At("a.go", 10, 4), KindNotFound, "file missing", "entity", "config")
	e2 := WrapAt(At("b.go", 20, 2), KindIOFailure, e1, "while reading config")

	out := fmt.Sprintf("%+v", e2)

	for _, want := range []string{
		`kind=io_failure msg="while reading config" at=b.go:20:2`,
		`kind=not_found msg="file missing" at=a.go:10:4`,
		"ctx: entity=config",
		"cause: ",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("%%+v missing %q in:\n%s", want, out)
		}
	}

	// Documented order: outermost first, innermost last.
	if strings.Index(out, "io_failure") > strings.Index(out, "not_found") {
		t.Fatalf("chain order violated:\n%s", out)
	}
}

func TestFormat_VerboseStackSection(t *testing.T) {
	t.Parallel()

	f := New(KindInternal, "boom").WithStack()
	out := fmt.Sprintf("%+v", f)
	if !strings.Contains(out, "\nstack:") {
		t.Fatalf("stack section missing:\n%s", out)
	}
	if !strings.Contains(out, "format_test.go") {
		t.Fatalf("stack must name the capture site:\n%s", out)
	}
}

func TestFormat_ForeignTail(t *testing.T) {
	t.Parallel()

	f := WrapErr(KindIOFailure, errors.New("socket closed"), "send")
	out := fmt.Sprintf("%+v", f)
	if !strings.Contains(out, "cause: socket closed") {
		t.Fatalf("foreign tail missing:\n%s", out)
	}
}

func TestFormat_KindOnlyAndReleased(t *testing.T) {
	t.Parallel()

	if got := fmt.Sprintf("%+v", KindOnly(KindTimeout)); got != "kind=timeout" {
		t.Fatalf("kind-only %%+v: got=%q", got)
	}

	f := New(KindConflict, "dup")
	Discard(f)
	if got := fmt.Sprintf("%+v", f); got != "kind=conflict" {
		t.Fatalf("released %%+v: got=%q", got)
	}
}

func TestFormat_DeepChainDoesNotRecurse(t *testing.T) {
	t.Parallel()

	f := New(KindNotFound, "leaf")
	for i := 0; i < 10000; i++ {
		f = Wrap(KindInternal, f, "")
	}
	out := fmt.Sprintf("%+v", f)
	if !strings.Contains(out, "not_found") {
		t.Fatal("innermost link missing from verbose output")
	}
}
