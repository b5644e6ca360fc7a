// fault.go — the compact fault value at the heart of xgx-fault.
//
// Representation:
//   - Fault is a two-word value: an inline Kind discriminant plus a single
//     pointer to a heap detail record. Everything variable-sized (message,
//     location, cause, context, stack) lives behind that one indirection.
//   - The inline Kind makes classification checks free: no detail dereference,
//     no allocation, ever.
//   - Fault{} is the "no fault" sentinel; Fault{kind: k} (nil detail) is a
//     legal kind-only fault when nothing beyond classification matters.
//
// Ownership:
//   - A fault is handled to completion: propagated (returned upward), wrapped
//     (owned as the cause of a new fault), or released (UnwrapCause / Mask).
//   - Release is tracked by an atomic flag on the detail. A released detail
//     reads as zero values everywhere; releasing twice is a no-op. This is the
//     runtime stand-in for a move checker: stale handles are inert, never
//     dangling.
//   - Fluent methods are non-mutating: they return a NEW Fault with a fresh
//     detail (copy-on-write), so shared fault values need no synchronization.
package xgxfault

import (
	"strings"
	"sync/atomic"
)

// Fault represents one failed operation. It is a small value meant to be
// passed and returned by value; the zero Fault means "no fault".
//
// Invariant: unsafe.Sizeof(Fault{}) never exceeds two machine words,
// regardless of message length or wrap depth.
type Fault struct {
	kind   Kind
	detail *detail
}

// detail is the heap payload of a fault. At most one detail is allocated per
// construct/wrap. It is owned by exactly one Fault at a time; copy-on-write
// methods allocate a fresh detail rather than sharing this one.
type detail struct {
	msg      string
	loc      Location
	cause    error // type-erased: another Fault or any foreign error
	ctx      fields
	stk      Stack
	released uint32 // atomic; 1 once the detail has been consumed
}

func (d *detail) release() bool {
	return atomic.CompareAndSwapUint32(&d.released, 0, 1)
}

func (d *detail) done() bool {
	return atomic.LoadUint32(&d.released) == 1
}

// live returns the detail if it is present and not yet released, else nil.
// Accessors go through live so a consumed fault reads as zero values.
func (f Fault) live() *detail {
	if f.detail == nil || f.detail.done() {
		return nil
	}
	return f.detail
}

// IsZero reports whether f is the "no fault" sentinel.
func (f Fault) IsZero() bool { return f.kind == KindNone && f.detail == nil }

// Err bridges a Fault into the ambient error convention: nil for the zero
// Fault, the fault itself otherwise. Use it at return sites:
//
//	func load(path string) (Config, error) {
//		...
//		return cfg, fault.Err()
//	}
func (f Fault) Err() error {
	if f.IsZero() {
		return nil
	}
	return f
}

// Kind returns the classification discriminant. It reads the inline field
// only — no heap access, no allocation — so it is safe on hot paths.
func (f Fault) Kind() Kind { return f.kind }

// Matches reports whether f's own kind equals k. It does not walk the cause
// chain; use MatchesAny for chain-aware matching.
func (f Fault) Matches(k Kind) bool { return f.kind == k }

// Message returns the human-readable message, or "" when absent or released.
func (f Fault) Message() string {
	if d := f.live(); d != nil {
		return d.msg
	}
	return ""
}

// Location returns the capture site of this fault. ok is false for kind-only
// and released faults.
func (f Fault) Location() (Location, bool) {
	if d := f.live(); d != nil && !d.loc.IsZero() {
		return d.loc, true
	}
	return Location{}, false
}

// Context returns a copy of the fault's context fields as a map
// (copy-on-read; last write wins for duplicate keys). Mutating the returned
// map does not affect the fault.
func (f Fault) Context() map[string]any {
	if d := f.live(); d != nil {
		return fieldsToMap(d.ctx)
	}
	return nil
}

// StackTrace returns the captured stack, if any. Stacks are opt-in; see
// WithStack.
func (f Fault) StackTrace() Stack {
	if d := f.live(); d != nil {
		return d.stk
	}
	return nil
}

// Unwrap exposes the immediate cause to stdlib traversal, so errors.Is and
// errors.As walk fault chains without adapters. It returns nil for kind-only
// and released faults. Ownership does not transfer; use UnwrapCause for that.
func (f Fault) Unwrap() error {
	if d := f.live(); d != nil {
		return d.cause
	}
	return nil
}

// Error renders the concise one-line form: "kind: message", with the cause
// chain appended outermost first, innermost last. The verbose multi-line
// form is available via fmt's %+v (see format.go).
func (f Fault) Error() string {
	var sb strings.Builder
	sb.WriteString(f.kind.String())
	d := f.live()
	if d == nil {
		return sb.String()
	}
	if d.msg != "" {
		sb.WriteString(": ")
		sb.WriteString(d.msg)
	}
	// Append causes iteratively; chain depth is caller-controlled and may be
	// large, so no recursion here.
	for c := d.cause; c != nil; {
		sb.WriteString(": ")
		cf, ok := c.(Fault)
		if !ok {
			sb.WriteString(c.Error())
			break
		}
		sb.WriteString(cf.kind.String())
		cd := cf.live()
		if cd == nil {
			break
		}
		if cd.msg != "" {
			sb.WriteString(": ")
			sb.WriteString(cd.msg)
		}
		c = cd.cause
	}
	return sb.String()
}

// -----------------------------------------------------------------------------
// Copy-on-write fluent methods
// -----------------------------------------------------------------------------

// clone returns a new Fault owning a fresh detail with the same content.
// Cloning a released fault yields a kind-only fault: consumed payloads do
// not resurrect.
func (f Fault) clone() Fault {
	d := f.live()
	if d == nil {
		return Fault{kind: f.kind}
	}
	return Fault{
		kind: f.kind,
		detail: &detail{
			msg:   d.msg,
			loc:   d.loc,
			cause: d.cause,
			ctx:   fieldsCloneAppend(d.ctx),
			stk:   d.stk, // frames are immutable; shallow copy is fine
		},
	}
}

// With attaches a single key-value context field. Returns a NEW Fault.
func (f Fault) With(key string, val any) Fault {
	n := f.ensureDetail()
	n.detail.ctx = fieldsCloneAppend(n.detail.ctx, Field{Key: key, Val: val})
	return n
}

// Ctx attaches a short contextual message and optional key-value fields.
// The message is set once: if the fault already carries a message it is kept
// and msg is ignored (progressive detail belongs in structured context, not
// in growing ": "-joined strings). Returns a NEW Fault.
func (f Fault) Ctx(msg string, kv ...any) Fault {
	n := f.ensureDetail()
	if msg != "" && n.detail.msg == "" {
		n.detail.msg = msg
	}
	if len(kv) > 0 {
		n.detail.ctx = fieldsCloneAppend(n.detail.ctx, fieldsFromKV(kv...)...)
	}
	return n
}

// Recode returns a NEW Fault with kind k and the same payload. The receiver
// is untouched; use Convert to reclassify while keeping the original fault
// as the cause.
func (f Fault) Recode(k Kind) Fault {
	n := f.clone()
	n.kind = k
	return n
}

// WithStack attaches a stack trace captured at the call site. Returns a NEW
// Fault. Stacks are deliberately opt-in; constructors stay cheap.
func (f Fault) WithStack() Fault {
	return f.withStackSkip(1)
}

// WithStackSkip is WithStack with additional frames skipped, for helpers
// that wrap fault construction.
func (f Fault) WithStackSkip(skip int) Fault {
	return f.withStackSkip(skip + 1)
}

func (f Fault) withStackSkip(skip int) Fault {
	n := f.ensureDetail()
	n.detail.stk = captureStackDefault(skip + 1)
	return n
}

// ensureDetail clones f, materializing a detail for kind-only faults so the
// fluent methods have somewhere to write.
func (f Fault) ensureDetail() Fault {
	n := f.clone()
	if n.detail == nil {
		n.detail = &detail{ctx: emptyFields}
	}
	return n
}

var _ error = Fault{}
