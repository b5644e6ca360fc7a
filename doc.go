// doc.go — package documentation for xgx-fault
//
// Package xgxfault provides a compact, composable fault value for
// result-returning code: a two-word handle carrying an inline classification
// Kind and one pointer to a heap detail record (message, source Location,
// type-erased cause, structured context, optional stack). It is designed to
// be:
//   - Cheap where it matters (kind checks never touch the heap; one
//     allocation per construct/wrap; zero for kind-only faults)
//   - Interoperable with the stdlib (error, Unwrap, errors.Is/As/Join,
//     fmt.Formatter)
//   - Policy-free (no logging/HTTP/JSON/retry rules in core)
//
// # The Fault Value
//
// Fault is passed and returned by value. The zero Fault means "no fault";
// bridge to the ambient error convention with Err():
//
//	func open(name string) (*Handle, error) {
//		if missing {
//			return nil, xgxfault.NotFound("handle", name).Err()
//		}
//		...
//	}
//
// The size invariant — never more than two machine words — holds regardless
// of message length or wrap depth; everything variable-sized lives behind
// the detail pointer.
//
// # Kinds
//
// Kind is a small integer discriminant stored inline, so classification
// ("is this a not-found fault?") costs a word read:
//
//	if f.Matches(xgxfault.KindNotFound) { ... }
//
// The core ships a closed built-in set. Modules needing their own categories
// call Register during init:
//
//	var KindQuotaExceeded = xgxfault.Register("quota_exceeded")
//
// Custom codes are stable within a process run; register before first use
// and do not interleave registration with hot-path lookups.
//
// # Location
//
// Every constructor records the call-site file and line via the runtime's
// static tables (no stack unwinding, no reflection; capture cannot fail).
// Column numbers are not available from the runtime; front-ends that extract
// positions syntactically inject exact (file, line, col) literals through
// At/NewAt/WrapAt.
//
// # Wrapping, Conversion, Ownership
//
// A fault is handled to completion in exactly one of three ways:
//
//	Constructed → Propagated (returned upward, unchanged)
//	            → Wrapped    (owned as the cause of a new fault)
//	            → Released   (UnwrapCause or Mask; terminal)
//
// Wrap builds a new fault that owns the old one as its cause, recording the
// wrap site; chains are acyclic by construction. Convert reclassifies across
// a module boundary while keeping the original as the cause — context is
// added by wrapping, never by discarding. Release is tracked by an atomic
// flag: a released detail reads as zero values and a second release is a
// no-op, so stale handles are inert rather than dangling.
//
// # When Are Stacks Captured?
//
//	+------------------------------+-----------------+
//	| Operation                    | Captures stack? |
//	+------------------------------+-----------------+
//	| Internal(err)                | YES (always)    |
//	| New / Wrap / semantic ctors  | NO (location    |
//	|                              | only, cheap)    |
//	| WithStack / WithStackSkip(n) | YES (opt-in)    |
//	+------------------------------+-----------------+
//
// # Formatting
//
//	%v, %s → concise one-line "kind: message: cause..."
//	%q     → quoted concise form
//	%+v    → verbose multi-line, one block per chain link, outermost first,
//	         innermost LAST (kind, message, location, context, stack)
//
// The chain order is a package contract; reports render the failure the
// caller saw first and the original cause at the bottom.
//
// # Concurrency
//
// Fluent methods (With, Ctx, Recode, WithStack) are copy-on-write: they
// return a NEW Fault with a fresh detail and never mutate the receiver, so a
// fault value may be read from multiple goroutines without synchronization.
// Ownership of a particular value stays linear: whoever holds it propagates,
// wraps, or releases it exactly once. No operation in this package blocks or
// performs I/O.
package xgxfault
