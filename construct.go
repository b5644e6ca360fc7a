// construct.go — fault constructors.
//
// Scope:
//   - New/Newf: the general builders. Every constructor records the call-site
//     Location automatically and allocates exactly one detail; construction
//     itself cannot fail.
//   - Semantic constructors (NotFound, PermissionDenied, ...) for the common
//     failure classes, populating structured context the same way for every
//     caller.
//   - *At variants taking an explicit Location, for code-generation
//     front-ends that inject (file, line, col) literals.
//
// Stack policy: constructors are cheap and do not capture stacks. Internal is
// the exception — it marks a boundary around an unexpected error, where a
// stack is worth its cost. Everything else opts in via WithStack.
package xgxfault

import (
	"fmt"
	"time"
)

// newFault builds a fault with the location captured skip+1 frames above
// newFault itself (skip 1 = the caller of the exported constructor).
func newFault(kind Kind, msg string, ctx fields, cause error, skip int) Fault {
	return Fault{
		kind: kind,
		detail: &detail{
			msg:   msg,
			loc:   captureLocation(skip + 1),
			cause: cause,
			ctx:   ctx,
		},
	}
}

// New constructs a fault of the given kind with a message and optional
// key-value context, capturing the call-site location. It always succeeds
// and the returned value stays two words regardless of message length.
func New(kind Kind, msg string, kv ...any) Fault {
	return newFault(kind, msg, fieldsFromKV(kv...), nil, 1)
}

// Newf is New with fmt-style message formatting.
func Newf(kind Kind, format string, args ...any) Fault {
	return newFault(kind, fmt.Sprintf(format, args...), emptyFields, nil, 1)
}

// NewAt is New with an explicit, front-end-supplied Location instead of
// runtime capture.
func NewAt(at Location, kind Kind, msg string, kv ...any) Fault {
	return Fault{
		kind: kind,
		detail: &detail{
			msg: msg,
			loc: at,
			ctx: fieldsFromKV(kv...),
		},
	}
}

// KindOnly constructs a detail-free fault: two words, no allocation. Use it
// when only the classification matters (hot paths, sentinel returns).
func KindOnly(kind Kind) Fault {
	return Fault{kind: kind}
}

// -----------------------------------------------------------------------------
// Semantic constructors — domain
// -----------------------------------------------------------------------------

// NotFound constructs a not_found fault for a missing entity.
func NotFound(entity string, id any) Fault {
	return newFault(KindNotFound, entity+" not found",
		fieldsFromKV("entity", entity, "id", id), nil, 1)
}

// PermissionDenied constructs a permission_denied fault for a resource.
func PermissionDenied(resource string) Fault {
	return newFault(KindPermissionDenied, "permission denied",
		fieldsFromKV("resource", resource), nil, 1)
}

// InvalidInput indicates syntactically or semantically invalid input.
func InvalidInput(field, reason string) Fault {
	return newFault(KindInvalidInput, "invalid "+field,
		fieldsFromKV("field", field, "reason", reason), nil, 1)
}

// Conflict indicates a state conflict (duplicate, stale version, ...).
func Conflict(msg string) Fault {
	return newFault(KindConflict, msg, emptyFields, nil, 1)
}

// Unsupported indicates a requested operation the implementation does not
// provide.
func Unsupported(op string) Fault {
	return newFault(KindUnsupported, "unsupported "+op,
		fieldsFromKV("op", op), nil, 1)
}

// -----------------------------------------------------------------------------
// Semantic constructors — infrastructure
// -----------------------------------------------------------------------------

// IOFailure constructs an io_failure fault for a failed I/O operation.
func IOFailure(op string, cause error) Fault {
	return newFault(KindIOFailure, op+" failed",
		fieldsFromKV("op", op), cause, 1)
}

// Timeout indicates the operation exceeded its time budget.
func Timeout(d time.Duration) Fault {
	return newFault(KindTimeout, "timeout",
		fieldsFromKV("timeout_ms", float64(d.Milliseconds())), nil, 1)
}

// Unavailable indicates a transient dependency outage.
func Unavailable(service string) Fault {
	return newFault(KindUnavailable, "unavailable",
		fieldsFromKV("service", service), nil, 1)
}

// Internal wraps an unexpected error as an internal fault and captures a
// stack; boundaries around bugs deserve full provenance. A nil err still
// yields a stack-bearing internal fault.
func Internal(err error) Fault {
	f := newFault(KindInternal, "internal error", emptyFields, err, 1)
	f.detail.stk = captureStackDefault(1)
	return f
}

// Interrupt denotes cooperative cancellation.
func Interrupt(reason string) Fault {
	return newFault(KindInterrupt, reason, emptyFields, nil, 1)
}
