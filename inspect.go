// inspect.go — terminal handling of a fault chain.
//
// A fault's life ends in one of three ways: propagated upward, wrapped as a
// cause, or handled here — unwrapped into its cause, or masked into a
// fallback value. Consuming operations release the outer detail through its
// atomic flag; a released detail reads as zero values and a second release
// is a no-op, so double handling is harmless rather than undefined.
package xgxfault

import "errors"

// UnwrapCause consumes f, releasing its detail and returning ownership of
// the immediate cause. The outer kind, location, message, and context are
// discarded with the release. ok is false when f has no cause or was already
// consumed.
//
// A foreign (non-Fault) cause is returned adopted via From. For read-only
// chain walking use Cause, which transfers nothing.
func UnwrapCause(f Fault) (cause Fault, ok bool) {
	d := f.detail
	if d == nil {
		return Fault{}, false
	}
	c := d.cause
	if !d.release() {
		// Already consumed elsewhere; the handle is stale.
		return Fault{}, false
	}
	if c == nil {
		return Fault{}, false
	}
	if cf, isFault := c.(Fault); isFault {
		return cf, true
	}
	return From(c), true
}

// Cause returns a view of f's immediate cause without consuming anything.
func Cause(f Fault) (Fault, bool) {
	d := f.live()
	if d == nil || d.cause == nil {
		return Fault{}, false
	}
	if cf, ok := d.cause.(Fault); ok {
		return cf, true
	}
	return From(d.cause), true
}

// Mask deliberately discards f — the whole chain, detail released — and
// substitutes fallback. This is the sanctioned way to respond to a fault and
// suppress it rather than propagate:
//
//	cfg := xgxfault.Mask(loadFault, defaultConfig())
//
// Masking an already-consumed or zero fault just returns fallback.
func Mask[T any](f Fault, fallback T) T {
	if f.detail != nil {
		f.detail.release()
	}
	return fallback
}

// Discard is Mask without a substitute value: it terminally releases f.
func Discard(f Fault) {
	if f.detail != nil {
		f.detail.release()
	}
}

// MatchesAny walks f's cause chain — including joined multi-causes and
// adopted foreign links — and reports whether any fault in it carries one of
// the candidate kinds. The walk is iterative, bounded by chain length, and
// short-circuits on the first match.
func MatchesAny(f Fault, kinds ...Kind) bool {
	if len(kinds) == 0 {
		return false
	}
	found := false
	Walk(f.Err(), func(err error) bool {
		cf, ok := err.(Fault)
		if !ok {
			return true
		}
		for _, k := range kinds {
			if cf.kind == k {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

// KindOf returns the kind of the first fault found in err's unwrap chain, or
// KindNone for nil and fault-free errors.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var f Fault
	if errors.As(err, &f) {
		return f.kind
	}
	return KindNone
}

// HasKind reports whether any fault anywhere in err's unwrap graph carries
// kind k. Unlike KindOf it inspects every link, not just the first fault.
func HasKind(err error, k Kind) bool {
	if err == nil {
		return false
	}
	found := false
	Walk(err, func(e error) bool {
		if f, ok := e.(Fault); ok && f.kind == k {
			found = true
			return false
		}
		return true
	})
	return found
}
