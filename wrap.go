// wrap.go — wrapping, conversion, and adoption of causes.
//
// Wrapping is the sanctioned way to add context as a fault crosses an
// abstraction layer: the new fault owns the old one as its type-erased cause
// and records the wrap site's Location. The chain is acyclic by construction
// — a wrap always allocates a fresh detail and can only reference values
// that were fully formed before the call.
//
// Conversion (Convert) reclassifies across module boundaries without either
// side knowing the other's concrete kinds: the original travels along as the
// cause, never discarded.
//
// Adoption (From) brings arbitrary foreign errors into the fault model so
// mixed chains traverse uniformly.
package xgxfault

// Wrap constructs a new fault of the given kind that owns cause as its
// context. The wrap site's Location is captured; cause's own kind, location,
// and chain ride along untouched and are recoverable via UnwrapCause.
//
// A zero cause degenerates to New: the resulting fault has no cause link.
func Wrap(kind Kind, cause Fault, msg string, kv ...any) Fault {
	return newFault(kind, msg, fieldsFromKV(kv...), cause.Err(), 1)
}

// WrapAt is Wrap with an explicit, front-end-supplied wrap-site Location.
func WrapAt(at Location, kind Kind, cause Fault, msg string, kv ...any) Fault {
	return Fault{
		kind: kind,
		detail: &detail{
			msg:   msg,
			loc:   at,
			cause: cause.Err(),
			ctx:   fieldsFromKV(kv...),
		},
	}
}

// WrapErr wraps an arbitrary error as the cause of a new fault. nil err
// behaves like New. Foreign errors stay type-erased behind the cause link;
// errors.Is/As still reach them through Unwrap.
func WrapErr(kind Kind, err error, msg string, kv ...any) Fault {
	return newFault(kind, msg, fieldsFromKV(kv...), err, 1)
}

// Convert reclassifies f under a new kind while preserving the original as
// the cause. This is how cross-module fault types interoperate: the caller
// names its own category and the producer's fault remains inspectable below
// it. Conversion is always representable; it cannot fail.
//
// Converting the zero Fault yields a kind-only fault with no cause.
func Convert(kind Kind, f Fault) Fault {
	return newFault(kind, "", emptyFields, f.Err(), 1)
}

// From adopts any error into the fault model without adding policy:
//   - nil            → zero Fault
//   - Fault          → returned as-is (identity preserved)
//   - anything else  → an external fault owning err as cause
//
// Adoption captures the adoption site's Location but no stack; callers can
// opt in with WithStack.
func From(err error) Fault {
	if err == nil {
		return Fault{}
	}
	if f, ok := err.(Fault); ok {
		return f
	}
	return newFault(KindExternal, "", emptyFields, err, 1)
}
