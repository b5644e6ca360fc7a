// kind.go — the classification discriminant and its registry.
//
// Intent:
//   - Keep Kind word-inline and trivially comparable so "is this a not-found
//     fault?" never touches the heap.
//   - Ship a small closed set of built-in kinds covering the usual failure
//     classes, plus a synchronized escape hatch (Register) for modules that
//     need their own kinds without a fork of the core.
//
// Conventions (documented, not enforced):
//   - Built-in codes are stable across releases; custom codes are stable
//     within a process run and depend on registration order.
//   - Register custom kinds during package init, before any lookups. The
//     registry is mutex-guarded, but interleaving registration with hot-path
//     classification is a design smell, not a supported pattern.
package xgxfault

import (
	"fmt"
	"sync"
)

// Kind classifies a fault into a machine-comparable category. It is a small
// integer so it can live inline in the Fault value; the name table is only
// consulted when rendering.
type Kind uint16

// KindNone is the kind of the zero Fault. It is never a valid classification
// for a constructed fault.
const KindNone Kind = 0

// Built-in kinds.
const (
	// Domain / validation
	KindNotFound Kind = iota + 1
	KindPermissionDenied
	KindInvalidInput
	KindConflict
	KindUnsupported

	// Infrastructure / time
	KindIOFailure
	KindTimeout
	KindUnavailable

	// Internal / meta
	KindInternal
	KindExternal  // adopted foreign error (see From)
	KindInterrupt // cooperative cancellation

	kindBuiltinEnd // keep last
)

// customBase is the first code handed out by Register. The gap above the
// built-ins leaves room to grow the closed set without renumbering.
const customBase Kind = 0x100

var builtinKindNames = [kindBuiltinEnd]string{
	KindNone:             "none",
	KindNotFound:         "not_found",
	KindPermissionDenied: "permission_denied",
	KindInvalidInput:     "invalid_input",
	KindConflict:         "conflict",
	KindUnsupported:      "unsupported",
	KindIOFailure:        "io_failure",
	KindTimeout:          "timeout",
	KindUnavailable:      "unavailable",
	KindInternal:         "internal",
	KindExternal:         "external",
	KindInterrupt:        "interrupt",
}

// registry holds custom kinds. Guarded by registryMu; reads on the String
// path take the read lock only for non-builtin kinds.
var (
	registryMu   sync.RWMutex
	customByName = map[string]Kind{}
	customNames  []string // index: Kind - customBase
)

// Register allocates (or returns the previously allocated) custom Kind for
// name. Registration is idempotent per name and safe for concurrent init
// paths; codes are assigned in registration order and are stable for the
// lifetime of the process.
//
// Registering a built-in name returns the built-in kind.
func Register(name string) Kind {
	if name == "" {
		panic("xgxfault: Register with empty kind name")
	}
	for k := KindNone + 1; k < kindBuiltinEnd; k++ {
		if builtinKindNames[k] == name {
			return k
		}
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if k, ok := customByName[name]; ok {
		return k
	}
	k := customBase + Kind(len(customNames))
	customByName[name] = k
	customNames = append(customNames, name)
	return k
}

// LookupKind resolves a kind name (built-in or registered) to its code.
func LookupKind(name string) (Kind, bool) {
	for k := KindNone + 1; k < kindBuiltinEnd; k++ {
		if builtinKindNames[k] == name {
			return k, true
		}
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	k, ok := customByName[name]
	return k, ok
}

// BuiltinKinds returns a defensive copy of the built-in kinds in a stable
// order (KindNone excluded).
func BuiltinKinds() []Kind {
	out := make([]Kind, 0, kindBuiltinEnd-1)
	for k := KindNone + 1; k < kindBuiltinEnd; k++ {
		out = append(out, k)
	}
	return out
}

// IsBuiltin reports whether k is one of the core's closed set.
func (k Kind) IsBuiltin() bool { return k > KindNone && k < kindBuiltinEnd }

// IsCustom reports whether k was handed out by Register.
func (k Kind) IsCustom() bool { return k >= customBase }

// String returns the kind's stable name: the built-in name, the registered
// name, or "kind(0xNN)" for codes this process never defined.
func (k Kind) String() string {
	if k < kindBuiltinEnd {
		return builtinKindNames[k]
	}
	if k >= customBase {
		registryMu.RLock()
		defer registryMu.RUnlock()
		if i := int(k - customBase); i < len(customNames) {
			return customNames[i]
		}
	}
	return fmt.Sprintf("kind(0x%x)", uint16(k))
}
