// chain.go — traversal over mixed fault/foreign error graphs.
//
// Fault chains are acyclic by construction, but once foreign errors enter
// through From/WrapErr the graph is whatever the rest of the program built,
// including errors.Join trees (Unwrap() []error) and, in pathological cases,
// cycles. Traversal therefore handles both unwrap forms, guards against
// revisits, and caps depth.
//
// Seen-set note: map[error] keys panic for non-comparable dynamic types, so
// the guard is split — a map[error] for comparable dynamics and a pointer
// identity map for non-comparable pointer types. Anything else is treated as
// acyclic and bounded by the depth cap.
package xgxfault

import (
	"errors"
	"reflect"
)

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// maxWalkDepth caps traversal work on runaway graphs. Fault chains of any
// realistic depth sit far below it.
const maxWalkDepth = 1 << 16

func isComparable(err error) bool {
	if err == nil {
		return false
	}
	return reflect.TypeOf(err).Comparable()
}

func ptrID(err error) (uintptr, bool) {
	rv := reflect.ValueOf(err)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		return rv.Pointer(), true
	}
	return 0, false
}

// markSeen records err in the appropriate seen set and reports whether it
// was newly marked.
func markSeen(err error, seenErr map[error]struct{}, seenPtr map[uintptr]struct{}) bool {
	if err == nil {
		return false
	}
	if isComparable(err) {
		if _, dup := seenErr[err]; dup {
			return false
		}
		seenErr[err] = struct{}{}
		return true
	}
	if id, ok := ptrID(err); ok {
		if _, dup := seenPtr[id]; dup {
			return false
		}
		seenPtr[id] = struct{}{}
		return true
	}
	return true
}

// Walk visits every distinct node in err's unwrap graph in pre-order (node
// before its causes) and stops early when visit returns false. nil err or
// visit is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	seenErr := make(map[error]struct{}, 8)
	seenPtr := make(map[uintptr]struct{}, 8)
	stack := make([]error, 0, 8)

	stack = append(stack, err)
	markSeen(err, seenErr, seenPtr)

	steps := 0
	for len(stack) > 0 {
		steps++
		if steps > maxWalkDepth {
			return
		}
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		// Fast path: fault links need no interface dispatch.
		if f, ok := cur.(Fault); ok {
			if d := f.live(); d != nil && d.cause != nil {
				if markSeen(d.cause, seenErr, seenPtr) {
					stack = append(stack, d.cause)
				}
			}
			continue
		}
		if m, ok := cur.(multiUnwrapper); ok {
			kids := m.Unwrap()
			// Push in reverse for left-to-right visit order.
			for i := len(kids) - 1; i >= 0; i-- {
				if kids[i] == nil {
					continue
				}
				if markSeen(kids[i], seenErr, seenPtr) {
					stack = append(stack, kids[i])
				}
			}
			continue
		}
		if s, ok := cur.(singleUnwrapper); ok {
			if u := s.Unwrap(); u != nil && markSeen(u, seenErr, seenPtr) {
				stack = append(stack, u)
			}
		}
	}
}

// Flatten returns the leaf errors of err's unwrap graph (nodes with no
// causes) in depth-first order. nil yields nil.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	var out []error
	Walk(err, func(e error) bool {
		if isLeaf(e) {
			out = append(out, e)
		}
		return true
	})
	return out
}

func isLeaf(err error) bool {
	if f, ok := err.(Fault); ok {
		d := f.live()
		return d == nil || d.cause == nil
	}
	if m, ok := err.(multiUnwrapper); ok {
		for _, k := range m.Unwrap() {
			if k != nil {
				return false
			}
		}
		return true
	}
	if s, ok := err.(singleUnwrapper); ok {
		return s.Unwrap() == nil
	}
	return true
}

// Root returns the innermost error along err's first unwrap path — for a
// fault chain, the original failure everything else wrapped. nil-safe.
func Root(err error) error {
	leaves := Flatten(err)
	if len(leaves) == 0 {
		return nil
	}
	return leaves[0]
}

// Has is a nil-safe errors.Is.
func Has(err, target error) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.Is(err, target)
}
