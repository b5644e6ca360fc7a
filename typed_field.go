// typed_field.go — optional type-safe context accessors.
//
// TypedField is an ergonomic layer over the plain context API (With/Ctx):
// declare a field once with its Go type and read it back without hand-written
// assertions. Reads scan the fault's ordered field slice directly, newest
// first, so Get allocates nothing.
//
//	var fUserID = xgxfault.TypedKey[int64]("user_id")
//
//	f := xgxfault.NotFound("user", 42)
//	f = fUserID.Set(f, 42)
//	id, ok := fUserID.Get(f)
package xgxfault

import "fmt"

// TypedField binds a context key to the Go type stored under it.
type TypedField[T any] struct {
	key string
}

// TypedKey constructs a TypedField[T] for key. Keys SHOULD be snake_case.
func TypedKey[T any](key string) TypedField[T] {
	return TypedField[T]{key: key}
}

// Key returns the underlying string key.
func (tf TypedField[T]) Key() string { return tf.key }

// Set attaches (key = val) and returns a NEW Fault, like With.
func (tf TypedField[T]) Set(f Fault, val T) Fault {
	return f.With(tf.key, any(val))
}

// Get retrieves the typed value from f's context. Returns (zero, false) when
// the field is absent or its dynamic type is not exactly T. Duplicate keys
// resolve newest-wins. Zero allocations.
func (tf TypedField[T]) Get(f Fault) (T, bool) {
	var zero T
	d := f.live()
	if d == nil {
		return zero, false
	}
	for i := len(d.ctx) - 1; i >= 0; i-- {
		if d.ctx[i].Key != tf.key {
			continue
		}
		tv, ok := d.ctx[i].Val.(T)
		return tv, ok
	}
	return zero, false
}

// MustGet retrieves the typed value or panics. Intended for tests and
// contexts where absence is a programming error.
func (tf TypedField[T]) MustGet(f Fault) T {
	var zero T
	v, ok := tf.Get(f)
	if !ok {
		panic(fmt.Errorf("xgxfault.TypedField[%T](%q): field missing or wrong type", zero, tf.key))
	}
	return v
}
