// fields.go — immutable structured context for faults.
//
// Representation:
//   - Internally an append-only []Field, preserving insertion order (Go map
//     iteration order is unspecified; a slice keeps output deterministic).
//   - "Mutation" always allocates a fresh backing array, never reuses spare
//     capacity, so published slices are safe to share across fault copies.
//   - Callers read through Fault.Context(), a copy-on-read map.
package xgxfault

// Field is a single contextual key-value pair attached to a fault's detail.
// Keys SHOULD be snake_case for consistency; the core does not enforce it.
type Field struct {
	Key string
	Val any
}

// fields is the internal context representation. Treat as append-only; never
// modify elements in place once published.
type fields []Field

// emptyFields is the canonical empty context.
var emptyFields = make(fields, 0)

// fieldsCloneAppend returns a NEW slice holding dst's contents followed by
// add. A fresh backing array is always allocated to rule out aliasing through
// append.
func fieldsCloneAppend(dst fields, add ...Field) fields {
	if len(add) == 0 {
		if len(dst) == 0 {
			return emptyFields
		}
		out := make(fields, len(dst))
		copy(out, dst)
		return out
	}
	out := make(fields, len(dst)+len(add))
	copy(out, dst)
	copy(out[len(dst):], add)
	return out
}

// fieldsFromKV parses variadic key-value arguments into fields.
//
// Rules:
//   - Pairs are read left-to-right as (key, value).
//   - A non-string "key" drops the ENTIRE pair (key and its value), so later
//     pairs stay aligned instead of a value silently becoming the next key.
//   - A trailing key with no value becomes (key, nil).
func fieldsFromKV(kv ...any) fields {
	if len(kv) == 0 {
		return emptyFields
	}
	out := make(fields, 0, len(kv)/2+1)
	for i := 0; i < len(kv); {
		k, ok := kv[i].(string)
		if !ok {
			if i+1 < len(kv) {
				i += 2
			} else {
				i++
			}
			continue
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
			i += 2
		} else {
			i++
		}
		out = append(out, Field{Key: k, Val: v})
	}
	if len(out) == 0 {
		return emptyFields
	}
	return out
}

// fieldsToMap builds a NEW map from fs (copy-on-read). Duplicate keys
// resolve last-write-wins.
func fieldsToMap(fs fields) map[string]any {
	if len(fs) == 0 {
		return nil
	}
	m := make(map[string]any, len(fs))
	for _, f := range fs {
		m[f.Key] = f.Val
	}
	return m
}
