// join.go — formatting-aware multi-fault join.
//
// Mirrors errors.Join for Error() and Unwrap() []error semantics (so
// errors.Is/As and Walk traverse the children), while additionally
// implementing fmt.Formatter so %+v recurses into each child's verbose form.
package xgxfault

import (
	"fmt"
	"strings"
)

// joined aggregates multiple errors behind Unwrap() []error.
type joined struct {
	errs []error // non-nil children only
}

// Error concatenates child Error() strings with newlines, matching
// errors.Join.
func (j *joined) Error() string {
	if len(j.errs) == 1 {
		return j.errs[0].Error()
	}
	var sb strings.Builder
	for i, e := range j.errs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// Unwrap exposes the children to stdlib traversal.
func (j *joined) Unwrap() []error { return j.errs }

// Format renders %+v as each child's verbose form, newline-separated;
// %v/%s/%q fall back to the concise Error() shape.
func (j *joined) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			for i, e := range j.errs {
				if i > 0 {
					_, _ = fmt.Fprint(s, "\n")
				}
				_, _ = fmt.Fprintf(s, "%+v", e)
			}
			return
		}
		formatConcise(s, j)
	case 's':
		formatConcise(s, j)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", j.Error())
	default:
		formatConcise(s, j)
	}
}

// Join aggregates errors, ignoring nils:
//   - all nil → nil
//   - one non-nil → that error, identity preserved
//   - otherwise → a container whose Unwrap() []error holds the rest
//
// Zero Faults should be bridged with Err() before joining; a literal zero
// Fault is a non-nil error and is kept.
func Join(errs ...error) error {
	nz := make([]error, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			nz = append(nz, e)
		}
	}
	switch len(nz) {
	case 0:
		return nil
	case 1:
		return nz[0]
	default:
		return &joined{errs: nz}
	}
}

// Append joins more errors onto an existing head without allocating on the
// all-nil fast paths.
func Append(head error, more ...error) error {
	if head == nil {
		return Join(more...)
	}
	any := false
	for _, e := range more {
		if e != nil {
			any = true
			break
		}
	}
	if !any {
		return head
	}
	combined := make([]error, 0, 1+len(more))
	combined = append(combined, head)
	combined = append(combined, more...)
	return Join(combined...)
}
