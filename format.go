// format.go — fmt.Formatter for faults.
//
// Behavior:
//
//	%s, %v   → concise one-line string (Error()).
//	%q       → quoted Error().
//	%+v      → verbose, structured multi-line form, one block per chain link,
//	           outermost first and innermost LAST (this order is part of the
//	           package contract):
//
//	             kind=<kind> msg="<message>" at=<file:line:col>
//	             ctx: key1=val1 key2=val2
//	             stack:
//	               funcA file.go:123
//	             cause: <next link in the same layout>
//
// This text form is the package's only rendering of a fault; there is no
// serialization format beyond it.
package xgxfault

import (
	"fmt"
	"io"
)

func formatConcise(w io.Writer, e error) {
	// write errors are ignored on formatting paths
	_, _ = io.WriteString(w, e.Error())
}

// formatVerbose renders the whole chain. Fault-to-fault links are followed
// iteratively so arbitrarily deep chains never recurse; a foreign tail is
// handed back to fmt once, with %+v, so its own Formatter (if any) applies.
func formatVerbose(w io.Writer, f Fault) {
	for {
		d := f.live()
		if d == nil {
			_, _ = fmt.Fprintf(w, "kind=%s", f.kind)
			return
		}
		_, _ = fmt.Fprintf(w, "kind=%s msg=%q", f.kind, d.msg)
		if !d.loc.IsZero() {
			_, _ = fmt.Fprintf(w, " at=%s", d.loc)
		}
		if len(d.ctx) > 0 {
			_, _ = io.WriteString(w, "\nctx:")
			for _, fl := range d.ctx {
				if fl.Key != "" {
					_, _ = fmt.Fprintf(w, " %s=%v", fl.Key, fl.Val)
				}
			}
		}
		if len(d.stk) > 0 {
			_, _ = io.WriteString(w, "\nstack:")
			for _, fr := range d.stk {
				_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
			}
		}
		if d.cause == nil {
			return
		}
		_, _ = io.WriteString(w, "\ncause: ")
		cf, ok := d.cause.(Fault)
		if !ok {
			_, _ = fmt.Fprintf(w, "%+v", d.cause)
			return
		}
		f = cf
	}
}

// Format implements fmt.Formatter.
func (f Fault) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, f)
			return
		}
		formatConcise(s, f)
	case 's':
		formatConcise(s, f)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", f.Error())
	default:
		formatConcise(s, f)
	}
}
