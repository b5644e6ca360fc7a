// location.go — call-site provenance for faults.
//
// Every constructor records the file, line, and column of the failure site in
// the fault's detail. Capture goes through runtime.Caller, which resolves
// file and line from static tables laid down by the compiler — no stack
// unwinding beyond the one requested frame, no reflection, and it cannot
// fail: a frame that cannot be resolved yields the zero Location.
//
// The Go runtime does not expose column numbers, so runtime-captured
// locations carry Col 0. Code-generation front-ends that extract exact
// (file, line, col) literals syntactically should inject them via At and the
// *At constructor variants (NewAt, WrapAt).
package xgxfault

import (
	"runtime"
	"strconv"
)

// Location identifies the source position where a fault was constructed or
// wrapped. It is immutable, trivially copyable, and owns nothing.
type Location struct {
	File string
	Line int
	Col  int
}

// IsZero reports whether l carries no position.
func (l Location) IsZero() bool { return l.File == "" && l.Line == 0 && l.Col == 0 }

// String renders "file:line:col".
func (l Location) String() string {
	return l.File + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Col)
}

// Here captures the location of its own call site.
func Here() Location {
	return captureLocation(1)
}

// At builds a Location from literals. This is the injection point for macro
// or code-generation front-ends that resolve positions (including columns)
// syntactically.
func At(file string, line, col int) Location {
	return Location{File: file, Line: line, Col: col}
}

// captureLocation resolves the frame skip levels above its caller
// (skip 0 = the caller itself). Capture cannot fail; unresolvable frames
// produce the zero Location.
func captureLocation(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	return Location{File: file, Line: line}
}
