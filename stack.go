// stack.go — selective stack capture.
//
// Stacks complement Location: the location pins the construction site at
// near-zero cost, while a stack records the whole path there and is paid for
// only when requested (WithStack / Internal).
//
// Implementation uses runtime.Callers + runtime.CallersFrames, which expands
// inlined frames correctly, with a bounded depth.
package xgxfault

import "runtime"

// Frame is a single call site in a captured stack.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string // fully-qualified (pkg.Func or recv.method)
}

// Stack is a slice of Frames, most recent call first.
type Stack []Frame

// defaultMaxDepth bounds capture work on exceptional paths while keeping
// enough context to be useful.
const defaultMaxDepth = 64

// captureStackDefault captures a stack skipping 'skip' frames above its
// caller, with the default depth bound.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack captures up to maxDepth frames, skipping 'skip' frames above
// its caller.
//
// Skip accounting: runtime.Callers(0) would report itself, so we add +3 to
// step over runtime.Callers, captureStack, and captureStackDefault; the first
// recorded frame is then the caller-visible site.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}
