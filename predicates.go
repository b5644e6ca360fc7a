// predicates.go — policy-free classification helpers.
//
// Thin wrappers over kind matching for the questions callers ask most. All
// of them are chain-aware (they inspect every link, not just the outermost)
// and nil-safe.
package xgxfault

import (
	"context"
	"errors"
)

// IsNotFound reports whether err's chain contains a not_found fault.
func IsNotFound(err error) bool { return HasKind(err, KindNotFound) }

// IsPermissionDenied reports whether err's chain contains a
// permission_denied fault.
func IsPermissionDenied(err error) bool { return HasKind(err, KindPermissionDenied) }

// IsInvalidInput reports whether err's chain contains an invalid_input fault.
func IsInvalidInput(err error) bool { return HasKind(err, KindInvalidInput) }

// IsTimeout reports whether err's chain contains a timeout fault or the
// stdlib deadline sentinel.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	return HasKind(err, KindTimeout) || errors.Is(err, context.DeadlineExceeded)
}

// IsInterrupt reports whether err denotes cooperative cancellation: an
// interrupt fault or the canonical context sentinels.
func IsInterrupt(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return HasKind(err, KindInterrupt)
}

// Retryable is a tiny heuristic over kinds that commonly represent transient
// conditions: timeout and unavailable. It implements no backoff or budget;
// retry policy belongs to higher layers.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	return HasKind(err, KindTimeout) || HasKind(err, KindUnavailable)
}
