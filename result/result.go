// Package result provides a value-plus-error pair used by the daycircle
// decoders and public entry points, so that a failed parse can still hand
// back the partial data it collected.
package result

import (
	"errors"
	"fmt"
)

// Result pairs a value with an optional error. A Result built with Fail
// carries a caller-supplied fallback value; on document-level failures this
// is how partial parse data travels alongside the error.
type Result[T any] struct {
	value T
	err   error
}

// OK returns a successful Result holding value.
func OK[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail returns a failed Result holding err and a fallback value.
func Fail[T any](fallback T, err error) Result[T] {
	return Result[T]{value: fallback, err: err}
}

// IsOK reports whether no error is attached.
func (r Result[T]) IsOK() bool { return r.err == nil }

// Unwrap returns the value and the attached error. Callers must check the
// error before trusting the value; on failure the value is only a fallback.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// Value returns the held value regardless of error state. Use this to reach
// the partial data attached to a document-level failure.
func (r Result[T]) Value() T { return r.value }

// Err returns the attached error, or nil.
func (r Result[T]) Err() error { return r.err }

// Describe returns a one-line message for the failure, suffixed with the
// failure kind when the error carries one, or "" for a successful Result.
func (r Result[T]) Describe() string {
	if r.err == nil {
		return ""
	}

	msg := r.err.Error()

	var kinder interface{ ErrorKind() string }
	if errors.As(r.err, &kinder) {
		if msg == "" {
			return kinder.ErrorKind()
		}
		return msg + " (" + kinder.ErrorKind() + ")"
	}

	return msg
}

// Guard runs fn and converts its outcome into a Result. A panic inside fn is
// recovered and returned as a failure holding fallback. Guard wraps the
// public entry points only; the line-by-line scan drops bad lines on purpose
// and must not run under it.
func Guard[T any](fallback T, fn func() (T, error)) (res Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Fail(fallback, fmt.Errorf("recovered: %v", rec))
		}
	}()

	value, err := fn()
	if err != nil {
		return Fail(fallback, err)
	}
	return OK(value)
}
