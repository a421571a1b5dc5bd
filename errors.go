package daycircle

import "fmt"

// Kind identifies a class of daycircle failure. Scalar decode kinds are
// always absorbed during the line scan; only document- and assembly-level
// kinds reach callers.
type Kind string

const (
	KindInvalidDate  Kind = "invalid-date-format"
	KindInvalidColor Kind = "invalid-colour-code"
	KindInvalidTime  Kind = "invalid-time-format"
	KindMissingDay   Kind = "missing-day-metadata"
	KindNoTargets    Kind = "no-targets"
	KindMultiTarget  Kind = "multi-target-unsupported"
	KindRender       Kind = "rendering-failure"
)

// Error is a failure with an attached kind.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// ErrorKind reports the kind name, for result.Describe.
func (e *Error) ErrorKind() string { return string(e.Kind) }

// NewError builds an Error with a formatted message.
func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
