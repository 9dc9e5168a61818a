package globre

import (
	"errors"
	"fmt"
)

// ErrBadPattern is reported, by way of [errors.Is], for every pattern that
// fails to compile. Callers that want the offending span or the precise
// failure should unpack the concrete [*Error] with [errors.As].
var ErrBadPattern = errors.New("bad glob pattern")

// ErrorKind classifies the ways a pattern can fail to compile.
type ErrorKind int

const (
	// UnterminatedEscape is a backslash at the end of the pattern with
	// nothing left to escape.
	UnterminatedEscape ErrorKind = iota + 1

	// UnclosedClass is a character class that is never closed. A class must
	// open and close within a single path segment, so a separator before the
	// closing bracket also reports this kind.
	UnclosedClass

	// InvalidRange is a character class range whose low endpoint sorts after
	// its high endpoint, such as [z-a].
	InvalidRange

	// UnclosedAlternation is a brace group that is never closed.
	UnclosedAlternation

	// EngineRejected means the regexp engine refused the translated
	// expression. The translator only emits valid regexp syntax, so this
	// kind indicates a bug in this package rather than in the pattern.
	EngineRejected
)

func (k ErrorKind) String() string {
	switch k {
	case UnterminatedEscape:
		return "unterminated escape"
	case UnclosedClass:
		return "unclosed character class"
	case InvalidRange:
		return "invalid character class range"
	case UnclosedAlternation:
		return "unclosed alternation"
	case EngineRejected:
		return "translation rejected by regexp engine"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error describes why and, crucially, where a pattern failed to compile.
// Start and End delimit the offending syntax as byte offsets into the
// pattern, half-open on the right, so callers can point a caret at the
// problem instead of echoing the whole pattern.
type Error struct {
	Kind  ErrorKind
	Start int
	End   int

	// Detail carries the engine's own message when Kind is EngineRejected.
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("pattern syntax error near offset %d: %s: %s", e.Start, e.Kind, e.Detail)
	}
	return fmt.Sprintf("pattern syntax error near offset %d: %s", e.Start, e.Kind)
}

// Unwrap ties every *Error to the ErrBadPattern sentinel.
func (e *Error) Unwrap() error { return ErrBadPattern }
