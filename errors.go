package parley

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the three dispatch failure kinds. A *DispatchError
// unwraps to the sentinel of its kind, so callers can branch with errors.Is
// without touching the struct.
var (
	// ErrNoMatch means no registered command matched the input at some
	// scope, or a matched command turned out to be a dead end.
	ErrNoMatch = errors.New("no command matched")

	// ErrBadArgument means a command name matched but a following argument
	// constraint rejected its token.
	ErrBadArgument = errors.New("invalid argument")

	// ErrTrailingInput means a handler was about to run but unconsumed
	// tokens remained.
	ErrTrailingInput = errors.New("trailing input")
)

// ErrorKind classifies a dispatch failure.
type ErrorKind int

const (
	// NoMatch: no command at some scope matched the current token.
	NoMatch ErrorKind = iota
	// BadArgument: a name matched but a data constraint failed.
	BadArgument
	// TrailingInput: tokens remained after a complete command.
	TrailingInput
)

func (k ErrorKind) String() string {
	switch k {
	case NoMatch:
		return "no match"
	case BadArgument:
		return "bad argument"
	case TrailingInput:
		return "trailing input"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case BadArgument:
		return ErrBadArgument
	case TrailingInput:
		return ErrTrailingInput
	default:
		return ErrNoMatch
	}
}

// DispatchError is the single structured failure value produced by an
// execute-mode traversal. Depth is the index of the token the failure
// points at; it can equal len(Tokens) when input ended too early.
type DispatchError struct {
	Kind    ErrorKind
	Depth   int
	Tokens  []string
	Message string
}

func (e *DispatchError) Error() string {
	at := "end of input"
	if e.Depth < len(e.Tokens) {
		at = fmt.Sprintf("%q", e.Tokens[e.Depth])
	}
	return fmt.Sprintf("%s at token %d (%s): %s", e.Kind, e.Depth, at, e.Message)
}

// Unwrap maps the error onto its kind sentinel for errors.Is.
func (e *DispatchError) Unwrap() error {
	return e.Kind.sentinel()
}

// Line reconstructs the input as one space-joined line, used by the
// diagnostic renderer to echo what the user typed.
func (e *DispatchError) Line() string {
	return strings.Join(e.Tokens, " ")
}
