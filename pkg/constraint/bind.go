package constraint

import "github.com/aretw0/parley/pkg/token"

// Binder is a positional argument slot on a command: a constraint paired
// with a destination for its extracted value.
//
// Go methods cannot introduce type parameters, so the command builder
// cannot grow a tuple type as arguments are chained the way a generic
// return value would. Binder closes the gap in the style of the flag
// package: the caller supplies a typed destination up front and the
// handler closure reads it after a successful match.
type Binder interface {
	// Usage returns the help notation of the underlying constraint.
	Usage() string

	// Capture attempts the match and stores the value on success,
	// advancing the cursor. A failed capture leaves the cursor untouched.
	Capture(cur *token.Cursor) bool
}

// Bind pairs a constraint with a destination pointer.
func Bind[T any](c Constraint[T], dst *T) Binder {
	return binder[T]{c: c, dst: dst}
}

type binder[T any] struct {
	c   Constraint[T]
	dst *T
}

func (b binder[T]) Usage() string { return b.c.Usage() }

// Tokens forwards the literal names of a Named constraint, so bound
// commands still surface their names to snapshots and suggestions.
func (b binder[T]) Tokens() []string {
	if n, ok := b.c.(Named); ok {
		return n.Tokens()
	}
	return nil
}

func (b binder[T]) Capture(cur *token.Cursor) bool {
	v, ok := b.c.Parse(cur)
	if !ok {
		return false
	}
	*b.dst = v
	return true
}
