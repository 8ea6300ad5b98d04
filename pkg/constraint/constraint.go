// Package constraint provides composable matchers over a token stream.
//
// A Constraint is a predicate-with-extraction: it attempts to consume a
// prefix of the remaining input tokens and, on success, produces a typed
// value. Command names and command arguments are the same thing under this
// abstraction; an exact-word constraint names a command, a numeric range
// constraint extracts an argument, and combinators build sequences and
// alternatives out of both.
package constraint

import (
	"fmt"
	"strconv"

	"github.com/aretw0/parley/pkg/token"
)

// Unit is the value produced by constraints that carry no data, such as
// Exact and Always.
type Unit struct{}

// Constraint attempts to match a prefix of the remaining tokens.
//
// Parse must be pure and deterministic: it never mutates external state,
// and on failure it must leave the cursor untouched. Implementations that
// consume more than one token must probe on a copy and commit only on full
// success, so a failed match never partially consumes input.
type Constraint[T any] interface {
	// Parse attempts the match, advancing the cursor only on success.
	Parse(cur *token.Cursor) (T, bool)

	// Usage returns the help notation for this constraint, e.g. "quit"
	// or "<number 0..100>".
	Usage() string
}

// Named is implemented by constraints that match literal words (Exact and
// Either over named constraints). The dispatcher uses it to collect command
// names for help navigation and "did you mean" suggestions.
type Named interface {
	Tokens() []string
}

// Exact matches a single token equal to word, producing Unit.
func Exact(word string) Constraint[Unit] {
	return exact(word)
}

type exact string

func (e exact) Parse(cur *token.Cursor) (Unit, bool) {
	if t, ok := cur.Peek(); ok && t == string(e) {
		cur.Next()
		return Unit{}, true
	}
	return Unit{}, false
}

func (e exact) Usage() string { return string(e) }

func (e exact) Tokens() []string { return []string{string(e)} }

// Always matches unconditionally, consuming no tokens. It is the
// constraint behind fallback ("otherwise") commands.
func Always() Constraint[Unit] {
	return always{}
}

type always struct{}

func (always) Parse(cur *token.Cursor) (Unit, bool) { return Unit{}, true }

func (always) Usage() string { return "" }

// Number is the set of numeric types Range can extract.
type Number interface {
	~int | ~int64 | ~float64
}

// Range matches one token parseable as N within the half-open interval
// [lo, hi). Parse failures and out-of-range values are both non-matches.
func Range[N Number](lo, hi N) Constraint[N] {
	return rangeConstraint[N]{lo: lo, hi: hi}
}

type rangeConstraint[N Number] struct {
	lo, hi N
}

func (r rangeConstraint[N]) Parse(cur *token.Cursor) (N, bool) {
	var zero N
	probe := *cur
	t, ok := probe.Next()
	if !ok {
		return zero, false
	}
	v, err := parseNumber[N](t)
	if err != nil {
		return zero, false
	}
	if v < r.lo || v >= r.hi {
		return zero, false
	}
	*cur = probe
	return v, true
}

func (r rangeConstraint[N]) Usage() string {
	return fmt.Sprintf("<number %v..%v>", r.lo, r.hi)
}

func parseNumber[N Number](s string) (N, error) {
	var out N
	switch p := any(&out).(type) {
	case *int:
		v, err := strconv.Atoi(s)
		if err != nil {
			return out, err
		}
		*p = v
	case *int64:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return out, err
		}
		*p = v
	case *float64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return out, err
		}
		*p = v
	default:
		// Defined types over the base numerics: go through float64.
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return out, err
		}
		out = N(v)
	}
	return out, nil
}
