package constraint

import (
	"strings"

	"github.com/aretw0/parley/pkg/token"
)

// Either tries a, then b against the same starting position. The first
// alternative to match wins; for disjoint constraints the order of the two
// does not change the extracted value. Its main use is aliasing, e.g.
// Either(Exact("q"), Exact("quit")).
func Either[T any](a, b Constraint[T]) Constraint[T] {
	return either[T]{a: a, b: b}
}

type either[T any] struct {
	a, b Constraint[T]
}

func (e either[T]) Parse(cur *token.Cursor) (T, bool) {
	probe := *cur
	if v, ok := e.a.Parse(&probe); ok {
		*cur = probe
		return v, true
	}
	probe = *cur
	if v, ok := e.b.Parse(&probe); ok {
		*cur = probe
		return v, true
	}
	var zero T
	return zero, false
}

func (e either[T]) Usage() string {
	return "[" + e.a.Usage() + "|" + e.b.Usage() + "]"
}

// Tokens flattens the literal names of both alternatives. The result is
// empty unless both sides are Named.
func (e either[T]) Tokens() []string {
	na, ok := e.a.(Named)
	if !ok {
		return nil
	}
	nb, ok := e.b.(Named)
	if !ok {
		return nil
	}
	return append(append([]string{}, na.Tokens()...), nb.Tokens()...)
}

// Pair is the value of a two-constraint tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the value of a three-constraint tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple2 matches a, then b against the immediate remainder. It
// short-circuits on the first failing element and consumes nothing in that
// case; on success the consumed count is the sum of both elements.
func Tuple2[A, B any](a Constraint[A], b Constraint[B]) Constraint[Pair[A, B]] {
	return tuple2[A, B]{a: a, b: b}
}

type tuple2[A, B any] struct {
	a Constraint[A]
	b Constraint[B]
}

func (t tuple2[A, B]) Parse(cur *token.Cursor) (Pair[A, B], bool) {
	var zero Pair[A, B]
	probe := *cur
	av, ok := t.a.Parse(&probe)
	if !ok {
		return zero, false
	}
	bv, ok := t.b.Parse(&probe)
	if !ok {
		return zero, false
	}
	*cur = probe
	return Pair[A, B]{First: av, Second: bv}, true
}

func (t tuple2[A, B]) Usage() string {
	return joinUsage(t.a.Usage(), t.b.Usage())
}

// Tuple3 is Tuple2 extended to three positional elements.
func Tuple3[A, B, C any](a Constraint[A], b Constraint[B], c Constraint[C]) Constraint[Triple[A, B, C]] {
	return tuple3[A, B, C]{a: a, b: b, c: c}
}

type tuple3[A, B, C any] struct {
	a Constraint[A]
	b Constraint[B]
	c Constraint[C]
}

func (t tuple3[A, B, C]) Parse(cur *token.Cursor) (Triple[A, B, C], bool) {
	var zero Triple[A, B, C]
	probe := *cur
	av, ok := t.a.Parse(&probe)
	if !ok {
		return zero, false
	}
	bv, ok := t.b.Parse(&probe)
	if !ok {
		return zero, false
	}
	cv, ok := t.c.Parse(&probe)
	if !ok {
		return zero, false
	}
	*cur = probe
	return Triple[A, B, C]{First: av, Second: bv, Third: cv}, true
}

func (t tuple3[A, B, C]) Usage() string {
	return joinUsage(t.a.Usage(), t.b.Usage(), t.c.Usage())
}

// Discard keeps the match of c but drops its value. It lets any data
// constraint serve as a pure command name.
func Discard[T any](c Constraint[T]) Constraint[Unit] {
	return discard[T]{c: c}
}

type discard[T any] struct {
	c Constraint[T]
}

func (d discard[T]) Parse(cur *token.Cursor) (Unit, bool) {
	_, ok := d.c.Parse(cur)
	return Unit{}, ok
}

func (d discard[T]) Usage() string { return d.c.Usage() }

func (d discard[T]) Tokens() []string {
	if n, ok := d.c.(Named); ok {
		return n.Tokens()
	}
	return nil
}

// Optional matches c zero or one time. It always succeeds; the extracted
// value is nil when c did not match.
func Optional[T any](c Constraint[T]) Constraint[*T] {
	return optional[T]{c: c}
}

type optional[T any] struct {
	c Constraint[T]
}

func (o optional[T]) Parse(cur *token.Cursor) (*T, bool) {
	probe := *cur
	if v, ok := o.c.Parse(&probe); ok {
		*cur = probe
		return &v, true
	}
	return nil, true
}

func (o optional[T]) Usage() string { return "(" + o.c.Usage() + ")?" }

// Many matches c as often as it will go, including zero times, so it
// always succeeds. Zero-width constraints are not advanced repeatedly.
func Many[T any](c Constraint[T]) Constraint[[]T] {
	return many[T]{c: c}
}

type many[T any] struct {
	c Constraint[T]
}

func (m many[T]) Parse(cur *token.Cursor) ([]T, bool) {
	var out []T
	for {
		before := cur.Depth()
		probe := *cur
		v, ok := m.c.Parse(&probe)
		if !ok || probe.Depth() == before {
			return out, true
		}
		*cur = probe
		out = append(out, v)
	}
}

func (m many[T]) Usage() string { return "(" + m.c.Usage() + ")*" }

func joinUsage(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
