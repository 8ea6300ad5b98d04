package constraint

import (
	"strconv"

	"github.com/aretw0/parley/pkg/token"
)

// String matches any single token and extracts it verbatim.
func String() Constraint[string] {
	return stringArg{}
}

type stringArg struct{}

func (stringArg) Parse(cur *token.Cursor) (string, bool) {
	return cur.Next()
}

func (stringArg) Usage() string { return "<string>" }

// Int matches any single token parseable as a signed integer.
func Int() Constraint[int] {
	return intArg{}
}

type intArg struct{}

func (intArg) Parse(cur *token.Cursor) (int, bool) {
	probe := *cur
	t, ok := probe.Next()
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(t)
	if err != nil {
		return 0, false
	}
	*cur = probe
	return v, true
}

func (intArg) Usage() string { return "<int>" }

// Float64 matches any single token parseable as a floating point number.
func Float64() Constraint[float64] {
	return floatArg{}
}

type floatArg struct{}

func (floatArg) Parse(cur *token.Cursor) (float64, bool) {
	probe := *cur
	t, ok := probe.Next()
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, false
	}
	*cur = probe
	return v, true
}

func (floatArg) Usage() string { return "<number>" }
