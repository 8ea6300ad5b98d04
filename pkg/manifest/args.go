package manifest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/parley/pkg/constraint"
	"github.com/aretw0/parley/pkg/token"
)

type argKind int

const (
	argString argKind = iota
	argInt
	argNumber
	argIntRange
	argNumberRange
)

// argSpec is the parsed form of an Args entry.
type argSpec struct {
	kind   argKind
	loInt  int
	hiInt  int
	loNum  float64
	hiNum  float64
}

func parseArgSpec(s string) (argSpec, error) {
	base, bounds, hasBounds := strings.Cut(s, ":")
	switch base {
	case "string":
		if hasBounds {
			return argSpec{}, fmt.Errorf("arg %q: string takes no bounds", s)
		}
		return argSpec{kind: argString}, nil
	case "int":
		if !hasBounds {
			return argSpec{kind: argInt}, nil
		}
		lo, hi, err := splitBounds(bounds)
		if err != nil {
			return argSpec{}, fmt.Errorf("arg %q: %w", s, err)
		}
		loI, err1 := strconv.Atoi(lo)
		hiI, err2 := strconv.Atoi(hi)
		if err1 != nil || err2 != nil {
			return argSpec{}, fmt.Errorf("arg %q: bounds must be integers", s)
		}
		return argSpec{kind: argIntRange, loInt: loI, hiInt: hiI}, nil
	case "number":
		if !hasBounds {
			return argSpec{kind: argNumber}, nil
		}
		lo, hi, err := splitBounds(bounds)
		if err != nil {
			return argSpec{}, fmt.Errorf("arg %q: %w", s, err)
		}
		loF, err1 := strconv.ParseFloat(lo, 64)
		hiF, err2 := strconv.ParseFloat(hi, 64)
		if err1 != nil || err2 != nil {
			return argSpec{}, fmt.Errorf("arg %q: bounds must be numbers", s)
		}
		return argSpec{kind: argNumberRange, loNum: loF, hiNum: hiF}, nil
	default:
		return argSpec{}, fmt.Errorf("arg %q: unknown type %q", s, base)
	}
}

func splitBounds(s string) (string, string, error) {
	lo, hi, ok := strings.Cut(s, "..")
	if !ok || lo == "" || hi == "" {
		return "", "", fmt.Errorf("bounds must look like lo..hi")
	}
	return lo, hi, nil
}

// binder turns the spec into a Binder that appends the extracted value to
// out. The slice is shared by every argument of one command and reset by
// the builder on each traversal.
func (a argSpec) binder(out *[]any) constraint.Binder {
	switch a.kind {
	case argInt:
		return capture(constraint.Int(), out)
	case argNumber:
		return capture(constraint.Float64(), out)
	case argIntRange:
		return capture(constraint.Range(a.loInt, a.hiInt), out)
	case argNumberRange:
		return capture(constraint.Range(a.loNum, a.hiNum), out)
	default:
		return capture(constraint.String(), out)
	}
}

func capture[T any](c constraint.Constraint[T], out *[]any) constraint.Binder {
	return captureBinder[T]{c: c, out: out}
}

type captureBinder[T any] struct {
	c   constraint.Constraint[T]
	out *[]any
}

func (b captureBinder[T]) Usage() string { return b.c.Usage() }

func (b captureBinder[T]) Capture(cur *token.Cursor) bool {
	v, ok := b.c.Parse(cur)
	if !ok {
		return false
	}
	*b.out = append(*b.out, v)
	return true
}
