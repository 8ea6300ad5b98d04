package parley_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/parley"
	"github.com/aretw0/parley/pkg/constraint"
)

func newTestDispatcher(out *bytes.Buffer, in string) *parley.Dispatcher {
	return parley.New(
		parley.WithOutput(out),
		parley.WithInput(strings.NewReader(in)),
		parley.WithWidth(80),
	)
}

func TestDispatch_RunsFirstMatch(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out, "")

	var ranA, ranB bool
	var n int
	err := d.Parse([]string{"5"}, func(c *parley.Ctx) {
		c.DataCommand(constraint.Bind(constraint.Range(0, 10), &n)).
			Run(func() { ranA = true })
		c.Otherwise().
			Run(func() { ranB = true })
	})

	require.NoError(t, err)
	assert.True(t, ranA, "first registered match should win")
	assert.False(t, ranB, "fallback must not fire after a match")
	assert.Equal(t, 5, n)
}

func TestDispatch_OtherwiseOnEmptyInput(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out, "")

	runs := 0
	err := d.Parse(nil, func(c *parley.Ctx) {
		c.Otherwise().Run(func() { runs++ })
	})

	require.NoError(t, err)
	assert.Equal(t, 1, runs)
}

func TestDispatch_NoMatch(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out, "")

	err := d.Parse([]string{"frobnicate"}, func(c *parley.Ctx) {
		c.Command(constraint.Exact("greet")).Run(func() {})
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, parley.ErrNoMatch)

	var de *parley.DispatchError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, parley.NoMatch, de.Kind)
	assert.Equal(t, 0, de.Depth)
}

func TestDispatch_BadArgument(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out, "")

	ran := false
	var n int
	err := d.Parse([]string{"set", "700"}, func(c *parley.Ctx) {
		c.Command(constraint.Exact("set")).
			Arg(constraint.Bind(constraint.Range(0, 100), &n)).
			Run(func() { ran = true })
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, parley.ErrBadArgument)
	assert.False(t, ran)

	var de *parley.DispatchError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 1, de.Depth, "failure points at the rejected token")
}

func TestDispatch_TrailingInput(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out, "")

	ran := false
	err := d.Parse([]string{"greet", "extra"}, func(c *parley.Ctx) {
		c.Command(constraint.Exact("greet")).Run(func() { ran = true })
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, parley.ErrTrailingInput)
	assert.False(t, ran, "handler must not run with tokens left over")
}

func TestDispatch_MatchedDeadEndPoisonsLaterSiblings(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out, "")

	fallbackRan := false
	err := d.Parse([]string{"inv", "unknown"}, func(c *parley.Ctx) {
		c.Command(constraint.Exact("inv")).
			SubCommands(func(sc *parley.Ctx) {
				sc.Command(constraint.Exact("list")).Run(func() {})
			})
		c.Otherwise().Run(func() { fallbackRan = true })
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, parley.ErrNoMatch)
	assert.False(t, fallbackRan, "a matched dead end claims the input")

	var de *parley.DispatchError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 1, de.Depth, "failure is reported past the matched name")
}

func TestDispatch_DescendsSubCommands(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out, "")

	var got string
	build := func(c *parley.Ctx) {
		c.Command(constraint.Exact("print")).
			SubCommands(func(sc *parley.Ctx) {
				sc.Command(constraint.Exact("placehold")).
					Run(func() { got = "placehold" })
			}).
			Run(func() { got = "print" })
	}

	require.NoError(t, d.Parse([]string{"print", "placehold"}, build))
	assert.Equal(t, "placehold", got)

	got = ""
	require.NoError(t, d.Parse([]string{"print"}, build))
	assert.Equal(t, "print", got, "bare parent runs its own handler")
}

func TestDispatch_AliasedCommand(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out, "")

	runs := 0
	build := func(c *parley.Ctx) {
		c.Command(constraint.Either(constraint.Exact("q"), constraint.Exact("quit"))).
			Run(func() { runs++ })
	}

	require.NoError(t, d.Parse([]string{"q"}, build))
	require.NoError(t, d.Parse([]string{"quit"}, build))
	assert.Equal(t, 2, runs)
}

func TestInspect_NeverRunsHandlers(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out, "")

	ran := false
	tree := d.Inspect(func(c *parley.Ctx) {
		c.Command(constraint.Exact("greet")).
			Describe("Say hello").
			Run(func() { ran = true })
		c.Command(constraint.Exact("nested")).
			SubCommands(func(sc *parley.Ctx) {
				sc.Command(constraint.Exact("deep")).Run(func() { ran = true })
			})
	})

	assert.False(t, ran, "introspection must not execute handlers")
	require.Len(t, tree.Entries, 2)
	assert.Equal(t, []string{"greet"}, tree.Entries[0].Names)
	assert.Equal(t, "Say hello", tree.Entries[0].Description)
	assert.True(t, tree.Entries[0].Runnable)
	require.Len(t, tree.Entries[1].Children, 1)
	assert.Equal(t, "deep", tree.Entries[1].Children[0].Usage)
}

func TestInspect_RecordsEveryEntryRegardlessOfInput(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out, "")

	// The same builder, introspected, lists both commands even though
	// execute mode would only ever commit to one.
	tree := d.Inspect(func(c *parley.Ctx) {
		var n int
		c.DataCommand(constraint.Bind(constraint.Range(0, 10), &n)).Run(func() {})
		c.Otherwise().Run(func() {})
	})

	require.Len(t, tree.Entries, 2)
	assert.Equal(t, "<number 0..10>", tree.Entries[0].Usage)
	assert.True(t, tree.Entries[1].Fallback)
}

func TestRoundTrip_SnapshotMatchesExecution(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out, "")

	var got string
	build := func(c *parley.Ctx) {
		c.Command(constraint.Exact("inv")).
			Describe("Manage inventory").
			SubCommands(func(sc *parley.Ctx) {
				sc.Command(constraint.Exact("list")).
					Describe("List items").
					Run(func() { got = "inv list" })
			})
	}

	tree := d.Inspect(build)
	scope, consumed := tree.Resolve([]string{"inv"})
	require.Equal(t, 1, consumed)
	entry := scope.Lookup("list")
	require.NotNil(t, entry, "snapshot must list every reachable handler")
	assert.Equal(t, "List items", entry.Description)

	require.NoError(t, d.Parse([]string{"inv", "list"}, build))
	assert.Equal(t, "inv list", got)
}

func TestDispatch_TupleArgs(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out, "")

	var factors constraint.Pair[int, int]
	build := func(c *parley.Ctx) {
		c.Command(constraint.Exact("multiply")).
			Arg(constraint.Bind(
				constraint.Tuple2(constraint.Range(0, 100), constraint.Range(0, 100)),
				&factors,
			)).
			Run(func() {})
	}

	require.NoError(t, d.Parse([]string{"multiply", "6", "7"}, build))
	assert.Equal(t, 6, factors.First)
	assert.Equal(t, 7, factors.Second)

	err := d.Parse([]string{"multiply", "6", "700"}, build)
	assert.ErrorIs(t, err, parley.ErrBadArgument)
}

func TestLifecycleHooks(t *testing.T) {
	var out bytes.Buffer
	var events []string
	d := parley.New(
		parley.WithOutput(&out),
		parley.WithWidth(80),
		parley.WithLifecycleHooks(parley.LifecycleHooks{
			OnDispatch: func(e *parley.DispatchEvent) { events = append(events, "dispatch") },
			OnMatch:    func(e *parley.MatchEvent) { events = append(events, "match "+e.Usage) },
			OnRun:      func(e *parley.RunEvent) { events = append(events, "run "+e.Usage) },
			OnError:    func(e *parley.ErrorEvent) { events = append(events, "error "+e.Kind) },
		}),
	)

	build := func(c *parley.Ctx) {
		c.Command(constraint.Exact("greet")).Run(func() {})
	}

	require.NoError(t, d.Parse([]string{"greet"}, build))
	assert.Equal(t, []string{"dispatch", "match greet", "run greet"}, events)

	events = nil
	require.Error(t, d.Parse([]string{"nope"}, build))
	assert.Equal(t, []string{"dispatch", "error no match"}, events)
}

func TestDispatchError_Message(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out, "")

	err := d.Parse([]string{"boom"}, func(c *parley.Ctx) {
		c.Command(constraint.Exact("safe")).Run(func() {})
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"boom"`)
	assert.Contains(t, err.Error(), "no match")

	var de *parley.DispatchError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "boom", de.Line())
}
