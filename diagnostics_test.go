package parley_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/parley"
	"github.com/aretw0/parley/pkg/constraint"
)

func buildGreeter(c *parley.Ctx) {
	c.Command(constraint.Exact("greet")).
		Describe("Give the world a wonderful greeting").
		Run(func() {})

	c.Command(constraint.Exact("order")).
		Describe("Order something delicious").
		SubCommands(func(sc *parley.Ctx) {
			sc.Command(constraint.Exact("crab")).Run(func() {})
			sc.Command(constraint.Exact("lobster")).Run(func() {})
		})
}

func TestExplain_CaretAndSuggestion(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out, "")

	err := d.Parse([]string{"griet"}, buildGreeter)
	require.Error(t, err)
	d.Explain(err, buildGreeter)

	text := out.String()
	assert.Contains(t, text, "# Error")
	assert.Contains(t, text, "griet")
	assert.Contains(t, text, "^^^^^", "caret spans the failing token")
	assert.Contains(t, text, `did you mean "greet"?`)
	assert.Contains(t, text, "Usage:")
	assert.Contains(t, text, "order")
}

func TestExplain_PointsAtFailingScope(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out, "")

	err := d.Parse([]string{"order", "crap"}, buildGreeter)
	require.Error(t, err)
	d.Explain(err, buildGreeter)

	text := out.String()
	assert.Contains(t, text, `did you mean "crab"?`)
	assert.Contains(t, text, "lobster", "usage lists the failing scope's commands")

	// The caret is under the second token.
	caret := "      ^^^^"
	assert.Contains(t, text, caret)
}

func TestHelp_FullTree(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out, "")

	require.NoError(t, d.Parse([]string{"help"}, buildGreeter))

	text := out.String()
	for _, want := range []string{"greet", "order", "crab", "lobster", "wonderful greeting"} {
		assert.Contains(t, text, want)
	}
}

func TestHelp_Topic(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out, "")

	require.NoError(t, d.Parse([]string{"help", "order"}, buildGreeter))

	text := out.String()
	assert.Contains(t, text, "crab")
	assert.Contains(t, text, "lobster")
	assert.NotContains(t, text, "wonderful greeting", "unrelated commands stay out of topic help")
}

func TestHelp_NestedTopic(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out, "")

	require.NoError(t, d.Parse([]string{"help", "order", "crab"}, buildGreeter))
	assert.Contains(t, out.String(), "crab")
}

func TestHelp_UnknownTopicSuggests(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out, "")

	require.NoError(t, d.Parse([]string{"help", "ordre"}, buildGreeter))

	text := out.String()
	assert.Contains(t, text, `no help topic "ordre"`)
	assert.Contains(t, text, `did you mean "order"?`)
}

func TestExplain_NeverRunsHandlers(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out, "")

	ran := false
	build := func(c *parley.Ctx) {
		c.Command(constraint.Exact("greet")).Run(func() { ran = true })
	}

	err := d.Parse([]string{"nope"}, build)
	require.Error(t, err)
	d.Explain(err, build)
	assert.False(t, ran)
}

func TestExplain_TrailingInputCaretPastCommand(t *testing.T) {
	var out bytes.Buffer
	d := newTestDispatcher(&out, "")

	err := d.Parse([]string{"greet", "loudly"}, buildGreeter)
	require.Error(t, err)
	d.Explain(err, buildGreeter)

	lines := strings.Split(out.String(), "\n")
	require.Greater(t, len(lines), 2)
	// Echo line then caret line under "loudly".
	assert.Equal(t, "greet loudly", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "      ^^^^^^"), "caret line %q", lines[2])
}
