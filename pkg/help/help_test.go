package help

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func sampleTree() *Tree {
	return &Tree{Entries: []*Entry{
		{
			Usage: "print",
			Names: []string{"print"},
			Children: []*Entry{
				{Usage: "placehold", Names: []string{"placehold"}, Runnable: true},
				{Usage: "repeat", Names: []string{"repeat"}, Loop: true},
			},
			Runnable:    true,
			Description: "Prints a hello world message",
		},
		{
			Usage:    "[q|quit]",
			Names:    []string{"q", "quit"},
			Runnable: true,
		},
		{Fallback: true, Runnable: true},
	}}
}

func TestTree_Names(t *testing.T) {
	got := sampleTree().Names()
	want := []string{"print", "q", "quit"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}

func TestTree_Resolve(t *testing.T) {
	tree := sampleTree()

	scope, consumed := tree.Resolve([]string{"print"})
	if consumed != 1 || len(scope.Entries) != 2 {
		t.Fatalf("Resolve(print) consumed=%d entries=%d", consumed, len(scope.Entries))
	}

	// Unknown word stops the walk at the scope it failed in.
	scope, consumed = tree.Resolve([]string{"print", "nope"})
	if consumed != 1 {
		t.Fatalf("Resolve stopped at %d, want 1", consumed)
	}
	if got := scope.Names(); !reflect.DeepEqual(got, []string{"placehold", "repeat"}) {
		t.Fatalf("failing scope names = %v", got)
	}

	// Aliases resolve to the same entry.
	if e := tree.Lookup("q"); e == nil || e.Usage != "[q|quit]" {
		t.Fatalf("Lookup(q) = %+v", e)
	}
}

func TestFormatter_WrapsAtWidth(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, 20, PlainStyles())

	for _, w := range []string{"alpha", "beta", "gamma", "delta", "epsilon"} {
		f.Word(w)
	}
	f.LineBreak()

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if len(line) > 20 {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
}

func TestFormatter_IndentMarkers(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, 80, PlainStyles())

	f.Word("top")
	f.Indent()
	f.Word("nested")
	f.Deindent()
	f.Word("after")
	f.LineBreak()

	want := "top\n | nested\nafter\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, 80, PlainStyles())
	Render(f, sampleTree())
	out := buf.String()

	for _, want := range []string{
		"print",
		"placehold",
		"repeat",
		"(interactive)",
		"[q|quit]",
		"<anything>",
		"Prints a hello world message",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered help missing %q:\n%s", want, out)
		}
	}

	// Children are nested behind indent markers.
	if !strings.Contains(out, " | placehold") {
		t.Fatalf("sub-command not indented:\n%s", out)
	}
}
