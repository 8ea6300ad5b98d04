package help

import (
	"io"

	"github.com/muesli/termenv"
)

// Styles colorizes the pieces of rendered help and diagnostics. Every
// function takes plain text and returns it styled; on dumb terminals all
// of them are identity functions.
type Styles struct {
	Name    func(string) string
	Arg     func(string) string
	Marker  func(string) string
	Heading func(string) string
	Error   func(string) string
}

// PlainStyles returns styles that pass text through unchanged.
func PlainStyles() Styles {
	id := func(s string) string { return s }
	return Styles{Name: id, Arg: id, Marker: id, Heading: id, Error: id}
}

// DetectStyles probes the output for color support via termenv and
// returns either colored or plain styles. Anything that is not a
// color-capable terminal gets plain text.
func DetectStyles(w io.Writer) Styles {
	f, ok := w.(termenv.File)
	if !ok {
		return PlainStyles()
	}
	out := termenv.NewOutput(f)
	if out.Profile == termenv.Ascii {
		return PlainStyles()
	}
	return Styles{
		Name: func(s string) string {
			return out.String(s).Bold().String()
		},
		Arg: func(s string) string {
			return out.String(s).Foreground(out.Color("6")).String()
		},
		Marker: func(s string) string {
			return out.String(s).Faint().String()
		},
		Heading: func(s string) string {
			return out.String(s).Bold().Underline().String()
		},
		Error: func(s string) string {
			return out.String(s).Foreground(out.Color("1")).String()
		},
	}
}
