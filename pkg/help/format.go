package help

import (
	"io"
	"strings"
)

const (
	defaultWidth = 100
	indentMarker = " | "
)

// Formatter writes indented, word-wrapped help text.
//
// Two indent levels exist: the structural indent (one " | " marker per
// tree depth) and a small indent (single spaces) used to offset
// description paragraphs under their command line. Words are flushed onto
// the current line until the width limit would be exceeded.
type Formatter struct {
	w           io.Writer
	indent      int
	smallIndent int
	lineLen     int
	maxWidth    int
	emptyLine   bool
	styles      Styles
}

// NewFormatter creates a formatter writing to w with the given wrap width.
// A width of zero or less falls back to the default of 100 columns.
func NewFormatter(w io.Writer, width int, styles Styles) *Formatter {
	if width <= 0 {
		width = defaultWidth
	}
	return &Formatter{
		w:         w,
		maxWidth:  width,
		emptyLine: true,
		styles:    styles,
	}
}

func (f *Formatter) raw(s string) {
	io.WriteString(f.w, s)
}

func (f *Formatter) writeIndent() {
	f.emptyLine = false
	for i := 0; i < f.indent; i++ {
		f.raw(f.styles.Marker(indentMarker))
		f.lineLen += len(indentMarker)
	}
	for i := 0; i < f.smallIndent; i++ {
		f.raw(" ")
		f.lineLen++
	}
}

// Indent enters one structural level and resets the small indent.
func (f *Formatter) Indent() {
	f.indent++
	f.smallIndent = 0
	f.LineBreak()
}

// Deindent leaves one structural level.
func (f *Formatter) Deindent() {
	if f.indent != 0 {
		f.indent--
		f.smallIndent = 0
	}
	f.LineBreak()
}

// SmallIndent offsets following text by one extra space.
func (f *Formatter) SmallIndent() {
	f.smallIndent++
	f.LineBreak()
}

// SmallDeindent removes one small-indent space.
func (f *Formatter) SmallDeindent() {
	if f.smallIndent != 0 {
		f.smallIndent--
	}
	f.LineBreak()
}

// Raw writes s on the current line, emitting indentation first if the
// line is empty. No wrapping is applied.
func (f *Formatter) Raw(s string) {
	if f.emptyLine {
		f.writeIndent()
	}
	f.raw(s)
	f.lineLen += len(s)
}

// Word writes one word, breaking the line first when it would not fit.
func (f *Formatter) Word(word string) {
	f.word(word, len(word))
}

// StyledWord writes a pre-styled word; width is its printable length
// (style escape sequences don't count against the wrap limit).
func (f *Formatter) StyledWord(word string, width int) {
	f.word(word, width)
}

func (f *Formatter) word(word string, width int) {
	if !f.emptyLine {
		if f.lineLen+width > f.maxWidth {
			f.LineBreak()
		} else {
			f.Raw(" ")
		}
	}
	if f.emptyLine {
		f.writeIndent()
	}
	f.raw(word)
	f.lineLen += width
}

// Paragraph writes multi-line text, wrapping each line word by word.
func (f *Formatter) Paragraph(text string) {
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			f.LineBreak()
		}
		for _, w := range strings.Fields(line) {
			f.Word(w)
		}
	}
}

// LineBreak ends the current line, if any content is on it.
func (f *Formatter) LineBreak() {
	if !f.emptyLine {
		f.raw("\n")
		f.emptyLine = true
		f.lineLen = 0
	}
}
