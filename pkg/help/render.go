package help

// Render writes the full tree to the formatter, one entry per line with
// sub-trees nested behind indent markers.
func Render(f *Formatter, t *Tree) {
	for _, e := range t.Entries {
		renderEntry(f, e)
	}
	f.LineBreak()
}

func renderEntry(f *Formatter, e *Entry) {
	f.LineBreak()
	switch {
	case e.Fallback:
		f.StyledWord(f.styles.Name("<anything>"), len("<anything>"))
	case e.Usage != "":
		f.StyledWord(f.styles.Name(e.Usage), len(e.Usage))
	}
	for _, a := range e.Args {
		f.StyledWord(f.styles.Arg(a), len(a))
	}
	if e.Loop {
		f.StyledWord(f.styles.Marker("(interactive)"), len("(interactive)"))
	}
	if e.Description != "" {
		f.SmallIndent()
		f.Paragraph(e.Description)
		f.SmallDeindent()
	}
	if len(e.Children) > 0 {
		f.Indent()
		for _, c := range e.Children {
			renderEntry(f, c)
		}
		f.Deindent()
	}
	f.LineBreak()
}

// RenderEntry writes a single entry and its sub-tree, used for topic help
// ("help <command>").
func RenderEntry(f *Formatter, e *Entry) {
	renderEntry(f, e)
	f.LineBreak()
}
