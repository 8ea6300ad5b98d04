package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer formats markdown command descriptions for terminal display.
// It satisfies the dispatcher's ContentRenderer interface.
type Renderer struct {
	r *glamour.TermRenderer
}

// NewRenderer creates a glamour-backed renderer wrapping at width.
// A width of zero or less uses glamour's default.
func NewRenderer(width int) (*Renderer, error) {
	opts := []glamour.TermRendererOption{
		glamour.WithAutoStyle(), // detect light/dark background
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return &Renderer{r: r}, nil
}

// Render formats one markdown document. Glamour pads output with blank
// lines; those are trimmed so descriptions sit flush in help output.
func (r *Renderer) Render(markdown string) (string, error) {
	out, err := r.r.Render(markdown)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}
