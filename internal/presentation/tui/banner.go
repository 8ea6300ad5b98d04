package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ASCII art banner shown when an interactive
// session starts. Colors degrade to plain text on non-TTY writers.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()

	lines := []string{
		`                  _            `,
		`  _ __   __ _ _ _| | ___ _   _ `,
		` | '_ \ / _` + "`" + ` | '__| |/ _ \ | | |`,
		` | |_) | (_| | |  | |  __/ |_| |`,
		` | .__/ \__,_|_|  |_|\___|\__, |`,
		` |_|                      |___/ `,
	}
	// Indigo-to-rose gradient, one color per line.
	colors := []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6", "#fb7185"}

	fmt.Fprintln(w)
	for i, line := range lines {
		fmt.Fprintln(w, termenv.String(line).Foreground(p.Color(colors[i])))
	}
	fmt.Fprintln(w)
}
