package cli

import (
	"encoding/json"
	"fmt"
	"go-frankfurter/config"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// Color an ANSI foreground color.
type Color string

const (
	Red   Color = "31"
	Green Color = "32"
	Blue  Color = "34"
	Cyan  Color = "36"
)

// Output a stream which may support colors.
type Output struct {
	w     io.Writer
	color bool
}

// NewOutput wraps w, coloring output according to mode.
func NewOutput(w io.Writer, mode config.ColorMode) *Output {
	return &Output{w: w, color: useColor(w, mode)}
}

// useColor decides whether to color w. In auto mode only terminals are colored,
// unless NO_COLOR is set.
func useColor(w io.Writer, mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (o *Output) Write(p []byte) (int, error) {
	return o.w.Write(p)
}

// Paint wraps s in the escape codes for c when o supports colors.
func (o *Output) Paint(s string, c Color) string {
	if !o.color || c == "" || s == "" {
		return s
	}
	return "\x1b[" + string(c) + "m" + s + "\x1b[0m"
}

// cell a table cell, painted when rendered.
type cell struct {
	text  string
	color Color
	right bool
}

// table a plain text table aligned on the visible width of its cells.
type table struct {
	header []string
	rows   [][]cell
}

func newTable(header ...string) *table {
	return &table{header: header}
}

func (t *table) add(cells ...cell) {
	t.rows = append(t.rows, cells)
}

// render writes t to o, with a separator line under the header.
func (t *table) render(o *Output) error {
	widths := make([]int, len(t.header))
	for i, h := range t.header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.rows {
		for i, c := range row {
			if n := utf8.RuneCountInString(c.text); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var b strings.Builder
	line := func(cells []cell) {
		for i, c := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			pad := strings.Repeat(" ", widths[i]-utf8.RuneCountInString(c.text))
			text := o.Paint(c.text, c.color)
			switch {
			case c.right:
				b.WriteString(pad + text)
			case i < len(cells)-1:
				b.WriteString(text + pad)
			default:
				b.WriteString(text)
			}
		}
		b.WriteString("\n")
	}

	header := make([]cell, len(t.header))
	separator := make([]cell, len(t.header))
	for i, h := range t.header {
		header[i] = cell{text: h}
		separator[i] = cell{text: strings.Repeat("-", widths[i])}
	}
	line(header)
	line(separator)
	for _, row := range t.rows {
		line(row)
	}

	_, err := io.WriteString(o, b.String())
	return err
}

// writeJSON writes v as indented JSON.
func writeJSON(o *Output, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	_, err = fmt.Fprintln(o, string(data))
	return err
}
