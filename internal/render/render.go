// Package render implements the enhanced tabular viewer for frames:
// a styled display with a dimension banner, a column-type summary row,
// and row truncation, in the spirit of pretty data-frame printers.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ijlyttle/vctrs/pkg/frame"
	"github.com/ijlyttle/vctrs/pkg/vctrs"
)

// CellStyler is the optional hook a column may implement to style its
// own cells. Columns without it get the default cell styling.
type CellStyler interface {
	StyleCell(formatted string) string
}

// Options controls the viewer's output.
type Options struct {
	MaxRows int  // rows shown before truncation; <= 0 means all
	NoColor bool // disable styling entirely
}

// DefaultOptions mirror the config file defaults.
func DefaultOptions() Options {
	return Options{MaxRows: 10}
}

// Renderer renders frames for terminal display.
type Renderer struct {
	opts Options

	banner  lipgloss.Style
	header  lipgloss.Style
	summary lipgloss.Style
	missing lipgloss.Style
	footer  lipgloss.Style
}

// New creates a renderer with the given options.
func New(opts Options) *Renderer {
	r := &Renderer{opts: opts}
	if opts.NoColor {
		plain := lipgloss.NewStyle()
		r.banner, r.header, r.summary, r.missing, r.footer = plain, plain, plain, plain, plain
		return r
	}
	r.banner = lipgloss.NewStyle().Faint(true)
	r.header = lipgloss.NewStyle().Bold(true)
	r.summary = lipgloss.NewStyle().Faint(true)
	r.missing = lipgloss.NewStyle().Faint(true)
	r.footer = lipgloss.NewStyle().Faint(true).Italic(true)
	return r
}

// Render returns the styled display of a frame: banner, header row,
// summary row of short type tags, then the formatted cells. Cells come
// from each column's Format; the summary row from Summary alone.
func (r *Renderer) Render(f *frame.Frame) string {
	var sb strings.Builder
	sb.WriteString(r.banner.Render(fmt.Sprintf("frame: %d x %d", f.NumRows(), f.NumCols())))
	sb.WriteByte('\n')
	if f.NumCols() == 0 {
		return sb.String()
	}

	type colView struct {
		name    string
		summary string
		cells   []string
		width   int
		styler  CellStyler
	}
	views := make([]colView, f.NumCols())
	for i := range views {
		name, c, err := f.ColumnAt(i)
		if err != nil {
			continue
		}
		v := colView{name: name, summary: "<" + c.Summary() + ">", cells: c.Format()}
		v.width = len(v.name)
		if len(v.summary) > v.width {
			v.width = len(v.summary)
		}
		for _, s := range v.cells {
			if len(s) > v.width {
				v.width = len(s)
			}
		}
		if styler, ok := c.(CellStyler); ok {
			v.styler = styler
		}
		views[i] = v
	}

	rows := f.NumRows()
	shown := rows
	if r.opts.MaxRows > 0 && rows > r.opts.MaxRows {
		shown = r.opts.MaxRows
	}

	for i, v := range views {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(r.header.Render(pad(v.name, v.width)))
	}
	sb.WriteByte('\n')
	for i, v := range views {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(r.summary.Render(pad(v.summary, v.width)))
	}
	sb.WriteByte('\n')

	for row := 0; row < shown; row++ {
		for i, v := range views {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(r.cell(v.styler, v.cells[row], v.width))
		}
		sb.WriteByte('\n')
	}

	if shown < rows {
		sb.WriteString(r.footer.Render(fmt.Sprintf("… with %d more rows", rows-shown)))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// cell styles one right-aligned cell. Missing tokens are dimmed; a
// column's own CellStyler wins over the default.
func (r *Renderer) cell(styler CellStyler, formatted string, width int) string {
	padded := fmt.Sprintf("%*s", width, formatted)
	if styler != nil {
		return styler.StyleCell(padded)
	}
	if formatted == vctrs.MissingToken {
		return r.missing.Render(padded)
	}
	return padded
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}
