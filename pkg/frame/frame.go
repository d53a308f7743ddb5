// Package frame provides a row-oriented table whose columns are typed
// vectors. A column is anything that can report its length, its short
// type tag, and its formatted display values; printing a frame always
// goes through each column's Format, never its raw payload.
package frame

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ijlyttle/vctrs/pkg/vctrs"
)

// Frame errors.
var (
	// ErrShape reports a column whose length disagrees with the frame.
	ErrShape = errors.New("column length does not match frame")

	// ErrColumnNotFound reports a lookup for a column name the frame
	// does not have.
	ErrColumnNotFound = errors.New("column not found")
)

// Column is the contract a frame requires of its columns. Dispatch on
// the column's concrete kind happens through this interface.
type Column interface {
	// Len returns the number of elements (the column's row count).
	Len() int

	// Summary returns the short type tag for header display.
	Summary() string

	// Format renders every element for display, one string per row.
	Format() []string
}

// col pairs a column with its name. An empty name is an anonymous
// column, allowed when the caller opts out of naming.
type col struct {
	name string
	data Column
}

// Frame is an ordered collection of equal-length named columns.
type Frame struct {
	cols []col
}

// FromVector wraps a vector as the sole column of a new frame. The
// column name defaults to the vector's kind tag.
func FromVector(v *vctrs.Vector) *Frame {
	return &Frame{cols: []col{{name: v.Tag(), data: v}}}
}

// FromVectorNamed wraps a vector as the sole column of a new frame
// under the given name. An empty name yields an anonymous column.
func FromVectorNamed(v *vctrs.Vector, name string) *Frame {
	return &Frame{cols: []col{{name: name, data: v}}}
}

// New returns an empty frame. Columns added later fix the row count.
func New() *Frame {
	return &Frame{}
}

// AddColumn appends a named column. Every column after the first must
// match the frame's row count; a mismatch fails with ErrShape and
// leaves the frame unchanged.
func (f *Frame) AddColumn(name string, c Column) error {
	if len(f.cols) > 0 && c.Len() != f.NumRows() {
		return fmt.Errorf("column %q has %d rows, frame has %d: %w",
			name, c.Len(), f.NumRows(), ErrShape)
	}
	f.cols = append(f.cols, col{name: name, data: c})
	return nil
}

// Column returns the named column.
func (f *Frame) Column(name string) (Column, error) {
	for _, c := range f.cols {
		if c.name == name {
			return c.data, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

// ColumnAt returns the column at position i together with its name.
func (f *Frame) ColumnAt(i int) (string, Column, error) {
	if i < 0 || i >= len(f.cols) {
		return "", nil, fmt.Errorf("%w: position %d", ErrColumnNotFound, i)
	}
	return f.cols[i].name, f.cols[i].data, nil
}

// NumRows returns the row count, zero for an empty frame.
func (f *Frame) NumRows() int {
	if len(f.cols) == 0 {
		return 0
	}
	return f.cols[0].data.Len()
}

// NumCols returns the column count.
func (f *Frame) NumCols() int { return len(f.cols) }

// Names returns the column names in order.
func (f *Frame) Names() []string {
	out := make([]string, len(f.cols))
	for i, c := range f.cols {
		out[i] = c.name
	}
	return out
}

// WriteText writes a plain fixed-width rendering of the frame. Cells
// come from each column's Format.
func (f *Frame) WriteText(w io.Writer) error {
	if len(f.cols) == 0 {
		_, err := fmt.Fprintln(w, "(empty frame)")
		return err
	}

	cells := make([][]string, len(f.cols))
	widths := make([]int, len(f.cols))
	for i, c := range f.cols {
		cells[i] = c.data.Format()
		widths[i] = len(c.name)
		for _, s := range cells[i] {
			if len(s) > widths[i] {
				widths[i] = len(s)
			}
		}
	}

	var sb strings.Builder
	for i, c := range f.cols {
		if i > 0 {
			sb.WriteString("  ")
		}
		fmt.Fprintf(&sb, "%-*s", widths[i], c.name)
	}
	sb.WriteByte('\n')
	for r := 0; r < f.NumRows(); r++ {
		for i := range f.cols {
			if i > 0 {
				sb.WriteString("  ")
			}
			fmt.Fprintf(&sb, "%*s", widths[i], cells[i][r])
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// jsonColumn is the JSON shape of one column: the short type tag and
// the formatted display values.
type jsonColumn struct {
	Name    string   `json:"name"`
	Summary string   `json:"summary"`
	Values  []string `json:"values"`
}

// MarshalJSON renders the frame for the CLI's JSON output mode.
// Values are the formatted display strings, keeping the raw payload
// out of every display path.
func (f *Frame) MarshalJSON() ([]byte, error) {
	out := struct {
		Rows    int          `json:"rows"`
		Columns []jsonColumn `json:"columns"`
	}{
		Rows:    f.NumRows(),
		Columns: make([]jsonColumn, len(f.cols)),
	}
	for i, c := range f.cols {
		out.Columns[i] = jsonColumn{
			Name:    c.name,
			Summary: c.data.Summary(),
			Values:  c.data.Format(),
		}
	}
	return json.Marshal(out)
}
