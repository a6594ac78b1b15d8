package types

import (
	"math"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
)

// Frame is an ordered table of named columns sharing one row index. Rows are
// aligned by position; the index labels are carried along so derived columns
// can be joined back onto the caller's data.
type Frame struct {
	index   []time.Time
	columns []*Series
	byName  map[string]int
}

// NewFrame creates a frame with the given row index. A nil index is allowed;
// the row count is then fixed by the first column added.
func NewFrame(index []time.Time) *Frame {
	return &Frame{
		index:  index,
		byName: make(map[string]int),
	}
}

func (f *Frame) NumRows() int {
	if f.index != nil {
		return len(f.index)
	}
	if len(f.columns) > 0 {
		return f.columns[0].Length()
	}
	return 0
}

func (f *Frame) NumColumns() int {
	return len(f.columns)
}

// Index returns the row labels, nil when the frame is purely positional.
func (f *Frame) Index() []time.Time {
	return f.index
}

// AddColumn appends a column to the frame. The column length must match the
// frame's row count and the name must be unused.
func (f *Frame) AddColumn(s *Series) error {
	if _, ok := f.byName[s.Name]; ok {
		return errors.Errorf("column %q already exists in the frame", s.Name)
	}

	if n := f.NumRows(); (f.index != nil || len(f.columns) > 0) && s.Length() != n {
		return errors.Errorf("column %q has %d rows, frame has %d", s.Name, s.Length(), n)
	}

	f.byName[s.Name] = len(f.columns)
	f.columns = append(f.columns, s)
	return nil
}

// Column looks up a column by name.
func (f *Frame) Column(name string) (*Series, error) {
	i, ok := f.byName[name]
	if !ok {
		return nil, errors.Errorf("column %q is not present in the frame", name)
	}
	return f.columns[i], nil
}

// Columns returns the columns in insertion order.
func (f *Frame) Columns() []*Series {
	return f.columns
}

// ColumnNames returns the column names in insertion order.
func (f *Frame) ColumnNames() []string {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.Name
	}
	return names
}

// String renders the frame as a text table for debugging.
func (f *Frame) String() string {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)

	header := table.Row{"index"}
	for _, c := range f.columns {
		header = append(header, c.Name)
	}
	w.AppendHeader(header)

	for i := 0; i < f.NumRows(); i++ {
		row := table.Row{f.rowLabel(i)}
		for _, c := range f.columns {
			row = append(row, formatCell(c, i))
		}
		w.AppendRow(row)
	}

	return w.Render()
}

func (f *Frame) rowLabel(i int) string {
	if f.index != nil {
		return f.index[i].Format(time.RFC3339)
	}
	return strconv.Itoa(i)
}

func formatCell(s *Series, i int) string {
	v, ok := s.Value(i)
	if !ok {
		return "-"
	}
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
