package models

import (
	"fmt"
)

// HeaderDelimiter joins header levels into a single flattened name.
const HeaderDelimiter = " - "

// ColumnKind is the inferred type of a column.
type ColumnKind string

const (
	// KindNumeric columns hold only numbers and empty cells.
	KindNumeric ColumnKind = "numeric"
	// KindText columns hold anything else, with original strings preserved.
	KindText ColumnKind = "text"
)

// ColumnHeader identifies a column within its sheet.
type ColumnHeader struct {
	// Section is the top-level header label (or explicit section name).
	Section string `json:"section"`
	// Label is the sub-column label.
	Label string `json:"label"`
	// Position is the 0-based source column index.
	Position int `json:"position"`
	// Nested reports that Label was read from a header row below Section.
	Nested bool `json:"nested,omitempty"`
}

// Name returns the flattened "Section - Label" name. Blank levels are
// skipped. A label that only repeats its section, as in a single header
// row, is written once; a nested label is always written.
func (h ColumnHeader) Name() string {
	switch {
	case h.Section == "":
		return h.Label
	case h.Label == "":
		return h.Section
	case h.Section == h.Label && !h.Nested:
		return h.Label
	default:
		return h.Section + HeaderDelimiter + h.Label
	}
}

// Column is one interpreted column. It is either a *NumericColumn or a
// *TextColumn; the kind is decided once, at interpretation time.
type Column interface {
	Header() ColumnHeader
	Kind() ColumnKind
	Len() int
	Cell(row int) Cell
	// Take returns a new column holding the given rows, in the given order.
	Take(rows []int) Column
}

// NumericColumn holds numbers and empty cells only.
type NumericColumn struct {
	header ColumnHeader
	cells  []Cell
}

// NewNumericColumn builds a numeric column. Every non-empty cell must be a number.
func NewNumericColumn(header ColumnHeader, cells []Cell) (*NumericColumn, error) {
	for i, c := range cells {
		if c.Kind != CellNumber && c.Kind != CellEmpty {
			return nil, fmt.Errorf("column %q row %d: %q is not numeric", header.Name(), i, c.Text)
		}
	}
	return &NumericColumn{header: header, cells: cells}, nil
}

func (c *NumericColumn) Header() ColumnHeader { return c.header }
func (c *NumericColumn) Kind() ColumnKind     { return KindNumeric }
func (c *NumericColumn) Len() int             { return len(c.cells) }

func (c *NumericColumn) Cell(row int) Cell {
	if row < 0 || row >= len(c.cells) {
		return EmptyCell()
	}
	return c.cells[row]
}

// Float returns the value at row and whether it is present.
func (c *NumericColumn) Float(row int) (float64, bool) {
	cell := c.Cell(row)
	if cell.IsEmpty() {
		return 0, false
	}
	return cell.Number, true
}

func (c *NumericColumn) Take(rows []int) Column {
	return &NumericColumn{header: c.header, cells: takeCells(c.cells, rows)}
}

// TextColumn holds cells of any kind, read through their original strings.
type TextColumn struct {
	header ColumnHeader
	cells  []Cell
}

// NewTextColumn builds a textual column.
func NewTextColumn(header ColumnHeader, cells []Cell) *TextColumn {
	return &TextColumn{header: header, cells: cells}
}

func (c *TextColumn) Header() ColumnHeader { return c.header }
func (c *TextColumn) Kind() ColumnKind     { return KindText }
func (c *TextColumn) Len() int             { return len(c.cells) }

func (c *TextColumn) Cell(row int) Cell {
	if row < 0 || row >= len(c.cells) {
		return EmptyCell()
	}
	return c.cells[row]
}

func (c *TextColumn) Take(rows []int) Column {
	return &TextColumn{header: c.header, cells: takeCells(c.cells, rows)}
}

func takeCells(cells []Cell, rows []int) []Cell {
	out := make([]Cell, len(rows))
	for i, r := range rows {
		out[i] = cells[r]
	}
	return out
}
