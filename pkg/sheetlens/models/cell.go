// Package models defines data structures for interpreted spreadsheet tables.
package models

import (
	"strconv"
	"time"
)

// CellKind classifies a single cell value.
type CellKind uint8

const (
	// CellEmpty is a cell with no value. It is distinct from zero and from "".
	CellEmpty CellKind = iota
	// CellNumber is a cell that parsed as a number.
	CellNumber
	// CellText is any non-empty cell that is neither a number nor a date.
	CellText
	// CellDate is a cell that parsed as a calendar date.
	CellDate
)

func (k CellKind) String() string {
	switch k {
	case CellNumber:
		return "number"
	case CellText:
		return "text"
	case CellDate:
		return "date"
	default:
		return "empty"
	}
}

// Cell is one typed value read from a sheet.
type Cell struct {
	// Kind is the value kind.
	Kind CellKind `json:"kind"`
	// Text is the original string form of the value as shown in the sheet.
	Text string `json:"text,omitempty"`
	// Number holds the value of a CellNumber.
	Number float64 `json:"number,omitempty"`
	// Time holds the value of a CellDate.
	Time time.Time `json:"-"`
}

// EmptyCell returns an empty cell.
func EmptyCell() Cell {
	return Cell{Kind: CellEmpty}
}

// NumberCell returns a numeric cell. text is the display form; when empty
// the shortest decimal representation of v is used.
func NumberCell(v float64, text string) Cell {
	if text == "" {
		text = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return Cell{Kind: CellNumber, Number: v, Text: text}
}

// TextCell returns a text cell, or an empty cell for "".
func TextCell(s string) Cell {
	if s == "" {
		return EmptyCell()
	}
	return Cell{Kind: CellText, Text: s}
}

// DateCell returns a date cell with its display form.
func DateCell(t time.Time, text string) Cell {
	return Cell{Kind: CellDate, Time: t, Text: text}
}

// IsEmpty reports whether the cell has no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// String returns the original string form of the cell ("" when empty).
func (c Cell) String() string {
	if c.Kind == CellNumber && c.Text == "" {
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	}
	return c.Text
}

// Value returns the value form of the cell: the shortest decimal for a
// number, whatever its display format, and the original text otherwise.
func (c Cell) Value() string {
	if c.Kind == CellNumber {
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	}
	return c.Text
}

// Key identifies the cell value for grouping. Numbers and dates that are
// equal but displayed differently share a key.
func (c Cell) Key() string {
	switch c.Kind {
	case CellNumber:
		return c.Value()
	case CellDate:
		return c.Time.Format(time.RFC3339Nano)
	default:
		return c.Text
	}
}
