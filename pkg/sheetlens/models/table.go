package models

import (
	"fmt"
)

// Section is a named group of columns.
type Section struct {
	// Name is the section label.
	Name string `json:"name"`
	// Columns are indexes into Table.Columns, in order.
	Columns []int `json:"columns"`
}

// Table is an immutable interpreted sheet: sections of typed columns that
// all share the same row count.
type Table struct {
	sheetName  string
	headerRows int
	columns    []Column
	sections   []Section
	rows       int
}

// NewTable builds a Table. All columns must have the same length and every
// column must belong to exactly one section.
func NewTable(sheetName string, headerRows int, columns []Column, sections []Section) (*Table, error) {
	rows := 0
	for i, col := range columns {
		if i == 0 {
			rows = col.Len()
			continue
		}
		if col.Len() != rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, expected %d",
				ErrStructuralMismatch, col.Header().Name(), col.Len(), rows)
		}
	}

	owner := make([]int, len(columns))
	for i := range owner {
		owner[i] = -1
	}
	for s, sec := range sections {
		for _, idx := range sec.Columns {
			if idx < 0 || idx >= len(columns) {
				return nil, fmt.Errorf("%w: section %q references column %d of %d",
					ErrStructuralMismatch, sec.Name, idx, len(columns))
			}
			if owner[idx] >= 0 {
				return nil, fmt.Errorf("%w: column %d belongs to sections %q and %q",
					ErrStructuralMismatch, idx, sections[owner[idx]].Name, sec.Name)
			}
			owner[idx] = s
		}
	}
	for idx, s := range owner {
		if s < 0 {
			return nil, fmt.Errorf("%w: column %q belongs to no section",
				ErrStructuralMismatch, columns[idx].Header().Name())
		}
	}

	return &Table{
		sheetName:  sheetName,
		headerRows: headerRows,
		columns:    columns,
		sections:   sections,
		rows:       rows,
	}, nil
}

// SheetName returns the sheet the table was read from.
func (t *Table) SheetName() string { return t.sheetName }

// HeaderRows returns the number of header rows used to build the table.
func (t *Table) HeaderRows() int { return t.headerRows }

// Rows returns the number of data rows.
func (t *Table) Rows() int { return t.rows }

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.columns) }

// Columns returns the columns in table order.
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// ColumnAt returns the column at table index i.
func (t *Table) ColumnAt(i int) Column {
	return t.columns[i]
}

// Sections returns the sections in order.
func (t *Table) Sections() []Section {
	out := make([]Section, len(t.sections))
	for i, sec := range t.sections {
		out[i] = Section{Name: sec.Name, Columns: append([]int(nil), sec.Columns...)}
	}
	return out
}

// Row returns the cells of data row i in column order.
func (t *Table) Row(i int) []Cell {
	row := make([]Cell, len(t.columns))
	for c, col := range t.columns {
		row[c] = col.Cell(i)
	}
	return row
}

// Headers returns the header of every column in table order.
func (t *Table) Headers() []ColumnHeader {
	out := make([]ColumnHeader, len(t.columns))
	for i, col := range t.columns {
		out[i] = col.Header()
	}
	return out
}

// Lookup resolves ref to a table column index. The first matching column wins.
func (t *Table) Lookup(ref ColumnRef) (int, error) {
	for i, col := range t.columns {
		if ref.Matches(col.Header()) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrUnknownColumn, ref)
}

// Column resolves ref to a column.
func (t *Table) Column(ref ColumnRef) (Column, error) {
	i, err := t.Lookup(ref)
	if err != nil {
		return nil, err
	}
	return t.columns[i], nil
}

// Take returns a new table with the given data rows, in the given order.
// All columns and sections are kept.
func (t *Table) Take(rows []int) *Table {
	columns := make([]Column, len(t.columns))
	for i, col := range t.columns {
		columns[i] = col.Take(rows)
	}
	return &Table{
		sheetName:  t.sheetName,
		headerRows: t.headerRows,
		columns:    columns,
		sections:   t.Sections(),
		rows:       len(rows),
	}
}

// Project returns a new table holding only the columns at the given table
// indexes. Column order and section grouping follow the source table;
// sections left without columns are dropped.
func (t *Table) Project(indexes []int) (*Table, error) {
	keep := make(map[int]bool, len(indexes))
	for _, idx := range indexes {
		if idx < 0 || idx >= len(t.columns) {
			return nil, fmt.Errorf("%w: column index %d of %d", ErrUnknownColumn, idx, len(t.columns))
		}
		keep[idx] = true
	}

	remap := make(map[int]int, len(keep))
	var columns []Column
	for i, col := range t.columns {
		if keep[i] {
			remap[i] = len(columns)
			columns = append(columns, col)
		}
	}

	var sections []Section
	for _, sec := range t.sections {
		var cols []int
		for _, idx := range sec.Columns {
			if n, ok := remap[idx]; ok {
				cols = append(cols, n)
			}
		}
		if len(cols) > 0 {
			sections = append(sections, Section{Name: sec.Name, Columns: cols})
		}
	}

	return &Table{
		sheetName:  t.sheetName,
		headerRows: t.headerRows,
		columns:    columns,
		sections:   sections,
		rows:       t.rows,
	}, nil
}
