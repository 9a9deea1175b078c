// Package output renders tables, pivots, charts and summaries as JSON, CSV,
// XLSX or plain text.
package output

import (
	"github.com/ohler55/ojg/oj"
	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
)

// ToJSON serializes v. Struct fields are named by their json tags.
func ToJSON(v any, pretty bool) ([]byte, error) {
	opts := oj.Options{UseTags: true}
	if pretty {
		opts.Indent = 2
	}
	return oj.Marshal(v, &opts)
}

// ColumnDocument describes one column of a TableDocument.
type ColumnDocument struct {
	Name     string            `json:"name"`
	Section  string            `json:"section"`
	Label    string            `json:"label"`
	Position int               `json:"position"`
	Kind     models.ColumnKind `json:"kind"`
}

// SectionDocument lists the flattened column names of one section.
type SectionDocument struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
}

// TableDocument is the serializable form of a table.
type TableDocument struct {
	SheetName  string            `json:"sheet_name"`
	HeaderRows int               `json:"header_rows"`
	TotalRows  int               `json:"total_rows"`
	Sections   []SectionDocument `json:"sections"`
	Columns    []ColumnDocument  `json:"columns"`
	// Rows holds at most the requested number of data rows. Numbers are
	// written as numbers, empty cells as null, anything else as text.
	Rows [][]any `json:"rows"`
}

// NewTableDocument builds a TableDocument with the first limit rows of t.
// A limit <= 0 keeps every row.
func NewTableDocument(t *models.Table, limit int) TableDocument {
	doc := TableDocument{
		SheetName:  t.SheetName(),
		HeaderRows: t.HeaderRows(),
		TotalRows:  t.Rows(),
		Sections:   []SectionDocument{},
		Columns:    []ColumnDocument{},
		Rows:       [][]any{},
	}

	headers := t.Headers()
	for i, h := range headers {
		doc.Columns = append(doc.Columns, ColumnDocument{
			Name:     h.Name(),
			Section:  h.Section,
			Label:    h.Label,
			Position: h.Position,
			Kind:     t.ColumnAt(i).Kind(),
		})
	}
	for _, sec := range t.Sections() {
		names := make([]string, len(sec.Columns))
		for i, idx := range sec.Columns {
			names[i] = headers[idx].Name()
		}
		doc.Sections = append(doc.Sections, SectionDocument{Name: sec.Name, Columns: names})
	}

	n := t.Rows()
	if limit > 0 && limit < n {
		n = limit
	}
	for i := 0; i < n; i++ {
		row := t.Row(i)
		values := make([]any, len(row))
		for j, cell := range row {
			values[j] = cellValue(cell)
		}
		doc.Rows = append(doc.Rows, values)
	}
	return doc
}

func cellValue(c models.Cell) any {
	switch c.Kind {
	case models.CellEmpty:
		return nil
	case models.CellNumber:
		return c.Number
	default:
		return c.String()
	}
}

// PivotRowDocument is one row of a PivotDocument. Missing values are null.
type PivotRowDocument struct {
	Key    []string   `json:"key"`
	Values []*float64 `json:"values"`
}

// PivotDocument is the serializable form of a pivot result.
type PivotDocument struct {
	Aggregator models.Aggregator  `json:"aggregator"`
	RowHeaders []string           `json:"row_headers"`
	Columns    []string           `json:"columns"`
	Rows       []PivotRowDocument `json:"rows"`
}

// NewPivotDocument builds a PivotDocument from p.
func NewPivotDocument(p *models.PivotResult) PivotDocument {
	doc := PivotDocument{
		Aggregator: p.Aggregator,
		RowHeaders: p.RowHeaders,
		Columns:    make([]string, len(p.Columns)),
		Rows:       make([]PivotRowDocument, len(p.RowKeys)),
	}
	for i, c := range p.Columns {
		doc.Columns[i] = c.Name()
	}
	for i, key := range p.RowKeys {
		values := make([]*float64, len(p.Values[i]))
		for j, v := range p.Values[i] {
			if v.Missing {
				continue
			}
			value := v.Value
			values[j] = &value
		}
		doc.Rows[i] = PivotRowDocument{Key: key, Values: values}
	}
	return doc
}
