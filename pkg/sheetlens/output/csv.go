package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
)

// WriteCSV writes t with one flattened header row followed by the data rows.
// Numbers are written as plain decimals regardless of their display format;
// other cells keep their original string form.
func WriteCSV(w io.Writer, t *models.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(FlatHeaders(t)); err != nil {
		return err
	}
	for i := 0; i < t.Rows(); i++ {
		row := t.Row(i)
		record := make([]string, len(row))
		for j, cell := range row {
			record[j] = cell.Value()
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePivotCSV writes p with the row-key headers followed by one column per
// value column. Missing values are written as empty fields.
func WritePivotCSV(w io.Writer, p *models.PivotResult) error {
	cw := csv.NewWriter(w)
	for _, record := range pivotGrid(p) {
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FlatHeaders returns the flattened "Section - Label" name of every column of t.
func FlatHeaders(t *models.Table) []string {
	headers := t.Headers()
	names := make([]string, len(headers))
	for i, h := range headers {
		names[i] = h.Name()
	}
	return names
}

func pivotGrid(p *models.PivotResult) [][]string {
	header := append([]string(nil), p.RowHeaders...)
	for _, c := range p.Columns {
		header = append(header, c.Name())
	}
	grid := [][]string{header}
	for i, key := range p.RowKeys {
		record := append([]string(nil), key...)
		for _, v := range p.Values[i] {
			if v.Missing {
				record = append(record, "")
				continue
			}
			record = append(record, strconv.FormatFloat(v.Value, 'f', -1, 64))
		}
		grid = append(grid, record)
	}
	return grid
}
