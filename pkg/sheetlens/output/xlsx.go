package output

import (
	"fmt"
	"io"

	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
	"github.com/xuri/excelize/v2"
)

// ChartTypeMap maps chart kinds to excelize chart types.
var ChartTypeMap = map[models.ChartKind]excelize.ChartType{
	models.ChartBar:     excelize.Col,
	models.ChartLine:    excelize.Line,
	models.ChartPie:     excelize.Pie,
	models.ChartArea:    excelize.Area,
	models.ChartScatter: excelize.Scatter,
}

// WriteXLSX writes t to a single-sheet workbook with one flattened header
// row. Numbers are stored as numbers, everything else as its original text.
func WriteXLSX(w io.Writer, t *models.Table, sheetName string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheetName == "" {
		sheetName = t.SheetName()
	}
	if err := renameFirstSheet(f, sheetName); err != nil {
		return err
	}

	header := FlatHeaders(t)
	headerRow := make([]interface{}, len(header))
	for i, name := range header {
		headerRow[i] = name
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return err
	}

	for i := 0; i < t.Rows(); i++ {
		row := t.Row(i)
		values := make([]interface{}, len(row))
		for j, cell := range row {
			values[j] = xlsxValue(cell)
		}
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cellName, &values); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// WritePivotXLSX writes p to a single-sheet workbook. Missing values are
// left blank.
func WritePivotXLSX(w io.Writer, p *models.PivotResult, sheetName string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheetName == "" {
		sheetName = "Pivot"
	}
	if err := renameFirstSheet(f, sheetName); err != nil {
		return err
	}

	header := make([]interface{}, 0, len(p.RowHeaders)+len(p.Columns))
	for _, h := range p.RowHeaders {
		header = append(header, h)
	}
	for _, c := range p.Columns {
		header = append(header, c.Name())
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, key := range p.RowKeys {
		values := make([]interface{}, 0, len(header))
		for _, k := range key {
			values = append(values, k)
		}
		for _, v := range p.Values[i] {
			if v.Missing {
				values = append(values, nil)
				continue
			}
			values = append(values, v.Value)
		}
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cellName, &values); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// WriteChartXLSX writes the chart data as two columns (labels, values) and
// places a native chart of the matching kind next to them.
func WriteChartXLSX(w io.Writer, data *models.ChartData) error {
	const sheetName = "Chart"

	chartType, ok := ChartTypeMap[data.Kind]
	if !ok {
		return fmt.Errorf("%w: %q", models.ErrIncompatibleChartKind, data.Kind)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := renameFirstSheet(f, sheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, "A1", &[]interface{}{data.Category, data.Value}); err != nil {
		return err
	}
	for i := 0; i < data.Len(); i++ {
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cellName, &[]interface{}{data.Labels[i], data.Values[i]}); err != nil {
			return err
		}
	}

	if data.Len() > 0 {
		last := data.Len() + 1
		chart := &excelize.Chart{
			Type: chartType,
			Series: []excelize.ChartSeries{{
				Name:       fmt.Sprintf("%s!$B$1", sheetName),
				Categories: fmt.Sprintf("%s!$A$2:$A$%d", sheetName, last),
				Values:     fmt.Sprintf("%s!$B$2:$B$%d", sheetName, last),
			}},
			Title: []excelize.RichTextRun{{Text: chartTitle(data)}},
		}
		if err := f.AddChart(sheetName, "D2", chart); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func chartTitle(data *models.ChartData) string {
	if data.Value == "" || data.Value == data.Category {
		return data.Category
	}
	return fmt.Sprintf("%s by %s", data.Value, data.Category)
}

func renameFirstSheet(f *excelize.File, name string) error {
	first := f.GetSheetName(0)
	if first == name {
		return nil
	}
	return f.SetSheetName(first, name)
}

func xlsxValue(c models.Cell) interface{} {
	switch c.Kind {
	case models.CellEmpty:
		return nil
	case models.CellNumber:
		return c.Number
	default:
		return c.String()
	}
}
