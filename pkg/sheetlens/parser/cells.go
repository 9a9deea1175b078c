// Package parser turns spreadsheet rows into interpreted tables.
package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells reads every row of a sheet as typed cells.
//
// Numbers come from the raw cell value so display formats such as
// thousands separators do not hide them. A numeric raw value whose display
// form is a date becomes a date cell.
func ExtractCells(f *excelize.File, sheetName string) ([][]models.Cell, error) {
	display, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	n := len(display)
	if len(raw) > n {
		n = len(raw)
	}

	result := make([][]models.Cell, n)
	for rowIdx := 0; rowIdx < n; rowIdx++ {
		var displayRow, rawRow []string
		if rowIdx < len(display) {
			displayRow = display[rowIdx]
		}
		if rowIdx < len(raw) {
			rawRow = raw[rowIdx]
		}

		width := len(displayRow)
		if len(rawRow) > width {
			width = len(rawRow)
		}

		cells := make([]models.Cell, width)
		for colIdx := 0; colIdx < width; colIdx++ {
			cells[colIdx] = parseValue(cellAt(rawRow, colIdx), cellAt(displayRow, colIdx))
		}
		result[rowIdx] = trimTrailingEmpty(cells)
	}

	return result, nil
}

// CellsFromStrings types plain string rows, such as CSV records.
func CellsFromStrings(rows [][]string) [][]models.Cell {
	result := make([][]models.Cell, len(rows))
	for i, row := range rows {
		cells := make([]models.Cell, len(row))
		for j, s := range row {
			cells[j] = ParseCell(s)
		}
		result[i] = trimTrailingEmpty(cells)
	}
	return result
}

// ParseCell classifies a single string value as empty, number, date or text.
func ParseCell(s string) models.Cell {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.EmptyCell()
	}
	if v, ok := parseNumber(s); ok {
		return models.NumberCell(v, s)
	}
	if t, ok := parseDate(s); ok {
		return models.DateCell(t, s)
	}
	return models.TextCell(s)
}

// parseValue combines the raw and displayed forms of one cell.
func parseValue(raw, display string) models.Cell {
	raw = strings.TrimSpace(raw)
	display = strings.TrimSpace(display)
	if display == "" {
		display = raw
	}
	if display == "" {
		return models.EmptyCell()
	}

	if v, ok := parseNumber(raw); ok {
		if display != raw {
			if _, isNum := parseNumber(display); !isNum {
				if t, isDate := parseDate(display); isDate {
					return models.DateCell(t, display)
				}
			}
		}
		return models.NumberCell(v, display)
	}
	return ParseCell(display)
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-06",
	"1/2/06",
	"02-Jan-2006",
	"2-Jan-06",
	"Jan 2, 2006",
	"2 Jan 2006",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func trimTrailingEmpty(cells []models.Cell) []models.Cell {
	n := len(cells)
	for n > 0 && cells[n-1].IsEmpty() {
		n--
	}
	return cells[:n]
}
