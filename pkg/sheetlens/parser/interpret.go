package parser

import (
	"fmt"
	"sort"

	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
	"github.com/xuri/excelize/v2"
)

// Interpret builds a hierarchical table from raw sheet rows.
//
// The first headerRows rows (1 to 3) form the header. Without boundaries,
// sections are runs of equal first-row labels after forward-fill; with
// boundaries, sections are the given column ranges and each sub-label is
// the lowest non-blank header level at that position. The table is as wide
// as the rightmost value in any row; header cells past the last label are
// blank and forward-filled like any other.
func Interpret(sheetName string, rows [][]models.Cell, headerRows int, boundaries []models.SectionBoundary) (*models.Table, error) {
	if headerRows < 1 || headerRows > 3 {
		return nil, fmt.Errorf("%w: got %d", models.ErrInvalidHeaderRows, headerRows)
	}
	if len(rows) < headerRows {
		return nil, fmt.Errorf("%w: sheet has %d rows, header needs %d",
			models.ErrStructuralMismatch, len(rows), headerRows)
	}

	width := lastValue(rows[:headerRows])
	if width == 0 {
		return nil, fmt.Errorf("%w: header is empty", models.ErrStructuralMismatch)
	}
	data := rows[headerRows:]
	if w := lastValue(data); w > width {
		width = w
	}

	header := make([][]string, headerRows)
	for r := 0; r < headerRows; r++ {
		header[r] = make([]string, width)
		for c := 0; c < width && c < len(rows[r]); c++ {
			header[r][c] = rows[r][c].String()
		}
	}
	filled := ForwardFill(header)

	positions, owners, err := assignPositions(boundaries, width)
	if err != nil {
		return nil, err
	}

	headers := make([]models.ColumnHeader, len(positions))
	for i, pos := range positions {
		h, err := columnHeader(filled, pos, headerRows, owners, i, boundaries)
		if err != nil {
			return nil, err
		}
		headers[i] = h
	}

	columns := make([]models.Column, len(positions))
	for i, pos := range positions {
		cells := make([]models.Cell, len(data))
		for r, row := range data {
			if pos < len(row) {
				cells[r] = row[pos]
			}
		}
		col, err := inferColumn(headers[i], cells)
		if err != nil {
			return nil, err
		}
		columns[i] = col
	}

	var sections []models.Section
	switch {
	case len(boundaries) > 0:
		sections = boundarySections(boundaries, owners)
	case headerRows == 1:
		sections = sectionsByLabel(headers)
	default:
		sections = sectionRuns(headers)
	}

	return models.NewTable(sheetName, headerRows, columns, sections)
}

// lastValue returns the 1-based index of the rightmost non-empty cell in rows.
func lastValue(rows [][]models.Cell) int {
	width := 0
	for _, row := range rows {
		for c := len(row) - 1; c >= width; c-- {
			if !row[c].IsEmpty() {
				width = c + 1
				break
			}
		}
	}
	return width
}

// assignPositions returns the source columns that make up the table and,
// for each, the index of its boundary (-1 without boundaries).
func assignPositions(boundaries []models.SectionBoundary, width int) ([]int, []int, error) {
	if len(boundaries) == 0 {
		positions := make([]int, width)
		owners := make([]int, width)
		for i := range positions {
			positions[i] = i
			owners[i] = -1
		}
		return positions, owners, nil
	}

	for i, b := range boundaries {
		if b.Start < 0 || b.End < b.Start {
			return nil, nil, fmt.Errorf("%w: section %q has range %d..%d",
				models.ErrInvalidSections, b.Name, b.Start, b.End)
		}
		if b.End >= width {
			return nil, nil, fmt.Errorf("%w: section %q ends at column %d but the sheet has %d columns",
				models.ErrStructuralMismatch, b.Name, b.End+1, width)
		}
		for j := 0; j < i; j++ {
			if b.Overlaps(boundaries[j]) {
				return nil, nil, fmt.Errorf("%w: sections %q and %q overlap",
					models.ErrInvalidSections, boundaries[j].Name, b.Name)
			}
		}
	}

	var positions []int
	for _, b := range boundaries {
		for c := b.Start; c <= b.End; c++ {
			positions = append(positions, c)
		}
	}
	sort.Ints(positions)

	owners := make([]int, len(positions))
	for i, pos := range positions {
		for j, b := range boundaries {
			if b.Contains(pos) {
				owners[i] = j
				break
			}
		}
	}
	return positions, owners, nil
}

func columnHeader(filled [][]string, pos, headerRows int, owners []int, i int, boundaries []models.SectionBoundary) (models.ColumnHeader, error) {
	letter, err := excelize.ColumnNumberToName(pos + 1)
	if err != nil {
		return models.ColumnHeader{}, err
	}

	h := models.ColumnHeader{Position: pos}
	switch {
	case len(boundaries) > 0:
		h.Section = boundaries[owners[i]].Name
		h.Label = lastLabel(filled, pos)
		h.Nested = subLabel(filled, pos) != ""
	case headerRows == 1:
		h.Section = filled[0][pos]
		if h.Section == "" {
			h.Section = letter
		}
		h.Label = h.Section
	default:
		h.Section = filled[0][pos]
		h.Label = subLabel(filled, pos)
		h.Nested = h.Label != ""
		if h.Label == "" {
			h.Label = h.Section
		}
	}
	if h.Label == "" {
		h.Label = letter
	}
	return h, nil
}

func boundarySections(boundaries []models.SectionBoundary, owners []int) []models.Section {
	sections := make([]models.Section, 0, len(boundaries))
	for j, b := range boundaries {
		sec := models.Section{Name: b.Name}
		for i, owner := range owners {
			if owner == j {
				sec.Columns = append(sec.Columns, i)
			}
		}
		sections = append(sections, sec)
	}
	return sections
}

// inferColumn types a column: numeric when every non-empty cell is a number.
func inferColumn(h models.ColumnHeader, cells []models.Cell) (models.Column, error) {
	for _, c := range cells {
		if !c.IsEmpty() && c.Kind != models.CellNumber {
			return models.NewTextColumn(h, cells), nil
		}
	}
	return models.NewNumericColumn(h, cells)
}
