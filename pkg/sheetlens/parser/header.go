package parser

import (
	"strings"

	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
)

// ForwardFill returns a copy of header rows, padded to the widest row, with
// every blank cell replaced by the nearest non-blank label to its left on
// the same row. Below the first row a fill stops at any label change in the
// rows above, so a sub-label never leaks into a neighbouring section. This
// differs from a plain left fill: {"A","B"} over {"x",""} leaves the second
// sub-label blank instead of "x", as merged header cells would.
//
// ForwardFill is idempotent.
func ForwardFill(header [][]string) [][]string {
	width := 0
	for _, row := range header {
		if len(row) > width {
			width = len(row)
		}
	}

	out := make([][]string, len(header))
	boundary := make([]bool, width)
	for r, row := range header {
		filled := make([]string, width)
		last := ""
		for c := 0; c < width; c++ {
			if boundary[c] {
				last = ""
			}
			v := strings.TrimSpace(cellAt(row, c))
			if v == "" {
				v = last
			} else {
				last = v
			}
			filled[c] = v
		}
		for c := 1; c < width; c++ {
			if filled[c] != filled[c-1] {
				boundary[c] = true
			}
		}
		out[r] = filled
	}
	return out
}

// subLabel joins the lower header levels at col, skipping blanks.
func subLabel(filled [][]string, col int) string {
	var parts []string
	for _, row := range filled[1:] {
		if v := row[col]; v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, models.HeaderDelimiter)
}

// lastLabel returns the lowest non-blank header level at col.
func lastLabel(filled [][]string, col int) string {
	for r := len(filled) - 1; r >= 0; r-- {
		if v := filled[r][col]; v != "" {
			return v
		}
	}
	return ""
}

// sectionRuns groups table columns into contiguous runs of equal section names.
func sectionRuns(headers []models.ColumnHeader) []models.Section {
	var sections []models.Section
	for i, h := range headers {
		if n := len(sections); n > 0 && sections[n-1].Name == h.Section {
			sections[n-1].Columns = append(sections[n-1].Columns, i)
			continue
		}
		sections = append(sections, models.Section{Name: h.Section, Columns: []int{i}})
	}
	return sections
}

// sectionsByLabel groups table columns by distinct section name, first-seen order.
func sectionsByLabel(headers []models.ColumnHeader) []models.Section {
	var sections []models.Section
	index := make(map[string]int)
	for i, h := range headers {
		if s, ok := index[h.Section]; ok {
			sections[s].Columns = append(sections[s].Columns, i)
			continue
		}
		index[h.Section] = len(sections)
		sections = append(sections, models.Section{Name: h.Section, Columns: []int{i}})
	}
	return sections
}
