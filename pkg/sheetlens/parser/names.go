package parser

import (
	"sort"
	"strings"

	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
	"github.com/xuri/excelize/v2"
)

// SectionsFromDefinedNames returns section boundaries declared as workbook
// defined names over column ranges of sheetName, e.g. a name "Orders"
// referring to 'Sheet1'!$A:$B. Built-in names (_xlnm.*) are ignored.
// Boundaries are returned left to right.
func SectionsFromDefinedNames(f *excelize.File, sheetName string) []models.SectionBoundary {
	var result []models.SectionBoundary

	for _, dn := range f.GetDefinedName() {
		if strings.HasPrefix(strings.ToLower(dn.Name), "_xlnm.") {
			continue
		}
		if dn.Scope != "" && dn.Scope != "Workbook" && dn.Scope != sheetName {
			continue
		}

		sheet, start, end, ok := parseColumnReference(dn.RefersTo)
		if !ok || sheet != sheetName {
			continue
		}
		result = append(result, models.SectionBoundary{
			Name:  dn.Name,
			Start: start,
			End:   end,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Start < result[j].Start
	})
	return result
}

// parseColumnReference parses a reference such as 'Sheet 1'!$A$1:$C$20 or
// Sheet1!$A:$C into its sheet name and 0-based column range. Only the first
// area of a multi-area reference is used.
func parseColumnReference(ref string) (string, int, int, bool) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "=")
	if idx := strings.Index(ref, ","); idx >= 0 {
		ref = ref[:idx]
	}

	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return "", 0, 0, false
	}
	sheet := strings.Trim(ref[:idx], "'")
	rangeStr := strings.ReplaceAll(ref[idx+1:], "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return "", 0, 0, false
	}

	start, err := columnOf(parts[0])
	if err != nil {
		return "", 0, 0, false
	}
	end, err := columnOf(parts[1])
	if err != nil {
		return "", 0, 0, false
	}
	if end < start {
		start, end = end, start
	}
	return sheet, start - 1, end - 1, true
}

// columnOf returns the 1-based column number of a cell or column name.
func columnOf(name string) (int, error) {
	letters := strings.TrimRightFunc(name, func(r rune) bool {
		return r >= '0' && r <= '9'
	})
	return excelize.ColumnNameToNumber(letters)
}
