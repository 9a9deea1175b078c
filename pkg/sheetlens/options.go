// Package sheetlens loads spreadsheets, interprets multi-row headers into
// typed tables and drives interactive filter, pivot and chart queries.
package sheetlens

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
	"github.com/xuri/excelize/v2"
)

// DefaultHeaderRows is the header depth used when Options.HeaderRows is zero.
const DefaultHeaderRows = 2

// Options configures how sheets are interpreted.
type Options struct {
	// Sheet selects the sheet a session loads. Empty means the first sheet.
	Sheet string
	// HeaderRows is the number of header rows (1..3). Zero means DefaultHeaderRows.
	HeaderRows int
	// Sections assigns explicit column ranges to sections. When empty,
	// sections are derived from the top header row.
	Sections []models.SectionBoundary
	// SectionsFromNames derives section boundaries from the workbook's
	// defined names when Sections is empty.
	SectionsFromNames bool
	// SkipBlankRows specifies whether fully blank rows above the header are dropped.
	// If nil, defaults to true.
	SkipBlankRows *bool
}

// DefaultOptions returns default interpretation options.
func DefaultOptions() Options {
	return Options{
		HeaderRows: DefaultHeaderRows,
	}
}

// ShouldSkipBlankRows returns whether leading blank rows are dropped.
func (o Options) ShouldSkipBlankRows() bool {
	if o.SkipBlankRows != nil {
		return *o.SkipBlankRows
	}
	return true
}

// EffectiveHeaderRows returns HeaderRows, or DefaultHeaderRows when unset.
func (o Options) EffectiveHeaderRows() int {
	if o.HeaderRows == 0 {
		return DefaultHeaderRows
	}
	return o.HeaderRows
}

// ParseSectionBoundary parses "Name=A:C" (or "Name=B" for one column) into
// a boundary over 0-based column indexes.
func ParseSectionBoundary(s string) (models.SectionBoundary, error) {
	name, cols, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return models.SectionBoundary{}, fmt.Errorf("%w: %q is not Name=A:C", models.ErrInvalidSections, s)
	}

	startCol, endCol, found := strings.Cut(cols, ":")
	if !found {
		endCol = startCol
	}
	start, err := excelize.ColumnNameToNumber(strings.TrimSpace(startCol))
	if err != nil {
		return models.SectionBoundary{}, fmt.Errorf("%w: %q: %v", models.ErrInvalidSections, s, err)
	}
	end, err := excelize.ColumnNameToNumber(strings.TrimSpace(endCol))
	if err != nil {
		return models.SectionBoundary{}, fmt.Errorf("%w: %q: %v", models.ErrInvalidSections, s, err)
	}
	if end < start {
		return models.SectionBoundary{}, fmt.Errorf("%w: %q ends before it starts", models.ErrInvalidSections, s)
	}

	return models.SectionBoundary{Name: name, Start: start - 1, End: end - 1}, nil
}
