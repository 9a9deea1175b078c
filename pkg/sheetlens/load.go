package sheetlens

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/parser"
	"github.com/xuri/excelize/v2"
)

// Workbook is an opened xlsx workbook or CSV file.
type Workbook struct {
	name   string
	file   *excelize.File
	sheets []string
	// csvRows holds the records of a CSV input, exposed as a single sheet.
	csvRows [][]string
}

// Open opens an xlsx workbook, or a CSV file when path ends in ".csv".
func Open(path string) (*Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	return OpenReader(f, filepath.Base(path))
}

// OpenReader reads a workbook from r. name is the file name; a ".csv"
// extension selects CSV parsing.
func OpenReader(r io.Reader, name string) (*Workbook, error) {
	if strings.EqualFold(filepath.Ext(name), ".csv") {
		return openCSV(r, name)
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, name, err)
	}
	return &Workbook{
		name:   name,
		file:   f,
		sheets: f.GetSheetList(),
	}, nil
}

func openCSV(r io.Reader, name string) (*Workbook, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, name, err)
	}
	sheet := strings.TrimSuffix(name, filepath.Ext(name))
	return &Workbook{
		name:    name,
		sheets:  []string{sheet},
		csvRows: records,
	}, nil
}

// Close releases the underlying workbook.
func (wb *Workbook) Close() error {
	if wb.file == nil {
		return nil
	}
	return wb.file.Close()
}

// Name returns the file name the workbook was opened from.
func (wb *Workbook) Name() string { return wb.name }

// SheetNames returns the sheet names in workbook order.
func (wb *Workbook) SheetNames() []string {
	return append([]string(nil), wb.sheets...)
}

// Cells returns the typed cells of a sheet.
func (wb *Workbook) Cells(sheet string) ([][]models.Cell, error) {
	if !slices.Contains(wb.sheets, sheet) {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}
	if wb.file == nil {
		return parser.CellsFromStrings(wb.csvRows), nil
	}
	cells, err := parser.ExtractCells(wb.file, sheet)
	if err != nil {
		return nil, NewLoadError(sheet, "cells", err)
	}
	return cells, nil
}

// Info describes every sheet without interpreting headers.
func (wb *Workbook) Info() (*models.WorkbookInfo, error) {
	info := &models.WorkbookInfo{
		BookName: wb.name,
		Sheets:   make([]models.SheetInfo, 0, len(wb.sheets)),
	}
	for _, sheet := range wb.sheets {
		cells, err := wb.Cells(sheet)
		if err != nil {
			return nil, err
		}

		si := models.SheetInfo{Name: sheet, Rows: len(cells)}
		for _, row := range cells {
			if len(row) > si.Cols {
				si.Cols = len(row)
			}
		}
		si.DataRange, err = parser.DetectDataRange(cells, parser.DefaultTableParams())
		if err != nil {
			return nil, NewLoadError(sheet, "cells", err)
		}
		if wb.file != nil {
			si.Sections = parser.SectionsFromDefinedNames(wb.file, sheet)
		}
		info.Sheets = append(info.Sheets, si)
	}
	return info, nil
}

// Interpret reads a sheet and interprets it into a Table.
func (wb *Workbook) Interpret(sheet string, opts Options) (*models.Table, error) {
	cells, err := wb.Cells(sheet)
	if err != nil {
		return nil, err
	}
	if opts.ShouldSkipBlankRows() {
		cells = parser.TrimLeadingBlankRows(cells)
	}

	boundaries := opts.Sections
	if len(boundaries) == 0 && opts.SectionsFromNames && wb.file != nil {
		boundaries = parser.SectionsFromDefinedNames(wb.file, sheet)
	}

	table, err := parser.Interpret(sheet, cells, opts.EffectiveHeaderRows(), boundaries)
	if err != nil {
		return nil, NewLoadError(sheet, "header", err)
	}
	return table, nil
}

// Load opens path and interprets the sheet named by opts.Sheet, or the
// first sheet.
func Load(path string, opts Options) (*models.Table, error) {
	wb, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = wb.FirstSheet()
	}
	return wb.Interpret(sheet, opts)
}

// FirstSheet returns the first sheet name, or "" for an empty workbook.
func (wb *Workbook) FirstSheet() string {
	if len(wb.sheets) == 0 {
		return ""
	}
	return wb.sheets[0]
}
