package sheetlens

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input is neither a readable xlsx workbook nor CSV.
var ErrInvalidFormat = errors.New("invalid spreadsheet format")

// ErrSheetNotFound indicates the requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrNoTable indicates a session query was made before a sheet was loaded.
var ErrNoTable = errors.New("no table loaded")

// LoadError represents an error while reading or interpreting a sheet.
type LoadError struct {
	SheetName string
	Component string // "cells", "header", "sections", "csv"
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(sheetName, component string, err error) *LoadError {
	return &LoadError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
