package models

// WorkbookInfo lists the sheets of a workbook.
type WorkbookInfo struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets describes each sheet in workbook order.
	Sheets []SheetInfo `json:"sheets"`
}
