package models

// SheetInfo describes a sheet before interpretation.
type SheetInfo struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows is the number of rows holding data.
	Rows int `json:"rows"`
	// Cols is the widest row length.
	Cols int `json:"cols"`
	// DataRange is the bounding range of non-empty cells (e.g. "A1:D10").
	DataRange string `json:"data_range,omitempty"`
	// Sections contains boundaries declared through workbook defined names.
	Sections []SectionBoundary `json:"sections,omitempty"`
}
