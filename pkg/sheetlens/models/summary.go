package models

// ColumnStats holds summary statistics for one numeric column.
type ColumnStats struct {
	// Column is the flattened column name.
	Column string `json:"column"`
	// Count is the number of non-empty cells.
	Count int `json:"count"`
	// Min, Max and Mean are nil when Count is zero.
	Min  *float64 `json:"min"`
	Max  *float64 `json:"max"`
	Mean *float64 `json:"mean"`
}

// Summary describes a table for report generation.
type Summary struct {
	SheetName string        `json:"sheet_name"`
	Rows      int           `json:"rows"`
	Columns   int           `json:"columns"`
	Sections  int           `json:"sections"`
	Numeric   []ColumnStats `json:"numeric"`
}
