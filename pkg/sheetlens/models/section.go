package models

// SectionBoundary assigns a fixed column range to a named section.
type SectionBoundary struct {
	// Name is the section name.
	Name string `json:"name"`
	// Start is the first column (0-based).
	Start int `json:"start"`
	// End is the last column (0-based, inclusive).
	End int `json:"end"`
}

// Contains reports whether col lies within the boundary.
func (b SectionBoundary) Contains(col int) bool {
	return col >= b.Start && col <= b.End
}

// Overlaps reports whether two boundaries share a column.
func (b SectionBoundary) Overlaps(o SectionBoundary) bool {
	return b.Start <= o.End && o.Start <= b.End
}
