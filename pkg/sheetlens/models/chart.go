package models

// ChartData is a chart-ready projection: parallel labels and values.
type ChartData struct {
	// Kind is the chart kind requested.
	Kind ChartKind `json:"kind"`
	// Category is the flattened name of the category column.
	Category string `json:"category"`
	// Value is the flattened name of the value column, or "count".
	Value string `json:"value"`
	// Labels are the category labels, one per point.
	Labels []string `json:"labels"`
	// Values are the plotted magnitudes, one per label.
	Values []float64 `json:"values"`
}

// Len returns the number of points.
func (d ChartData) Len() int {
	return len(d.Labels)
}
