package models

// PivotValue is one aggregated cell. Missing marks a group with no
// contributing cells, which is distinct from a zero value.
type PivotValue struct {
	Value   float64
	Missing bool
}

// PivotColumn describes one result column: the value column it aggregates
// and the column-key tuple it belongs to (nil without column keys).
type PivotColumn struct {
	Value string   `json:"value"`
	Key   []string `json:"key,omitempty"`
}

// Name returns the flattened result column name.
func (c PivotColumn) Name() string {
	name := c.Value
	for _, k := range c.Key {
		name += HeaderDelimiter + k
	}
	return name
}

// PivotResult is an aggregated pivot table.
type PivotResult struct {
	// Aggregator is the function that produced the values.
	Aggregator Aggregator
	// RowHeaders names the row-key columns.
	RowHeaders []string
	// Columns describes the value columns of the result.
	Columns []PivotColumn
	// RowKeys holds one key tuple per result row, in first-seen order.
	RowKeys [][]string
	// Values is indexed [row][column].
	Values [][]PivotValue
}
