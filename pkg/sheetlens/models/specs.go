package models

import (
	"fmt"
	"strings"
)

// NumericRange is a closed interval [Min, Max].
type NumericRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether min <= v <= max.
func (r NumericRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// FilterSpec selects rows by one column.
//
// Range applies to numeric columns; Keyword is a case-insensitive substring
// match on the cell's string form. An empty Keyword with no Range keeps
// every row.
type FilterSpec struct {
	Column  ColumnRef     `json:"column"`
	Range   *NumericRange `json:"range,omitempty"`
	Keyword string        `json:"keyword,omitempty"`
}

// Selection picks sections and individual columns. An empty Selection keeps
// every column.
type Selection struct {
	Sections []string    `json:"sections,omitempty"`
	Columns  []ColumnRef `json:"columns,omitempty"`
}

// IsEmpty reports whether the selection keeps every column.
func (s Selection) IsEmpty() bool {
	return len(s.Sections) == 0 && len(s.Columns) == 0
}

// Aggregator names a pivot aggregation function.
type Aggregator string

const (
	AggSum   Aggregator = "sum"
	AggMean  Aggregator = "mean"
	AggCount Aggregator = "count"
	AggMin   Aggregator = "min"
	AggMax   Aggregator = "max"
)

// ParseAggregator parses an aggregator name. "avg" and "average" are
// accepted as mean.
func ParseAggregator(s string) (Aggregator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sum":
		return AggSum, nil
	case "mean", "avg", "average":
		return AggMean, nil
	case "count":
		return AggCount, nil
	case "min":
		return AggMin, nil
	case "max":
		return AggMax, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAggregator, s)
	}
}

// IsNumeric reports whether the aggregator needs numeric input.
func (a Aggregator) IsNumeric() bool {
	return a != AggCount
}

// PivotSpec describes a pivot table.
type PivotSpec struct {
	Rows       []ColumnRef `json:"rows"`
	Columns    []ColumnRef `json:"columns,omitempty"`
	Values     []ColumnRef `json:"values"`
	Aggregator Aggregator  `json:"aggregator"`
}

// ChartKind names a chart type.
type ChartKind string

const (
	ChartBar     ChartKind = "bar"
	ChartLine    ChartKind = "line"
	ChartPie     ChartKind = "pie"
	ChartArea    ChartKind = "area"
	ChartScatter ChartKind = "scatter"
)

// ParseChartKind parses a chart kind name.
func ParseChartKind(s string) (ChartKind, error) {
	switch k := ChartKind(strings.ToLower(strings.TrimSpace(s))); k {
	case ChartBar, ChartLine, ChartPie, ChartArea, ChartScatter:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrIncompatibleChartKind, s)
	}
}

// IsTrend reports whether the kind plots rows in order (line, area).
func (k ChartKind) IsTrend() bool {
	return k == ChartLine || k == ChartArea
}

// ChartSpec describes a chart projection. A nil Value counts rows per category.
type ChartSpec struct {
	Category ColumnRef  `json:"category"`
	Value    *ColumnRef `json:"value,omitempty"`
	Kind     ChartKind  `json:"kind"`
}
