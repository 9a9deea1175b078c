package models

import (
	"errors"
	"fmt"
)

// ErrStructuralMismatch indicates rows and columns do not line up after header parsing.
var ErrStructuralMismatch = errors.New("structural mismatch")

// ErrUnknownColumn indicates a spec references a column absent from the table.
var ErrUnknownColumn = errors.New("unknown column reference")

// ErrAggregationType indicates a numeric aggregator was requested on a textual column.
var ErrAggregationType = errors.New("numeric aggregation on non-numeric column")

// ErrIncompatibleChartKind indicates a chart kind cannot plot the requested column.
var ErrIncompatibleChartKind = errors.New("incompatible chart kind")

// ErrEmptySelection indicates a pivot or chart was requested without the columns it needs.
var ErrEmptySelection = errors.New("empty selection")

// ErrInvalidHeaderRows indicates a header row count outside 1..3.
var ErrInvalidHeaderRows = errors.New("header row count must be 1, 2 or 3")

// ErrInvalidSections indicates malformed explicit section boundaries.
var ErrInvalidSections = errors.New("invalid section boundaries")

// ErrInvalidPredicate indicates a filter predicate that does not fit its column.
var ErrInvalidPredicate = errors.New("invalid filter predicate")

// ErrUnknownAggregator indicates an aggregator name outside sum, mean, count, min, max.
var ErrUnknownAggregator = errors.New("unknown aggregator")

// QueryError represents a failed query over a table.
type QueryError struct {
	Op     string // "filter", "select", "pivot", "chart"
	Column string
	Err    error
}

func (e *QueryError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s on column %q: %v", e.Op, e.Column, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewQueryError creates a new QueryError.
func NewQueryError(op, column string, err error) *QueryError {
	return &QueryError{
		Op:     op,
		Column: column,
		Err:    err,
	}
}
