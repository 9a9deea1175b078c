// Package query derives filtered views, pivots and chart projections from
// interpreted tables. Every function is pure: inputs are never modified and
// results are new tables or aggregates.
package query

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
)

// Mask evaluates spec against every row of t.
//
// A numeric range keeps non-empty values within [Min, Max]. A keyword keeps
// cells whose string form contains it, ignoring case; empty cells never
// match a non-empty keyword.
func Mask(t *models.Table, spec models.FilterSpec) ([]bool, error) {
	col, err := t.Column(spec.Column)
	if err != nil {
		return nil, models.NewQueryError("filter", spec.Column.String(), err)
	}
	name := col.Header().Name()

	mask := make([]bool, t.Rows())
	switch {
	case spec.Range != nil && spec.Keyword != "":
		return nil, models.NewQueryError("filter", name,
			fmt.Errorf("%w: both a range and a keyword given", models.ErrInvalidPredicate))

	case spec.Range != nil:
		num, ok := col.(*models.NumericColumn)
		if !ok {
			return nil, models.NewQueryError("filter", name,
				fmt.Errorf("%w: range on a %s column", models.ErrInvalidPredicate, col.Kind()))
		}
		if spec.Range.Min > spec.Range.Max {
			return nil, models.NewQueryError("filter", name,
				fmt.Errorf("%w: min %g is above max %g", models.ErrInvalidPredicate, spec.Range.Min, spec.Range.Max))
		}
		for i := range mask {
			v, present := num.Float(i)
			mask[i] = present && spec.Range.Contains(v)
		}

	case spec.Keyword == "":
		for i := range mask {
			mask[i] = true
		}

	default:
		keyword := strings.ToLower(spec.Keyword)
		for i := range mask {
			cell := col.Cell(i)
			mask[i] = !cell.IsEmpty() && strings.Contains(strings.ToLower(cell.String()), keyword)
		}
	}
	return mask, nil
}

// ApplyFilter returns the rows of t that match spec, in their original
// order, with every column kept.
func ApplyFilter(t *models.Table, spec models.FilterSpec) (*models.Table, error) {
	if spec.Range == nil && spec.Keyword == "" {
		if _, err := t.Column(spec.Column); err != nil {
			return nil, models.NewQueryError("filter", spec.Column.String(), err)
		}
		return t, nil
	}

	mask, err := Mask(t, spec)
	if err != nil {
		return nil, err
	}
	return t.Take(maskRows(mask)), nil
}

// ApplyFilters returns the rows of t that match every spec.
func ApplyFilters(t *models.Table, specs ...models.FilterSpec) (*models.Table, error) {
	if len(specs) == 0 {
		return t, nil
	}

	keep := make([]bool, t.Rows())
	for i := range keep {
		keep[i] = true
	}
	for _, spec := range specs {
		mask, err := Mask(t, spec)
		if err != nil {
			return nil, err
		}
		for i, ok := range mask {
			keep[i] = keep[i] && ok
		}
	}
	return t.Take(maskRows(keep)), nil
}

func maskRows(mask []bool) []int {
	rows := make([]int, 0, len(mask))
	for i, ok := range mask {
		if ok {
			rows = append(rows, i)
		}
	}
	return rows
}
