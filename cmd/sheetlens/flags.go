package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
)

// parseWhere parses one --where predicate.
//
//	Amount=15:25   range, either bound may be omitted
//	Amount=15      exact value
//	Name~ali       case-insensitive substring
func parseWhere(s string) (models.FilterSpec, error) {
	idx := strings.IndexAny(s, "=~")
	if idx <= 0 {
		return models.FilterSpec{}, fmt.Errorf("%w: %q is not Column=min:max or Column~keyword", models.ErrInvalidPredicate, s)
	}

	ref, err := models.ParseColumnRef(s[:idx])
	if err != nil {
		return models.FilterSpec{}, err
	}
	spec := models.FilterSpec{Column: ref}
	arg := strings.TrimSpace(s[idx+1:])

	if s[idx] == '~' {
		spec.Keyword = arg
		return spec, nil
	}

	lo, hi, isRange := strings.Cut(arg, ":")
	if !isRange {
		hi = lo
	}
	r := models.NumericRange{Min: math.Inf(-1), Max: math.Inf(1)}
	if lo = strings.TrimSpace(lo); lo != "" {
		if r.Min, err = strconv.ParseFloat(lo, 64); err != nil {
			return models.FilterSpec{}, fmt.Errorf("%w: bad minimum in %q", models.ErrInvalidPredicate, s)
		}
	}
	if hi = strings.TrimSpace(hi); hi != "" {
		if r.Max, err = strconv.ParseFloat(hi, 64); err != nil {
			return models.FilterSpec{}, fmt.Errorf("%w: bad maximum in %q", models.ErrInvalidPredicate, s)
		}
	}
	if !isRange && lo == "" {
		return models.FilterSpec{}, fmt.Errorf("%w: no value in %q", models.ErrInvalidPredicate, s)
	}
	spec.Range = &r
	return spec, nil
}

func parseWhereList(list []string) ([]models.FilterSpec, error) {
	specs := make([]models.FilterSpec, 0, len(list))
	for _, s := range list {
		spec, err := parseWhere(s)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func parseColumnList(list []string) ([]models.ColumnRef, error) {
	refs := make([]models.ColumnRef, 0, len(list))
	for _, s := range list {
		ref, err := models.ParseColumnRef(s)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func selectionFromFlags(sections, columns []string) (models.Selection, error) {
	refs, err := parseColumnList(columns)
	if err != nil {
		return models.Selection{}, err
	}
	sel := models.Selection{Columns: refs}
	for _, s := range sections {
		if s = strings.TrimSpace(s); s != "" {
			sel.Sections = append(sel.Sections, s)
		}
	}
	return sel, nil
}

func pivotSpecFromFlags() (models.PivotSpec, error) {
	agg, err := models.ParseAggregator(pivotAgg)
	if err != nil {
		return models.PivotSpec{}, err
	}
	spec := models.PivotSpec{Aggregator: agg}
	if spec.Rows, err = parseColumnList(pivotRows); err != nil {
		return models.PivotSpec{}, err
	}
	if spec.Columns, err = parseColumnList(pivotCols); err != nil {
		return models.PivotSpec{}, err
	}
	if spec.Values, err = parseColumnList(pivotValues); err != nil {
		return models.PivotSpec{}, err
	}
	return spec, nil
}

func chartSpecFromFlags() (models.ChartSpec, error) {
	kind, err := models.ParseChartKind(chartKind)
	if err != nil {
		return models.ChartSpec{}, err
	}
	spec := models.ChartSpec{Kind: kind}
	if strings.TrimSpace(chartCategory) != "" {
		if spec.Category, err = models.ParseColumnRef(chartCategory); err != nil {
			return models.ChartSpec{}, err
		}
	}
	if strings.TrimSpace(chartValue) != "" {
		value, err := models.ParseColumnRef(chartValue)
		if err != nil {
			return models.ChartSpec{}, err
		}
		spec.Value = &value
	}
	return spec, nil
}
