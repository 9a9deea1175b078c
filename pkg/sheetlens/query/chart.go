package query

import (
	"fmt"
	"sort"

	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
)

// MaxCategories caps the number of categories in a counted chart.
const MaxCategories = 20

// CountLabel names the value series of a counted chart.
const CountLabel = "count"

// AggregateForChart projects t into chart-ready labels and values.
//
// Without a value column, rows are counted per category: empty categories
// are skipped, categories are ordered by descending count (ties keep
// first-seen order) and only the top MaxCategories are kept. With a value
// column, one point is produced per row in table order and rows with an
// empty value are skipped; the value column must be numeric.
func AggregateForChart(t *models.Table, spec models.ChartSpec) (*models.ChartData, error) {
	if spec.Category.IsZero() {
		return nil, models.NewQueryError("chart", "", fmt.Errorf("%w: no category column", models.ErrEmptySelection))
	}

	kind := spec.Kind
	if kind == "" {
		kind = models.ChartBar
	}
	kind, err := models.ParseChartKind(string(kind))
	if err != nil {
		return nil, models.NewQueryError("chart", "", err)
	}

	category, err := t.Column(spec.Category)
	if err != nil {
		return nil, models.NewQueryError("chart", spec.Category.String(), err)
	}

	if spec.Value == nil {
		data := countByCategory(category)
		data.Kind = kind
		return data, nil
	}

	valueCol, err := t.Column(*spec.Value)
	if err != nil {
		return nil, models.NewQueryError("chart", spec.Value.String(), err)
	}
	num, ok := valueCol.(*models.NumericColumn)
	if !ok {
		return nil, models.NewQueryError("chart", valueCol.Header().Name(),
			fmt.Errorf("%w: %s chart needs a numeric value column", models.ErrIncompatibleChartKind, kind))
	}

	data := &models.ChartData{
		Kind:     kind,
		Category: category.Header().Name(),
		Value:    num.Header().Name(),
		Labels:   []string{},
		Values:   []float64{},
	}
	for i := 0; i < t.Rows(); i++ {
		v, present := num.Float(i)
		if !present {
			continue
		}
		data.Labels = append(data.Labels, category.Cell(i).String())
		data.Values = append(data.Values, v)
	}
	return data, nil
}

func countByCategory(category models.Column) *models.ChartData {
	var keys []string
	labels := make(map[string]string)
	counts := make(map[string]int)
	for i := 0; i < category.Len(); i++ {
		cell := category.Cell(i)
		if cell.IsEmpty() {
			continue
		}
		key := cell.Key()
		if _, seen := counts[key]; !seen {
			keys = append(keys, key)
			labels[key] = cell.String()
		}
		counts[key]++
	}

	sort.SliceStable(keys, func(a, b int) bool {
		return counts[keys[a]] > counts[keys[b]]
	})
	if len(keys) > MaxCategories {
		keys = keys[:MaxCategories]
	}

	data := &models.ChartData{
		Category: category.Header().Name(),
		Value:    CountLabel,
		Labels:   make([]string, len(keys)),
		Values:   make([]float64, len(keys)),
	}
	for i, key := range keys {
		data.Labels[i] = labels[key]
		data.Values[i] = float64(counts[key])
	}
	return data
}
