package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
)

// groupKey is one key tuple of a pivot dimension.
type groupKey struct {
	cells []models.Cell
	text  []string
	id    string
}

// BuildPivot groups the rows of t by the row-key columns (first-seen order)
// and the column-key columns (ascending order), then aggregates every value
// column per group. Rows with an empty key cell are left out.
func BuildPivot(t *models.Table, spec models.PivotSpec) (*models.PivotResult, error) {
	if len(spec.Values) == 0 {
		return nil, models.NewQueryError("pivot", "", fmt.Errorf("%w: no value columns", models.ErrEmptySelection))
	}
	if len(spec.Rows) == 0 && len(spec.Columns) == 0 {
		return nil, models.NewQueryError("pivot", "", fmt.Errorf("%w: no row or column keys", models.ErrEmptySelection))
	}

	agg := spec.Aggregator
	if agg == "" {
		agg = models.AggSum
	}
	agg, err := models.ParseAggregator(string(agg))
	if err != nil {
		return nil, models.NewQueryError("pivot", "", err)
	}

	rowCols, err := resolveColumns(t, "pivot", spec.Rows)
	if err != nil {
		return nil, err
	}
	keyCols, err := resolveColumns(t, "pivot", spec.Columns)
	if err != nil {
		return nil, err
	}
	valueCols, err := resolveColumns(t, "pivot", spec.Values)
	if err != nil {
		return nil, err
	}

	if agg.IsNumeric() {
		for _, col := range valueCols {
			if col.Kind() != models.KindNumeric {
				return nil, models.NewQueryError("pivot", col.Header().Name(),
					fmt.Errorf("%w: %s needs numbers", models.ErrAggregationType, agg))
			}
		}
	}

	var rowKeys, colKeys []groupKey
	rowIndex := make(map[string]int)
	colIndex := make(map[string]int)
	groups := make(map[[2]int][]int)

	for i := 0; i < t.Rows(); i++ {
		rk, ok := keyOf(rowCols, i)
		if !ok {
			continue
		}
		ck, ok := keyOf(keyCols, i)
		if !ok {
			continue
		}
		ri := indexKey(rowIndex, &rowKeys, rk)
		ci := indexKey(colIndex, &colKeys, ck)
		groups[[2]int{ri, ci}] = append(groups[[2]int{ri, ci}], i)
	}

	order := make([]int, len(colKeys))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return compareKeys(colKeys[order[a]].cells, colKeys[order[b]].cells) < 0
	})

	result := &models.PivotResult{
		Aggregator: agg,
		RowHeaders: columnNames(rowCols),
		RowKeys:    make([][]string, len(rowKeys)),
		Values:     make([][]models.PivotValue, len(rowKeys)),
	}
	for _, col := range valueCols {
		for _, ci := range order {
			pc := models.PivotColumn{Value: col.Header().Name()}
			if len(keyCols) > 0 {
				pc.Key = colKeys[ci].text
			}
			result.Columns = append(result.Columns, pc)
		}
	}

	for ri, rk := range rowKeys {
		result.RowKeys[ri] = rk.text
		row := make([]models.PivotValue, 0, len(result.Columns))
		for _, col := range valueCols {
			for _, ci := range order {
				rows, ok := groups[[2]int{ri, ci}]
				if !ok {
					row = append(row, models.PivotValue{Missing: true})
					continue
				}
				row = append(row, aggregate(col, rows, agg))
			}
		}
		result.Values[ri] = row
	}

	return result, nil
}

func resolveColumns(t *models.Table, op string, refs []models.ColumnRef) ([]models.Column, error) {
	cols := make([]models.Column, len(refs))
	for i, ref := range refs {
		col, err := t.Column(ref)
		if err != nil {
			return nil, models.NewQueryError(op, ref.String(), err)
		}
		cols[i] = col
	}
	return cols, nil
}

func columnNames(cols []models.Column) []string {
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Header().Name()
	}
	return names
}

// keyOf returns the key tuple of row i, or false when a key cell is empty.
// Groups are identified by cell value; the first-seen display text labels
// the group.
func keyOf(cols []models.Column, i int) (groupKey, bool) {
	key := groupKey{
		cells: make([]models.Cell, len(cols)),
		text:  make([]string, len(cols)),
	}
	ids := make([]string, len(cols))
	for j, col := range cols {
		cell := col.Cell(i)
		if cell.IsEmpty() {
			return groupKey{}, false
		}
		key.cells[j] = cell
		key.text[j] = cell.String()
		ids[j] = cell.Key()
	}
	key.id = strings.Join(ids, "\x1f")
	return key, true
}

func indexKey(index map[string]int, keys *[]groupKey, key groupKey) int {
	if i, ok := index[key.id]; ok {
		return i
	}
	index[key.id] = len(*keys)
	*keys = append(*keys, key)
	return len(*keys) - 1
}

// compareKeys orders key tuples element by element. Numbers and dates
// compare by value, anything else by text.
func compareKeys(a, b []models.Cell) int {
	for i := range a {
		if c := compareCells(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func compareCells(a, b models.Cell) int {
	switch {
	case a.Kind == models.CellNumber && b.Kind == models.CellNumber:
		switch {
		case a.Number < b.Number:
			return -1
		case a.Number > b.Number:
			return 1
		}
		return 0
	case a.Kind == models.CellDate && b.Kind == models.CellDate:
		return a.Time.Compare(b.Time)
	case a.Kind == models.CellNumber:
		return -1
	case b.Kind == models.CellNumber:
		return 1
	default:
		return strings.Compare(a.String(), b.String())
	}
}
