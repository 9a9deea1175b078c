package query

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
)

func pivotValues(p *models.PivotResult) [][]any {
	out := make([][]any, len(p.Values))
	for i, row := range p.Values {
		for _, v := range row {
			if v.Missing {
				out[i] = append(out[i], nil)
				continue
			}
			out[i] = append(out[i], v.Value)
		}
	}
	return out
}

func TestBuildPivotSum(t *testing.T) {
	table := salesTable(t)

	p, err := BuildPivot(table, models.PivotSpec{
		Rows:       []models.ColumnRef{ref("Region")},
		Columns:    []models.ColumnRef{ref("Quarter")},
		Values:     []models.ColumnRef{ref("Revenue")},
		Aggregator: models.AggSum,
	})
	if err != nil {
		t.Fatalf("BuildPivot failed: %v", err)
	}

	if !reflect.DeepEqual(p.RowHeaders, []string{"Sales - Region"}) {
		t.Errorf("Unexpected row headers: %v", p.RowHeaders)
	}
	if !reflect.DeepEqual(p.RowKeys, [][]string{{"North"}, {"South"}}) {
		t.Errorf("Expected first-seen row keys, got %v", p.RowKeys)
	}

	names := make([]string, len(p.Columns))
	for i, c := range p.Columns {
		names[i] = c.Name()
	}
	expectedNames := []string{"Figures - Revenue - Q1", "Figures - Revenue - Q10", "Figures - Revenue - Q2"}
	if !reflect.DeepEqual(names, expectedNames) {
		t.Errorf("Expected columns %v, got %v", expectedNames, names)
	}

	expected := [][]any{
		{90.2, nil, 100.1},
		{50.05, nil, nil},
	}
	if got := pivotValues(p); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestBuildPivotAggregators(t *testing.T) {
	table := salesTable(t)

	tests := []struct {
		agg      models.Aggregator
		value    string
		expected [][]any
	}{
		{models.AggCount, "Units", [][]any{{2.0}, {2.0}}},
		{models.AggCount, "Product", [][]any{{3.0}, {2.0}}},
		{models.AggMean, "Units", [][]any{{8.5}, {4.0}}},
		{models.AggMin, "Revenue", [][]any{{20.2}, {50.05}}},
		{models.AggMax, "Revenue", [][]any{{100.1}, {50.05}}},
	}

	for _, tt := range tests {
		t.Run(string(tt.agg)+" "+tt.value, func(t *testing.T) {
			p, err := BuildPivot(table, models.PivotSpec{
				Rows:       []models.ColumnRef{ref("Region")},
				Values:     []models.ColumnRef{ref(tt.value)},
				Aggregator: tt.agg,
			})
			if err != nil {
				t.Fatalf("BuildPivot failed: %v", err)
			}
			if got := pivotValues(p); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestBuildPivotCountNeverFails(t *testing.T) {
	table := salesTable(t)

	for _, col := range table.Columns() {
		name := col.Header().Name()
		_, err := BuildPivot(table, models.PivotSpec{
			Rows:       []models.ColumnRef{ref("Product")},
			Values:     []models.ColumnRef{ref(name)},
			Aggregator: models.AggCount,
		})
		if err != nil {
			t.Errorf("count over %q failed: %v", name, err)
		}
	}
}

func TestBuildPivotTextualValue(t *testing.T) {
	table := salesTable(t)

	for _, agg := range []models.Aggregator{models.AggSum, models.AggMean, models.AggMin, models.AggMax} {
		_, err := BuildPivot(table, models.PivotSpec{
			Rows:       []models.ColumnRef{ref("Region")},
			Values:     []models.ColumnRef{ref("Product")},
			Aggregator: agg,
		})
		if !errors.Is(err, models.ErrAggregationType) {
			t.Errorf("%s over text: expected ErrAggregationType, got %v", agg, err)
		}
	}
}

func TestBuildPivotColumnKeyOrder(t *testing.T) {
	table := interpret(t, 1,
		[]string{"Kind", "Year", "Amount"},
		[]string{"a", "2010", "1"},
		[]string{"a", "2009", "2"},
		[]string{"b", "100", "3"},
	)

	p, err := BuildPivot(table, models.PivotSpec{
		Rows:    []models.ColumnRef{ref("Kind")},
		Columns: []models.ColumnRef{ref("Year")},
		Values:  []models.ColumnRef{ref("Amount")},
	})
	if err != nil {
		t.Fatalf("BuildPivot failed: %v", err)
	}

	var keys []string
	for _, c := range p.Columns {
		keys = append(keys, c.Key[0])
	}
	if !reflect.DeepEqual(keys, []string{"100", "2009", "2010"}) {
		t.Errorf("Expected numeric key order, got %v", keys)
	}
	if p.Aggregator != models.AggSum {
		t.Errorf("Expected default aggregator sum, got %q", p.Aggregator)
	}
	expected := [][]any{{nil, 2.0, 1.0}, {3.0, nil, nil}}
	if got := pivotValues(p); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestBuildPivotErrors(t *testing.T) {
	table := salesTable(t)

	tests := []struct {
		name     string
		spec     models.PivotSpec
		expected error
	}{
		{
			name:     "no values",
			spec:     models.PivotSpec{Rows: []models.ColumnRef{ref("Region")}},
			expected: models.ErrEmptySelection,
		},
		{
			name:     "no keys",
			spec:     models.PivotSpec{Values: []models.ColumnRef{ref("Units")}},
			expected: models.ErrEmptySelection,
		},
		{
			name: "unknown value column",
			spec: models.PivotSpec{
				Rows:   []models.ColumnRef{ref("Region")},
				Values: []models.ColumnRef{ref("Profit")},
			},
			expected: models.ErrUnknownColumn,
		},
		{
			name: "unknown aggregator",
			spec: models.PivotSpec{
				Rows:       []models.ColumnRef{ref("Region")},
				Values:     []models.ColumnRef{ref("Units")},
				Aggregator: "median",
			},
			expected: models.ErrUnknownAggregator,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := BuildPivot(table, tt.spec)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
			if p != nil {
				t.Errorf("Expected no result on error")
			}
		})
	}
}

func TestBuildPivotGroupsNumericKeysByValue(t *testing.T) {
	table := interpret(t, 1,
		[]string{"Region", "Year", "Amount"},
		[]string{"North", "2024", "1"},
		[]string{"North", "2024.0", "2"},
		[]string{"North", "2023", "4"},
	)

	byRow, err := BuildPivot(table, models.PivotSpec{
		Rows:   []models.ColumnRef{ref("Year")},
		Values: []models.ColumnRef{ref("Amount")},
	})
	if err != nil {
		t.Fatalf("BuildPivot failed: %v", err)
	}
	if !reflect.DeepEqual(byRow.RowKeys, [][]string{{"2024"}, {"2023"}}) {
		t.Errorf("Expected one row per year, got %v", byRow.RowKeys)
	}
	if got := pivotValues(byRow); !reflect.DeepEqual(got, [][]any{{3.0}, {4.0}}) {
		t.Errorf("Expected [[3] [4]], got %v", got)
	}

	byColumn, err := BuildPivot(table, models.PivotSpec{
		Rows:    []models.ColumnRef{ref("Region")},
		Columns: []models.ColumnRef{ref("Year")},
		Values:  []models.ColumnRef{ref("Amount")},
	})
	if err != nil {
		t.Fatalf("BuildPivot failed: %v", err)
	}
	if len(byColumn.Columns) != 2 {
		t.Fatalf("Expected one column per year, got %v", byColumn.Columns)
	}
	if got := pivotValues(byColumn); !reflect.DeepEqual(got, [][]any{{4.0, 3.0}}) {
		t.Errorf("Expected [[4 3]], got %v", got)
	}
}
