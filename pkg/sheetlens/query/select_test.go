package query

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
)

func headerNames(table *models.Table) []string {
	var names []string
	for _, h := range table.Headers() {
		names = append(names, h.Name())
	}
	return names
}

func TestSelectColumns(t *testing.T) {
	table := salesTable(t)

	tests := []struct {
		name     string
		sel      models.Selection
		expected []string
	}{
		{
			name:     "section",
			sel:      models.Selection{Sections: []string{"Figures"}},
			expected: []string{"Figures - Units", "Figures - Revenue"},
		},
		{
			name: "section plus column keeps table order",
			sel: models.Selection{
				Sections: []string{"Figures"},
				Columns:  []models.ColumnRef{ref("Region")},
			},
			expected: []string{"Sales - Region", "Figures - Units", "Figures - Revenue"},
		},
		{
			name:     "flattened name",
			sel:      models.Selection{Columns: []models.ColumnRef{ref("Sales - Quarter")}},
			expected: []string{"Sales - Quarter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectColumns(table, tt.sel)
			if err != nil {
				t.Fatalf("SelectColumns failed: %v", err)
			}
			if names := headerNames(got); !reflect.DeepEqual(names, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, names)
			}
			if got.Rows() != table.Rows() {
				t.Errorf("Expected rows to be kept")
			}
		})
	}

	same, err := SelectColumns(table, models.Selection{})
	if err != nil || same != table {
		t.Errorf("Expected empty selection to return the input table")
	}
}

func TestSelectColumnsUnknown(t *testing.T) {
	table := salesTable(t)

	if _, err := SelectColumns(table, models.Selection{Sections: []string{"Nope"}}); !errors.Is(err, models.ErrUnknownColumn) {
		t.Errorf("Expected ErrUnknownColumn for unknown section, got %v", err)
	}
	if _, err := SelectColumns(table, models.Selection{Columns: []models.ColumnRef{ref("Nope")}}); !errors.Is(err, models.ErrUnknownColumn) {
		t.Errorf("Expected ErrUnknownColumn for unknown column, got %v", err)
	}
}

func TestView(t *testing.T) {
	table := salesTable(t)

	got, err := View(table,
		models.Selection{Sections: []string{"Figures"}},
		models.FilterSpec{Column: ref("Region"), Keyword: "south"},
	)
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	if got.Rows() != 2 || got.NumColumns() != 2 {
		t.Errorf("Expected 2x2 view, got %dx%d", got.Rows(), got.NumColumns())
	}
	if units := columnStrings(t, got, "Units"); !reflect.DeepEqual(units, []string{"5", "3"}) {
		t.Errorf("Expected [5 3], got %v", units)
	}
}
