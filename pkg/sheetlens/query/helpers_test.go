package query

import (
	"testing"

	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/parser"
)

// interpret builds a table from string rows.
func interpret(t *testing.T, headerRows int, rows ...[]string) *models.Table {
	t.Helper()
	table, err := parser.Interpret("Sheet1", parser.CellsFromStrings(rows), headerRows, nil)
	if err != nil {
		t.Fatalf("Interpret failed: %v", err)
	}
	return table
}

func ordersTable(t *testing.T) *models.Table {
	return interpret(t, 3,
		[]string{"Orders", "Orders", "Shipping"},
		[]string{"ID", "Amount", "Date"},
		[]string{},
		[]string{"1", "10.5", "2024-01-01"},
		[]string{"2", "20.0", "2024-01-02"},
	)
}

func salesTable(t *testing.T) *models.Table {
	return interpret(t, 2,
		[]string{"Sales", "", "", "Figures", ""},
		[]string{"Region", "Product", "Quarter", "Units", "Revenue"},
		[]string{"North", "Apple", "Q2", "10", "100.10"},
		[]string{"South", "Pear", "Q1", "5", "50.05"},
		[]string{"North", "Pear", "Q1", "", "20.20"},
		[]string{"North", "Apple", "Q1", "7", "70"},
		[]string{"", "Apple", "Q1", "1", "1"},
		[]string{"South", "Apple", "Q10", "3", ""},
	)
}

func ref(label string) models.ColumnRef {
	return models.RefByName("", label)
}

func columnStrings(t *testing.T, table *models.Table, label string) []string {
	t.Helper()
	col, err := table.Column(ref(label))
	if err != nil {
		t.Fatalf("Column(%q) failed: %v", label, err)
	}
	out := make([]string, col.Len())
	for i := range out {
		out[i] = col.Cell(i).String()
	}
	return out
}
