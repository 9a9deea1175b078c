package parser

import (
	"path/filepath"
	"testing"

	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
	"github.com/xuri/excelize/v2"
)

func TestExtractCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A3", "Text")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ExtractCells(f2, sheetName)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0][0].Kind != models.CellText || rows[0][0].Text != "Header1" {
		t.Errorf("Expected text 'Header1', got %+v", rows[0][0])
	}
	if rows[1][0].Kind != models.CellNumber || rows[1][0].Number != 100 {
		t.Errorf("Expected number 100, got %+v", rows[1][0])
	}
	if rows[1][1].Number != 200.5 {
		t.Errorf("Expected 200.5, got %+v", rows[1][1])
	}
	if len(rows[2]) != 1 {
		t.Errorf("Expected trailing empty cells to be trimmed, got %d cells", len(rows[2]))
	}
}

func TestExtractCellsUnknownSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := ExtractCells(f, "Missing"); err == nil {
		t.Error("Expected error for unknown sheet")
	}
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		input  string
		kind   models.CellKind
		number float64
		text   string
	}{
		{"123", models.CellNumber, 123, "123"},
		{" 12.5 ", models.CellNumber, 12.5, "12.5"},
		{"-100", models.CellNumber, -100, "-100"},
		{"1e3", models.CellNumber, 1000, "1e3"},
		{"hello", models.CellText, 0, "hello"},
		{"NaN", models.CellText, 0, "NaN"},
		{"Inf", models.CellText, 0, "Inf"},
		{"2024-01-02", models.CellDate, 0, "2024-01-02"},
		{"", models.CellEmpty, 0, ""},
		{"   ", models.CellEmpty, 0, ""},
	}

	for _, tt := range tests {
		c := ParseCell(tt.input)
		if c.Kind != tt.kind {
			t.Errorf("ParseCell(%q).Kind = %v, expected %v", tt.input, c.Kind, tt.kind)
			continue
		}
		if c.Number != tt.number {
			t.Errorf("ParseCell(%q).Number = %v, expected %v", tt.input, c.Number, tt.number)
		}
		if c.String() != tt.text {
			t.Errorf("ParseCell(%q).String() = %q, expected %q", tt.input, c.String(), tt.text)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw, display string
		kind         models.CellKind
		text         string
	}{
		{"1234.5", "1,234.50", models.CellNumber, "1,234.50"},
		{"45292", "2024-01-01", models.CellDate, "2024-01-01"},
		{"0.25", "25%", models.CellNumber, "25%"},
		{"abc", "abc", models.CellText, "abc"},
		{"", "", models.CellEmpty, ""},
	}

	for _, tt := range tests {
		c := parseValue(tt.raw, tt.display)
		if c.Kind != tt.kind {
			t.Errorf("parseValue(%q, %q).Kind = %v, expected %v", tt.raw, tt.display, c.Kind, tt.kind)
			continue
		}
		if c.String() != tt.text {
			t.Errorf("parseValue(%q, %q).String() = %q, expected %q", tt.raw, tt.display, c.String(), tt.text)
		}
	}

	if c := parseValue("1234.5", "1,234.50"); c.Number != 1234.5 {
		t.Errorf("Expected raw number 1234.5, got %v", c.Number)
	}
}

func TestCellsFromStrings(t *testing.T) {
	rows := CellsFromStrings([][]string{
		{"a", "1", "", ""},
		{},
		{"", "x"},
	})

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if len(rows[0]) != 2 {
		t.Errorf("Expected 2 cells after trimming, got %d", len(rows[0]))
	}
	if len(rows[1]) != 0 {
		t.Errorf("Expected empty row, got %d cells", len(rows[1]))
	}
	if !rows[2][0].IsEmpty() || rows[2][1].Text != "x" {
		t.Errorf("Unexpected third row: %+v", rows[2])
	}
}
