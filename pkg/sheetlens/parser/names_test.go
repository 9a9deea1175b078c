package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestSectionsFromDefinedNames(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet("Other"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}

	names := []*excelize.DefinedName{
		{Name: "Shipping", RefersTo: "Sheet1!$C$1:$D$20"},
		{Name: "Orders", RefersTo: "Sheet1!$A$1:$B$20", Scope: "Sheet1"},
		{Name: "Elsewhere", RefersTo: "Other!$A$1:$B$20"},
		{Name: "_xlnm.Print_Area", RefersTo: "Sheet1!$A$1:$D$20", Scope: "Sheet1"},
	}
	for _, dn := range names {
		if err := f.SetDefinedName(dn); err != nil {
			t.Fatalf("SetDefinedName(%s) failed: %v", dn.Name, err)
		}
	}

	sections := SectionsFromDefinedNames(f, "Sheet1")
	if len(sections) != 2 {
		t.Fatalf("Expected 2 sections, got %+v", sections)
	}
	if sections[0].Name != "Orders" || sections[0].Start != 0 || sections[0].End != 1 {
		t.Errorf("Unexpected first section: %+v", sections[0])
	}
	if sections[1].Name != "Shipping" || sections[1].Start != 2 || sections[1].End != 3 {
		t.Errorf("Unexpected second section: %+v", sections[1])
	}
}

func TestParseColumnReference(t *testing.T) {
	tests := []struct {
		ref   string
		sheet string
		start int
		end   int
		ok    bool
	}{
		{"Sheet1!$A$1:$C$20", "Sheet1", 0, 2, true},
		{"'My Sheet'!$B:$D", "My Sheet", 1, 3, true},
		{"=Sheet1!E5", "Sheet1", 4, 4, true},
		{"Sheet1!$A$1:$B$2,Sheet1!$D$1:$E$2", "Sheet1", 0, 1, true},
		{"Sheet1!$C$1:$A$5", "Sheet1", 0, 2, true},
		{"$A$1:$B$2", "", 0, 0, false},
		{"Sheet1!#REF!", "", 0, 0, false},
	}

	for _, tt := range tests {
		sheet, start, end, ok := parseColumnReference(tt.ref)
		if ok != tt.ok {
			t.Errorf("parseColumnReference(%q) ok = %v, expected %v", tt.ref, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if sheet != tt.sheet || start != tt.start || end != tt.end {
			t.Errorf("parseColumnReference(%q) = (%q, %d, %d), expected (%q, %d, %d)",
				tt.ref, sheet, start, end, tt.sheet, tt.start, tt.end)
		}
	}
}
