package sheetlens

import (
	"errors"
	"testing"

	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.EffectiveHeaderRows() != 2 {
		t.Errorf("Expected 2 header rows, got %d", opts.EffectiveHeaderRows())
	}
	if !opts.ShouldSkipBlankRows() {
		t.Error("Expected blank rows to be skipped by default")
	}

	skip := false
	opts.SkipBlankRows = &skip
	if opts.ShouldSkipBlankRows() {
		t.Error("Expected SkipBlankRows override to apply")
	}

	if (Options{}).EffectiveHeaderRows() != DefaultHeaderRows {
		t.Error("Expected zero HeaderRows to fall back to the default")
	}
}

func TestParseSectionBoundary(t *testing.T) {
	tests := []struct {
		input    string
		expected models.SectionBoundary
		wantErr  bool
	}{
		{"Orders=A:C", models.SectionBoundary{Name: "Orders", Start: 0, End: 2}, false},
		{" Shipping = D ", models.SectionBoundary{Name: "Shipping", Start: 3, End: 3}, false},
		{"Wide=AA:AB", models.SectionBoundary{Name: "Wide", Start: 26, End: 27}, false},
		{"Orders", models.SectionBoundary{}, true},
		{"=A:B", models.SectionBoundary{}, true},
		{"Orders=C:A", models.SectionBoundary{}, true},
		{"Orders=1:2", models.SectionBoundary{}, true},
	}

	for _, tt := range tests {
		got, err := ParseSectionBoundary(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSectionBoundary(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err != nil {
			if !errors.Is(err, models.ErrInvalidSections) {
				t.Errorf("ParseSectionBoundary(%q): expected ErrInvalidSections, got %v", tt.input, err)
			}
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseSectionBoundary(%q) = %+v, expected %+v", tt.input, got, tt.expected)
		}
	}
}
