package query

import (
	"testing"
)

func TestSummarize(t *testing.T) {
	s := Summarize(salesTable(t))

	if s.Rows != 6 || s.Columns != 5 || s.Sections != 2 {
		t.Errorf("Unexpected dimensions: %+v", s)
	}
	if len(s.Numeric) != 2 {
		t.Fatalf("Expected 2 numeric columns, got %d", len(s.Numeric))
	}

	tests := []struct {
		column         string
		count          int
		min, max, mean float64
	}{
		{"Figures - Units", 5, 1, 10, 5.2},
		{"Figures - Revenue", 5, 1, 100.1, 48.27},
	}
	for i, tt := range tests {
		st := s.Numeric[i]
		if st.Column != tt.column || st.Count != tt.count {
			t.Errorf("Expected %s with %d values, got %s with %d", tt.column, tt.count, st.Column, st.Count)
			continue
		}
		if *st.Min != tt.min || *st.Max != tt.max || *st.Mean != tt.mean {
			t.Errorf("%s: expected min=%v max=%v mean=%v, got %v %v %v",
				tt.column, tt.min, tt.max, tt.mean, *st.Min, *st.Max, *st.Mean)
		}
	}
}

func TestSummarizeEmptyColumn(t *testing.T) {
	table := interpret(t, 1,
		[]string{"Name", "Score"},
		[]string{"a"},
	)

	s := Summarize(table)
	if len(s.Numeric) != 1 {
		t.Fatalf("Expected the empty column to count as numeric, got %+v", s.Numeric)
	}
	if st := s.Numeric[0]; st.Count != 0 || st.Min != nil || st.Mean != nil {
		t.Errorf("Expected no statistics for an empty column, got %+v", st)
	}
}
