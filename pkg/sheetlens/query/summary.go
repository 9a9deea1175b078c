package query

import (
	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
)

// Summarize computes table dimensions and statistics for every numeric column.
func Summarize(t *models.Table) models.Summary {
	s := models.Summary{
		SheetName: t.SheetName(),
		Rows:      t.Rows(),
		Columns:   t.NumColumns(),
		Sections:  len(t.Sections()),
		Numeric:   []models.ColumnStats{},
	}
	for _, col := range t.Columns() {
		num, ok := col.(*models.NumericColumn)
		if !ok {
			continue
		}
		s.Numeric = append(s.Numeric, columnStats(num))
	}
	return s
}

func columnStats(col *models.NumericColumn) models.ColumnStats {
	stats := models.ColumnStats{Column: col.Header().Name()}
	values := make([]float64, 0, col.Len())
	for i := 0; i < col.Len(); i++ {
		if v, ok := col.Float(i); ok {
			values = append(values, v)
		}
	}
	stats.Count = len(values)
	if len(values) == 0 {
		return stats
	}
	lo, hi := minOf(values), maxOf(values)
	avg := mean(values).InexactFloat64()
	stats.Min, stats.Max, stats.Mean = &lo, &hi, &avg
	return stats
}
