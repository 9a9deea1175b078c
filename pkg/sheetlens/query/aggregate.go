package query

import (
	"github.com/shopspring/decimal"
	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
)

// aggregate applies agg to the given rows of col. Empty cells never
// contribute; a numeric aggregate over no cells is missing.
func aggregate(col models.Column, rows []int, agg models.Aggregator) models.PivotValue {
	if agg == models.AggCount {
		n := 0
		for _, r := range rows {
			if !col.Cell(r).IsEmpty() {
				n++
			}
		}
		return models.PivotValue{Value: float64(n)}
	}

	num, ok := col.(*models.NumericColumn)
	if !ok {
		return models.PivotValue{Missing: true}
	}
	values := make([]float64, 0, len(rows))
	for _, r := range rows {
		if v, present := num.Float(r); present {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return models.PivotValue{Missing: true}
	}

	switch agg {
	case models.AggSum:
		return models.PivotValue{Value: sum(values).InexactFloat64()}
	case models.AggMean:
		return models.PivotValue{Value: mean(values).InexactFloat64()}
	case models.AggMin:
		return models.PivotValue{Value: minOf(values)}
	case models.AggMax:
		return models.PivotValue{Value: maxOf(values)}
	default:
		return models.PivotValue{Missing: true}
	}
}

// sum adds values in decimal so that binary rounding does not accumulate.
func sum(values []float64) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total
}

func mean(values []float64) decimal.Decimal {
	return sum(values).Div(decimal.NewFromInt(int64(len(values))))
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
