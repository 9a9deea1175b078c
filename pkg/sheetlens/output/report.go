package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
)

// ReportRows is the number of data rows listed in a summary report.
const ReportRows = 30

// WriteReport writes a plain-text summary of t: its dimensions, statistics
// for every numeric column and the first ReportRows rows as
// "column: value" pairs.
func WriteReport(w io.Writer, t *models.Table, s models.Summary) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Summary of %s\n\n", s.SheetName)
	fmt.Fprintf(bw, "Rows: %d\n", s.Rows)
	fmt.Fprintf(bw, "Columns: %d\n", s.Columns)
	fmt.Fprintf(bw, "Sections: %d\n", s.Sections)

	if len(s.Numeric) > 0 {
		fmt.Fprintf(bw, "\nNumeric columns:\n")
		for _, st := range s.Numeric {
			if st.Count == 0 {
				fmt.Fprintf(bw, "  %s: no values\n", st.Column)
				continue
			}
			fmt.Fprintf(bw, "  %s: count=%d min=%s max=%s mean=%s\n",
				st.Column, st.Count, formatFloat(*st.Min), formatFloat(*st.Max), formatFloat(*st.Mean))
		}
	}

	n := t.Rows()
	if n > ReportRows {
		n = ReportRows
	}
	if n > 0 {
		fmt.Fprintf(bw, "\nFirst %d rows:\n", n)
		headers := FlatHeaders(t)
		for i := 0; i < n; i++ {
			pairs := make([]string, 0, len(headers))
			for j, cell := range t.Row(i) {
				pairs = append(pairs, headers[j]+": "+cell.String())
			}
			fmt.Fprintln(bw, strings.Join(pairs, ", "))
		}
	}

	return bw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
