// Package main provides the CLI entry point for sheetlens.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	outputPath        string
	pretty            bool
	verbose           bool
	sheetName         string
	headerRows        int
	sectionFlags      []string
	sectionsFromNames bool
	whereFlags        []string
	sectionSelect     []string
	columnSelect      []string
	previewRows       int
	pivotRows         []string
	pivotCols         []string
	pivotValues       []string
	pivotAgg          string
	chartCategory     string
	chartValue        string
	chartKind         string
	summaryJSON       bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetlens",
		Short: "Explore spreadsheets with multi-row headers",
		Long: `sheetlens interprets spreadsheets whose headers span several rows into
sections of typed columns, then filters, pivots and charts them.`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	pf.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log session activity to stderr")
	pf.StringVar(&sheetName, "sheet", "", "Sheet to read (default: first sheet)")
	pf.IntVar(&headerRows, "header-rows", 2, "Number of header rows (1-3)")
	pf.StringArrayVar(&sectionFlags, "section", nil, "Explicit section boundary, e.g. Orders=A:C (repeatable)")
	pf.BoolVar(&sectionsFromNames, "sections-from-names", false, "Derive sections from workbook defined names")

	rootCmd.AddCommand(
		newSheetsCmd(),
		newPreviewCmd(),
		newFilterCmd(),
		newPivotCmd(),
		newChartCmd(),
		newSummaryCmd(),
		newExportCmd(),
	)
	return rootCmd
}
