package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetlens-go/pkg/sheetlens"
	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/output"
)

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&whereFlags, "where", "w", nil, `Row filter: "Column=min:max" or "Column~keyword" (repeatable)`)
	cmd.Flags().StringSliceVar(&sectionSelect, "sections", nil, "Sections to keep")
	cmd.Flags().StringSliceVar(&columnSelect, "columns", nil, "Columns to keep: Label, Section/Label or #N")
}

func newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets [input]",
		Short: "List sheets with their data ranges and defined-name sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := sheetlens.Open(args[0])
			if err != nil {
				return err
			}
			defer wb.Close()

			info, err := wb.Info()
			if err != nil {
				return fmt.Errorf("inspection failed: %w", err)
			}
			return writeJSON(info)
		},
	}
}

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [input]",
		Short: "Show the interpreted header structure and the first rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(args[0])
			if err != nil {
				return err
			}
			defer session.Close()

			view, err := session.View()
			if err != nil {
				return err
			}
			return writeJSON(output.NewTableDocument(view, previewRows))
		},
	}
	cmd.Flags().IntVarP(&previewRows, "rows", "n", 20, "Number of rows to show (0 for all)")
	addViewFlags(cmd)
	return cmd
}

func newFilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter [input]",
		Short: "Print the rows matching every --where predicate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(args[0])
			if err != nil {
				return err
			}
			defer session.Close()

			view, err := session.View()
			if err != nil {
				return err
			}
			return writeJSON(output.NewTableDocument(view, 0))
		},
	}
	addViewFlags(cmd)
	return cmd
}

func newPivotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pivot [input]",
		Short: "Aggregate value columns grouped by row and column keys",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := pivotSpecFromFlags()
			if err != nil {
				return err
			}

			session, err := openSession(args[0])
			if err != nil {
				return err
			}
			defer session.Close()

			result, err := session.Pivot(spec)
			if err != nil {
				return err
			}

			switch outputFormat() {
			case ".csv":
				return writeTo(func(w io.Writer) error { return output.WritePivotCSV(w, result) })
			case ".xlsx":
				return writeTo(func(w io.Writer) error { return output.WritePivotXLSX(w, result, "") })
			default:
				return writeJSON(output.NewPivotDocument(result))
			}
		},
	}
	cmd.Flags().StringSliceVar(&pivotRows, "rows", nil, "Row key columns")
	cmd.Flags().StringSliceVar(&pivotCols, "cols", nil, "Column key columns")
	cmd.Flags().StringSliceVar(&pivotValues, "values", nil, "Value columns")
	cmd.Flags().StringVar(&pivotAgg, "agg", "sum", "Aggregator: sum, mean, count, min, max")
	addViewFlags(cmd)
	return cmd
}

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart [input]",
		Short: "Aggregate a category (and optional value) column for a chart",
		Long: `chart counts rows per category, or plots a numeric value column per row.
With -o ending in .xlsx, a workbook with a native chart is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := chartSpecFromFlags()
			if err != nil {
				return err
			}

			session, err := openSession(args[0])
			if err != nil {
				return err
			}
			defer session.Close()

			data, err := session.Chart(spec)
			if err != nil {
				return err
			}
			if outputFormat() == ".xlsx" {
				return writeTo(func(w io.Writer) error { return output.WriteChartXLSX(w, data) })
			}
			return writeJSON(data)
		},
	}
	cmd.Flags().StringVar(&chartCategory, "category", "", "Category column")
	cmd.Flags().StringVar(&chartValue, "value", "", "Numeric value column (default: count rows)")
	cmd.Flags().StringVar(&chartKind, "kind", "bar", "Chart kind: bar, line, pie, area, scatter")
	addViewFlags(cmd)
	return cmd
}

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary [input]",
		Short: "Write a text report with column statistics and the first rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(args[0])
			if err != nil {
				return err
			}
			defer session.Close()

			summary, err := session.Summary()
			if err != nil {
				return err
			}
			if summaryJSON {
				return writeJSON(summary)
			}
			view, err := session.View()
			if err != nil {
				return err
			}
			return writeTo(func(w io.Writer) error { return output.WriteReport(w, view, summary) })
		},
	}
	cmd.Flags().BoolVar(&summaryJSON, "json", false, "Write the summary as JSON")
	addViewFlags(cmd)
	return cmd
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [input]",
		Short: "Export the filtered view with flattened headers to CSV or XLSX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				return fmt.Errorf("export needs --output with a .csv or .xlsx extension")
			}
			format := outputFormat()
			if format != ".csv" && format != ".xlsx" {
				return fmt.Errorf("unsupported export format %q (must be .csv or .xlsx)", format)
			}

			session, err := openSession(args[0])
			if err != nil {
				return err
			}
			defer session.Close()

			view, err := session.View()
			if err != nil {
				return err
			}
			if format == ".csv" {
				return writeTo(func(w io.Writer) error { return output.WriteCSV(w, view) })
			}
			return writeTo(func(w io.Writer) error { return output.WriteXLSX(w, view, "") })
		},
	}
	addViewFlags(cmd)
	return cmd
}

// openSession loads the input with the persistent flags and applies the
// view flags.
func openSession(path string) (*sheetlens.Session, error) {
	opts, err := optionsFromFlags()
	if err != nil {
		return nil, err
	}

	logger := log.New(io.Discard, "", 0)
	if verbose {
		logger = log.New(os.Stderr, "sheetlens: ", log.LstdFlags)
	}

	session := sheetlens.NewSession(opts, logger)
	if err := session.LoadFile(path); err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}

	filters, err := parseWhereList(whereFlags)
	if err != nil {
		session.Close()
		return nil, err
	}
	if err := session.SetFilters(filters...); err != nil {
		session.Close()
		return nil, err
	}

	sel, err := selectionFromFlags(sectionSelect, columnSelect)
	if err != nil {
		session.Close()
		return nil, err
	}
	if err := session.SetSelection(sel); err != nil {
		session.Close()
		return nil, err
	}
	return session, nil
}

func optionsFromFlags() (sheetlens.Options, error) {
	opts := sheetlens.DefaultOptions()
	opts.Sheet = sheetName
	opts.HeaderRows = headerRows
	opts.SectionsFromNames = sectionsFromNames
	for _, s := range sectionFlags {
		b, err := sheetlens.ParseSectionBoundary(s)
		if err != nil {
			return opts, err
		}
		opts.Sections = append(opts.Sections, b)
	}
	return opts, nil
}

func outputFormat() string {
	return strings.ToLower(filepath.Ext(outputPath))
}

func writeJSON(v any) error {
	jsonData, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

func writeTo(render func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err := os.Stdout.Write(buf.Bytes())
	return err
}
