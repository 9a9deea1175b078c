package sheetlens

import (
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/models"
	"github.com/ukaji3/sheetlens-go/pkg/sheetlens/query"
)

// Session holds the state of one interactive exploration: the open
// workbook, the interpreted table and the active filters and selection.
//
// Every method either succeeds and updates the state, or returns an error
// and leaves the previous state untouched. A Session is not safe for
// concurrent use.
type Session struct {
	// ID identifies the session in log output.
	ID string

	opts      Options
	logger    *log.Logger
	workbook  *Workbook
	sheet     string
	table     *models.Table
	filters   []models.FilterSpec
	selection models.Selection
	// filtered holds the rows that pass the filters, with every column.
	filtered *models.Table
	// view is filtered with the selection applied.
	view *models.Table
}

// NewSession creates an empty session. A nil logger discards log output.
func NewSession(opts Options, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Session{
		ID:     uuid.NewString(),
		opts:   opts,
		logger: logger,
	}
}

// LoadFile opens path and interprets the sheet named by Options.Sheet, or
// the first sheet.
func (s *Session) LoadFile(path string) error {
	wb, err := Open(path)
	if err != nil {
		s.logger.Printf("session %s: open %s: %v", s.ID, path, err)
		return err
	}
	return s.load(wb)
}

// Load reads a workbook from r and interprets the sheet named by
// Options.Sheet, or the first sheet. name is the file name; a ".csv"
// extension selects CSV parsing.
func (s *Session) Load(r io.Reader, name string) error {
	wb, err := OpenReader(r, name)
	if err != nil {
		s.logger.Printf("session %s: open %s: %v", s.ID, name, err)
		return err
	}
	return s.load(wb)
}

func (s *Session) load(wb *Workbook) error {
	sheet := s.opts.Sheet
	if sheet == "" {
		sheet = wb.FirstSheet()
	}
	table, err := wb.Interpret(sheet, s.opts)
	if err != nil {
		s.logger.Printf("session %s: interpret %s/%s: %v", s.ID, wb.Name(), sheet, err)
		if cerr := wb.Close(); cerr != nil {
			s.logger.Printf("session %s: close %s: %v", s.ID, wb.Name(), cerr)
		}
		return err
	}

	if s.workbook != nil {
		if cerr := s.workbook.Close(); cerr != nil {
			s.logger.Printf("session %s: close %s: %v", s.ID, s.workbook.Name(), cerr)
		}
	}
	s.workbook = wb
	s.reset(sheet, table)
	s.logger.Printf("session %s: loaded %s/%s (%d rows, %d columns)",
		s.ID, wb.Name(), sheet, table.Rows(), table.NumColumns())
	return nil
}

// SelectSheet switches to another sheet of the open workbook. Filters and
// the selection are cleared.
func (s *Session) SelectSheet(name string) error {
	if s.workbook == nil {
		return ErrNoTable
	}
	table, err := s.workbook.Interpret(name, s.opts)
	if err != nil {
		s.logger.Printf("session %s: select sheet %s: %v", s.ID, name, err)
		return err
	}
	s.reset(name, table)
	s.logger.Printf("session %s: switched to sheet %s", s.ID, name)
	return nil
}

// SetOptions re-interprets the current sheet with new options. Filters and
// the selection are cleared.
func (s *Session) SetOptions(opts Options) error {
	if s.workbook == nil {
		s.opts = opts
		return nil
	}
	table, err := s.workbook.Interpret(s.sheet, opts)
	if err != nil {
		s.logger.Printf("session %s: reinterpret %s: %v", s.ID, s.sheet, err)
		return err
	}
	s.opts = opts
	s.reset(s.sheet, table)
	return nil
}

func (s *Session) reset(sheet string, table *models.Table) {
	s.sheet = sheet
	s.table = table
	s.filters = nil
	s.selection = models.Selection{}
	s.filtered = table
	s.view = table
}

// SetFilters replaces the active filters. Filters are AND-combined.
func (s *Session) SetFilters(filters ...models.FilterSpec) error {
	if s.table == nil {
		return ErrNoTable
	}
	filtered, err := query.ApplyFilters(s.table, filters...)
	if err != nil {
		s.logger.Printf("session %s: filter rejected: %v", s.ID, err)
		return err
	}
	view, err := query.SelectColumns(filtered, s.selection)
	if err != nil {
		s.logger.Printf("session %s: filter rejected: %v", s.ID, err)
		return err
	}
	s.filters = append([]models.FilterSpec(nil), filters...)
	s.filtered = filtered
	s.view = view
	return nil
}

// SetSelection replaces the active section and column selection.
func (s *Session) SetSelection(sel models.Selection) error {
	if s.table == nil {
		return ErrNoTable
	}
	view, err := query.SelectColumns(s.filtered, sel)
	if err != nil {
		s.logger.Printf("session %s: selection rejected: %v", s.ID, err)
		return err
	}
	s.selection = sel
	s.view = view
	return nil
}

// Sheet returns the current sheet name.
func (s *Session) Sheet() string { return s.sheet }

// Workbook returns the open workbook, or nil.
func (s *Session) Workbook() *Workbook { return s.workbook }

// Table returns the interpreted table of the current sheet, or nil.
func (s *Session) Table() *models.Table { return s.table }

// Filters returns the active filters.
func (s *Session) Filters() []models.FilterSpec {
	return append([]models.FilterSpec(nil), s.filters...)
}

// View returns the table with the filters and the selection applied.
func (s *Session) View() (*models.Table, error) {
	if s.view == nil {
		return nil, ErrNoTable
	}
	return s.view, nil
}

// Pivot builds a pivot over the filtered rows. Columns outside the
// selection may be used.
func (s *Session) Pivot(spec models.PivotSpec) (*models.PivotResult, error) {
	if s.filtered == nil {
		return nil, ErrNoTable
	}
	result, err := query.BuildPivot(s.filtered, spec)
	if err != nil {
		s.logger.Printf("session %s: pivot rejected: %v", s.ID, err)
		return nil, err
	}
	return result, nil
}

// Chart aggregates the filtered rows for a chart.
func (s *Session) Chart(spec models.ChartSpec) (*models.ChartData, error) {
	if s.filtered == nil {
		return nil, ErrNoTable
	}
	data, err := query.AggregateForChart(s.filtered, spec)
	if err != nil {
		s.logger.Printf("session %s: chart rejected: %v", s.ID, err)
		return nil, err
	}
	return data, nil
}

// Summary describes the current view.
func (s *Session) Summary() (models.Summary, error) {
	if s.view == nil {
		return models.Summary{}, ErrNoTable
	}
	return query.Summarize(s.view), nil
}

// Close releases the open workbook and clears the session.
func (s *Session) Close() error {
	var err error
	if s.workbook != nil {
		err = s.workbook.Close()
	}
	s.workbook = nil
	s.sheet = ""
	s.table = nil
	s.filters = nil
	s.selection = models.Selection{}
	s.filtered = nil
	s.view = nil
	return err
}
