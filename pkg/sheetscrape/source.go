package sheetscrape

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/sheetscrape-go/pkg/sheetscrape/models"
	"github.com/ukaji3/sheetscrape-go/pkg/sheetscrape/parser"
	"github.com/xuri/excelize/v2"
)

// Source supplies the raw cell text of named sheets. Rows may be ragged;
// extraction normalizes them.
type Source interface {
	SheetList() []string
	Rows(sheet string) ([][]string, error)
	Close() error
}

// areaResolver is implemented by sources that carry defined names.
type areaResolver interface {
	DefinedArea(name, sheet string) (models.Area, bool)
}

// OpenSource opens a workbook (.xlsx, .xlsm) or a CSV/TSV sheet export.
func OpenSource(path string) (Source, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, err
		}
		return NewWorkbookSource(f), nil
	case ".csv":
		return openCSV(path, ',')
	case ".tsv":
		return openCSV(path, '\t')
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// WorkbookSource reads sheets from an excelize workbook.
type WorkbookSource struct {
	f *excelize.File
}

// NewWorkbookSource wraps an open workbook. Closing the source closes f.
func NewWorkbookSource(f *excelize.File) *WorkbookSource {
	return &WorkbookSource{f: f}
}

func (s *WorkbookSource) SheetList() []string {
	return s.f.GetSheetList()
}

// Rows returns the raw value of every cell in the sheet. Number formats
// are not applied, so "#,##0" cells read as "1200" rather than "1,200".
func (s *WorkbookSource) Rows(sheet string) ([][]string, error) {
	return s.f.GetRows(sheet, excelize.Options{RawCellValue: true})
}

func (s *WorkbookSource) Close() error {
	return s.f.Close()
}

// DefinedArea resolves a defined name scoped to sheet or to the workbook.
func (s *WorkbookSource) DefinedArea(name, sheet string) (models.Area, bool) {
	for _, dn := range s.f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, name) {
			continue
		}
		if dn.Scope != "" && dn.Scope != "Workbook" && dn.Scope != sheet {
			continue
		}
		refSheet, area, err := parser.ParseAreaReference(dn.RefersTo)
		if err != nil || (refSheet != "" && refSheet != sheet) {
			continue
		}
		return area, true
	}
	return models.Area{}, false
}

// MemorySource serves grids already held in memory, such as those fetched
// from an online spreadsheet service.
type MemorySource struct {
	names  []string
	sheets map[string][][]string
}

// NewMemorySource creates an empty MemorySource.
func NewMemorySource() *MemorySource {
	return &MemorySource{sheets: make(map[string][][]string)}
}

// Add registers a sheet, replacing any sheet of the same name.
func (s *MemorySource) Add(name string, rows [][]string) *MemorySource {
	if _, ok := s.sheets[name]; !ok {
		s.names = append(s.names, name)
	}
	s.sheets[name] = rows
	return s
}

func (s *MemorySource) SheetList() []string {
	return append([]string(nil), s.names...)
}

func (s *MemorySource) Rows(sheet string) ([][]string, error) {
	rows, ok := s.sheets[sheet]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}
	return rows, nil
}

func (s *MemorySource) Close() error {
	return nil
}

// openCSV loads a single-sheet export. The sheet is named after the file.
func openCSV(path string, comma rune) (Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return NewMemorySource().Add(name, rows), nil
}
