package sheetscrape

import (
	"fmt"
	"path/filepath"

	"github.com/ukaji3/sheetscrape-go/pkg/sheetscrape/models"
	"github.com/ukaji3/sheetscrape-go/pkg/sheetscrape/parser"
)

// Extract parses the crop sheets of a workbook or CSV export.
func Extract(path string, opts Options) (*models.WorkbookData, error) {
	src, err := OpenSource(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return ExtractSource(src, filepath.Base(path), opts)
}

// ExtractSource parses the selected sheets of src.
func ExtractSource(src Source, bookName string, opts Options) (*models.WorkbookData, error) {
	if err := opts.Layout.Validate(); err != nil {
		return nil, err
	}
	log := opts.logger().With("book", bookName)

	available := make(map[string]bool)
	for _, name := range src.SheetList() {
		available[name] = true
	}
	for _, name := range opts.Sheets {
		if !available[name] {
			return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, name)
		}
	}

	sheets := make(map[string]models.SheetData)
	for _, sheetName := range src.SheetList() {
		if !opts.ShouldIncludeSheet(sheetName) {
			continue
		}

		data, err := extractSheet(src, sheetName, opts)
		if err != nil {
			if !opts.ContinueOnError {
				return nil, err
			}
			log.Warn("skipping sheet", "sheet", sheetName, "error", err)
			data.Error = err.Error()
		} else {
			log.Debug("parsed sheet",
				"sheet", sheetName,
				"rows", data.Rows,
				"cols", data.Cols,
				"records", data.Result.Len(),
				"grouped", data.Result.Grouped(),
			)
		}
		sheets[sheetName] = data
	}

	return &models.WorkbookData{
		BookName: bookName,
		Sheets:   sheets,
	}, nil
}

// extractSheet reads, crops and parses a single sheet.
func extractSheet(src Source, sheetName string, opts Options) (models.SheetData, error) {
	var data models.SheetData

	rows, err := src.Rows(sheetName)
	if err != nil {
		return data, NewExtractionError(sheetName, "read", err)
	}
	grid := parser.Normalize(rows)

	if opts.Range != "" {
		area, err := resolveArea(src, opts.Range, sheetName)
		if err != nil {
			return data, NewExtractionError(sheetName, "range", err)
		}
		grid = parser.Crop(grid, area)
		data.Area = &area
	}
	data.Rows, data.Cols = grid.Dims()

	result, err := parser.Parse(grid, opts.Layout)
	if err != nil {
		return data, NewExtractionError(sheetName, "parse", err)
	}
	data.Result = result
	return data, nil
}

// resolveArea interprets ref as an A1 range, then as a defined name.
func resolveArea(src Source, ref, sheetName string) (models.Area, error) {
	area, err := parser.ParseArea(ref)
	if err == nil {
		return area, nil
	}
	if r, ok := src.(areaResolver); ok {
		if area, ok := r.DefinedArea(ref, sheetName); ok {
			return area, nil
		}
	}
	return models.Area{}, err
}

// ExtractGrid parses a single in-memory grid with layout. The rows are
// normalized first, so ragged input is accepted.
func ExtractGrid(rows [][]string, layout parser.Layout) (models.Result, error) {
	return parser.Parse(parser.Normalize(rows), layout)
}
