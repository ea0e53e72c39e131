// Package parser splits a crop sheet grid into header and body and decodes
// the body rows into dataset records.
package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetscrape-go/pkg/sheetscrape/models"
	"github.com/xuri/excelize/v2"
)

// Grid is a rectangular block of cell text, row-major.
type Grid [][]string

// Header is the leading block of a grid holding field labels.
type Header [][]string

// Leaf returns the last header row, which names the sub-columns of
// multi-column fields.
func (h Header) Leaf() []string {
	if len(h) == 0 {
		return nil
	}
	return h[len(h)-1]
}

// Row is a body row with its 1-based position in the grid.
type Row struct {
	Num   int
	Cells []string
}

// Body is the block of data rows following the header.
type Body []Row

// Dims returns the row and column count of the grid.
func (g Grid) Dims() (rows, cols int) {
	if len(g) == 0 {
		return 0, 0
	}
	return len(g), len(g[0])
}

// Rectangular reports whether every row has the same width.
func (g Grid) Rectangular() bool {
	for _, row := range g {
		if len(row) != len(g[0]) {
			return false
		}
	}
	return true
}

// Split separates the first neck rows of grid (the header) from the rest
// (the body).
func Split(grid Grid, neck int) (Header, Body, error) {
	if neck < 1 || neck > len(grid) {
		return nil, nil, fmt.Errorf("%w: neck %d with %d rows", ErrInvalidLayout, neck, len(grid))
	}
	if !grid.Rectangular() {
		return nil, nil, fmt.Errorf("%w: grid is not rectangular", ErrInvalidLayout)
	}

	header := Header(grid[:neck])
	body := make(Body, 0, len(grid)-neck)
	for i := neck; i < len(grid); i++ {
		body = append(body, Row{Num: i + 1, Cells: grid[i]})
	}
	return header, body, nil
}

// Normalize pads raw rows to a common width and drops trailing rows and
// columns that hold no data. Spreadsheet readers omit trailing empty cells,
// so their output is usually ragged.
func Normalize(rows [][]string) Grid {
	maxRow, maxCol := findDataExtent(rows)
	if maxRow < 0 {
		return Grid{}
	}

	grid := make(Grid, maxRow+1)
	for r := range grid {
		row := make([]string, maxCol+1)
		copy(row, rows[r])
		grid[r] = row
	}
	return grid
}

// findDataExtent finds the last row and column holding a non-blank cell.
func findDataExtent(rows [][]string) (maxRow, maxCol int) {
	maxRow, maxCol = -1, -1
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}
	return
}

// Crop restricts grid to area. Bounds beyond the grid are padded with
// empty cells so the result stays rectangular.
func Crop(grid Grid, area models.Area) Grid {
	height := area.R2 - area.R1 + 1
	width := area.C2 - area.C1 + 1
	if height <= 0 || width <= 0 {
		return Grid{}
	}

	out := make(Grid, height)
	for r := range out {
		row := make([]string, width)
		src := area.R1 - 1 + r
		if src >= 0 && src < len(grid) {
			for c := range row {
				col := area.C1 - 1 + c
				if col >= 0 && col < len(grid[src]) {
					row[c] = grid[src][col]
				}
			}
		}
		out[r] = row
	}
	return out
}

// ParseArea parses an A1-style range such as "A1:Z40" or "$A$1:$Z$40".
func ParseArea(rangeStr string) (models.Area, error) {
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return models.Area{}, fmt.Errorf("invalid range %q", rangeStr)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Area{}, fmt.Errorf("invalid range %q: %w", rangeStr, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.Area{}, fmt.Errorf("invalid range %q: %w", rangeStr, err)
	}
	if endRow < startRow || endCol < startCol {
		return models.Area{}, fmt.Errorf("invalid range %q: end precedes start", rangeStr)
	}

	return models.Area{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, nil
}

// ParseAreaReference parses a sheet-qualified reference such as
// 'Crops'!$A$1:$Z$40, as stored in workbook defined names.
func ParseAreaReference(ref string) (string, models.Area, error) {
	ref = strings.TrimSpace(ref)
	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		area, err := ParseArea(ref)
		return "", area, err
	}

	sheet := strings.Trim(ref[:idx], "'")
	area, err := ParseArea(ref[idx+1:])
	return sheet, area, err
}
