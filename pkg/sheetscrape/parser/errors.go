package parser

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrInvalidLayout indicates a structural problem with the grid: ragged
	// rows, a neck taller than the grid, or missing/inverted span markers.
	ErrInvalidLayout = errors.New("invalid sheet layout")

	// ErrNotFound indicates a field marker is absent from the header.
	ErrNotFound = errors.New("field not found")

	// ErrTypeConversion indicates a numeric field holds non-numeric text.
	ErrTypeConversion = errors.New("type conversion failed")

	// ErrMissingField indicates a record cannot be assembled because a
	// required field or the grouping key is absent.
	ErrMissingField = errors.New("missing field")
)

// CellError reports a cell whose value could not be coerced.
type CellError struct {
	Field string
	Row   int // 1-based grid row
	Col   int // 0-based grid column
	Value string
	Err   error
}

func (e *CellError) Error() string {
	ref, err := excelize.CoordinatesToCellName(e.Col+1, e.Row)
	if err != nil {
		ref = fmt.Sprintf("R%dC%d", e.Row, e.Col+1)
	}
	return fmt.Sprintf("cell %s (%s): cannot convert %q: %v", ref, e.Field, e.Value, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// FieldError reports a record that failed to assemble.
type FieldError struct {
	Field string
	Row   int // 1-based grid row
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("row %d: field %q: %v", e.Row, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
