package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetscrape-go/pkg/sheetscrape/models"
)

// tripleWidth is the number of columns in an x/y/z field.
const tripleWidth = 3

// ExtractColumn returns the body's values in the column labelled name.
func ExtractColumn(header Header, body Body, name string) ([]string, error) {
	col, err := LocateColumn(header, name)
	if err != nil {
		return nil, err
	}

	values := make([]string, len(body))
	for i, row := range body {
		values[i] = row.Cells[col]
	}
	return values, nil
}

// ExtractTriple decodes the three columns starting at the column labelled
// name into one Triple per body row, keyed by the leaf header row. Empty
// cells become models.MissingInt. A single non-numeric cell fails the
// whole call.
func ExtractTriple(header Header, body Body, name string) ([]models.Triple, error) {
	col, err := LocateColumn(header, name)
	if err != nil {
		return nil, err
	}

	leaf := header.Leaf()
	if col+tripleWidth > len(leaf) {
		return nil, fmt.Errorf("%w: %q at column %d needs %d columns", ErrInvalidLayout, name, col, tripleWidth)
	}
	keys := make([]string, tripleWidth)
	for k := range keys {
		keys[k] = strings.TrimSpace(leaf[col+k])
	}
	if err := checkKeys(name, keys); err != nil {
		return nil, err
	}

	triples := make([]models.Triple, len(body))
	for i, row := range body {
		triple := make(models.Triple, tripleWidth)
		for k, key := range keys {
			val, err := parseInt(row.Cells[col+k])
			if err != nil {
				return nil, &CellError{
					Field: name,
					Row:   row.Num,
					Col:   col + k,
					Value: row.Cells[col+k],
					Err:   fmt.Errorf("%w: %v", ErrTypeConversion, err),
				}
			}
			triple[key] = val
		}
		triples[i] = triple
	}
	return triples, nil
}

// checkKeys ensures the leaf labels of a triple are usable as map keys.
func checkKeys(name string, keys []string) error {
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if key == "" {
			return fmt.Errorf("%w: %q has an unlabelled axis", ErrInvalidLayout, name)
		}
		if seen[key] {
			return fmt.Errorf("%w: %q repeats axis %q", ErrInvalidLayout, name, key)
		}
		seen[key] = true
	}
	return nil
}

// parseInt coerces cell text to an integer. Blank cells map to
// models.MissingInt; integral decimals such as "4.0" are accepted.
func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.MissingInt, nil
	}
	i, err := strconv.Atoi(s)
	if err == nil {
		return i, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	// float64(math.MaxInt) rounds up to a power of two, so the upper bound is exclusive.
	if f < math.MinInt || f >= math.MaxInt {
		return 0, fmt.Errorf("%q is out of integer range", s)
	}
	return int(f), nil
}

// ExtractLabels decodes the label span bounded by the first and last
// marker into one sparse Labels value per body row. A label is present
// when its cell holds marker.
func ExtractLabels(header Header, body Body, first, last, marker string) ([]models.Labels, error) {
	span, err := LocateSpan(header, first, last)
	if err != nil {
		return nil, err
	}

	names := labelNames(header, first, span)
	labels := make([]models.Labels, len(body))
	for i, row := range body {
		l := models.Labels{Indices: []int{}, Names: []string{}}
		for off, cell := range row.Cells[span.Start:span.End] {
			if strings.TrimSpace(cell) != marker {
				continue
			}
			l.Indices = append(l.Indices, off)
			l.Names = append(l.Names, names[off])
		}
		labels[i] = l
	}
	return labels, nil
}

// labelNames returns the name of each column of span. Names come from the
// leaf header row, falling back to the row holding the first marker when a
// leaf cell is blank.
func labelNames(header Header, first string, span Span) []string {
	markerRow, _, _ := find(header, first)
	leaf := header.Leaf()

	names := make([]string, span.Width())
	for off := range names {
		col := span.Start + off
		name := strings.TrimSpace(leaf[col])
		if name == "" && markerRow >= 0 {
			name = strings.TrimSpace(header[markerRow][col])
		}
		names[off] = name
	}
	return names
}
