package parser

import "fmt"

// Span is a half-open run of columns [Start, End).
type Span struct {
	Start int
	End   int
}

// Width returns the number of columns in the span.
func (s Span) Width() int {
	return s.End - s.Start
}

// find scans header row-major and returns the position of the first cell
// equal to name.
func find(header Header, name string) (row, col int, ok bool) {
	for r, cells := range header {
		for c, cell := range cells {
			if cell == name {
				return r, c, true
			}
		}
	}
	return -1, -1, false
}

// LocateColumn returns the column of the first header cell equal to name.
// Fields move between sheet revisions, so they are found by label rather
// than position.
func LocateColumn(header Header, name string) (int, error) {
	_, col, ok := find(header, name)
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return col, nil
}

// LocateSpan returns the columns from the start marker through the end
// marker, inclusive.
func LocateSpan(header Header, startName, endName string) (Span, error) {
	_, start, ok := find(header, startName)
	if !ok {
		return Span{}, fmt.Errorf("%w: span start marker %q not found", ErrInvalidLayout, startName)
	}
	_, end, ok := find(header, endName)
	if !ok {
		return Span{}, fmt.Errorf("%w: span end marker %q not found", ErrInvalidLayout, endName)
	}
	if end < start {
		return Span{}, fmt.Errorf("%w: span end %q (column %d) precedes start %q (column %d)",
			ErrInvalidLayout, endName, end, startName, start)
	}
	return Span{Start: start, End: end + 1}, nil
}
