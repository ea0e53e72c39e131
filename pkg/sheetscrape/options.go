// Package sheetscrape extracts dataset records from crop tracking sheets.
package sheetscrape

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ukaji3/sheetscrape-go/pkg/sheetscrape/parser"
)

// Options configures extraction behavior.
type Options struct {
	// Sheets restricts extraction to the named sheets. Empty means all.
	Sheets []string
	// Range restricts each sheet to a cell range ("A1:R40") or the range
	// of a workbook defined name. Empty means the whole sheet.
	Range string
	// Layout names the header markers.
	Layout parser.Layout
	// ContinueOnError records a failing sheet's error in its SheetData
	// instead of aborting the extraction.
	ContinueOnError bool
	// Logger receives progress messages. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Layout: parser.DefaultLayout(),
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// ShouldIncludeSheet returns whether the named sheet is selected.
func (o Options) ShouldIncludeSheet(name string) bool {
	if len(o.Sheets) == 0 {
		return true
	}
	for _, s := range o.Sheets {
		if s == name {
			return true
		}
	}
	return false
}

// LoadLayout reads a YAML layout file.
func LoadLayout(path string) (parser.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return parser.Layout{}, fmt.Errorf("read layout: %w", err)
	}
	return parser.ParseLayout(data)
}
