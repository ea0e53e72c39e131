// Package main provides the CLI entry point for sheetscrape.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetscrape-go/internal/config"
	"github.com/ukaji3/sheetscrape-go/internal/logging"
	"github.com/ukaji3/sheetscrape-go/pkg/sheetscrape"
	"github.com/ukaji3/sheetscrape-go/pkg/sheetscrape/models"
	"github.com/ukaji3/sheetscrape-go/pkg/sheetscrape/output"
	"github.com/ukaji3/sheetscrape-go/pkg/sheetscrape/parser"
)

type flags struct {
	outputPath      string
	pretty          bool
	plain           bool
	format          string
	sheets          []string
	cellRange       string
	neck            int
	neckSet         bool
	layoutPath      string
	parentSuffixes  []string
	continueOnError bool
	sheetsDir       string
	logLevel        string
	logFormat       string
	envFile         string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	rootCmd := &cobra.Command{
		Use:   "sheetscrape [input.xlsx|input.csv]",
		Short: "Extract dataset records from crop tracking sheets",
		Long: `sheetscrape reads a crop tracking sheet (a workbook or a CSV export) and
outputs one dataset record per crop row, grouped by parent file when the
sheet references more than one.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args[0])
		},
	}

	fl := rootCmd.Flags()
	fl.StringVarP(&f.outputPath, "output", "o", "", "Output file path (default: stdout)")
	fl.BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	fl.BoolVar(&f.plain, "plain", false, "Output plain record mappings keyed by sheet")
	fl.StringVar(&f.format, "format", "json", "Output format: json, yaml")
	fl.StringSliceVar(&f.sheets, "sheet", nil, "Sheet to parse (repeatable, default: all)")
	fl.StringVar(&f.cellRange, "range", "", "Cell range (A1:R40) or defined name to parse")
	fl.IntVar(&f.neck, "neck", parser.DefaultNeck, "Number of header rows")
	fl.StringVar(&f.layoutPath, "layout", "", "YAML file overriding header marker names")
	fl.StringSliceVar(&f.parentSuffixes, "parent-suffix", nil, "Accepted parent file suffix, e.g. .n5 (repeatable)")
	fl.BoolVar(&f.continueOnError, "continue-on-error", false, "Record sheet errors instead of failing")
	fl.StringVar(&f.sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	fl.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fl.StringVar(&f.logFormat, "log-format", "text", "Log format: text, json")
	fl.StringVar(&f.envFile, "env-file", "", "Environment file with SHEETSCRAPE_* defaults (default: .env if present)")

	return rootCmd
}

func run(cmd *cobra.Command, f *flags, inputPath string) error {
	var envFiles []string
	if f.envFile != "" {
		envFiles = append(envFiles, f.envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}
	applyConfig(cmd, f, cfg)

	logging.Setup(f.logLevel, f.logFormat)
	log := logging.WithFields("input", inputPath)

	opts, err := buildOptions(f)
	if err != nil {
		return err
	}
	opts.Logger = log

	log.Debug("extracting", "neck", opts.Layout.Neck, "sheets", opts.Sheets, "range", opts.Range)
	wb, err := sheetscrape.Extract(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	data, err := encode(f, wb)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if f.outputPath != "" {
		if err := os.WriteFile(f.outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if f.sheetsDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(data), "\n"))
	}

	if f.sheetsDir != "" {
		if err := writeSheetFiles(f, wb); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	log.Info("extraction complete", "sheets", len(wb.Sheets), "records", countRecords(wb))
	return nil
}

// applyConfig fills flags the user did not set from the environment config.
func applyConfig(cmd *cobra.Command, f *flags, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if !changed("log-level") {
		f.logLevel = cfg.LogLevel
	}
	if !changed("log-format") {
		f.logFormat = cfg.LogFormat
	}
	if !changed("format") {
		f.format = cfg.Format
	}
	if changed("neck") {
		f.neckSet = true
	} else if cfg.Neck > 0 {
		f.neck = cfg.Neck
		f.neckSet = true
	}
	if !changed("layout") {
		f.layoutPath = cfg.Layout
	}
	if !changed("parent-suffix") {
		f.parentSuffixes = cfg.ParentSuffixes
	}
	if !changed("continue-on-error") {
		f.continueOnError = cfg.ContinueOnError
	}
}

func buildOptions(f *flags) (sheetscrape.Options, error) {
	opts := sheetscrape.DefaultOptions()
	if f.layoutPath != "" {
		layout, err := sheetscrape.LoadLayout(f.layoutPath)
		if err != nil {
			return opts, err
		}
		opts.Layout = layout
	}
	// A layout file's neck holds unless the flag or environment sets one.
	if f.layoutPath == "" || f.neckSet {
		opts.Layout.Neck = f.neck
	}
	if len(f.parentSuffixes) > 0 {
		opts.Layout.ParentSuffixes = f.parentSuffixes
	}
	opts.Sheets = f.sheets
	opts.Range = f.cellRange
	opts.ContinueOnError = f.continueOnError
	return opts, nil
}

func encode(f *flags, v any) ([]byte, error) {
	if wb, ok := v.(*models.WorkbookData); ok && f.plain {
		v = output.WorkbookPlain(wb)
	} else if sheet, ok := v.(*models.SheetData); ok && f.plain {
		if sheet.Error != "" {
			v = map[string]any{"error": sheet.Error}
		} else {
			v = output.ResultPlain(sheet.Result)
		}
	}

	switch strings.ToLower(f.format) {
	case "json":
		return output.ToJSON(v, f.pretty)
	case "yaml":
		return output.ToYAML(v)
	default:
		return nil, fmt.Errorf("invalid format: %s (must be json or yaml)", f.format)
	}
}

func writeSheetFiles(f *flags, wb *models.WorkbookData) error {
	if err := os.MkdirAll(f.sheetsDir, 0755); err != nil {
		return err
	}

	ext := "." + strings.ToLower(f.format)
	for sheetName, sheet := range wb.Sheets {
		data, err := encode(f, &sheet)
		if err != nil {
			return err
		}

		filename := filepath.Join(f.sheetsDir, sheetFileName(sheetName)+ext)
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return err
		}
	}

	return nil
}

// sheetFileName replaces path separators in a sheet name.
func sheetFileName(name string) string {
	return strings.NewReplacer("/", "_", "\\", "_").Replace(name)
}

func countRecords(wb *models.WorkbookData) int {
	n := 0
	for _, sheet := range wb.Sheets {
		n += sheet.Result.Len()
	}
	return n
}
