package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/sheetscrape-go/pkg/sheetscrape/models"
)

// Assemble builds one dataset per body row, in row order. The first row
// that cannot be assembled fails the call with a *FieldError.
func Assemble(header Header, body Body, layout Layout) ([]models.Dataset, error) {
	datasets := make([]models.Dataset, 0, len(body))
	for _, row := range body {
		ds, err := assembleRow(header, row, layout)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, ds)
	}
	return datasets, nil
}

// assembleRow extracts every field of a single row.
func assembleRow(header Header, row Row, layout Layout) (models.Dataset, error) {
	one := Body{row}
	var ds models.Dataset

	text := func(name string, dst *string) error {
		vals, err := ExtractColumn(header, one, name)
		if err != nil {
			return fieldErr(name, row, err)
		}
		*dst = vals[0]
		return nil
	}
	triple := func(name string, dst *models.Triple) error {
		vals, err := ExtractTriple(header, one, name)
		if err != nil {
			return fieldErr(name, row, err)
		}
		*dst = vals[0]
		return nil
	}

	if err := text(layout.Biotype, &ds.Biotype); err != nil {
		return ds, err
	}
	if err := text(layout.CropAlias, &ds.Alias); err != nil {
		return ds, err
	}
	if err := triple(layout.ROISize, &ds.Dimensions); err != nil {
		return ds, err
	}
	if err := triple(layout.ROIOrigin, &ds.Offset); err != nil {
		return ds, err
	}
	if err := triple(layout.VoxelSize, &ds.Resolution); err != nil {
		return ds, err
	}

	labels, err := ExtractLabels(header, one, layout.FirstLabel, layout.LastLabel, layout.PresenceMarker)
	if err != nil {
		return ds, fieldErr("labels", row, err)
	}
	ds.Labels = labels[0]

	if err := text(layout.ParentFile, &ds.Parent); err != nil {
		return ds, err
	}
	ds.Parent = cleanFilename(ds.Parent)

	// The parent alias is informational; sheets without it still parse.
	if layout.ParentAlias != "" {
		if err := text(layout.ParentAlias, &ds.ParentAlias); err != nil && !errors.Is(err, ErrNotFound) {
			return ds, err
		}
	}

	return ds, nil
}

// fieldErr wraps an extraction failure with the row and field. An absent
// marker becomes ErrMissingField; other errors keep their kind.
func fieldErr(field string, row Row, err error) error {
	if errors.Is(err, ErrNotFound) {
		err = fmt.Errorf("%w: %w", ErrMissingField, err)
	}
	return &FieldError{Field: field, Row: row.Num, Err: err}
}

func cleanFilename(s string) string {
	return strings.TrimSpace(s)
}
