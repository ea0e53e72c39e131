package parser

import (
	"fmt"

	"github.com/ukaji3/sheetscrape-go/pkg/sheetscrape/models"
)

// Parse splits grid at layout.Neck and partitions its body.
func Parse(grid Grid, layout Layout) (models.Result, error) {
	header, body, err := Split(grid, layout.Neck)
	if err != nil {
		return models.Result{}, err
	}
	return Partition(header, body, layout)
}

// Partition assembles the body into datasets. A body referencing a single
// parent file yields a flat list; a body referencing several yields one
// group per parent, in order of first appearance. Each group is built by
// partitioning the rows of that parent alone, which always reaches the
// single-parent case.
func Partition(header Header, body Body, layout Layout) (models.Result, error) {
	parents, err := Parents(header, body, layout)
	if err != nil {
		return models.Result{}, err
	}

	switch len(parents) {
	case 0:
		return models.Result{}, fmt.Errorf("%w: no parent file in column %q", ErrMissingField, layout.ParentFile)
	case 1:
		records, err := Assemble(header, body, layout)
		if err != nil {
			return models.Result{}, err
		}
		return models.Result{Records: records}, nil
	}

	groups := make([]models.Group, 0, len(parents))
	for _, parent := range parents {
		sub, err := Partition(header, selectParent(header, body, layout, parent), layout)
		if err != nil {
			return models.Result{}, fmt.Errorf("parent %q: %w", parent, err)
		}
		groups = append(groups, models.Group{Parent: parent, Records: sub.Records})
	}
	return models.Result{Groups: groups}, nil
}

// Parents returns the distinct parent files referenced by body, in order
// of first appearance, keeping only values the layout accepts.
func Parents(header Header, body Body, layout Layout) ([]string, error) {
	values, err := ExtractColumn(header, body, layout.ParentFile)
	if err != nil {
		return nil, fmt.Errorf("%w: grouping key: %w", ErrMissingField, err)
	}

	var parents []string
	seen := make(map[string]bool)
	for _, v := range values {
		v = cleanFilename(v)
		if seen[v] || !layout.AcceptsParent(v) {
			continue
		}
		seen[v] = true
		parents = append(parents, v)
	}
	return parents, nil
}

// selectParent returns the body rows whose parent file is parent.
func selectParent(header Header, body Body, layout Layout, parent string) Body {
	col, err := LocateColumn(header, layout.ParentFile)
	if err != nil {
		return nil
	}
	var rows Body
	for _, row := range body {
		if cleanFilename(row.Cells[col]) == parent {
			rows = append(rows, row)
		}
	}
	return rows
}
