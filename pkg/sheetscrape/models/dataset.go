// Package models defines data structures for crop sheet extraction.
package models

// MissingInt marks an empty cell inside an integer triple.
// Empty cells are not errors: a crop may leave an axis blank.
const MissingInt = -1

// Triple maps the three leaf header names of a composite field (usually
// "x", "y", "z") to their integer values.
type Triple map[string]int

// Labels is the sparse encoding of a row of label presence flags.
// Indices are offsets into the label span and Names holds the header
// name at each offset, in the same order.
type Labels struct {
	Indices []int    `json:"indices" yaml:"indices"`
	Names   []string `json:"names" yaml:"names"`
}

// Len returns the number of labels marked present.
func (l Labels) Len() int {
	return len(l.Indices)
}

// Has reports whether the named label is present.
func (l Labels) Has(name string) bool {
	for _, n := range l.Names {
		if n == name {
			return true
		}
	}
	return false
}

// Dataset is a (potentially cropped) FIB-SEM dataset described by one body
// row of the sheet.
type Dataset struct {
	// Biotype is the cell or tissue type.
	Biotype string `json:"biotype" yaml:"biotype"`
	// Alias is the crop short name.
	Alias string `json:"alias" yaml:"alias"`
	// Dimensions is the ROI size in voxels.
	Dimensions Triple `json:"dimensions" yaml:"dimensions"`
	// Offset is the ROI origin in voxels.
	Offset Triple `json:"offset" yaml:"offset"`
	// Resolution is the voxel size in nm.
	Resolution Triple `json:"resolution" yaml:"resolution"`
	// Labels lists the annotated label classes of the crop.
	Labels Labels `json:"labels" yaml:"labels"`
	// Parent is the path of the source volume the crop was taken from.
	Parent string `json:"parent" yaml:"parent"`
	// ParentAlias is the short name of the source volume (empty if the sheet has no such column).
	ParentAlias string `json:"parent_alias,omitempty" yaml:"parent_alias,omitempty"`
}
