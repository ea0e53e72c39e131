package parser

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultNeck is the number of header rows in a crop sheet.
const DefaultNeck = 3

// DefaultPresenceMarker flags a label as present in a label cell.
const DefaultPresenceMarker = "X"

// Layout names the header markers of a crop sheet and how its parent
// files are recognized.
type Layout struct {
	// Neck is the number of header rows.
	Neck int `yaml:"neck"`

	ParentAlias string `yaml:"parent_alias"`
	CropAlias   string `yaml:"crop_alias"`
	VoxelSize   string `yaml:"voxel_size"`
	ROISize     string `yaml:"roi_size"`
	ROIOrigin   string `yaml:"roi_origin"`
	Biotype     string `yaml:"biotype"`
	ParentFile  string `yaml:"parent_file"`

	// FirstLabel and LastLabel bound the label span, inclusive.
	FirstLabel string `yaml:"first_label"`
	LastLabel  string `yaml:"last_label"`

	// PresenceMarker is the cell text marking a label as present.
	PresenceMarker string `yaml:"presence_marker"`

	// ParentSuffixes restricts which parent file values count as source
	// files, e.g. [".n5"]. Empty accepts any non-blank value.
	ParentSuffixes []string `yaml:"parent_suffixes"`
}

// DefaultLayout returns the layout of the crop tracking sheet.
func DefaultLayout() Layout {
	return Layout{
		Neck:           DefaultNeck,
		ParentAlias:    "Cell/Tissue Short Name",
		CropAlias:      "Crop Short Name",
		VoxelSize:      "Voxel Size (nm)",
		ROISize:        "ROI Size (pixel)",
		ROIOrigin:      "ROI Coordinates",
		Biotype:        "Cell/Tissue Type",
		ParentFile:     "File Paths",
		FirstLabel:     "ECS",
		LastLabel:      "Microtubules in",
		PresenceMarker: DefaultPresenceMarker,
	}
}

// ParseLayout decodes a YAML layout. Keys absent from data keep their
// default values.
func ParseLayout(data []byte) (Layout, error) {
	layout := DefaultLayout()
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return Layout{}, fmt.Errorf("parse layout: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

// Validate checks that every required marker is named.
func (l Layout) Validate() error {
	if l.Neck < 1 {
		return fmt.Errorf("layout: neck must be positive, got %d", l.Neck)
	}
	required := []struct {
		key, val string
	}{
		{"crop_alias", l.CropAlias},
		{"voxel_size", l.VoxelSize},
		{"roi_size", l.ROISize},
		{"roi_origin", l.ROIOrigin},
		{"biotype", l.Biotype},
		{"parent_file", l.ParentFile},
		{"first_label", l.FirstLabel},
		{"last_label", l.LastLabel},
		{"presence_marker", l.PresenceMarker},
	}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			return fmt.Errorf("layout: %s must not be empty", r.key)
		}
	}
	return nil
}

// AcceptsParent reports whether value names a source file.
func (l Layout) AcceptsParent(value string) bool {
	if value == "" {
		return false
	}
	if len(l.ParentSuffixes) == 0 {
		return true
	}
	for _, suffix := range l.ParentSuffixes {
		if strings.HasSuffix(value, suffix) {
			return true
		}
	}
	return false
}
