package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	data := []byte(`
neck: 4
parent_file: Parent File
parent_suffixes: [".n5", ".zarr"]
`)

	layout, err := ParseLayout(data)
	require.NoError(t, err)
	assert.Equal(t, 4, layout.Neck)
	assert.Equal(t, "Parent File", layout.ParentFile)
	assert.Equal(t, []string{".n5", ".zarr"}, layout.ParentSuffixes)
	assert.Equal(t, "Crop Short Name", layout.CropAlias)
	assert.Equal(t, DefaultPresenceMarker, layout.PresenceMarker)
}

func TestParseLayout_Invalid(t *testing.T) {
	_, err := ParseLayout([]byte("neck: 0\n"))
	assert.Error(t, err)

	_, err = ParseLayout([]byte("crop_alias: ''\n"))
	assert.Error(t, err)

	_, err = ParseLayout([]byte("neck: [1\n"))
	assert.Error(t, err)
}

func TestValidate_ReportsFirstEmptyMarker(t *testing.T) {
	layout := DefaultLayout()
	layout.Biotype = ""
	layout.ROISize = " "
	layout.LastLabel = ""

	for i := 0; i < 20; i++ {
		err := layout.Validate()
		require.Error(t, err)
		assert.Equal(t, "layout: roi_size must not be empty", err.Error())
	}
}

func TestAcceptsParent(t *testing.T) {
	layout := DefaultLayout()
	assert.True(t, layout.AcceptsParent("anything"))
	assert.False(t, layout.AcceptsParent(""))

	layout.ParentSuffixes = []string{".n5"}
	assert.True(t, layout.AcceptsParent("/nrs/a.n5"))
	assert.False(t, layout.AcceptsParent("/nrs/a.zarr"))
}
