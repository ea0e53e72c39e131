package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateColumn(t *testing.T) {
	header := testHeader()

	tests := []struct {
		name string
		want int
	}{
		{"Crop Short Name", colCropAlias},
		{"ROI Size (pixel)", colROISize},
		{"File Paths", colParentFile},
		{"Labels", colFirstLabel},
		{"x", colVoxel},
	}

	for _, tt := range tests {
		col, err := LocateColumn(header, tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, col, tt.name)
	}
}

func TestLocateColumn_NotFound(t *testing.T) {
	col, err := LocateColumn(testHeader(), "Parent File")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, -1, col)
}

func TestLocateColumn_FirstMatchRowMajor(t *testing.T) {
	header := Header{
		{"", "", "name"},
		{"name", "", ""},
	}
	col, err := LocateColumn(header, "name")
	require.NoError(t, err)
	assert.Equal(t, 2, col)
}

func TestLocateColumn_PermutationInvariant(t *testing.T) {
	header := testHeader()
	body := testBody(testRow{alias: "crop1", parent: "a.n5"}, testRow{alias: "crop2", parent: "b.n5"})
	want, err := ExtractColumn(header, body, "Crop Short Name")
	require.NoError(t, err)

	swap := func(cells []string) []string {
		out := append([]string(nil), cells...)
		out[colCropAlias], out[colParentFile] = out[colParentFile], out[colCropAlias]
		return out
	}
	moved := Header{}
	for _, row := range header {
		moved = append(moved, swap(row))
	}
	movedBody := Body{}
	for _, row := range body {
		movedBody = append(movedBody, Row{Num: row.Num, Cells: swap(row.Cells)})
	}

	got, err := ExtractColumn(moved, movedBody, "Crop Short Name")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"crop1", "crop2"}, got)
}

func TestLocateSpan(t *testing.T) {
	span, err := LocateSpan(testHeader(), "ECS", "Microtubules in")
	require.NoError(t, err)
	assert.Equal(t, Span{Start: colFirstLabel, End: colFirstLabel + 5}, span)
	assert.Equal(t, 5, span.Width())

	span, err = LocateSpan(testHeader(), "ECS", "ECS")
	require.NoError(t, err)
	assert.Equal(t, 1, span.Width())
}

func TestLocateSpan_InvalidLayout(t *testing.T) {
	header := testHeader()

	_, err := LocateSpan(header, "ECS", "Nucleus")
	assert.ErrorIs(t, err, ErrInvalidLayout)

	_, err = LocateSpan(header, "Nucleus", "Microtubules in")
	assert.ErrorIs(t, err, ErrInvalidLayout)

	_, err = LocateSpan(header, "Microtubules in", "ECS")
	assert.ErrorIs(t, err, ErrInvalidLayout)
	assert.NotErrorIs(t, err, ErrNotFound)
}
