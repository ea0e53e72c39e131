package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetscrape-go/pkg/sheetscrape/models"
)

func TestAssemble(t *testing.T) {
	rows := []testRow{
		{alias: "crop1", parent: " /nrs/hela-2.n5 ", size: [3]int{10, 20, 30}, origin: [3]int{1, 2, 3}, labels: []int{0, 2}},
		{alias: "crop2", parent: "/nrs/hela-2.n5", size: [3]int{5, 5, 5}},
	}

	datasets, err := Assemble(testHeader(), testBody(rows...), DefaultLayout())
	require.NoError(t, err)
	require.Len(t, datasets, len(rows))

	assert.Equal(t, models.Dataset{
		Biotype:     "HeLa",
		Alias:       "crop1",
		Dimensions:  models.Triple{"x": 10, "y": 20, "z": 30},
		Offset:      models.Triple{"x": 1, "y": 2, "z": 3},
		Resolution:  models.Triple{"x": 4, "y": 4, "z": 4},
		Labels:      models.Labels{Indices: []int{0, 2}, Names: []string{"ecs", "mito"}},
		Parent:      "/nrs/hela-2.n5",
		ParentAlias: "jrc_hela-2",
	}, datasets[0])
	assert.Equal(t, "crop2", datasets[1].Alias)
	assert.Empty(t, datasets[1].Labels.Indices)
}

func TestAssemble_MissingField(t *testing.T) {
	header := testHeader()
	header[0][colROISize] = "ROI Size (px)"

	datasets, err := Assemble(header, testBody(testRow{alias: "crop1", parent: "a.n5"}), DefaultLayout())
	assert.Nil(t, datasets)
	require.ErrorIs(t, err, ErrMissingField)
	assert.ErrorIs(t, err, ErrNotFound)

	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "ROI Size (pixel)", fieldErr.Field)
	assert.Equal(t, 4, fieldErr.Row)
}

func TestAssemble_ConversionError(t *testing.T) {
	body := testBody(testRow{alias: "crop1", parent: "a.n5"})
	body[0].Cells[colROISize] = "abc"

	datasets, err := Assemble(testHeader(), body, DefaultLayout())
	assert.Nil(t, datasets)
	assert.ErrorIs(t, err, ErrTypeConversion)
	assert.NotErrorIs(t, err, ErrMissingField)
}

func TestAssemble_OptionalParentAlias(t *testing.T) {
	header := testHeader()
	header[0][colParentAlias] = ""

	datasets, err := Assemble(header, testBody(testRow{alias: "crop1", parent: "a.n5"}), DefaultLayout())
	require.NoError(t, err)
	assert.Empty(t, datasets[0].ParentAlias)
}

func TestAssemble_MissingLabelSpan(t *testing.T) {
	header := testHeader()
	header[0][colFirstLabel+4] = ""

	_, err := Assemble(header, testBody(testRow{alias: "crop1", parent: "a.n5"}), DefaultLayout())
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestParse_Example(t *testing.T) {
	grid := Grid{
		{"", "", "Cell/Tissue Type", "Crop Short Name", "Voxel Size (nm)", "", "", "ROI Size (pixel)", "", "", "ROI Coordinates", "", "", "ECS", "Microtubules in", "File Paths"},
		{"", "", "", "", "", "", "", "", "", "", "", "", "", "", "", ""},
		{"", "", "", "", "x", "y", "z", "x", "y", "z", "x", "y", "z", "ECS", "Microtubules in", ""},
		{"", "", "HeLa", "crop7", "4", "4", "3", "200", "200", "100", "10", "20", "30", "X", "", "/nrs/jrc_hela-2.n5"},
	}

	result, err := Parse(grid, DefaultLayout())
	require.NoError(t, err)
	require.False(t, result.Grouped())
	require.Len(t, result.Records, 1)

	ds := result.Records[0]
	assert.Equal(t, "HeLa", ds.Biotype)
	assert.Equal(t, "crop7", ds.Alias)
	assert.Equal(t, models.Triple{"x": 4, "y": 4, "z": 3}, ds.Resolution)
	assert.Equal(t, models.Triple{"x": 200, "y": 200, "z": 100}, ds.Dimensions)
	assert.Equal(t, models.Triple{"x": 10, "y": 20, "z": 30}, ds.Offset)
	assert.Equal(t, models.Labels{Indices: []int{0}, Names: []string{"ECS"}}, ds.Labels)
	assert.Equal(t, "/nrs/jrc_hela-2.n5", ds.Parent)
}
