package parser

import "strconv"

// Column layout of the test sheet.
const (
	colParentAlias = iota
	colCropAlias
	colBiotype
	colVoxel
	_
	_
	colROISize
	_
	_
	colROIOrigin
	_
	_
	colParentFile
	colFirstLabel
	sheetWidth = colFirstLabel + 5
)

func testHeader() Header {
	top := []string{
		"Cell/Tissue Short Name", "Crop Short Name", "Cell/Tissue Type",
		"Voxel Size (nm)", "", "",
		"ROI Size (pixel)", "", "",
		"ROI Coordinates", "", "",
		"File Paths",
		"ECS", "", "", "", "Microtubules in",
	}
	mid := make([]string, sheetWidth)
	mid[colFirstLabel] = "Labels"
	leaf := []string{
		"", "", "",
		"x", "y", "z",
		"x", "y", "z",
		"x", "y", "z",
		"",
		"ecs", "pm", "mito", "er", "microtubules",
	}
	return Header{top, mid, leaf}
}

type testRow struct {
	alias  string
	parent string
	size   [3]int
	origin [3]int
	labels []int
}

func (r testRow) cells() []string {
	cells := make([]string, sheetWidth)
	cells[colParentAlias] = "jrc_hela-2"
	cells[colCropAlias] = r.alias
	cells[colBiotype] = "HeLa"
	for i := 0; i < 3; i++ {
		cells[colVoxel+i] = "4"
		cells[colROISize+i] = strconv.Itoa(r.size[i])
		cells[colROIOrigin+i] = strconv.Itoa(r.origin[i])
	}
	cells[colParentFile] = r.parent
	for _, l := range r.labels {
		cells[colFirstLabel+l] = "X"
	}
	return cells
}

func testGrid(rows ...testRow) Grid {
	grid := Grid{}
	for _, h := range testHeader() {
		grid = append(grid, h)
	}
	for _, r := range rows {
		grid = append(grid, r.cells())
	}
	return grid
}

func testBody(rows ...testRow) Body {
	body := make(Body, len(rows))
	for i, r := range rows {
		body[i] = Row{Num: DefaultNeck + i + 1, Cells: r.cells()}
	}
	return body
}
