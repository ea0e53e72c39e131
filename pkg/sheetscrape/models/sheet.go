package models

// SheetData represents the datasets parsed from a single sheet.
type SheetData struct {
	// Rows is the number of grid rows after normalization.
	Rows int `json:"rows" yaml:"rows"`
	// Cols is the number of grid columns after normalization.
	Cols int `json:"cols" yaml:"cols"`
	// Area is the region that was parsed, if the grid was cropped.
	Area *Area `json:"area,omitempty" yaml:"area,omitempty"`
	// Result holds the parsed records.
	Result Result `json:"result" yaml:"result"`
	// Error is set when the sheet failed to parse and extraction continued.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}
