package models

// Group binds the records of one parent file.
type Group struct {
	Parent  string    `json:"parent" yaml:"parent"`
	Records []Dataset `json:"records" yaml:"records"`
}

// Result is the outcome of partitioning a sheet body.
// Exactly one of Records or Groups is populated: Records when the body
// references a single parent file, Groups (in first-seen parent order)
// when it references several.
type Result struct {
	Records []Dataset `json:"records,omitempty" yaml:"records,omitempty"`
	Groups  []Group   `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// Grouped reports whether the result is keyed by parent file.
func (r Result) Grouped() bool {
	return r.Groups != nil
}

// Parents returns the parent files of the result in order.
func (r Result) Parents() []string {
	if !r.Grouped() {
		if len(r.Records) == 0 {
			return nil
		}
		return []string{r.Records[0].Parent}
	}
	parents := make([]string, len(r.Groups))
	for i, g := range r.Groups {
		parents[i] = g.Parent
	}
	return parents
}

// Lookup returns the records bound to parent.
func (r Result) Lookup(parent string) ([]Dataset, bool) {
	for _, g := range r.Groups {
		if g.Parent == parent {
			return g.Records, true
		}
	}
	return nil, false
}

// All returns every record, flattening groups in order.
func (r Result) All() []Dataset {
	if !r.Grouped() {
		return r.Records
	}
	var all []Dataset
	for _, g := range r.Groups {
		all = append(all, g.Records...)
	}
	return all
}

// Len returns the total number of records.
func (r Result) Len() int {
	if !r.Grouped() {
		return len(r.Records)
	}
	n := 0
	for _, g := range r.Groups {
		n += len(g.Records)
	}
	return n
}
