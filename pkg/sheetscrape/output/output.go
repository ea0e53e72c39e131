// Package output serializes extraction results.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/ukaji3/sheetscrape-go/pkg/sheetscrape/models"
	"gopkg.in/yaml.v3"
)

// ToJSON serializes v as JSON, indented when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ToYAML serializes v as YAML.
func ToYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RecordMap converts a dataset to a plain mapping keyed by field name.
// Labels become a two-element list of indices and names.
func RecordMap(ds models.Dataset) map[string]any {
	m := map[string]any{
		"biotype":    ds.Biotype,
		"alias":      ds.Alias,
		"dimensions": map[string]int(ds.Dimensions),
		"offset":     map[string]int(ds.Offset),
		"resolution": map[string]int(ds.Resolution),
		"labels":     []any{ds.Labels.Indices, ds.Labels.Names},
		"parent":     ds.Parent,
	}
	if ds.ParentAlias != "" {
		m["parent_alias"] = ds.ParentAlias
	}
	return m
}

// ParentGroup is the plain form of one parent's records.
type ParentGroup struct {
	Parent  string
	Records []map[string]any
}

// ParentGroups encodes as a mapping from parent file to records that keeps
// the parents in first-seen order, which a Go map cannot.
type ParentGroups []ParentGroup

// Lookup returns the records of parent.
func (g ParentGroups) Lookup(parent string) ([]map[string]any, bool) {
	for _, grp := range g {
		if grp.Parent == parent {
			return grp.Records, true
		}
	}
	return nil, false
}

func (g ParentGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, grp := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(grp.Parent)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(grp.Records)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (g ParentGroups) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, grp := range g {
		var val yaml.Node
		if err := val.Encode(grp.Records); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: grp.Parent},
			&val,
		)
	}
	return node, nil
}

// ResultPlain converts a result to plain values: a list of record maps, or
// ParentGroups when the result is grouped.
func ResultPlain(r models.Result) any {
	if !r.Grouped() {
		return recordMaps(r.Records)
	}
	grouped := make(ParentGroups, len(r.Groups))
	for i, g := range r.Groups {
		grouped[i] = ParentGroup{Parent: g.Parent, Records: recordMaps(g.Records)}
	}
	return grouped
}

// WorkbookPlain converts every sheet's result to plain values, keyed by
// sheet name. Failed sheets map to their error message.
func WorkbookPlain(wb *models.WorkbookData) map[string]any {
	out := make(map[string]any, len(wb.Sheets))
	for name, sheet := range wb.Sheets {
		if sheet.Error != "" {
			out[name] = map[string]any{"error": sheet.Error}
			continue
		}
		out[name] = ResultPlain(sheet.Result)
	}
	return out
}

func recordMaps(records []models.Dataset) []map[string]any {
	maps := make([]map[string]any, len(records))
	for i, ds := range records {
		maps[i] = RecordMap(ds)
	}
	return maps
}
