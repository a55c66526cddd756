package inspect

import "github.com/dshills/arcevents/internal/event/events"

// TypeInfo is the external description of a catalog entry. It is shared
// by the HTTP API and the catalog export of the command line tool.
type TypeInfo struct {
	Path       string   `json:"path" yaml:"path" toml:"path"`
	Type       string   `json:"type" yaml:"type" toml:"type"`
	Kind       string   `json:"kind" yaml:"kind" toml:"kind"`
	Cancelable bool     `json:"cancelable" yaml:"cancelable" toml:"cancelable"`
	Fields     []string `json:"fields" yaml:"fields" toml:"fields"`
	Result     string   `json:"result,omitempty" yaml:"result,omitempty" toml:"result,omitempty"`
}

// Describe converts a catalog entry.
func Describe(e events.Entry) TypeInfo {
	fields := e.Fields
	if fields == nil {
		fields = []string{}
	}
	return TypeInfo{
		Path:       e.Path.String(),
		Type:       e.Type.String(),
		Kind:       e.Kind.String(),
		Cancelable: e.Kind.Flags().Cancelable,
		Fields:     fields,
		Result:     e.Result,
	}
}

// DescribeAll converts a list of entries.
func DescribeAll(entries []events.Entry) []TypeInfo {
	out := make([]TypeInfo, len(entries))
	for i, e := range entries {
		out[i] = Describe(e)
	}
	return out
}
