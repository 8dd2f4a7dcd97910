package bridge

import (
	"github.com/goccy/go-yaml"
	"github.com/signadot/arc-format/arc/ir"
)

// DecodeYAML parses a YAML document into a node, keeping mapping order.
// Non-string mapping keys are converted to their text.
func DecodeYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromJSON(v)
}

// MarshalYAML encodes y as block style YAML.
func MarshalYAML(y *ir.Node, opts ...ToOption) ([]byte, error) {
	v, err := ToJSON(y, opts...)
	if err != nil {
		return nil, err
	}
	return yaml.MarshalWithOptions(v, yaml.Indent(2), yaml.IndentSequence(true))
}
