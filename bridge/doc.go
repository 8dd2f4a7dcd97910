// Package bridge converts between ir nodes and generic JSON trees.
//
// JSON and YAML documents decode into nodes with their field order kept;
// objects are represented as yaml.MapSlice on the way out for the same
// reason.
//
// Only null, bools, numbers, strings, lists and dicts have a JSON form.
// Converting any other variant fails with an *Error naming its path,
// unless the FreeDicts or Lossy options relax that.
//
// # Usage
//
//	y, err := bridge.FromJSON(map[string]any{"x": []any{1, "s", nil, true}})
//	v, err := bridge.ToJSON(y)
//	d, err := bridge.MarshalJSON(y, bridge.FreeDicts())
//
// # Related Packages
//
//   - github.com/signadot/arc-format/arc/ir - values
//   - github.com/signadot/arc-format/arc/encode - Encode values as arc, JSON or YAML
package bridge
