// Package encode encodes ir nodes as arc, JSON or YAML text.
//
// # Usage
//
//	// Encode in arc form
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "age", Val: ir.FromUint(30)},
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// One statement per entry, keeping comments
//	err := encode.Encode(node, os.Stdout, encode.EncodeDocument(true), encode.EncodeComments(true))
//
//	// Encode as JSON
//	err := encode.Encode(node, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
// # Related Packages
//
//   - github.com/signadot/arc-format/arc/ir - values
//   - github.com/signadot/arc-format/arc/parse - Parse text to values
//   - github.com/signadot/arc-format/arc/bridge - JSON and YAML trees
package encode
