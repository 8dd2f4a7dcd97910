// Package format names the document formats arc tools read and write.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	f, ok := format.FromPath("config.arc")
//
// # Related Packages
//
//   - github.com/signadot/arc-format/arc/encode - Encode values in a format
//   - github.com/signadot/arc-format/arc/bridge - JSON and YAML trees
package format
