// Package eval resolves the references and tags in arc documents.
//
// Resolve replaces each cite ($a.b) by a copy of the value it points at,
// and each tagged string or number (sql"..." or 10km) by the result of the
// handler registered for its tag.  Built in handlers check integer widths
// (u8 ... u64, i8 ... i64), convert (f64, str), decode (b64), read the
// environment (env) and evaluate expressions (expr).
//
// # Related Packages
//
//   - github.com/signadot/arc-format/arc/parse - Parse documents
//   - github.com/signadot/arc-format/arc/ir - values
package eval
