package encode

import "github.com/signadot/arc-format/arc/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeComments writes the comments attached to the entries of a
// document.  It only applies to arc documents.
func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeDocument writes a dict root as one "key = value" statement per
// entry instead of a single literal.
func EncodeDocument(v bool) EncodeOption {
	return func(es *EncState) { es.document = v }
}

// EncodeIndent sets the JSON indentation width; 0 gives compact JSON.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeLossy lets JSON and YAML output stand in for values those formats
// cannot represent.  See bridge.Lossy.
func EncodeLossy(v bool) EncodeOption {
	return func(es *EncState) { es.lossy = v }
}
