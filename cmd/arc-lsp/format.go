package main

import (
	"bytes"
	"context"

	"github.com/signadot/arc-format/arc/encode"
	"github.com/signadot/arc-format/arc/format"

	"go.lsp.dev/protocol"
)

// Formatting rewrites the document in key = value form.  Documents that
// do not parse or that hold directives are left alone.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	formatted, ok := doc.formatted()
	if !ok {
		return nil, nil
	}
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   doc.position(len(doc.content)),
			},
			NewText: formatted,
		},
	}, nil
}

func (doc *document) formatted() (string, bool) {
	if !doc.current() || len(doc.directives) > 0 {
		return "", false
	}
	var buf bytes.Buffer
	err := encode.Encode(doc.node, &buf,
		encode.EncodeFormat(format.ArcFormat),
		encode.EncodeComments(true),
		encode.EncodeDocument(true),
	)
	if err != nil {
		return "", false
	}
	return buf.String(), true
}
