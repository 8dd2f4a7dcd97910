package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/signadot/arc-format/arc/debug"
	"github.com/signadot/arc-format/arc/eval"
	"github.com/signadot/arc-format/arc/grammar"
	"github.com/signadot/arc-format/arc/ir"
	"github.com/signadot/arc-format/arc/parse"
	"github.com/signadot/arc-format/arc/token"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is one open file.  node and positions come from the last
// content that parsed, so features keep working while an edit is
// incomplete; err is the error of the current content.
type document struct {
	uri        string
	content    string
	version    int32
	lines      *token.PosDoc
	cst        *grammar.Node
	node       *ir.Node
	positions  map[*ir.Node]*token.Pos
	directives []parse.Directive
	err        error
}

func newDocument(uri, content string, version int32, prev *document) *document {
	doc := &document{
		uri:     uri,
		content: content,
		version: version,
		lines:   token.NewPosDoc([]byte(content)),
	}
	doc.cst, doc.err = grammar.Parse([]byte(content))
	if doc.err == nil {
		positions := make(map[*ir.Node]*token.Pos)
		var dirs []parse.Directive
		node, err := parse.Parse([]byte(content),
			parse.ParseComments(true),
			parse.ParsePositions(positions),
			parse.ParseDirectives(&dirs))
		if err == nil {
			doc.node, doc.positions, doc.directives = node, positions, dirs
		}
		doc.err = err
	}
	if doc.node == nil && prev != nil {
		doc.node, doc.positions, doc.directives = prev.node, prev.positions, prev.directives
	}
	if debug.LSP() {
		debug.Logf("%s v%d: err %v\n", uri, version, doc.err)
	}
	return doc
}

// current reports whether node was built from content.
func (doc *document) current() bool {
	return doc.err == nil && doc.node != nil
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	doc := newDocument(uri, content, version, ds.docs[uri])
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

// validateDocument reports the parse error of doc, or else its cites
// that lead nowhere.
func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err != nil {
		d := protocol.Diagnostic{
			Severity: protocol.DiagnosticSeverityError,
			Message:  doc.err.Error(),
			Source:   lsName,
		}
		var (
			se *grammar.SyntaxError
			le *parse.LiteralError
		)
		switch {
		case errors.As(doc.err, &se):
			start := doc.position(se.Pos.I)
			d.Range = protocol.Range{Start: start, End: doc.position(se.Pos.I + 1)}
		case errors.As(doc.err, &le):
			d.Range = protocol.Range{Start: doc.position(le.Pos.I), End: doc.position(le.End.I)}
		}
		return append(diagnostics, d)
	}
	for _, c := range eval.Cites(doc.node) {
		if _, ok := follow(doc.node, c.Target); ok {
			continue
		}
		y, _ := doc.node.GetPath(c.At)
		msg := fmt.Sprintf("$%s does not refer to a value", c.Target.Quoted())
		if sug := eval.Suggest(doc.node, c.Target); sug != "" {
			msg += fmt.Sprintf("; did you mean $%s?", sug)
		}
		d := protocol.Diagnostic{
			Severity: protocol.DiagnosticSeverityWarning,
			Message:  msg,
			Source:   lsName,
		}
		if pos := doc.positions[y]; pos != nil {
			d.Range = protocol.Range{Start: doc.position(pos.I), End: doc.position(pos.I + 1 + len(c.Target.Quoted()))}
		}
		diagnostics = append(diagnostics, d)
	}
	return diagnostics
}

// maxHops bounds the cites followed by follow.
const maxHops = 64

// follow finds the value at p, going through cites met on the way.
func follow(root *ir.Node, p ir.KeyPath) (*ir.Node, bool) {
	hops := 0
	return followFrom(root, p, &hops)
}

func followFrom(root *ir.Node, p ir.KeyPath, hops *int) (*ir.Node, bool) {
	y := root
	through := func() bool {
		for y.Type == ir.CiteType {
			if *hops++; *hops > maxHops {
				return false
			}
			next, ok := followFrom(root, y.Path, hops)
			if !ok {
				return false
			}
			y = next
		}
		return true
	}
	for _, k := range p {
		if !through() {
			return nil, false
		}
		next, ok := y.Step(k)
		if !ok {
			return nil, false
		}
		y = next
	}
	if !through() {
		return nil, false
	}
	return y, true
}

// position converts a byte offset to an LSP position, whose character
// counts UTF-16 code units.
func (doc *document) position(off int) protocol.Position {
	off = min(max(off, 0), len(doc.content))
	line, col := doc.lines.LineCol(off)
	start := off - col
	return protocol.Position{Line: uint32(line), Character: uint32(utf16Len(doc.content[start:off]))}
}

// offset is the inverse of position.
func (doc *document) offset(p protocol.Position) int {
	start := doc.lines.Offset(int(p.Line), 0)
	end := doc.lines.Offset(int(p.Line), len(doc.content))
	n := 0
	for i, r := range doc.content[start:end] {
		if n >= int(p.Character) {
			return start + i
		}
		n += utf16RuneLen(r)
	}
	return end
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16RuneLen(r)
	}
	return n
}

func utf16RuneLen(r rune) int {
	if r >= 0x10000 && r <= utf8.MaxRune {
		return 2
	}
	return 1
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

// DidChange takes the last change as the whole text, as full
// synchronization is what Initialize announces.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
