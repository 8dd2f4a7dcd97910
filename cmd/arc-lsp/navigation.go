package main

import (
	"context"

	"github.com/signadot/arc-format/arc/grammar"
	"github.com/signadot/arc-format/arc/ir"

	"go.lsp.dev/protocol"
)

// Definition jumps from a cite to the value it refers to.
func (s *Server) Definition(ctx context.Context, params *protocol.DefinitionParams) ([]protocol.Location, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || !doc.current() {
		return nil, nil
	}
	p, ok := doc.definition(params.Position)
	if !ok {
		return nil, nil
	}
	return []protocol.Location{{
		URI:   params.TextDocument.URI,
		Range: protocol.Range{Start: p, End: p},
	}}, nil
}

// definition finds where the value cited at p starts.
func (doc *document) definition(p protocol.Position) (protocol.Position, bool) {
	y := doc.nodeAt(doc.offset(p))
	if y == nil || y.Type != ir.CiteType {
		return protocol.Position{}, false
	}
	t, ok := follow(doc.node, y.Path)
	if !ok {
		return protocol.Position{}, false
	}
	pos := doc.positions[t]
	if pos == nil {
		return protocol.Position{}, false
	}
	return doc.position(pos.I), true
}

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	var res []interface{}
	for _, sym := range doc.symbols(doc.node) {
		res = append(res, sym)
	}
	return res, nil
}

// symbols lists the entries of a dict or list as document symbols.
func (doc *document) symbols(y *ir.Node) []protocol.DocumentSymbol {
	var res []protocol.DocumentSymbol
	for i, v := range y.Values {
		if v.Type == ir.CommentType {
			continue
		}
		name := v.KeyPath()
		last, _ := name.Last()
		var r protocol.Range
		if pos := doc.positions[v]; pos != nil && doc.current() {
			p := doc.position(pos.I)
			r = protocol.Range{Start: p, End: p}
		}
		sym := protocol.DocumentSymbol{
			Name:           last.Quoted(),
			Detail:         v.Type.String(),
			Kind:           symbolKind(v),
			Range:          r,
			SelectionRange: r,
		}
		if y.Type == ir.ListType {
			sym.Name = ir.Index(i).String()
		}
		if v.Type.IsDict() || v.Type == ir.ListType {
			sym.Children = doc.symbols(v)
		}
		res = append(res, sym)
	}
	return res
}

func symbolKind(y *ir.Node) protocol.SymbolKind {
	switch y.Type {
	case ir.DictType, ir.FreeDictType:
		return protocol.SymbolKindObject
	case ir.ListType:
		return protocol.SymbolKindArray
	case ir.NumberType, ir.HandlerNumberType:
		return protocol.SymbolKindNumber
	case ir.StringType, ir.HandlerStringType, ir.CharType:
		return protocol.SymbolKindString
	case ir.BoolType:
		return protocol.SymbolKindBoolean
	case ir.NullType:
		return protocol.SymbolKindNull
	case ir.CiteType:
		return protocol.SymbolKindVariable
	}
	return protocol.SymbolKindKey
}

// FoldingRanges folds multi-line scopes, literals and block comments.
func (s *Server) FoldingRanges(ctx context.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.cst == nil {
		return nil, nil
	}
	return doc.foldingRanges(), nil
}

func (doc *document) foldingRanges() []protocol.FoldingRange {
	var res []protocol.FoldingRange
	doc.cst.Visit(func(n *grammar.Node) bool {
		switch n.Rule {
		case grammar.DictScope, grammar.ListScope, grammar.DictLiteral, grammar.ListLiteral, grammar.MultiLineComment:
			end := n.End
			for end > n.Start && (doc.content[end-1] == '\n' || doc.content[end-1] == '\r') {
				end--
			}
			start, _ := doc.lines.LineCol(n.Start)
			last, _ := doc.lines.LineCol(end)
			if last > start {
				res = append(res, protocol.FoldingRange{StartLine: uint32(start), EndLine: uint32(last)})
			}
		}
		return n.Rule != grammar.MultiLineComment
	})
	return res
}
