package main

import (
	"context"
	"strings"

	"github.com/signadot/arc-format/arc/grammar"

	"go.lsp.dev/protocol"
)

// Indexes into tokenTypes.
const (
	tokComment uint32 = iota
	tokKeyword
	tokString
	tokNumber
	tokOperator
	tokProperty
	tokVariable
	tokMacro
)

var tokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenComment,
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenProperty,
	protocol.SemanticTokenTypes("variable"),
	protocol.SemanticTokenTypes("macro"),
}

var tokenModifiers = []protocol.SemanticTokenModifiers{
	protocol.SemanticTokenModifierDefinition,
}

const modDefinition uint32 = 1 << 0

type tokenInfo struct {
	start, end int
	tokenType  uint32
	modifiers  uint32
}

// collectTokens classifies the leaves of the parse tree in document
// order.  Cites are classified whole, so only keys that name entries are
// marked as definitions.
func (doc *document) collectTokens() []tokenInfo {
	var res []tokenInfo
	add := func(n *grammar.Node, t, mods uint32) {
		res = append(res, tokenInfo{start: n.Start, end: n.End, tokenType: t, modifiers: mods})
	}
	var visit func(n *grammar.Node)
	visit = func(n *grammar.Node) {
		switch n.Rule {
		case grammar.LineComment, grammar.MultiLineComment:
			add(n, tokComment, 0)
			return
		case grammar.CiteValue:
			add(n, tokVariable, 0)
			return
		case grammar.Key:
			add(n, tokProperty, modDefinition)
			return
		case grammar.Special:
			add(n, tokKeyword, 0)
			return
		case grammar.SignedNumber, grammar.Exponent, grammar.ByteBin, grammar.ByteOct, grammar.ByteHex:
			add(n, tokNumber, 0)
			return
		case grammar.StringNormal, grammar.InlineString:
			add(n, tokString, 0)
			return
		case grammar.Symbol:
			add(n, tokMacro, 0)
			return
		case grammar.Set, grammar.Insert, grammar.Append:
			add(n, tokOperator, 0)
			return
		case grammar.IncludeStatement, grammar.ImportStatement:
			at := strings.IndexByte(doc.content[n.Start:n.End], '(')
			if at > 0 {
				res = append(res, tokenInfo{start: n.Start, end: n.Start + at, tokenType: tokKeyword})
			}
		}
		for _, c := range n.Children {
			visit(c)
		}
	}
	if doc.cst != nil {
		visit(doc.cst)
	}
	return res
}

// encodeTokens produces the relative encoding of the protocol, splitting
// tokens at line ends.
func (doc *document) encodeTokens(toks []tokenInfo) []uint32 {
	data := []uint32{}
	var prevLine, prevChar uint32
	emit := func(start, end int, t, mods uint32) {
		if end <= start {
			return
		}
		p := doc.position(start)
		length := uint32(utf16Len(doc.content[start:end]))
		deltaLine := p.Line - prevLine
		deltaChar := p.Character
		if deltaLine == 0 {
			deltaChar = p.Character - prevChar
		}
		data = append(data, deltaLine, deltaChar, length, t, mods)
		prevLine, prevChar = p.Line, p.Character
	}
	for _, tk := range toks {
		start := tk.start
		for {
			nl := strings.IndexByte(doc.content[start:tk.end], '\n')
			if nl < 0 {
				emit(start, tk.end, tk.tokenType, tk.modifiers)
				break
			}
			end := start + nl
			if end > start && doc.content[end-1] == '\r' {
				end--
			}
			emit(start, end, tk.tokenType, tk.modifiers)
			start += nl + 1
		}
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: doc.encodeTokens(doc.collectTokens())}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	lo, hi := doc.offset(params.Range.Start), doc.offset(params.Range.End)
	var in []tokenInfo
	for _, tk := range doc.collectTokens() {
		if tk.end > lo && tk.start < hi {
			in = append(in, tk)
		}
	}
	return &protocol.SemanticTokens{Data: doc.encodeTokens(in)}, nil
}
