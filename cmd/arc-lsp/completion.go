package main

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/signadot/arc-format/arc/eval"
	"github.com/signadot/arc-format/arc/ir"
	"github.com/signadot/arc-format/arc/parse"
	"github.com/signadot/arc-format/arc/token"

	"go.lsp.dev/protocol"
)

var (
	citePrefix   = regexp.MustCompile(`\$([^\s$,;=\[\]{}]*)$`)
	numberPrefix = regexp.MustCompile(`[0-9]([A-Za-z_][A-Za-z0-9_]*)?$`)
	valuePrefix  = regexp.MustCompile(`[=:]\s*[a-z]*$`)
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return &protocol.CompletionList{Items: doc.complete(params.Position)}, nil
}

func (doc *document) complete(p protocol.Position) []protocol.CompletionItem {
	off := doc.offset(p)
	lineStart := doc.lines.Offset(int(p.Line), 0)
	prefix := doc.content[lineStart:off]

	if m := citePrefix.FindStringSubmatch(prefix); m != nil {
		return doc.completeCite(m[1])
	}
	if m := numberPrefix.FindStringSubmatch(prefix); m != nil && m[1] != "" {
		return completeTags(m[1])
	}
	if strings.TrimSpace(prefix) == "@" || strings.TrimSpace(prefix) == "" {
		return completeDirectives()
	}
	if valuePrefix.MatchString(prefix) {
		return completeKeywords()
	}
	return nil
}

// completeCite offers the keys of the value named by the part of text
// before its last dot.
func (doc *document) completeCite(text string) []protocol.CompletionItem {
	if doc.node == nil {
		return nil
	}
	parent, partial := "", text
	if i := strings.LastIndexByte(text, '.'); i >= 0 {
		parent, partial = text[:i], text[i+1:]
	}
	y := doc.node
	if parent != "" {
		p, err := parse.ParseKeyPath(parent)
		if err != nil {
			return nil
		}
		var ok bool
		if y, ok = follow(doc.node, p); !ok {
			return nil
		}
	}
	var res []protocol.CompletionItem
	add := func(label string, v *ir.Node) {
		if !strings.HasPrefix(label, partial) {
			return
		}
		kind := protocol.CompletionItemKindField
		if v.Type.IsDict() || v.Type == ir.ListType {
			kind = protocol.CompletionItemKindModule
		}
		res = append(res, protocol.CompletionItem{
			Label:  label,
			Kind:   kind,
			Detail: v.Type.String(),
		})
	}
	switch {
	case y.Type.IsDict():
		for i, f := range y.Fields {
			add(token.QuoteKey(f), y.Values[i])
		}
	case y.Type == ir.ListType:
		for i, v := range y.Values {
			add(strconv.Itoa(i), v)
		}
	}
	return res
}

func completeTags(partial string) []protocol.CompletionItem {
	var res []protocol.CompletionItem
	for _, h := range eval.DefaultRegistry().Handlers() {
		if !strings.HasPrefix(h.String(), partial) {
			continue
		}
		res = append(res, protocol.CompletionItem{
			Label:  h.String(),
			Kind:   protocol.CompletionItemKindFunction,
			Detail: "handler",
		})
	}
	return res
}

func completeDirectives() []protocol.CompletionItem {
	var res []protocol.CompletionItem
	for _, kind := range []parse.DirectiveKind{parse.Include, parse.Import} {
		res = append(res, protocol.CompletionItem{
			Label:            "@" + kind.String(),
			Kind:             protocol.CompletionItemKindSnippet,
			InsertText:       kind.String() + `("${1:path}", ${2:arc})`,
			InsertTextFormat: protocol.InsertTextFormatSnippet,
		})
	}
	return res
}

func completeKeywords() []protocol.CompletionItem {
	var res []protocol.CompletionItem
	for _, kw := range []string{"true", "false", "null"} {
		res = append(res, protocol.CompletionItem{
			Label:      kw,
			Kind:       protocol.CompletionItemKindKeyword,
			InsertText: kw,
		})
	}
	return res
}
