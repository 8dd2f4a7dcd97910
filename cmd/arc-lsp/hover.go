package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/arc-format/arc/ir"

	"go.lsp.dev/protocol"
)

// maxHoverLines bounds the value shown in a hover.
const maxHoverLines = 20

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || !doc.current() {
		return nil, nil
	}
	text := doc.hover(params.Position)
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

func (doc *document) hover(p protocol.Position) string {
	y := doc.nodeAt(doc.offset(p))
	if y == nil {
		return ""
	}
	return buildHoverText(doc.node, y)
}

// nodeAt finds the value on the line of off that starts closest before
// off, or the first value of the line when the cursor precedes them all
// (as on a key).
func (doc *document) nodeAt(off int) *ir.Node {
	line, _ := doc.lines.LineCol(off)
	var (
		before, after       *ir.Node
		beforeI, afterI     = -1, -1
		beforeDepth, afterD = -1, -1
	)
	for y, pos := range doc.positions {
		if y.Parent == nil || y.Type == ir.CommentType || pos.Line() != line {
			continue
		}
		depth := len(y.KeyPath())
		switch {
		case pos.I <= off:
			if pos.I > beforeI || pos.I == beforeI && depth > beforeDepth {
				before, beforeI, beforeDepth = y, pos.I, depth
			}
		default:
			if afterI == -1 || pos.I < afterI || pos.I == afterI && depth > afterD {
				after, afterI, afterD = y, pos.I, depth
			}
		}
	}
	if before != nil {
		return before
	}
	return after
}

func buildHoverText(root, y *ir.Node) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("**%s** `%s`", y.Type, y.KeyPath().Quoted()))
	if y.Tag != "" {
		parts = append(parts, fmt.Sprintf("**Tag:** `%s`", y.Tag))
	}
	if y.Comment != nil {
		var cs []string
		for _, c := range y.Comment.Values {
			cs = append(cs, strings.TrimSpace(c.String))
		}
		parts = append(parts, strings.Join(cs, "\n"))
	}
	parts = append(parts, codeBlock(y))
	if y.Type == ir.CiteType {
		if t, ok := follow(root, y.Path); ok {
			parts = append(parts, "**Refers to:**", codeBlock(t))
		} else {
			parts = append(parts, "**Unresolved**")
		}
	}
	return strings.Join(parts, "\n\n")
}

func codeBlock(y *ir.Node) string {
	lines := strings.Split(ir.Display(y), "\n")
	if len(lines) > maxHoverLines {
		lines = append(lines[:maxHoverLines], "...")
	}
	return "```arc\n" + strings.Join(lines, "\n") + "\n```"
}
