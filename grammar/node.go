package grammar

import (
	"fmt"
	"strings"
)

// Node is a parse tree node: the span [Start, End) of the source matched
// by Rule, along with the nodes of the rules matched inside it.
type Node struct {
	Rule     Rule
	Start    int
	End      int
	Children []*Node
}

// Text returns the matched source text.
func (n *Node) Text(src []byte) string {
	return string(src[n.Start:n.End])
}

// Child returns the first direct child produced by r, or nil.
func (n *Node) Child(r Rule) *Node {
	for _, c := range n.Children {
		if c.Rule == r {
			return c
		}
	}
	return nil
}

// ChildrenOf returns the direct children produced by r.
func (n *Node) ChildrenOf(r Rule) []*Node {
	var res []*Node
	for _, c := range n.Children {
		if c.Rule == r {
			res = append(res, c)
		}
	}
	return res
}

// Visit calls f on n and its descendants in document order, descending
// only when f returns true.
func (n *Node) Visit(f func(*Node) bool) {
	if !f(n) {
		return
	}
	for _, c := range n.Children {
		c.Visit(f)
	}
}

// Dump renders the tree one node per line, indented by depth.
func (n *Node) Dump(src []byte) string {
	var b strings.Builder
	n.dump(&b, src, 0)
	return b.String()
}

func (n *Node) dump(b *strings.Builder, src []byte, depth int) {
	fmt.Fprintf(b, "%s%s %d..%d", strings.Repeat("  ", depth), n.Rule, n.Start, n.End)
	if len(n.Children) == 0 {
		fmt.Fprintf(b, " %q", n.Text(src))
	}
	b.WriteByte('\n')
	for _, c := range n.Children {
		c.dump(b, src, depth+1)
	}
}
