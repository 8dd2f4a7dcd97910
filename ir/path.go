package ir

import (
	"strconv"
	"strings"

	"github.com/signadot/arc-format/arc/token"
)

// KeyNode is one step of a KeyPath: a dict key or a signed list index.
type KeyNode struct {
	Key     string
	Index   int
	IsIndex bool
}

func Key(k string) KeyNode {
	return KeyNode{Key: k}
}

func Index(i int) KeyNode {
	return KeyNode{Index: i, IsIndex: true}
}

// String returns the index in decimal or the key text as is.
func (k KeyNode) String() string {
	if k.IsIndex {
		return strconv.Itoa(k.Index)
	}
	return k.Key
}

// Quoted is like String but quotes keys that would not read back as the
// same key.
func (k KeyNode) Quoted() string {
	if k.IsIndex {
		return strconv.Itoa(k.Index)
	}
	return token.QuoteKey(k.Key)
}

// KeyPath addresses a node from a root.  The zero value is the empty path,
// which addresses the root itself.
type KeyPath []KeyNode

// String joins the node texts with '.'.
func (p KeyPath) String() string {
	parts := make([]string, len(p))
	for i, k := range p {
		parts[i] = k.String()
	}
	return strings.Join(parts, ".")
}

// Quoted joins the quoted node texts with '.', giving text that parses
// back to the same path.
func (p KeyPath) Quoted() string {
	parts := make([]string, len(p))
	for i, k := range p {
		parts[i] = k.Quoted()
	}
	return strings.Join(parts, ".")
}

// Append returns a new path extending p by ks.  p is never modified.
func (p KeyPath) Append(ks ...KeyNode) KeyPath {
	res := make(KeyPath, 0, len(p)+len(ks))
	res = append(res, p...)
	return append(res, ks...)
}

// Parent returns p without its last node; the parent of the empty path is
// the empty path.
func (p KeyPath) Parent() KeyPath {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1 : len(p)-1]
}

func (p KeyPath) Last() (KeyNode, bool) {
	if len(p) == 0 {
		return KeyNode{}, false
	}
	return p[len(p)-1], true
}

func (p KeyPath) Equal(o KeyPath) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}
