package core

import "strings"

// Attr is one attribute of an output element. Attributes keep insertion order so
// output is byte-for-byte stable.
type Attr struct {
	Key   string
	Value string
}

// Node is an element of the presentation tree. A node with an empty Tag is a
// text node. Block is set only on the node that a block rendered to.
type Node struct {
	Tag      string
	Text     string
	Attrs    []Attr
	Children []Node
	Block    BlockKind
}

func (n Node) IsText() bool {
	return n.Tag == ""
}

func (n Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// OutputTree is what the renderer produces for one Document: the page metadata
// for the layout shell and one top-level node per top-level block.
type OutputTree struct {
	Page  Metadata
	Nodes []Node
}

// Walk calls fn for every block node in document order, descending into
// nested blocks. Returning false stops the walk.
func (t OutputTree) Walk(fn func(Node) bool) {
	for _, n := range t.Nodes {
		if !walkBlocks(n, fn) {
			return
		}
	}
}

func walkBlocks(n Node, fn func(Node) bool) bool {
	if n.Block != "" && !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !walkBlocks(c, fn) {
			return false
		}
	}
	return true
}

// BlockKinds lists the kinds of all block nodes in traversal order.
func (t OutputTree) BlockKinds() []BlockKind {
	var kinds []BlockKind
	t.Walk(func(n Node) bool {
		kinds = append(kinds, n.Block)
		return true
	})
	return kinds
}

// Elements returns every element under n (n included) with the given tag, in
// document order.
func (n Node) Elements(tag string) []Node {
	var out []Node
	var visit func(Node)
	visit = func(m Node) {
		if m.Tag == tag {
			out = append(out, m)
		}
		for _, c := range m.Children {
			visit(c)
		}
	}
	visit(n)
	return out
}

// TextContent concatenates all text below n.
func (n Node) TextContent() string {
	var b strings.Builder
	writeText(&b, n)
	return b.String()
}

func writeText(b *strings.Builder, n Node) {
	if n.IsText() {
		b.WriteString(n.Text)
		return
	}
	for _, c := range n.Children {
		writeText(b, c)
	}
}

func element(tag string, attrs []Attr, children ...Node) Node {
	return Node{Tag: tag, Attrs: attrs, Children: children}
}

func text(s string) Node {
	return Node{Text: s}
}

func class(name string) []Attr {
	return []Attr{{Key: "class", Value: name}}
}
