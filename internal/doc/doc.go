// Package doc provides the element tree the rendering engine writes into,
// plus an HTML serializer. The engine never touches an output device
// directly. It appends nodes to a tree handed in by the host, which keeps
// rendering headless and deterministic.
package doc

import (
	"html"
	"sort"
	"strings"
)

// Node is one element of the document tree.
type Node struct {
	Tag      string
	Classes  []string
	Attrs    map[string]string
	Text     string
	Children []*Node
}

// NewRoot creates a detached element with the given tag and classes.
func NewRoot(tag string, classes ...string) *Node {
	return &Node{Tag: tag, Classes: classes}
}

// El appends a child element and returns it for further nesting.
func (n *Node) El(tag string, classes ...string) *Node {
	child := &Node{Tag: tag, Classes: classes}
	n.Children = append(n.Children, child)
	return child
}

// Div appends a child div.
func (n *Node) Div(classes ...string) *Node {
	return n.El("div", classes...)
}

// Span appends a child span.
func (n *Node) Span(classes ...string) *Node {
	return n.El("span", classes...)
}

// SetText sets the node's text content and returns the node.
func (n *Node) SetText(text string) *Node {
	n.Text = text
	return n
}

// SetAttr sets an attribute and returns the node.
func (n *Node) SetAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// HTML serializes the subtree rooted at n. Attributes are emitted in sorted
// key order so identical trees always serialize to identical bytes.
func (n *Node) HTML() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(n.Tag)
	if len(n.Classes) > 0 {
		sb.WriteString(` class="`)
		sb.WriteString(html.EscapeString(strings.Join(n.Classes, " ")))
		sb.WriteByte('"')
	}
	if len(n.Attrs) > 0 {
		keys := make([]string, 0, len(n.Attrs))
		for k := range n.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteByte(' ')
			sb.WriteString(k)
			if v := n.Attrs[k]; v != "" {
				sb.WriteString(`="`)
				sb.WriteString(html.EscapeString(v))
				sb.WriteByte('"')
			}
		}
	}
	sb.WriteByte('>')
	sb.WriteString(html.EscapeString(n.Text))
	for _, child := range n.Children {
		child.write(sb)
	}
	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteByte('>')
}
