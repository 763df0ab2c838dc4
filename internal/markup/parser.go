// Package markup parses HTML fragments into node lists for conversion.
package markup

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NodeKind classifies parsed nodes for the builder.
type NodeKind int

const (
	Unknown NodeKind = iota
	Element
	Text
	Comment
	DocumentType
)

func (k NodeKind) String() string {
	switch k {
	case Element:
		return "element"
	case Text:
		return "text"
	case Comment:
		return "comment"
	case DocumentType:
		return "doctype"
	default:
		return "unknown"
	}
}

// Parser parses HTML fragments the way a <template> element's content is
// parsed, so stray text, comments and table parts at the top level are kept
// where a body context would move or drop them.
type Parser struct {
	context *html.Node
}

// NewParser creates a fragment parser.
func NewParser() *Parser {
	return &Parser{
		context: &html.Node{
			Type:     html.ElementNode,
			Data:     atom.Template.String(),
			DataAtom: atom.Template,
		},
	}
}

// ParseFragment parses src and returns its top-level nodes in document
// order. An empty fragment yields no nodes. A repeated attribute keeps only
// its first occurrence, as browsers do.
func (p *Parser) ParseFragment(src string) ([]*html.Node, error) {
	nodes, err := html.ParseFragment(strings.NewReader(src), p.context)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML fragment: %w", err)
	}
	for _, n := range nodes {
		dropDuplicateAttrs(n)
	}
	return nodes, nil
}

func dropDuplicateAttrs(n *html.Node) {
	if n.Type == html.ElementNode && len(n.Attr) > 1 {
		seen := make(map[string]bool, len(n.Attr))
		kept := n.Attr[:0]
		for _, a := range n.Attr {
			name := QualifiedName(a)
			if seen[name] {
				continue
			}
			seen[name] = true
			kept = append(kept, a)
		}
		n.Attr = kept
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		dropDuplicateAttrs(c)
	}
}

// KindOf reports what kind of node n is.
func KindOf(n *html.Node) NodeKind {
	switch n.Type {
	case html.ElementNode:
		return Element
	case html.TextNode:
		return Text
	case html.CommentNode:
		return Comment
	case html.DoctypeNode, html.DocumentNode:
		return DocumentType
	default:
		return Unknown
	}
}

// QualifiedName returns the attribute name as written in the source, with
// any foreign namespace prefix restored (xlink:href, xmlns:xlink).
func QualifiedName(a html.Attribute) string {
	if a.Namespace == "" {
		return a.Key
	}
	return a.Namespace + ":" + a.Key
}

// TextContent concatenates the direct text children of n, skipping
// elements and comments.
func TextContent(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}
