// Package builder turns a parsed HTML fragment into a JSX tree.
package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/livefir/htmljsx/internal/attrs"
	"github.com/livefir/htmljsx/internal/entity"
	"github.com/livefir/htmljsx/internal/markup"
	"github.com/livefir/htmljsx/internal/mergetag"
	"github.com/livefir/htmljsx/jsx"
	"golang.org/x/net/html"
)

const (
	// DefaultMaxDepth bounds element nesting.
	DefaultMaxDepth = 512

	// DefaultMergeTagMarker prefixes merge tags kept as comments, so they
	// can be told apart from ordinary HTML comments.
	DefaultMergeTagMarker = "$merge: "
)

// ErrMaxDepth is returned when elements nest deeper than the builder allows.
var ErrMaxDepth = errors.New("markup nested too deeply")

// StructuralError reports a node that has no JSX representation.
type StructuralError struct {
	Kind markup.NodeKind
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("cannot represent %s node in JSX", e.Kind)
}

// rawTextTags hold code that is emitted as an untouched template literal.
var rawTextTags = map[string]bool{
	"script": true,
	"style":  true,
}

// Builder converts parsed nodes. A Builder is not safe for concurrent use;
// it accumulates HandlerFallbacks across calls.
type Builder struct {
	MaxDepth       int
	MergeTagMarker string

	// HandlerFallbacks counts event handlers that could not be parsed and
	// were kept as annotated literals.
	HandlerFallbacks int
}

// New returns a Builder with default settings.
func New() *Builder {
	return &Builder{
		MaxDepth:       DefaultMaxDepth,
		MergeTagMarker: DefaultMergeTagMarker,
	}
}

// Root builds the JSX tree for the top-level nodes of a fragment. A single
// node is converted in its top-level form; zero or several nodes are wrapped
// in a fragment.
func (b *Builder) Root(nodes []*html.Node) (jsx.Node, error) {
	if len(nodes) == 1 {
		return b.TopLevel(nodes[0])
	}

	frag := &jsx.Fragment{}
	for _, n := range nodes {
		children, err := b.child(n, 1)
		if err != nil {
			return nil, err
		}
		frag.Children = append(frag.Children, children...)
	}
	return frag, nil
}

// TopLevel converts n as the only node of a fragment. Text stays a plain
// string literal rather than entity-encoded JSX text.
func (b *Builder) TopLevel(n *html.Node) (jsx.Node, error) {
	switch kind := markup.KindOf(n); kind {
	case markup.Comment:
		return &jsx.ExpressionSlot{Comment: n.Data}, nil
	case markup.Text:
		parts := mergetag.Split(n.Data)
		if len(parts) == 1 {
			if parts[0].Kind == mergetag.Literal {
				return &jsx.StringLiteral{Value: parts[0].Value}, nil
			}
			return b.mergeTag(parts[0].Value), nil
		}
		return &jsx.Fragment{Children: b.textParts(parts)}, nil
	case markup.Element:
		return b.element(n, 1)
	default:
		return nil, &StructuralError{Kind: kind}
	}
}

// child converts n in child position. Text may fan out into several nodes
// when it contains merge tags.
func (b *Builder) child(n *html.Node, depth int) ([]jsx.Node, error) {
	switch kind := markup.KindOf(n); kind {
	case markup.Comment:
		return []jsx.Node{&jsx.ExpressionSlot{Comment: n.Data}}, nil
	case markup.Text:
		return b.textParts(mergetag.Split(n.Data)), nil
	case markup.Element:
		el, err := b.element(n, depth)
		if err != nil {
			return nil, err
		}
		return []jsx.Node{el}, nil
	default:
		return nil, &StructuralError{Kind: kind}
	}
}

func (b *Builder) element(n *html.Node, depth int) (jsx.Node, error) {
	if b.MaxDepth > 0 && depth > b.MaxDepth {
		return nil, fmt.Errorf("%w: more than %d levels at <%s>", ErrMaxDepth, b.MaxDepth, n.Data)
	}

	converted := attrs.ConvertAll(n.Attr)
	for _, a := range converted {
		if attrs.IsFallback(a.Value) {
			b.HandlerFallbacks++
		}
	}

	if rawTextTags[n.Data] {
		body := markup.TextContent(n)
		if strings.TrimSpace(body) == "" {
			body = ""
		}
		return &jsx.RawTextElement{Tag: n.Data, Attrs: converted, Body: body}, nil
	}

	el := &jsx.Element{
		Tag:         n.Data,
		Attrs:       converted,
		SelfClosing: n.FirstChild == nil,
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children, err := b.child(c, depth+1)
		if err != nil {
			return nil, err
		}
		el.Children = append(el.Children, children...)
	}
	return el, nil
}

func (b *Builder) textParts(parts []mergetag.Part) []jsx.Node {
	nodes := make([]jsx.Node, 0, len(parts))
	for _, p := range parts {
		if p.Kind == mergetag.Dynamic {
			nodes = append(nodes, b.mergeTag(p.Value))
			continue
		}
		nodes = append(nodes, &jsx.Text{Value: entity.Encode(p.Value)})
	}
	return nodes
}

func (b *Builder) mergeTag(tag string) *jsx.ExpressionSlot {
	return &jsx.ExpressionSlot{Comment: b.MergeTagMarker + tag}
}
