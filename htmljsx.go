// Package htmljsx converts HTML fragments into JSX.
//
// Attribute names are mapped to their React spelling, boolean and numeric
// attributes become expressions, inline styles become style objects and
// inline event handlers become functions. Brace-delimited merge tags such as
// {{ name }} or {% if x %} are kept as comments so they survive the
// conversion without being evaluated.
//
//	out, err := htmljsx.Convert(`<label for="name" class="title">Name</label>`)
//	// <label htmlFor="name" className="title">Name</label>
package htmljsx

import (
	"fmt"
	"io"
	"strings"

	"github.com/livefir/htmljsx/internal/builder"
	"github.com/livefir/htmljsx/internal/markup"
	"github.com/livefir/htmljsx/jsx"
)

// Config holds conversion options
type Config struct {
	Minify         bool   // Collapse insignificant whitespace before converting
	MaxDepth       int    // Element nesting limit, 0 disables the check
	MergeTagMarker string // Prefix of comments that hold merge tags
}

// Option is a functional option for configuring a Converter
type Option func(*Config)

// WithMinify collapses insignificant whitespace before conversion.
func WithMinify(enabled bool) Option {
	return func(c *Config) {
		c.Minify = enabled
	}
}

// WithMaxDepth sets the element nesting limit. Zero disables it.
func WithMaxDepth(depth int) Option {
	return func(c *Config) {
		c.MaxDepth = depth
	}
}

// WithMergeTagMarker sets the prefix written in front of merge tags kept as
// comments.
func WithMergeTagMarker(marker string) Option {
	return func(c *Config) {
		c.MergeTagMarker = marker
	}
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		MaxDepth:       builder.DefaultMaxDepth,
		MergeTagMarker: builder.DefaultMergeTagMarker,
	}
}

// Converter converts HTML fragments with a fixed configuration. It is safe
// for concurrent use.
type Converter struct {
	config Config
	parser *markup.Parser
}

// Result is a conversion together with what it had to degrade.
type Result struct {
	JSX string

	// HandlerFallbacks counts inline event handlers that did not parse and
	// were kept as annotated literals.
	HandlerFallbacks int
}

// New creates a Converter with the given options.
func New(opts ...Option) *Converter {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Converter{
		config: config,
		parser: markup.NewParser(),
	}
}

// Config returns the converter's configuration.
func (c *Converter) Config() Config {
	return c.config
}

// Transform parses src and returns the JSX tree without printing it.
func (c *Converter) Transform(src string) (jsx.Node, error) {
	node, _, err := c.transform(src)
	return node, err
}

// Convert converts src to JSX source.
func (c *Converter) Convert(src string) (string, error) {
	res, err := c.Render(src)
	if err != nil {
		return "", err
	}
	return res.JSX, nil
}

// Render converts src and reports handler fallbacks alongside the output.
func (c *Converter) Render(src string) (*Result, error) {
	node, fallbacks, err := c.transform(src)
	if err != nil {
		return nil, err
	}

	out, err := jsx.Print(node)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}

	return &Result{JSX: out, HandlerFallbacks: fallbacks}, nil
}

func (c *Converter) transform(src string) (jsx.Node, int, error) {
	src = strings.TrimSpace(src)
	if c.config.Minify {
		src = minifyHTML(src)
	}

	nodes, err := c.parser.ParseFragment(src)
	if err != nil {
		return nil, 0, err
	}

	b := &builder.Builder{
		MaxDepth:       c.config.MaxDepth,
		MergeTagMarker: c.config.MergeTagMarker,
	}
	node, err := b.Root(nodes)
	if err != nil {
		return nil, 0, err
	}
	return node, b.HandlerFallbacks, nil
}

// ConvertReader reads HTML from r and writes the JSX to w.
func (c *Converter) ConvertReader(r io.Reader, w io.Writer) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read HTML: %w", err)
	}

	out, err := c.Convert(string(src))
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("failed to write JSX: %w", err)
	}
	return nil
}

// Convert converts src to JSX source using a one-off Converter.
func Convert(src string, opts ...Option) (string, error) {
	return New(opts...).Convert(src)
}

// Transform returns the JSX tree for src using a one-off Converter.
func Transform(src string, opts ...Option) (jsx.Node, error) {
	return New(opts...).Transform(src)
}

// ConvertReader converts HTML read from r and writes the JSX to w.
func ConvertReader(r io.Reader, w io.Writer, opts ...Option) error {
	return New(opts...).ConvertReader(r, w)
}
