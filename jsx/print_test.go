package jsx

import (
	"errors"
	"testing"
)

func TestPrint(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "self-closing element without attributes",
			node: &Element{Tag: "div", SelfClosing: true},
			want: "<div />",
		},
		{
			name: "element with text",
			node: &Element{Tag: "h1", Children: []Node{&Text{Value: "Hello World!"}}},
			want: "<h1>Hello World!</h1>",
		},
		{
			name: "attribute kinds",
			node: &Element{
				Tag: "input",
				Attrs: []Attr{
					{Name: "className", Value: String{Value: "a"}},
					{Name: "tabIndex", Value: Number{Value: 2}},
					{Name: "disabled"},
					{Name: "checked", Value: Bool{Value: false}},
					{Name: "onClick", Value: Ident{Name: "handle"}},
				},
				SelfClosing: true,
			},
			want: `<input className="a" tabIndex={2} disabled checked={false} onClick={handle} />`,
		},
		{
			name: "style object",
			node: &Element{
				Tag: "h1",
				Attrs: []Attr{{Name: "style", Value: &Object{Props: []Prop{
					{Key: "padding", Value: Number{Value: 10}},
					{Key: "backgroundColor", Value: String{Value: "red"}},
					{Key: "--bg-color", Quoted: true, Value: String{Value: "red"}},
				}}}},
				SelfClosing: true,
			},
			want: `<h1 style={{ padding: 10, backgroundColor: "red", "--bg-color": "red" }} />`,
		},
		{
			name: "empty style object",
			node: &Element{Tag: "p", Attrs: []Attr{{Name: "style", Value: &Object{}}}, SelfClosing: true},
			want: `<p style={{}} />`,
		},
		{
			name: "arrow function",
			node: &Element{
				Tag:         "button",
				Attrs:       []Attr{{Name: "onClick", Value: &Func{Param: "event", Body: []Statement{Code{Source: "window.scrollY = 0;"}}}}},
				SelfClosing: true,
			},
			want: `<button onClick={event => { window.scrollY = 0; }} />`,
		},
		{
			name: "fix-me statement",
			node: &Element{
				Tag: "button",
				Attrs: []Attr{{Name: "onClick", Value: &Func{Param: "event", Body: []Statement{
					FixMe{Note: "TODO: Fix event handler code", Source: "this is invalid code."},
				}}}},
				SelfClosing: true,
			},
			want: "<button onClick={event => { // TODO: Fix event handler code\n`this is invalid code.`; }} />",
		},
		{
			name: "comment slot",
			node: &ExpressionSlot{Comment: " Hello World! "},
			want: "{ /* Hello World! */ }",
		},
		{
			name: "fragment",
			node: &Fragment{Children: []Node{&ExpressionSlot{Comment: " Hello "}, &ExpressionSlot{Comment: " World! "}}},
			want: "<>{ /* Hello */ }{ /* World! */ }</>",
		},
		{
			name: "empty fragment",
			node: &Fragment{},
			want: "<></>",
		},
		{
			name: "raw text element with body",
			node: &RawTextElement{Tag: "style", Body: "background-color: blue;"},
			want: "<style>{`background-color: blue;`}</style>",
		},
		{
			name: "raw text element without body",
			node: &RawTextElement{Tag: "script", Attrs: []Attr{{Name: "async"}}},
			want: "<script async />",
		},
		{
			name: "raw body with backticks and substitutions",
			node: &RawTextElement{Tag: "script", Body: "let a = `x${y}`;"},
			want: "<script>{`let a = \\`x\\${y}\\`;`}</script>",
		},
		{
			name: "top-level string literal",
			node: &StringLiteral{Value: "some\u00a0text"},
			want: `"some\xA0text"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Print(tt.node)
			if err != nil {
				t.Fatalf("Print() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Print() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrint_Errors(t *testing.T) {
	tests := []struct {
		name string
		node Node
	}{
		{"nil node", nil},
		{"missing tag", &Element{}},
		{"nested missing tag", &Fragment{Children: []Node{&Element{Tag: "p", Children: []Node{&Element{}}}}}},
		{"attribute without name", &Element{Tag: "p", Attrs: []Attr{{}}, SelfClosing: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Print(tt.node)
			var pe *PrintError
			if !errors.As(err, &pe) {
				t.Fatalf("Print() error = %v, want *PrintError", err)
			}
		})
	}
}

func TestPrintAttr(t *testing.T) {
	tests := []struct {
		name string
		attr Attr
		want string
	}{
		{"number", Attr{Name: "strokeWidth", Value: Number{Value: 1.5}}, "strokeWidth={1.5}"},
		{"plain string", Attr{Name: "title", Value: String{Value: "a'b"}}, `title="a'b"`},
		{"double quote", Attr{Name: "title", Value: String{Value: `a"b`}}, `title={"a\"b"}`},
		{"backslash", Attr{Name: "pattern", Value: String{Value: `\d+`}}, `pattern={"\\d+"}`},
		{"newline", Attr{Name: "class", Value: String{Value: "a\nb"}}, `class={"a\nb"}`},
		{"non-ascii", Attr{Name: "alt", Value: String{Value: "caf\u00e9"}}, `alt={"caf\xE9"}`},
		{"bare", Attr{Name: "hidden"}, "hidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PrintAttr(tt.attr)
			if err != nil {
				t.Fatalf("PrintAttr() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("PrintAttr() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{12, "12"},
		{-1, "-1"},
		{1.5, "1.5"},
		{0.25, "0.25"},
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-7"},
		{123456789, "123456789"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{"a\\b", `"a\\b"`},
		{"line\nbreak\ttab", `"line\nbreak\ttab"`},
		{"\u00a0", `"\xA0"`},
		{"\u00e9", `"\xE9"`},
		{"\u2014", `"\u2014"`},
		{"\U0001F600", `"\uD83D\uDE00"`},
		{"\x00x", `"\0x"`},
		{"\x001", `"\x001"`},
		{"a&b<c>", `"a&b<c>"`},
	}

	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.want {
			t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
