package htmljsx

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/livefir/htmljsx/jsx"
)

const heroiconPath = "M4.26 10.147a60.436 60.436 0 00-.491 6.347A48.627 48.627 0 0112 20.904a48.627 48.627 0 018.232-4.41 60.46 60.46 0 00-.491-6.347m-15.482 0a50.57 50.57 0 00-2.658-.813A59.905 59.905 0 0112 3.493a59.902 59.902 0 0110.399 5.84c-.896.248-1.783.52-2.658.814m-15.482 0A50.697 50.697 0 0112 13.489a50.702 50.702 0 017.74-3.342M6.75 15a.75.75 0 100-1.5.75.75 0 000 1.5zm0 0v-3.675A55.378 55.378 0 0112 8.443m-7.007 11.55A5.981 5.981 0 006.75 15.75v-1.5"

const avatarURL = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "regular HTML",
			html: `<h1>Hello World!</h1>`,
			want: `<h1>Hello World!</h1>`,
		},
		{
			name: "comments",
			html: "\n    <h1>\n      <!-- This is a comment. -->\n      Hello World!\n    </h1>\n  ",
			want: "<h1>\n      { /* This is a comment. */ }\n      Hello World!\n    </h1>",
		},
		{
			name: "only text",
			html: `Hello World!`,
			want: `"Hello World!"`,
		},
		{
			name: "only comment",
			html: `<!-- Hello World! -->`,
			want: `{ /* Hello World! */ }`,
		},
		{
			name: "singular elements",
			html: `<h1>Hello<br />World!</h1>`,
			want: `<h1>Hello<br />World!</h1>`,
		},
		{
			name: "empty elements self-close",
			html: `<div></div>`,
			want: `<div />`,
		},
		{
			name: "class to className",
			html: `<h1 class="heading-1">Hello World!</h1>`,
			want: `<h1 className="heading-1">Hello World!</h1>`,
		},
		{
			name: "for to htmlFor",
			html: `<h1 for="heading-1">Hello World!</h1>`,
			want: `<h1 htmlFor="heading-1">Hello World!</h1>`,
		},
		{
			name: "style with px values",
			html: "<h1 style=\"padding: 10px; background-color: red;\">\n    Hello World!\n  </h1>",
			want: "<h1 style={{ padding: 10, backgroundColor: \"red\" }}>\n    Hello World!\n  </h1>",
		},
		{
			name: "px kept for line-height",
			html: "<h1 style=\"line-height: 14px; font-size: 16px;\">\n    Hello World!\n  </h1>",
			want: "<h1 style={{ lineHeight: \"14px\", fontSize: 16 }}>\n    Hello World!\n  </h1>",
		},
		{
			name: "adjacent elements",
			html: "\n    <h1>Hello</h1>\n    My\n    <h2>World!</h2>\n  ",
			want: "<><h1>Hello</h1>\n    My\n    <h2>World!</h2></>",
		},
		{
			name: "tabindex to number",
			html: `<h1 tabindex="0">Hello World!</h1>`,
			want: `<h1 tabIndex={0}>Hello World!</h1>`,
		},
		{
			name: "contenteditable to boolean",
			html: `<h1 contenteditable>Hello World!</h1>`,
			want: `<h1 contentEditable>Hello World!</h1>`,
		},
		{
			name: "value keeps true",
			html: `<h1 value="true">Hello World!</h1>`,
			want: `<h1 value={true}>Hello World!</h1>`,
		},
		{
			name: "disabled keeps true",
			html: `<h1 disabled="true">Hello World!</h1>`,
			want: `<h1 disabled={true}>Hello World!</h1>`,
		},
		{
			name: "playsinline to boolean",
			html: `<h1 playsinline="playsinline">Hello World!</h1>`,
			want: `<h1 playsInline>Hello World!</h1>`,
		},
		{
			name: "checked keeps true",
			html: `<h1 checked="true">Hello World!</h1>`,
			want: `<h1 checked={true}>Hello World!</h1>`,
		},
		{
			name: "repeated attribute keeps the first",
			html: `<div class="a" class="b"></div>`,
			want: `<div className="a" />`,
		},
		{
			name: "escaped attribute string",
			html: `<abbr title='say "hi"'>hi</abbr>`,
			want: `<abbr title={"say \"hi\""}>hi</abbr>`,
		},
		{
			name: "style keeps value text",
			html: `<p style="font-family: 'Open Sans', sans-serif; color: red !important">x</p>`,
			want: `<p style={{ fontFamily: "'Open Sans', sans-serif", color: "red !important" }}>x</p>`,
		},
		{
			name: "cols to number",
			html: `<h1 cols="12">Hello World!</h1>`,
			want: `<h1 cols={12}>Hello World!</h1>`,
		},
		{
			name: "svg attributes",
			html: "<svg\n    xmlns=\"http://www.w3.org/2000/svg\"\n    fill=\"none\"\n    viewBox=\"0 0 24 24\"\n    stroke-width=\"1.5\"\n    stroke=\"currentColor\"\n    class=\"w-6 h-6\"\n  >\n    <path\n      stroke-linecap=\"round\"\n      stroke-linejoin=\"round\"\n      d=\"" + heroiconPath + "\"\n    />\n  </svg>",
			want: "<svg xmlns=\"http://www.w3.org/2000/svg\" fill=\"none\" viewBox=\"0 0 24 24\" strokeWidth={1.5} stroke=\"currentColor\" className=\"w-6 h-6\">\n    <path strokeLinecap=\"round\" strokeLinejoin=\"round\" d=\"" + heroiconPath + "\" />\n  </svg>",
		},
		{
			name: "onclick with an empty call",
			html: "<button onclick=\"handleButtonClick()\">\n    Button\n  </button>",
			want: "<button onClick={handleButtonClick}>\n    Button\n  </button>",
		},
		{
			name: "onclick with a statement",
			html: "<button onclick=\"window.scrollY = 0\">\n    Button\n  </button>",
			want: "<button onClick={event => { window.scrollY = 0; }}>\n    Button\n  </button>",
		},
		{
			name: "onclick with invalid code",
			html: "<button onclick=\"this is invalid code.\">\n    Button\n  </button>",
			want: "<button onClick={event => { // TODO: Fix event handler code\n`this is invalid code.`; }}>\n    Button\n  </button>",
		},
		{
			name: "lowercased attributes",
			html: `<menu contextmenu="share"></menu>`,
			want: `<menu contextMenu="share" />`,
		},
		{
			name: "two adjacent comments",
			html: `<!-- Hello --><!-- World! -->`,
			want: `<>{ /* Hello */ }{ /* World! */ }</>`,
		},
		{
			name: "style element body",
			html: "<style>\n    body {\n      background: red;\n    }\n  </style>",
			want: "<style>{`\n    body {\n      background: red;\n    }\n  `}</style>",
		},
		{
			name: "inner script element",
			html: "<div>\n    <script>\n      console.log(\"Hello World!\");\n    </script>\n  </div>",
			want: "<div>\n    <script>{`\n      console.log(\"Hello World!\");\n    `}</script>\n  </div>",
		},
		{
			name: "number attribute that is not a number",
			html: `<h1 tabindex="wronginput">Hello World!</h1>`,
			want: `<h1 tabIndex="wronginput">Hello World!</h1>`,
		},
		{
			name: "svg boolean attribute",
			html: `<path focusable="true"></path>`,
			want: `<path focusable />`,
		},
		{
			name: "false boolean attribute",
			html: `<input checked="false">`,
			want: `<input checked={false} />`,
		},
		{
			name: "border to number",
			html: `<table border="0"></table>`,
			want: `<table border={0} />`,
		},
		{
			name: "boolean attribute with other value",
			html: "<a href=\"example.com\" download=\"installer.exe\"\n    >Download</a\n  >",
			want: `<a href="example.com" download="installer.exe">Download</a>`,
		},
		{
			name: "adjacent script elements",
			html: "\n    <script>\n      window.Example_Config = window.Example_Config || [];\n      window.Example_Config.push({ key: \"XXXXXXXX\" });\n    </script>\n    <script async=\"\" src=\"https://widget.example.co/v2/widget.js\"></script>\n  ",
			want: "<><script>{`\n      window.Example_Config = window.Example_Config || [];\n      window.Example_Config.push({ key: \"XXXXXXXX\" });\n    `}</script>\n    <script async src=\"https://widget.example.co/v2/widget.js\" /></>",
		},
		{
			name: "label and input",
			html: "\n    <!-- Hello world -->\n    <div class=\"awesome\" style=\"border: 1px solid red\">\n      <label for=\"name\">Enter your name: </label>\n      <input type=\"text\" id=\"name\" />\n    </div>\n    <p>Enter your HTML here</p>\n  ",
			want: "<>{ /* Hello world */ }\n    <div className=\"awesome\" style={{ border: \"1px solid red\" }}>\n      <label htmlFor=\"name\">Enter your name: </label>\n      <input type=\"text\" id=\"name\" />\n    </div>\n    <p>Enter your HTML here</p></>",
		},
		{
			name: "tailwind sample",
			html: "\n    <button\n      class=\"max-w-xs bg-gray-800 rounded-full flex items-center text-sm focus:outline-none focus:ring-2 focus:ring-offset-2 focus:ring-offset-gray-800 focus:ring-white\"\n      id=\"user-menu\"\n      aria-haspopup=\"true\"\n    >\n      <span class=\"sr-only\">Open user menu</span>\n      <img\n        class=\"h-8 w-8 rounded-full\"\n        src=\"" + avatarURL + "\"\n        alt=\"\"\n      />\n    </button>\n  ",
			want: "<button className=\"max-w-xs bg-gray-800 rounded-full flex items-center text-sm focus:outline-none focus:ring-2 focus:ring-offset-2 focus:ring-offset-gray-800 focus:ring-white\" id=\"user-menu\" aria-haspopup=\"true\">\n      <span className=\"sr-only\">Open user menu</span>\n      <img className=\"h-8 w-8 rounded-full\" src=\"" + avatarURL + "\" alt=\"\" />\n    </button>",
		},
		{
			name: "merge tags",
			html: "\n    {% if email %}\n    <button class=\"max-w-8\">\n      <span>Send Email</span>\n    </button>\n    {% else %}\n    <button class=\"max-w-8 bg-blue\"><span>Call</span></button>\n    {% /if %}\n  ",
			want: "<>{ /*$merge: {% if email %}*/ }\n    <button className=\"max-w-8\">\n      <span>Send Email</span>\n    </button>\n    { /*$merge: {% else %}*/ }\n    <button className=\"max-w-8 bg-blue\"><span>Call</span></button>\n    { /*$merge: {% /if %}*/ }</>",
		},
		{
			name: "merge tag at top level",
			html: `{{ email | to_lower() }}`,
			want: `{ /*$merge: {{ email | to_lower() }}*/ }`,
		},
		{
			name: "entities kept in JSX text",
			html: "<span\n    >This has&nbsp;a non-breaking space and a &lt; symbol</span\n  >",
			want: `<span>This has&nbsp;a non-breaking space and a &lt; symbol</span>`,
		},
		{
			name: "no entities in string literals",
			html: `some&nbsp;text`,
			want: `"some\xA0text"`,
		},
		{
			name: "no entities in merge tag comments",
			html: "your email is \"{{ email ++ \"\u00a0\" }}\"",
			want: "<>your email is &quot;{ /*$merge: {{ email ++ \"\u00a0\" }}*/ }&quot;</>",
		},
		{
			name: "no entities in template literals",
			html: `<style>background-color: blue;</style>`,
			want: "<style>{`background-color: blue;`}</style>",
		},
		{
			name: "css variables",
			html: "<div\n    class=\"container\"\n    style=\"width: 12px; height: 30px; --bg-color: red;\"\n  />",
			want: `<div className="container" style={{ width: 12, height: 30, "--bg-color": "red" }} />`,
		},
		{
			name: "empty value attribute",
			html: `<input value="" />`,
			want: `<input value="" />`,
		},
		{
			name: "end-to-end comment child",
			html: `<div class="a" tabindex="2"><!-- hi --></div>`,
			want: `<div className="a" tabIndex={2}>{ /* hi */ }</div>`,
		},
		{
			name: "empty input",
			html: "  \n ",
			want: "<></>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.html)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Convert() mismatch (-want +got):\n%s", cmp.Diff(tt.want, got))
			}
			if strings.HasSuffix(got, ";") {
				t.Errorf("Convert() output ends with a semicolon: %q", got)
			}
		})
	}
}

func TestConvert_Options(t *testing.T) {
	t.Run("merge tag marker", func(t *testing.T) {
		got, err := Convert("{{ name }}", WithMergeTagMarker("tag: "))
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if want := "{ /*tag: {{ name }}*/ }"; got != want {
			t.Errorf("Convert() = %s, want %s", got, want)
		}
	})

	t.Run("max depth", func(t *testing.T) {
		src := strings.Repeat("<span>", 30) + "x" + strings.Repeat("</span>", 30)
		if _, err := Convert(src, WithMaxDepth(10)); !errors.Is(err, ErrMaxDepth) {
			t.Errorf("Convert() error = %v, want ErrMaxDepth", err)
		}
		if _, err := Convert(src, WithMaxDepth(0)); err != nil {
			t.Errorf("Convert() without a limit error = %v", err)
		}
	})

	t.Run("minify", func(t *testing.T) {
		src := "<div>\n  <p>\n    hello\n  </p>\n  <!-- note -->\n</div>"
		got, err := Convert(src, WithMinify(true))
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		plain, err := Convert(src)
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if len(got) >= len(plain) {
			t.Errorf("Convert() with minify = %q, not shorter than %q", got, plain)
		}
		if !strings.Contains(got, "hello") {
			t.Errorf("Convert() with minify lost text: %q", got)
		}
		if !strings.Contains(got, "{ /* note */ }") {
			t.Errorf("Convert() with minify dropped the comment: %q", got)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		cfg := New().Config()
		if cfg.MaxDepth != 512 || cfg.MergeTagMarker != "$merge: " || cfg.Minify {
			t.Errorf("New().Config() = %+v", cfg)
		}
	})
}

func TestConverter_Render(t *testing.T) {
	c := New()
	res, err := c.Render(`<form onsubmit="return validate()"><button onclick="go(">x</button></form>`)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if res.HandlerFallbacks != 1 {
		t.Errorf("HandlerFallbacks = %d, want 1", res.HandlerFallbacks)
	}
	if !strings.Contains(res.JSX, "onSubmit={event => { return validate(); }}") {
		t.Errorf("Render() JSX = %s", res.JSX)
	}

	res, err = c.Render(`<p>fine</p>`)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if res.HandlerFallbacks != 0 {
		t.Errorf("HandlerFallbacks = %d, want 0 on a fresh conversion", res.HandlerFallbacks)
	}
}

func TestTransform(t *testing.T) {
	node, err := Transform(`<p class="x">hi</p>`)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	want := &jsx.Element{
		Tag:      "p",
		Attrs:    []jsx.Attr{{Name: "className", Value: jsx.String{Value: "x"}}},
		Children: []jsx.Node{&jsx.Text{Value: "hi"}},
	}
	if diff := cmp.Diff(want, node); diff != "" {
		t.Errorf("Transform() mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertReader(t *testing.T) {
	var out bytes.Buffer
	if err := ConvertReader(strings.NewReader(`<label for="a">A</label>`), &out); err != nil {
		t.Fatalf("ConvertReader() error = %v", err)
	}
	if want := `<label htmlFor="a">A</label>`; out.String() != want {
		t.Errorf("ConvertReader() wrote %s, want %s", out.String(), want)
	}
}

func TestSerializationError(t *testing.T) {
	inner := errors.New("boom")
	err := error(&SerializationError{Err: inner})
	if !errors.Is(err, inner) {
		t.Error("SerializationError does not unwrap")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Error() = %q", err.Error())
	}
}

// Random paragraphs of words and merge tags always convert, and every word
// survives into the output.
func TestConvert_RandomText(t *testing.T) {
	faker := gofakeit.New(2024)
	c := New()

	for i := 0; i < 200; i++ {
		var words []string
		var sb strings.Builder
		for j := 0; j < faker.Number(1, 8); j++ {
			w := faker.Word()
			words = append(words, w)
			if faker.Bool() {
				fmt.Fprintf(&sb, "{{ %s }} ", w)
			} else {
				sb.WriteString(w + " ")
			}
		}
		tag := faker.RandomString([]string{"p", "span", "div", "li"})
		src := fmt.Sprintf("<%s>%s</%s>", tag, sb.String(), tag)

		got, err := c.Convert(src)
		if err != nil {
			t.Fatalf("Convert(%q) error = %v", src, err)
		}
		if !strings.HasPrefix(got, "<"+tag+">") || !strings.HasSuffix(got, "</"+tag+">") {
			t.Errorf("Convert(%q) = %s, want a <%s> element", src, got, tag)
		}
		for _, w := range words {
			if !strings.Contains(got, w) {
				t.Errorf("Convert(%q) = %s, lost word %q", src, got, w)
			}
		}
	}
}
