package jsx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PrintError reports a node the printer cannot render.
type PrintError struct {
	Node Node
	Msg  string
}

func (e *PrintError) Error() string {
	return fmt.Sprintf("jsx: cannot print %T: %s", e.Node, e.Msg)
}

// Print renders n as concise JSX source.
func Print(n Node) (string, error) {
	p := &printer{}
	if err := p.node(n); err != nil {
		return "", err
	}
	return p.sb.String(), nil
}

// PrintAttr renders a single attribute, e.g. `tabIndex={0}`.
func PrintAttr(a Attr) (string, error) {
	p := &printer{}
	if err := p.attr(a); err != nil {
		return "", err
	}
	return p.sb.String(), nil
}

type printer struct {
	sb strings.Builder
}

func (p *printer) node(n Node) error {
	switch t := n.(type) {
	case *Element:
		return p.element(t)
	case *RawTextElement:
		return p.rawTextElement(t)
	case *ExpressionSlot:
		p.sb.WriteString("{ /*")
		p.sb.WriteString(escapeComment(t.Comment))
		p.sb.WriteString("*/ }")
	case *Text:
		p.sb.WriteString(t.Value)
	case *StringLiteral:
		p.sb.WriteString(Quote(t.Value))
	case *Fragment:
		p.sb.WriteString("<>")
		for _, c := range t.Children {
			if err := p.node(c); err != nil {
				return err
			}
		}
		p.sb.WriteString("</>")
	case nil:
		return &PrintError{Node: n, Msg: "nil node"}
	default:
		return &PrintError{Node: n, Msg: "unknown node type"}
	}
	return nil
}

func (p *printer) openTag(n Node, tag string, attrs []Attr) error {
	if tag == "" {
		return &PrintError{Node: n, Msg: "element without a tag name"}
	}
	p.sb.WriteByte('<')
	p.sb.WriteString(tag)
	for _, a := range attrs {
		p.sb.WriteByte(' ')
		if err := p.attr(a); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) element(el *Element) error {
	if err := p.openTag(el, el.Tag, el.Attrs); err != nil {
		return err
	}
	if el.SelfClosing {
		p.sb.WriteString(" />")
		return nil
	}
	p.sb.WriteByte('>')
	for _, c := range el.Children {
		if err := p.node(c); err != nil {
			return err
		}
	}
	p.sb.WriteString("</")
	p.sb.WriteString(el.Tag)
	p.sb.WriteByte('>')
	return nil
}

func (p *printer) rawTextElement(el *RawTextElement) error {
	if err := p.openTag(el, el.Tag, el.Attrs); err != nil {
		return err
	}
	if el.Body == "" {
		p.sb.WriteString(" />")
		return nil
	}
	p.sb.WriteString(">{`")
	p.sb.WriteString(escapeTemplate(el.Body))
	p.sb.WriteString("`}</")
	p.sb.WriteString(el.Tag)
	p.sb.WriteByte('>')
	return nil
}

func (p *printer) attr(a Attr) error {
	if a.Name == "" {
		return &PrintError{Msg: "attribute without a name"}
	}
	p.sb.WriteString(a.Name)
	switch v := a.Value.(type) {
	case nil:
	case String:
		// JSX attribute strings have no escapes, so escaped values go in
		// an expression container.
		q := Quote(v.Value)
		if strings.ContainsRune(q, '\\') {
			p.sb.WriteString("={")
			p.sb.WriteString(q)
			p.sb.WriteByte('}')
			return nil
		}
		p.sb.WriteByte('=')
		p.sb.WriteString(q)
	default:
		p.sb.WriteString("={")
		if err := p.value(v); err != nil {
			return err
		}
		p.sb.WriteByte('}')
	}
	return nil
}

func (p *printer) value(v Value) error {
	switch t := v.(type) {
	case String:
		p.sb.WriteString(Quote(t.Value))
	case Number:
		p.sb.WriteString(FormatNumber(t.Value))
	case Bool:
		p.sb.WriteString(strconv.FormatBool(t.Value))
	case Ident:
		p.sb.WriteString(t.Name)
	case *Object:
		if len(t.Props) == 0 {
			p.sb.WriteString("{}")
			return nil
		}
		p.sb.WriteString("{ ")
		for i, prop := range t.Props {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			if prop.Quoted {
				p.sb.WriteString(Quote(prop.Key))
			} else {
				p.sb.WriteString(prop.Key)
			}
			p.sb.WriteString(": ")
			if err := p.value(prop.Value); err != nil {
				return err
			}
		}
		p.sb.WriteString(" }")
	case *Func:
		p.sb.WriteString(t.Param)
		p.sb.WriteString(" => ")
		if len(t.Body) == 0 {
			p.sb.WriteString("{}")
			return nil
		}
		p.sb.WriteString("{ ")
		for i, st := range t.Body {
			if i > 0 {
				p.sb.WriteByte(' ')
			}
			p.statement(st)
		}
		p.sb.WriteString(" }")
	default:
		return &PrintError{Msg: fmt.Sprintf("unknown attribute value %T", v)}
	}
	return nil
}

func (p *printer) statement(st Statement) {
	switch t := st.(type) {
	case Code:
		p.sb.WriteString(t.Source)
	case FixMe:
		p.sb.WriteString("// ")
		p.sb.WriteString(t.Note)
		p.sb.WriteString("\n`")
		p.sb.WriteString(escapeTemplate(t.Source))
		p.sb.WriteString("`;")
	}
}

// FormatNumber formats f the way JavaScript's Number#toString does for
// finite values.
func FormatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		exp = strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + exp
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Quote returns s as a double-quoted JavaScript string literal. Everything
// outside printable ASCII is escaped.
func Quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case 0:
			if i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '9' {
				sb.WriteString(`\x00`)
			} else {
				sb.WriteString(`\0`)
			}
		default:
			switch {
			case r >= 0x20 && r < 0x7f:
				sb.WriteRune(r)
			case r < 0x100:
				fmt.Fprintf(&sb, `\x%02X`, r)
			case r < 0x10000:
				fmt.Fprintf(&sb, `\u%04X`, r)
			default:
				r -= 0x10000
				fmt.Fprintf(&sb, `\u%04X\u%04X`, 0xD800+(r>>10), 0xDC00+(r&0x3FF))
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// escapeTemplate escapes backticks and `${` that are not already escaped so
// s stays a single template literal with no substitutions.
func escapeTemplate(s string) string {
	var sb strings.Builder
	slashes := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		opens := c == '`' || (c == '$' && i+1 < len(s) && s[i+1] == '{')
		if opens && slashes%2 == 0 {
			sb.WriteByte('\\')
		}
		if c == '\\' {
			slashes++
		} else {
			slashes = 0
		}
		sb.WriteByte(c)
	}
	if slashes%2 == 1 {
		sb.WriteByte('\\')
	}
	return sb.String()
}

func escapeComment(s string) string {
	return strings.ReplaceAll(s, "*/", "*\\/")
}
