package attrs

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/livefir/htmljsx/jsx"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

var (
	pxValue     = regexp.MustCompile(`^(\d+)px$`)
	cssVariable = regexp.MustCompile(`^--\w+`)
)

// Declaration is one property of an inline style attribute.
type Declaration struct {
	Property string
	Value    string
}

// ParseStyle splits an inline style attribute into its declarations, in
// source order. Values keep their source text, trimmed and with comments
// removed. Declarations without a property name and colon are skipped.
func ParseStyle(style string) []Declaration {
	var decls []Declaration
	var (
		prop    string
		value   strings.Builder
		inValue bool
		skip    bool
		depth   int
	)

	flush := func() {
		if inValue && !skip {
			decls = append(decls, Declaration{Property: prop, Value: strings.TrimSpace(value.String())})
		}
		prop, inValue, skip, depth = "", false, false, 0
		value.Reset()
	}

	l := css.NewLexer(parse.NewInputString(style))
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			flush()
			return decls
		case css.CommentToken:
			continue
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken, css.LeftBraceToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken, css.RightBraceToken:
			if depth > 0 {
				depth--
			}
		case css.SemicolonToken:
			if depth == 0 {
				flush()
				continue
			}
		}

		if skip {
			continue
		}
		if inValue {
			value.Write(data)
			continue
		}

		switch tt {
		case css.WhitespaceToken:
		case css.IdentToken:
			if prop != "" {
				skip = true
				continue
			}
			prop = strings.ToLower(string(data))
		case css.CustomPropertyNameToken:
			if prop != "" {
				skip = true
				continue
			}
			prop = string(data)
		case css.ColonToken:
			if prop == "" {
				skip = true
				continue
			}
			inValue = true
		default:
			skip = true
		}
	}
}

// ConvertStyle turns an inline style attribute into a style object. Plain
// pixel values become numbers unless the property needs its unit.
func ConvertStyle(style string) *jsx.Object {
	obj := &jsx.Object{}
	for _, d := range ParseStyle(style) {
		prop := jsx.Prop{Key: d.Property}
		if cssVariable.MatchString(d.Property) {
			prop.Quoted = true
		} else {
			prop.Key = Camelize(d.Property)
		}

		prop.Value = jsx.String{Value: d.Value}
		if m := pxValue.FindStringSubmatch(d.Value); m != nil && !styleDontStripPx[strings.ToLower(d.Property)] {
			if n, err := strconv.ParseFloat(m[1], 64); err == nil {
				prop.Value = jsx.Number{Value: n}
			}
		}
		obj.Props = append(obj.Props, prop)
	}
	return obj
}

// Camelize turns kebab-case and colon:case into camelCase. Only lower-case
// letters following a separator are folded.
func Camelize(s string) string {
	if !strings.ContainsAny(s, "-:") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c == '-' || c == ':') && i+1 < len(s) && s[i+1] >= 'a' && s[i+1] <= 'z' {
			sb.WriteByte(s[i+1] - 'a' + 'A')
			i++
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
