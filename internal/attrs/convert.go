// Package attrs converts HTML attributes into JSX attributes.
package attrs

import (
	"strings"

	"github.com/livefir/htmljsx/internal/markup"
	"github.com/livefir/htmljsx/jsx"
	"golang.org/x/net/html"
)

// ConvertAll converts attrs in order, one output attribute per input.
func ConvertAll(attrs []html.Attribute) []jsx.Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]jsx.Attr, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, Convert(markup.QualifiedName(a), a.Val))
	}
	return out
}

// Convert maps one HTML attribute onto its JSX form. The first matching rule
// wins:
//
//  1. style becomes a style object
//  2. exact renames (class, for, ...)
//  3. event handlers become functions
//  4. case-sensitive SVG booleans
//  5. booleans
//  6. numbers
//  7. kebab-case SVG presentation attributes
//  8. mixed-case names written in lowercase
//
// Anything else passes through as a string.
func Convert(name, value string) jsx.Attr {
	if name == "style" {
		return jsx.Attr{Name: name, Value: ConvertStyle(value)}
	}

	if renamed, ok := renamedAttributes[name]; ok {
		return stringAttr(renamed, value)
	}

	if handler, ok := eventHandlers[name]; ok {
		return jsx.Attr{Name: handler, Value: Functionize(value)}
	}

	if attr, ok := svgBooleans[name]; ok {
		return Booleanize(attr, value, false)
	}

	if attr, ok := booleans[name]; ok {
		return Booleanize(attr, value, keepTrueLiteral[attr])
	}

	if attr, ok := numbers[name]; ok {
		return Numberize(attr, value)
	}

	if svg, ok := svgCamelized[name]; ok {
		camel := Camelize(name)
		if svg.numeric {
			return Numberize(camel, value)
		}
		return stringAttr(camel, value)
	}

	if attr, ok := lowercased[name]; ok {
		return stringAttr(attr, value)
	}

	return stringAttr(name, value)
}

// Booleanize coerces the value of a boolean-like attribute. Empty values,
// "true" and the attribute's own name mean true, rendered as the bare
// shorthand unless keepLiteral asks for name={true}. "false" becomes
// name={false}. Other values are kept as strings, as is an empty value
// attribute.
func Booleanize(name, value string, keepLiteral bool) jsx.Attr {
	if name == "value" && value == "" {
		return stringAttr(name, value)
	}

	switch value {
	case "", "true", strings.ToLower(name):
		if keepLiteral {
			return jsx.Attr{Name: name, Value: jsx.Bool{Value: true}}
		}
		return jsx.Attr{Name: name}
	case "false":
		return jsx.Attr{Name: name, Value: jsx.Bool{Value: false}}
	}
	return stringAttr(name, value)
}

// Numberize renders value as a number when it is a finite numeric literal
// and as the original string otherwise.
func Numberize(name, value string) jsx.Attr {
	if n, ok := ParseNumber(value); ok {
		return jsx.Attr{Name: name, Value: jsx.Number{Value: n}}
	}
	return stringAttr(name, value)
}

func stringAttr(name, value string) jsx.Attr {
	return jsx.Attr{Name: name, Value: jsx.String{Value: value}}
}
