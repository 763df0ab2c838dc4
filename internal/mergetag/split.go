// Package mergetag splits text into literal runs and brace-delimited merge tags.
package mergetag

import "strings"

// Kind classifies a Part.
type Kind int

const (
	// Literal is plain text.
	Literal Kind = iota
	// Dynamic is a merge tag, delimiters included.
	Dynamic
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Dynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// Part is one span of a split string.
type Part struct {
	Kind  Kind
	Value string
}

// Split breaks input into an ordered list of literal and merge tag parts.
//
// A merge tag starts at a `{` seen at nesting depth zero and ends when the
// matching `}` brings the depth back to zero. Braces directly preceded by a
// backslash are kept verbatim and do not change the depth. Joining the
// returned parts always reproduces input; the empty string yields no parts.
//
// Unbalanced input is not rejected: a trailing tag that never closes is
// returned as part of the final Literal, and a stray `}` drives the depth
// negative so that later tags on the same string stay literal.
func Split(input string) []Part {
	var parts []Part
	var buf strings.Builder
	depth := 0

	flushLiteral := func() {
		if buf.Len() > 0 {
			parts = append(parts, Part{Kind: Literal, Value: buf.String()})
		}
		buf.Reset()
	}

	for i := 0; i < len(input); i++ {
		c := input[i]
		escaped := i > 0 && input[i-1] == '\\'
		switch {
		case c == '{' && !escaped:
			if depth == 0 {
				flushLiteral()
			}
			buf.WriteByte(c)
			depth++
		case c == '}' && !escaped:
			depth--
			buf.WriteByte(c)
			if depth == 0 {
				parts = append(parts, Part{Kind: Dynamic, Value: buf.String()})
				buf.Reset()
			}
		default:
			buf.WriteByte(c)
		}
	}
	flushLiteral()

	return parts
}

// Join concatenates the raw values of parts.
func Join(parts []Part) string {
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(p.Value)
	}
	return sb.String()
}

// Balanced reports whether every unescaped brace in input is matched and no
// closing brace appears before its opener.
func Balanced(input string) bool {
	depth := 0
	for i := 0; i < len(input); i++ {
		if i > 0 && input[i-1] == '\\' {
			continue
		}
		switch input[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
