// Package entity encodes text for use inside JSX text children.
package entity

import (
	"strconv"
	"strings"
)

// Encode escapes the five HTML-significant characters, control characters
// and every non-ASCII code point as character references. Named references
// are used where one exists, decimal references otherwise. ASCII punctuation
// such as braces and percent signs is left untouched.
func Encode(text string) string {
	if !needsEncoding(text) {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(text)/4)
	for _, r := range text {
		if !mustEncode(r) {
			sb.WriteRune(r)
			continue
		}
		if name, ok := names[r]; ok {
			sb.WriteByte('&')
			sb.WriteString(name)
			sb.WriteByte(';')
			continue
		}
		sb.WriteString("&#")
		sb.WriteString(strconv.Itoa(int(r)))
		sb.WriteByte(';')
	}
	return sb.String()
}

func needsEncoding(text string) bool {
	for i := 0; i < len(text); i++ {
		if c := text[i]; c >= 0x80 || mustEncode(rune(c)) {
			return true
		}
	}
	return false
}

func mustEncode(r rune) bool {
	switch r {
	case '<', '>', '&', '"', '\'':
		return true
	case '\t', '\n', '\v', '\f', '\r':
		return false
	}
	return r < 0x20 || r >= 0x7f
}
