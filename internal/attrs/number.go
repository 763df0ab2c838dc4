package attrs

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/tdewolff/parse/v2"
)

// ParseNumber converts s the way JavaScript's Number() does and reports
// whether the result is finite. Surrounding whitespace is ignored and an
// empty string is zero. Hex, octal and binary integer prefixes are
// accepted; signs, Infinity and NaN are not finite or not numbers.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
	if s == "" {
		return 0, true
	}

	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return parseInteger(s[2:], 16)
		case 'o', 'O':
			return parseInteger(s[2:], 8)
		case 'b', 'B':
			return parseInteger(s[2:], 2)
		}
	}

	b := []byte(s)
	n := parse.Number(b)
	if n < len(b) && b[n] == '.' && n > 0 && isDigit(b[n-1]) {
		// "5." and "5.e3" are valid, the decimal grammar stops before the dot
		b = append(b[:n:n], b[n+1:]...)
		n = parse.Number(b)
	}
	if n == 0 || n != len(b) {
		return 0, false
	}

	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func parseInteger(digits string, base int) (float64, bool) {
	if digits == "" || strings.ContainsAny(digits, "+-_") {
		return 0, false
	}
	i, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return 0, false
	}
	f, _ := new(big.Float).SetInt(i).Float64()
	if math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
