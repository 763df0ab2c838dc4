package attrs

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/livefir/htmljsx/jsx"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

// EventParam is the parameter name of generated handler functions.
const EventParam = "event"

// FixHandlerNote annotates handler code that could not be parsed.
const FixHandlerNote = "TODO: Fix event handler code"

var emptyCall = regexp.MustCompile(`^\s*([\p{L}_$][\p{L}_$]*)\(\)\s*$`)

// Functionize converts inline event handler source into a JSX value.
//
// A lone call without arguments such as "save()" becomes a reference to the
// callee. Anything else that parses becomes an arrow function taking the
// event and running the statements. Source that does not parse is kept
// verbatim in a template literal under a fix-me comment, so no input is lost.
func Functionize(source string) jsx.Value {
	if m := emptyCall.FindStringSubmatch(source); m != nil {
		return jsx.Ident{Name: m[1]}
	}

	body, err := parseStatements(source)
	if err != nil {
		return &jsx.Func{
			Param: EventParam,
			Body:  []jsx.Statement{jsx.FixMe{Note: FixHandlerNote, Source: source}},
		}
	}
	return &jsx.Func{Param: EventParam, Body: body}
}

// IsFallback reports whether v is a handler that Functionize could not parse.
func IsFallback(v jsx.Value) bool {
	fn, ok := v.(*jsx.Func)
	if !ok || len(fn.Body) != 1 {
		return false
	}
	_, ok = fn.Body[0].(jsx.FixMe)
	return ok
}

func parseStatements(source string) (stmts []jsx.Statement, err error) {
	defer func() {
		if r := recover(); r != nil {
			stmts, err = nil, fmt.Errorf("parse handler: %v", r)
		}
	}()

	ast, err := js.Parse(parse.NewInputString(source), js.Options{Inline: true})
	if err != nil {
		return nil, err
	}

	for _, item := range ast.List {
		var sb strings.Builder
		item.JS(&sb)
		switch t := item.(type) {
		case *js.VarDecl:
			sb.WriteByte(';')
		case *js.Comment:
			if strings.HasPrefix(string(t.Value), "//") {
				sb.WriteByte('\n')
			}
		}
		if sb.Len() == 0 {
			continue
		}
		stmts = append(stmts, jsx.Code{Source: sb.String()})
	}
	return stmts, nil
}
