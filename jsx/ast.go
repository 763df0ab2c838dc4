// Package jsx holds the JSX template tree produced by the converter and a
// concise printer for it.
package jsx

// Node is a JSX tree node.
type Node interface {
	node()
}

// Element is an ordinary JSX element.
type Element struct {
	Tag         string
	Attrs       []Attr
	Children    []Node
	SelfClosing bool
}

func (*Element) node() {}

// RawTextElement is a script-like element whose body is kept as an opaque
// template literal. An empty Body renders the element self-closing.
type RawTextElement struct {
	Tag   string
	Attrs []Attr
	Body  string
}

func (*RawTextElement) node() {}

// ExpressionSlot is an empty `{}` container carrying an inline comment.
// Comments and merge tags are preserved this way so they never evaluate.
type ExpressionSlot struct {
	Comment string
}

func (*ExpressionSlot) node() {}

// Text is JSX text. Value is emitted as-is, so it must already be
// entity-encoded.
type Text struct {
	Value string
}

func (*Text) node() {}

// StringLiteral is a bare string expression, used when the whole fragment
// is a single run of text.
type StringLiteral struct {
	Value string
}

func (*StringLiteral) node() {}

// Fragment groups sibling nodes without a wrapping tag.
type Fragment struct {
	Children []Node
}

func (*Fragment) node() {}

// Attr is a converted attribute. A nil Value is the bare boolean shorthand.
type Attr struct {
	Name  string
	Value Value
}

// Value is an attribute value.
type Value interface {
	value()
}

// String is a quoted string attribute value.
type String struct {
	Value string
}

// Number is a numeric expression value.
type Number struct {
	Value float64
}

// Bool is a boolean expression value.
type Bool struct {
	Value bool
}

// Ident is a reference to a named binding, e.g. a callback.
type Ident struct {
	Name string
}

// Func is a single-parameter arrow function with a statement body.
type Func struct {
	Param string
	Body  []Statement
}

// Object is an object literal, used for inline styles.
type Object struct {
	Props []Prop
}

// Prop is one object literal entry. Quoted keys are emitted as string
// literals instead of identifiers.
type Prop struct {
	Key    string
	Quoted bool
	Value  Value
}

func (String) value()  {}
func (Number) value()  {}
func (Bool) value()    {}
func (Ident) value()   {}
func (*Func) value()   {}
func (*Object) value() {}

// Statement is one statement of a function body.
type Statement interface {
	statement()
}

// Code is a parsed statement rendered back to source.
type Code struct {
	Source string
}

// FixMe keeps source that could not be parsed as a template literal,
// preceded by a line comment asking for a manual fix.
type FixMe struct {
	Note   string
	Source string
}

func (Code) statement()  {}
func (FixMe) statement() {}
