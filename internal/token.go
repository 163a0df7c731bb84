package internal

import (
	"fmt"
	"strconv"
)

// TokenType Holds a token
type TokenType int

const (
	// ILLEGAL marks a token the lexer could not turn into a valid lexeme
	ILLEGAL TokenType = iota - 1

	// Single-character tokens.
	// (, ), {, }, ',', ., -, +, ;, /, *
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	COMMA
	DOT
	MINUS
	PLUS
	SEMICOLON
	SLASH
	STAR

	// One or two character tokens.
	// !, !=, =, ==, >, >=, <, <=
	BANG
	BANG_EQUAL
	EQUAL
	EQUAL_EQUAL
	GREATER
	GREATER_EQUAL
	LESS
	LESS_EQUAL

	// Literals.
	// *variable*, string, number
	IDENTIFIER
	STRING
	NUMBER

	// Keywords.
	// and, class, else, false, for, fun, if, nil, or,
	// print, return, super, this, true, var, while
	AND
	CLASS
	ELSE
	FALSE
	FOR
	FUN
	IF
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE

	EOF
)

var tokenNames = [...]string{
	LEFT_PAREN:    "LEFT_PAREN",
	RIGHT_PAREN:   "RIGHT_PAREN",
	LEFT_BRACE:    "LEFT_BRACE",
	RIGHT_BRACE:   "RIGHT_BRACE",
	COMMA:         "COMMA",
	DOT:           "DOT",
	MINUS:         "MINUS",
	PLUS:          "PLUS",
	SEMICOLON:     "SEMICOLON",
	SLASH:         "SLASH",
	STAR:          "STAR",
	BANG:          "BANG",
	BANG_EQUAL:    "BANG_EQUAL",
	EQUAL:         "EQUAL",
	EQUAL_EQUAL:   "EQUAL_EQUAL",
	GREATER:       "GREATER",
	GREATER_EQUAL: "GREATER_EQUAL",
	LESS:          "LESS",
	LESS_EQUAL:    "LESS_EQUAL",
	IDENTIFIER:    "IDENTIFIER",
	STRING:        "STRING",
	NUMBER:        "NUMBER",
	AND:           "AND",
	CLASS:         "CLASS",
	ELSE:          "ELSE",
	FALSE:         "FALSE",
	FOR:           "FOR",
	FUN:           "FUN",
	IF:            "IF",
	NIL:           "NIL",
	OR:            "OR",
	PRINT:         "PRINT",
	RETURN:        "RETURN",
	SUPER:         "SUPER",
	THIS:          "THIS",
	TRUE:          "TRUE",
	VAR:           "VAR",
	WHILE:         "WHILE",
	EOF:           "EOF",
}

func (t TokenType) String() string {
	if t == ILLEGAL {
		return "ILLEGAL"
	}
	if t >= 0 && int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

// ValueKind tells which field of a Value is set
type ValueKind int

const (
	NullValue ValueKind = iota
	StringValue
	NumberValue
	BoolValue
)

// Value is the payload of a literal token or literal expression
type Value struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
}

// String creates a string value
func String(s string) Value {
	return Value{kind: StringValue, str: s}
}

// Number creates a number value
func Number(n float64) Value {
	return Value{kind: NumberValue, num: n}
}

// Bool creates a boolean value
func Bool(b bool) Value {
	return Value{kind: BoolValue, b: b}
}

// Null creates the nil value
func Null() Value {
	return Value{kind: NullValue}
}

// Kind returns the variant held by v
func (v Value) Kind() ValueKind {
	return v.kind
}

// AsString returns the text of a string value
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == StringValue
}

// AsNumber returns the float of a number value
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == NumberValue
}

// AsBool returns the flag of a boolean value
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == BoolValue
}

// String renders the value the way the printer shows literals.
// Nil renders as an empty string.
func (v Value) String() string {
	switch v.kind {
	case StringValue:
		return v.str
	case NumberValue:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case BoolValue:
		return strconv.FormatBool(v.b)
	}
	return ""
}

// GoString implements fmt.GoStringer.
func (v Value) GoString() string {
	switch v.kind {
	case StringValue:
		return fmt.Sprintf("String(%q)", v.str)
	case NumberValue:
		return fmt.Sprintf("Number(%s)", v.String())
	case BoolValue:
		return fmt.Sprintf("Bool(%t)", v.b)
	}
	return "Null"
}

// Token is a classified, line-tagged piece of source text
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int

	literal    Value
	hasLiteral bool
}

// NewToken creates a token that carries no literal
func NewToken(tokenType TokenType, lexeme string, line int) Token {
	return Token{Type: tokenType, Lexeme: lexeme, Line: line}
}

// NewLiteralToken creates a token carrying a literal value
func NewLiteralToken(tokenType TokenType, lexeme string, literal Value, line int) Token {
	return Token{
		Type:       tokenType,
		Lexeme:     lexeme,
		Line:       line,
		literal:    literal,
		hasLiteral: true,
	}
}

// Literal returns the literal value and whether the token has one
func (t Token) Literal() (Value, bool) {
	return t.literal, t.hasLiteral
}

// String implements fmt.Stringer.
func (t Token) String() string {
	if t.hasLiteral {
		return fmt.Sprintf("%s %s %#v", t.Type, t.Lexeme, t.literal)
	}
	return fmt.Sprintf("%s %s", t.Type, t.Lexeme)
}

// GoString implements fmt.GoStringer.
func (t Token) GoString() string {
	if t.hasLiteral {
		return fmt.Sprintf("{Type: %s, Lexeme: %q, Literal: %#v, Line: %d}", t.Type, t.Lexeme, t.literal, t.Line)
	}
	return fmt.Sprintf("{Type: %s, Lexeme: %q, Line: %d}", t.Type, t.Lexeme, t.Line)
}

var _ fmt.Stringer = Token{}
var _ fmt.GoStringer = Token{}
