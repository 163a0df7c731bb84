package internal

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

type lexer struct {
	source  string
	start   int
	current int
	line    int

	tokens []Token
	errors ErrorList
}

// keywords is never written after package initialization,
// concurrent scans share it freely.
var keywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// Scan turns source into tokens. The returned slice always ends with a
// single EOF token, even when errors are reported. A non-nil error is
// an ErrorList holding every problem found during the pass.
func Scan(source string) ([]Token, error) {
	l := newLexer(source)
	tokens := l.scan()
	return tokens, l.errors.Err()
}

func newLexer(source string) *lexer {
	return &lexer{
		source: source,
		line:   1,
	}
}

func (l *lexer) scan() []Token {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.start = l.current
	l.emit(EOF)
	return l.tokens
}

func (l *lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(LEFT_PAREN)
	case ')':
		l.emit(RIGHT_PAREN)
	case '{':
		l.emit(LEFT_BRACE)
	case '}':
		l.emit(RIGHT_BRACE)
	case ',':
		l.emit(COMMA)
	case '.':
		l.emit(DOT)
	case '-':
		l.emit(MINUS)
	case '+':
		l.emit(PLUS)
	case ';':
		l.emit(SEMICOLON)
	case '*':
		l.emit(STAR)
	case '/':
		if l.match('/') {
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		} else {
			l.emit(SLASH)
		}
	case '!':
		if l.match('=') {
			l.emit(BANG_EQUAL)
		} else {
			l.emit(BANG)
		}
	case '=':
		if l.match('=') {
			l.emit(EQUAL_EQUAL)
		} else {
			l.emit(EQUAL)
		}
	case '<':
		if l.match('=') {
			l.emit(LESS_EQUAL)
		} else {
			l.emit(LESS)
		}
	case '>':
		if l.match('=') {
			l.emit(GREATER_EQUAL)
		} else {
			l.emit(GREATER)
		}

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':

	case '\n':
		l.line++

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			l.errors = append(l.errors, &LexicalError{Char: c, Line: l.line})
		}
	}
}

func (l *lexer) string() {
	line := l.line
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.errors = append(l.errors, &UnterminatedStringError{Line: line})
		l.emit(ILLEGAL)
		return
	}

	// Consume ending "
	l.advance()

	l.emitLiteral(STRING, String(l.source[l.start+1:l.current-1]))
}

func (l *lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		// Consume the "."
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	text := l.source[l.start:l.current]
	literal, err := strconv.ParseFloat(text, 64)
	if err != nil {
		l.errors = append(l.errors, &NumberFormatError{Text: text, Line: l.line, Err: err})
		l.emit(ILLEGAL)
		return
	}

	l.emitLiteral(NUMBER, Number(literal))
}

func (l *lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	identifier := l.source[l.start:l.current]

	tokenType, ok := keywords[identifier]
	if !ok {
		tokenType = IDENTIFIER
	}

	switch tokenType {
	case TRUE:
		l.emitLiteral(TRUE, Bool(true))
	case FALSE:
		l.emitLiteral(FALSE, Bool(false))
	case NIL:
		l.emitLiteral(NIL, Null())
	default:
		l.emit(tokenType)
	}
}

func (l *lexer) advance() rune {
	c, size := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += size
	return c
}

// match consumes the next character only when it equals c
func (l *lexer) match(c rune) bool {
	if l.isAtEnd() {
		return false
	}
	next, size := utf8.DecodeRuneInString(l.source[l.current:])
	if next != c {
		return false
	}
	l.current += size
	return true
}

func (l *lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	c, _ := utf8.DecodeRuneInString(l.source[l.current:])
	return c
}

func (l *lexer) peekNext() rune {
	if l.isAtEnd() {
		return 0
	}
	_, size := utf8.DecodeRuneInString(l.source[l.current:])
	if l.current+size >= len(l.source) {
		return 0
	}
	c, _ := utf8.DecodeRuneInString(l.source[l.current+size:])
	return c
}

func (l *lexer) emit(tokenType TokenType) {
	l.tokens = append(l.tokens, NewToken(tokenType, l.source[l.start:l.current], l.line))
}

func (l *lexer) emitLiteral(tokenType TokenType, literal Value) {
	l.tokens = append(l.tokens, NewLiteralToken(tokenType, l.source[l.start:l.current], literal, l.line))
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || unicode.IsNumber(c)
}
