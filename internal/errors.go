package internal

import (
	"errors"
	"fmt"
	"strings"
)

// Lexer errors
var ErrIllegalChar = errors.New("Unexpected character")
var ErrUnclosedString = errors.New("Closing \" was expected")
var ErrNumberFormat = errors.New("Invalid number literal")

// Parser errors
var ErrUnclosedParen = errors.New("Expect ')' after expression")
var ErrExpectedExpr = errors.New("Expect expression")
var ErrUnexpectedToken = errors.New("Expect end of input after expression")
var ErrInvalidToken = errors.New("Invalid token")
var ErrMaxDepth = errors.New("Expression nested too deeply")

// LexicalError reports a character the lexer does not understand
type LexicalError struct {
	Char rune
	Line int
}

func (e *LexicalError) Error() string { return withLine(e) }
func (e *LexicalError) position() int { return e.Line }
func (e *LexicalError) detail() string { return fmt.Sprintf("%v %q", ErrIllegalChar, e.Char) }

func (e *LexicalError) Unwrap() error { return ErrIllegalChar }

// UnterminatedStringError reports a string literal missing its closing quote.
// Line is where the literal starts.
type UnterminatedStringError struct {
	Line int
}

func (e *UnterminatedStringError) Error() string { return withLine(e) }
func (e *UnterminatedStringError) position() int { return e.Line }
func (e *UnterminatedStringError) detail() string { return ErrUnclosedString.Error() }

func (e *UnterminatedStringError) Unwrap() error { return ErrUnclosedString }

// NumberFormatError reports a digit run that does not fit a float64
type NumberFormatError struct {
	Text string
	Line int
	Err  error
}

func (e *NumberFormatError) Error() string { return withLine(e) }
func (e *NumberFormatError) position() int { return e.Line }
func (e *NumberFormatError) detail() string {
	return fmt.Sprintf("%v %q: %v", ErrNumberFormat, e.Text, e.Err)
}

func (e *NumberFormatError) Is(target error) bool { return target == ErrNumberFormat }

func (e *NumberFormatError) Unwrap() error { return e.Err }

// SyntaxError reports a token the grammar does not allow at its position
type SyntaxError struct {
	Expected string
	Found    Token
	Line     int

	err error
}

func (e *SyntaxError) Error() string { return withLine(e) }
func (e *SyntaxError) position() int { return e.Line }
func (e *SyntaxError) detail() string {
	return fmt.Sprintf("%v, found %s", e.err, describe(e.Found))
}

func (e *SyntaxError) Unwrap() error { return e.err }

// DepthError reports an expression nested deeper than the parser allows
type DepthError struct {
	Limit int
	Line  int
}

func (e *DepthError) Error() string { return withLine(e) }
func (e *DepthError) position() int { return e.Line }
func (e *DepthError) detail() string { return fmt.Sprintf("%v (limit %d)", ErrMaxDepth, e.Limit) }

func (e *DepthError) Unwrap() error { return ErrMaxDepth }

// ErrorList collects every error found during a single scan
type ErrorList []error

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	msgs := make([]string, len(l))
	for i, err := range l {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// Unwrap lets errors.Is and errors.As look at every collected error
func (l ErrorList) Unwrap() []error {
	return l
}

// Err returns nil for an empty list
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// positioned is implemented by every error that knows its source line
type positioned interface {
	error
	position() int
	detail() string
}

func withLine(e positioned) string {
	return fmt.Sprintf("line %d: %s", e.position(), e.detail())
}

func describe(tk Token) string {
	switch tk.Type {
	case EOF:
		return "end of input"
	case ILLEGAL:
		return fmt.Sprintf("invalid token %q", tk.Lexeme)
	}
	return fmt.Sprintf("'%s'", tk.Lexeme)
}
