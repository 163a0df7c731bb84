package internal

// DefaultMaxDepth bounds how deeply groupings and unary operators may nest
const DefaultMaxDepth = 255

// parser stores parser data
type parser struct {
	tokens  []Token
	current int

	depth    int
	maxDepth int
}

// Parse builds the syntax tree for a single expression. It stops at the
// first error and returns no tree in that case.
func Parse(tokens []Token) (Expr, error) {
	return ParseWithDepth(tokens, DefaultMaxDepth)
}

// ParseWithDepth is Parse with a custom nesting limit. A limit below one
// selects DefaultMaxDepth.
func ParseWithDepth(tokens []Token, maxDepth int) (Expr, error) {
	if maxDepth < 1 {
		maxDepth = DefaultMaxDepth
	}
	p := &parser{
		tokens:   tokens,
		maxDepth: maxDepth,
	}
	return p.parse()
}

func (p *parser) parse() (Expr, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.isAtEnd() {
		return nil, p.errorAt(p.peek(), "end of input", ErrUnexpectedToken)
	}
	return expr, nil
}

func (p *parser) expression() (Expr, error) {
	return p.equality()
}

func (p *parser) equality() (Expr, error) {
	return p.binary(p.comparison, BANG_EQUAL, EQUAL_EQUAL)
}

func (p *parser) comparison() (Expr, error) {
	return p.binary(p.term, GREATER, GREATER_EQUAL, LESS, LESS_EQUAL)
}

func (p *parser) term() (Expr, error) {
	return p.binary(p.factor, MINUS, PLUS)
}

func (p *parser) factor() (Expr, error) {
	return p.binary(p.unary, SLASH, STAR)
}

// binary parses operand (operator operand)* and folds the result to the
// left, so a - b - c groups as (a - b) - c.
func (p *parser) binary(operand func() (Expr, error), operators ...TokenType) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(operators...) {
		operator := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &Binary{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr, nil
}

func (p *parser) unary() (Expr, error) {
	if p.match(BANG, MINUS) {
		operator := p.previous()
		if err := p.enter(operator); err != nil {
			return nil, err
		}
		right, err := p.unary()
		p.leave()
		if err != nil {
			return nil, err
		}
		return &Unary{
			Operator: operator,
			Right:    right,
		}, nil
	}
	return p.primary()
}

func (p *parser) primary() (Expr, error) {
	if p.match(FALSE) {
		return &Literal{Value: Bool(false)}, nil
	}
	if p.match(TRUE) {
		return &Literal{Value: Bool(true)}, nil
	}
	if p.match(NIL) {
		return &Literal{Value: Null()}, nil
	}
	if p.match(NUMBER, STRING) {
		tk := p.previous()
		value, ok := tk.Literal()
		if !ok {
			return nil, p.errorAt(tk, "expression", ErrInvalidToken)
		}
		return &Literal{Value: value}, nil
	}
	if p.match(LEFT_PAREN) {
		if err := p.enter(p.previous()); err != nil {
			return nil, err
		}
		expr, err := p.expression()
		p.leave()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(RIGHT_PAREN, "')'", ErrUnclosedParen); err != nil {
			return nil, err
		}
		return &Grouping{Expression: expr}, nil
	}
	if p.check(ILLEGAL) {
		return nil, p.errorAt(p.peek(), "expression", ErrInvalidToken)
	}

	return nil, p.errorAt(p.peek(), "expression", ErrExpectedExpr)
}

func (p *parser) enter(tk Token) error {
	p.depth++
	if p.depth > p.maxDepth {
		p.depth--
		return &DepthError{Limit: p.maxDepth, Line: tk.Line}
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) consume(tk TokenType, expected string, err error) (Token, error) {
	if p.check(tk) {
		return p.advance(), nil
	}
	return Token{}, p.errorAt(p.peek(), expected, err)
}

func (p *parser) errorAt(tk Token, expected string, err error) error {
	return &SyntaxError{
		Expected: expected,
		Found:    tk,
		Line:     tk.Line,
		err:      err,
	}
}

func (p *parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...TokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.current++
			return true
		}
	}
	return false
}

func (p *parser) check(token TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == token
}

// peek treats running off the slice as EOF so a token list
// without its terminator cannot index out of range.
func (p *parser) peek() Token {
	if p.current < len(p.tokens) {
		return p.tokens[p.current]
	}
	line := 1
	if len(p.tokens) > 0 {
		line = p.tokens[len(p.tokens)-1].Line
	}
	return NewToken(EOF, "", line)
}

func (p *parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().Type == EOF
}
