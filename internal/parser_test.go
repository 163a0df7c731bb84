package internal

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func parseSource(t *testing.T, source string) (Expr, error) {
	t.Helper()
	tokens, err := Scan(source)
	if err != nil {
		t.Fatalf("Unexpected error scanning %q: %v", source, err)
	}
	return Parse(tokens)
}

func checkTree(t *testing.T, source string, expected Expr) {
	t.Helper()
	expr, err := parseSource(t, source)
	if err != nil {
		t.Errorf("Unexpected error parsing %q: %v", source, err)
		return
	}
	if !reflect.DeepEqual(expr, expected) {
		t.Errorf("\nSource:\n----\n%s\n----\nExpected:\n%s\nFound:\n%s",
			source, Printer{}.Print(expected), Printer{}.Print(expr))
	}
}

func checkSyntaxError(t *testing.T, source string, target error, found TokenType, line int) {
	t.Helper()
	expr, err := parseSource(t, source)
	if expr != nil {
		t.Errorf("%q: no tree expected on error, found %s", source, Printer{}.Print(expr))
	}
	if !errors.Is(err, target) {
		t.Errorf("%q: expected %v instead of %v", source, target, err)
		return
	}
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Errorf("%q: expected a SyntaxError instead of %T", source, err)
		return
	}
	if syntaxErr.Found.Type != found || syntaxErr.Line != line {
		t.Errorf("%q: expected %s on line %d, found %s on line %d",
			source, found, line, syntaxErr.Found.Type, syntaxErr.Line)
	}
}

func number(n float64) *Literal {
	return &Literal{Value: Number(n)}
}

func TestLeftAssociativity(t *testing.T) {
	minus := tok(MINUS, "-", 1)
	checkTree(t, "1 - 2 - 3", &Binary{
		Left: &Binary{
			Left:     number(1),
			Operator: minus,
			Right:    number(2),
		},
		Operator: minus,
		Right:    number(3),
	})

	slash := tok(SLASH, "/", 1)
	star := tok(STAR, "*", 1)
	checkTree(t, "8 / 4 * 2", &Binary{
		Left: &Binary{
			Left:     number(8),
			Operator: slash,
			Right:    number(4),
		},
		Operator: star,
		Right:    number(2),
	})
}

func TestNestedGroupings(t *testing.T) {
	minus := tok(MINUS, "-", 1)
	checkTree(t, "(5 - (3 - 1)) + -1", &Binary{
		Left: &Grouping{
			Expression: &Binary{
				Left:     number(5),
				Operator: minus,
				Right: &Grouping{
					Expression: &Binary{
						Left:     number(3),
						Operator: minus,
						Right:    number(1),
					},
				},
			},
		},
		Operator: tok(PLUS, "+", 1),
		Right: &Unary{
			Operator: minus,
			Right:    number(1),
		},
	})
}

func TestUnaryIsRightRecursive(t *testing.T) {
	bang := tok(BANG, "!", 1)
	checkTree(t, "!!true", &Unary{
		Operator: bang,
		Right: &Unary{
			Operator: bang,
			Right:    &Literal{Value: Bool(true)},
		},
	})
}

func TestPrecedence(t *testing.T) {
	cases := []struct {
		source string
		result string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"1 * 2 + 3", "(+ (* 1 2) 3)"},
		{"-1 * 2", "(* (- 1) 2)"},
		{"1 + 2 < 4", "(< (+ 1 2) 4)"},
		{"1 < 2 == 2 > 1", "(== (< 1 2) (> 2 1))"},
		{"1 <= 2 <= 3", "(<= (<= 1 2) 3)"},
		{"1 == 2 != 3", "(!= (== 1 2) 3)"},
		{"(1 + 2) * 3", "(* (group (+ 1 2)) 3)"},
		{"\"a\" == nil", "(== a )"},
	}
	for _, c := range cases {
		expr, err := parseSource(t, c.source)
		if err != nil {
			t.Errorf("Unexpected error parsing %q: %v", c.source, err)
			continue
		}
		if result := (Printer{}).Print(expr); result != c.result {
			t.Errorf("%q should print %s instead of %s", c.source, c.result, result)
		}
	}
}

func TestSyntaxErrors(t *testing.T) {
	checkSyntaxError(t, "(1 + 2", ErrUnclosedParen, EOF, 1)
	checkSyntaxError(t, "(1 + 2\n3)", ErrUnclosedParen, NUMBER, 2)
	checkSyntaxError(t, "1 +", ErrExpectedExpr, EOF, 1)
	checkSyntaxError(t, "", ErrExpectedExpr, EOF, 1)
	checkSyntaxError(t, ")", ErrExpectedExpr, RIGHT_PAREN, 1)
	checkSyntaxError(t, "()", ErrExpectedExpr, RIGHT_PAREN, 1)
	checkSyntaxError(t, "x + 1", ErrExpectedExpr, IDENTIFIER, 1)
	checkSyntaxError(t, "1 2", ErrUnexpectedToken, NUMBER, 1)
	checkSyntaxError(t, "(1))", ErrUnexpectedToken, RIGHT_PAREN, 1)
}

func TestInvalidTokens(t *testing.T) {
	tokens, _ := Scan("1 + \"abc")
	if _, err := Parse(tokens); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken instead of %v", err)
	}

	// A literal token built without its value
	tokens = []Token{tok(NUMBER, "1", 1), tok(EOF, "", 1)}
	if _, err := Parse(tokens); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken instead of %v", err)
	}
}

func TestMissingEOF(t *testing.T) {
	expr, err := Parse([]Token{lit(NUMBER, "1", Number(1), 1)})
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if !reflect.DeepEqual(expr, number(1)) {
		t.Errorf("Expected literal 1 instead of %s", Printer{}.Print(expr))
	}

	if _, err := Parse(nil); !errors.Is(err, ErrExpectedExpr) {
		t.Errorf("Expected ErrExpectedExpr instead of %v", err)
	}
	if _, err := Parse([]Token{tok(LEFT_PAREN, "(", 3)}); !errors.Is(err, ErrExpectedExpr) {
		t.Errorf("Expected ErrExpectedExpr instead of %v", err)
	}
}

func TestNestingDepth(t *testing.T) {
	ok := strings.Repeat("(", DefaultMaxDepth) + "1" + strings.Repeat(")", DefaultMaxDepth)
	if _, err := parseSource(t, ok); err != nil {
		t.Errorf("%d nested groupings should parse: %v", DefaultMaxDepth, err)
	}

	deep := strings.Repeat("(", 10000) + "1" + strings.Repeat(")", 10000)
	_, err := parseSource(t, deep)
	var depthErr *DepthError
	if !errors.As(err, &depthErr) {
		t.Fatalf("Expected DepthError instead of %v", err)
	}
	if depthErr.Limit != DefaultMaxDepth || !errors.Is(err, ErrMaxDepth) {
		t.Errorf("Unexpected error %v", err)
	}

	if _, err := parseSource(t, strings.Repeat("-", DefaultMaxDepth+1)+"1"); !errors.Is(err, ErrMaxDepth) {
		t.Errorf("Expected ErrMaxDepth for deep unary chain instead of %v", err)
	}

	tokens, _ := Scan("((1)) + -(2)")
	if _, err := ParseWithDepth(tokens, 2); err != nil {
		t.Errorf("Depth 2 should be enough: %v", err)
	}
	tokens, _ = Scan("(((1)))")
	if _, err := ParseWithDepth(tokens, 2); !errors.Is(err, ErrMaxDepth) {
		t.Errorf("Expected ErrMaxDepth instead of %v", err)
	}
	if _, err := ParseWithDepth(tokens, 0); err != nil {
		t.Errorf("Zero depth should select the default: %v", err)
	}
}

func TestLongFlatExpression(t *testing.T) {
	source := "1" + strings.Repeat(" + 1", 100000)
	if _, err := parseSource(t, source); err != nil {
		t.Errorf("Flat expressions are not limited by depth: %v", err)
	}
}
