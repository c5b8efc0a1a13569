package calc

import (
	"errors"
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		name     string
		expr     string
		expected float64
	}{
		{name: "single number", expr: "42", expected: 42},
		{name: "decimal", expr: "2.5", expected: 2.5},
		{name: "addition", expr: "2 + 3", expected: 5},
		{name: "subtraction", expr: "7 - 10", expected: -3},
		{name: "multiplication", expr: "12 * 7", expected: 84},
		{name: "division", expr: "9 / 2", expected: 4.5},
		{name: "modulo", expr: "17 % 5", expected: 2},
		{name: "precedence", expr: "2 + 3 * 4", expected: 14},
		{name: "parentheses", expr: "(2 + 3) * 4", expected: 20},
		{name: "nested parentheses", expr: "((1 + 2) * (3 + 4))", expected: 21},
		{name: "unary minus", expr: "-5 + 8", expected: 3},
		{name: "double unary minus", expr: "--5", expected: 5},
		{name: "unary in parens", expr: "2 * (-3)", expected: -6},
		{name: "left associativity", expr: "10 - 4 - 3", expected: 3},
		{name: "no spaces", expr: "1+2*3", expected: 7},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			value, err := Evaluate(testCase.expr)
			if err != nil {
				t.Fatalf("expected %q to evaluate, got error: %v", testCase.expr, err)
			}
			if math.Abs(value-testCase.expected) > 1e-9 {
				t.Fatalf("expected %q to evaluate to %v, got %v", testCase.expr, testCase.expected, value)
			}
		})
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	for _, expr := range []string{"5 / 0", "1 % 0", "3 / (2 - 2)"} {
		if _, err := Evaluate(expr); !errors.Is(err, ErrDivisionByZero) {
			t.Fatalf("expected division-by-zero error for %q, got %v", expr, err)
		}
	}
}

func TestEvaluateMalformedInput(t *testing.T) {
	malformed := []string{
		"",
		"   ",
		"(1 + 2",
		"1 + ",
		"* 3",
		"1 2",
		"1..2",
		".",
		"2 ** 3",
		"abc",
		"1 + x",
	}

	for _, expr := range malformed {
		if _, err := Evaluate(expr); err == nil {
			t.Fatalf("expected %q to be rejected", expr)
		}
	}
}
