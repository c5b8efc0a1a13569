// Package calc evaluates arithmetic over a strictly whitelisted grammar.
//
// The grammar admits decimal numbers, the operators + - * / %, unary minus
// and parentheses; identifiers, calls and any other syntax are not
// representable, so untrusted expressions cannot reach anything beyond
// arithmetic.
//
//	expr    := term { ("+" | "-") term }
//	term    := unary { ("*" | "/" | "%") unary }
//	unary   := "-" unary | primary
//	primary := number | "(" expr ")"
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrDivisionByZero is returned for division or modulo by zero.
var ErrDivisionByZero = errors.New("division by zero")

// Evaluate parses and evaluates expr, returning its numeric value.
func Evaluate(expr string) (float64, error) {
	parser := &parser{input: expr}

	value, err := parser.parseExpr()
	if err != nil {
		return 0, err
	}

	parser.skipSpaces()
	if parser.pos < len(parser.input) {
		return 0, fmt.Errorf("unexpected character %q at position %d", parser.input[parser.pos], parser.pos)
	}

	return value, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parseExpr() (float64, error) {
	value, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for {
		switch p.peek() {
		case '+':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			value += rhs
		case '-':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			value -= rhs
		default:
			return value, nil
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	value, err := p.parseUnary()
	if err != nil {
		return 0, err
	}

	for {
		switch p.peek() {
		case '*':
			p.pos++
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			value *= rhs
		case '/':
			p.pos++
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, ErrDivisionByZero
			}
			value /= rhs
		case '%':
			p.pos++
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, ErrDivisionByZero
			}
			value = math.Mod(value, rhs)
		default:
			return value, nil
		}
	}
}

func (p *parser) parseUnary() (float64, error) {
	if p.peek() == '-' {
		p.pos++
		value, err := p.parseUnary()
		return -value, err
	}

	return p.parsePrimary()
}

func (p *parser) parsePrimary() (float64, error) {
	switch next := p.peek(); {
	case next == '(':
		p.pos++
		value, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("missing closing parenthesis at position %d", p.pos)
		}
		p.pos++
		return value, nil

	case next >= '0' && next <= '9', next == '.':
		return p.parseNumber()

	case next == 0:
		return 0, fmt.Errorf("unexpected end of expression")

	default:
		return 0, fmt.Errorf("unexpected character %q at position %d", next, p.pos)
	}
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	seenDot := false
	for p.pos < len(p.input) {
		char := p.input[p.pos]
		if char == '.' {
			if seenDot {
				return 0, fmt.Errorf("malformed number at position %d", start)
			}
			seenDot = true
		} else if char < '0' || char > '9' {
			break
		}
		p.pos++
	}

	literal := p.input[start:p.pos]
	if literal == "." {
		return 0, fmt.Errorf("malformed number at position %d", start)
	}

	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed number %q: %w", literal, err)
	}
	return value, nil
}

// peek returns the next non-space byte without consuming it, or 0 at end of
// input.
func (p *parser) peek() byte {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}
