// Package expr evaluates the text of generated problems.
//
// It understands integers, the variable x (optionally with a leading
// coefficient such as 7x), + - × ÷ (and * /), unary minus, parentheses
// and a single '='. Every value is kept as a linear form a·x + b over the
// integers, so divisions must be exact and products must stay linear.
package expr

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/types"
)

var (
	ErrSyntax           = errors.New("syntax error")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrInexact          = errors.New("result is not an integer")
	ErrNonLinear        = errors.New("expression is not linear in x")
	ErrNotExpression    = errors.New("text is not a closed expression")
	ErrNotEquation      = errors.New("text is not an equation")
	ErrNoUniqueSolution = errors.New("equation has no unique solution")
)

// MismatchError is returned by Check when the text disagrees with the stored answer.
type MismatchError struct {
	Text   string
	Answer int
	Got    int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%q evaluates to %d, stored answer is %d", e.Text, e.Got, e.Answer)
}

// Evaluate returns the value of an arithmetic expression without variables.
func Evaluate(text string) (int, error) {
	lhs, rhs, err := parse(text)
	if err != nil {
		return 0, err
	}
	if rhs != nil || lhs.x != 0 {
		return 0, ErrNotExpression
	}
	return lhs.c, nil
}

// Solve returns the unique integer root of an equation linear in x.
func Solve(text string) (int, error) {
	lhs, rhs, err := parse(text)
	if err != nil {
		return 0, err
	}
	if rhs == nil {
		return 0, ErrNotEquation
	}
	// lhs - rhs = a·x + b = 0
	diff := lhs.sub(*rhs)
	if diff.x == 0 {
		return 0, ErrNoUniqueSolution
	}
	if -diff.c%diff.x != 0 {
		return 0, ErrInexact
	}
	return -diff.c / diff.x, nil
}

// Check verifies that a problem's text agrees with its stored answer.
func Check(p types.Problem) error {
	var got int
	var err error
	switch p.Kind {
	case types.ProblemKindEquation:
		got, err = Solve(p.Text)
	default:
		got, err = Evaluate(p.Text)
	}
	if err != nil {
		return fmt.Errorf("failed to evaluate %q: %w", p.Text, err)
	}
	if got != p.Answer {
		return &MismatchError{Text: p.Text, Answer: p.Answer, Got: got}
	}
	return nil
}

// linear is a·x + b
type linear struct {
	x int
	c int
}

func (l linear) add(r linear) linear {
	return linear{x: l.x + r.x, c: l.c + r.c}
}

func (l linear) sub(r linear) linear {
	return linear{x: l.x - r.x, c: l.c - r.c}
}

func (l linear) mul(r linear) (linear, error) {
	if l.x != 0 && r.x != 0 {
		return linear{}, ErrNonLinear
	}
	return linear{x: l.x*r.c + r.x*l.c, c: l.c * r.c}, nil
}

func (l linear) div(r linear) (linear, error) {
	if r.x != 0 {
		return linear{}, ErrNonLinear
	}
	if r.c == 0 {
		return linear{}, ErrDivisionByZero
	}
	if l.x%r.c != 0 || l.c%r.c != 0 {
		return linear{}, ErrInexact
	}
	return linear{x: l.x / r.c, c: l.c / r.c}, nil
}

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenVariable
	tokenPlus
	tokenMinus
	tokenTimes
	tokenDivide
	tokenLeftParen
	tokenRightParen
	tokenEquals
	tokenEOF
)

type token struct {
	kind  tokenKind
	value int
	pos   int
}

func tokenize(text string) ([]token, error) {
	runes := []rune(text)
	tokens := make([]token, 0, len(runes))
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
			continue
		case unicode.IsDigit(r):
			start := i
			for i < len(runes) && unicode.IsDigit(runes[i]) {
				i++
			}
			n, err := strconv.Atoi(string(runes[start:i]))
			if err != nil {
				return nil, fmt.Errorf("%w: bad number at %d: %v", ErrSyntax, start, err)
			}
			tokens = append(tokens, token{kind: tokenNumber, value: n, pos: start})
			continue
		}

		var kind tokenKind
		switch r {
		case 'x', 'X':
			kind = tokenVariable
		case '+':
			kind = tokenPlus
		case '-', '−':
			kind = tokenMinus
		case '×', '*', '·':
			kind = tokenTimes
		case '÷', '/', ':':
			kind = tokenDivide
		case '(':
			kind = tokenLeftParen
		case ')':
			kind = tokenRightParen
		case '=':
			kind = tokenEquals
		default:
			return nil, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, r, i)
		}
		tokens = append(tokens, token{kind: kind, pos: i})
		i++
	}
	return append(tokens, token{kind: tokenEOF, pos: len(runes)}), nil
}

type parser struct {
	tokens []token
	pos    int
}

// parse returns the left side and, for equations, the right side.
func parse(text string) (linear, *linear, error) {
	tokens, err := tokenize(text)
	if err != nil {
		return linear{}, nil, err
	}
	p := &parser{tokens: tokens}

	lhs, err := p.expression()
	if err != nil {
		return linear{}, nil, err
	}
	var rhs *linear
	if p.peek().kind == tokenEquals {
		p.next()
		r, err := p.expression()
		if err != nil {
			return linear{}, nil, err
		}
		rhs = &r
	}
	if t := p.peek(); t.kind != tokenEOF {
		return linear{}, nil, fmt.Errorf("%w: unexpected token at %d", ErrSyntax, t.pos)
	}
	return lhs, rhs, nil
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) expression() (linear, error) {
	left, err := p.term()
	if err != nil {
		return linear{}, err
	}
	for {
		switch p.peek().kind {
		case tokenPlus:
			p.next()
			right, err := p.term()
			if err != nil {
				return linear{}, err
			}
			left = left.add(right)
		case tokenMinus:
			p.next()
			right, err := p.term()
			if err != nil {
				return linear{}, err
			}
			left = left.sub(right)
		default:
			return left, nil
		}
	}
}

func (p *parser) term() (linear, error) {
	left, err := p.unary()
	if err != nil {
		return linear{}, err
	}
	for {
		kind := p.peek().kind
		if kind != tokenTimes && kind != tokenDivide {
			return left, nil
		}
		p.next()
		right, err := p.unary()
		if err != nil {
			return linear{}, err
		}
		if kind == tokenTimes {
			left, err = left.mul(right)
		} else {
			left, err = left.div(right)
		}
		if err != nil {
			return linear{}, err
		}
	}
}

func (p *parser) unary() (linear, error) {
	switch p.peek().kind {
	case tokenMinus:
		p.next()
		v, err := p.unary()
		if err != nil {
			return linear{}, err
		}
		return linear{x: -v.x, c: -v.c}, nil
	case tokenPlus:
		p.next()
		return p.unary()
	default:
		return p.primary()
	}
}

func (p *parser) primary() (linear, error) {
	t := p.next()
	switch t.kind {
	case tokenNumber:
		// a coefficient written directly before x, e.g. 7x
		if p.peek().kind == tokenVariable {
			p.next()
			return linear{x: t.value}, nil
		}
		return linear{c: t.value}, nil
	case tokenVariable:
		return linear{x: 1}, nil
	case tokenLeftParen:
		v, err := p.expression()
		if err != nil {
			return linear{}, err
		}
		if closing := p.next(); closing.kind != tokenRightParen {
			return linear{}, fmt.Errorf("%w: missing ')' at %d", ErrSyntax, closing.pos)
		}
		return v, nil
	default:
		return linear{}, fmt.Errorf("%w: unexpected token at %d", ErrSyntax, t.pos)
	}
}
