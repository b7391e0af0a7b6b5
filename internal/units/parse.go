package units

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/jsamuelsen/rastro/internal/domain"
)

// Unit expression grammar:
//
//	expr    = product { "/" product }
//	product = power { [ "*" | "." ] power }
//	power   = primary [ ( "^" | "**" ) int | int ]
//	primary = name | "1" | "(" expr ")"
//
// Juxtaposition multiplies, so "kg m s-2" and "m3 / (kg s2)" both parse.
// A slash divides by the whole product that follows it: "J / kg K" is
// J/(kg K).

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokName
	tokInt
	tokMul
	tokDiv
	tokPow
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type lookupFunc func(name string) (Unit, error)

// Parse parses a unit expression against the Default registry.
func Parse(expr string) (Unit, error) {
	return Default().Parse(expr)
}

// MustParse is like Parse but panics on error. For static declarations only.
func MustParse(expr string) Unit {
	u, err := Parse(expr)
	if err != nil {
		panic(err)
	}

	return u
}

func parse(expr string, lookup lookupFunc) (Unit, error) {
	if strings.TrimSpace(expr) == "" {
		return Unit{}, domain.NewValidationError("unit", "empty unit expression")
	}

	toks, err := tokenize(expr)
	if err != nil {
		return Unit{}, err
	}

	p := &parser{toks: toks, lookup: lookup}

	u, err := p.expr()
	if err != nil {
		return Unit{}, err
	}

	if t := p.peek(); t.kind != tokEOF {
		return Unit{}, p.unexpected(t)
	}

	return u, nil
}

func tokenize(expr string) ([]token, error) {
	var toks []token

	rs := []rune(expr)
	for i := 0; i < len(rs); {
		r := rs[i]

		switch {
		case unicode.IsSpace(r):
			i++
		case isNameRune(r):
			start := i
			for i < len(rs) && isNameRune(rs[i]) {
				i++
			}

			toks = append(toks, token{kind: tokName, text: string(rs[start:i]), pos: start})
		case unicode.IsDigit(r) || ((r == '-' || r == '+') && i+1 < len(rs) && unicode.IsDigit(rs[i+1])):
			start := i
			i++

			for i < len(rs) && unicode.IsDigit(rs[i]) {
				i++
			}

			toks = append(toks, token{kind: tokInt, text: string(rs[start:i]), pos: start})
		case r == '*' && i+1 < len(rs) && rs[i+1] == '*':
			toks = append(toks, token{kind: tokPow, text: "**", pos: i})
			i += 2
		case r == '^':
			toks = append(toks, token{kind: tokPow, text: "^", pos: i})
			i++
		case r == '*' || r == '.':
			toks = append(toks, token{kind: tokMul, text: string(r), pos: i})
			i++
		case r == '/':
			toks = append(toks, token{kind: tokDiv, text: "/", pos: i})
			i++
		case r == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: i})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: i})
			i++
		default:
			return nil, domain.NewValidationErrorWithValue("unit",
				fmt.Sprintf("unexpected character %q at %d", r, i), expr)
		}
	}

	return append(toks, token{kind: tokEOF, pos: len(rs)}), nil
}

func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

type parser struct {
	toks   []token
	pos    int
	lookup lookupFunc
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}

	return t
}

func (p *parser) unexpected(t token) error {
	if t.kind == tokEOF {
		return domain.NewValidationError("unit", "unexpected end of expression")
	}

	return domain.NewValidationError("unit", fmt.Sprintf("unexpected %q at %d", t.text, t.pos))
}

func (p *parser) expr() (Unit, error) {
	u, err := p.product()
	if err != nil {
		return Unit{}, err
	}

	for p.peek().kind == tokDiv {
		p.next()

		d, err := p.product()
		if err != nil {
			return Unit{}, err
		}

		if u, err = u.div(d); err != nil {
			return Unit{}, err
		}
	}

	return u, nil
}

func (p *parser) product() (Unit, error) {
	u, err := p.power()
	if err != nil {
		return Unit{}, err
	}

	for {
		switch p.peek().kind {
		case tokMul:
			p.next()
		case tokName, tokLParen:
		default:
			return u, nil
		}

		f, err := p.power()
		if err != nil {
			return Unit{}, err
		}

		if u, err = u.mul(f); err != nil {
			return Unit{}, err
		}
	}
}

func (p *parser) power() (Unit, error) {
	u, err := p.primary()
	if err != nil {
		return Unit{}, err
	}

	switch p.peek().kind {
	case tokPow:
		p.next()

		t := p.next()
		if t.kind != tokInt {
			return Unit{}, p.unexpected(t)
		}

		return powFromToken(u, t)
	case tokInt:
		return powFromToken(u, p.next())
	default:
		return u, nil
	}
}

func (p *parser) primary() (Unit, error) {
	t := p.next()

	switch t.kind {
	case tokName:
		return p.lookup(t.text)
	case tokInt:
		if t.text != "1" {
			return Unit{}, domain.NewValidationError("unit",
				fmt.Sprintf("unexpected number %q at %d", t.text, t.pos))
		}

		return Dimensionless, nil
	case tokLParen:
		u, err := p.expr()
		if err != nil {
			return Unit{}, err
		}

		if c := p.next(); c.kind != tokRParen {
			return Unit{}, p.unexpected(c)
		}

		return u, nil
	default:
		return Unit{}, p.unexpected(t)
	}
}

func powFromToken(u Unit, t token) (Unit, error) {
	n, err := strconv.ParseInt(t.text, 10, 8)
	if err != nil {
		return Unit{}, domain.NewValidationErrorWithValue("unit",
			fmt.Sprintf("invalid power %q at %d: want an integer in [%d, %d]", t.text, t.pos, MinExponent, MaxExponent), t.text)
	}

	return u.pow(int(n))
}
