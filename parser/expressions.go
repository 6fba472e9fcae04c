/*
File    : mython/parser/expressions.go
*/
package parser

import (
	"fmt"

	"github.com/mythonscript/mython/ast"
	"github.com/mythonscript/mython/token"
)

func (p *Parser) parseExpr() (ast.Node, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Node, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.Or {
		p.advance()
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		lhs = &ast.Or{Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

func (p *Parser) parseAnd() (ast.Node, error) {
	lhs, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.And {
		p.advance()
		rhs, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		lhs = &ast.And{Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

func (p *Parser) parseNot() (ast.Node, error) {
	if p.cur().Kind == token.Not {
		p.advance()
		inner, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.Not{Expr: inner}, nil
	}
	return p.parseComparison()
}

var compareOps = map[token.Kind]ast.CompareOp{
	token.Eq:          ast.OpEq,
	token.NotEq:       ast.OpNotEq,
	token.LessOrEq:    ast.OpLessOrEq,
	token.GreaterOrEq: ast.OpGreaterOrEq,
}

func (p *Parser) parseComparison() (ast.Node, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if op, ok := compareOps[p.cur().Kind]; ok {
		p.advance()
		rhs, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return &ast.Comparison{Op: op, Lhs: lhs, Rhs: rhs}, nil
	}
	if p.isChar("<") {
		p.advance()
		rhs, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return &ast.Comparison{Op: ast.OpLess, Lhs: lhs, Rhs: rhs}, nil
	}
	if p.isChar(">") {
		p.advance()
		rhs, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return &ast.Comparison{Op: ast.OpGreater, Lhs: lhs, Rhs: rhs}, nil
	}
	return lhs, nil
}

func (p *Parser) parseAdditive() (ast.Node, error) {
	lhs, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.isChar("+") || p.isChar("-") {
		op := p.cur().StrValue
		p.advance()
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if op == "+" {
			lhs = &ast.Add{Lhs: lhs, Rhs: rhs}
		} else {
			lhs = &ast.Sub{Lhs: lhs, Rhs: rhs}
		}
	}
	return lhs, nil
}

func (p *Parser) parseTerm() (ast.Node, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.isChar("*") || p.isChar("/") {
		op := p.cur().StrValue
		p.advance()
		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		if op == "*" {
			lhs = &ast.Mult{Lhs: lhs, Rhs: rhs}
		} else {
			lhs = &ast.Div{Lhs: lhs, Rhs: rhs}
		}
	}
	return lhs, nil
}

func (p *Parser) parsePrimary() (ast.Node, error) {
	t := p.cur()
	switch t.Kind {
	case token.Number:
		p.advance()
		return &ast.NumericConst{Value: t.IntValue}, nil
	case token.String:
		p.advance()
		return &ast.StringConst{Value: t.StrValue}, nil
	case token.True:
		p.advance()
		return &ast.BoolConst{Value: true}, nil
	case token.False:
		p.advance()
		return &ast.BoolConst{Value: false}, nil
	case token.None:
		p.advance()
		return ast.NoneLiteral{}, nil
	case token.Id:
		return p.parseCallOrChain()
	}
	if p.isChar("(") {
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectChar(")"); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return nil, fmt.Errorf("parse error at %d:%d: unexpected token %s", t.Line, t.Column, t.String())
}

// parseCallOrChain parses a dotted identifier chain and, if followed by
// "(", resolves it as either `str(x)` string conversion, class
// instantiation (a single-segment chain), or a method call (a
// multi-segment chain whose last segment is the method name) — §4.6,
// §4.9.
func (p *Parser) parseCallOrChain() (ast.Node, error) {
	chain, _ := p.tryParseDottedChain()
	if !p.isChar("(") {
		return &ast.VariableValue{Chain: chain}, nil
	}
	p.advance() // "("
	var args []ast.Node
	if !p.isChar(")") {
		first, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, first)
		for p.isChar(",") {
			p.advance()
			next, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, next)
		}
	}
	if err := p.expectChar(")"); err != nil {
		return nil, err
	}

	if len(chain) == 1 && chain[0] == "str" {
		if len(args) != 1 {
			return nil, fmt.Errorf("str() takes exactly one argument, got %d", len(args))
		}
		return &ast.Stringify{Expr: args[0]}, nil
	}
	if len(chain) == 1 {
		return &ast.NewInstance{ClassExpr: &ast.VariableValue{Chain: chain}, Args: args}, nil
	}
	receiver := &ast.VariableValue{Chain: chain[:len(chain)-1]}
	return &ast.MethodCall{Receiver: receiver, Method: chain[len(chain)-1], Args: args}, nil
}
