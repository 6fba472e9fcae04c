/*
File    : mython/parser/statements.go
*/
package parser

import (
	"github.com/mythonscript/mython/ast"
	"github.com/mythonscript/mython/token"
)

func (p *Parser) parseStatement() (ast.Node, error) {
	switch p.cur().Kind {
	case token.Class:
		return p.parseClassDef()
	case token.If:
		return p.parseIfElse()
	case token.Return:
		return p.parseReturn()
	case token.Print:
		return p.parsePrint()
	default:
		return p.parseAssignmentOrExpr()
	}
}

func (p *Parser) parseIfElse() (ast.Node, error) {
	p.advance() // "if"
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(":"); err != nil {
		return nil, err
	}
	thenBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseBlock ast.Node
	if p.cur().Kind == token.Else {
		p.advance()
		if err := p.expectChar(":"); err != nil {
			return nil, err
		}
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfElse{Cond: cond, Then: thenBlock, Else: elseBlock}, nil
}

func (p *Parser) parseReturn() (ast.Node, error) {
	p.advance() // "return"
	var expr ast.Node
	if p.cur().Kind != token.Newline {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		expr = e
	}
	if _, err := p.expect(token.Newline); err != nil {
		return nil, err
	}
	return &ast.Return{Expr: expr}, nil
}

func (p *Parser) parsePrint() (ast.Node, error) {
	p.advance() // "print"
	var args []ast.Node
	if p.cur().Kind != token.Newline {
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
	if _, err := p.expect(token.Newline); err != nil {
		return nil, err
	}
	return &ast.Print{Args: args}, nil
}

// parseAssignmentOrExpr parses either `dotted.chain = expr` or a bare
// expression statement (typically a MethodCall invoked for effect).
func (p *Parser) parseAssignmentOrExpr() (ast.Node, error) {
	startPos := p.pos
	if p.cur().Kind == token.Id {
		chain, ok := p.tryParseDottedChain()
		if ok && p.isChar("=") {
			p.advance()
			value, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.Newline); err != nil {
				return nil, err
			}
			if len(chain) == 1 {
				return &ast.Assignment{Name: chain[0], Value: value}, nil
			}
			return &ast.FieldAssignment{Chain: chain, Value: value}, nil
		}
		p.pos = startPos
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Newline); err != nil {
		return nil, err
	}
	return expr, nil
}

// tryParseDottedChain consumes Id ("." Id)* and reports the identifiers
// read. It never fails on its own; the caller decides whether what
// follows makes the chain an assignment target.
func (p *Parser) tryParseDottedChain() ([]string, bool) {
	if p.cur().Kind != token.Id {
		return nil, false
	}
	chain := []string{p.cur().StrValue}
	p.advance()
	for p.isChar(".") && p.peek().Kind == token.Id {
		p.advance()
		chain = append(chain, p.cur().StrValue)
		p.advance()
	}
	return chain, true
}
