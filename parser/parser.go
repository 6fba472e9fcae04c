/*
File    : mython/parser/parser.go
*/

// Package parser is a recursive-descent parser that turns a Mython
// token stream into the ast/runtime node tree the evaluator walks. It
// is a supporting collaborator, not part of the lexer/evaluator
// contract: ast and runtime never import it, and it exists only so
// source text can reach a runnable program (the CLI, the REPL, and the
// end-to-end tests all go through here).
//
// The grammar is the indentation-block style the lexer's Indent/Dedent
// synthesis implies:
//
//	program    := statement*
//	statement  := classDef | ifElse | return | print | assignOrExpr
//	classDef   := "class" Id ["(" Id ")"] ":" block
//	methodDef  := "def" Id "(" params ")" ":" block
//	block      := NEWLINE INDENT statement+ DEDENT
//	ifElse     := "if" expr ":" block ["else" ":" block]
//	return     := "return" [expr] NEWLINE
//	print      := "print" [expr ("," expr)*] NEWLINE
//	assignOrExpr := dottedChain "=" expr NEWLINE | expr NEWLINE
//	expr       := or
//	or         := and ("or" and)*
//	and        := not ("and" not)*
//	not        := "not" not | comparison
//	comparison := additive (("==" | "!=" | "<" | "<=" | ">" | ">=") additive)?
//	additive   := term (("+" | "-") term)*
//	term       := unary (("*" | "/") unary)*
//	unary      := primary
//	primary    := Number | String | "True" | "False" | "None"
//	            | "(" expr ")" | call
//	call       := dottedChain ["(" args ")"]
package parser

import (
	"fmt"

	"github.com/mythonscript/mython/ast"
	"github.com/mythonscript/mython/runtime"
	"github.com/mythonscript/mython/token"
)

// Parser walks a fixed token slice with one token of lookahead.
type Parser struct {
	tokens  []token.Token
	pos     int
	classes map[string]*runtime.Class
}

// Parse tokenizes nothing itself: it consumes an already-lexed token
// stream (see mython.Run for the lexer -> parser wiring) and returns
// the program as a single Compound statement.
func Parse(tokens []token.Token) (*ast.Compound, error) {
	p := &Parser{tokens: tokens, classes: make(map[string]*runtime.Class)}
	var stmts []ast.Node
	for !p.atEof() {
		if p.skipBlankLine() {
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &ast.Compound{Stmts: stmts}, nil
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return token.New(token.Eof, 0, 0)
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek() token.Token {
	if p.pos+1 >= len(p.tokens) {
		return token.New(token.Eof, 0, 0)
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) atEof() bool { return p.cur().Kind == token.Eof }

// skipBlankLine consumes a stray Newline at statement-boundary position
// (blank lines between statements collapse to nothing).
func (p *Parser) skipBlankLine() bool {
	if p.cur().Kind == token.Newline {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if p.cur().Kind != kind {
		return token.Token{}, fmt.Errorf("parse error at %d:%d: expected %s, got %s",
			p.cur().Line, p.cur().Column, kindLabel(kind), p.cur().String())
	}
	return p.advance(), nil
}

func (p *Parser) expectChar(c string) error {
	if p.cur().Kind != token.Char || p.cur().StrValue != c {
		return fmt.Errorf("parse error at %d:%d: expected %q, got %s", p.cur().Line, p.cur().Column, c, p.cur().String())
	}
	p.advance()
	return nil
}

func (p *Parser) isChar(c string) bool {
	return p.cur().Kind == token.Char && p.cur().StrValue == c
}

func kindLabel(k token.Kind) string {
	return fmt.Sprintf("Kind(%d)", k)
}

// parseBlock consumes NEWLINE INDENT statement+ DEDENT and returns the
// body as a Compound.
func (p *Parser) parseBlock() (*ast.Compound, error) {
	if _, err := p.expect(token.Newline); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Indent); err != nil {
		return nil, err
	}
	var stmts []ast.Node
	for p.cur().Kind != token.Dedent && p.cur().Kind != token.Eof {
		if p.skipBlankLine() {
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	// The lexer never synthesizes closing Dedents for indentation levels
	// still open at end-of-input (lexer.run), so a block that runs to
	// the last line of the source ends on Eof instead of Dedent.
	if p.cur().Kind == token.Dedent {
		p.advance()
	}
	return &ast.Compound{Stmts: stmts}, nil
}
