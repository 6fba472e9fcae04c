/*
File    : mython/parser/classdef.go
*/
package parser

import (
	"fmt"

	"github.com/mythonscript/mython/ast"
	"github.com/mythonscript/mython/runtime"
	"github.com/mythonscript/mython/token"
)

// parseClassDef parses `class Name [(Base)]: ` followed by an indented
// block of method definitions, builds the runtime.Class once (method
// bodies included), and registers it under Name for any later subclass
// to reference as a base (§3.2, §4.6).
func (p *Parser) parseClassDef() (ast.Node, error) {
	p.advance() // "class"
	nameTok, err := p.expect(token.Id)
	if err != nil {
		return nil, err
	}
	name := nameTok.StrValue

	var parent *runtime.Class
	if p.isChar("(") {
		p.advance()
		baseTok, err := p.expect(token.Id)
		if err != nil {
			return nil, err
		}
		base, ok := p.classes[baseTok.StrValue]
		if !ok {
			return nil, fmt.Errorf("class %q extends undefined base %q", name, baseTok.StrValue)
		}
		parent = base
		if err := p.expectChar(")"); err != nil {
			return nil, err
		}
	}
	if err := p.expectChar(":"); err != nil {
		return nil, err
	}

	if _, err := p.expect(token.Newline); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Indent); err != nil {
		return nil, err
	}
	var methods []runtime.Method
	for p.cur().Kind != token.Dedent && p.cur().Kind != token.Eof {
		if p.skipBlankLine() {
			continue
		}
		m, err := p.parseMethodDef()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	// No trailing Dedent is synthesized when the class body runs to the
	// end of the source (lexer.run never force-closes open indentation).
	if p.cur().Kind == token.Dedent {
		p.advance()
	}

	cls := runtime.NewClass(name, methods, parent)
	p.classes[name] = cls
	return &ast.ClassDefinition{Name: name, Class: cls}, nil
}

func (p *Parser) parseMethodDef() (runtime.Method, error) {
	if _, err := p.expect(token.Def); err != nil {
		return runtime.Method{}, err
	}
	nameTok, err := p.expect(token.Id)
	if err != nil {
		return runtime.Method{}, err
	}
	if err := p.expectChar("("); err != nil {
		return runtime.Method{}, err
	}
	// The receiver is always named "self" and is bound by
	// ClassInstance.Call, not carried in Params (§4.6).
	self, err := p.expect(token.Id)
	if err != nil {
		return runtime.Method{}, err
	}
	if self.StrValue != "self" {
		return runtime.Method{}, fmt.Errorf("method %q: first parameter must be named self, got %q", nameTok.StrValue, self.StrValue)
	}
	var params []string
	for p.isChar(",") {
		p.advance()
		next, err := p.expect(token.Id)
		if err != nil {
			return runtime.Method{}, err
		}
		params = append(params, next.StrValue)
	}
	if err := p.expectChar(")"); err != nil {
		return runtime.Method{}, err
	}
	if err := p.expectChar(":"); err != nil {
		return runtime.Method{}, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return runtime.Method{}, err
	}
	return runtime.Method{Name: nameTok.StrValue, Params: params, Body: &ast.MethodBody{Body: body}}, nil
}
