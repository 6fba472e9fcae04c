/*
File    : mython/mython/mython.go
*/

// Package mython is the facade that wires the lexer, parser, and
// evaluator into a single entry point for running Mython source text,
// used by both the file-mode CLI and the REPL (§6).
package mython

import (
	"io"

	"github.com/mythonscript/mython/lexer"
	"github.com/mythonscript/mython/parser"
	"github.com/mythonscript/mython/runtime"
)

// Program holds a single reusable outer Closure, the way a REPL session
// keeps top-level names bound across successive inputs.
type Program struct {
	closure runtime.Closure
}

// NewProgram returns a Program with a fresh, empty top-level Closure.
func NewProgram() *Program {
	return &Program{closure: runtime.NewClosure()}
}

// Run lexes, parses, and evaluates src against the program's persistent
// closure, writing any Print output to w. It returns the result of the
// top-level Compound, which is None when the statements run to
// completion; the values of individual statements are not returned.
func (p *Program) Run(src string, w io.Writer) (runtime.ObjectHolder, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return runtime.None(), err
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		return runtime.None(), err
	}
	ctx := runtime.NewContext(w)
	return program.Execute(p.closure, ctx)
}

// Run is a one-shot convenience wrapper for running a complete,
// self-contained source string against a fresh closure.
func Run(src string, w io.Writer) error {
	_, err := NewProgram().Run(src, w)
	return err
}
