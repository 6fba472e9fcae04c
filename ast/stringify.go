/*
File    : mython/ast/stringify.go
*/
package ast

import (
	"bytes"

	"github.com/mythonscript/mython/runtime"
)

// Stringify renders Expr's canonical text form (the same text a Print
// statement would emit) and yields it as a String value.
type Stringify struct {
	Expr Node
}

func (s *Stringify) Execute(closure runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	value, err := s.Expr.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	var buf bytes.Buffer
	if err := value.Print(&buf, ctx); err != nil {
		return runtime.None(), err
	}
	return runtime.Own(&runtime.String{Value: buf.String()}), nil
}
