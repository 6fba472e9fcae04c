/*
File    : mython/ast/ifelse.go
*/
package ast

import "github.com/mythonscript/mython/runtime"

// IfElse evaluates Cond and runs Then if truthy, otherwise Else. Else
// may be nil for an `if` with no `else` clause, in which case the
// statement yields None when Cond is falsy. A Return executed inside
// either branch propagates as a ReturnValue sentinel without further
// interpretation here (§4.7).
type IfElse struct {
	Cond Node
	Then Node
	Else Node
}

func (s *IfElse) Execute(closure runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	cond, err := s.Cond.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	if runtime.IsTrue(cond) {
		return s.Then.Execute(closure, ctx)
	}
	if s.Else != nil {
		return s.Else.Execute(closure, ctx)
	}
	return runtime.None(), nil
}
