/*
File    : mython/ast/methodbody.go
*/
package ast

import "github.com/mythonscript/mython/runtime"

// MethodBody wraps a method's Compound and is the node installed as
// runtime.Method.Body. It is the one AST node that unwraps a ReturnValue
// sentinel back into a plain value (§4.7) — in Compound and IfElse the
// sentinel passes through untouched. ClassInstance.Call also unwraps
// whatever a method body returns.
type MethodBody struct {
	Body Node
}

func (m *MethodBody) Execute(closure runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	result, err := m.Body.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	return runtime.UnwrapReturn(result), nil
}
