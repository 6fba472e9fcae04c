/*
File    : mython/ast/return.go
*/
package ast

import "github.com/mythonscript/mython/runtime"

// Return evaluates Expr and wraps the result in a ReturnValue sentinel
// (§4.7, option b). Compound stops running further statements as soon
// as it sees this sentinel come back from a child; MethodBody is the
// only node that strips the sentinel back off.
type Return struct {
	Expr Node
}

func (r *Return) Execute(closure runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	var value runtime.ObjectHolder
	if r.Expr != nil {
		v, err := r.Expr.Execute(closure, ctx)
		if err != nil {
			return runtime.None(), err
		}
		value = v
	} else {
		value = runtime.None()
	}
	return runtime.Own(&runtime.ReturnValue{Value: value}), nil
}
