/*
File    : mython/ast/newinstance.go
*/
package ast

import "github.com/mythonscript/mython/runtime"

// NewInstance evaluates ClassExpr (typically a VariableValue naming the
// class), allocates a fresh ClassInstance, and — if the class defines
// __init__ with matching arity — calls it with Args before returning
// the instance (§4.6). A class with no __init__ simply yields a
// zero-field instance.
type NewInstance struct {
	ClassExpr Node
	Args      []Node
}

func (n *NewInstance) Execute(closure runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	classHolder, err := n.ClassExpr.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	cls, ok := classHolder.TryClass()
	if !ok {
		return runtime.None(), runtime.NewTypeError("cannot instantiate a non-class value")
	}

	instance := runtime.NewInstance(cls)
	holder := runtime.Own(instance)

	if instance.HasMethod("__init__", len(n.Args)) {
		args := make([]runtime.ObjectHolder, len(n.Args))
		for i, a := range n.Args {
			v, err := a.Execute(closure, ctx)
			if err != nil {
				return runtime.None(), err
			}
			args[i] = v
		}
		if _, err := instance.Call("__init__", args, ctx); err != nil {
			return runtime.None(), err
		}
	}
	return holder, nil
}
