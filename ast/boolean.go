/*
File    : mython/ast/boolean.go
*/
package ast

import "github.com/mythonscript/mython/runtime"

// And implements `and` with short-circuit evaluation: if Lhs is falsy,
// Rhs is never evaluated and Lhs's value is returned unchanged.
type And struct {
	Lhs, Rhs Node
}

func (a *And) Execute(closure runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	lhs, err := a.Lhs.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	if !runtime.IsTrue(lhs) {
		return lhs, nil
	}
	return a.Rhs.Execute(closure, ctx)
}

// Or implements `or` with short-circuit evaluation: if Lhs is truthy,
// Rhs is never evaluated.
type Or struct {
	Lhs, Rhs Node
}

func (o *Or) Execute(closure runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	lhs, err := o.Lhs.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	if runtime.IsTrue(lhs) {
		return lhs, nil
	}
	return o.Rhs.Execute(closure, ctx)
}

// Not implements `not`, always yielding a Bool.
type Not struct {
	Expr Node
}

func (n *Not) Execute(closure runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	value, err := n.Expr.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	return runtime.Own(&runtime.Bool{Value: !runtime.IsTrue(value)}), nil
}
