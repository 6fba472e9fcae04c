/*
File    : mython/ast/compound.go
*/
package ast

import "github.com/mythonscript/mython/runtime"

// Compound is a sequence of statements executed in order (a class body,
// a method body, an if/else branch). If any statement yields a
// ReturnValue sentinel, Compound stops immediately and propagates it
// unexamined — it does not belong to Compound to unwrap (§4.7). A
// Compound that runs to completion without hitting a Return yields
// None.
type Compound struct {
	Stmts []Node
}

func (c *Compound) Execute(closure runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	for _, stmt := range c.Stmts {
		result, err := stmt.Execute(closure, ctx)
		if err != nil {
			return runtime.None(), err
		}
		if _, ok := runtime.AsReturn(result); ok {
			return result, nil
		}
	}
	return runtime.None(), nil
}
