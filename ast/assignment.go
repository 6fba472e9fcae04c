/*
File    : mython/ast/assignment.go
*/
package ast

import "github.com/mythonscript/mython/runtime"

// Assignment binds Name to the result of Value in the current closure,
// creating the binding if it does not already exist (§3.4).
type Assignment struct {
	Name  string
	Value Node
}

func (a *Assignment) Execute(closure runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	value, err := a.Value.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	closure.Set(a.Name, value)
	return value, nil
}
