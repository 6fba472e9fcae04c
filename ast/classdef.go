/*
File    : mython/ast/classdef.go
*/
package ast

import "github.com/mythonscript/mython/runtime"

// ClassDefinition binds a pre-built *runtime.Class under Name in the
// enclosing closure (§3.4). The Class value — its methods and parent —
// is assembled once by the parser; executing this node just makes the
// class visible as a callable name, the way `class Name: ...` behaves
// when interpreted top to bottom.
type ClassDefinition struct {
	Name  string
	Class *runtime.Class
}

func (c *ClassDefinition) Execute(closure runtime.Closure, _ *runtime.Context) (runtime.ObjectHolder, error) {
	holder := runtime.Share(c.Class)
	closure.Set(c.Name, holder)
	return holder, nil
}
