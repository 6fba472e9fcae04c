/*
File    : mython/runtime/class.go
*/
package runtime

import (
	"fmt"
	"io"
)

// Method carries a method's name, its ordered formal parameter names,
// and its owned body (§3.2). Body is an Executable rather than a
// concrete ast type to avoid runtime importing ast.
type Method struct {
	Name   string
	Params []string
	Body   Executable
}

// Class is a class descriptor: a name, its own methods (method lookup
// searches these first), and an optional single parent (§3.2). The
// inheritance graph is a tree: no multiple inheritance, no cycles.
type Class struct {
	Name    string
	Methods []Method
	Parent  *Class
}

// NewClass builds a Class with the given name, methods, and optional
// parent (nil for no parent).
func NewClass(name string, methods []Method, parent *Class) *Class {
	return &Class{Name: name, Methods: methods, Parent: parent}
}

func (c *Class) TypeName() string { return "Class" }

func (c *Class) Print(w io.Writer, _ *Context) error {
	_, err := fmt.Fprintf(w, "Class %s", c.Name)
	return err
}

// GetMethod searches the class's own methods first, then walks the
// parent chain depth-first; the first match by name wins (§3.2).
func (c *Class) GetMethod(name string) (*Method, bool) {
	for i := range c.Methods {
		if c.Methods[i].Name == name {
			return &c.Methods[i], true
		}
	}
	if c.Parent != nil {
		return c.Parent.GetMethod(name)
	}
	return nil, false
}

// HasMethod reports whether the method GetMethod finds for name has
// exactly argc parameters (§3.2). Only that first match is checked: a
// same-named method further up the parent chain with a different arity
// is not considered.
func (c *Class) HasMethod(name string, argc int) bool {
	m, ok := c.GetMethod(name)
	return ok && len(m.Params) == argc
}

// ClassInstance is a runtime object: a reference to its Class plus a
// mutable field map.
type ClassInstance struct {
	Class  *Class
	Fields Closure
}

// NewInstance allocates a fresh, field-less instance of cls.
func NewInstance(cls *Class) *ClassInstance {
	return &ClassInstance{Class: cls, Fields: NewClosure()}
}

func (ci *ClassInstance) TypeName() string { return "ClassInstance" }

// Print writes __str__()'s result if the class defines one with arity
// 0; otherwise a stable, testable identity form (§4.2, §9).
func (ci *ClassInstance) Print(w io.Writer, ctx *Context) error {
	if ci.HasMethod("__str__", 0) {
		result, err := ci.Call("__str__", nil, ctx)
		if err != nil {
			return err
		}
		return result.Print(w, ctx)
	}
	_, err := fmt.Fprintf(w, "<instance of %s>", ci.Class.Name)
	return err
}

// HasMethod delegates to the owning class's lookup chain.
func (ci *ClassInstance) HasMethod(name string, argc int) bool {
	return ci.Class.HasMethod(name, argc)
}

// Call invokes method on this instance with args (§4.6): it requires an
// exact arity match, binds `self` and the formal parameters into a
// fresh call frame, and evaluates the method body. A body that runs to
// completion without a Return yields None.
func (ci *ClassInstance) Call(method string, args []ObjectHolder, ctx *Context) (ObjectHolder, error) {
	m, ok := ci.Class.GetMethod(method)
	if !ok {
		return None(), NewAttributeError("class %q has no method %q", ci.Class.Name, method)
	}
	if len(m.Params) != len(args) {
		return None(), NewArityError(method, len(m.Params), len(args))
	}

	frame := NewClosure()
	frame.Set("self", Share(ci))
	for i, param := range m.Params {
		frame.Set(param, args[i])
	}

	result, err := m.Body.Execute(frame, ctx)
	if err != nil {
		return None(), err
	}
	return UnwrapReturn(result), nil
}
