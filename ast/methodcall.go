/*
File    : mython/ast/methodcall.go
*/
package ast

import "github.com/mythonscript/mython/runtime"

// MethodCall evaluates Receiver, then invokes Method on it with Args
// (§4.6). The receiver must be a ClassInstance; arity is checked by
// ClassInstance.Call against the matching method's declared parameters.
type MethodCall struct {
	Receiver Node
	Method   string
	Args     []Node
}

func (m *MethodCall) Execute(closure runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	receiver, err := m.Receiver.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	ci, ok := receiver.TryInstance()
	if !ok {
		return runtime.None(), runtime.NewAttributeError("cannot call method %q on a non-instance value", m.Method)
	}
	args := make([]runtime.ObjectHolder, len(m.Args))
	for i, a := range m.Args {
		v, err := a.Execute(closure, ctx)
		if err != nil {
			return runtime.None(), err
		}
		args[i] = v
	}
	return ci.Call(m.Method, args, ctx)
}
