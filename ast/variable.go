/*
File    : mython/ast/variable.go
*/
package ast

import "github.com/mythonscript/mython/runtime"

// VariableValue resolves a dotted name chain against the call frame and
// then, for each further segment, against the preceding value's fields
// as a ClassInstance (§4.9). A single-segment chain is a plain local
// lookup; `self.x.y` resolves self, then x on self's fields, then y on
// x's fields.
type VariableValue struct {
	Chain []string
}

func (v *VariableValue) Execute(closure runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	return resolveChain(closure, v.Chain)
}

func resolveChain(closure runtime.Closure, chain []string) (runtime.ObjectHolder, error) {
	if len(chain) == 0 {
		return runtime.None(), runtime.NewRuntimeError("empty variable reference")
	}
	current, ok := closure.Get(chain[0])
	if !ok {
		return runtime.None(), runtime.NewNameError(chain[0])
	}
	for _, field := range chain[1:] {
		ci, ok := current.TryInstance()
		if !ok {
			return runtime.None(), runtime.NewAttributeError("cannot access %q on a non-instance value", field)
		}
		current, ok = ci.Fields.Get(field)
		if !ok {
			return runtime.None(), runtime.NewAttributeError("instance of %q has no field %q", ci.Class.Name, field)
		}
	}
	return current, nil
}

// FieldAssignment assigns Value to the last segment of Chain, walking
// every prior segment as field access (§3.4, §4.9). Chain must have at
// least two segments: the target of a bare single-name assignment is
// handled by Assignment instead.
type FieldAssignment struct {
	Chain []string
	Value Node
}

func (f *FieldAssignment) Execute(closure runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	if len(f.Chain) < 2 {
		return runtime.None(), runtime.NewRuntimeError("field assignment requires a dotted target")
	}
	receiver, err := resolveChain(closure, f.Chain[:len(f.Chain)-1])
	if err != nil {
		return runtime.None(), err
	}
	ci, ok := receiver.TryInstance()
	if !ok {
		return runtime.None(), runtime.NewAttributeError("cannot assign a field on a non-instance value")
	}
	value, err := f.Value.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	ci.Fields.Set(f.Chain[len(f.Chain)-1], value)
	return value, nil
}
