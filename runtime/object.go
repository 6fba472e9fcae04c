/*
File    : mython/runtime/object.go
*/
package runtime

import (
	"fmt"
	"io"
)

// Object is the interface every Mython runtime value implements. It
// mirrors the teacher's GoMixObject interface: a type tag plus a
// canonical text form, but the text form here needs the evaluation
// Context because ClassInstance.Print may have to invoke a __str__
// method.
type Object interface {
	// TypeName returns a short tag for diagnostics (not user-facing).
	TypeName() string
	// Print writes the value's canonical text form (§4.2) to w.
	Print(w io.Writer, ctx *Context) error
}

// Executable is the contract every ast node satisfies. It is defined
// here, not in package ast, so that Method.Body (owned by runtime.Class)
// can reference a node without runtime importing ast — the evaluator
// (package ast) imports runtime, never the reverse, exactly as the
// original's ast/statement.h depends on runtime.h and not vice versa.
type Executable interface {
	Execute(closure Closure, ctx *Context) (ObjectHolder, error)
}

// Number is a signed integer value (§3.2). Mython has no floats.
type Number struct {
	Value int64
}

func (n *Number) TypeName() string { return "Number" }

func (n *Number) Print(w io.Writer, _ *Context) error {
	_, err := fmt.Fprintf(w, "%d", n.Value)
	return err
}

// String is immutable text.
type String struct {
	Value string
}

func (s *String) TypeName() string { return "String" }

func (s *String) Print(w io.Writer, _ *Context) error {
	_, err := io.WriteString(w, s.Value)
	return err
}

// Bool is a boolean value, printed as "True"/"False" per Mython's
// surface syntax.
type Bool struct {
	Value bool
}

func (b *Bool) TypeName() string { return "Bool" }

func (b *Bool) Print(w io.Writer, _ *Context) error {
	text := "False"
	if b.Value {
		text = "True"
	}
	_, err := io.WriteString(w, text)
	return err
}

// ReturnValue is the sentinel produced by a Return statement (§4.7). It
// is never user-visible; Compound and IfElse recognize it and unwind
// without running further siblings, and MethodBody is the only node
// that unwraps it back into a plain value. Modeling it as an Object
// (rather than threading a third return value through every Execute)
// mirrors the teacher's eval.ReturnValue / UnwrapReturnValue pattern.
type ReturnValue struct {
	Value ObjectHolder
}

func (r *ReturnValue) TypeName() string { return "ReturnValue" }

func (r *ReturnValue) Print(w io.Writer, ctx *Context) error {
	return r.Value.Print(w, ctx)
}

// AsReturn reports whether holder wraps a ReturnValue sentinel and, if
// so, returns it.
func AsReturn(holder ObjectHolder) (*ReturnValue, bool) {
	rv, ok := holder.obj.(*ReturnValue)
	return rv, ok
}

// UnwrapReturn strips a ReturnValue sentinel, if present, yielding the
// value it carries. Non-sentinel holders pass through unchanged.
func UnwrapReturn(holder ObjectHolder) ObjectHolder {
	if rv, ok := AsReturn(holder); ok {
		return rv.Value
	}
	return holder
}
