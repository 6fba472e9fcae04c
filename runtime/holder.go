/*
File    : mython/runtime/holder.go
*/
package runtime

import "io"

// ObjectHolder is a shared, nullable handle to a runtime Object (§3.2,
// §4.2). On a garbage-collected host, Own and Share collapse to the
// same representation: a Go interface value already carries a pointer
// (or, for the rare value-typed Object, a boxed copy) whose lifetime is
// managed by the collector, so there is no distinction between "this
// holder owns the only reference" and "this holder borrows a reference
// someone else owns" the way there is in the C++ original's
// shared_ptr-vs-raw-pointer split. Copying an ObjectHolder is always
// cheap — it copies an interface value.
type ObjectHolder struct {
	obj Object
}

// Own wraps a newly constructed value.
func Own(obj Object) ObjectHolder {
	return ObjectHolder{obj: obj}
}

// Share wraps a reference to a value whose lifetime is guaranteed by
// its owner (used for `self` when invoking a method on a ClassInstance,
// and for the Class value a ClassDefinition binds).
func Share(obj Object) ObjectHolder {
	return ObjectHolder{obj: obj}
}

// None returns the empty holder, representing Mython's None.
func None() ObjectHolder {
	return ObjectHolder{}
}

// IsNone reports whether the holder is empty.
func (h ObjectHolder) IsNone() bool {
	return h.obj == nil
}

// Get returns the underlying Object, or nil for an empty holder.
func (h ObjectHolder) Get() Object {
	return h.obj
}

// TryNumber downcasts to *Number, reporting success.
func (h ObjectHolder) TryNumber() (*Number, bool) {
	n, ok := h.obj.(*Number)
	return n, ok
}

// TryString downcasts to *String, reporting success.
func (h ObjectHolder) TryString() (*String, bool) {
	s, ok := h.obj.(*String)
	return s, ok
}

// TryBool downcasts to *Bool, reporting success.
func (h ObjectHolder) TryBool() (*Bool, bool) {
	b, ok := h.obj.(*Bool)
	return b, ok
}

// TryClass downcasts to *Class, reporting success.
func (h ObjectHolder) TryClass() (*Class, bool) {
	c, ok := h.obj.(*Class)
	return c, ok
}

// TryInstance downcasts to *ClassInstance, reporting success.
func (h ObjectHolder) TryInstance() (*ClassInstance, bool) {
	ci, ok := h.obj.(*ClassInstance)
	return ci, ok
}

// Print writes the holder's canonical text form: the empty holder
// prints the literal "None" (§4.2, §4.8); otherwise it delegates to the
// held Object.
func (h ObjectHolder) Print(w io.Writer, ctx *Context) error {
	if h.IsNone() {
		_, err := io.WriteString(w, "None")
		return err
	}
	return h.obj.Print(w, ctx)
}
