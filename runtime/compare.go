/*
File    : mython/runtime/compare.go
*/
package runtime

// Equal implements Mython's == (§4.5): a ClassInstance defining __eq__
// of arity 1 decides equality itself; two empty holders (None == None)
// are equal; otherwise equality is structural, defined in terms of Less
// in both directions.
func Equal(lhs, rhs ObjectHolder, ctx *Context) (bool, error) {
	if ci, ok := lhs.TryInstance(); ok && ci.HasMethod("__eq__", 1) {
		return callPredicate(ci, "__eq__", rhs, ctx)
	}
	if lhs.IsNone() && rhs.IsNone() {
		return true, nil
	}
	lessForward, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	if lessForward {
		return false, nil
	}
	lessBackward, err := Less(rhs, lhs, ctx)
	if err != nil {
		return false, err
	}
	return !lessBackward, nil
}

// NotEqual is the negation of Equal.
func NotEqual(lhs, rhs ObjectHolder, ctx *Context) (bool, error) {
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// Less implements Mython's < (§4.5): same-type primitive comparison for
// Number, String, and Bool (false < true); a ClassInstance defining
// __lt__ of arity 1 decides ordering itself. Anything else is a
// TypeError.
func Less(lhs, rhs ObjectHolder, ctx *Context) (bool, error) {
	if ln, ok := lhs.TryNumber(); ok {
		if rn, ok := rhs.TryNumber(); ok {
			return ln.Value < rn.Value, nil
		}
	}
	if ls, ok := lhs.TryString(); ok {
		if rs, ok := rhs.TryString(); ok {
			return ls.Value < rs.Value, nil
		}
	}
	if lb, ok := lhs.TryBool(); ok {
		if rb, ok := rhs.TryBool(); ok {
			return !lb.Value && rb.Value, nil
		}
	}
	if ci, ok := lhs.TryInstance(); ok && ci.HasMethod("__lt__", 1) {
		return callPredicate(ci, "__lt__", rhs, ctx)
	}
	return false, NewTypeError("unorderable values: %s and %s", typeNameOf(lhs), typeNameOf(rhs))
}

// LessOrEqual is `<  ||  ==`.
func LessOrEqual(lhs, rhs ObjectHolder, ctx *Context) (bool, error) {
	less, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	if less {
		return true, nil
	}
	return Equal(lhs, rhs, ctx)
}

// Greater is `!(<=)`.
func Greater(lhs, rhs ObjectHolder, ctx *Context) (bool, error) {
	le, err := LessOrEqual(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !le, nil
}

// GreaterOrEqual is `!(<)`.
func GreaterOrEqual(lhs, rhs ObjectHolder, ctx *Context) (bool, error) {
	less, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !less, nil
}

// callPredicate invokes a one-argument dunder method expected to return
// a Bool, and reports a TypeError if it returns anything else.
func callPredicate(ci *ClassInstance, method string, arg ObjectHolder, ctx *Context) (bool, error) {
	result, err := ci.Call(method, []ObjectHolder{arg}, ctx)
	if err != nil {
		return false, err
	}
	b, ok := result.TryBool()
	if !ok {
		return false, NewTypeError("%s must return a Bool", method)
	}
	return b.Value, nil
}

func typeNameOf(holder ObjectHolder) string {
	if holder.IsNone() {
		return "None"
	}
	return holder.Get().TypeName()
}
