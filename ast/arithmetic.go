/*
File    : mython/ast/arithmetic.go
*/
package ast

import "github.com/mythonscript/mython/runtime"

// Add implements `+` (§4.4): Number+Number is arithmetic sum,
// String+String is concatenation, and a ClassInstance defining
// __add__ of arity 1 decides the result itself. Anything else is a
// TypeError.
type Add struct {
	Lhs, Rhs Node
}

func (a *Add) Execute(closure runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	lhs, err := a.Lhs.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	rhs, err := a.Rhs.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}

	if ln, ok := lhs.TryNumber(); ok {
		if rn, ok := rhs.TryNumber(); ok {
			if overflows(ln.Value, rn.Value) {
				return runtime.None(), runtime.NewArithmeticError("integer overflow in %d + %d", ln.Value, rn.Value)
			}
			return runtime.Own(&runtime.Number{Value: ln.Value + rn.Value}), nil
		}
	}
	if ls, ok := lhs.TryString(); ok {
		if rs, ok := rhs.TryString(); ok {
			return runtime.Own(&runtime.String{Value: ls.Value + rs.Value}), nil
		}
	}
	if ci, ok := lhs.TryInstance(); ok && ci.HasMethod("__add__", 1) {
		return ci.Call("__add__", []runtime.ObjectHolder{rhs}, ctx)
	}
	return runtime.None(), runtime.NewTypeError("unsupported operand types for +")
}

func overflows(a, b int64) bool {
	if b > 0 && a > (1<<63-1)-b {
		return true
	}
	if b < 0 && a < -(1<<63)-b {
		return true
	}
	return false
}

// Sub implements `-`: Number subtraction only (§4.4).
type Sub struct {
	Lhs, Rhs Node
}

func (s *Sub) Execute(closure runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	ln, rn, err := numericOperands(s.Lhs, s.Rhs, closure, ctx, "-")
	if err != nil {
		return runtime.None(), err
	}
	diff := ln.Value - rn.Value
	// Checked on the wrapped difference rather than via -rn.Value, which
	// itself overflows when rn.Value == math.MinInt64.
	if (rn.Value > 0 && diff > ln.Value) || (rn.Value < 0 && diff < ln.Value) {
		return runtime.None(), runtime.NewArithmeticError("integer overflow in %d - %d", ln.Value, rn.Value)
	}
	return runtime.Own(&runtime.Number{Value: diff}), nil
}

// Mult implements `*`: Number multiplication only.
type Mult struct {
	Lhs, Rhs Node
}

func (m *Mult) Execute(closure runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	ln, rn, err := numericOperands(m.Lhs, m.Rhs, closure, ctx, "*")
	if err != nil {
		return runtime.None(), err
	}
	product := ln.Value * rn.Value
	if ln.Value != 0 && (product/ln.Value != rn.Value || (ln.Value == -1 && rn.Value == -1<<63)) {
		return runtime.None(), runtime.NewArithmeticError("integer overflow in %d * %d", ln.Value, rn.Value)
	}
	return runtime.Own(&runtime.Number{Value: product}), nil
}

// Div implements `/`: Number division only; division by zero is an
// ArithmeticError, not a panic.
type Div struct {
	Lhs, Rhs Node
}

func (d *Div) Execute(closure runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	ln, rn, err := numericOperands(d.Lhs, d.Rhs, closure, ctx, "/")
	if err != nil {
		return runtime.None(), err
	}
	if rn.Value == 0 {
		return runtime.None(), runtime.NewArithmeticError("division by zero")
	}
	if ln.Value == -1<<63 && rn.Value == -1 {
		return runtime.None(), runtime.NewArithmeticError("integer overflow in %d / %d", ln.Value, rn.Value)
	}
	return runtime.Own(&runtime.Number{Value: ln.Value / rn.Value}), nil
}

func numericOperands(lhsNode, rhsNode Node, closure runtime.Closure, ctx *runtime.Context, op string) (*runtime.Number, *runtime.Number, error) {
	lhs, err := lhsNode.Execute(closure, ctx)
	if err != nil {
		return nil, nil, err
	}
	rhs, err := rhsNode.Execute(closure, ctx)
	if err != nil {
		return nil, nil, err
	}
	ln, ok := lhs.TryNumber()
	if !ok {
		return nil, nil, runtime.NewTypeError("operand for %q must be a Number", op)
	}
	rn, ok := rhs.TryNumber()
	if !ok {
		return nil, nil, runtime.NewTypeError("operand for %q must be a Number", op)
	}
	return ln, rn, nil
}
