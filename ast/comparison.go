/*
File    : mython/ast/comparison.go
*/
package ast

import "github.com/mythonscript/mython/runtime"

// CompareOp identifies which of the six relational operators a
// Comparison node applies.
type CompareOp int

const (
	OpEq CompareOp = iota
	OpNotEq
	OpLess
	OpLessOrEq
	OpGreater
	OpGreaterOrEq
)

// Comparison implements ==, !=, <, <=, >, >= (§4.5), dispatching to the
// shared runtime comparison helpers which in turn dispatch to __eq__ /
// __lt__ for class instances.
type Comparison struct {
	Op       CompareOp
	Lhs, Rhs Node
}

func (c *Comparison) Execute(closure runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	lhs, err := c.Lhs.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	rhs, err := c.Rhs.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}

	var result bool
	switch c.Op {
	case OpEq:
		result, err = runtime.Equal(lhs, rhs, ctx)
	case OpNotEq:
		result, err = runtime.NotEqual(lhs, rhs, ctx)
	case OpLess:
		result, err = runtime.Less(lhs, rhs, ctx)
	case OpLessOrEq:
		result, err = runtime.LessOrEqual(lhs, rhs, ctx)
	case OpGreater:
		result, err = runtime.Greater(lhs, rhs, ctx)
	case OpGreaterOrEq:
		result, err = runtime.GreaterOrEqual(lhs, rhs, ctx)
	default:
		return runtime.None(), runtime.NewRuntimeError("unknown comparison operator")
	}
	if err != nil {
		return runtime.None(), err
	}
	return runtime.Own(&runtime.Bool{Value: result}), nil
}
