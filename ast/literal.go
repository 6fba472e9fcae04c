/*
File    : mython/ast/literal.go
*/
package ast

import "github.com/mythonscript/mython/runtime"

// NumericConst is an integer literal (§3.4).
type NumericConst struct {
	Value int64
}

func (n *NumericConst) Execute(_ runtime.Closure, _ *runtime.Context) (runtime.ObjectHolder, error) {
	return runtime.Own(&runtime.Number{Value: n.Value}), nil
}

// StringConst is a string literal.
type StringConst struct {
	Value string
}

func (s *StringConst) Execute(_ runtime.Closure, _ *runtime.Context) (runtime.ObjectHolder, error) {
	return runtime.Own(&runtime.String{Value: s.Value}), nil
}

// BoolConst is True or False.
type BoolConst struct {
	Value bool
}

func (b *BoolConst) Execute(_ runtime.Closure, _ *runtime.Context) (runtime.ObjectHolder, error) {
	return runtime.Own(&runtime.Bool{Value: b.Value}), nil
}

// NoneLiteral is the None keyword.
type NoneLiteral struct{}

func (NoneLiteral) Execute(_ runtime.Closure, _ *runtime.Context) (runtime.ObjectHolder, error) {
	return runtime.None(), nil
}
