/*
File    : mython/ast/ast_test.go
*/
package ast

import (
	"bytes"
	"testing"

	"github.com/mythonscript/mython/runtime"
	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, node Node, closure runtime.Closure) (runtime.ObjectHolder, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	ctx := runtime.NewContext(&buf)
	result, err := node.Execute(closure, ctx)
	assert.NoError(t, err)
	return result, &buf
}

func TestLiterals(t *testing.T) {
	closure := runtime.NewClosure()
	n, _ := run(t, &NumericConst{Value: 5}, closure)
	num, ok := n.TryNumber()
	assert.True(t, ok)
	assert.Equal(t, int64(5), num.Value)

	s, _ := run(t, &StringConst{Value: "hi"}, closure)
	str, ok := s.TryString()
	assert.True(t, ok)
	assert.Equal(t, "hi", str.Value)

	none, _ := run(t, NoneLiteral{}, closure)
	assert.True(t, none.IsNone())
}

func TestAssignmentAndVariableValue(t *testing.T) {
	closure := runtime.NewClosure()
	_, _ = run(t, &Assignment{Name: "x", Value: &NumericConst{Value: 9}}, closure)

	result, _ := run(t, &VariableValue{Chain: []string{"x"}}, closure)
	num, ok := result.TryNumber()
	assert.True(t, ok)
	assert.Equal(t, int64(9), num.Value)
}

func TestVariableValueUndefinedIsNameError(t *testing.T) {
	closure := runtime.NewClosure()
	var buf bytes.Buffer
	_, err := (&VariableValue{Chain: []string{"missing"}}).Execute(closure, runtime.NewContext(&buf))
	assert.Error(t, err)
	var nameErr *runtime.NameError
	assert.ErrorAs(t, err, &nameErr)
}

func TestArithmetic(t *testing.T) {
	closure := runtime.NewClosure()
	sum, _ := run(t, &Add{Lhs: &NumericConst{Value: 2}, Rhs: &NumericConst{Value: 3}}, closure)
	n, _ := sum.TryNumber()
	assert.Equal(t, int64(5), n.Value)

	concat, _ := run(t, &Add{Lhs: &StringConst{Value: "foo"}, Rhs: &StringConst{Value: "bar"}}, closure)
	s, _ := concat.TryString()
	assert.Equal(t, "foobar", s.Value)

	quot, _ := run(t, &Div{Lhs: &NumericConst{Value: 7}, Rhs: &NumericConst{Value: 2}}, closure)
	q, _ := quot.TryNumber()
	assert.Equal(t, int64(3), q.Value)
}

func TestDivisionByZeroIsArithmeticError(t *testing.T) {
	closure := runtime.NewClosure()
	var buf bytes.Buffer
	_, err := (&Div{Lhs: &NumericConst{Value: 1}, Rhs: &NumericConst{Value: 0}}).Execute(closure, runtime.NewContext(&buf))
	assert.Error(t, err)
	var arithErr *runtime.ArithmeticError
	assert.ErrorAs(t, err, &arithErr)
}

func TestAndOrShortCircuit(t *testing.T) {
	closure := runtime.NewClosure()
	poison := &VariableValue{Chain: []string{"undefined"}} // would error if evaluated

	result, _ := run(t, &And{Lhs: &BoolConst{Value: false}, Rhs: poison}, closure)
	assert.False(t, runtime.IsTrue(result))

	result, _ = run(t, &Or{Lhs: &BoolConst{Value: true}, Rhs: poison}, closure)
	assert.True(t, runtime.IsTrue(result))
}

func TestIfElseBranches(t *testing.T) {
	closure := runtime.NewClosure()
	stmt := &IfElse{
		Cond: &BoolConst{Value: true},
		Then: &Assignment{Name: "x", Value: &NumericConst{Value: 1}},
		Else: &Assignment{Name: "x", Value: &NumericConst{Value: 2}},
	}
	_, _ = run(t, stmt, closure)
	x, _ := closure.Get("x")
	n, _ := x.TryNumber()
	assert.Equal(t, int64(1), n.Value)
}

func TestCompoundStopsAtReturn(t *testing.T) {
	closure := runtime.NewClosure()
	compound := &Compound{Stmts: []Node{
		&Assignment{Name: "x", Value: &NumericConst{Value: 1}},
		&Return{Expr: &NumericConst{Value: 42}},
		&Assignment{Name: "x", Value: &NumericConst{Value: 99}},
	}}
	result, _ := run(t, compound, closure)
	rv, ok := runtime.AsReturn(result)
	assert.True(t, ok)
	n, _ := rv.Value.TryNumber()
	assert.Equal(t, int64(42), n.Value)

	x, _ := closure.Get("x")
	xn, _ := x.TryNumber()
	assert.Equal(t, int64(1), xn.Value, "statement after Return must not run")
}

func TestClassInstantiationAndMethodCall(t *testing.T) {
	initBody := &MethodBody{Body: &Compound{Stmts: []Node{
		&FieldAssignment{Chain: []string{"self", "value"}, Value: &VariableValue{Chain: []string{"n"}}},
	}}}
	doubleBody := &MethodBody{Body: &Compound{Stmts: []Node{
		&Return{Expr: &Add{
			Lhs: &VariableValue{Chain: []string{"self", "value"}},
			Rhs: &VariableValue{Chain: []string{"self", "value"}},
		}},
	}}}
	cls := runtime.NewClass("Box", []runtime.Method{
		{Name: "__init__", Params: []string{"n"}, Body: initBody},
		{Name: "double", Params: nil, Body: doubleBody},
	}, nil)

	closure := runtime.NewClosure()
	closure.Set("Box", runtime.Share(cls))

	newInstance := &NewInstance{ClassExpr: &VariableValue{Chain: []string{"Box"}}, Args: []Node{&NumericConst{Value: 21}}}
	instanceHolder, _ := run(t, newInstance, closure)
	closure.Set("b", instanceHolder)

	result, _ := run(t, &MethodCall{Receiver: &VariableValue{Chain: []string{"b"}}, Method: "double"}, closure)
	n, ok := result.TryNumber()
	assert.True(t, ok)
	assert.Equal(t, int64(42), n.Value)
}

func TestPrintWritesSpaceSeparatedValuesAndNewline(t *testing.T) {
	closure := runtime.NewClosure()
	_, buf := run(t, &Print{Args: []Node{&StringConst{Value: "hello"}, &NumericConst{Value: 7}}}, closure)
	assert.Equal(t, "hello 7\n", buf.String())
}

func TestStringifyUsesCanonicalTextForm(t *testing.T) {
	closure := runtime.NewClosure()
	result, _ := run(t, &Stringify{Expr: &BoolConst{Value: true}}, closure)
	s, ok := result.TryString()
	assert.True(t, ok)
	assert.Equal(t, "True", s.Value)
}

func TestComparisonDispatchesToClassDunders(t *testing.T) {
	eqBody := &MethodBody{Body: &Compound{Stmts: []Node{
		&Return{Expr: &Comparison{
			Op:  OpEq,
			Lhs: &VariableValue{Chain: []string{"self", "value"}},
			Rhs: &VariableValue{Chain: []string{"other", "value"}},
		}},
	}}}
	cls := runtime.NewClass("Wrapper", []runtime.Method{{Name: "__eq__", Params: []string{"other"}, Body: eqBody}}, nil)
	a := runtime.NewInstance(cls)
	a.Fields.Set("value", runtime.Own(&runtime.Number{Value: 5}))
	b := runtime.NewInstance(cls)
	b.Fields.Set("value", runtime.Own(&runtime.Number{Value: 5}))

	closure := runtime.NewClosure()
	closure.Set("a", runtime.Own(a))
	closure.Set("b", runtime.Own(b))

	result, _ := run(t, &Comparison{Op: OpEq, Lhs: &VariableValue{Chain: []string{"a"}}, Rhs: &VariableValue{Chain: []string{"b"}}}, closure)
	assert.True(t, runtime.IsTrue(result))
}
