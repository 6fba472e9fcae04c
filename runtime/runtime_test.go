/*
File    : mython/runtime/runtime_test.go
*/
package runtime

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTrue(t *testing.T) {
	assert.False(t, IsTrue(None()))
	assert.False(t, IsTrue(Own(&Number{Value: 0})))
	assert.True(t, IsTrue(Own(&Number{Value: 5})))
	assert.False(t, IsTrue(Own(&String{Value: ""})))
	assert.True(t, IsTrue(Own(&String{Value: "x"})))
	assert.True(t, IsTrue(Own(&Bool{Value: true})))
	assert.False(t, IsTrue(Own(&Bool{Value: false})))
}

func TestHolderPrintNoneIsLiteralNone(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(&buf)
	assert.NoError(t, None().Print(&buf, ctx))
	assert.Equal(t, "None", buf.String())
}

func TestClassGetMethodSearchesOwnThenParent(t *testing.T) {
	base := NewClass("Animal", []Method{{Name: "speak", Params: nil}}, nil)
	derived := NewClass("Dog", []Method{{Name: "fetch", Params: nil}}, base)

	_, ok := derived.GetMethod("fetch")
	assert.True(t, ok, "own method must be found")
	_, ok = derived.GetMethod("speak")
	assert.True(t, ok, "inherited method must be found via parent chain")
	_, ok = derived.GetMethod("fly")
	assert.False(t, ok)
}

// returningBody is a minimal Executable used to exercise Call without
// depending on package ast (which imports runtime).
type returningBody struct {
	result ObjectHolder
}

func (b returningBody) Execute(_ Closure, _ *Context) (ObjectHolder, error) {
	return b.result, nil
}

func TestClassInstanceCallBindsSelfAndParams(t *testing.T) {
	var seenSelf, seenArg ObjectHolder
	capturingBody := executableFunc(func(closure Closure, ctx *Context) (ObjectHolder, error) {
		seenSelf, _ = closure.Get("self")
		seenArg, _ = closure.Get("amount")
		return None(), nil
	})
	cls := NewClass("Account", []Method{{Name: "deposit", Params: []string{"amount"}, Body: capturingBody}}, nil)
	instance := NewInstance(cls)

	_, err := instance.Call("deposit", []ObjectHolder{Own(&Number{Value: 10})}, NewContext(&bytes.Buffer{}))
	assert.NoError(t, err)

	selfInstance, ok := seenSelf.TryInstance()
	assert.True(t, ok)
	assert.Same(t, instance, selfInstance)

	amount, ok := seenArg.TryNumber()
	assert.True(t, ok)
	assert.Equal(t, int64(10), amount.Value)
}

func TestClassInstanceCallArityMismatch(t *testing.T) {
	cls := NewClass("Account", []Method{{Name: "deposit", Params: []string{"amount"}, Body: returningBody{result: None()}}}, nil)
	instance := NewInstance(cls)
	_, err := instance.Call("deposit", nil, NewContext(&bytes.Buffer{}))
	assert.Error(t, err)
	var arityErr *ArityError
	assert.ErrorAs(t, err, &arityErr)
}

func TestClassInstanceCallMissingMethod(t *testing.T) {
	cls := NewClass("Account", nil, nil)
	instance := NewInstance(cls)
	_, err := instance.Call("withdraw", nil, NewContext(&bytes.Buffer{}))
	assert.Error(t, err)
	var attrErr *AttributeError
	assert.ErrorAs(t, err, &attrErr)
}

func TestClassInstanceCallUnwrapsReturn(t *testing.T) {
	body := executableFunc(func(_ Closure, _ *Context) (ObjectHolder, error) {
		return Own(&ReturnValue{Value: Own(&Number{Value: 7})}), nil
	})
	cls := NewClass("Box", []Method{{Name: "value", Body: body}}, nil)
	instance := NewInstance(cls)
	result, err := instance.Call("value", nil, NewContext(&bytes.Buffer{}))
	assert.NoError(t, err)
	n, ok := result.TryNumber()
	assert.True(t, ok)
	assert.Equal(t, int64(7), n.Value)
}

// executableFunc adapts a plain function to the Executable interface.
type executableFunc func(Closure, *Context) (ObjectHolder, error)

func (f executableFunc) Execute(closure Closure, ctx *Context) (ObjectHolder, error) {
	return f(closure, ctx)
}

func TestEqualStructuralForNumbers(t *testing.T) {
	ctx := NewContext(&bytes.Buffer{})
	eq, err := Equal(Own(&Number{Value: 3}), Own(&Number{Value: 3}), ctx)
	assert.NoError(t, err)
	assert.True(t, eq)

	eq, err = Equal(Own(&Number{Value: 3}), Own(&Number{Value: 4}), ctx)
	assert.NoError(t, err)
	assert.False(t, eq)
}

func TestEqualNoneEqualsNone(t *testing.T) {
	eq, err := Equal(None(), None(), NewContext(&bytes.Buffer{}))
	assert.NoError(t, err)
	assert.True(t, eq)
}

func TestLessOnIncompatibleTypesIsTypeError(t *testing.T) {
	_, err := Less(Own(&Number{Value: 1}), Own(&String{Value: "x"}), NewContext(&bytes.Buffer{}))
	assert.Error(t, err)
	var typeErr *TypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestDerivedComparisonOperators(t *testing.T) {
	ctx := NewContext(&bytes.Buffer{})
	lo, hi := Own(&Number{Value: 1}), Own(&Number{Value: 2})

	le, err := LessOrEqual(lo, hi, ctx)
	assert.NoError(t, err)
	assert.True(t, le)

	gt, err := Greater(hi, lo, ctx)
	assert.NoError(t, err)
	assert.True(t, gt)

	ge, err := GreaterOrEqual(lo, lo, ctx)
	assert.NoError(t, err)
	assert.True(t, ge)
}

func TestBoolOrderingFalseBeforeTrue(t *testing.T) {
	less, err := Less(Own(&Bool{Value: false}), Own(&Bool{Value: true}), NewContext(&bytes.Buffer{}))
	assert.NoError(t, err)
	assert.True(t, less)
}
