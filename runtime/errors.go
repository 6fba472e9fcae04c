/*
File    : mython/runtime/errors.go
*/

// Package runtime implements the Mython value model: the Object
// variants, the shared ObjectHolder handle, the flat Closure map used as
// both call frame and field bag, Class/ClassInstance dispatch, and the
// error taxonomy raised during lexing and evaluation.
package runtime

import "fmt"

// LexicalError reports malformed source text: an unterminated string,
// an invalid number literal, or a tab character in whitespace.
type LexicalError struct {
	Message string
	Line    int
	Column  int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// NewLexicalError builds a LexicalError at the given source position.
func NewLexicalError(line, column int, format string, args ...interface{}) *LexicalError {
	return &LexicalError{Message: fmt.Sprintf(format, args...), Line: line, Column: column}
}

// NameError reports that an identifier is not bound in the lookup chain
// a VariableValue walks.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("name error: %q is not defined", e.Name)
}

// NewNameError builds a NameError for the given identifier.
func NewNameError(name string) *NameError {
	return &NameError{Name: name}
}

// AttributeError reports field access on a non-instance value, or a
// missing field on an instance.
type AttributeError struct {
	Message string
}

func (e *AttributeError) Error() string {
	return "attribute error: " + e.Message
}

// NewAttributeError builds an AttributeError with a formatted message.
func NewAttributeError(format string, args ...interface{}) *AttributeError {
	return &AttributeError{Message: fmt.Sprintf(format, args...)}
}

// TypeError reports an operation applied to incompatible operand types.
type TypeError struct {
	Message string
}

func (e *TypeError) Error() string {
	return "type error: " + e.Message
}

// NewTypeError builds a TypeError with a formatted message.
func NewTypeError(format string, args ...interface{}) *TypeError {
	return &TypeError{Message: fmt.Sprintf(format, args...)}
}

// ArityError reports a method invocation with the wrong number of
// arguments. Instantiating a class whose __init__ takes a different
// number of arguments does not raise it: NewInstance skips __init__.
type ArityError struct {
	Name     string
	Expected int
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("arity error: %q expects %d argument(s), got %d", e.Name, e.Expected, e.Got)
}

// NewArityError builds an ArityError for the named callable.
func NewArityError(name string, expected, got int) *ArityError {
	return &ArityError{Name: name, Expected: expected, Got: got}
}

// ArithmeticError reports division by zero or integer overflow.
type ArithmeticError struct {
	Message string
}

func (e *ArithmeticError) Error() string {
	return "arithmetic error: " + e.Message
}

// NewArithmeticError builds an ArithmeticError with a formatted message.
func NewArithmeticError(format string, args ...interface{}) *ArithmeticError {
	return &ArithmeticError{Message: fmt.Sprintf(format, args...)}
}

// RuntimeError is the catch-all kind for evaluation failures that do not
// fit a finer category.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string {
	return "runtime error: " + e.Message
}

// NewRuntimeError builds a RuntimeError with a formatted message.
func NewRuntimeError(format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}
