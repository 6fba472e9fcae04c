/*
File    : mython/mython/mython_test.go
*/
package mython

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunArithmeticAndPrint(t *testing.T) {
	var buf bytes.Buffer
	err := Run("print 2 + 3 * 4\n", &buf)
	assert.NoError(t, err)
	assert.Equal(t, "14\n", buf.String())
}

func TestRunClassHierarchyDispatch(t *testing.T) {
	src := "" +
		"class Shape:\n" +
		"  def __init__(self, name):\n" +
		"    self.name = name\n" +
		"  def area(self):\n" +
		"    return 0\n" +
		"  def describe(self):\n" +
		"    return self.name + \" area=\" + str(self.area())\n" +
		"\n" +
		"class Square(Shape):\n" +
		"  def __init__(self, side):\n" +
		"    self.name = \"square\"\n" +
		"    self.side = side\n" +
		"  def area(self):\n" +
		"    return self.side * self.side\n" +
		"\n" +
		"s = Square(4)\n" +
		"print s.describe()\n"

	var buf bytes.Buffer
	err := Run(src, &buf)
	assert.NoError(t, err)
	assert.Equal(t, "square area=16\n", buf.String())
}

func TestRunRecursiveMethodViaIfElseAndReturn(t *testing.T) {
	src := "" +
		"class Math:\n" +
		"  def fact(self, n):\n" +
		"    if n <= 1:\n" +
		"      return 1\n" +
		"    else:\n" +
		"      return n * self.fact(n - 1)\n" +
		"\n" +
		"m = Math()\n" +
		"print m.fact(5)\n"

	var buf bytes.Buffer
	err := Run(src, &buf)
	assert.NoError(t, err)
	assert.Equal(t, "120\n", buf.String())
}

func TestProgramPersistsBindingsAcrossRuns(t *testing.T) {
	program := NewProgram()
	var buf bytes.Buffer

	_, err := program.Run("counter = 1\n", &buf)
	assert.NoError(t, err)
	_, err = program.Run("counter = counter + 1\nprint counter\n", &buf)
	assert.NoError(t, err)
	assert.Equal(t, "2\n", buf.String())
}

func TestRunNameErrorPropagates(t *testing.T) {
	var buf bytes.Buffer
	err := Run("print undefined_name\n", &buf)
	assert.Error(t, err)
}

func TestRunDivisionByZeroPropagates(t *testing.T) {
	var buf bytes.Buffer
	err := Run("x = 1 / 0\n", &buf)
	assert.Error(t, err)
}

func TestRunBooleanLogicAndComparisons(t *testing.T) {
	src := "a = 3\nb = 5\nprint a < b and b != a\nprint not (a == b)\n"
	var buf bytes.Buffer
	err := Run(src, &buf)
	assert.NoError(t, err)
	assert.Equal(t, "True\nTrue\n", buf.String())
}
