/*
File    : mython/ast/node.go
*/

// Package ast implements the tree-walking evaluator for Mython's
// expression and statement forms (§3.4). Every node satisfies
// runtime.Executable: Execute(closure, ctx) returns the node's value
// (None for statements with no meaningful result) or an error drawn
// from the runtime error taxonomy (§7).
package ast

import "github.com/mythonscript/mython/runtime"

// Node is the common contract for every AST expression and statement.
type Node = runtime.Executable
