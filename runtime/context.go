/*
File    : mython/runtime/context.go
*/
package runtime

import "io"

// Context carries the single capability the evaluator needs from its
// host: a mutable output sink that Print statements and value Print
// methods write to (§6). It must survive the entire evaluation.
type Context struct {
	Output io.Writer
}

// NewContext wraps w as the output sink for a single evaluation.
func NewContext(w io.Writer) *Context {
	return &Context{Output: w}
}
