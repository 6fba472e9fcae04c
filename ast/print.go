/*
File    : mython/ast/print.go
*/
package ast

import (
	"io"

	"github.com/mythonscript/mython/runtime"
)

// Print evaluates each expression in Args in order and writes its
// canonical text form to ctx.Output, space-separated, followed by a
// newline (§4.8). A bare `print` with no arguments writes just the
// newline.
type Print struct {
	Args []Node
}

func (p *Print) Execute(closure runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	for i, arg := range p.Args {
		value, err := arg.Execute(closure, ctx)
		if err != nil {
			return runtime.None(), err
		}
		if i > 0 {
			if _, err := io.WriteString(ctx.Output, " "); err != nil {
				return runtime.None(), err
			}
		}
		if err := value.Print(ctx.Output, ctx); err != nil {
			return runtime.None(), err
		}
	}
	if _, err := io.WriteString(ctx.Output, "\n"); err != nil {
		return runtime.None(), err
	}
	return runtime.None(), nil
}
