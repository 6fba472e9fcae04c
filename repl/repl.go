/*
File    : mython/repl/repl.go
*/

// Package repl implements an interactive Read-Eval-Print loop for
// Mython, reusing the same readline + fatih/color presentation the
// teacher's REPL used: colored banner, persistent history, colored
// error output. Because Mython statements are indentation-delimited, a
// block (class/def/if) spans multiple physical lines, so the REPL
// accumulates lines into a pending buffer and only submits it to the
// evaluator once a blank line closes the block.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/mythonscript/mython/mython"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const separator = "----------------------------------------------------------------"

// Repl holds the static presentation for an interactive session.
type Repl struct {
	Version string
	Prompt  string
}

// New builds a Repl with the given version string and prompt.
func New(version, prompt string) *Repl {
	return &Repl{Version: version, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", separator)
	greenColor.Fprintln(w, "mython — an indentation-sensitive scripting language")
	blueColor.Fprintf(w, "%s\n", separator)
	yellowColor.Fprintln(w, "Version: "+r.Version)
	blueColor.Fprintf(w, "%s\n", separator)
	cyanColor.Fprintln(w, "Type a statement and press enter; blank line runs a pending block.")
	cyanColor.Fprintln(w, "Type .exit to quit.")
	blueColor.Fprintf(w, "%s\n", separator)
}

// Start runs the REPL loop until the user exits or EOF is reached
// (Ctrl+D), writing the banner, program output and errors to writer.
// Input lines come from readline, which reads the process's standard
// input; reader is not read. Top-level bindings persist across inputs
// via a single mython.Program for the session.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "could not start readline: %v\n", err)
		return
	}
	defer rl.Close()

	program := mython.NewProgram()
	var pending strings.Builder

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}
		trimmed := strings.TrimRight(line, " \t\r")

		if trimmed == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		if trimmed == "" {
			if pending.Len() == 0 {
				continue
			}
			r.runPending(writer, program, &pending)
			continue
		}

		rl.SaveHistory(line)
		pending.WriteString(line)
		pending.WriteString("\n")
	}
}

func (r *Repl) runPending(writer io.Writer, program *mython.Program, pending *strings.Builder) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[runtime error] %v\n", recovered)
		}
	}()

	src := pending.String()
	pending.Reset()

	if _, err := program.Run(src, writer); err != nil {
		redColor.Fprintf(writer, "%v\n", err)
	}
}
