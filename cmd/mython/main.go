/*
File    : mython/cmd/mython/main.go
*/
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mythonscript/mython/mython"
	"github.com/mythonscript/mython/repl"
)

var (
	redColor   = color.New(color.FgRed)
	cyanColor  = color.New(color.FgCyan)
	greenColor = color.New(color.FgGreen)
)

const (
	version = "v0.1.0"
	prompt  = "mython >>> "
)

// main runs the interpreter: with a filename argument it executes that
// file once and exits; with no arguments it starts the REPL.
func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			cyanColor.Printf("mython %s\n", version)
			return
		}
		runFile(os.Args[1])
		return
	}
	repl.New(version, prompt).Start(os.Stdin, os.Stdout)
}

func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read %q: %v\n", path, err)
		os.Exit(1)
	}
	if err := mython.Run(string(source), os.Stdout); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	greenColor.Println("mython - an indentation-sensitive scripting language")
	cyanColor.Println("usage:")
	cyanColor.Println("  mython               start the interactive REPL")
	cyanColor.Println("  mython <file>.my     run a Mython source file")
	cyanColor.Println("  mython --version     print the interpreter version")
}
