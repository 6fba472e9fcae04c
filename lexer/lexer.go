/*
File    : mython/lexer/lexer.go
*/

// Package lexer turns Mython source text into a finite token sequence.
// It scans character by character in the teacher's style (a Current
// byte, a Position cursor, Advance/Peek), but layers indentation
// tracking on top: leading whitespace at the start of each logical line
// is measured and reconciled against the current indentation level,
// synthesizing Indent and Dedent tokens the way Python-family lexers do
// (§4.1). The lexer is total on well-formed input; malformed input
// (an unterminated string, a malformed number, a tab in indentation)
// fails with a *runtime.LexicalError.
package lexer

import (
	"strings"

	"github.com/mythonscript/mython/runtime"
	"github.com/mythonscript/mython/token"
)

// Lexer scans Mython source one character at a time, tracking line and
// column for diagnostics and the current indentation level for
// Indent/Dedent synthesis.
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
	Column    int

	indent  int
	pending bool // leading whitespace of the next logical line must be measured
	tokens  []token.Token
}

// NewLexer initializes a Lexer positioned at the first byte of src.
func NewLexer(src string) *Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return &Lexer{
		Src:       src,
		Current:   current,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
		Column:    1,
	}
}

// Advance moves to the next character, updating Position, Column, and
// Current. Line is bumped separately wherever a '\n' is consumed, since
// the caller needs the line number the newline belongs to.
func (lex *Lexer) Advance() {
	lex.Position++
	lex.Column++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// Peek looks at the next character without consuming it.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

func (lex *Lexer) atEnd() bool { return lex.Position >= lex.SrcLength }

// Tokenize runs src through a Lexer to completion and returns its token
// sequence, terminated by exactly one Eof (§4.1).
func Tokenize(src string) ([]token.Token, error) {
	lex := NewLexer(src)
	if err := lex.run(); err != nil {
		return nil, err
	}
	return lex.tokens, nil
}

func (lex *Lexer) run() error {
	for !lex.atEnd() {
		if lex.pending {
			blankOrEnd, err := lex.measureIndentation()
			if err != nil {
				return err
			}
			lex.pending = false
			if blankOrEnd {
				continue
			}
			if lex.atEnd() {
				break
			}
		}

		switch {
		case lex.Current == ' ':
			lex.Advance()
		case lex.Current == '\t':
			return runtime.NewLexicalError(lex.Line, lex.Column, "tab characters are not valid whitespace")
		case lex.Current == '\r':
			lex.Advance()
		case lex.Current == '\n':
			lex.consumeNewline()
		case lex.Current == '#':
			lex.skipComment()
		case lex.Current == '\'' || lex.Current == '"':
			if err := lex.readString(lex.Current); err != nil {
				return err
			}
		case isDigit(lex.Current):
			if err := lex.readNumber(); err != nil {
				return err
			}
		case isIdentStart(lex.Current):
			lex.readIdentifier()
		default:
			lex.readOperatorOrChar()
		}
	}

	if !lex.lastIs(token.Newline) && !lex.lastIs(token.Dedent) {
		lex.emit(token.New(token.Newline, lex.Line, lex.Column))
	}
	lex.emit(token.New(token.Eof, lex.Line, lex.Column))
	return nil
}

// measureIndentation counts leading spaces at the start of a logical
// line, divides by two to get the indentation level, and emits Indent
// or Dedent tokens to reconcile against the previous level (§4.1). It
// reports whether the line is blank or the file ended, in which case
// no level change applies and the next Newline will re-arm the check.
func (lex *Lexer) measureIndentation() (blankOrEnd bool, err error) {
	count := 0
	for !lex.atEnd() && lex.Current == ' ' {
		lex.Advance()
		count++
	}
	if !lex.atEnd() && lex.Current == '\t' {
		return false, runtime.NewLexicalError(lex.Line, lex.Column, "tab characters are not valid indentation")
	}
	if lex.atEnd() || lex.Current == '\n' || lex.Current == '\r' {
		return true, nil
	}

	level := count / 2
	switch {
	case level > lex.indent:
		for i := 0; i < level-lex.indent; i++ {
			lex.emit(token.New(token.Indent, lex.Line, lex.Column))
		}
	case level < lex.indent:
		for i := 0; i < lex.indent-level; i++ {
			lex.emit(token.New(token.Dedent, lex.Line, lex.Column))
		}
	}
	lex.indent = level
	return false, nil
}

// consumeNewline advances past '\n' and emits a Newline unless the
// previously emitted token already is Newline or Dedent (§4.1),
// suppressing blank-line and post-dedent newlines. The line that
// follows must have its indentation measured.
func (lex *Lexer) consumeNewline() {
	line, col := lex.Line, lex.Column
	lex.Advance()
	lex.Line++
	lex.Column = 1
	if !lex.lastIs(token.Newline) && !lex.lastIs(token.Dedent) {
		lex.emit(token.New(token.Newline, line, col))
	}
	lex.pending = true
}

// skipComment discards a '#' comment through end of line, folding its
// trailing newline into the same suppression rule as consumeNewline.
func (lex *Lexer) skipComment() {
	for !lex.atEnd() && lex.Current != '\n' {
		lex.Advance()
	}
	if lex.atEnd() {
		if !lex.lastIs(token.Newline) && !lex.lastIs(token.Dedent) {
			lex.emit(token.New(token.Newline, lex.Line, lex.Column))
		}
		lex.pending = true
		return
	}
	lex.consumeNewline()
}

func (lex *Lexer) readString(quote byte) error {
	startLine, startCol := lex.Line, lex.Column
	lex.Advance() // opening quote
	var sb strings.Builder
	for {
		if lex.atEnd() || lex.Current == '\n' {
			return runtime.NewLexicalError(startLine, startCol, "unterminated string literal")
		}
		if lex.Current == quote {
			lex.Advance()
			break
		}
		if lex.Current == '\\' {
			lex.Advance()
			if lex.atEnd() {
				return runtime.NewLexicalError(startLine, startCol, "unterminated string literal")
			}
			switch lex.Current {
			case '\'':
				sb.WriteByte('\'')
			case '"':
				sb.WriteByte('"')
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				// Unrecognized escape sequence: pass through verbatim (§9).
				sb.WriteByte('\\')
				sb.WriteByte(lex.Current)
			}
			lex.Advance()
			continue
		}
		sb.WriteByte(lex.Current)
		lex.Advance()
	}
	lex.emit(token.NewString(token.String, sb.String(), startLine, startCol))
	return nil
}

func (lex *Lexer) readNumber() error {
	startLine, startCol := lex.Line, lex.Column
	start := lex.Position
	for !lex.atEnd() && isDigit(lex.Current) {
		lex.Advance()
	}
	text := lex.Src[start:lex.Position]
	value, err := parseDecimal(text)
	if err != nil {
		return runtime.NewLexicalError(startLine, startCol, "number literal out of range: %q", text)
	}
	lex.emit(token.NewNumber(value, startLine, startCol))
	return nil
}

func (lex *Lexer) readIdentifier() {
	startLine, startCol := lex.Line, lex.Column
	start := lex.Position
	for !lex.atEnd() && isIdentPart(lex.Current) {
		lex.Advance()
	}
	text := lex.Src[start:lex.Position]
	kind := token.LookupIdent(text)
	if kind == token.Id {
		lex.emit(token.NewString(token.Id, text, startLine, startCol))
	} else {
		lex.emit(token.New(kind, startLine, startCol))
	}
}

func (lex *Lexer) readOperatorOrChar() {
	startLine, startCol := lex.Line, lex.Column
	c := lex.Current
	if kind, ok := twoCharKind(c, lex.Peek()); ok {
		lex.Advance()
		lex.Advance()
		lex.emit(token.New(kind, startLine, startCol))
		return
	}
	lex.Advance()
	lex.emit(token.NewString(token.Char, string(c), startLine, startCol))
}

func twoCharKind(first, second byte) (token.Kind, bool) {
	if second != '=' {
		return 0, false
	}
	switch first {
	case '=':
		return token.Eq, true
	case '!':
		return token.NotEq, true
	case '<':
		return token.LessOrEq, true
	case '>':
		return token.GreaterOrEq, true
	}
	return 0, false
}

func (lex *Lexer) emit(t token.Token) { lex.tokens = append(lex.tokens, t) }

func (lex *Lexer) lastIs(kind token.Kind) bool {
	if len(lex.tokens) == 0 {
		return false
	}
	return lex.tokens[len(lex.tokens)-1].Kind == kind
}
