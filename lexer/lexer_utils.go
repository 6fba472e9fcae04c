/*
File    : mython/lexer/lexer_utils.go
*/
package lexer

import "github.com/mythonscript/mython/runtime"

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

// parseDecimal converts an all-digit literal to an int64, reporting a
// lexical error on overflow (§9: integer overflow traps rather than
// wrapping silently).
func parseDecimal(text string) (int64, error) {
	var value int64
	for i := 0; i < len(text); i++ {
		digit := int64(text[i] - '0')
		if value > (1<<63-1-digit)/10 {
			return 0, runtime.NewLexicalError(0, 0, "number literal %q overflows", text)
		}
		value = value*10 + digit
	}
	return value, nil
}
