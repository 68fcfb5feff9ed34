package lexer

import "strings"

func isIdentStartByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_' || b == '$'
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || b == '.'
}

const symbolBytes = "[](){}:;,.=<>!%/*+-?&|^~"

func isSymbolByte(b byte) bool {
	return b != 0 && strings.IndexByte(symbolBytes, b) >= 0
}

func isQuote(g *grammar, b byte) bool {
	return b != 0 && strings.IndexByte(g.quotes, b) >= 0
}
