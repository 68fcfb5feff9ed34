package lexer

import (
	"realign/internal/token"
)

var goReserved = map[string]token.Kind{
	"import":  token.ImportExport,
	"package": token.ImportExport,

	"break":       token.ReservedWord,
	"case":        token.ReservedWord,
	"chan":        token.ReservedWord,
	"const":       token.ReservedWord,
	"continue":    token.ReservedWord,
	"default":     token.ReservedWord,
	"defer":       token.ReservedWord,
	"else":        token.ReservedWord,
	"fallthrough": token.ReservedWord,
	"false":       token.ReservedWord,
	"for":         token.ReservedWord,
	"func":        token.ReservedWord,
	"go":          token.ReservedWord,
	"goto":        token.ReservedWord,
	"if":          token.ReservedWord,
	"interface":   token.ReservedWord,
	"iota":        token.ReservedWord,
	"map":         token.ReservedWord,
	"nil":         token.ReservedWord,
	"range":       token.ReservedWord,
	"return":      token.ReservedWord,
	"select":      token.ReservedWord,
	"struct":      token.ReservedWord,
	"switch":      token.ReservedWord,
	"true":        token.ReservedWord,
	"type":        token.ReservedWord,
	"var":         token.ReservedWord,
}

var goGrammar = &grammar{
	name:       "GoScanner",
	aliases:    []string{"go", "golang"},
	extensions: []string{"go"},
	reserved:   goReserved,
	quotes:     "'\"`",
	rawQuotes:  "`",
}

// Go tokenizes Go sources. '/' is always division and backquoted strings are raw.
type Go struct{}

func (Go) Name() string { return goGrammar.name }

func (Go) Extensions() []string { return goGrammar.extensions }

func (Go) Tokenize(lines []string) ([]token.Line, error) {
	return tokenizeLines(goGrammar, lines)
}

func (Go) TokenizeLine(index int, line string) (token.Line, error) {
	return scanLine(goGrammar, index, line)
}

func (Go) grammar() *grammar { return goGrammar }
