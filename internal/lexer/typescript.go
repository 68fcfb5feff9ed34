package lexer

import (
	"realign/internal/token"
)

var typeScriptReserved = map[string]token.Kind{
	"import": token.ImportExport,
	"export": token.ImportExport,

	"abstract":    token.ReservedWord,
	"any":         token.ReservedWord,
	"as":          token.ReservedWord,
	"async":       token.ReservedWord,
	"await":       token.ReservedWord,
	"boolean":     token.ReservedWord,
	"break":       token.ReservedWord,
	"case":        token.ReservedWord,
	"catch":       token.ReservedWord,
	"class":       token.ReservedWord,
	"const":       token.ReservedWord,
	"constructor": token.ReservedWord,
	"continue":    token.ReservedWord,
	"debugger":    token.ReservedWord,
	"declare":     token.ReservedWord,
	"default":     token.ReservedWord,
	"delete":      token.ReservedWord,
	"do":          token.ReservedWord,
	"else":        token.ReservedWord,
	"enum":        token.ReservedWord,
	"extends":     token.ReservedWord,
	"false":       token.ReservedWord,
	"finally":     token.ReservedWord,
	"for":         token.ReservedWord,
	"from":        token.ReservedWord,
	"function":    token.ReservedWord,
	"if":          token.ReservedWord,
	"implements":  token.ReservedWord,
	"in":          token.ReservedWord,
	"instanceof":  token.ReservedWord,
	"interface":   token.ReservedWord,
	"let":         token.ReservedWord,
	"module":      token.ReservedWord,
	"namespace":   token.ReservedWord,
	"new":         token.ReservedWord,
	"null":        token.ReservedWord,
	"number":      token.ReservedWord,
	"of":          token.ReservedWord,
	"package":     token.ReservedWord,
	"private":     token.ReservedWord,
	"protected":   token.ReservedWord,
	"public":      token.ReservedWord,
	"readonly":    token.ReservedWord,
	"return":      token.ReservedWord,
	"static":      token.ReservedWord,
	"string":      token.ReservedWord,
	"super":       token.ReservedWord,
	"switch":      token.ReservedWord,
	"this":        token.ReservedWord,
	"throw":       token.ReservedWord,
	"true":        token.ReservedWord,
	"try":         token.ReservedWord,
	"type":        token.ReservedWord,
	"typeof":      token.ReservedWord,
	"undefined":   token.ReservedWord,
	"var":         token.ReservedWord,
	"void":        token.ReservedWord,
	"while":       token.ReservedWord,
	"with":        token.ReservedWord,
	"yield":       token.ReservedWord,
}

var typeScriptGrammar = &grammar{
	name:       "TypeScriptScanner",
	aliases:    []string{"typescript", "javascript", "ts", "js"},
	extensions: []string{"ts", "tsx", "js", "jsx", "mjs", "cjs"},
	reserved:   typeScriptReserved,
	quotes:     "'\"`",
	regex:      true,
	valueWords: map[string]struct{}{
		"this": {}, "super": {}, "true": {}, "false": {}, "null": {}, "undefined": {},
	},
}

// TypeScript tokenizes TypeScript and JavaScript sources.
type TypeScript struct{}

func (TypeScript) Name() string { return typeScriptGrammar.name }

func (TypeScript) Extensions() []string { return typeScriptGrammar.extensions }

func (TypeScript) Tokenize(lines []string) ([]token.Line, error) {
	return tokenizeLines(typeScriptGrammar, lines)
}

func (TypeScript) TokenizeLine(index int, line string) (token.Line, error) {
	return scanLine(typeScriptGrammar, index, line)
}

func (TypeScript) grammar() *grammar { return typeScriptGrammar }
