package lexer

import (
	"realign/internal/token"
)

// Tokenizer turns source lines into classified tokens for one language.
// The set of implementations is closed: TypeScript and Go.
type Tokenizer interface {
	// Name is the configuration name, e.g. "TypeScriptScanner".
	Name() string
	// Extensions lists the default file extensions, without dots.
	Extensions() []string
	// Tokenize scans every line; the first lexical error aborts the pass.
	Tokenize(lines []string) ([]token.Line, error)
	// TokenizeLine scans a single line; index is reported in errors.
	TokenizeLine(index int, line string) (token.Line, error)

	grammar() *grammar
}

// grammar holds the read-only lexical tables of a language.
type grammar struct {
	name       string
	aliases    []string
	extensions []string
	reserved   map[string]token.Kind
	quotes     string // символы, открывающие строку
	rawQuotes  string // строки без escape-последовательностей
	regex      bool   // '/' может открывать литерал регулярного выражения
	// valueWords are reserved words that end an operand, so a following '/' divides.
	valueWords map[string]struct{}
}

func (g *grammar) lookup(word string) token.Kind {
	if k, ok := g.reserved[word]; ok {
		return k
	}
	return token.Word
}

func tokenizeLines(g *grammar, lines []string) ([]token.Line, error) {
	out := make([]token.Line, len(lines))
	for i, line := range lines {
		toks, err := scanLine(g, i, line)
		if err != nil {
			return nil, err
		}
		out[i] = toks
	}
	return out, nil
}

// All returns the supported tokenizers in registration order.
func All() []Tokenizer {
	return []Tokenizer{TypeScript{}, Go{}}
}
