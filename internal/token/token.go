package token

import (
	"strings"

	"realign/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind   Kind
	Text   string
	Spaced bool // перед токеном был пробел (схлопнут до одного)
	Span   source.Span
}

// IsSymbol reports whether the token is the given single-character symbol.
func (t Token) IsSymbol(text string) bool {
	return t.Kind == Symbol && t.Text == text
}

// IsKeyLike reports whether the token can name a key in a `key: value` field.
func (t Token) IsKeyLike() bool {
	return t.Kind == Word || t.Kind.IsReserved()
}

// IsOpen reports whether the token opens a bracket pair.
func (t Token) IsOpen() bool {
	return t.Kind == Symbol && (t.Text == "(" || t.Text == "[" || t.Text == "{")
}

// IsClose reports whether the token closes a bracket pair.
func (t Token) IsClose() bool {
	return t.Kind == Symbol && (t.Text == ")" || t.Text == "]" || t.Text == "}")
}

// Closer returns the closing bracket that matches an opening one, or "".
func Closer(open string) string {
	switch open {
	case "(":
		return ")"
	case "[":
		return "]"
	case "{":
		return "}"
	}
	return ""
}

// Line is the ordered token sequence of one source line. Immutable once produced.
type Line []Token

// String renders the tokens with one space wherever whitespace was collapsed.
func (l Line) String() string {
	return Render(l)
}

// Render joins tokens honouring Spaced, ignoring it on the first token.
func Render(tokens []Token) string {
	var sb strings.Builder
	for i, t := range tokens {
		if i > 0 && t.Spaced {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Text)
	}
	return sb.String()
}
