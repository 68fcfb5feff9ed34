package lexer

import (
	"fmt"
	"unicode/utf8"

	"realign/internal/source"
)

// ErrorCode classifies a lexical failure.
type ErrorCode uint8

const (
	// UnknownChar is a character outside every token class of the language.
	UnknownChar ErrorCode = iota + 1
	// UnterminatedString is a quoted literal without its closing delimiter on the same line.
	UnterminatedString
)

func (c ErrorCode) String() string {
	switch c {
	case UnknownChar:
		return "UnknownChar"
	case UnterminatedString:
		return "UnterminatedString"
	default:
		return "LexError"
	}
}

// Error is the fatal lexical error of a line. Line is the 0-based index of the
// line in the tokenized input, Col the 1-based character column of Char.
type Error struct {
	Code ErrorCode
	Line int
	Col  int
	Char rune
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d, column %d: %s %q", e.Line+1, e.Col, e.Msg, e.Char)
}

// WithLineOffset returns a copy of the error moved down by n lines.
func (e *Error) WithLineOffset(n int) *Error {
	out := *e
	out.Line += n
	out.Span = out.Span.ShiftLine(uint32(n)) // #nosec G115 -- n is a line count of an in-memory slice
	return &out
}

func (lx *scanner) errorAt(code ErrorCode, m Mark, msg string) *Error {
	off := int(m)
	ch, size := utf8.DecodeRuneInString(lx.cursor.Line[off:])
	end := lx.cursor.Off
	if end <= uint32(m) {
		end = uint32(m) + uint32(size) // #nosec G115 -- rune size is at most 4
	}
	return &Error{
		Code: code,
		Line: int(lx.cursor.Index),
		Col:  utf8.RuneCountInString(lx.cursor.Line[:off]) + 1,
		Char: ch,
		Span: source.Span{Line: lx.cursor.Index, Start: uint32(m), End: end},
		Msg:  msg,
	}
}
