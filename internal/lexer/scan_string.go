package lexer

import (
	"strings"

	"realign/internal/token"
)

// scanString читает литерал от открывающего разделителя до такого же закрывающего.
// '\' экранирует следующий символ, кроме raw-строк. Разделители остаются в тексте.
func (lx *scanner) scanString() (token.Token, error) {
	start := lx.cursor.Mark()
	delim := lx.cursor.Bump()
	raw := strings.IndexByte(lx.g.rawQuotes, delim) >= 0
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '\\' && !raw {
			lx.cursor.Bump()
			continue
		}
		if b == delim {
			return lx.emit(token.String, start), nil
		}
	}
	return token.Token{}, lx.errorAt(UnterminatedString, start, "unterminated string literal")
}

// scanComment: "//" до конца строки, "/* */" до закрытия или до конца строки.
// Пробелы в конце строки в комментарий не входят.
func (lx *scanner) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	if lx.cursor.Bump() == '/' {
		lx.toLineEnd(start)
		return lx.emit(token.Comment, start)
	}
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.emit(token.Comment, start)
		}
		lx.cursor.Bump()
	}
	lx.toLineEnd(start)
	return lx.emit(token.Comment, start)
}

// toLineEnd moves the cursor past the last non-blank byte of the line, but
// not before the comment opener at start.
func (lx *scanner) toLineEnd(start Mark) {
	end := max(len(strings.TrimRight(lx.cursor.Line, " \t")), int(start)+2)
	lx.cursor.Off = uint32(end) // #nosec G115 -- checked in NewCursor
}
