package lexer

import (
	"realign/internal/token"
)

// scanIdentOrReserved читает [A-Za-z0-9_$][A-Za-z0-9_$.]* и классифицирует по таблице языка.
func (lx *scanner) scanIdentOrReserved() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	text := lx.cursor.TextFrom(start)
	return lx.emit(lx.g.lookup(text), start)
}
