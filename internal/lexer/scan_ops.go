package lexer

import (
	"realign/internal/token"
)

// Символы всегда односимвольные: "==" это два токена '='.
func (lx *scanner) scanSymbol() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return lx.emit(token.Symbol, start)
}
