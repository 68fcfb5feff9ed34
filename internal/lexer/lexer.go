package lexer

import (
	"realign/internal/token"
)

// scanner токенизирует одну строку; новый экземпляр на каждую строку,
// общего изменяемого состояния между проходами нет.
type scanner struct {
	g      *grammar
	cursor Cursor
	tokens token.Line
}

func scanLine(g *grammar, index int, line string) (token.Line, error) {
	lx := &scanner{g: g, cursor: NewCursor(line, index)}
	for {
		spaced := lx.skipSpace()
		if lx.cursor.EOF() {
			break
		}
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		tok.Spaced = spaced && len(lx.tokens) > 0
		lx.tokens = append(lx.tokens, tok)
	}
	if lx.tokens == nil {
		return token.Line{}, nil
	}
	return lx.tokens, nil
}

// skipSpace съедает пробелы и табы, сообщает, было ли что-то съедено.
func (lx *scanner) skipSpace() bool {
	skipped := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' {
			break
		}
		lx.cursor.Bump()
		skipped = true
	}
	return skipped
}

func (lx *scanner) next() (token.Token, error) {
	ch := lx.cursor.Peek()
	b0, b1, ok := lx.cursor.Peek2()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrReserved(), nil
	case ok && b0 == '/' && (b1 == '/' || b1 == '*'):
		return lx.scanComment(), nil
	case ch == '/' && lx.g.regex && lx.regexAllowed():
		return lx.scanString()
	case isQuote(lx.g, ch):
		return lx.scanString()
	case isSymbolByte(ch):
		return lx.scanSymbol(), nil
	default:
		m := lx.cursor.Mark()
		return token.Token{}, lx.errorAt(UnknownChar, m, "invalid character")
	}
}

// regexAllowed: '/' открывает regex, только если предыдущий токен не может закончить операнд.
func (lx *scanner) regexAllowed() bool {
	if len(lx.tokens) == 0 {
		return true
	}
	prev := lx.tokens[len(lx.tokens)-1]
	switch prev.Kind {
	case token.Symbol:
		return !prev.IsClose()
	case token.ReservedWord, token.ImportExport:
		_, isValue := lx.g.valueWords[prev.Text]
		return !isValue
	default:
		return false
	}
}

func (lx *scanner) emit(k token.Kind, m Mark) token.Token {
	return token.Token{
		Kind: k,
		Text: lx.cursor.TextFrom(m),
		Span: lx.cursor.SpanFrom(m),
	}
}
