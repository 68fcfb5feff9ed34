package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"realign/internal/source"
)

// Cursor представляет позицию внутри одной строки исходника.
type Cursor struct {
	Line  string
	Index uint32 // индекс строки во входном блоке
	Off   uint32
}

// NewCursor creates a cursor at the start of the line.
func NewCursor(line string, index int) Cursor {
	if _, err := safecast.Conv[uint32](len(line)); err != nil {
		panic(fmt.Errorf("line length overflow: %w", err))
	}
	idx, err := safecast.Conv[uint32](index)
	if err != nil {
		panic(fmt.Errorf("line index overflow: %w", err))
	}
	return Cursor{Line: line, Index: idx}
}

// EOF проверяет, достигнут ли конец строки
func (c *Cursor) EOF() bool {
	return int(c.Off) >= len(c.Line)
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Line[c.Off]
}

// Peek2 читает текущий и следующий байт, если есть, иначе возвращает 0, 0, false
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if int(c.Off)+1 >= len(c.Line) {
		return 0, 0, false
	}
	return c.Line[c.Off], c.Line[c.Off+1], true
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Line[c.Off]
	c.Off++
	return b
}

// Mark это метка, чтобы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		Line:  c.Index,
		Start: uint32(m),
		End:   c.Off,
	}
}

// TextFrom returns the text consumed since the mark.
func (c *Cursor) TextFrom(m Mark) string {
	return c.Line[m:c.Off]
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Line[c.Off] == b {
		c.Off++
		return true
	}
	return false
}
