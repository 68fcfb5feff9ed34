package source

import (
	"fmt"
)

// Span points into a single line of a file.
type Span struct {
	File  FileID
	Line  uint32 // 0-based индекс строки
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d:%d-%d", s.File, s.Line, s.Start, s.End)
}

// Cover returns the smallest span on the same line containing both spans.
// Spans from another file or line are ignored.
func (s Span) Cover(other Span) Span {
	if s.File != other.File || s.Line != other.Line {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// ShiftLine moves the span down by n lines, used when a block starts in the middle of a file.
func (s Span) ShiftLine(n uint32) Span {
	s.Line += n
	return s
}

// Pos converts the span start into a 1-based line/column pair.
func (s Span) Pos() LineCol {
	return LineCol{Line: s.Line + 1, Col: s.Start + 1}
}
