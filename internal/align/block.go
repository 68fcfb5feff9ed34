package align

import (
	"strings"

	"realign/internal/token"
)

// Span is a run of consecutive lines; blocks carry their indentation.
// Start and End index the input lines, End is exclusive.
type Span struct {
	Indent string
	Start  int
	End    int
}

// Len returns the number of lines in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsBlank reports whether line holds nothing but spaces and tabs.
func IsBlank(line string) bool {
	return strings.Trim(line, " \t") == ""
}

// Indentation returns the leading spaces and tabs of line.
func Indentation(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// SplitBlocks groups lines into blocks. Blank lines belong to no block.
func SplitBlocks(lines []string) []Span {
	var out []Span
	for i := 0; i < len(lines); {
		if IsBlank(lines[i]) {
			i++
			continue
		}
		indent := Indentation(lines[i])
		j := i + 1
		for j < len(lines) && !IsBlank(lines[j]) && Indentation(lines[j]) == indent {
			j++
		}
		out = append(out, Span{Indent: indent, Start: i, End: j})
		i = j
	}
	return out
}

// Runs splits a block of token lines where the leading token changes kind.
// Start and End of the returned spans are relative to lines.
func Runs(lines []token.Line) []Span {
	var out []Span
	for i := 0; i < len(lines); {
		lead := leading(lines[i])
		j := i + 1
		for j < len(lines) && leading(lines[j]) == lead {
			j++
		}
		out = append(out, Span{Start: i, End: j})
		i = j
	}
	return out
}

func leading(line token.Line) string {
	if len(line) == 0 {
		return ""
	}
	return token.Signature(line[0], nil)
}
