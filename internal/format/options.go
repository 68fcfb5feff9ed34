package format

import (
	"fmt"

	"realign/internal/trace"
)

// Options tunes one formatting pass. The zero value keeps each block's own
// indentation and the input's line break.
type Options struct {
	// Indentation replaces the leading whitespace of every block when non-empty.
	Indentation string
	// LineBreak joins the output lines; "" keeps the detected one.
	LineBreak string
	// Tracer receives align.degraded points; nil disables them.
	Tracer trace.Tracer
	// ParentSpan is the span the points hang under.
	ParentSpan uint64
	// OnDegraded is called for every block with merged gaps: lines [start, end)
	// and the number of degraded runs. Optional.
	OnDegraded func(start, end, runs int)
}

// Validate rejects line breaks other than "\n" and "\r\n".
func (o Options) Validate() error {
	switch o.LineBreak {
	case "", "\n", "\r\n":
		return nil
	default:
		return fmt.Errorf("unsupported line break %q", o.LineBreak)
	}
}

// ParseLineBreak converts a flag value ("lf", "crlf" or the literal break)
// to a line break string. An empty value means auto-detect.
func ParseLineBreak(s string) (string, error) {
	switch s {
	case "", "auto":
		return "", nil
	case "lf", "LF", "\n", `\n`:
		return "\n", nil
	case "crlf", "CRLF", "\r\n", `\r\n`:
		return "\r\n", nil
	default:
		return "", fmt.Errorf("invalid line break %q (expected: lf|crlf)", s)
	}
}
