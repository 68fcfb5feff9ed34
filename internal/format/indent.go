package format

import (
	"errors"
	"fmt"

	"realign/internal/align"
	"realign/internal/lexer"
	"realign/internal/source"
	"realign/internal/trace"
)

// Indent re-aligns text. The output has the same number of lines and differs
// from the input in whitespace only. A lexical error aborts the whole pass;
// it is returned as *lexer.Error with the line index counted from the start
// of text.
func Indent(text string, tz lexer.Tokenizer, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	lines, detected := source.SplitLines(text)
	out, err := IndentLines(lines, tz, opts)
	if err != nil {
		return "", err
	}
	lineBreak := opts.LineBreak
	if lineBreak == "" {
		lineBreak = detected
	}
	w := NewWriter(lineBreak, len(text)+len(text)/4)
	for _, line := range out {
		w.WriteLine("", line)
	}
	return w.String(), nil
}

// IndentLines re-aligns lines without line breaks. Blank lines are returned
// verbatim.
func IndentLines(lines []string, tz lexer.Tokenizer, opts Options) ([]string, error) {
	if tz == nil {
		return nil, errors.New("format: no tokenizer")
	}
	out := make([]string, len(lines))
	copy(out, lines)
	for _, b := range align.SplitBlocks(lines) {
		toks, err := tz.Tokenize(lines[b.Start:b.End])
		if err != nil {
			var lexErr *lexer.Error
			if errors.As(err, &lexErr) {
				return nil, lexErr.WithLineOffset(b.Start)
			}
			return nil, fmt.Errorf("tokenize lines %d-%d: %w", b.Start+1, b.End, err)
		}
		res := align.Lines(toks)
		if res.Degraded > 0 {
			trace.Point(opts.Tracer, trace.ScopeBlock, "align.degraded", opts.ParentSpan,
				fmt.Sprintf("lines %d-%d, %d runs", b.Start+1, b.End, res.Degraded))
			if opts.OnDegraded != nil {
				opts.OnDegraded(b.Start, b.End, res.Degraded)
			}
		}
		indent := b.Indent
		if opts.Indentation != "" {
			indent = opts.Indentation
		}
		for i, line := range res.Lines {
			out[b.Start+i] = indent + line
		}
	}
	return out, nil
}
