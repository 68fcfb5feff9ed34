package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"realign/internal/token"
)

type TokenOutput struct {
	Line   int    `json:"line"`
	Col    uint32 `json:"col"`
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Spaced bool   `json:"spaced,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, lines []token.Line) error {
	n := 0
	for _, line := range lines {
		for _, tok := range line {
			n++
			pos := tok.Span.Pos()
			if _, err := fmt.Fprintf(w, "%4d: %-14s %q at %d:%d", n, tok.Kind.String(), tok.Text, pos.Line, pos.Col); err != nil {
				return err
			}
			if tok.Spaced {
				if _, err := io.WriteString(w, " (spaced)"); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, lines []token.Line) error {
	output := make([]TokenOutput, 0)
	for _, line := range lines {
		for _, tok := range line {
			pos := tok.Span.Pos()
			output = append(output, TokenOutput{
				Line:   int(pos.Line),
				Col:    pos.Col,
				Kind:   tok.Kind.String(),
				Text:   tok.Text,
				Spaced: tok.Spaced,
			})
		}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
