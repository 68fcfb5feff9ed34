package align

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// cell is the occupant of a column on one line.
type cell struct {
	text string
	gap  bool // whitespace preceded the text in the source
}

// column holds one occupant per block line; nil is an empty occupant.
type column []*cell

// displayWidth measures text in terminal cells, composed form.
func displayWidth(s string) int {
	return runewidth.StringWidth(norm.NFC.String(s))
}

// layout places the columns left to right. A column starts at the furthest
// point any occupying line reaches (its cursor plus one space when the
// occupant was spaced in the source); lines reach it with trailing padding.
func layout(cols []column, n int) []string {
	bufs := make([]strings.Builder, n)
	cursor := make([]int, n)
	started := make([]bool, n)
	for _, col := range cols {
		start := -1
		for r, c := range col {
			if c == nil {
				continue
			}
			s := cursor[r]
			if c.gap && started[r] {
				s++
			}
			start = max(start, s)
		}
		if start < 0 {
			continue
		}
		for r, c := range col {
			if c == nil {
				continue
			}
			bufs[r].WriteString(strings.Repeat(" ", start-cursor[r]))
			bufs[r].WriteString(c.text)
			cursor[r] = start + displayWidth(c.text)
			started[r] = true
		}
	}
	out := make([]string, n)
	for r := range bufs {
		out[r] = bufs[r].String()
	}
	return out
}
