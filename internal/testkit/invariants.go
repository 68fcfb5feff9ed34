// Package testkit holds checks shared by the aligner, formatter and fuzz tests.
package testkit

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// CheckLossless verifies that after differs from before only in whitespace
// between tokens: the same number of lines, and on every line the same
// characters once whitespace is removed.
func CheckLossless(before, after []string) error {
	if len(before) != len(after) {
		return fmt.Errorf("line count changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if squeeze(before[i]) != squeeze(after[i]) {
			return fmt.Errorf("line %d: content changed:\n  before: %q\n  after:  %q", i+1, before[i], after[i])
		}
	}
	return nil
}

// CheckNoTrailingWhitespace reports the first line ending in a space or tab.
// Blank lines are skipped; they are kept verbatim.
func CheckNoTrailingWhitespace(lines []string) error {
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.TrimRight(line, " \t") != line {
			return fmt.Errorf("line %d: trailing whitespace in %q", i+1, line)
		}
	}
	return nil
}

// CheckIdempotent verifies that a second pass over once returns it unchanged.
func CheckIdempotent(once, twice []string) error {
	if len(once) != len(twice) {
		return fmt.Errorf("second pass changed line count: %d -> %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			return fmt.Errorf("line %d: second pass changed output:\n  first:  %q\n  second: %q", i+1, once[i], twice[i])
		}
	}
	return nil
}

// Occupant is the text one line places in a column. Gap marks text that was
// preceded by whitespace in the source and therefore keeps one space.
type Occupant struct {
	Line int
	Text string
	Gap  bool
}

// CheckColumns verifies laid out lines against their columns, given left to
// right. All occupants of a column must start at the same display offset, no
// occupant may sit closer to the previous text on its line than its gap
// allows, and at least one occupant must sit exactly that close: the column
// is as wide as its widest occupant and no wider.
func CheckColumns(lines []string, cols [][]Occupant) error {
	pos := make([]int, len(lines))
	started := make([]bool, len(lines))
	for c, col := range cols {
		if len(col) == 0 {
			continue
		}
		start, tight := -1, false
		for _, o := range col {
			line := lines[o.Line]
			i := strings.Index(line[pos[o.Line]:], o.Text)
			if i < 0 {
				return fmt.Errorf("column %d: %q not found on line %d after offset %d", c, o.Text, o.Line+1, pos[o.Line])
			}
			pad := line[pos[o.Line] : pos[o.Line]+i]
			if strings.Trim(pad, " ") != "" {
				return fmt.Errorf("column %d: line %d has %q before %q", c, o.Line+1, pad, o.Text)
			}
			need := 0
			if o.Gap && started[o.Line] {
				need = 1
			}
			if len(pad) < need {
				return fmt.Errorf("column %d: line %d lost the space before %q", c, o.Line+1, o.Text)
			}
			tight = tight || len(pad) == need
			at := runewidth.StringWidth(line[:pos[o.Line]+i])
			if start >= 0 && at != start {
				return fmt.Errorf("column %d: %q starts at %d on line %d, other lines at %d", c, o.Text, at, o.Line+1, start)
			}
			start = at
			pos[o.Line] += i + len(o.Text)
			started[o.Line] = true
		}
		if !tight {
			return fmt.Errorf("column %d: every occupant is padded, the column is wider than its widest occupant", c)
		}
	}
	return nil
}

func squeeze(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
