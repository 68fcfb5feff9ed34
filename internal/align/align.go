package align

import (
	"realign/internal/token"
)

// Result is an aligned run of lines.
type Result struct {
	Lines []string
	// Degraded counts runs that differed in shape between lines and were
	// kept as single unpadded cells.
	Degraded int
}

type aligner struct {
	n        int
	vocab    token.Vocabulary
	degraded int
}

func (a *aligner) newColumn() column {
	return make(column, a.n)
}

func tokenCell(t token.Token) *cell {
	return &cell{text: t.Text, gap: t.Spaced}
}

// align dispatches one nesting level; seqs is indexed by line, rows lists
// the lines taking part.
func (a *aligner) align(seqs [][]item, rows []int, depth int) []column {
	if len(rows) == 0 {
		return nil
	}
	if krs, schema, ok := a.keyed(seqs, rows, depth == 0); ok {
		return a.alignKeyed(krs, schema, rows, depth)
	}
	return a.alignAnchored(seqs, rows, depth)
}

// columns parses every line and aligns the trees from line start.
func (a *aligner) columns(lines []token.Line) []column {
	seqs := make([][]item, len(lines))
	rows := make([]int, len(lines))
	for i, line := range lines {
		seqs[i] = parseTree(line)
		rows[i] = i
	}
	return a.align(seqs, rows, 0)
}

// Block aligns lines that belong together. The returned lines carry no
// indentation and no trailing whitespace.
func Block(lines []token.Line) Result {
	a := &aligner{n: len(lines), vocab: token.ComputeVocabulary(lines)}
	cols := a.columns(lines)
	return Result{Lines: layout(cols, a.n), Degraded: a.degraded}
}

// Lines aligns an indentation block. Neighbouring lines that open with
// tokens of a different kind are aligned separately.
func Lines(lines []token.Line) Result {
	var res Result
	res.Lines = make([]string, 0, len(lines))
	for _, run := range Runs(lines) {
		part := Block(lines[run.Start:run.End])
		res.Lines = append(res.Lines, part.Lines...)
		res.Degraded += part.Degraded
	}
	return res
}
