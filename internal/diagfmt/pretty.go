package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"realign/internal/diag"
	"realign/internal/source"
)

type palette struct {
	sev    map[diag.Severity]*color.Color
	path   *color.Color
	gutter *color.Color
	caret  *color.Color
	note   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgCyan, color.Bold),
		},
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan),
	}
	all := []*color.Color{p.path, p.gutter, p.caret, p.note}
	for _, c := range p.sev {
		all = append(all, c)
	}
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	if bag == nil {
		return nil
	}
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		pos := d.Primary.Pos()
		sev := p.sev[d.Severity]
		if sev == nil {
			sev = p.sev[diag.SevError]
		}
		if _, err := fmt.Fprintf(w, "%s: %s %s: %s\n",
			p.path.Sprintf("%s:%d:%d", displayPath(fs, d.Primary.File, opts.PathMode), pos.Line, pos.Col),
			sev.Sprint(d.Severity.String()), d.Code.ID(), d.Message); err != nil {
			return err
		}
		if err := writeSnippet(w, fs, d.Primary, p); err != nil {
			return err
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			np := n.Span.Pos()
			if _, err := fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"),
				displayPath(fs, n.Span.File, opts.PathMode), np.Line, np.Col, n.Msg); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSnippet(w io.Writer, fs *source.FileSet, sp source.Span, p palette) error {
	if fs == nil {
		return nil
	}
	f := fs.Get(sp.File)
	if f == nil || int(sp.Line) >= len(f.Lines) {
		return nil
	}
	line := f.Lines[sp.Line]
	start := min(int(sp.Start), len(line))
	end := min(max(int(sp.End), start), len(line))

	num := fmt.Sprintf("%d", sp.Line+1)
	pad := strings.Repeat(" ", len(num))
	if _, err := fmt.Fprintf(w, " %s %s %s\n", p.gutter.Sprint(num), p.gutter.Sprint("|"), line); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, " %s %s %s%s\n", pad, p.gutter.Sprint("|"), caretIndent(line[:start]), p.caret.Sprint(underline(line[start:end])))
	return err
}

// caretIndent keeps tabs of the prefix so the caret lines up in a terminal.
func caretIndent(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}

func underline(text string) string {
	n := runewidth.StringWidth(text)
	if n <= 1 {
		return "^"
	}
	return "^" + strings.Repeat("~", n-1)
}
