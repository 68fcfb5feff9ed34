package align_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"realign/internal/align"
	"realign/internal/lexer"
	"realign/internal/testkit"
	"realign/internal/token"
)

func tokenize(t *testing.T, lines []string) []token.Line {
	t.Helper()
	out, err := lexer.TypeScript{}.Tokenize(lines)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	return out
}

func alignLines(t *testing.T, lines []string) []string {
	t.Helper()
	return align.Lines(tokenize(t, lines)).Lines
}

func expectLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(got), len(want), strings.Join(got, "\n"))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d:\n got %q\nwant %q", i, got[i], want[i])
		}
	}
}

func TestAlignImports(t *testing.T) {
	got := alignLines(t, []string{
		"import * as assert from 'assert';",
		"import Indenter from '../src/Indenter';",
	})
	expectLines(t, got, []string{
		"import * as assert from 'assert'         ;",
		"import Indenter    from '../src/Indenter';",
	})
}

func TestAlignKeyedRows(t *testing.T) {
	got := alignLines(t, []string{
		"{ a: 1, bb: 'x' },",
		"{ a: 22, c: 3, bb: 'yy' },",
		"{ a: 4, bb: 'z' },",
	})
	expectLines(t, got, []string{
		"{ a: 1 ,       bb: 'x'  },",
		"{ a: 22, c: 3, bb: 'yy' },",
		"{ a: 4 ,       bb: 'z'  },",
	})
}

func TestAlignKeyedTrailingComma(t *testing.T) {
	got := alignLines(t, []string{
		"{ a: 1, b: 2, }",
		"{ a: 333, }",
	})
	expectLines(t, got, []string{
		"{ a: 1  , b: 2, }",
		"{ a: 333,       }",
	})
}

func readRows(t *testing.T, name string) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

// columnOf returns the display column of the n-th occurrence of sub.
func columnOf(line, sub string, n int) int {
	off := 0
	for ; n > 0; n-- {
		i := strings.Index(line[off:], sub)
		if i < 0 {
			return -1
		}
		off += i + len(sub)
	}
	i := strings.Index(line[off:], sub)
	if i < 0 {
		return -1
	}
	return runewidth.StringWidth(line[:off+i])
}

func TestAlignGridRows(t *testing.T) {
	got := alignLines(t, readRows(t, "grid.ts"))
	if len(got) != 15 {
		t.Fatalf("got %d lines", len(got))
	}
	keys := []string{
		"label:", "name:", "width:", "align:", "hidden:", "editable:", "edittype:",
		"formatter:", "formatoptions:", "sorttype:", "editoptions:", "maxlength:", "class:",
	}
	for _, key := range keys {
		want := -1
		for i, line := range got {
			col := columnOf(line, key, 0)
			if col < 0 {
				continue
			}
			if want < 0 {
				want = col
			} else if col != want {
				t.Errorf("key %s at column %d on line %d, want %d", key, col, i, want)
			}
		}
		if want < 0 {
			t.Errorf("key %s not found", key)
		}
	}

	// the Cronograma rows have no formatoptions: the comma stays after the
	// formatter value and the formatoptions column is left blank.
	for _, i := range []int{4, 5} {
		comma := columnOf(got[i], ",", strings.Count(got[i][:strings.Index(got[i], "formatter:")], ","))
		if want := columnOf(got[2], ", formatoptions:", 0); comma != want {
			t.Errorf("line %d: formatter comma at %d, want %d\n%s\n%s", i, comma, want, got[2], got[i])
		}
		between := got[i][strings.LastIndex(got[i], "'select'")+len("'select'") : strings.Index(got[i], "editoptions:")]
		if strings.Trim(between, " ,") != "" || strings.Count(between, ",") != 1 {
			t.Errorf("line %d: formatoptions column not blank: %q", i, between)
		}
	}
	if v, m := columnOf(got[4], "value:", 0), columnOf(got[2], "maxlength:", 0); v != m {
		t.Errorf("nested value: at %d, maxlength: at %d", v, m)
	}
	if !strings.Contains(got[4], "hidden: !modOuMoi, editable:") {
		t.Errorf("hidden column wider than its widest value: %q", got[4])
	}
	if !strings.Contains(got[0], "hidden: false    , editable:") {
		t.Errorf("hidden value not padded to the widest one: %q", got[0])
	}
	checkLossless(t, readRows(t, "grid.ts"), got)
}

func TestAlignKeyStability(t *testing.T) {
	lines := []string{
		"{ label: 'Id', name: 'id', width: 60 },",
		"{ label: 'Descrição', name: 'descricao', formatoptions: { x: 1 }, width: 200 },",
		"{ label: 'Nome', name: 'nome', width: 100, hidden: true },",
	}
	got := alignLines(t, lines)
	for _, key := range []string{"label:", "name:", "width:"} {
		want := -1
		for i, line := range got {
			col := runeIndex(line, key)
			if col < 0 {
				t.Fatalf("line %d lost key %s: %q", i, key, line)
			}
			if want < 0 {
				want = col
			} else if col != want {
				t.Errorf("key %s at column %d on line %d, want %d", key, col, i, want)
			}
		}
	}
	if !strings.Contains(got[1], "formatoptions: { x: 1 }") {
		t.Errorf("optional key not kept intact: %q", got[1])
	}
}

func runeIndex(s, sub string) int {
	i := strings.Index(s, sub)
	if i < 0 {
		return -1
	}
	return len([]rune(s[:i]))
}

func TestAlignDegradesOnDifferentShapes(t *testing.T) {
	res := align.Lines(tokenize(t, []string{
		"x = foo(a, b);",
		"yy = 1;",
	}))
	expectLines(t, res.Lines, []string{
		"x  = foo(a, b);",
		"yy = 1        ;",
	})
	if res.Degraded != 1 {
		t.Errorf("degraded = %d, want 1", res.Degraded)
	}
}

func TestAlignNoTrailingWhitespace(t *testing.T) {
	got := alignLines(t, []string{
		"a = 1;",
		"bb = 2",
	})
	expectLines(t, got, []string{
		"a  = 1;",
		"bb = 2",
	})
}

func TestAlignSingleLineNormalisesSpacing(t *testing.T) {
	got := alignLines(t, []string{"const   x\t=  {a:1,b :[2,  3]};"})
	expectLines(t, got, []string{"const x = {a:1,b :[2, 3]};"})
}

func TestAlignKeepsLineStart(t *testing.T) {
	res := align.Block(tokenize(t, []string{
		"a = 1",
		"= 2",
	}))
	expectLines(t, res.Lines, []string{
		"a = 1",
		"= 2",
	})
}

func TestAlignUnmatchedBrackets(t *testing.T) {
	lines := []string{
		"foo(a, b",
		"bar(c ] d",
	}
	got := alignLines(t, lines)
	checkLossless(t, lines, got)
}

var idempotenceCases = [][]string{
	{
		"import * as assert from 'assert';",
		"import Indenter from '../src/Indenter';",
	},
	{
		"{ label: 'Descrição', name: 'Nome', width: 200, align: 'left', hidden: false },",
		"{ label: 'Qtd.<br/>Insumo*', name: 'QuantidadeInsumo', width: 100, hidden: modOuMoi, editoptions: { maxlength: \"14\", class: 'decimal' } },",
		"{ label: 'Cronograma*', name: 'Cronograma', width: 100, hidden: !modOuMoi, editoptions: { value: valuesCron } },",
		"{ label: labelValorUnitario, name: 'ValorUnitario', width: 100, sorttype: orderFormula }",
	},
	{
		"const a = 1;",
		"const bcd = foo(2, 3);",
		"let e = [4];",
		"x.y = 5;",
	},
	{
		"a = 1",
		"= 2",
		"bbb = 3",
	},
}

func TestAlignIdempotent(t *testing.T) {
	for i, lines := range idempotenceCases {
		first := alignLines(t, lines)
		if err := testkit.CheckIdempotent(first, alignLines(t, first)); err != nil {
			t.Errorf("case %d: %v", i, err)
		}
	}
}

func TestAlignLossless(t *testing.T) {
	for _, lines := range idempotenceCases {
		checkLossless(t, lines, alignLines(t, lines))
	}
}

func checkLossless(t *testing.T, in, out []string) {
	t.Helper()
	if err := testkit.CheckLossless(in, out); err != nil {
		t.Fatal(err)
	}
	before := tokenize(t, in)
	after := tokenize(t, out)
	for i := range before {
		if len(before[i]) != len(after[i]) {
			t.Fatalf("line %d: %d tokens -> %d", i, len(before[i]), len(after[i]))
		}
		for j := range before[i] {
			if before[i][j].Text != after[i][j].Text {
				t.Errorf("line %d token %d: %q -> %q", i, j, before[i][j].Text, after[i][j].Text)
			}
		}
	}
	if err := testkit.CheckNoTrailingWhitespace(out); err != nil {
		t.Error(err)
	}
}
