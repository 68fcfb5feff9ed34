package driver

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"realign/internal/cache"
	"realign/internal/diag"
	"realign/internal/pipeline"
)

const (
	unalignedTS = "import * as assert from 'assert';\nimport Indenter from '../src/Indenter';\n"
	alignedTS   = "import * as assert from 'assert'         ;\nimport Indenter    from '../src/Indenter';\n"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestAlignPathsWritesFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.ts")
	b := filepath.Join(dir, "sub", "b.ts")
	writeFile(t, a, unalignedTS)
	writeFile(t, b, alignedTS)
	writeFile(t, filepath.Join(dir, "notes.txt"), "x = 1;\nyy = 2;\n")

	rec := &pipeline.Recorder{}
	report, err := AlignPaths(context.Background(), []string{dir}, AlignOptions{Jobs: 2, Progress: rec})
	if err != nil {
		t.Fatalf("AlignPaths: %v", err)
	}
	if len(report.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(report.Results))
	}
	if report.HasErrors() {
		t.Fatalf("unexpected errors: %+v", report.Results)
	}
	if got := readFile(t, a); got != alignedTS {
		t.Fatalf("a.ts not rewritten:\n%s", got)
	}
	if got := readFile(t, b); got != alignedTS {
		t.Fatalf("b.ts changed:\n%s", got)
	}
	changed := report.Unaligned()
	if len(changed) != 1 || changed[0].Path != a {
		t.Fatalf("unexpected changed set: %+v", changed)
	}

	var writes int
	for _, ev := range rec.Events() {
		if ev.Stage == pipeline.StageWrite && ev.Status == pipeline.StatusDone {
			writes++
		}
	}
	if writes != 1 {
		t.Fatalf("expected 1 write event, got %d", writes)
	}
}

func TestAlignPathsCheckDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.ts")
	writeFile(t, a, "x = 1;\n"+unalignedTS)

	report, err := AlignPaths(context.Background(), []string{a}, AlignOptions{Check: true})
	if err != nil {
		t.Fatalf("AlignPaths: %v", err)
	}
	if got := readFile(t, a); got != "x = 1;\n"+unalignedTS {
		t.Fatalf("check mode modified the file:\n%s", got)
	}
	res := report.Results[0]
	if !res.Changed {
		t.Fatal("expected file to be reported as unaligned")
	}
	// the import run degrades, which is reported as info next to the warning
	var items []diag.Diagnostic
	for _, d := range res.Bag.Items() {
		if d.Severity.AtLeast(diag.SevWarning) {
			items = append(items, d)
		}
	}
	if len(items) != 1 || items[0].Code != diag.ChkNotAligned {
		t.Fatalf("expected one CHK diagnostic, got %+v", res.Bag.Items())
	}
	if items[0].Primary.Line != 1 {
		t.Fatalf("expected first difference on line index 1, got %d", items[0].Primary.Line)
	}
	if res.Degraded != 1 {
		t.Fatalf("expected the import run to degrade once, got %d", res.Degraded)
	}
}

func TestAlignPathsLexError(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.ts")
	src := "x = 1;\n  let y = @;\n"
	writeFile(t, a, src)

	report, err := AlignPaths(context.Background(), []string{a}, AlignOptions{})
	if err != nil {
		t.Fatalf("AlignPaths: %v", err)
	}
	res := report.Results[0]
	if res.Err == nil || !report.HasErrors() {
		t.Fatal("expected a lexical error")
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.LexUnknownChar {
		t.Fatalf("unexpected diagnostics: %+v", items)
	}
	pos := items[0].Primary.Pos()
	if pos.Line != 2 || pos.Col != 11 {
		t.Fatalf("expected 2:11, got %d:%d", pos.Line, pos.Col)
	}
	if got := readFile(t, a); got != src {
		t.Fatalf("file with lex error was modified:\n%s", got)
	}
}

func TestAlignPathsKeepsBOMAndCRLF(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.ts")
	in := "\uFEFFa = 1;\r\nbb = 2;\r\n"
	writeFile(t, a, in)

	if _, err := AlignPaths(context.Background(), []string{a}, AlignOptions{}); err != nil {
		t.Fatalf("AlignPaths: %v", err)
	}
	want := "\uFEFFa  = 1;\r\nbb = 2;\r\n"
	if got := readFile(t, a); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAlignPathsStdoutUsesCache(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.ts")
	writeFile(t, a, unalignedTS)
	dc, err := cache.OpenAt(filepath.Join(dir, ".cache"))
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	opts := AlignOptions{Stdout: true, Cache: dc}

	first, err := AlignPaths(context.Background(), []string{a}, opts)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := AlignPaths(context.Background(), []string{a}, opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if first.Results[0].Cached || !second.Results[0].Cached {
		t.Fatalf("cache flags: first=%v second=%v", first.Results[0].Cached, second.Results[0].Cached)
	}
	if !bytes.Equal(first.Results[0].Output, second.Results[0].Output) {
		t.Fatal("cached output differs")
	}
	if string(second.Results[0].Output) != alignedTS {
		t.Fatalf("unexpected output:\n%s", second.Results[0].Output)
	}
	if got := readFile(t, a); got != unalignedTS {
		t.Fatal("stdout mode modified the file")
	}
}

func TestAlignPathsRecordsDegradation(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.ts")
	writeFile(t, a, "x = foo(a, b);\nyy = 1;\n")

	report, err := AlignPaths(context.Background(), []string{a}, AlignOptions{Stdout: true})
	if err != nil {
		t.Fatalf("AlignPaths: %v", err)
	}
	res := report.Results[0]
	if res.Degraded != 1 {
		t.Fatalf("expected 1 degraded run, got %d", res.Degraded)
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.AlnDegraded || items[0].Severity != diag.SevInfo {
		t.Fatalf("unexpected diagnostics: %+v", items)
	}
}

func TestAlignPathsCanceled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.ts"), unalignedTS)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := AlignPaths(ctx, []string{dir}, AlignOptions{}); err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestAlignSource(t *testing.T) {
	report, err := AlignSource(context.Background(), "-", []byte(unalignedTS), "typescript", AlignOptions{})
	if err != nil {
		t.Fatalf("AlignSource: %v", err)
	}
	res := report.Results[0]
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if string(res.Output) != alignedTS {
		t.Fatalf("unexpected output:\n%s", res.Output)
	}

	_, err = AlignSource(context.Background(), "-", nil, "cobol", AlignOptions{})
	if err == nil || !strings.Contains(err.Error(), "cobol") {
		t.Fatalf("expected unknown language error, got %v", err)
	}
}
