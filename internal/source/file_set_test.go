package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.ts", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	id2 := fs.Add("test.ts", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, exists := fs.GetLatest("test.ts")
	if !exists || latestID != id2 {
		t.Fatalf("GetLatest = %d, %v; want %d, true", latestID, exists, id2)
	}

	// Старая версия остаётся доступной
	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Errorf("first content = %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d, want 2", fs.Len())
	}
}

func TestAddSplitsLines(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		lines     []string
		lineBreak string
	}{
		{"lf", "a\nb\n", []string{"a", "b", ""}, "\n"},
		{"crlf", "a\r\nb", []string{"a", "b"}, "\r\n"},
		{"single", "abc", []string{"abc"}, "\n"},
		{"lone cr kept", "a\rb\n", []string{"a\rb", ""}, "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewFileSet()
			f := fs.Get(fs.AddVirtual("x.ts", []byte(tt.content)))
			if len(f.Lines) != len(tt.lines) {
				t.Fatalf("lines = %q, want %q", f.Lines, tt.lines)
			}
			for i := range tt.lines {
				if f.Lines[i] != tt.lines[i] {
					t.Errorf("line %d = %q, want %q", i, f.Lines[i], tt.lines[i])
				}
			}
			if f.LineBreak() != tt.lineBreak {
				t.Errorf("LineBreak = %q, want %q", f.LineBreak(), tt.lineBreak)
			}
			if f.Flags&FileVirtual == 0 {
				t.Error("expected FileVirtual flag")
			}
		})
	}
}

func TestAddStripsBOM(t *testing.T) {
	fs := NewFileSet()
	content := append(append([]byte{}, BOM()...), []byte("let a = 1;")...)
	f := fs.Get(fs.Add("bom.ts", content, 0))
	if f.Flags&FileHadBOM == 0 {
		t.Fatal("expected FileHadBOM")
	}
	if string(f.Content) != "let a = 1;" {
		t.Errorf("content = %q", f.Content)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("x.ts", []byte("one\ntwo")))
	if got := f.GetLine(2); got != "two" {
		t.Errorf("GetLine(2) = %q", got)
	}
	if got := f.GetLine(0); got != "" {
		t.Errorf("GetLine(0) = %q", got)
	}
	if got := f.GetLine(3); got != "" {
		t.Errorf("GetLine(3) = %q", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.ts")
	if err := os.WriteFile(path, []byte("x\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if f.Flags&FileVirtual != 0 {
		t.Error("loaded file must not be virtual")
	}
	if got := f.FormatPath("relative", dir); got != "a.ts" {
		t.Errorf("FormatPath(relative) = %q", got)
	}
	if got := f.FormatPath("basename", ""); got != "a.ts" {
		t.Errorf("FormatPath(basename) = %q", got)
	}
	if _, err := fs.Load(filepath.Join(dir, "missing.ts")); err == nil {
		t.Error("expected error for missing file")
	}
}
