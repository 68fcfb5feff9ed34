package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
indentation = "  "
line_break = "crlf"
exclude = ["*.min.js"]

[scanner_extensions_map]
TypeScriptScanner = ["ts", "js"]
GoScanner = ["go"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Indentation != "  " || cfg.LineBreak != "crlf" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	opts, err := cfg.FormatOptions()
	if err != nil || opts.LineBreak != "\r\n" || opts.Indentation != "  " {
		t.Errorf("FormatOptions = %+v, %v", opts, err)
	}
	reg, err := cfg.Registry()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := reg.Lookup("tsx"); ok {
		t.Error("tsx is not mapped by this config")
	}
	if _, ok := reg.Lookup(".JS"); !ok {
		t.Error("js should be mapped")
	}
	if !cfg.Excluded("app.min.js") || cfg.Excluded("app.js") {
		t.Error("exclude patterns not applied")
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "indentation = \"\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.ScannerExtensionsMap["TypeScriptScanner"]) == 0 || len(cfg.ScannerExtensionsMap["GoScanner"]) == 0 {
		t.Errorf("default scanner map not applied: %+v", cfg.ScannerExtensionsMap)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "indentation = ", "failed to parse TOML"},
		{"unknown key", "indent = \"  \"\n", "unknown keys: indent"},
		{"bad indentation", "indentation = \"x\"\n", "indentation must contain only spaces"},
		{"bad line break", "line_break = \"cr\"\n", "line_break"},
		{"unknown scanner", "[scanner_extensions_map]\nRustScanner = [\"rs\"]\n", "unknown scanner"},
		{"negative jobs", "jobs = -1\n", "jobs must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "jobs = 2\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	m, ok, err := Discover(nested)
	if err != nil || !ok {
		t.Fatalf("Discover = %v, %v", ok, err)
	}
	if m.Config.Jobs != 2 {
		t.Errorf("jobs = %d", m.Config.Jobs)
	}
	if m.Root != root {
		t.Errorf("root = %q, want %q", m.Root, root)
	}
}
