package driver

import (
	"path/filepath"
	"testing"

	"realign/internal/diag"
	"realign/internal/token"
)

func TestTokenizeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.ts")
	writeFile(t, path, "let x = 'a';\n")

	res, err := TokenizeFile(path, "", nil, 0)
	if err != nil {
		t.Fatalf("TokenizeFile: %v", err)
	}
	if res.Tokenizer != "TypeScriptScanner" {
		t.Fatalf("unexpected tokenizer %q", res.Tokenizer)
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}
	if len(res.Lines) != 2 || len(res.Lines[0]) != 5 {
		t.Fatalf("unexpected token lines: %v", res.Lines)
	}
	if res.Lines[0][0].Kind != token.ReservedWord || res.Lines[0][3].Kind != token.String || !res.Lines[0][4].IsSymbol(";") {
		t.Fatalf("unexpected kinds: %v", res.Lines[0])
	}
}

func TestTokenizeSourceLexError(t *testing.T) {
	res, err := TokenizeSource("-", []byte("s := \"open\n"), "go", nil, 0)
	if err != nil {
		t.Fatalf("TokenizeSource: %v", err)
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.LexUnterminatedString {
		t.Fatalf("unexpected diagnostics: %+v", items)
	}
	if res.Lines != nil {
		t.Fatal("expected no token lines on error")
	}
}

func TestTokenizeUnknownLanguage(t *testing.T) {
	if _, err := TokenizeSource("-", []byte("x"), "cobol", nil, 0); err == nil {
		t.Fatal("expected error")
	}
}
