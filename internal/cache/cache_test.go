package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestPutGet(t *testing.T) {
	c, err := OpenAt(filepath.Join(t.TempDir(), "realign"))
	if err != nil {
		t.Fatal(err)
	}
	key := Key([]byte("a = 1;\n"), "TypeScriptScanner", "", "")
	if _, ok, err := c.Get(key); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}
	in := &Entry{Tokenizer: "TypeScriptScanner", Changed: true, Output: []byte("x"), Degraded: 2}
	if err := c.Put(key, in); err != nil {
		t.Fatal(err)
	}
	got, ok, err := c.Get(key)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.Tokenizer != in.Tokenizer || !got.Changed || string(got.Output) != "x" || got.Degraded != 2 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Stored == 0 {
		t.Error("Stored timestamp not set")
	}
}

func TestKeyDependsOnOptions(t *testing.T) {
	content := []byte("a = 1;\n")
	base := Key(content, "TypeScriptScanner", "", "")
	variants := []Digest{
		Key(content, "GoScanner", "", ""),
		Key(content, "TypeScriptScanner", "  ", ""),
		Key(content, "TypeScriptScanner", "", "\r\n"),
		Key([]byte("a = 2;\n"), "TypeScriptScanner", "", ""),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d collides with the base key", i)
		}
	}
	if Key(content, "TypeScriptScanner", "", "") != base {
		t.Error("key is not deterministic")
	}
}

func TestStaleSchemaIsMiss(t *testing.T) {
	c, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := Key([]byte("x"), "GoScanner", "", "")
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	data, err := msgpack.Marshal(&Entry{Schema: schemaVersion + 1})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, data, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := c.Get(key); err != nil || ok {
		t.Fatalf("stale schema must miss: ok=%v err=%v", ok, err)
	}
}

func TestDropAll(t *testing.T) {
	c, err := OpenAt(filepath.Join(t.TempDir(), "c"))
	if err != nil {
		t.Fatal(err)
	}
	key := Key([]byte("x"), "GoScanner", "", "")
	if err := c.Put(key, &Entry{}); err != nil {
		t.Fatal(err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(key); ok {
		t.Error("entry survived DropAll")
	}
	if err := c.Put(key, &Entry{}); err != nil {
		t.Fatalf("cache unusable after DropAll: %v", err)
	}
}

func TestNilCache(t *testing.T) {
	var c *Disk
	if err := c.Put(Digest{}, &Entry{}); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := c.Get(Digest{}); ok || err != nil {
		t.Fatalf("nil cache Get: ok=%v err=%v", ok, err)
	}
}
