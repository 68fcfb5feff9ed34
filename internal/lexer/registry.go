package lexer

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	enry "github.com/go-enry/go-enry/v2"
)

// DefaultExtensionsMap is the scannerExtensionsMap used when configuration omits it.
func DefaultExtensionsMap() map[string][]string {
	out := make(map[string][]string)
	for _, t := range All() {
		out[t.Name()] = append([]string(nil), t.Extensions()...)
	}
	return out
}

// Registry resolves a file extension to a Tokenizer. Built once, read-only afterwards.
type Registry struct {
	byExt  map[string]Tokenizer
	byName map[string]Tokenizer
}

// NewRegistry builds a registry from a tokenizer-name → extensions map.
// A nil or empty map falls back to DefaultExtensionsMap.
func NewRegistry(extensionsMap map[string][]string) (*Registry, error) {
	if len(extensionsMap) == 0 {
		extensionsMap = DefaultExtensionsMap()
	}
	r := &Registry{
		byExt:  make(map[string]Tokenizer),
		byName: make(map[string]Tokenizer),
	}
	for _, t := range All() {
		r.byName[strings.ToLower(t.Name())] = t
		for _, alias := range t.grammar().aliases {
			r.byName[alias] = t
		}
	}

	// детерминированный порядок, чтобы конфликт расширений давал одну и ту же ошибку
	names := make([]string, 0, len(extensionsMap))
	for name := range extensionsMap {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t, ok := r.byName[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown scanner %q", name)
		}
		for _, ext := range extensionsMap[name] {
			ext = normalizeExt(ext)
			if ext == "" {
				continue
			}
			if prev, dup := r.byExt[ext]; dup && prev.Name() != t.Name() {
				return nil, fmt.Errorf("extension %q mapped to both %s and %s", ext, prev.Name(), t.Name())
			}
			r.byExt[ext] = t
		}
	}
	return r, nil
}

// Lookup returns the tokenizer registered for the extension ("ts", ".ts", "TS").
func (r *Registry) Lookup(ext string) (Tokenizer, bool) {
	t, ok := r.byExt[normalizeExt(ext)]
	return t, ok
}

// ByName returns a tokenizer by configuration name or alias.
func (r *Registry) ByName(name string) (Tokenizer, bool) {
	t, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// ForPath resolves the tokenizer of a file: the registered extension first,
// then language detection by file name, shebang and editor modeline.
func (r *Registry) ForPath(path string, content []byte) (Tokenizer, error) {
	if t, ok := r.Lookup(filepath.Ext(path)); ok {
		return t, nil
	}
	if lang, safe := enry.GetLanguageByFilename(path); safe {
		if t, ok := r.fromLinguist(lang); ok {
			return t, nil
		}
	}
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		if t, ok := r.fromLinguist(lang); ok {
			return t, nil
		}
	}
	if lang, safe := enry.GetLanguageByModeline(content); safe {
		if t, ok := r.fromLinguist(lang); ok {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%s: no scanner registered for extension %q", path, filepath.Ext(path))
}

// Extensions returns the registered extensions of a tokenizer, sorted.
func (r *Registry) Extensions(t Tokenizer) []string {
	var out []string
	for ext, candidate := range r.byExt {
		if candidate.Name() == t.Name() {
			out = append(out, ext)
		}
	}
	sort.Strings(out)
	return out
}

// linguistNames maps go-enry language names to scanner aliases.
var linguistNames = map[string]string{
	"TypeScript": "typescript",
	"TSX":        "typescript",
	"JavaScript": "javascript",
	"JSX":        "javascript",
	"Go":         "go",
}

func (r *Registry) fromLinguist(lang string) (Tokenizer, bool) {
	alias, ok := linguistNames[lang]
	if !ok {
		return nil, false
	}
	return r.ByName(alias)
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
