package driver

import (
	"fmt"

	"realign/internal/diag"
	"realign/internal/lexer"
	"realign/internal/source"
	"realign/internal/token"
)

// TokenizeResult holds the token lines of one file.
type TokenizeResult struct {
	Files     *source.FileSet
	FileID    source.FileID
	Tokenizer string
	Lines     []token.Line
	Bag       *diag.Bag
}

// TokenizeFile loads path and tokenizes it with the tokenizer named lang, or
// with the one resolved from the path when lang is empty. Lexical errors are
// reported in the bag; the returned error is for I/O and configuration.
func TokenizeFile(path, lang string, reg *lexer.Registry, maxDiagnostics int) (*TokenizeResult, error) {
	if reg == nil {
		var err error
		if reg, err = lexer.NewRegistry(nil); err != nil {
			return nil, err
		}
	}
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return tokenizeLoaded(fs, id, lang, reg, maxDiagnostics)
}

// TokenizeSource is TokenizeFile for in-memory content (stdin).
func TokenizeSource(name string, content []byte, lang string, reg *lexer.Registry, maxDiagnostics int) (*TokenizeResult, error) {
	if reg == nil {
		var err error
		if reg, err = lexer.NewRegistry(nil); err != nil {
			return nil, err
		}
	}
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	return tokenizeLoaded(fs, id, lang, reg, maxDiagnostics)
}

func tokenizeLoaded(fs *source.FileSet, id source.FileID, lang string, reg *lexer.Registry, maxDiagnostics int) (*TokenizeResult, error) {
	file := fs.Get(id)
	tz, err := resolveTokenizer(reg, file, lang)
	if err != nil {
		return nil, err
	}
	res := &TokenizeResult{
		Files:     fs,
		FileID:    id,
		Tokenizer: tz.Name(),
		Bag:       diag.NewBag(maxDiagnostics),
	}
	lines, err := tz.Tokenize(file.Lines)
	if err != nil {
		res.Bag.Add(lexDiagnostic(id, err))
		return res, nil
	}
	res.Lines = lines
	return res, nil
}

func resolveTokenizer(reg *lexer.Registry, file *source.File, lang string) (lexer.Tokenizer, error) {
	if lang == "" {
		return reg.ForPath(file.Path, file.Content)
	}
	tz, ok := reg.ByName(lang)
	if !ok {
		return nil, fmt.Errorf("unknown language %q", lang)
	}
	return tz, nil
}
