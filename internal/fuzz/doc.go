// Package fuzztests houses Go fuzz harnesses for the tokenizers and the
// indenter. They feed arbitrary bytes through format.Indent and check that
// the pass never panics, fails only with a located *lexer.Error, and changes
// whitespace only.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
