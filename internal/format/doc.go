// Package format re-aligns source text block by block.
//
// Назначение: склейка строк в блоки, токенизация, выравнивание и сборка текста.
// Не делает: IO, выбор языка по пути, перенос строк или переупорядочивание токенов.
// Зависимости: internal/align, internal/lexer, internal/source, internal/trace.
package format
