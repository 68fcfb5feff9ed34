package source

import (
	"bytes"
	"path/filepath"
	"strings"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// BOM returns the UTF-8 byte order mark.
func BOM() []byte {
	return bom
}

func removeBOM(content []byte) ([]byte, bool) {
	if bytes.HasPrefix(content, bom) {
		return content[len(bom):], true
	}
	return content, false
}

// splitLines режет содержимое по '\n' и снимает '\r' у строк, закрытых "\r\n".
// Последний элемент — хвост после последнего перевода строки (может быть пустым),
// поэтому strings.Join(lines, lineBreak) восстанавливает исходный текст.
func splitLines(content []byte) (lines []string, crlf bool) {
	raw := strings.Split(string(content), "\n")
	lines = make([]string, len(raw))
	for i, l := range raw {
		if i < len(raw)-1 && strings.HasSuffix(l, "\r") {
			l = l[:len(l)-1]
			crlf = true
		}
		lines[i] = l
	}
	return lines, crlf
}

// SplitLines is the exported form of the splitter used by FileSet.
func SplitLines(text string) (lines []string, lineBreak string) {
	lines, crlf := splitLines([]byte(text))
	if crlf {
		return lines, "\r\n"
	}
	return lines, "\n"
}

// RelativePath returns path relative to base, slash-separated.
func RelativePath(path, base string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absBase, absPath)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
