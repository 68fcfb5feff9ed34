package diag

import (
	"fmt"
	"strings"

	"realign/internal/source"
)

// FormatShort renders one line per diagnostic:
//
//	path:line:col: SEVERITY CODE: message
//
// Columns count bytes from 1. Newlines inside messages are flattened.
func FormatShort(diags []Diagnostic, fs *source.FileSet, pathMode string) string {
	if len(diags) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, d := range diags {
		path := "<unknown>"
		if fs != nil {
			if f := fs.Get(d.Primary.File); f != nil {
				path = f.FormatPath(pathMode, fs.BaseDir())
			}
		}
		pos := d.Primary.Pos()
		msg := strings.ReplaceAll(d.Message, "\n", " ")
		fmt.Fprintf(&sb, "%s:%d:%d: %s %s: %s\n", path, pos.Line, pos.Col, d.Severity, d.Code.ID(), msg)
	}
	return sb.String()
}
