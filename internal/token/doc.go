// Package token defines the classified tokens produced by the per-language scanners.
// Invariants:
//   - Token.Text is exactly the consumed source text (strings keep their delimiters).
//   - Whitespace never becomes a token; Token.Spaced records that at least one
//     whitespace byte separated the token from the previous one on the same line.
//   - Rendering a Line with Line.String() reproduces the source line with
//     whitespace runs collapsed to a single space and the line trimmed.
package token
