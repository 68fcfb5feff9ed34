package align

import (
	"realign/internal/token"
)

// item is a node of the bracket tree of one line: a plain token or a
// bracket group (tok is the opener, close the matching closer).
type item struct {
	tok      token.Token
	children []item
	close    *token.Token
}

func (it item) isGroup() bool {
	return it.close != nil
}

// parseTree groups matching brackets; unmatched brackets stay plain tokens.
func parseTree(line token.Line) []item {
	type frame struct {
		open  token.Token
		items []item
	}
	stack := []frame{{}}
	for _, t := range line {
		top := len(stack) - 1
		switch {
		case t.IsOpen():
			stack = append(stack, frame{open: t})
		case t.IsClose() && top > 0 && token.Closer(stack[top].open.Text) == t.Text:
			closeTok := t
			done := stack[top]
			stack = stack[:top]
			stack[top-1].items = append(stack[top-1].items, item{tok: done.open, children: done.items, close: &closeTok})
		default:
			stack[top].items = append(stack[top].items, item{tok: t})
		}
	}
	// незакрытые скобки разворачиваются обратно в родителя
	for len(stack) > 1 {
		top := len(stack) - 1
		done := stack[top]
		stack = stack[:top]
		stack[top-1].items = append(stack[top-1].items, item{tok: done.open})
		stack[top-1].items = append(stack[top-1].items, done.items...)
	}
	return stack[0].items
}

func flatten(items []item, out []token.Token) []token.Token {
	for _, it := range items {
		out = append(out, it.tok)
		if it.isGroup() {
			out = flatten(it.children, out)
			out = append(out, *it.close)
		}
	}
	return out
}

// renderItems prints items with collapsed single spaces; the first item's
// own leading space is not included.
func renderItems(items []item) string {
	return token.Render(flatten(items, nil))
}

func (a *aligner) signature(it item) string {
	if it.isGroup() {
		return it.tok.Text + it.close.Text
	}
	return token.Signature(it.tok, a.vocab)
}

func (a *aligner) isAnchor(it item) bool {
	return it.isGroup() || token.IsLiteralSignature(it.tok, a.vocab)
}
