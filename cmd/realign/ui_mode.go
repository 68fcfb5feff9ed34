package main

import (
	"fmt"
	"strings"
)

// alignOutput describes where align sends its results.
type alignOutput struct {
	stdout bool // aligned text is printed instead of written back
	json   bool
	quiet  bool
}

// resolveUI turns the --ui value into a decision for one run. The progress
// view draws on stdout, so it never runs when stdout carries aligned text or
// JSON, nor in quiet mode; "auto" leaves it to the terminal check.
func resolveUI(value string, out alignOutput, terminal bool) (bool, error) {
	var want bool
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		want = terminal
	case "on":
		want = true
	case "off":
		want = false
	default:
		return false, fmt.Errorf("align: invalid --ui value %q (expected auto|on|off)", value)
	}
	return want && !out.stdout && !out.json && !out.quiet, nil
}
