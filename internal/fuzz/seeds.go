package fuzztests

import (
	"testing"
)

const maxFuzzInput = 1 << 16 // 64 KiB

// seeds are inputs whose alignment is known to be stable.
var seeds = []string{
	"",
	"\n\n",
	"import * as assert from 'assert';\nimport Indenter from '../src/Indenter';\n",
	"const a = 1;\nconst bcd = foo(2, 3);\nlet e = [4];\nx.y = 5;\n",
	"a = 1\n= 2\nbbb = 3\n",
	"  { a: 1, bb: 'x' },\n  { a: 22, c: 3, bb: 'yy' },\n  { a: 4, bb: 'z' },\n",
	"x = foo(a, b);\nyy = 1;\n",
	"let s = 'it\\'s';\nlet t = \"q\";\n",
	"foo(a, b\nbar(c ] d\n",
	"a = 1;\r\nbb = 2;\r\n",
	"\tx := 1\n\tyy := 2 // two\n",
	"let re = /a+b/g;\nlet q = a / b;\n",
	"let x = @;\n",
	"let s = 'open\n",
}

func addSeeds(f *testing.F) {
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clamp(input []byte) string {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return string(input)
}
