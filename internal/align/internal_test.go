package align

import (
	"slices"
	"testing"
)

func TestLCS(t *testing.T) {
	tests := []struct {
		a, b, want []string
	}{
		{[]string{"import", "*", "as", "from", ";"}, []string{"import", "from", ";"}, []string{"import", "from", ";"}},
		{[]string{"a", "b"}, []string{"b", "a"}, []string{"b"}},
		{nil, []string{"x"}, nil},
		{[]string{"=", "(", ";"}, []string{"=", ";"}, []string{"=", ";"}},
	}
	for _, tt := range tests {
		if got := lcs(tt.a, tt.b); !slices.Equal(got, tt.want) {
			t.Errorf("lcs(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEmbedLeftmost(t *testing.T) {
	got := embed([]string{",", ";"}, []string{",", ",", ";", ";"})
	if want := []int{0, 2}; !slices.Equal(got, want) {
		t.Fatalf("embed = %v, want %v", got, want)
	}
}

func TestMergeKeysKeepsLineOrder(t *testing.T) {
	rows := []keyedRow{
		{fields: []field{{id: "a"}, {id: "c"}}},
		{fields: []field{{id: "a"}, {id: "b"}, {id: "c"}}},
		{fields: []field{{id: "d"}, {id: "c"}}},
	}
	schema, ok := mergeKeys(rows, []int{0, 1, 2})
	if !ok {
		t.Fatal("merge failed")
	}
	if want := []string{"d", "a", "b", "c"}; !slices.Equal(schema, want) {
		t.Fatalf("schema = %v, want %v", schema, want)
	}
	if _, ok := mergeKeys([]keyedRow{
		{fields: []field{{id: "a"}, {id: "b"}}},
		{fields: []field{{id: "b"}, {id: "a"}}},
	}, []int{0, 1}); ok {
		t.Fatal("conflicting orders must not merge")
	}
}

func TestLayoutPadding(t *testing.T) {
	cols := []column{
		{{text: "ab"}, {text: "abcd"}},
		{{text: "=", gap: true}, {text: "=", gap: true}},
		{nil, {text: "x", gap: true}},
	}
	got := layout(cols, 2)
	if got[0] != "ab   =" || got[1] != "abcd = x" {
		t.Fatalf("layout = %q", got)
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"abc", 3},
		{"Descrição", 9},
		{"e\u0301", 1},
		{"日本", 4},
	}
	for _, tt := range tests {
		if got := displayWidth(tt.text); got != tt.want {
			t.Errorf("displayWidth(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
