package align

import (
	"slices"
	"strconv"

	"realign/internal/token"
)

// field is one `key: value` entry of a comma separated list together with
// the comma closing it, if any.
type field struct {
	id    string // key text, suffixed with the repeat number from the second repeat on
	key   token.Token
	colon token.Token
	value []item
	comma *token.Token
}

type keyedRow struct {
	fields []field
}

func (kr keyedRow) lookup(id string) (field, bool) {
	for _, f := range kr.fields {
		if f.id == id {
			return f, true
		}
	}
	return field{}, false
}

func isSymbolItem(it item, text string) bool {
	return !it.isGroup() && it.tok.IsSymbol(text)
}

// splitFields reports whether seq is a list of `key: value` fields separated
// by top-level commas. An empty sequence is a list without fields.
func splitFields(seq []item) (keyedRow, bool) {
	var row keyedRow
	if len(seq) == 0 {
		return row, true
	}
	var (
		parts  [][]item
		commas []token.Token
		start  int
	)
	for i, it := range seq {
		if isSymbolItem(it, ",") {
			parts = append(parts, seq[start:i])
			commas = append(commas, it.tok)
			start = i + 1
		}
	}
	parts = append(parts, seq[start:])

	seen := make(map[string]int)
	for i, part := range parts {
		if i > 0 && i == len(parts)-1 && len(part) == 0 {
			break
		}
		if len(part) < 2 || part[0].isGroup() || !part[0].tok.IsKeyLike() || !isSymbolItem(part[1], ":") {
			return keyedRow{}, false
		}
		key := part[0].tok.Text
		seen[key]++
		id := key
		if n := seen[key]; n > 1 {
			id = key + "#" + strconv.Itoa(n)
		}
		f := field{id: id, key: part[0].tok, colon: part[1].tok, value: part[2:]}
		if i < len(commas) {
			f.comma = &commas[i]
		}
		row.fields = append(row.fields, f)
	}
	return row, true
}

// mergeKeys builds the key schema: every key in first-seen order, a new key
// placed right after the key preceding it on its own line. Fails when two
// lines order shared keys differently.
func mergeKeys(krs []keyedRow, rows []int) ([]string, bool) {
	var schema []string
	index := make(map[string]int)
	for _, r := range rows {
		prev := -1
		for _, f := range krs[r].fields {
			i, ok := index[f.id]
			switch {
			case !ok:
				i = prev + 1
				schema = slices.Insert(schema, i, f.id)
				for j := i; j < len(schema); j++ {
					index[schema[j]] = j
				}
			case i <= prev:
				return nil, false
			}
			prev = i
		}
	}
	return schema, true
}

// keyed splits every present sequence into fields. At line start every line
// has to open with the first key of the schema so that no line is pushed
// right of its indentation.
func (a *aligner) keyed(seqs [][]item, rows []int, lineStart bool) ([]keyedRow, []string, bool) {
	krs := make([]keyedRow, a.n)
	hasFields := false
	for _, r := range rows {
		kr, ok := splitFields(seqs[r])
		if !ok {
			return nil, nil, false
		}
		hasFields = hasFields || len(kr.fields) > 0
		krs[r] = kr
	}
	if !hasFields {
		return nil, nil, false
	}
	schema, ok := mergeKeys(krs, rows)
	if !ok {
		return nil, nil, false
	}
	if lineStart {
		for _, r := range rows {
			if len(krs[r].fields) == 0 || krs[r].fields[0].id != schema[0] {
				return nil, nil, false
			}
		}
	}
	return krs, schema, true
}

// alignKeyed gives every schema key a key, a colon, its value columns and the
// closing comma. A line without the key leaves all of them empty, so the
// comma of the previous field stays right after that field's value.
func (a *aligner) alignKeyed(krs []keyedRow, schema []string, rows []int, depth int) []column {
	var cols []column
	for _, id := range schema {
		key, colon, comma := a.newColumn(), a.newColumn(), a.newColumn()
		values := make([][]item, a.n)
		var present []int
		for _, r := range rows {
			f, ok := krs[r].lookup(id)
			if !ok {
				continue
			}
			key[r] = tokenCell(f.key)
			colon[r] = tokenCell(f.colon)
			if f.comma != nil {
				comma[r] = tokenCell(*f.comma)
			}
			values[r] = f.value
			present = append(present, r)
		}
		cols = append(cols, key, colon)
		cols = append(cols, a.align(values, present, depth+1)...)
		cols = append(cols, comma)
	}
	return cols
}
