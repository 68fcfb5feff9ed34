package token

// Vocabulary is the set of word texts that occur in every line of a block.
// It is computed per block and passed explicitly to Signature.
type Vocabulary map[string]struct{}

// Has reports whether the word is part of the vocabulary.
func (v Vocabulary) Has(word string) bool {
	_, ok := v[word]
	return ok
}

// ComputeVocabulary returns the words present in all lines.
// An empty input yields an empty vocabulary.
func ComputeVocabulary(lines []Line) Vocabulary {
	vocab := make(Vocabulary)
	if len(lines) == 0 {
		return vocab
	}
	for _, t := range lines[0] {
		if t.Kind == Word {
			vocab[t.Text] = struct{}{}
		}
	}
	for _, line := range lines[1:] {
		if len(vocab) == 0 {
			break
		}
		seen := make(map[string]struct{}, len(line))
		for _, t := range line {
			if t.Kind == Word {
				seen[t.Text] = struct{}{}
			}
		}
		for w := range vocab {
			if _, ok := seen[w]; !ok {
				delete(vocab, w)
			}
		}
	}
	return vocab
}

// Signature projects a token onto the string used for structural comparison:
// symbols and reserved words compare by text, words by kind unless the word
// belongs to the vocabulary, everything else by kind.
func Signature(t Token, vocab Vocabulary) string {
	switch t.Kind {
	case Symbol:
		return t.Text
	case ReservedWord, ImportExport:
		return t.Text
	case Word:
		if vocab.Has(t.Text) {
			return t.Kind.String() + "[" + t.Text + "]"
		}
		return t.Kind.String()
	default:
		return t.Kind.String()
	}
}

// IsLiteralSignature reports whether Signature(t, vocab) pins the exact text,
// i.e. the token can anchor a column across lines.
func IsLiteralSignature(t Token, vocab Vocabulary) bool {
	switch t.Kind {
	case Symbol, ReservedWord, ImportExport:
		return true
	case Word:
		return vocab.Has(t.Text)
	default:
		return false
	}
}
