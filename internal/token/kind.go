package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// Symbol is a single punctuation or operator character.
	Symbol
	// ReservedWord is a keyword of the scanned language.
	ReservedWord
	// ImportExport is a reserved word that introduces an import or export clause.
	ImportExport
	// Word is any identifier-like run that is not reserved.
	Word
	// String is a quoted literal (including regular expression literals); delimiters are kept.
	String
	// Comment is a line comment running to the end of the line.
	Comment
)

func (k Kind) String() string {
	switch k {
	case Symbol:
		return "symbol"
	case ReservedWord:
		return "reserved word"
	case ImportExport:
		return "import export"
	case Word:
		return "word"
	case String:
		return "string"
	case Comment:
		return "comment"
	default:
		return "invalid"
	}
}

// IsReserved reports whether the kind is a reserved word or one of its sub-kinds.
func (k Kind) IsReserved() bool {
	return k == ReservedWord || k == ImportExport
}
