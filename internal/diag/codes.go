package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002

	// Выравнивание
	AlnInfo     Code = 2000
	AlnDegraded Code = 2001

	// Файлы
	IOInfo            Code = 4000
	IOLoadFileError   Code = 4001
	IOWriteFileError  Code = 4002
	IOUnknownLanguage Code = 4003

	// Конфигурация
	CfgInfo         Code = 5000
	CfgInvalidValue Code = 5001

	// --check
	ChkInfo       Code = 6000
	ChkNotAligned Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexUnknownChar:        "Invalid character",
	LexUnterminatedString: "Unterminated string literal",
	AlnInfo:               "Alignment information",
	AlnDegraded:           "Lines differ in shape and were left unpadded",
	IOInfo:                "File information",
	IOLoadFileError:       "Failed to read file",
	IOWriteFileError:      "Failed to write file",
	IOUnknownLanguage:     "No tokenizer for file",
	CfgInfo:               "Configuration information",
	CfgInvalidValue:       "Invalid configuration value",
	ChkInfo:               "Check information",
	ChkNotAligned:         "File is not aligned",
}

// ID returns the stable identifier, e.g. LEX1001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("ALN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CFG%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("CHK%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
