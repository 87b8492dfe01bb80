package diag

import (
	"fmt"
)

// Code is a stable numeric diagnostic code. Ranges:
// 1000-1999 lexical, 2000-2999 syntax, 3000-3999 symbols,
// 4000-4999 I/O, 5000-5999 project.
type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedBlockComment Code = 1002

	// Парсерные
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynEmptyInput       Code = 2002
	SynExpectIdentifier Code = 2003
	SynExpectLeftBrace  Code = 2004
	SynExpectRightBrace Code = 2005
	SynExpectLeftParen  Code = 2006
	SynExpectRightParen Code = 2007
	SynExpectColon      Code = 2008
	SynExpectArrow      Code = 2009
	SynExpectComparison Code = 2010
	SynExpectType       Code = 2011
	SynExpectAssign     Code = 2012
	SynExpectPercent    Code = 2013
	SynForMissingIn     Code = 2014
	SynEmptyBody        Code = 2015

	// Символы (фатальные при разборе, но коды нужны для вывода)
	SemRedeclaredSymbol     Code = 3001
	SemUntypedDeclaration   Code = 3002
	SemMalformedDeclaration Code = 3003

	// I/O
	IOLoadFileError Code = 4001

	// Проект/конфигурация
	PrjManifestInvalid Code = 5001
	PrjConfigInvalid   Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	LexInfo:                     "lexical note",
	LexUnknownChar:              "unknown character",
	LexUnterminatedBlockComment: "unterminated block comment",

	SynInfo:             "syntax note",
	SynUnexpectedToken:  "unexpected token",
	SynEmptyInput:       "empty input",
	SynExpectIdentifier: "expected identifier",
	SynExpectLeftBrace:  "expected '{'",
	SynExpectRightBrace: "expected '}'",
	SynExpectLeftParen:  "expected '('",
	SynExpectRightParen: "expected ')'",
	SynExpectColon:      "expected ':'",
	SynExpectArrow:      "expected '->'",
	SynExpectComparison: "expected comparison operator",
	SynExpectType:       "expected type name",
	SynExpectAssign:     "expected '='",
	SynExpectPercent:    "expected closing '%'",
	SynForMissingIn:     "expected 'in' in for loop",
	SynEmptyBody:        "empty element body",

	SemRedeclaredSymbol:     "redeclared symbol",
	SemUntypedDeclaration:   "declaration without a type",
	SemMalformedDeclaration: "malformed declaration",

	IOLoadFileError: "failed to load file",

	PrjManifestInvalid: "invalid tank.toml",
	PrjConfigInvalid:   "invalid configuration",
}

// ID renders the code with its range prefix, e.g. SYN2001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	default:
		return fmt.Sprintf("TNK%04d", ic)
	}
}

// Title returns the short human description of the code.
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
