// Copyright © 2026 The eolint authors

// Package token defines the lexical tokens of the analyzed Python subset
// and a scanner that produces them. Unlike a free-form lexer the scanner
// tracks indentation and emits NEWLINE, INDENT and DEDENT tokens the way
// the Python tokenizer does, so the parser can treat block structure as
// ordinary tokens.
package token

import "fmt"

// Type identifies the lexical class of a token.
type Type uint

const (
	INVALID Type = iota
	ERROR
	EOF

	NEWLINE
	INDENT
	DEDENT

	NAME   // identifiers and keywords
	NUMBER // integer and float literals
	STRING // string literals, unquoted text
	OP     // operators and delimiters
)

func (t Type) String() string {
	switch t {
	case INVALID:
		return "INVALID"
	case ERROR:
		return "ERROR"
	case EOF:
		return "EOF"
	case NEWLINE:
		return "NEWLINE"
	case INDENT:
		return "INDENT"
	case DEDENT:
		return "DEDENT"
	case NAME:
		return "NAME"
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case OP:
		return "OP"
	default:
		return fmt.Sprintf("Type(%d)", uint(t))
	}
}

// Token is one lexical token with its source position. Line is 1-based and
// Col is the 0-based column offset of the token's first byte.
type Token struct {
	Type Type
	Text string
	Line int
	Col  int
}

func (t *Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Type, t.Text, t.Line, t.Col)
}

// keywords of the analyzed subset. Keywords scan as NAME tokens; the
// parser decides their role from Text.
var keywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "break": true, "class": true, "continue": true,
	"def": true, "del": true, "elif": true, "else": true, "except": true,
	"finally": true, "for": true, "from": true, "global": true, "if": true,
	"import": true, "in": true, "is": true, "lambda": true, "not": true,
	"or": true, "pass": true, "raise": true, "return": true, "try": true,
	"while": true, "with": true, "yield": true,
}

// IsKeyword reports whether name is a reserved word.
func IsKeyword(name string) bool { return keywords[name] }
