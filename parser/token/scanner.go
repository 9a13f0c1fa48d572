// Copyright © 2026 The eolint authors

package token

import (
	"fmt"
	"strings"
)

// tabWidth is the column multiple a tab character advances to when
// measuring indentation.
const tabWidth = 8

// Scanner tokenizes a complete source buffer. It maintains the indentation
// stack and the open-bracket depth needed to decide where logical lines
// end, so its output is a flat token stream the parser can consume with
// one-token lookahead.
type Scanner struct {
	file string
	src  []byte

	pos       int // index of the next unread byte
	line      int // current 1-based line
	lineStart int // index of the first byte of the current line

	indents []int // indentation stack, always starts with 0
	depth   int   // open ( [ { depth
	toks    []*Token
}

// NewScanner returns a Scanner over src. The file name is only used in
// error messages.
func NewScanner(file string, src []byte) *Scanner {
	return &Scanner{
		file:    file,
		src:     src,
		line:    1,
		indents: []int{0},
	}
}

// Scan tokenizes the entire buffer. The returned stream always ends with
// an EOF token. Scan returns an error for unterminated strings, bad
// indentation, and characters outside the language.
func (s *Scanner) Scan() ([]*Token, error) {
	for s.pos < len(s.src) {
		if s.col() == 0 && s.depth == 0 {
			if s.skipBlankLine() {
				continue
			}
			if err := s.scanIndent(); err != nil {
				return nil, err
			}
		}
		if err := s.scanLine(); err != nil {
			return nil, err
		}
	}
	if n := len(s.toks); n > 0 && s.toks[n-1].Type != NEWLINE {
		s.emit(NEWLINE, "")
	}
	for len(s.indents) > 1 {
		s.indents = s.indents[:len(s.indents)-1]
		s.emit(DEDENT, "")
	}
	s.emit(EOF, "")
	return s.toks, nil
}

func (s *Scanner) col() int { return s.pos - s.lineStart }

func (s *Scanner) emit(typ Type, text string) {
	s.toks = append(s.toks, &Token{Type: typ, Text: text, Line: s.line, Col: s.col() - len(text)})
}

// emitAt records a token whose start position was captured before its text
// was consumed.
func (s *Scanner) emitAt(typ Type, text string, line, col int) {
	s.toks = append(s.toks, &Token{Type: typ, Text: text, Line: line, Col: col})
}

func (s *Scanner) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%s:%d: %s", s.file, s.line, fmt.Sprintf(format, args...))
}

// skipBlankLine consumes a line holding only whitespace or a comment.
// Blank lines contribute no tokens and do not affect indentation.
func (s *Scanner) skipBlankLine() bool {
	i := s.pos
	for i < len(s.src) && (s.src[i] == ' ' || s.src[i] == '\t' || s.src[i] == '\r') {
		i++
	}
	if i < len(s.src) && s.src[i] != '\n' && s.src[i] != '#' {
		return false
	}
	for i < len(s.src) && s.src[i] != '\n' {
		i++
	}
	if i < len(s.src) {
		i++ // consume the newline
	}
	s.pos = i
	s.line++
	s.lineStart = i
	return true
}

// scanIndent measures leading whitespace and emits INDENT/DEDENT tokens
// against the indentation stack.
func (s *Scanner) scanIndent() error {
	width := 0
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ':
			width++
		case '\t':
			width += tabWidth - width%tabWidth
		default:
			goto measured
		}
		s.pos++
	}
measured:
	top := s.indents[len(s.indents)-1]
	switch {
	case width > top:
		s.indents = append(s.indents, width)
		s.emitAt(INDENT, "", s.line, 0)
	case width < top:
		for len(s.indents) > 1 && s.indents[len(s.indents)-1] > width {
			s.indents = s.indents[:len(s.indents)-1]
			s.emitAt(DEDENT, "", s.line, 0)
		}
		if s.indents[len(s.indents)-1] != width {
			return s.errorf("unindent does not match any outer indentation level")
		}
	}
	return nil
}

// scanLine tokenizes one physical line, honoring bracket depth for
// implicit line joining.
func (s *Scanner) scanLine() error {
	sawToken := false
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			s.pos++
		case c == '\n':
			s.pos++
			line := s.line
			col := s.pos - 1 - s.lineStart
			s.line++
			s.lineStart = s.pos
			if s.depth > 0 {
				continue // implicit line joining inside brackets
			}
			if sawToken {
				s.emitAt(NEWLINE, "", line, col)
			}
			return nil
		case c == '#':
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.pos++
			}
		case c == '\\' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '\n':
			s.pos += 2
			s.line++
			s.lineStart = s.pos
		case isNameStart(c):
			if s.stringPrefix() {
				if err := s.scanString(); err != nil {
					return err
				}
				sawToken = true
				continue
			}
			s.scanName()
			sawToken = true
		case c >= '0' && c <= '9':
			s.scanNumber()
			sawToken = true
		case c == '.' && s.pos+1 < len(s.src) && s.src[s.pos+1] >= '0' && s.src[s.pos+1] <= '9':
			s.scanNumber()
			sawToken = true
		case c == '\'' || c == '"':
			if err := s.scanString(); err != nil {
				return err
			}
			sawToken = true
		default:
			if err := s.scanOperator(); err != nil {
				return err
			}
			sawToken = true
		}
	}
	return nil
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameByte(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}

// stringPrefix reports whether the name starting at pos is a short string
// prefix (r, b, f, u and combinations) immediately followed by a quote.
func (s *Scanner) stringPrefix() bool {
	i := s.pos
	for i < len(s.src) && i-s.pos < 2 && strings.ContainsRune("rRbBuUfF", rune(s.src[i])) {
		i++
	}
	return i > s.pos && i < len(s.src) && (s.src[i] == '\'' || s.src[i] == '"')
}

func (s *Scanner) scanName() {
	line, col := s.line, s.col()
	start := s.pos
	for s.pos < len(s.src) && isNameByte(s.src[s.pos]) {
		s.pos++
	}
	s.emitAt(NAME, string(s.src[start:s.pos]), line, col)
}

func (s *Scanner) scanNumber() {
	line, col := s.line, s.col()
	start := s.pos
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == '_' ||
			c == 'x' || c == 'X' || c == 'o' || c == 'O' ||
			(c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') {
			s.pos++
			continue
		}
		if (c == 'e' || c == 'E') && s.pos+1 < len(s.src) &&
			(s.src[s.pos+1] == '+' || s.src[s.pos+1] == '-') {
			s.pos += 2
			continue
		}
		break
	}
	s.emitAt(NUMBER, string(s.src[start:s.pos]), line, col)
}

// scanString consumes a string literal, including prefixed and
// triple-quoted forms, and emits its unquoted text.
func (s *Scanner) scanString() error {
	line, col := s.line, s.col()
	for s.pos < len(s.src) && isNameStart(s.src[s.pos]) {
		s.pos++ // prefix letters
	}
	quote := s.src[s.pos]
	triple := false
	if s.pos+2 < len(s.src) && s.src[s.pos+1] == quote && s.src[s.pos+2] == quote {
		triple = true
		s.pos += 3
	} else {
		s.pos++
	}
	start := s.pos
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == '\\' && s.pos+1 < len(s.src) {
			if s.src[s.pos+1] == '\n' {
				s.line++
				s.lineStart = s.pos + 2
			}
			s.pos += 2
			continue
		}
		if c == '\n' {
			if !triple {
				return s.errorf("unterminated string literal")
			}
			s.line++
			s.pos++
			s.lineStart = s.pos
			continue
		}
		if c == quote {
			if !triple {
				text := string(s.src[start:s.pos])
				s.pos++
				s.emitAt(STRING, text, line, col)
				return nil
			}
			if s.pos+2 < len(s.src) && s.src[s.pos+1] == quote && s.src[s.pos+2] == quote {
				text := string(s.src[start:s.pos])
				s.pos += 3
				s.emitAt(STRING, text, line, col)
				return nil
			}
		}
		s.pos++
	}
	return s.errorf("unterminated string literal")
}

// operators ordered longest first so the scanner always takes the longest
// match.
var operators = []string{
	"**=", "//=", ">>=", "<<=",
	"**", "//", "<<", ">>", "<=", ">=", "==", "!=", "->", ":=",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "@=",
	"+", "-", "*", "/", "%", "@", "&", "|", "^", "~", "<", ">", "=",
	"(", ")", "[", "]", "{", "}", ",", ".", ":", ";",
}

func (s *Scanner) scanOperator() error {
	rest := s.src[s.pos:]
	for _, op := range operators {
		if len(rest) >= len(op) && string(rest[:len(op)]) == op {
			line, col := s.line, s.col()
			s.pos += len(op)
			switch op {
			case "(", "[", "{":
				s.depth++
			case ")", "]", "}":
				if s.depth > 0 {
					s.depth--
				}
			}
			s.emitAt(OP, op, line, col)
			return nil
		}
	}
	return s.errorf("unexpected character %q", s.src[s.pos])
}
