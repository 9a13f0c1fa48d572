// Copyright © 2026 The eolint authors

// Package diagnostic renders violations as annotated source snippets for
// CLI output. It is intentionally independent of the lint package so the
// lint engine stays a pure tree-to-diagnostics function with no
// presentation concerns.
package diagnostic

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Report is one violation to render. Line is 1-based; Col is the 1-based
// start column (0 means unknown).
type Report struct {
	Code    string // stable code token, e.g. "EO001"
	Message string // message text without the code prefix
	File    string
	Line    int
	Col     int
}

// Renderer formats reports as annotated source snippets.
type Renderer struct {
	// Color controls ANSI color output. Default is ColorAuto.
	Color ColorMode

	// SourceReader reads source file contents. If nil, os.ReadFile is used.
	SourceReader func(string) ([]byte, error)
}

// Render writes a single report to w.
func (r *Renderer) Render(w io.Writer, rep Report) error {
	p := choosePalette(r.Color, fileFromWriter(w))
	bw := bufio.NewWriter(w)
	ew := &errWriter{w: bw}

	// Header: "EO001: message"
	ew.printf("%s%s%s:%s %s%s%s\n",
		p.boldRed, rep.Code, p.reset, p.reset,
		p.bold, rep.Message, p.reset)

	r.writeSnippet(ew, rep, p)

	if ew.err != nil {
		return ew.err
	}
	return bw.Flush()
}

// RenderAll writes all reports to w separated by blank lines.
func (r *Renderer) RenderAll(w io.Writer, reps []Report) error {
	for i, rep := range reps {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := r.Render(w, rep); err != nil {
			return err
		}
	}
	return nil
}

// errWriter wraps a writer and captures the first error, short-circuiting
// subsequent writes. This avoids checking every fmt.Fprintf return value.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, a ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, a...)
}

func (ew *errWriter) print(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func (r *Renderer) writeSnippet(ew *errWriter, rep Report, p palette) {
	// Location line: "  --> file:line:col"
	loc := rep.File
	if rep.Line > 0 {
		loc = fmt.Sprintf("%s:%d", rep.File, rep.Line)
		if rep.Col > 0 {
			loc = fmt.Sprintf("%s:%d:%d", rep.File, rep.Line, rep.Col)
		}
	}
	ew.printf("  %s-->%s %s\n", p.boldBlue, p.reset, loc)

	source := r.readSourceLine(rep.File, rep.Line)
	if source == "" {
		// No source available — just show the location with a gutter
		ew.printf("   %s|%s\n", p.boldBlue, p.reset)
		return
	}

	lineStr := fmt.Sprintf("%d", rep.Line)
	pad := strings.Repeat(" ", len(lineStr))

	// Empty gutter line
	ew.printf(" %s%s |%s\n", p.boldBlue, pad, p.reset)

	// Source line with line number; tabs expand for stable alignment
	displaySource := strings.ReplaceAll(source, "\t", "    ")
	ew.printf(" %s%s |%s  %s\n", p.boldBlue, lineStr, p.reset, displaySource)

	// Underline the token at the violation column
	col := rep.Col
	if col <= 0 {
		col = 1
	}
	endCol := detectEndCol(source, col)
	if endCol < col {
		endCol = col
	}
	underLen := endCol - col + 1

	prefix := ""
	if col > 1 && col-1 <= len(source) {
		prefix = source[:col-1]
	}
	underPad := strings.Repeat(" ", displayWidth(prefix))
	underline := strings.Repeat("^", underLen)

	ew.printf(" %s%s |%s  %s%s%s%s\n", p.boldBlue, pad, p.reset, underPad, p.boldRed, underline, p.reset)

	// Trailing gutter
	ew.printf(" %s%s |%s\n", p.boldBlue, pad, p.reset)
}

func (r *Renderer) readSourceLine(file string, line int) string {
	if line <= 0 || file == "" {
		return ""
	}
	reader := r.SourceReader
	if reader == nil {
		reader = func(name string) ([]byte, error) {
			return os.ReadFile(name) //nolint:gosec // reads user-specified source files for display
		}
	}
	data, err := reader(file)
	if err != nil {
		return ""
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for i := 1; scanner.Scan(); i++ {
		if i == line {
			return scanner.Text()
		}
	}
	return ""
}

// detectEndCol scans from col to find the end of the current token.
func detectEndCol(source string, col int) int {
	if col <= 0 || col > len(source) {
		return col
	}
	end := col - 1 // 0-based
	for end < len(source) {
		ch, size := utf8.DecodeRuneInString(source[end:])
		if ch == ' ' || ch == '\t' || ch == ':' || ch == ')' || ch == ']' || ch == '(' || ch == '[' {
			break
		}
		end += size
	}
	if end == col-1 {
		return col // single character
	}
	return end // 1-based end column
}

// displayWidth returns the display width of a string, expanding tabs to 4
// spaces.
func displayWidth(s string) int {
	w := 0
	for _, ch := range s {
		if ch == '\t' {
			w += 4
		} else {
			w++
		}
	}
	return w
}

// fileFromWriter attempts to extract an *os.File from a writer for
// terminal detection. Returns nil if the writer is not backed by a file.
func fileFromWriter(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}
