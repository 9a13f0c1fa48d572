// Copyright © 2026 The eolint authors

package cmd

import (
	"io"
	"strings"

	"github.com/eolint/eolint/diagnostic"
	"github.com/eolint/eolint/lint"
)

func colorMode() diagnostic.ColorMode {
	switch colorFlag {
	case "always":
		return diagnostic.ColorAlways
	case "never":
		return diagnostic.ColorNever
	default:
		return diagnostic.ColorAuto
	}
}

func newRenderer() *diagnostic.Renderer {
	return &diagnostic.Renderer{Color: colorMode()}
}

// toReport converts a lint diagnostic to a renderable report, splitting
// the code token off the message and re-basing the column to 1-based.
func toReport(d lint.Diagnostic) diagnostic.Report {
	msg := strings.TrimPrefix(d.Message, d.Code+" ")
	return diagnostic.Report{
		Code:    d.Code,
		Message: msg,
		File:    d.Pos.File,
		Line:    d.Pos.Line,
		Col:     d.Pos.Col + 1,
	}
}

// renderDiagnostics renders diagnostics as annotated source snippets.
func renderDiagnostics(w io.Writer, diags []lint.Diagnostic) {
	var reps []diagnostic.Report
	for _, d := range diags {
		reps = append(reps, toReport(d))
	}
	r := newRenderer()
	_ = r.RenderAll(w, reps)
}
