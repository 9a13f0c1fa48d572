// Copyright © 2026 The eolint authors

// Package lint analyzes Python syntax trees for violations of the Elegant
// Objects discipline.
//
// The engine is modeled after go vet: each check is an independent Rule
// that inspects one node at a time and reports diagnostics. Unlike go vet,
// all rules share a single pre-order traversal of the tree; the traversal
// threads the enclosing-class context down the recursion so rules stay
// stateless. The one stateful check, constructor-scoped mutation tracking,
// runs as a dedicated sub-walk per class declaration (see mutation.go).
//
// Rules are data: every name table they consult lives in Config, so the
// catalog is extensible without touching the traversal.
package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/eolint/eolint/parser"
	"github.com/eolint/eolint/pyast"
)

// Position identifies a location in source code. Line is 1-based and Col
// is the 0-based column offset, matching the positions carried by the
// syntax tree.
type Position struct {
	File string `json:"file"`
	Line int    `json:"line"`
	Col  int    `json:"col"`
}

// String returns the position in file:line:col format.
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

// Diagnostic is a single reported problem. Message always begins with the
// stable code token (EO001..EO014) so callers can group without parsing.
type Diagnostic struct {
	// Pos is the source location of the problem.
	Pos Position `json:"pos"`

	// Code is the stable diagnostic code, duplicated from the message
	// prefix for structured consumers.
	Code string `json:"code"`

	// Message is a human-readable description of the problem.
	Message string `json:"message"`

	// Rule is the name of the check that found this problem.
	Rule string `json:"rule"`
}

// String returns the diagnostic in compiler style: file:line:col: message.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Pos, d.Message)
}

// Rule defines a single check. Check is a pure function of the node and
// its enclosing context; it returns nil when the node is not its concern.
type Rule struct {
	// Name is a short identifier for this check (e.g. "naming").
	Name string

	// Doc is a human-readable description. The first line is a short summary.
	Doc string

	// Codes lists the diagnostic codes this rule can emit.
	Codes []string

	// Check inspects one node. It must not recurse; the engine owns the
	// traversal and visits every node exactly once.
	Check func(node pyast.Node, ctx *Context) []Diagnostic
}

// Linter runs the rule catalog over parsed trees.
type Linter struct {
	Rules []*Rule
	Cfg   *Config
}

// New returns a Linter with the default catalog and tables.
func New() *Linter {
	return &Linter{Rules: DefaultRules(), Cfg: DefaultConfig()}
}

// Analyze walks tree and returns all diagnostics in visitation order. The
// result is a pure function of the tree: analyzing the same tree twice
// yields identical sequences.
func (l *Linter) Analyze(tree *pyast.Module) []Diagnostic {
	cfg := l.Cfg
	if cfg == nil {
		cfg = DefaultConfig()
	}
	w := &walker{rules: l.Rules, cfg: cfg}
	for _, r := range l.Rules {
		if r.Name == RuleMutable.Name {
			w.mutation = true
		}
	}
	w.visit(tree, &Context{Cfg: cfg})
	return w.diags
}

// LintFile parses source and analyzes the resulting tree, stamping every
// diagnostic with filename.
func (l *Linter) LintFile(source []byte, filename string) ([]Diagnostic, error) {
	tree, err := parser.ParseFile(filename, source)
	if err != nil {
		return nil, err
	}
	diags := l.Analyze(tree)
	for i := range diags {
		diags[i].Pos.File = filename
	}
	return diags, nil
}

// Analyze runs the default catalog over tree.
func Analyze(tree *pyast.Module) []Diagnostic {
	return New().Analyze(tree)
}

// diag builds a diagnostic at node's position. The rule name is stamped
// by the walker after the check returns.
func diag(node pyast.Node, code, format string, args ...interface{}) Diagnostic {
	pos := node.Position()
	return Diagnostic{
		Pos:     Position{Line: pos.Line, Col: pos.Col},
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// FormatText writes diagnostics one per line in compiler format.
func FormatText(w io.Writer, diags []Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(w, d.String()) //nolint:errcheck // best-effort output to writer
	}
}

// FormatJSON writes diagnostics as indented JSON.
func FormatJSON(w io.Writer, diags []Diagnostic) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(diags)
}

// DefaultRules returns the built-in catalog. Order matters: diagnostics
// for one node are emitted in catalog order, and the catalog is ordered by
// code so output reads EO001 before EO014 at equal positions.
func DefaultRules() []*Rule {
	return []*Rule{
		RuleNaming,
		RuleNoNull,
		RuleConstructor,
		RuleGetterSetter,
		RuleMutable,
		RuleStaticMethod,
		RuleReflection,
		RuleContract,
		RuleTestPurity,
		RuleOrmPattern,
		RuleInheritance,
	}
}

// RuleNames returns the names of the default rules in catalog order.
func RuleNames() []string {
	rules := DefaultRules()
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
	}
	return names
}

// RuleDoc returns a one-line-per-rule summary of the default catalog.
func RuleDoc() string {
	var b strings.Builder
	for _, r := range DefaultRules() {
		fmt.Fprintf(&b, "  %-12s %s\n", r.Name, strings.Join(r.Codes, ","))
	}
	return b.String()
}
