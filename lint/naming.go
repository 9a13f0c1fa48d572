// Copyright © 2026 The eolint authors

package lint

import (
	"strings"

	"github.com/eolint/eolint/pyast"
)

// RuleNaming flags "-er" names: classes, methods, functions and variables
// whose names describe an action rather than a thing.
//
// All four positions share one algorithm: skip private and constant names,
// honor the allowed-exceptions table, then test the lower-cased name
// against the banned-suffix table and its word fragments against the
// relevant table (any fragment for classes, the leading fragment for
// callables and variables).
var RuleNaming = &Rule{
	Name:  "naming",
	Codes: []string{EO001, EO002, EO003, EO004},
	Doc: `naming: reject -er names and procedural verb names

A class named for what it does (Manager, Parser, Validator) instead of
what it is violates the object-thinking discipline, as does a method or
variable named with an imperative verb (get_data, process). Names in
the allowed-exceptions table (server, user, counter, ...) are accepted.`,
	Check: func(node pyast.Node, ctx *Context) []Diagnostic {
		switch n := node.(type) {
		case *pyast.ClassDef:
			return checkClassName(n, ctx.Cfg)
		case *pyast.FuncDef:
			return checkCallableName(n, ctx.Cfg)
		case *pyast.Assign:
			var diags []Diagnostic
			for _, t := range n.Targets {
				if name, ok := t.(*pyast.Name); ok {
					diags = append(diags, checkVariableName(name, ctx.Cfg)...)
				}
			}
			return diags
		case *pyast.AnnAssign:
			if name, ok := n.Target.(*pyast.Name); ok {
				return checkVariableName(name, ctx.Cfg)
			}
		}
		return nil
	},
}

func checkClassName(cls *pyast.ClassDef, cfg *Config) []Diagnostic {
	if !erName(cls.Name, cfg, cfg.ErSuffixes, false) {
		return nil
	}
	return []Diagnostic{diag(cls, EO001, msgClassName, cls.Name)}
}

func checkCallableName(fn *pyast.FuncDef, cfg *Config) []Diagnostic {
	if cfg.PropertyAliases.Has(fn.Name) {
		return nil
	}
	if !erName(fn.Name, cfg, cfg.ProceduralVerbs, true) {
		return nil
	}
	if receiverName(fn, cfg) != "" {
		return []Diagnostic{diag(fn, EO002, msgMethodName, fn.Name)}
	}
	return []Diagnostic{diag(fn, EO004, msgFuncName, fn.Name)}
}

func checkVariableName(name *pyast.Name, cfg *Config) []Diagnostic {
	if !erName(name.Id, cfg, cfg.ProceduralVerbs, true) {
		return nil
	}
	return []Diagnostic{diag(name, EO003, msgVarName, name.Id)}
}

// erName reports whether name violates the -er discipline. fragments are
// tested against words: every fragment for class names, only the leading
// fragment when firstOnly is set (callables and variables).
func erName(name string, cfg *Config, words Set, firstOnly bool) bool {
	if strings.HasPrefix(name, "_") || isConstantName(name) {
		return false
	}
	lower := strings.ToLower(name)
	if cfg.AllowedExceptions.Has(lower) {
		return false
	}
	for suffix := range cfg.ErSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	frags := wordFragments(name)
	if len(frags) == 0 {
		return false
	}
	if firstOnly {
		return words.Has(frags[0])
	}
	for _, f := range frags {
		if words.Has(f) {
			return true
		}
	}
	return false
}

// isConstantName reports whether name follows the SCREAMING_SNAKE
// convention: at least one upper-case letter and none lower-case.
func isConstantName(name string) bool {
	upper := false
	for _, r := range name {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			upper = true
		}
	}
	return upper
}

// wordFragments splits an identifier into its lower-cased words at
// case and separator boundaries: "DataProcessor" and "data_processor"
// both yield [data processor]; acronym runs stay together, so
// "XMLParser" yields [xml parser].
func wordFragments(name string) []string {
	var frags []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			frags = append(frags, strings.ToLower(string(cur)))
			cur = nil
		}
	}
	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '_' || (r >= '0' && r <= '9'):
			flush()
		case r >= 'A' && r <= 'Z':
			// Boundary before an upper-case rune, except inside an
			// acronym run (previous rune also upper and the next is not
			// lower).
			prevUpper := i > 0 && runes[i-1] >= 'A' && runes[i-1] <= 'Z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if !prevUpper || nextLower {
				flush()
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return frags
}
