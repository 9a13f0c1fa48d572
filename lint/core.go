// Copyright © 2026 The eolint authors

package lint

import (
	"strings"

	"github.com/eolint/eolint/pyast"
)

// RuleNoNull flags every None literal.
var RuleNoNull = &Rule{
	Name:  "nonull",
	Codes: []string{EO005},
	Doc: `nonull: reject the None sentinel

None forces every caller into defensive checks. Return a null object or
raise instead. Every None literal is flagged, including defaults and
comparisons.`,
	Check: func(node pyast.Node, ctx *Context) []Diagnostic {
		c, ok := node.(*pyast.Constant)
		if !ok || !c.IsNone() {
			return nil
		}
		return []Diagnostic{diag(c, EO005, msgNullUsage)}
	},
}

// RuleConstructor enforces constructor purity: the initializer may only
// assign parameters to receiver fields (or be an empty pass body). The
// first statement that does anything else is flagged; later offenders in
// the same body are not, one report per constructor is enough.
var RuleConstructor = &Rule{
	Name:  "constructor",
	Codes: []string{EO006},
	Doc: `constructor: initializers only assign parameters

A constructor that computes, calls, or branches hides work in object
creation. The initializer body must consist solely of pass statements
and receiver.field = parameter assignments.`,
	Check: func(node pyast.Node, ctx *Context) []Diagnostic {
		fn, ok := node.(*pyast.FuncDef)
		if !ok || fn.Name != ctx.Cfg.InitializerName {
			return nil
		}
		recv := receiverName(fn, ctx.Cfg)
		if recv == "" {
			return nil
		}
		for _, stmt := range fn.Body {
			if !pureCtorStmt(stmt, recv) {
				return []Diagnostic{diag(stmt, EO006, msgCtorCode)}
			}
		}
		return nil
	},
}

// pureCtorStmt reports whether stmt is allowed in an initializer body:
// a pass placeholder or a single `recv.field = name` assignment.
func pureCtorStmt(stmt pyast.Stmt, recv string) bool {
	switch s := stmt.(type) {
	case *pyast.Pass:
		return true
	case *pyast.Assign:
		if len(s.Targets) != 1 {
			return false
		}
		attr, ok := s.Targets[0].(*pyast.Attribute)
		if !ok {
			return false
		}
		base, ok := attr.Value.(*pyast.Name)
		if !ok || base.Id != recv {
			return false
		}
		_, bare := s.Value.(*pyast.Name)
		return bare
	default:
		return false
	}
}

// RuleGetterSetter flags public instance methods named like accessors.
var RuleGetterSetter = &Rule{
	Name:  "getters",
	Codes: []string{EO007},
	Doc: `getters: reject getter and setter methods

Methods named get/set, get_*/set_* or getX/setX expose bare state
instead of behavior. Both patterns are tested independently per method.`,
	Check: func(node pyast.Node, ctx *Context) []Diagnostic {
		fn, ok := node.(*pyast.FuncDef)
		if !ok || receiverName(fn, ctx.Cfg) == "" || strings.HasPrefix(fn.Name, "_") {
			return nil
		}
		var diags []Diagnostic
		if accessorName(fn.Name, "get") {
			diags = append(diags, diag(fn, EO007, msgGetterSet, fn.Name))
		}
		if accessorName(fn.Name, "set") {
			diags = append(diags, diag(fn, EO007, msgGetterSet, fn.Name))
		}
		return diags
	},
}

// accessorName reports whether name is the verb itself, verb_*, or the
// camel-case form verbX (upper-case rune right after the verb).
func accessorName(name, verb string) bool {
	lower := strings.ToLower(name)
	if lower == verb || strings.HasPrefix(lower, verb+"_") {
		return true
	}
	return strings.HasPrefix(lower, verb) && len(name) > len(verb) &&
		name[len(verb)] >= 'A' && name[len(verb)] <= 'Z'
}

// RuleMutable flags declaration-level mutability: value-type classes
// without frozen=True, and class attributes initialized to mutable
// containers. Mutation of constructor-established state is handled by the
// tracker in mutation.go under the same code.
var RuleMutable = &Rule{
	Name:  "mutable",
	Codes: []string{EO008},
	Doc: `mutable: objects must be immutable

A dataclass declaration must carry frozen=True, and class attributes
must not be initialized to mutable containers (list/dict/set literals
or their constructors). Fields established in the initializer must not
be reassigned or mutated in-place by other methods.`,
	Check: func(node pyast.Node, ctx *Context) []Diagnostic {
		cls, ok := node.(*pyast.ClassDef)
		if !ok {
			return nil
		}
		var diags []Diagnostic
		if unfrozenValueType(cls, ctx.Cfg) {
			diags = append(diags, diag(cls, EO008, msgMutable, cls.Name))
		}
		for _, stmt := range cls.Body {
			assign, ok := stmt.(*pyast.Assign)
			if !ok {
				continue
			}
			for _, t := range assign.Targets {
				name, ok := t.(*pyast.Name)
				if !ok {
					continue
				}
				if mutableValue(assign.Value, ctx.Cfg) {
					diags = append(diags, diag(assign, EO008, msgMutable, name.Id))
				}
			}
		}
		return diags
	},
}

// unfrozenValueType reports whether cls carries a value-type decorator
// without frozen=True.
func unfrozenValueType(cls *pyast.ClassDef, cfg *Config) bool {
	valueType := false
	frozen := false
	for _, dec := range cls.Decorators {
		switch d := dec.(type) {
		case *pyast.Name:
			if cfg.ValueTypeDecorators.Has(d.Id) {
				valueType = true
			}
		case *pyast.Call:
			name, ok := d.Func.(*pyast.Name)
			if !ok || !cfg.ValueTypeDecorators.Has(name.Id) {
				continue
			}
			valueType = true
			for _, kw := range d.Keywords {
				if kw.Arg != "frozen" {
					continue
				}
				if c, ok := kw.Value.(*pyast.Constant); ok && c.IsTrue() {
					frozen = true
				}
			}
		}
	}
	return valueType && !frozen
}

// mutableValue reports whether expr builds a mutable container: a
// list/dict/set display or a call to a mutable-container constructor.
func mutableValue(expr pyast.Expr, cfg *Config) bool {
	switch v := expr.(type) {
	case *pyast.List, *pyast.Dict, *pyast.Set:
		return true
	case *pyast.Call:
		name, ok := v.Func.(*pyast.Name)
		return ok && cfg.MutableConstructors.Has(name.Id)
	default:
		return false
	}
}
