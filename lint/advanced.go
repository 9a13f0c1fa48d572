// Copyright © 2026 The eolint authors

package lint

import (
	"strings"

	"github.com/eolint/eolint/pyast"
)

// RuleStaticMethod flags functions decorated with a no-instance-binding
// marker.
var RuleStaticMethod = &Rule{
	Name:  "static",
	Codes: []string{EO009},
	Doc: `static: reject static and class methods

A static method is a procedure wearing a class as a namespace. Move the
behavior onto an object.`,
	Check: func(node pyast.Node, ctx *Context) []Diagnostic {
		fn, ok := node.(*pyast.FuncDef)
		if !ok || !hasDecorator(fn.Decorators, ctx.Cfg.StaticDecorators) {
			return nil
		}
		return []Diagnostic{diag(fn, EO009, msgStatic, fn.Name)}
	},
}

// RuleReflection flags calls to dynamic-introspection primitives.
var RuleReflection = &Rule{
	Name:  "reflection",
	Codes: []string{EO010},
	Doc: `reflection: reject type discrimination

isinstance, type, hasattr, getattr, setattr, delattr and callable let
code branch on what an object is instead of asking it to behave. Each
call site is flagged separately.`,
	Check: func(node pyast.Node, ctx *Context) []Diagnostic {
		call, ok := node.(*pyast.Call)
		if !ok {
			return nil
		}
		name, ok := call.Func.(*pyast.Name)
		if !ok || !ctx.Cfg.ReflectionCalls.Has(name.Id) {
			return nil
		}
		return []Diagnostic{diag(call, EO010, msgReflection)}
	},
}

// RuleContract requires public instance methods to be backed by an
// abstract contract: either the class declares a Protocol/ABC base or the
// method itself is marked abstract.
var RuleContract = &Rule{
	Name:  "contract",
	Codes: []string{EO011},
	Doc: `contract: public methods need a declared contract

A public instance method on a class with no Protocol or ABC base and no
abstract marker is an interface nobody promised. Private methods,
properties and top-level functions are exempt.`,
	Check: func(node pyast.Node, ctx *Context) []Diagnostic {
		fn, ok := node.(*pyast.FuncDef)
		if !ok || strings.HasPrefix(fn.Name, "_") {
			return nil
		}
		if hasDecorator(fn.Decorators, NewSet("property")) {
			return nil
		}
		if ctx.Class == nil || receiverName(fn, ctx.Cfg) == "" {
			return nil
		}
		if classHasContract(ctx.Class, ctx.Cfg) {
			return nil
		}
		if hasDecorator(fn.Decorators, ctx.Cfg.AbstractDecorators) {
			return nil
		}
		return []Diagnostic{diag(fn, EO011, msgNoContract, fn.Name)}
	},
}

// classHasContract reports whether cls declares a contract base, in bare
// or module-qualified form.
func classHasContract(cls *pyast.ClassDef, cfg *Config) bool {
	for _, base := range cls.Bases {
		if name, _ := baseName(base); cfg.ContractBases.Has(name) {
			return true
		}
	}
	return false
}

// RuleTestPurity restricts test bodies to assertion calls.
var RuleTestPurity = &Rule{
	Name:  "testpurity",
	Codes: []string{EO012},
	Doc: `testpurity: test bodies contain only assertions

A function whose name carries the test prefix may contain only pass
statements and assertThat(...) calls (bare or method form). Setup
statements, raw asserts and other calls are each flagged.`,
	Check: func(node pyast.Node, ctx *Context) []Diagnostic {
		fn, ok := node.(*pyast.FuncDef)
		if !ok || !strings.HasPrefix(fn.Name, ctx.Cfg.TestPrefix) {
			return nil
		}
		var diags []Diagnostic
		for _, stmt := range fn.Body {
			if !pureTestStmt(stmt, ctx.Cfg.AssertionName) {
				diags = append(diags, diag(stmt, EO012, msgTestPurity, fn.Name))
			}
		}
		return diags
	},
}

// pureTestStmt reports whether stmt is a pass placeholder or an
// expression statement calling the assertion name.
func pureTestStmt(stmt pyast.Stmt, assertion string) bool {
	switch s := stmt.(type) {
	case *pyast.Pass:
		return true
	case *pyast.ExprStmt:
		call, ok := s.X.(*pyast.Call)
		if !ok {
			return false
		}
		switch f := call.Func.(type) {
		case *pyast.Name:
			return f.Id == assertion
		case *pyast.Attribute:
			return f.Attr == assertion
		}
		return false
	default:
		return false
	}
}

// RuleOrmPattern flags persistence-style method calls, the ActiveRecord
// smell of objects that are really database rows.
var RuleOrmPattern = &Rule{
	Name:  "orm",
	Codes: []string{EO013},
	Doc: `orm: reject ORM and ActiveRecord calls

Calls like obj.save(), obj.find_by(...) or query chains mix SQL
mechanics into domain objects. Calls on literals, builtin type names
and builtin constructor results are exempt since those share method
names with ordinary containers.`,
	Check: func(node pyast.Node, ctx *Context) []Diagnostic {
		call, ok := node.(*pyast.Call)
		if !ok {
			return nil
		}
		attr, ok := call.Func.(*pyast.Attribute)
		if !ok || !ctx.Cfg.OrmMethods.Has(attr.Attr) {
			return nil
		}
		if safeOrmReceiver(attr.Value, ctx.Cfg) {
			return nil
		}
		return []Diagnostic{diag(call, EO013, msgOrmPattern, attr.Attr)}
	},
}

// safeOrmReceiver reports whether expr is a receiver whose methods are
// known container/builtin operations rather than persistence calls.
func safeOrmReceiver(expr pyast.Expr, cfg *Config) bool {
	switch v := expr.(type) {
	case *pyast.Name:
		return cfg.SafeReceiverTypes.Has(v.Id)
	case *pyast.Constant, *pyast.List, *pyast.Dict, *pyast.Tuple, *pyast.Set:
		return true
	case *pyast.Call:
		name, ok := v.Func.(*pyast.Name)
		return ok && cfg.SafeConstructors.Has(name.Id)
	default:
		return false
	}
}

// RuleInheritance flags classes inheriting from anything but the
// allow-listed abstract bases.
var RuleInheritance = &Rule{
	Name:  "inheritance",
	Codes: []string{EO014},
	Doc: `inheritance: reject implementation inheritance

Extending a concrete class couples the child to the parent's
implementation. Abstract bases (ABC, Protocol), the exception
hierarchy, enum bases and object are allowed; everything else is
flagged, once per class.`,
	Check: func(node pyast.Node, ctx *Context) []Diagnostic {
		cls, ok := node.(*pyast.ClassDef)
		if !ok {
			return nil
		}
		cfg := ctx.Cfg
		for _, base := range cls.Bases {
			if !allowedBase(base, cfg) {
				return []Diagnostic{diag(cls, EO014, msgInheritance, cls.Name)}
			}
		}
		return nil
	},
}

// allowedBase reports whether a base expression names an allow-listed
// abstract base, in bare or module-qualified form.
func allowedBase(base pyast.Expr, cfg *Config) bool {
	name, module := baseName(base)
	if name == "" {
		return false
	}
	if module == "" {
		if _, qualified := base.(*pyast.Attribute); qualified {
			return cfg.ContractBases.Has(name)
		}
		return cfg.AllowedBases.Has(name)
	}
	return cfg.ContractBases.Has(name) || cfg.AllowedBaseModules.Has(module)
}
