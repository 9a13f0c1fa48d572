// Copyright © 2026 The eolint authors

package lint

import "github.com/eolint/eolint/pyast"

// Context carries the lexical surroundings of the node under inspection.
// A fresh value is created when the traversal enters a class declaration
// and discarded on exit, so nested classes never leak state into their
// siblings or parents.
type Context struct {
	// Class is the innermost enclosing class declaration, nil at module
	// scope and inside top-level functions.
	Class *pyast.ClassDef

	// Cfg holds the rule tables.
	Cfg *Config
}

// walker performs the single pre-order traversal, dispatching every node
// to the rule catalog and accumulating diagnostics in visitation order.
type walker struct {
	rules    []*Rule
	cfg      *Config
	mutation bool // mutable rule selected, run the tracker per class
	diags    []Diagnostic
}

func (w *walker) visit(n pyast.Node, ctx *Context) {
	if n == nil {
		return
	}
	if cls, ok := n.(*pyast.ClassDef); ok {
		// The class node itself is checked with the new context so rules
		// see their own class as the enclosing one.
		ctx = &Context{Class: cls, Cfg: ctx.Cfg}
	}
	for _, r := range w.rules {
		for _, d := range r.Check(n, ctx) {
			d.Rule = r.Name
			w.diags = append(w.diags, d)
		}
	}
	if cls, ok := n.(*pyast.ClassDef); ok && w.mutation {
		for _, d := range trackMutations(cls, w.cfg) {
			d.Rule = RuleMutable.Name
			w.diags = append(w.diags, d)
		}
	}
	for _, c := range pyast.Children(n) {
		w.visit(c, ctx)
	}
}

// receiverName returns the name of fn's first parameter when it is a
// recognized instance or class receiver, and "" otherwise.
func receiverName(fn *pyast.FuncDef, cfg *Config) string {
	if len(fn.Params) == 0 {
		return ""
	}
	p := fn.Params[0]
	if p.Star != "" || !cfg.ReceiverNames.Has(p.Name) {
		return ""
	}
	return p.Name
}

// decoratorName resolves a decorator expression to its rightmost simple
// name: `staticmethod`, `functools.wraps(f)` and `@a.b.c` all reduce to
// the final identifier. Returns "" for shapes with no trailing name.
func decoratorName(dec pyast.Expr) string {
	for {
		switch d := dec.(type) {
		case *pyast.Name:
			return d.Id
		case *pyast.Attribute:
			return d.Attr
		case *pyast.Call:
			dec = d.Func
		default:
			return ""
		}
	}
}

// hasDecorator reports whether fn carries a decorator from names.
func hasDecorator(decorators []pyast.Expr, names Set) bool {
	for _, dec := range decorators {
		if names.Has(decoratorName(dec)) {
			return true
		}
	}
	return false
}

// baseName resolves a base-class expression to a simple name and its
// qualifying module prefix, if any. `abc.ABC` yields ("ABC", "abc"),
// `Protocol[T]` yields ("Protocol", ""), a plain name yields itself.
func baseName(base pyast.Expr) (name, module string) {
	switch b := base.(type) {
	case *pyast.Name:
		return b.Id, ""
	case *pyast.Attribute:
		if mod, ok := b.Value.(*pyast.Name); ok {
			return b.Attr, mod.Id
		}
		return b.Attr, ""
	case *pyast.Subscript:
		return baseName(b.Value)
	default:
		return "", ""
	}
}
