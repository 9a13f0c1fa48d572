// Copyright © 2026 The eolint authors

package lint

import (
	"strings"

	"github.com/eolint/eolint/pyast"
)

// tracker performs the one stateful analysis in the catalog: per class,
// it learns which fields the initializer establishes on the receiver and
// then flags any other instance method that reassigns one of those fields
// or calls an in-place mutating operation on it, including through a
// chained attribute path.
//
// One tracker serves exactly one class declaration. Nested classes are
// skipped during the sub-walk; the engine traversal reaches them later
// and runs a fresh tracker, so their fields never bleed into this one.
type tracker struct {
	cfg    *Config
	fields map[string]bool // receiver fields assigned in the initializer
	inInit bool
	recv   string // receiver name of the method currently walked
	diags  []Diagnostic
}

// trackMutations analyzes one class declaration and returns its mutation
// diagnostics. Establishing assignments are collected in a first pass over
// the initializer so mutation checks in methods declared before it still
// see the full field set.
func trackMutations(cls *pyast.ClassDef, cfg *Config) []Diagnostic {
	t := &tracker{cfg: cfg, fields: make(map[string]bool)}
	for _, stmt := range cls.Body {
		if fn, ok := stmt.(*pyast.FuncDef); ok && fn.Name == cfg.InitializerName {
			t.walkMethod(fn)
		}
	}
	for _, stmt := range cls.Body {
		fn, ok := stmt.(*pyast.FuncDef)
		if !ok || fn.Name == cfg.InitializerName {
			continue
		}
		t.walkMethod(fn)
	}
	return t.diags
}

// walkMethod analyzes one method body. Methods with a no-instance-binding
// decorator have no receiver to mutate through and are skipped entirely.
func (t *tracker) walkMethod(fn *pyast.FuncDef) {
	if hasDecorator(fn.Decorators, t.cfg.StaticDecorators) {
		return
	}
	prevInit, prevRecv := t.inInit, t.recv
	t.inInit = fn.Name == t.cfg.InitializerName
	// The receiver is whatever the first parameter is named, not just the
	// conventional self/cls.
	t.recv = "self"
	if len(fn.Params) > 0 && fn.Params[0].Star == "" {
		t.recv = fn.Params[0].Name
	}
	for _, stmt := range fn.Body {
		t.walkStmt(stmt)
	}
	t.inInit, t.recv = prevInit, prevRecv
}

func (t *tracker) walkStmt(n pyast.Node) {
	switch s := n.(type) {
	case *pyast.ClassDef:
		return // fresh tracker when the engine traversal gets here
	case *pyast.FuncDef:
		t.walkMethod(s)
		return
	case *pyast.Assign:
		for _, target := range s.Targets {
			t.target(target)
		}
	case *pyast.AnnAssign:
		t.target(s.Target)
	case *pyast.AugAssign:
		t.target(s.Target)
	case *pyast.Call:
		t.call(s)
	}
	for _, c := range pyast.Children(n) {
		t.walkStmt(c)
	}
}

// target handles one assignment target, destructuring tuple/list/starred
// forms recursively. Inside the initializer receiver fields are recorded;
// elsewhere a write to an established field is a violation.
func (t *tracker) target(n pyast.Expr) {
	switch target := n.(type) {
	case *pyast.Attribute:
		base, ok := target.Value.(*pyast.Name)
		if !ok || base.Id != t.recv {
			return
		}
		if t.inInit {
			t.fields[target.Attr] = true
		} else if t.fields[target.Attr] {
			t.diags = append(t.diags, diag(target, EO008, msgMutatedAttr, target.Attr))
		}
	case *pyast.Tuple:
		for _, elt := range target.Elts {
			t.target(elt)
		}
	case *pyast.List:
		for _, elt := range target.Elts {
			t.target(elt)
		}
	case *pyast.Starred:
		t.target(target.Value)
	}
}

// call flags in-place mutating operations invoked on an established
// field, through any depth of attribute chaining: recv.items.append(x)
// and recv.container.data.clear() both resolve to a path rooted at the
// receiver.
func (t *tracker) call(call *pyast.Call) {
	if t.inInit {
		return
	}
	attr, ok := call.Func.(*pyast.Attribute)
	if !ok || !t.cfg.MutatingMethods.Has(attr.Attr) {
		return
	}
	path, ok := t.receiverPath(attr.Value)
	if !ok || len(path) == 0 || !t.fields[path[0]] {
		return
	}
	t.diags = append(t.diags,
		diag(call, EO008, msgMutatingOp, attr.Attr, strings.Join(path, ".")))
}

// receiverPath resolves an attribute chain rooted at the current receiver
// into its field path: recv.a.b yields [a b]. The second result is false
// when the chain is not rooted at the receiver.
func (t *tracker) receiverPath(expr pyast.Expr) ([]string, bool) {
	switch v := expr.(type) {
	case *pyast.Name:
		if v.Id == t.recv {
			return nil, true
		}
		return nil, false
	case *pyast.Attribute:
		path, ok := t.receiverPath(v.Value)
		if !ok {
			return nil, false
		}
		return append(path, v.Attr), true
	default:
		return nil, false
	}
}
