// Copyright © 2026 The eolint authors

package pyast

// Children returns the direct child nodes of n in source order. The switch
// is exhaustive over the closed node set; unknown nodes have no children.
func Children(n Node) []Node {
	var out []Node
	add := func(nodes ...Node) {
		for _, c := range nodes {
			if c != nil {
				out = append(out, c)
			}
		}
	}
	addExprs := func(exprs []Expr) {
		for _, e := range exprs {
			if e != nil {
				out = append(out, e)
			}
		}
	}
	addStmts := func(stmts []Stmt) {
		for _, s := range stmts {
			if s != nil {
				out = append(out, s)
			}
		}
	}

	switch x := n.(type) {
	case *Module:
		addStmts(x.Body)
	case *ClassDef:
		addExprs(x.Decorators)
		addExprs(x.Bases)
		for _, kw := range x.Keywords {
			add(kw)
		}
		addStmts(x.Body)
	case *FuncDef:
		addExprs(x.Decorators)
		for _, p := range x.Params {
			add(p.Annotation, p.Default)
		}
		add(x.Returns)
		addStmts(x.Body)
	case *Assign:
		addExprs(x.Targets)
		add(x.Value)
	case *AnnAssign:
		add(x.Target, x.Annotation, x.Value)
	case *AugAssign:
		add(x.Target, x.Value)
	case *ExprStmt:
		add(x.X)
	case *Return:
		add(x.Value)
	case *If:
		add(x.Cond)
		addStmts(x.Body)
		addStmts(x.Else)
	case *While:
		add(x.Cond)
		addStmts(x.Body)
	case *For:
		add(x.Target, x.Iter)
		addStmts(x.Body)
	case *With:
		for _, item := range x.Items {
			add(item)
		}
		addStmts(x.Body)
	case *WithItem:
		add(x.Context, x.Vars)
	case *Try:
		addStmts(x.Body)
		for _, h := range x.Handlers {
			add(h)
		}
		addStmts(x.Else)
		addStmts(x.Final)
	case *ExceptHandler:
		add(x.Type)
		addStmts(x.Body)
	case *Assert:
		add(x.Test, x.Msg)
	case *Raise:
		add(x.Exc, x.From)
	case *Name, *Constant, *Pass, *Import, *FromImport:
		// leaves
	case *Attribute:
		add(x.Value)
	case *Call:
		add(x.Func)
		addExprs(x.Args)
		for _, kw := range x.Keywords {
			add(kw)
		}
	case *Keyword:
		add(x.Value)
	case *List:
		addExprs(x.Elts)
	case *Tuple:
		addExprs(x.Elts)
	case *Set:
		addExprs(x.Elts)
	case *Dict:
		addExprs(x.Keys)
		addExprs(x.Values)
	case *Starred:
		add(x.Value)
	case *Comp:
		add(x.Elt, x.Value)
		for _, c := range x.Clauses {
			add(c)
		}
	case *CompClause:
		add(x.Target, x.Iter)
		addExprs(x.Ifs)
	case *BinOp:
		add(x.Left, x.Right)
	case *BoolOp:
		addExprs(x.Values)
	case *UnaryOp:
		add(x.Operand)
	case *Compare:
		add(x.Left)
		addExprs(x.Comparators)
	case *Subscript:
		add(x.Value, x.Index)
	}
	return out
}

// Walk visits n and all nodes reachable from it in pre-order, depth-first.
// If fn returns false the children of the current node are skipped.
func Walk(n Node, fn func(Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}
